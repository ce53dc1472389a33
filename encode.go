package picbin

import (
	"bufio"
	"crypto/sha1"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/picbin/canvas"
	"github.com/bodgit/picbin/image"
)

func imageSHA1(h []byte) string {
	return fmt.Sprintf("%X", h)
}

// Encode converts the file src into an image written to dst. The image
// format is chosen by the extension of dst.
func (p *Picbin) Encode(src, dst string) error {
	format, err := image.Format(dst)
	if err != nil {
		return err
	}

	if err := p.checkDestination(dst); err != nil {
		return err
	}

	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	size := uint64(info.Size())

	h := crc32.NewIEEE()
	m, err := canvas.EncodeReader(io.TeeReader(f, h), size)
	if err != nil {
		return err
	}

	if !image.Lossless(m, format) {
		p.logger.Printf("Too many colors for %s, \"%s\" will not decode correctly\n", format, dst)
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	s := sha1.New()
	w := bufio.NewWriter(io.MultiWriter(out, s))
	if err := image.Encode(w, m, format); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if p.catalog != nil {
		if err := p.catalog.Record(imageSHA1(s.Sum(nil)), filepath.Base(src), size, h.Sum32()); err != nil {
			return err
		}
	}

	b := m.Bounds()
	p.logger.Printf("Encoded \"%s\" (%d bytes) as %dx%d %s \"%s\"\n", src, size, b.Dx(), b.Dy(), format, dst)

	return nil
}
