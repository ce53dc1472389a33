package picbin

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"hash/crc32"
	"io/ioutil"
	"os"

	"github.com/bodgit/picbin/canvas"
	"github.com/bodgit/picbin/image"
)

// Decode recovers the original file from the image src and writes it to
// dst. If the image is in the catalog the result is truncated to the
// original length and verified against the original checksum.
func (p *Picbin) Decode(src, dst string) error {
	if err := p.checkDestination(dst); err != nil {
		return err
	}

	b, err := ioutil.ReadFile(src)
	if err != nil {
		return err
	}

	m, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return err
	}

	var entry *Entry
	if p.catalog != nil {
		sum := sha1.Sum(b)
		if entry, err = p.catalog.Find(imageSHA1(sum[:])); err != nil {
			return err
		}
	}

	bounds := m.Bounds()

	var data []byte
	if entry != nil {
		if pixels := uint64(bounds.Dx()) * uint64(bounds.Dy()); entry.Length > pixels {
			return fmt.Errorf("%w: %d pixels cannot hold %d bytes", ErrLengthMismatch, pixels, entry.Length)
		}
		data = canvas.DecodeN(m, int(entry.Length))
		if uint64(len(data)) != entry.Length {
			return fmt.Errorf("%w: got %d bytes, expected %d", ErrLengthMismatch, len(data), entry.Length)
		}
		if crc := crc32.ChecksumIEEE(data); crc != entry.CRC {
			return fmt.Errorf("%w: got %08X, expected %08X", ErrChecksumMismatch, crc, entry.CRC)
		}
	} else {
		data = canvas.Decode(m)
	}

	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	if entry != nil {
		p.logger.Printf("Decoded %dx%d %s \"%s\" to \"%s\" (%d bytes, catalogued as \"%s\")\n", bounds.Dx(), bounds.Dy(), format, src, dst, len(data), entry.Name)
	} else {
		p.logger.Printf("Decoded %dx%d %s \"%s\" to \"%s\" (%d bytes)\n", bounds.Dx(), bounds.Dy(), format, src, dst, len(data))
	}

	return nil
}
