package canvas

import (
	"bufio"
	"bytes"
	"image"
	"io"

	"github.com/bodgit/picbin/palette"
)

// Encode returns a canvas holding the color of each byte in b.
func Encode(b []byte) (*image.RGBA, error) {
	return EncodeReader(bytes.NewReader(b), uint64(len(b)))
}

// EncodeReader plans a canvas for size bytes and fills it with the color of
// each byte read from r. If r is exhausted early the remaining cells are
// left as padding.
func EncodeReader(r io.Reader, size uint64) (*image.RGBA, error) {
	width, height, err := Dimensions(size)
	if err != nil {
		return nil, err
	}

	m := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	w := uint64(width)

	br := bufio.NewReader(r)
	var i uint64
	for ; ; i++ {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if i >= size {
			return nil, ErrTooMuchData
		}

		c := palette.FromByte(b)
		o := m.PixOffset(int(i%w), int(i/w))
		m.Pix[o+0] = c.R
		m.Pix[o+1] = c.G
		m.Pix[o+2] = c.B
		m.Pix[o+3] = 0xff
	}

	for ; i < w*uint64(height); i++ {
		m.SetRGBA(int(i%w), int(i/w), Padding)
	}

	return m, nil
}
