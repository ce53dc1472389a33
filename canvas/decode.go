package canvas

import (
	"image"

	"github.com/bodgit/picbin/palette"
)

func decode(m image.Image, n int) []byte {
	inv := palette.NewInverse()
	b := m.Bounds()

	// Never more bytes than pixels, whatever n claims
	size := b.Dx() * b.Dy()
	if n >= 0 && n < size {
		size = n
	}
	out := make([]byte, 0, size)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if n >= 0 && len(out) == n {
				return out
			}
			// Unmapped colors, such as padding, are skipped
			if v, ok := inv.Lookup(m.At(x, y)); ok {
				out = append(out, v)
			}
		}
	}

	return out
}

// Decode returns the byte for every pixel of m that holds a mapped color,
// in row-major order. Any other pixel is skipped.
func Decode(m image.Image) []byte {
	return decode(m, -1)
}

// DecodeN is like Decode but stops once n bytes have been recovered. It is
// used when the original byte count is known.
func DecodeN(m image.Image, n int) []byte {
	if n < 0 {
		n = 0
	}
	return decode(m, n)
}
