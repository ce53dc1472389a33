package palette

import "image/color"

// Inverse maps a color back to the byte that produced it.
type Inverse map[Color]byte

func newInverse(f func(byte) Color) Inverse {
	inv := make(Inverse, numColors)
	// Ascending order, so on a collision the higher byte wins
	for i := 0; i < numColors; i++ {
		inv[f(byte(i))] = byte(i)
	}
	return inv
}

// NewInverse builds the color to byte lookup table for FromByte.
func NewInverse() Inverse {
	return newInverse(FromByte)
}

// Lookup returns the byte for the color c, which may be any color.Color
// implementation. The boolean is false if c is not a mapped color.
func (inv Inverse) Lookup(c color.Color) (byte, bool) {
	b, ok := inv[Convert(c)]
	return b, ok
}
