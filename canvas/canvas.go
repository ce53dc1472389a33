/*
Package canvas lays out a sequence of bytes as a grid of colored pixels and
recovers the bytes from such a grid.

Bytes are written row-major, left to right and top to bottom, into the
smallest square-ish rectangle that can hold them. Any cells after the last
byte are padding and hold a color that no byte maps to, so decoding simply
skips them. No byte count is stored in the image itself.
*/
package canvas

import (
	"errors"
	"image/color"
	"math"
	"math/bits"
)

// MaxSize is the largest number of bytes that fits on a canvas with 32-bit
// dimensions.
const MaxSize = uint64(math.MaxUint32) * uint64(math.MaxUint32)

var (
	// ErrFileTooLarge is returned when there are more bytes than fit on
	// the largest possible canvas.
	ErrFileTooLarge = errors.New("canvas: file size too large")

	// ErrTooMuchData is returned when a reader yields more bytes than
	// the size the canvas was planned for.
	ErrTooMuchData = errors.New("canvas: more data than expected")
)

// Padding is the color of every cell after the last byte. It is opaque so
// that the image can be stored without an alpha channel.
var Padding = color.RGBA{0x00, 0x00, 0x00, 0xff}

// compare returns -1, 0 or +1 as r*r is less than, equal to or greater
// than n.
func compare(r, n uint64) int {
	hi, lo := bits.Mul64(r, r)
	switch {
	case hi > 0 || lo > n:
		return 1
	case lo < n:
		return -1
	default:
		return 0
	}
}

func ceilSqrt(n uint64) uint64 {
	// float64 is only an estimate this close to 2^64
	r := uint64(math.Sqrt(float64(n)))
	for r > 0 && compare(r, n) > 0 {
		r--
	}
	for compare(r, n) < 0 {
		r++
	}
	return r
}

// Dimensions returns the width and height of the canvas needed to hold size
// bytes. The width is the ceiling of the square root of size and the height
// is however many rows of that width are needed. An empty input still gets
// a 1x1 canvas.
func Dimensions(size uint64) (uint32, uint32, error) {
	if size > MaxSize {
		return 0, 0, ErrFileTooLarge
	}
	if size == 0 {
		return 1, 1, nil
	}

	width := ceilSqrt(size)
	height := size / width
	if size%width != 0 {
		height++
	}

	return uint32(width), uint32(height), nil
}
