/*
Package palette implements the mapping between byte values and the colors
used to represent them.

Each byte is placed on a 360 degree hue wheel which is split into six
sections; red, yellow, lime, cyan, blue and fuchsia. Within a section one
channel is held at full intensity, one is zero and the third is
interpolated. Every color therefore has at least one channel at 0xff and
one at 0x00 so neither black nor white is ever produced.
*/
package palette

import (
	"fmt"
	"image/color"
)

const (
	numColors = 256
	numHues   = 360
	sections  = 6
	section   = numHues / sections
)

// Color is an opaque 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Convert returns the 8-bit RGB channels of c, ignoring alpha.
func Convert(c color.Color) Color {
	if v, ok := c.(Color); ok {
		return v
	}
	// Straight rather than premultiplied, so translucent pixels keep their color
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B}
}

// FromByte returns the color for the byte b.
func FromByte(b byte) Color {
	v := uint32(b)

	// 0 = red, 120 = lime, 240 = blue
	hue := numHues * v / numColors
	idx := hue / section
	// Offset is taken from the byte value rather than the hue
	offset := v % section

	inc := uint8(256 * offset / section)
	dec := 255 - inc

	switch idx {
	case 0:
		return Color{0xff, inc, 0x00}
	case 1:
		return Color{dec, 0xff, 0x00}
	case 2:
		return Color{0x00, 0xff, inc}
	case 3:
		return Color{0x00, dec, 0xff}
	case 4:
		return Color{inc, 0x00, 0xff}
	case 5:
		return Color{0xff, 0x00, dec}
	default:
		panic(fmt.Sprintf("palette: hue section %d out of range", idx))
	}
}

// Table returns the color for every byte value in ascending order.
func Table() (t [numColors]Color) {
	for i := range t {
		t[i] = FromByte(byte(i))
	}
	return
}

// Palette returns the same colors as Table as a color.Palette.
func Palette() color.Palette {
	p := make(color.Palette, numColors)
	for i, c := range Table() {
		p[i] = c
	}
	return p
}
