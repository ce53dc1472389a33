/*
Package chart renders the byte to color mapping as an image.

The chart is a 16 by 16 grid of square cells with byte 0x00 in the top left
corner and byte 0xff in the bottom right, reading row-major. Each cell can
optionally be labelled with its byte value in hex.
*/
package chart

import (
	"errors"
	"image"
	"image/color"

	"github.com/bodgit/picbin/palette"
)

const (
	cellX    = 16
	cellY    = 16
	numCells = cellX * cellY

	// MinLabelCell is the smallest cell size that fits a label
	MinLabelCell = 16

	// DefaultCell is the default cell size in pixels
	DefaultCell = 32

	// MaxCell is the largest cell size allowed
	MaxCell = 4096
)

// ErrCellSize is returned for a cell size that is too small or too large.
var ErrCellSize = errors.New("chart: invalid cell size")

// Options control how the chart is rendered.
type Options struct {
	// Cell is the width and height of each cell in pixels
	Cell int
	// Labels draws the byte value in each cell
	Labels bool
}

// Swatches returns the chart with each cell being a single pixel.
func Swatches() *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, cellX, cellY))
	for i, c := range palette.Table() {
		m.Set(i%cellX, i/cellX, c)
	}
	return m
}

// Return black or white, whichever is more legible on c
func labelColor(c palette.Color) color.Color {
	if 299*int(c.R)+587*int(c.G)+114*int(c.B) > 128*1000 {
		return color.Black
	}
	return color.White
}

// Render returns the chart drawn according to o.
func Render(o Options) (image.Image, error) {
	if o.Cell < 1 || o.Cell > MaxCell || (o.Labels && o.Cell < MinLabelCell) {
		return nil, ErrCellSize
	}

	m := scale(Swatches(), o.Cell)
	if o.Labels {
		label(m, o.Cell)
	}

	return m, nil
}
