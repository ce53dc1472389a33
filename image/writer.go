package image

import (
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Return the distinct colors in m, or false if there are more than max
func uniqueColors(m image.Image, max int) (color.Palette, bool) {
	b := m.Bounds()
	seen := make(map[color.RGBA]struct{})
	p := make(color.Palette, 0, max)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(m.At(x, y)).(color.RGBA)
			if _, ok := seen[c]; ok {
				continue
			}
			if len(p) == max {
				return nil, false
			}
			seen[c] = struct{}{}
			p = append(p, c)
		}
	}
	return p, true
}

func toPaletted(m image.Image, p color.Palette) *image.Paletted {
	b := m.Bounds()
	index := make(map[color.RGBA]uint8, len(p))
	for i, c := range p {
		index[c.(color.RGBA)] = uint8(i)
	}

	// Adjust image so that top-left corner is at (0, 0)
	pm := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), p)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(m.At(x, y)).(color.RGBA)
			pm.SetColorIndex(x-b.Min.X, y-b.Min.Y, index[c])
		}
	}
	return pm
}

func encodeGIF(w io.Writer, m image.Image) error {
	if p, ok := uniqueColors(m, maxPaletteColors); ok {
		return gif.Encode(w, toPaletted(m, p), nil)
	}
	return gif.Encode(w, m, &gif.Options{
		NumColors: maxPaletteColors,
		Quantizer: quantize.MedianCutQuantizer{},
	})
}

// Lossless reports whether encoding m in the given format preserves the
// color of every pixel.
func Lossless(m image.Image, format string) bool {
	if format != GIF {
		return true
	}
	_, ok := uniqueColors(m, maxPaletteColors)
	return ok
}

// Encode writes the Image m to w in the given format.
func Encode(w io.Writer, m image.Image, format string) error {
	switch format {
	case PNG:
		return png.Encode(w, m)
	case GIF:
		return encodeGIF(w, m)
	case BMP:
		return bmp.Encode(w, m)
	case TIFF:
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	case QOI:
		return qoi.Encode(w, m)
	default:
		return ErrUnsupportedFormat
	}
}
