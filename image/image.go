/*
Package image reads and writes canvases in standard raster image formats.

The format written is chosen from the destination file extension. PNG,
BMP, TIFF and QOI are always lossless. GIF is lossless as long as the image
uses no more than 256 distinct colors, which holds for any canvas that
doesn't use every byte value and padding at the same time; beyond that the
palette is reduced with a median cut quantizer. Reading additionally
accepts JPEG and WebP although neither is likely to survive a round trip.
*/
package image

import (
	"errors"
	"path/filepath"
	"strings"
)

// Supported output formats.
const (
	PNG  = "png"
	GIF  = "gif"
	BMP  = "bmp"
	TIFF = "tiff"
	QOI  = "qoi"
)

const maxPaletteColors = 256

// ErrUnsupportedFormat is returned for an unknown output format.
var ErrUnsupportedFormat = errors.New("image: unsupported format")

var extensions = map[string]string{
	".png":  PNG,
	".gif":  GIF,
	".bmp":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
	".qoi":  QOI,
}

// Format returns the output format implied by the extension of path.
func Format(path string) (string, error) {
	if f, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return f, nil
	}
	return "", ErrUnsupportedFormat
}

// IsImage reports whether path has the extension of a supported output
// format.
func IsImage(path string) bool {
	_, err := Format(path)
	return err == nil
}
