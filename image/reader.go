package image

import (
	"image"
	_ "image/gif"  // register
	_ "image/jpeg" // register
	_ "image/png"  // register
	"io"

	_ "github.com/xfmoulet/qoi" // register
	_ "golang.org/x/image/bmp"  // register
	_ "golang.org/x/image/tiff" // register
	_ "golang.org/x/image/webp" // register
)

// Decode reads an image in any supported format from r. The format name is
// also returned.
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}
