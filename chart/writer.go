package chart

import (
	"fmt"
	"image"

	"github.com/bodgit/picbin/palette"
	"github.com/disintegration/gift"
	"github.com/fogleman/gg"
)

func scale(m *image.RGBA, cell int) *image.RGBA {
	b := m.Bounds()
	g := gift.New(gift.Resize(b.Dx()*cell, b.Dy()*cell, gift.NearestNeighborResampling))
	dst := image.NewRGBA(g.Bounds(b))
	g.Draw(dst, m)
	return dst
}

func label(m *image.RGBA, cell int) {
	dc := gg.NewContextForRGBA(m)
	for i, c := range palette.Table() {
		x := float64(i%cellX*cell) + float64(cell)/2
		y := float64(i/cellX*cell) + float64(cell)/2

		dc.SetColor(labelColor(c))
		dc.DrawStringAnchored(fmt.Sprintf("%02X", i), x, y, 0.5, 0.5)
	}
}
