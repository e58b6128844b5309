//go:build ebiten

package render

import (
	"image/color"
	"iter"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads the CPU grid into a single RGBA image each frame.
type GridPainter struct {
	img *ebiten.Image
	buf []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit converts rows into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, rows iter.Seq[iter.Seq[uint8]], on, off color.Color, scale int) {
	fillBinaryRGBA(gp.buf, rows, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
