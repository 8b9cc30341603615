//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data and draws
// it scaled up, one texel per cell.
type GridPainter struct {
	n    int
	img  *ebiten.Image
	buf  []byte
	line *ebiten.Image
}

// NewGridPainter allocates a painter for a square grid with side n.
func NewGridPainter(n int) *GridPainter {
	gp := &GridPainter{n: n, buf: make([]byte, 4*n*n)}
	gp.img = ebiten.NewImage(n, n)
	gp.line = ebiten.NewImage(1, 1)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it at
// (0, offsetY), scaled so each cell covers cellSize pixels.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, cellSize, offsetY int) {
	if len(cells) != gp.n*gp.n {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	op.GeoM.Translate(0, float64(offsetY))
	dst.DrawImage(gp.img, op)
}

// DrawGridLines paints 1px cell borders over the blitted grid so individual
// cells stay visible as click targets.
func (gp *GridPainter) DrawGridLines(dst *ebiten.Image, lineColor color.Color, cellSize, offsetY int) {
	gp.line.Fill(lineColor)
	span := gp.n * cellSize
	for i := 0; i <= gp.n; i++ {
		h := &ebiten.DrawImageOptions{}
		h.GeoM.Scale(float64(span), 1)
		h.GeoM.Translate(0, float64(offsetY+i*cellSize))
		dst.DrawImage(gp.line, h)

		v := &ebiten.DrawImageOptions{}
		v.GeoM.Scale(1, float64(span))
		v.GeoM.Translate(float64(i*cellSize), float64(offsetY))
		dst.DrawImage(gp.line, v)
	}
}

// Size returns the side length of the underlying image.
func (gp *GridPainter) Size() int { return gp.n }
