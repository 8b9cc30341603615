//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	toolbarBg   = color.RGBA{200, 200, 200, 255}
	buttonBg    = color.RGBA{255, 255, 255, 255}
	buttonFlash = color.RGBA{0, 255, 0, 255}
	buttonEdge  = color.RGBA{0, 0, 0, 255}
)

var pixel *ebiten.Image

func fillRect(dst *ebiten.Image, x, y, w, h int, c color.Color) {
	if pixel == nil {
		pixel = ebiten.NewImage(1, 1)
	}
	pixel.Fill(c)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	dst.DrawImage(pixel, op)
}

// Draw paints the toolbar strip and its buttons across the given width.
// Buttons clicked within the flash window render green instead of white.
func (t *Toolbar) Draw(dst *ebiten.Image, width int) {
	fillRect(dst, 0, 0, width, ToolbarHeight, toolbarBg)

	for _, b := range t.buttons {
		bg := buttonBg
		if t.Flashing(b.Cmd) {
			bg = buttonFlash
		}
		r := b.Rect
		// 2px border drawn as a filled rect under the face.
		fillRect(dst, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), buttonEdge)
		fillRect(dst, r.Min.X+2, r.Min.Y+2, r.Dx()-4, r.Dy()-4, bg)
		text.Draw(dst, b.Label, basicfont.Face7x13, r.Min.X+10, r.Min.Y+17, buttonEdge)
	}
}
