// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"prize-wheel/pkg/render"
)

// DrawCentered рисует строку так, чтобы её рамка была по центру (cx, cy)
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy float64, clr color.Color) {
	if s == "" || face == nil {
		return
	}
	s = render.VisualOrder(s)
	b := text.BoundString(face, s)
	x := int(cx) - b.Dx()/2 - b.Min.X
	y := int(cy) - b.Dy()/2 - b.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}
