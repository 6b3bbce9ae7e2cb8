// internal/ui/pointer.go
package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"prize-wheel/internal/config"
)

// Pointer — неподвижная стрелка на ободе колеса. Угол в градусах, 0 — вправо,
// по часовой стрелке, как у сегментов колеса.
type Pointer struct {
	CX, CY float64
	Radius float64
	Angle  float64
	Size   float64

	fillImg   *ebiten.Image
	strokeImg *ebiten.Image
}

func NewPointer(cx, cy, radius, angle float64) *Pointer {
	fill := ebiten.NewImage(1, 1)
	fill.Fill(config.PointerColor)
	stroke := ebiten.NewImage(1, 1)
	stroke.Fill(config.PointerStrokeColor)
	return &Pointer{CX: cx, CY: cy, Radius: radius, Angle: angle, Size: config.PointerSize, fillImg: fill, strokeImg: stroke}
}

// Vertices возвращает треугольник: вершина на ободе, основание снаружи.
func (p *Pointer) Vertices() [3][2]float64 {
	a := p.Angle * math.Pi / 180
	ux, uy := math.Cos(a), math.Sin(a)
	tip := [2]float64{p.CX + ux*(p.Radius-p.Size*0.4), p.CY + uy*(p.Radius-p.Size*0.4)}
	base := p.Radius + p.Size*0.8
	bx, by := p.CX+ux*base, p.CY+uy*base
	half := p.Size / 2
	return [3][2]float64{
		tip,
		{bx - uy*half, by + ux*half},
		{bx + uy*half, by - ux*half},
	}
}

func (p *Pointer) Draw(screen *ebiten.Image) {
	v := p.Vertices()
	var path vector.Path
	path.MoveTo(float32(v[0][0]), float32(v[0][1]))
	path.LineTo(float32(v[1][0]), float32(v[1][1]))
	path.LineTo(float32(v[2][0]), float32(v[2][1]))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	screen.DrawTriangles(vs, is, p.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	vs, is = path.AppendVerticesAndIndicesForStroke(vs[:0], is[:0], &vector.StrokeOptions{
		Width:    float32(config.StrokeWidth),
		LineJoin: vector.LineJoinRound,
	})
	screen.DrawTriangles(vs, is, p.strokeImg, &ebiten.DrawTrianglesOptions{AntiAlias: true, FillRule: ebiten.FillRuleFillAll})
}
