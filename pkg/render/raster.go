// pkg/render/raster.go
package render

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"prize-wheel/pkg/wheel"
)

// RasterSurface is a headless wheel.Surface on a gogpu/gg context. Paths go
// through gg; text and images are resampled with x/image/draw using the
// current gg matrix, since gg places both axis-aligned only.
type RasterSurface struct {
	ctx        *gg.Context
	fonts      *FontBook
	background color.Color
}

// NewRasterSurface creates a w×h raster. A nil background clears to transparent.
func NewRasterSurface(w, h int, fonts *FontBook, background color.Color) *RasterSurface {
	return &RasterSurface{
		ctx:        gg.NewContext(w, h),
		fonts:      fonts,
		background: background,
	}
}

func (s *RasterSurface) Size() (float64, float64) {
	return float64(s.ctx.Width()), float64(s.ctx.Height())
}

func (s *RasterSurface) Clear() {
	if s.background == nil {
		s.ctx.Clear()
		return
	}
	s.ctx.ClearWithColor(gg.FromColor(s.background))
}

func (s *RasterSurface) Push()                  { s.ctx.Push() }
func (s *RasterSurface) Pop()                   { s.ctx.Pop() }
func (s *RasterSurface) Translate(x, y float64) { s.ctx.Translate(x, y) }
func (s *RasterSurface) Rotate(angle float64)   { s.ctx.Rotate(angle) }
func (s *RasterSurface) Scale(x, y float64)     { s.ctx.Scale(x, y) }

// DrawPath fills then strokes p.
func (s *RasterSurface) DrawPath(p *gg.Path, st wheel.Style) {
	if st.Fill == nil && (st.Stroke == nil || st.LineWidth <= 0) {
		return
	}
	s.ctx.ClearPath()
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			s.ctx.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			s.ctx.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			s.ctx.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			s.ctx.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			s.ctx.ClosePath()
		}
	}
	if st.Fill != nil {
		s.ctx.SetColor(st.Fill)
		if err := s.ctx.FillPreserve(); err != nil {
			wheel.Logger().Warn("render: fill failed", "err", err)
		}
	}
	if st.Stroke != nil && st.LineWidth > 0 {
		s.ctx.SetColor(st.Stroke)
		s.ctx.SetLineWidth(st.LineWidth)
		if err := s.ctx.StrokePreserve(); err != nil {
			wheel.Logger().Warn("render: stroke failed", "err", err)
		}
	}
	s.ctx.ClearPath()
}

func (s *RasterSurface) DrawText(str string, x, y float64, f wheel.Font, a wheel.Align, st wheel.Style) {
	if str == "" || (st.Fill == nil && st.Stroke == nil) {
		return
	}
	img, ax, ay := rasterizeText(s.fonts.Face(f), VisualOrder(str), a, st)
	s.blit(img, x-ax, y-ay)
}

func (s *RasterSurface) MeasureText(str string, f wheel.Font) float64 {
	return s.fonts.Measure(str, f)
}

func (s *RasterSurface) DrawImage(img image.Image, x, y float64) {
	s.blit(img, x, y)
}

// blit composites src with its top-left at (x, y) in the current frame.
func (s *RasterSurface) blit(src image.Image, x, y float64) {
	s.flush()
	m := s.ctx.GetTransform().Multiply(gg.Translate(x, y))
	b := src.Bounds()
	// Aff3 отображает координаты источника в координаты приёмника
	aff := f64.Aff3{
		m.A, m.B, m.C - m.A*float64(b.Min.X) - m.B*float64(b.Min.Y),
		m.D, m.E, m.F - m.D*float64(b.Min.X) - m.E*float64(b.Min.Y),
	}
	xdraw.BiLinear.Transform(s.target(), aff, src, b, xdraw.Over, nil)
}

// target wraps the gg pixmap so x/image/draw writes straight into it.
func (s *RasterSurface) target() *image.RGBA {
	pm := s.ctx.ResizeTarget()
	return &image.RGBA{
		Pix:    pm.Data(),
		Stride: pm.Width() * 4,
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
}

// flush lands pending GPU work in the pixmap before it is read directly.
func (s *RasterSurface) flush() {
	warnFlush(s.ctx.FlushGPU())
}

func warnFlush(err error) {
	if err != nil {
		wheel.Logger().Warn("render: gpu flush failed", "err", err)
	}
}

// Image returns a snapshot of the raster.
func (s *RasterSurface) Image() image.Image {
	s.flush()
	return s.ctx.Image()
}

// At reads one pixel, for tests and pixel checks.
func (s *RasterSurface) At(x, y int) color.Color {
	return s.ctx.ResizeTarget().GetPixel(x, y).Color()
}

// EncodePNG writes the raster as PNG.
func (s *RasterSurface) EncodePNG(w io.Writer) error {
	return s.ctx.EncodePNG(w)
}
