// pkg/render/ebiten.go
package render

import (
	"image"
	"image/color"
	"sync"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"prize-wheel/pkg/wheel"
)

// EbitenSurface paints the wheel into an offscreen ebiten image that the
// game blits every frame. Transforms are kept as a GeoM stack.
// Drawing and Resize belong to the game loop goroutine; other goroutines
// queue work with Schedule and the loop runs it with RunScheduled.
type EbitenSurface struct {
	target  *ebiten.Image
	fillImg *ebiten.Image
	fonts   *FontBook
	w, h    int

	geo   ebiten.GeoM
	stack []ebiten.GeoM

	vs []ebiten.Vertex
	is []uint16

	images map[image.Image]*ebiten.Image

	mu       sync.Mutex
	nextID   int
	watchers map[int]func(w, h float64)
	pending  []func()
}

// NewEbitenSurface allocates a w×h offscreen target.
func NewEbitenSurface(w, h int, fonts *FontBook) *EbitenSurface {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &EbitenSurface{
		target:   ebiten.NewImage(w, h),
		fillImg:  fillImg,
		fonts:    fonts,
		w:        w,
		h:        h,
		vs:       make([]ebiten.Vertex, 0, 256),
		is:       make([]uint16, 0, 384),
		images:   make(map[image.Image]*ebiten.Image),
		watchers: make(map[int]func(w, h float64)),
	}
}

// Image is the offscreen target to draw on screen.
func (s *EbitenSurface) Image() *ebiten.Image { return s.target }

// Resize reallocates the target and notifies subscribers when the size changes.
func (s *EbitenSurface) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == s.w && h == s.h) {
		return
	}
	s.target.Deallocate()
	s.target = ebiten.NewImage(w, h)
	s.w, s.h = w, h

	s.mu.Lock()
	fns := make([]func(w, h float64), 0, len(s.watchers))
	for _, fn := range s.watchers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(float64(w), float64(h))
	}
}

// Schedule implements wheel.Scheduler. Safe for concurrent use.
func (s *EbitenSurface) Schedule(fn func()) {
	s.mu.Lock()
	s.pending = append(s.pending, fn)
	s.mu.Unlock()
}

// RunScheduled runs queued redraws. Call it from the game loop.
func (s *EbitenSurface) RunScheduled() {
	s.mu.Lock()
	fns := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// OnResize implements wheel.ResizeNotifier.
func (s *EbitenSurface) OnResize(fn func(w, h float64)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}
}

func (s *EbitenSurface) Size() (float64, float64) { return float64(s.w), float64(s.h) }

func (s *EbitenSurface) Clear() { s.target.Clear() }

func (s *EbitenSurface) Push() { s.stack = append(s.stack, s.geo) }

func (s *EbitenSurface) Pop() {
	if n := len(s.stack); n > 0 {
		s.geo = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
}

// apply prepends m: it acts in the current local frame, like a canvas.
func (s *EbitenSurface) apply(m ebiten.GeoM) {
	m.Concat(s.geo)
	s.geo = m
}

func (s *EbitenSurface) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	s.apply(m)
}

func (s *EbitenSurface) Rotate(angle float64) {
	var m ebiten.GeoM
	m.Rotate(angle)
	s.apply(m)
}

func (s *EbitenSurface) Scale(x, y float64) {
	var m ebiten.GeoM
	m.Scale(x, y)
	s.apply(m)
}

// DrawPath triangulates p with ebiten's vector package and maps the
// vertices through the current GeoM.
func (s *EbitenSurface) DrawPath(p *gg.Path, st wheel.Style) {
	vp := toVectorPath(p)
	if st.Fill != nil {
		s.vs, s.is = vp.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
		s.flush(st.Fill, ebiten.FillRuleNonZero)
	}
	if st.Stroke != nil && st.LineWidth > 0 {
		s.vs, s.is = vp.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
			Width:    float32(st.LineWidth),
			LineJoin: vector.LineJoinRound,
		})
		s.flush(st.Stroke, ebiten.FillRuleFillAll)
	}
}

func (s *EbitenSurface) flush(c color.Color, rule ebiten.FillRule) {
	r, g, b, a := vertexColor(c)
	for i := range s.vs {
		x, y := s.geo.Apply(float64(s.vs[i].DstX), float64(s.vs[i].DstY))
		s.vs[i].DstX, s.vs[i].DstY = float32(x), float32(y)
		s.vs[i].ColorR = r
		s.vs[i].ColorG = g
		s.vs[i].ColorB = b
		s.vs[i].ColorA = a
	}
	s.target.DrawTriangles(s.vs, s.is, s.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	})
}

func toVectorPath(p *gg.Path) *vector.Path {
	vp := &vector.Path{}
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			vp.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case gg.LineTo:
			vp.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case gg.QuadTo:
			vp.QuadTo(float32(e.Control.X), float32(e.Control.Y), float32(e.Point.X), float32(e.Point.Y))
		case gg.CubicTo:
			vp.CubicTo(float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y))
		case gg.Close:
			vp.Close()
		}
	}
	return vp
}

// DrawText draws with ebiten's text package; the outline is a halo of
// offset copies underneath the fill.
func (s *EbitenSurface) DrawText(str string, x, y float64, f wheel.Font, a wheel.Align, st wheel.Style) {
	if str == "" {
		return
	}
	str = VisualOrder(str)
	face := s.fonts.Face(f)
	ox, oy, _ := textOrigin(face, str, x, y, a)
	draw := func(dx, dy float64, c color.Color) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(ox+dx, oy+dy)
		op.GeoM.Concat(s.geo)
		op.ColorScale.ScaleWithColor(c)
		op.Filter = ebiten.FilterLinear
		text.DrawWithOptions(s.target, str, face, op)
	}
	if st.Stroke != nil {
		for _, off := range haloOffsets(st.LineWidth) {
			draw(off[0], off[1], st.Stroke)
		}
	}
	if st.Fill != nil {
		draw(0, 0, st.Fill)
	}
}

func (s *EbitenSurface) MeasureText(str string, f wheel.Font) float64 {
	return s.fonts.Measure(str, f)
}

// DrawImage uploads img once and draws it with the current transform.
func (s *EbitenSurface) DrawImage(img image.Image, x, y float64) {
	eimg, ok := s.images[img]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		s.images[img] = eimg
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(s.geo)
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(eimg, op)
}
