// pkg/render/recorder.go
package render

import (
	"image"
	"math"

	"github.com/gogpu/gg"

	"prize-wheel/pkg/wheel"
)

// OpKind — тип записанной операции.
type OpKind int

const (
	OpClear OpKind = iota
	OpPath
	OpText
	OpImage
)

// Op is one recorded draw call with its coordinates already in device space.
type Op struct {
	Kind   OpKind
	Style  wheel.Style
	Matrix gg.Matrix

	// OpPath: end points of every path element, and whether it was closed.
	Points []gg.Point
	Closed bool

	// OpText / OpImage
	Text   string
	Font   wheel.Font
	Align  wheel.Align
	Origin gg.Point
	Angle  float64 // direction of the local X axis, radians
	Image  image.Image
}

// Recorder is a wheel.Surface that remembers what was drawn. Text width is
// CharWidth per rune unless Fonts is set.
type Recorder struct {
	W, H      float64
	CharWidth float64
	Fonts     *FontBook

	Ops   []Op
	m     gg.Matrix
	stack []gg.Matrix

	resize []func(w, h float64)
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h, CharWidth: 10, m: gg.Identity()}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Matrix: r.m})
}

func (r *Recorder) Push() { r.stack = append(r.stack, r.m) }

func (r *Recorder) Pop() {
	if n := len(r.stack); n > 0 {
		r.m = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
}

func (r *Recorder) Translate(x, y float64) { r.m = r.m.Multiply(gg.Translate(x, y)) }
func (r *Recorder) Rotate(angle float64)   { r.m = r.m.Multiply(gg.Rotate(angle)) }
func (r *Recorder) Scale(x, y float64)     { r.m = r.m.Multiply(gg.Scale(x, y)) }

// Depth is the number of unmatched Push calls.
func (r *Recorder) Depth() int { return len(r.stack) }

func (r *Recorder) DrawPath(p *gg.Path, st wheel.Style) {
	op := Op{Kind: OpPath, Style: st, Matrix: r.m}
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			op.Points = append(op.Points, r.m.TransformPoint(e.Point))
		case gg.LineTo:
			op.Points = append(op.Points, r.m.TransformPoint(e.Point))
		case gg.QuadTo:
			op.Points = append(op.Points, r.m.TransformPoint(e.Point))
		case gg.CubicTo:
			op.Points = append(op.Points, r.m.TransformPoint(e.Point))
		case gg.Close:
			op.Closed = true
		}
	}
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) DrawText(s string, x, y float64, f wheel.Font, a wheel.Align, st wheel.Style) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpText,
		Style:  st,
		Matrix: r.m,
		Text:   s,
		Font:   f,
		Align:  a,
		Origin: r.m.TransformPoint(gg.Pt(x, y)),
		Angle:  r.angle(),
	})
}

func (r *Recorder) MeasureText(s string, f wheel.Font) float64 {
	if r.Fonts != nil {
		return r.Fonts.Measure(s, f)
	}
	return r.CharWidth * float64(len([]rune(s)))
}

func (r *Recorder) DrawImage(img image.Image, x, y float64) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpImage,
		Matrix: r.m,
		Origin: r.m.TransformPoint(gg.Pt(x, y)),
		Angle:  r.angle(),
		Image:  img,
	})
}

// OnResize implements wheel.ResizeNotifier.
func (r *Recorder) OnResize(fn func(w, h float64)) func() {
	r.resize = append(r.resize, fn)
	i := len(r.resize) - 1
	return func() { r.resize[i] = nil }
}

// Resize changes the size and notifies subscribers.
func (r *Recorder) Resize(w, h float64) {
	r.W, r.H = w, h
	for _, fn := range r.resize {
		if fn != nil {
			fn(w, h)
		}
	}
}

// Reset forgets recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Filter returns the ops of one kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) angle() float64 {
	return math.Atan2(r.m.D, r.m.A)
}
