package wheel

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// Style carries explicit paint parameters for one primitive. A nil colour
// means the corresponding pass is skipped.
type Style struct {
	Fill      color.Color
	Stroke    color.Color
	LineWidth float64
}

// Align — horizontal text anchor.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// Font describes a text face by family, pixel size and weight.
type Font struct {
	Family string
	Size   float64
	Weight string
}

// Bold reports whether the weight asks for a bold face.
func (f Font) Bold() bool {
	switch f.Weight {
	case "bold", "bolder", "600", "700", "800", "900":
		return true
	}
	return false
}

// Surface is the drawing target the wheel paints on. Transforms follow
// canvas semantics: each call applies in the current local frame.
// Angles are in radians.
type Surface interface {
	Size() (w, h float64)
	Clear()

	Push()
	Pop()
	Translate(x, y float64)
	Rotate(angle float64)
	Scale(x, y float64)

	// DrawPath fills then strokes p in the current frame.
	DrawPath(p *gg.Path, st Style)
	// DrawText draws s with its vertical middle on y; align picks the x anchor.
	DrawText(s string, x, y float64, f Font, align Align, st Style)
	MeasureText(s string, f Font) float64
	DrawImage(img image.Image, x, y float64)
}

// ResizeNotifier is implemented by surfaces whose size can change.
// The returned function cancels the subscription.
type ResizeNotifier interface {
	OnResize(fn func(w, h float64)) (cancel func())
}

// Scheduler is implemented by surfaces that must only be drawn from one
// goroutine. Redraws triggered by a resize or a finished image load are
// handed to Schedule instead of running on the timer or loader goroutine.
type Scheduler interface {
	Schedule(fn func())
}
