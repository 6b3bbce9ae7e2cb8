package wheel

import (
	"math"

	"github.com/gogpu/gg"
)

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeDegrees maps any angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a = 0
	}
	return a
}

// wedgePath builds the outline of one segment between startDeg and endDeg.
// Angle 0 points along +X and grows clockwise in screen space.
// With inner > 0 the wedge is a ring sector whose inner arc runs backwards.
func wedgePath(cx, cy, inner, outer, startDeg, endDeg float64) *gg.Path {
	a1, a2 := DegToRad(startDeg), DegToRad(endDeg)
	p := gg.NewPath()
	if inner > 0 {
		p.MoveTo(cx+outer*math.Cos(a1), cy+outer*math.Sin(a1))
		appendArc(p, cx, cy, outer, a1, a2)
		p.LineTo(cx+inner*math.Cos(a2), cy+inner*math.Sin(a2))
		appendArc(p, cx, cy, inner, a2, a1)
	} else {
		p.MoveTo(cx, cy)
		p.LineTo(cx+outer*math.Cos(a1), cy+outer*math.Sin(a1))
		appendArc(p, cx, cy, outer, a1, a2)
	}
	p.Close()
	return p
}

// appendArc continues p along a circular arc from a1 to a2 (radians).
// The sweep may be negative. The current point must already sit on the
// arc start. Each piece spans at most a quarter turn and is one cubic.
func appendArc(p *gg.Path, cx, cy, r, a1, a2 float64) {
	sweep := a2 - a1
	if sweep == 0 || r <= 0 {
		return
	}
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	for i := 0; i < n; i++ {
		s := a1 + float64(i)*step
		e := s + step
		cs, ss := math.Cos(s), math.Sin(s)
		ce, se := math.Cos(e), math.Sin(e)
		p.CubicTo(
			cx+r*(cs-k*ss), cy+r*(ss+k*cs),
			cx+r*(ce+k*se), cy+r*(se-k*ce),
			cx+r*ce, cy+r*se,
		)
	}
}

// linePath is a single open segment.
func linePath(x1, y1, x2, y2 float64) *gg.Path {
	p := gg.NewPath()
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	return p
}

// circlePath is a closed disc outline.
func circlePath(cx, cy, r float64) *gg.Path {
	p := gg.NewPath()
	p.Circle(cx, cy, r)
	return p
}
