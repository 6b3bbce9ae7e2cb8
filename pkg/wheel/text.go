package wheel

import "math"

// textLayout is the fully resolved text setup for one segment.
type textLayout struct {
	font        Font
	style       Style
	orientation TextOrientation
	align       Align
	reversed    bool
	margin      float64
}

func (w *Wheel) resolveText(seg *Segment) textLayout {
	cfg := &w.cfg
	l := textLayout{
		font: Font{
			Family: pick(seg.TextFontFamily, cfg.TextFontFamily),
			Size:   pickF(seg.TextFontSize, cfg.TextFontSize),
			Weight: pick(seg.TextFontWeight, cfg.TextFontWeight),
		},
		style: Style{
			Fill:      paint(pick(seg.TextFillStyle, cfg.TextFillStyle)),
			Stroke:    paint(pick(seg.TextStrokeStyle, cfg.TextStrokeStyle)),
			LineWidth: pickF(seg.TextLineWidth, cfg.TextLineWidth),
		},
		orientation: TextOrientation(pick(string(seg.TextOrientation), string(cfg.TextOrientation))),
		reversed:    TextDirection(pick(string(seg.TextDirection), string(cfg.TextDirection))) == TextReversed,
		margin:      pickF(seg.TextMargin, cfg.TextMargin),
	}
	switch TextAlignment(pick(string(seg.TextAlignment), string(cfg.TextAlignment))) {
	case TextAlignLeft:
		l.align = AlignLeft
	case TextAlignRight:
		l.align = AlignRight
	default:
		l.align = AlignCenter
	}
	return l
}

// textRadius — distance from the centre where labels sit.
func (w *Wheel) textRadius(margin float64) float64 {
	if margin != 0 {
		return margin
	}
	return (w.cfg.OuterRadius-w.cfg.InnerRadius)/2 + w.cfg.InnerRadius
}

// drawSegmentText paints every non-empty label at its segment bisector.
func (w *Wheel) drawSegmentText() {
	last := w.cfg.RotationAngle
	for i := range w.segments {
		seg := &w.segments[i]
		if seg.Text != "" {
			l := w.resolveText(seg)
			bisector := last + seg.Size/2
			switch l.orientation {
			case TextCurved:
				w.drawCurvedText(seg.Text, last, seg.Size, l)
			case TextVertical:
				w.drawVerticalText(seg.Text, bisector, l)
			default:
				w.drawHorizontalText(seg.Text, bisector, l)
			}
		}
		last += seg.Size
	}
}

// drawHorizontalText writes along the radius, reading outwards.
func (w *Wheel) drawHorizontalText(s string, bisector float64, l textLayout) {
	sf := w.surface
	sf.Push()
	defer sf.Pop()
	sf.Translate(w.cfg.CenterX, w.cfg.CenterY)
	sf.Rotate(DegToRad(bisector))
	sf.Translate(w.textRadius(l.margin), 0)
	if l.reversed {
		sf.Scale(-1, -1)
	}
	sf.DrawText(s, 0, 0, l.font, l.align, l.style)
}

// drawVerticalText writes across the radius: the frame is turned a quarter
// back so its Y axis runs along the bisector.
func (w *Wheel) drawVerticalText(s string, bisector float64, l textLayout) {
	sf := w.surface
	sf.Push()
	defer sf.Pop()
	sf.Translate(w.cfg.CenterX, w.cfg.CenterY)
	sf.Rotate(DegToRad(bisector - 90))
	sf.Translate(0, w.textRadius(l.margin))
	if l.reversed {
		sf.Scale(-1, -1)
	}
	sf.DrawText(s, 0, 0, l.font, l.align, l.style)
}

// drawCurvedText lays runes along the arc at textRadius, one glyph at a time.
func (w *Wheel) drawCurvedText(s string, start, size float64, l textLayout) {
	r := w.textRadius(l.margin)
	if r <= 0 {
		return
	}
	sf := w.surface
	runes := []rune(s)
	steps := make([]float64, len(runes))
	var total float64
	for i, ch := range runes {
		steps[i] = sf.MeasureText(string(ch), l.font) / r
		total += steps[i]
	}

	// offset в радианах от начала сегмента
	var offset float64
	switch l.align {
	case AlignLeft:
		offset = 0
	case AlignRight:
		offset = DegToRad(size) - total
	default:
		offset = (DegToRad(size) - total) / 2
	}
	dir, turn := 1.0, math.Pi/2
	anchor := DegToRad(start)
	if l.reversed {
		dir, turn = -1, -math.Pi/2
		anchor = DegToRad(start + size)
	}

	sf.Push()
	defer sf.Pop()
	sf.Translate(w.cfg.CenterX, w.cfg.CenterY)
	sf.Rotate(anchor)
	for i, ch := range runes {
		mid := offset + steps[i]/2
		sf.Push()
		sf.Rotate(dir * mid)
		sf.Translate(r, 0)
		sf.Rotate(turn)
		sf.DrawText(string(ch), 0, 0, l.font, AlignCenter, l.style)
		sf.Pop()
		offset += steps[i]
	}
}
