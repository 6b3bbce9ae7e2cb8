package wheel

// drawSegments paints every wedge clockwise from RotationAngle.
func (w *Wheel) drawSegments() {
	cfg := &w.cfg
	last := cfg.RotationAngle
	for i := range w.segments {
		seg := &w.segments[i]
		p := wedgePath(cfg.CenterX, cfg.CenterY, cfg.InnerRadius, cfg.OuterRadius, last, last+seg.Size)
		w.surface.DrawPath(p, w.segmentStyle(seg))
		last += seg.Size
	}
}

// segmentStyle resolves fill, stroke and width: segment override, else wheel default.
func (w *Wheel) segmentStyle(seg *Segment) Style {
	return Style{
		Fill:      paint(pick(seg.FillStyle, w.cfg.FillStyle)),
		Stroke:    paint(pick(seg.StrokeStyle, w.cfg.StrokeStyle)),
		LineWidth: pickF(seg.LineWidth, w.cfg.LineWidth),
	}
}

func pick(override, def string) string {
	if override != "" {
		return override
	}
	return def
}

func pickF(override, def float64) float64 {
	if override != 0 {
		return override
	}
	return def
}
