package wheel

// drawPins spaces Pins.Number discs around the rim; they turn with the wheel.
func (w *Wheel) drawPins() {
	cfg := &w.cfg
	pins := cfg.Pins
	n := pins.Number
	if n == 0 {
		n = len(w.segments)
	}
	if n <= 0 {
		return
	}
	size := pins.OuterRadius
	if size <= 0 {
		size = DefaultPinRadius
	}
	st := Style{
		Fill:      paint(pick(pins.FillStyle, cfg.FillStyle)),
		Stroke:    paint(pick(pins.StrokeStyle, cfg.StrokeStyle)),
		LineWidth: pickF(pins.LineWidth, cfg.LineWidth),
	}
	radius := cfg.OuterRadius - pins.Margin
	step := 360 / float64(n)

	sf := w.surface
	for i := 1; i <= n; i++ {
		sf.Push()
		sf.Translate(cfg.CenterX, cfg.CenterY)
		sf.Rotate(DegToRad(float64(i)*step + cfg.RotationAngle))
		sf.Translate(radius, 0)
		sf.DrawPath(circlePath(0, 0, size), st)
		sf.Pop()
	}
}

// drawPointerGuide draws a radial line at PointerAngle. It ignores rotation.
func (w *Wheel) drawPointerGuide() {
	cfg := &w.cfg
	g := cfg.PointerGuide
	st := Style{
		Stroke:    paint(pick(g.StrokeStyle, cfg.StrokeStyle)),
		LineWidth: pickF(g.LineWidth, cfg.LineWidth),
	}
	sf := w.surface
	sf.Push()
	defer sf.Pop()
	sf.Translate(cfg.CenterX, cfg.CenterY)
	sf.Rotate(DegToRad(cfg.PointerAngle))
	sf.DrawPath(linePath(cfg.InnerRadius, 0, cfg.OuterRadius, 0), st)
}
