package wheel

// Draw paints the wheel, clearing first when ClearTheCanvas is set.
func (w *Wheel) Draw() {
	w.DrawClear(false)
}

// DrawClear paints the wheel; clear forces a surface clear even when
// ClearTheCanvas is off. Without a surface it does nothing.
func (w *Wheel) DrawClear(clear bool) {
	w.mu.Lock()
	needImage := w.drawLocked(clear)
	w.mu.Unlock()
	if needImage {
		w.loadImage()
	}
}

// drawLocked runs the pipeline and reports whether the wheel image still
// has to be fetched. Callers hold w.mu.
func (w *Wheel) drawLocked(clear bool) (needImage bool) {
	if w.surface == nil {
		return false
	}
	if clear || w.cfg.ClearTheCanvas {
		w.surface.Clear()
	}

	switch w.cfg.DrawMode {
	case DrawModeImage:
		if w.image != nil {
			w.drawWheelImage()
		} else if !w.loading && w.imageErr == nil {
			needImage = true
		}
		if w.cfg.DrawText {
			w.drawSegmentText()
		}
	default:
		w.drawSegments()
		if w.cfg.DrawText {
			w.drawSegmentText()
		}
	}

	if w.cfg.Pins != nil {
		w.drawPins()
	}
	if w.cfg.PointerGuide != nil {
		w.drawPointerGuide()
	}
	return needImage
}
