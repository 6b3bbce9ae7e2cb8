package wheel

// sizeTolerance absorbs float drift when segment sizes are summed.
// Validate and the lookups share it.
const sizeTolerance = 1e-6

// CurrentAngle returns RotationAngle normalised to [0, 360).
func (w *Wheel) CurrentAngle() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return NormalizeDegrees(w.cfg.RotationAngle)
}

// SegmentNumberAt returns the 1-indexed segment at angle, measured against
// the current rotation. It returns 0 when the segments do not cover the angle.
func (w *Wheel) SegmentNumberAt(angle float64) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.segmentNumberAt(angle)
}

func (w *Wheel) segmentNumberAt(angle float64) int {
	return w.segmentCovering(NormalizeDegrees(angle + NormalizeDegrees(w.cfg.RotationAngle)))
}

// segmentCovering walks the segments from 0° and returns the first whose
// cumulative end reaches a. Sizes are summed in degrees, so a wheel that
// Validate accepts covers the whole turn.
func (w *Wheel) segmentCovering(a float64) int {
	var cumulative float64
	for i := range w.segments {
		cumulative += w.segments[i].Size
		if a <= cumulative+sizeTolerance {
			return i + 1
		}
	}
	return 0
}

// IndicatedSegment returns the segment under PointerAngle with its number.
// ok is false when no segment covers the pointer.
func (w *Wheel) IndicatedSegment() (seg Segment, number int, ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.indicated()
}

func (w *Wheel) indicated() (Segment, int, bool) {
	n := w.segmentNumberAt(w.cfg.PointerAngle)
	if n == 0 {
		return Segment{}, 0, false
	}
	return w.segments[n-1], n, true
}

// SegmentDrawnAt returns the 1-indexed segment painted at screen angle.
// Wedges are drawn from RotationAngle clockwise, so the angle is taken
// relative to the rotation. It returns 0 when nothing is painted there.
func (w *Wheel) SegmentDrawnAt(angle float64) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.segmentDrawnAt(angle)
}

func (w *Wheel) segmentDrawnAt(angle float64) int {
	return w.segmentCovering(NormalizeDegrees(angle - NormalizeDegrees(w.cfg.RotationAngle)))
}

// SegmentUnderPointer returns the segment painted under PointerAngle.
// ok is false when no segment is drawn there.
func (w *Wheel) SegmentUnderPointer() (seg Segment, number int, ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.underPointer()
}

func (w *Wheel) underPointer() (Segment, int, bool) {
	n := w.segmentDrawnAt(w.cfg.PointerAngle)
	if n == 0 {
		return Segment{}, 0, false
	}
	return w.segments[n-1], n, true
}
