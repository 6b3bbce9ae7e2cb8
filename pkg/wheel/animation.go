package wheel

import (
	"fmt"
	"time"

	"prize-wheel/internal/event"
	"prize-wheel/pkg/tween"
)

// SpinResult is the payload of event.SpinFinished.
// Number and Segment come from the indicated-segment lookup; UnderPointer
// is the segment painted under the pointer when the wheel stops.
type SpinResult struct {
	Number       int
	Segment      *Segment
	Rotation     float64
	UnderPointer int
}

// State returns the animation lifecycle state.
func (w *Wheel) State() AnimationState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// SetAnimation replaces the spin spec, e.g. with a freshly drawn stop angle.
// It fails while a spin is running.
func (w *Wheel) SetAnimation(a *AnimationSpec) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == AnimationRunning {
		return ErrAnimationRunning
	}
	var cb FinishedFunc
	if a != nil {
		var err error
		if cb, err = w.resolveAnimation(a); err != nil {
			return err
		}
		cp := *a
		a = &cp
	}
	w.cfg.Animation = a
	w.callback = cb
	return nil
}

// TargetRotation returns the absolute rotation the configured spin ends on.
func (w *Wheel) TargetRotation() (float64, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cfg.Animation == nil {
		return 0, false
	}
	return w.cfg.Animation.TargetRotation(), true
}

// StartAnimation hands the configured spin to the tweener. Without a spin
// spec it does nothing; while a spin runs it returns ErrAnimationRunning.
func (w *Wheel) StartAnimation() error {
	w.mu.Lock()
	spec := w.cfg.Animation
	if spec == nil {
		w.mu.Unlock()
		return nil
	}
	if w.state == AnimationRunning {
		w.mu.Unlock()
		Logger().Warn("wheel: spin ignored, animation already running")
		return ErrAnimationRunning
	}
	if w.tweener == nil {
		w.mu.Unlock()
		return ErrNoTweener
	}
	target := spec.TargetRotation()
	duration := spec.Duration
	if duration <= 0 {
		duration = DefaultSpinDuration
	}
	easing := spec.Easing
	if easing == "" {
		easing = tween.DefaultEasing
	}
	w.state = AnimationRunning
	tw := w.tweener
	w.mu.Unlock()

	d := time.Duration(duration * float64(time.Second))
	Logger().Debug("wheel: spin started", "target", target, "duration", d, "easing", easing)
	w.dispatch(event.SpinStarted, target)
	if err := tw.Animate(rotationProperty{w}, d, target, easing, w.Draw, w.animationComplete); err != nil {
		w.mu.Lock()
		w.state = AnimationIdle
		w.mu.Unlock()
		return fmt.Errorf("failed to start spin: %w", err)
	}
	return nil
}

// animationComplete settles the wheel and reports the indicated segment.
func (w *Wheel) animationComplete() {
	w.mu.Lock()
	w.state = AnimationComplete
	w.cfg.RotationAngle = NormalizeDegrees(w.cfg.RotationAngle)
	res := SpinResult{Rotation: w.cfg.RotationAngle}
	if seg, n, ok := w.indicated(); ok {
		res.Number = n
		res.Segment = &seg
	}
	_, res.UnderPointer, _ = w.underPointer()
	cb := w.callback
	w.mu.Unlock()

	Logger().Debug("wheel: spin finished", "segment", res.Number, "rotation", res.Rotation)
	if cb != nil {
		cb(res.Number, res.Segment)
	}
	w.dispatch(event.SpinFinished, res)
}

// rotationProperty exposes RotationAngle to the tweener.
type rotationProperty struct{ w *Wheel }

func (p rotationProperty) Value() float64 {
	p.w.mu.Lock()
	defer p.w.mu.Unlock()
	return p.w.cfg.RotationAngle
}

func (p rotationProperty) SetValue(v float64) {
	p.w.mu.Lock()
	p.w.cfg.RotationAngle = v
	p.w.mu.Unlock()
}
