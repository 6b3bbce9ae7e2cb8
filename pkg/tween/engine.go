// Package tween runs property animations on top of gween. The engine is
// advanced by the caller, one frame delta at a time, from a game loop or a
// headless frame stepper.
package tween

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tanema/gween"
)

// ErrUnknownEasing is returned for easing names that are not registered.
var ErrUnknownEasing = errors.New("tween: unknown easing")

// Property is a numeric value the engine animates.
type Property interface {
	Value() float64
	SetValue(v float64)
}

type animation struct {
	prop       Property
	tw         *gween.Tween
	final      float64
	onUpdate   func()
	onComplete func()
}

// Engine owns the running animations.
type Engine struct {
	mu     sync.Mutex
	active []*animation
}

// NewEngine returns an idle engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Animate moves p from its current value to final over d using the named
// easing. onUpdate runs after every step, onComplete once at the end; both
// may be nil. A non-positive duration jumps straight to final.
func (e *Engine) Animate(p Property, d time.Duration, final float64, easing string, onUpdate, onComplete func()) error {
	fn, ok := Easing(easing)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEasing, easing)
	}
	if d <= 0 {
		p.SetValue(final)
		if onUpdate != nil {
			onUpdate()
		}
		if onComplete != nil {
			onComplete()
		}
		return nil
	}
	a := &animation{
		prop:       p,
		tw:         gween.New(float32(p.Value()), float32(final), float32(d.Seconds()), fn),
		final:      final,
		onUpdate:   onUpdate,
		onComplete: onComplete,
	}
	e.mu.Lock()
	e.active = append(e.active, a)
	e.mu.Unlock()
	return nil
}

// Update advances every animation by dt. Callbacks run without the engine
// lock held, so they may start new animations.
func (e *Engine) Update(dt time.Duration) {
	e.mu.Lock()
	batch := append([]*animation(nil), e.active...)
	e.mu.Unlock()
	if len(batch) == 0 {
		return
	}

	var done []*animation
	for _, a := range batch {
		v, finished := a.tw.Update(float32(dt.Seconds()))
		value := float64(v)
		if finished {
			// float32 шаг gween может не дойти до цели точно
			value = a.final
		}
		a.prop.SetValue(value)
		if a.onUpdate != nil {
			a.onUpdate()
		}
		if finished {
			done = append(done, a)
		}
	}
	if len(done) == 0 {
		return
	}

	e.mu.Lock()
	kept := e.active[:0]
	for _, a := range e.active {
		if !contains(done, a) {
			kept = append(kept, a)
		}
	}
	e.active = kept
	e.mu.Unlock()

	for _, a := range done {
		if a.onComplete != nil {
			a.onComplete()
		}
	}
}

// Active reports how many animations are still running.
func (e *Engine) Active() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.active)
}

// Stop drops every running animation without completing it.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.active = nil
	e.mu.Unlock()
}

func contains(list []*animation, a *animation) bool {
	for _, x := range list {
		if x == a {
			return true
		}
	}
	return false
}
