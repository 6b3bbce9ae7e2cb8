package wheel

import (
	"fmt"
	"image"
	"sync"
	"time"

	"prize-wheel/internal/event"
	"prize-wheel/pkg/tween"
)

// DefaultResizeDebounce — quiet period before a resized surface is redrawn.
const DefaultResizeDebounce = 500 * time.Millisecond

// Tweener drives a numeric property towards a final value over time.
type Tweener interface {
	Animate(p tween.Property, d time.Duration, final float64, easing string, onUpdate, onComplete func()) error
}

// AnimationState is the spin lifecycle.
type AnimationState int

const (
	AnimationIdle AnimationState = iota
	AnimationRunning
	AnimationComplete
)

func (s AnimationState) String() string {
	switch s {
	case AnimationRunning:
		return "running"
	case AnimationComplete:
		return "complete"
	}
	return "idle"
}

// Wheel renders a prize wheel onto a Surface and spins it.
// All methods are safe for concurrent use.
type Wheel struct {
	mu sync.Mutex

	cfg      Config
	derived  derived
	surface  Surface
	segments []Segment

	tweener  Tweener
	loader   ImageLoader
	handlers map[string]FinishedFunc
	events   *event.Dispatcher
	callback FinishedFunc
	state    AnimationState

	image    image.Image
	imageErr error
	loading  bool

	debounceWait time.Duration
	debounce     *debouncer
	cancelResize func()
}

// Option configures a Wheel at construction.
type Option func(*Wheel)

// WithTweener attaches the engine that runs spin animations.
func WithTweener(t Tweener) Option {
	return func(w *Wheel) { w.tweener = t }
}

// WithImageLoader replaces the default FileImageLoader.
func WithImageLoader(l ImageLoader) Option {
	return func(w *Wheel) { w.loader = l }
}

// WithHandlers supplies the table AnimationSpec.CallbackName is resolved against.
func WithHandlers(h map[string]FinishedFunc) Option {
	return func(w *Wheel) { w.handlers = h }
}

// WithEvents makes the wheel publish spin and image events.
func WithEvents(d *event.Dispatcher) Option {
	return func(w *Wheel) { w.events = d }
}

// WithResizeDebounce overrides DefaultResizeDebounce.
func WithResizeDebounce(d time.Duration) Option {
	return func(w *Wheel) { w.debounceWait = d }
}

// New builds a wheel from cfg. A nil surface is allowed: every draw becomes
// a no-op, which is how headless lookups and tests use the wheel.
// When drawNow is set, or the wheel is in image mode, it draws immediately.
func New(cfg Config, surface Surface, drawNow bool, opts ...Option) (*Wheel, error) {
	w := &Wheel{
		surface:      surface,
		loader:       FileImageLoader{},
		debounceWait: DefaultResizeDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}

	cfg.Segments = append([]Segment(nil), cfg.Segments...)
	w.derived = applyDefaults(&cfg, surface)
	w.cfg = cfg
	w.segments = cfg.Segments[:cfg.NumSegments]

	if err := w.check(); err != nil {
		return nil, err
	}

	if cfg.Responsive && surface != nil {
		if rn, ok := surface.(ResizeNotifier); ok {
			w.debounce = newDebouncer(w.debounceWait, w.redrawAfterResize)
			w.cancelResize = rn.OnResize(func(float64, float64) { w.debounce.Trigger() })
		}
	}

	if drawNow || cfg.DrawMode == DrawModeImage {
		w.Draw()
	}
	return w, nil
}

// check rejects configurations that can never render correctly.
func (w *Wheel) check() error {
	cfg := &w.cfg
	if cfg.DrawMode == DrawModeImage && cfg.ImageOverlay {
		return ErrOverlayUnsupported
	}
	if cfg.InnerRadius > 0 && cfg.OuterRadius > 0 && cfg.InnerRadius >= cfg.OuterRadius {
		return fmt.Errorf("%w: inner %.1f, outer %.1f", ErrInvalidRadius, cfg.InnerRadius, cfg.OuterRadius)
	}
	if cfg.Animation != nil {
		cb, err := w.resolveAnimation(cfg.Animation)
		if err != nil {
			return err
		}
		w.callback = cb
	}
	return nil
}

// resolveAnimation validates a spin spec and picks its completion callback.
func (w *Wheel) resolveAnimation(a *AnimationSpec) (FinishedFunc, error) {
	if a.Type != "" && a.Type != AnimationSpinToStop {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAnimation, a.Type)
	}
	if a.Callback != nil {
		return a.Callback, nil
	}
	if a.CallbackName == "" {
		return nil, nil
	}
	cb, ok := w.handlers[a.CallbackName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHandler, a.CallbackName)
	}
	return cb, nil
}

// Config returns a copy of the current configuration.
func (w *Wheel) Config() Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	cfg := w.cfg
	cfg.Segments = append([]Segment(nil), w.cfg.Segments...)
	return cfg
}

// Segments returns the drawn segments, in order.
func (w *Wheel) Segments() []Segment {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Segment(nil), w.segments...)
}

// Validate reports configuration issues that do not stop construction.
func (w *Wheel) Validate() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.segments) == 0 {
		return ErrNoSegments
	}
	var sum float64
	for _, s := range w.segments {
		sum += s.Size
	}
	if sum < 360-sizeTolerance || sum > 360+sizeTolerance {
		return fmt.Errorf("%w: got %.3f", ErrSegmentSum, sum)
	}
	return nil
}

// Close stops resize tracking. The wheel stays usable for manual draws.
func (w *Wheel) Close() {
	w.mu.Lock()
	cancel, d := w.cancelResize, w.debounce
	w.cancelResize, w.debounce = nil, nil
	w.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	if d != nil {
		d.Stop()
	}
}

func (w *Wheel) redrawAfterResize() {
	w.onSurface(func() {
		w.mu.Lock()
		if w.surface != nil {
			deriveGeometry(&w.cfg, w.surface, w.derived)
		}
		w.mu.Unlock()
		Logger().Debug("wheel: redraw after resize")
		w.Draw()
	})
}

// onSurface runs fn now, or on the surface's own goroutine when it has one.
func (w *Wheel) onSurface(fn func()) {
	if s, ok := w.surface.(Scheduler); ok {
		s.Schedule(fn)
		return
	}
	fn()
}

func (w *Wheel) dispatch(t event.EventType, data interface{}) {
	if w.events != nil {
		w.events.Dispatch(event.Event{Type: t, Data: data})
	}
}
