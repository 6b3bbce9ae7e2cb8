package wheel_test

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/gg"

	"prize-wheel/pkg/render"
	"prize-wheel/pkg/wheel"
)

func quarters() []wheel.Segment {
	return []wheel.Segment{
		{Size: 90, Text: "A"},
		{Size: 90, Text: "B"},
		{Size: 90, Text: "C"},
		{Size: 90, Text: "D"},
	}
}

func quarterConfig() wheel.Config {
	cfg := wheel.DefaultConfig()
	cfg.Segments = quarters()
	return cfg
}

func mustNew(t *testing.T, cfg wheel.Config, s wheel.Surface, drawNow bool, opts ...wheel.Option) *wheel.Wheel {
	t.Helper()
	w, err := wheel.New(cfg, s, drawNow, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return w
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-3
}

func assertPoint(t *testing.T, name string, got gg.Point, x, y float64) {
	t.Helper()
	if !near(got.X, x) || !near(got.Y, y) {
		t.Errorf("%s = (%.3f, %.3f), want (%.3f, %.3f)", name, got.X, got.Y, x, y)
	}
}

func dist(p gg.Point, x, y float64) float64 {
	return math.Hypot(p.X-x, p.Y-y)
}

// syncLoader hands out a fixed result synchronously and counts calls.
type syncLoader struct {
	img   image.Image
	err   error
	calls int
}

func (l *syncLoader) Load(_ string, done func(image.Image, error)) {
	l.calls++
	done(l.img, l.err)
}

func newRecorder() *render.Recorder {
	return render.NewRecorder(400, 300)
}
