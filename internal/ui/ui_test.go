package ui

import (
	"math"
	"testing"
	"time"

	"prize-wheel/internal/config"
)

func TestToRoman(t *testing.T) {
	tests := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range tests {
		if got := toRoman(n); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestSpinButton(t *testing.T) {
	b := &SpinButton{X: 100, Y: 100, Radius: 40}
	if !b.Contains(100, 139) || b.Contains(100, 141) || b.Contains(130, 130) {
		t.Error("Contains() mismatch")
	}

	now := time.Now()
	if !b.Ready(now) {
		t.Error("fresh button not ready")
	}
	b.HandleClick(now)
	if b.Ready(now.Add(100 * time.Millisecond)) {
		t.Error("ready inside the click cooldown")
	}
	if !b.Ready(now.Add(config.ClickCooldown * time.Millisecond)) {
		t.Error("not ready after the cooldown")
	}
	b.Busy = true
	if b.Ready(now.Add(time.Hour)) {
		t.Error("busy button is ready")
	}

	if r := b.CurrentRadius(now); math.Abs(float64(r)-52) > 1e-3 {
		t.Errorf("radius on click = %v, want 52", r)
	}
	if r := b.CurrentRadius(now.Add(2 * time.Second)); math.Abs(float64(r)-40) > 1e-3 {
		t.Errorf("radius after pulse = %v, want 40", r)
	}
}

func TestPointerVertices(t *testing.T) {
	p := &Pointer{CX: 100, CY: 100, Radius: 80, Angle: 270, Size: 20}
	v := p.Vertices()
	// стрелка сверху: вершина смотрит вниз, к центру
	if math.Abs(v[0][0]-100) > 1e-9 || math.Abs(v[0][1]-28) > 1e-9 {
		t.Errorf("tip = %v, want (100, 28)", v[0])
	}
	for _, b := range v[1:] {
		if math.Abs(b[1]-4) > 1e-9 {
			t.Errorf("base vertex %v, want y = 4", b)
		}
	}
	if math.Abs(math.Abs(v[1][0]-v[2][0])-20) > 1e-9 {
		t.Errorf("base width = %v, want 20", math.Abs(v[1][0]-v[2][0]))
	}
}

func TestResultPanelSlides(t *testing.T) {
	p := NewResultPanel(nil, nil, 800, 600)
	p.Update()
	if p.IsVisible || !p.Settled() {
		t.Fatal("new panel should be hidden and settled")
	}

	p.Show("تهانينا", "msg", true)
	frames := 0
	for !p.Settled() {
		p.Update()
		frames++
		if frames > 100 {
			t.Fatal("panel never settled")
		}
	}
	if frames != config.ResultPanelHeight/int(config.PanelSlideSpeed) {
		t.Errorf("slide took %d frames", frames)
	}
	btn := p.CloseButton.Rect
	if !p.Clicked(btn.Min.X+1, btn.Min.Y+1) || p.Clicked(btn.Min.X-1, btn.Min.Y-1) {
		t.Errorf("Clicked() mismatch for %v", btn)
	}

	p.Hide()
	for !p.Settled() {
		p.Update()
	}
	if p.IsVisible || p.Clicked(btn.Min.X+1, btn.Min.Y+1) {
		t.Error("hidden panel still visible or clickable")
	}
}
