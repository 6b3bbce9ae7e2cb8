package app

import (
	"errors"
	"testing"

	"prize-wheel/internal/config"
	"prize-wheel/internal/defs"
	"prize-wheel/internal/utils"
	"prize-wheel/pkg/wheel"
)

func TestStopAngleLandsOnSegment(t *testing.T) {
	segs := []wheel.Segment{{Size: 30}, {Size: 100}, {Size: 15}, {Size: 200}, {Size: 15}}
	rng := utils.NewPRNGService(11)
	for _, pointer := range []float64{0, 90, 270, 333} {
		for i := range segs {
			for k := 0; k < 20; k++ {
				stop, err := StopAngle(segs, pointer, i, rng)
				if err != nil {
					t.Fatal(err)
				}
				if stop < 0 || stop >= 360 {
					t.Fatalf("stop angle %v outside [0, 360)", stop)
				}
				cfg := wheel.DefaultConfig()
				cfg.Segments = segs
				cfg.PointerAngle = pointer
				cfg.RotationAngle = stop
				w, err := wheel.New(cfg, nil, false)
				if err != nil {
					t.Fatal(err)
				}
				if _, n, _ := w.SegmentUnderPointer(); n != i+1 {
					t.Fatalf("pointer %v: stop %v lands on %d, want %d", pointer, stop, n, i+1)
				}
			}
		}
	}
}

func TestStopAngleOutOfRange(t *testing.T) {
	rng := utils.NewPRNGService(1)
	segs := []wheel.Segment{{Size: 360}}
	for _, i := range []int{-1, 1} {
		if _, err := StopAngle(segs, 0, i, rng); !errors.Is(err, ErrSegmentOutOfRange) {
			t.Errorf("StopAngle(%d) = %v, want ErrSegmentOutOfRange", i, err)
		}
	}
}

func spinnerPrizes() []defs.Prize {
	return []defs.Prize{
		{ID: 1, Name: "10% off", Type: defs.PrizeDiscount, Value: 10, Probability: 0, Active: true, CanWin: true},
		{ID: 2, Name: "Nothing", Type: defs.PrizeNone, Probability: 0, Active: true, CanWin: false},
		{ID: 3, Name: "Socks", Type: defs.PrizeGift, Probability: 100, Active: true, CanWin: true},
	}
}

func TestSpinnerPick(t *testing.T) {
	s := NewSpinner(spinnerPrizes(), nil, utils.NewPRNGService(5))
	for i := 0; i < 20; i++ {
		idx, err := s.Pick()
		if err != nil || idx != 2 {
			t.Fatalf("Pick() = %d, %v; want 2 (only weighted prize)", idx, err)
		}
	}

	s.Uniform = true
	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		idx, err := s.Pick()
		if err != nil {
			t.Fatal(err)
		}
		seen[idx] = true
	}
	if !seen[0] || !seen[2] || seen[1] {
		t.Errorf("uniform picks = %v, want sectors 0 and 2 only", seen)
	}
}

func TestSpinnerFallsBackToNoPrize(t *testing.T) {
	prizes := spinnerPrizes()
	prizes[2].Probability = 0
	s := NewSpinner(prizes, nil, utils.NewPRNGService(5))
	if idx, err := s.Pick(); err != nil || idx != 1 {
		t.Errorf("Pick() = %d, %v; want the no-prize sector 1", idx, err)
	}

	s = NewSpinner(prizes[:1], nil, utils.NewPRNGService(5))
	if _, err := s.Pick(); !errors.Is(err, ErrNothingToWin) {
		t.Errorf("Pick() = %v, want ErrNothingToWin", err)
	}
}

func TestSpinnerControl(t *testing.T) {
	ctl := &defs.Control{Mode: defs.ControlSequence, Sequence: []int{1, 2}, Active: true}
	s := NewSpinner(spinnerPrizes(), ctl, utils.NewPRNGService(5))
	want := []int{0, 1, 0}
	for i, w := range want {
		if idx, err := s.Pick(); err != nil || idx != w {
			t.Errorf("pick %d = %d, %v; want %d", i, idx, err, w)
		}
	}

	missing := &defs.Control{Mode: defs.ControlForcePrize, ForcedPrize: 9, Active: true}
	s = NewSpinner(spinnerPrizes(), missing, utils.NewPRNGService(5))
	// приза 9 на колесе нет, поэтому работает жребий
	if idx, err := s.Pick(); err != nil || idx != 2 {
		t.Errorf("Pick() = %d, %v; want the weighted sector 2", idx, err)
	}
}

func TestSpinnerPlan(t *testing.T) {
	s := NewSpinner(spinnerPrizes(), nil, utils.NewPRNGService(8))
	segs := defs.ToSegments(spinnerPrizes())
	for i := 0; i < 50; i++ {
		spec, err := s.Plan(segs, 0, 1)
		if err != nil {
			t.Fatal(err)
		}
		if spec.Spins < config.MinSpins || spec.Spins > config.MaxSpins {
			t.Errorf("spins = %d", spec.Spins)
		}
		if spec.StopAngle < 120 || spec.StopAngle > 240 {
			t.Errorf("stop angle %v outside sector 2", spec.StopAngle)
		}
		if spec.Duration != config.SpinDuration || spec.Easing != config.SpinEasing || spec.Type != wheel.AnimationSpinToStop {
			t.Errorf("spec = %+v", spec)
		}
	}
}
