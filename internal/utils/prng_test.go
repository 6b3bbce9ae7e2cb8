package utils

import (
	"math"
	"testing"

	"prize-wheel/internal/defs"
)

func TestRangeInclusive(t *testing.T) {
	s := NewPRNGService(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := s.Range(8, 12)
		if v < 8 || v > 12 {
			t.Fatalf("Range(8, 12) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("Range(8, 12) produced %v, want all of 8..12", seen)
	}
	if got := s.Range(3, 3); got != 3 {
		t.Errorf("Range(3, 3) = %d", got)
	}
}

func TestChooseWeighted(t *testing.T) {
	prizes := []defs.Prize{
		{ID: 1, Probability: 75, Active: true, CanWin: true},
		{ID: 2, Probability: 25, Active: true, CanWin: true},
		{ID: 3, Probability: 100, Active: false, CanWin: true},
		{ID: 4, Probability: 100, Active: true, CanWin: false},
		{ID: 5, Probability: 0, Active: true, CanWin: true},
	}
	s := NewPRNGService(42)
	counts := map[int]int{}
	const n = 20000
	for i := 0; i < n; i++ {
		p, ok := s.ChooseWeighted(prizes)
		if !ok {
			t.Fatal("ChooseWeighted() found nothing")
		}
		counts[p.ID]++
	}
	if counts[3]+counts[4]+counts[5] != 0 {
		t.Errorf("ineligible prizes chosen: %v", counts)
	}
	if share := float64(counts[1]) / n; share < 0.72 || share > 0.78 {
		t.Errorf("prize 1 share = %.3f, want about 0.75", share)
	}
}

func TestChooseWeightedNothingEligible(t *testing.T) {
	s := NewPRNGService(1)
	if _, ok := s.ChooseWeighted(nil); ok {
		t.Error("empty table produced a prize")
	}
	if _, ok := s.ChooseWeighted([]defs.Prize{{Probability: 0, Active: true, CanWin: true}}); ok {
		t.Error("zero weights produced a prize")
	}
}

func TestChooseWeightedSeeded(t *testing.T) {
	prizes := []defs.Prize{
		{ID: 1, Probability: 30, Active: true, CanWin: true},
		{ID: 2, Probability: 30, Active: true, CanWin: true},
		{ID: 3, Probability: 40, Active: true, CanWin: true},
	}
	a, b := NewPRNGService(99), NewPRNGService(99)
	for i := 0; i < 50; i++ {
		pa, _ := a.ChooseWeighted(prizes)
		pb, _ := b.ChooseWeighted(prizes)
		if pa.ID != pb.ID {
			t.Fatalf("draw %d differs for the same seed: %d vs %d", i, pa.ID, pb.ID)
		}
	}
}

func TestChooseWinnable(t *testing.T) {
	prizes := []defs.Prize{{CanWin: false}, {CanWin: true}, {CanWin: false}, {CanWin: true}}
	s := NewPRNGService(3)
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		idx, ok := s.ChooseWinnable(prizes)
		if !ok || (idx != 1 && idx != 3) {
			t.Fatalf("ChooseWinnable() = %d, %v", idx, ok)
		}
		seen[idx] = true
	}
	if len(seen) != 2 {
		t.Errorf("ChooseWinnable() only returned %v", seen)
	}
	if _, ok := s.ChooseWinnable(prizes[:1]); ok {
		t.Error("no winnable prize but ok = true")
	}
}

func TestMathHelpers(t *testing.T) {
	if Lerp(10, 20, 0.25) != 12.5 {
		t.Error("Lerp")
	}
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp")
	}
	if p := ClickPulse(0); math.Abs(p-1.3) > 1e-12 {
		t.Errorf("ClickPulse(0) = %v", p)
	}
	if p := ClickPulse(5); p > 1.0001 {
		t.Errorf("ClickPulse(5) = %v, want settled", p)
	}
	if Approach(0, 25, 10) != 10 || Approach(20, 25, 10) != 25 || Approach(25, 0, 10) != 15 {
		t.Error("Approach")
	}
}
