package app

import (
	"errors"
	"math"
	"testing"

	"prize-wheel/internal/defs"
	"prize-wheel/internal/event"
	"prize-wheel/pkg/render"
	"prize-wheel/pkg/wheel"
)

type awardListener struct {
	awards   []*Award
	rejected int
}

func (l *awardListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PrizeAwarded:
		l.awards = append(l.awards, e.Data.(*Award))
	case event.SpinRejected:
		l.rejected++
	}
}

func table() *defs.PrizeTable {
	return &defs.PrizeTable{Prizes: []defs.Prize{
		{ID: 1, Name: "10% off", Type: defs.PrizeDiscount, Value: 10, Probability: 50, Color: "#e74c3c", Active: true, CanWin: true},
		{ID: 2, Name: "Free shipping", Type: defs.PrizeFreeShipping, Probability: 30, Color: "#2ecc71", Active: true, CanWin: true},
		{ID: 3, Name: "Nothing", Type: defs.PrizeNone, Probability: 20, Color: "#95a5a6", Active: true, CanWin: true},
		{ID: 4, Name: "Retired", Type: defs.PrizeGift, Probability: 90, Color: "red", Active: false, CanWin: true},
	}}
}

func runSpin(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; g.Spinning(); i++ {
		if i > 2000 {
			t.Fatal("spin never finished")
		}
		g.Update(1.0 / 60)
	}
}

func TestGameLaysOutActivePrizes(t *testing.T) {
	rec := render.NewRecorder(400, 400)
	g, err := NewGame(wheel.DefaultConfig(), table(), rec, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	segs := g.Wheel.Segments()
	if len(segs) != 3 {
		t.Fatalf("segments = %d, want 3 active prizes", len(segs))
	}
	if segs[1].Text != "شحن مجاني" || segs[1].FillStyle != "#2ecc71" {
		t.Errorf("segment 2 = %+v", segs[1])
	}
	if n := len(rec.Filter(render.OpPath)); n != 3 {
		t.Errorf("initial draw painted %d wedges, want 3", n)
	}
}

func TestGameSpinAwardsPlannedPrize(t *testing.T) {
	tbl := table()
	tbl.Control = &defs.Control{Mode: defs.ControlSequence, Sequence: []int{2, 3, 1}, Active: true}
	cfg := wheel.DefaultConfig()
	cfg.PointerAngle = 270
	g, err := NewGame(cfg, tbl, render.NewRecorder(300, 300), 9)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()
	l := &awardListener{}
	g.EventDispatcher.Subscribe(event.PrizeAwarded, l)

	for _, want := range []int{2, 3, 1} {
		if err := g.Spin(); err != nil {
			t.Fatalf("Spin() = %v", err)
		}
		if !g.Spinning() {
			t.Fatal("Spinning() = false right after Spin")
		}
		if err := g.Spin(); !errors.Is(err, wheel.ErrAnimationRunning) {
			t.Errorf("Spin() while spinning = %v", err)
		}
		runSpin(t, g)
		if g.LastAward == nil || g.LastAward.Prize.ID != want {
			t.Fatalf("LastAward = %+v, want prize %d", g.LastAward, want)
		}
		if g.LastAward.Message != g.LastAward.Prize.WinMessage() {
			t.Errorf("message = %q", g.LastAward.Message)
		}
	}
	if len(l.awards) != 3 {
		t.Errorf("PrizeAwarded events = %d, want 3", len(l.awards))
	}
}

// wedgeUnder returns the 1-based recorded wedge whose arc spans pointer degrees.
func wedgeUnder(t *testing.T, rec *render.Recorder, cx, cy, pointer float64) int {
	t.Helper()
	for i, op := range rec.Filter(render.OpPath) {
		start, end := op.Points[1], op.Points[len(op.Points)-1]
		a1 := wheel.NormalizeDegrees(math.Atan2(start.Y-cy, start.X-cx) * 180 / math.Pi)
		sweep := wheel.NormalizeDegrees(math.Atan2(end.Y-cy, end.X-cx)*180/math.Pi - a1)
		if wheel.NormalizeDegrees(pointer-a1) < sweep {
			return i + 1
		}
	}
	return 0
}

func TestGameAwardMatchesWedgeUnderPointer(t *testing.T) {
	rec := render.NewRecorder(300, 300)
	cfg := wheel.DefaultConfig()
	cfg.PointerAngle = 270
	cfg.DrawText = false
	g, err := NewGame(cfg, table(), rec, 3)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	for k := 0; k < 15; k++ {
		if err := g.Spin(); err != nil {
			t.Fatalf("Spin() = %v", err)
		}
		runSpin(t, g)
		if g.LastAward == nil {
			t.Fatalf("spin %d: no award", k)
		}
		rec.Reset()
		g.Wheel.Draw()
		if got := wedgeUnder(t, rec, 150, 150, 270); got != g.LastAward.Number {
			t.Fatalf("spin %d: rotation %.2f, wedge under pointer = %d, awarded %d",
				k, g.Wheel.CurrentAngle(), got, g.LastAward.Number)
		}
	}
}

func TestGameNoPrizes(t *testing.T) {
	if _, err := NewGame(wheel.DefaultConfig(), &defs.PrizeTable{}, nil, 1); !errors.Is(err, ErrNoPrizes) {
		t.Errorf("NewGame() = %v, want ErrNoPrizes", err)
	}
}

func TestGameSpinRejected(t *testing.T) {
	tbl := &defs.PrizeTable{Prizes: []defs.Prize{
		{ID: 1, Name: "x", Type: defs.PrizeGift, Probability: 0, Color: "red", Active: true, CanWin: true},
	}}
	g, err := NewGame(wheel.DefaultConfig(), tbl, nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()
	l := &awardListener{}
	g.EventDispatcher.Subscribe(event.SpinRejected, l)
	if err := g.Spin(); !errors.Is(err, ErrNothingToWin) {
		t.Errorf("Spin() = %v, want ErrNothingToWin", err)
	}
	if l.rejected != 1 || g.Spinning() {
		t.Errorf("rejected = %d, spinning = %v", l.rejected, g.Spinning())
	}
}
