// internal/app/spin.go
package app

import (
	"errors"
	"fmt"

	"prize-wheel/internal/config"
	"prize-wheel/internal/defs"
	"prize-wheel/internal/utils"
	"prize-wheel/pkg/wheel"
)

var (
	ErrNothingToWin       = errors.New("no prize can be won")
	ErrSegmentOutOfRange  = errors.New("segment index out of range")
	ErrPrizeNotOnTheWheel = errors.New("prize is not on the wheel")
)

// StopAngle picks a stop angle that puts the wedge of segment index
// (0-based) under pointerAngle once the spin settles. The landing point keeps
// config.StopAngleMargin of the segment clear of both edges.
func StopAngle(segs []wheel.Segment, pointerAngle float64, index int, rng *utils.PRNGService) (float64, error) {
	if index < 0 || index >= len(segs) {
		return 0, fmt.Errorf("%w: %d of %d", ErrSegmentOutOfRange, index, len(segs))
	}
	start := 0.0
	for i := 0; i < index; i++ {
		start += segs[i].Size
	}
	size := segs[index].Size
	margin := size * config.StopAngleMargin
	theta := start + margin + rng.Float64()*(size-2*margin)
	// клин рисуется от угла поворота, значит под стрелкой окажется поворот + theta
	return wheel.NormalizeDegrees(pointerAngle - theta), nil
}

// Spinner decides the outcome of a spin before the wheel moves.
type Spinner struct {
	prizes  []defs.Prize // в порядке секторов
	control *defs.Control
	rng     *utils.PRNGService

	// Uniform picks any winnable sector with equal odds, ignoring weights.
	Uniform bool
}

// NewSpinner — prizes must be in sector order.
func NewSpinner(prizes []defs.Prize, control *defs.Control, rng *utils.PRNGService) *Spinner {
	return &Spinner{prizes: prizes, control: control, rng: rng}
}

// Pick returns the 0-based sector to land on. The operator control wins
// first, then the draw; with nothing winnable the "no prize" sector is used.
func (s *Spinner) Pick() (int, error) {
	if p := s.control.NextPrize(s.prizes); p != nil {
		if i := s.indexOf(p.ID); i >= 0 {
			return i, nil
		}
		return 0, fmt.Errorf("%w: %d", ErrPrizeNotOnTheWheel, p.ID)
	}

	if s.Uniform {
		if i, ok := s.rng.ChooseWinnable(s.prizes); ok {
			return i, nil
		}
		return 0, ErrNothingToWin
	}

	if p, ok := s.rng.ChooseWeighted(s.prizes); ok {
		return s.indexOf(p.ID), nil
	}
	for i, p := range s.prizes {
		if p.Type == defs.PrizeNone {
			return i, nil
		}
	}
	return 0, ErrNothingToWin
}

// Plan builds the spin that lands on sector index.
func (s *Spinner) Plan(segs []wheel.Segment, pointerAngle float64, index int) (*wheel.AnimationSpec, error) {
	stop, err := StopAngle(segs, pointerAngle, index, s.rng)
	if err != nil {
		return nil, err
	}
	return &wheel.AnimationSpec{
		Type:      wheel.AnimationSpinToStop,
		Spins:     s.rng.Range(config.MinSpins, config.MaxSpins),
		StopAngle: stop,
		Duration:  config.SpinDuration,
		Easing:    config.SpinEasing,
	}, nil
}

func (s *Spinner) indexOf(id int) int {
	for i, p := range s.prizes {
		if p.ID == id {
			return i
		}
	}
	return -1
}
