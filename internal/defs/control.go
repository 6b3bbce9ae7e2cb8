// internal/defs/control.go
package defs

// ControlMode — режим ручного управления исходом вращения.
type ControlMode string

const (
	ControlRandom       ControlMode = "random"
	ControlForcePrize   ControlMode = "force_prize"
	ControlForceNoPrize ControlMode = "force_no_prize"
	ControlSequence     ControlMode = "sequence"
)

// Control lets an operator override the weighted draw.
type Control struct {
	Name        string      `json:"name"`
	Mode        ControlMode `json:"control_mode"`
	ForcedPrize int         `json:"forced_prize,omitempty"`
	Sequence    []int       `json:"sequence_prizes,omitempty"`
	Index       int         `json:"current_sequence_index"`
	Active      bool        `json:"is_active"`
}

// NextPrize returns the prize the control dictates, or nil to fall back to
// the weighted draw. Sequence mode advances and wraps only when the listed
// prize exists and is active.
func (c *Control) NextPrize(prizes []Prize) *Prize {
	if c == nil || !c.Active {
		return nil
	}
	switch c.Mode {
	case ControlForcePrize:
		if c.ForcedPrize != 0 {
			return findPrize(prizes, func(p Prize) bool { return p.ID == c.ForcedPrize })
		}
	case ControlForceNoPrize:
		return findPrize(prizes, func(p Prize) bool { return p.Type == PrizeNone && p.Active })
	case ControlSequence:
		if c.Index < 0 || c.Index >= len(c.Sequence) {
			return nil
		}
		id := c.Sequence[c.Index]
		p := findPrize(prizes, func(p Prize) bool { return p.ID == id && p.Active })
		if p != nil {
			c.Index++
			if c.Index >= len(c.Sequence) {
				c.Index = 0
			}
		}
		return p
	}
	return nil
}

func findPrize(prizes []Prize, match func(Prize) bool) *Prize {
	for i := range prizes {
		if match(prizes[i]) {
			p := prizes[i]
			return &p
		}
	}
	return nil
}
