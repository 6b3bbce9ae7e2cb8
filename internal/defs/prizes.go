// internal/defs/prizes.go
package defs

import (
	"errors"
	"fmt"
	"sort"

	"prize-wheel/pkg/wheel"
)

// PrizeType — вид приза на колесе.
type PrizeType string

const (
	PrizeDiscount     PrizeType = "discount"
	PrizeFreeShipping PrizeType = "free_shipping"
	PrizeGift         PrizeType = "gift"
	PrizeNone         PrizeType = "no_prize"
)

// ErrInvalidPrize is wrapped by every prize validation failure.
var ErrInvalidPrize = errors.New("invalid prize")

// Prize is one configured sector of the storefront wheel.
type Prize struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Type            PrizeType `json:"prize_type"`
	Value           int       `json:"value"` // процент скидки, для остальных 0
	GiftDescription string    `json:"gift_description,omitempty"`
	Probability     int       `json:"probability"` // вес 0..100
	Color           string    `json:"color"`
	Active          bool      `json:"is_active"`
	CanWin          bool      `json:"can_win"`
}

// DisplayText — подпись сектора на колесе.
func (p Prize) DisplayText() string {
	switch p.Type {
	case PrizeDiscount:
		return fmt.Sprintf("خصم %d%%", p.Value)
	case PrizeFreeShipping:
		return "شحن مجاني"
	case PrizeGift:
		return p.Name
	}
	return "حاول مرة أخرى"
}

// WinMessage — сообщение игроку после остановки колеса.
func (p Prize) WinMessage() string {
	switch p.Type {
	case PrizeDiscount, PrizeGift:
		return fmt.Sprintf("تهانينا! لقد حصلت على %s!", p.Name)
	case PrizeFreeShipping:
		return "تهانينا! لقد حصلت على شحن مجاني!"
	}
	return "حاول مرة أخرى!"
}

// IsWin reports whether the prize is worth congratulating.
func (p Prize) IsWin() bool {
	return p.Type != PrizeNone && p.Type != ""
}

// Validate checks one prize in isolation.
func (p Prize) Validate() error {
	var errs []error
	switch p.Type {
	case PrizeDiscount:
		if p.Value <= 0 || p.Value > 100 {
			errs = append(errs, fmt.Errorf("%w %d: discount %d%% out of range", ErrInvalidPrize, p.ID, p.Value))
		}
	case PrizeFreeShipping, PrizeNone:
	case PrizeGift:
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("%w %d: gift without a name", ErrInvalidPrize, p.ID))
		}
	default:
		errs = append(errs, fmt.Errorf("%w %d: unknown type %q", ErrInvalidPrize, p.ID, p.Type))
	}
	if p.Probability < 0 || p.Probability > 100 {
		errs = append(errs, fmt.Errorf("%w %d: probability %d out of [0, 100]", ErrInvalidPrize, p.ID, p.Probability))
	}
	if _, ok := wheel.ParseColor(p.Color); !ok {
		errs = append(errs, fmt.Errorf("%w %d: bad colour %q", ErrInvalidPrize, p.ID, p.Color))
	}
	return errors.Join(errs...)
}

// ActivePrizes returns the active prizes in display order (by ID).
func ActivePrizes(prizes []Prize) []Prize {
	out := make([]Prize, 0, len(prizes))
	for _, p := range prizes {
		if p.Active {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ToSegments builds one equal-size segment per prize, in the given order.
func ToSegments(prizes []Prize) []wheel.Segment {
	if len(prizes) == 0 {
		return nil
	}
	size := 360 / float64(len(prizes))
	segs := make([]wheel.Segment, len(prizes))
	for i, p := range prizes {
		segs[i] = wheel.Segment{
			Size:      size,
			Text:      p.DisplayText(),
			FillStyle: p.Color,
		}
	}
	return segs
}
