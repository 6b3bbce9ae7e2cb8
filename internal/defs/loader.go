// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"prize-wheel/pkg/wheel"
)

// PrizeTable — содержимое prizes.json.
type PrizeTable struct {
	Prizes  []Prize  `json:"prizes"`
	Control *Control `json:"control,omitempty"`
}

// LoadWheelConfig reads a wheel description on top of wheel.DefaultConfig,
// so keys missing from the file keep their defaults.
func LoadWheelConfig(path string) (wheel.Config, error) {
	cfg := wheel.DefaultConfig()
	file, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read wheel config file: %w", err)
	}
	if err := json.Unmarshal(file, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal wheel config: %w", err)
	}
	log.Printf("Loaded wheel config with %d segments", len(cfg.Segments))
	return cfg, nil
}

// LoadPrizes reads and validates the prize table.
func LoadPrizes(path string) (*PrizeTable, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prizes file: %w", err)
	}

	var table PrizeTable
	if err := json.Unmarshal(file, &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prizes: %w", err)
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate prizes: %w", err)
	}

	log.Printf("Loaded %d prizes", len(table.Prizes))
	return &table, nil
}

// Validate checks every prize and the control's references.
func (t *PrizeTable) Validate() error {
	var errs []error
	seen := make(map[int]bool, len(t.Prizes))
	for _, p := range t.Prizes {
		if seen[p.ID] {
			errs = append(errs, fmt.Errorf("%w %d: duplicate id", ErrInvalidPrize, p.ID))
		}
		seen[p.ID] = true
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if c := t.Control; c != nil {
		if c.Mode == ControlForcePrize && c.ForcedPrize != 0 && !seen[c.ForcedPrize] {
			errs = append(errs, fmt.Errorf("%w %d: forced by control but not defined", ErrInvalidPrize, c.ForcedPrize))
		}
		for _, id := range c.Sequence {
			if !seen[id] {
				errs = append(errs, fmt.Errorf("%w %d: in control sequence but not defined", ErrInvalidPrize, id))
			}
		}
	}
	return errors.Join(errs...)
}
