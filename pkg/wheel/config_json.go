package wheel

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalJSON decodes onto the receiver, so keys absent from data keep
// their current values. "pins" and "pointer_guide" accept a boolean as
// well as an object: true enables the decoration with default styling,
// false and null disable it.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	aux := struct {
		*plain
		Pins         json.RawMessage `json:"pins"`
		PointerGuide json.RawMessage `json:"pointer_guide"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Pins != nil {
		pins, err := decodeToggle[Pins](aux.Pins)
		if err != nil {
			return fmt.Errorf("pins: %w", err)
		}
		c.Pins = pins
	}
	if aux.PointerGuide != nil {
		guide, err := decodeToggle[PointerGuide](aux.PointerGuide)
		if err != nil {
			return fmt.Errorf("pointer_guide: %w", err)
		}
		c.PointerGuide = guide
	}
	return nil
}

// decodeToggle reads a boolean-or-object value.
func decodeToggle[T any](raw json.RawMessage) (*T, error) {
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return new(T), nil
	case "false", "null":
		return nil, nil
	}
	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, err
	}
	return v, nil
}
