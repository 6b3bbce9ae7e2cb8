package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"prize-wheel/pkg/wheel"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWheelConfigKeepsDefaults(t *testing.T) {
	path := writeFile(t, "wheel.json", `{
		"inner_radius": 40,
		"text_orientation": "curved",
		"pins": {"number": 16},
		"segments": [{"size": 180, "text": "a"}, {"size": 180, "text": "b", "fill_style": "gold"}]
	}`)
	cfg, err := LoadWheelConfig(path)
	if err != nil {
		t.Fatalf("LoadWheelConfig() = %v", err)
	}
	if cfg.InnerRadius != 40 || cfg.TextOrientation != wheel.TextCurved || len(cfg.Segments) != 2 {
		t.Errorf("decoded config = %+v", cfg)
	}
	if cfg.FillStyle != wheel.DefaultFillStyle || !cfg.DrawText || !cfg.ClearTheCanvas {
		t.Errorf("defaults lost: fill %q draw_text %v clear %v", cfg.FillStyle, cfg.DrawText, cfg.ClearTheCanvas)
	}
	if cfg.Pins == nil || cfg.Pins.Number != 16 {
		t.Errorf("pins = %+v", cfg.Pins)
	}
}

func TestLoadWheelConfigBooleanDecorations(t *testing.T) {
	path := writeFile(t, "wheel.json", `{"segments": [{"size": 360}], "pins": true, "pointer_guide": true}`)
	cfg, err := LoadWheelConfig(path)
	if err != nil {
		t.Fatalf("LoadWheelConfig() = %v", err)
	}
	if cfg.Pins == nil || *cfg.Pins != (wheel.Pins{}) {
		t.Errorf("pins = %+v, want enabled with defaults", cfg.Pins)
	}
	if cfg.PointerGuide == nil {
		t.Error("pointer guide not enabled")
	}

	path = writeFile(t, "off.json", `{"segments": [{"size": 360}], "pins": false, "pointer_guide": null}`)
	cfg, err = LoadWheelConfig(path)
	if err != nil {
		t.Fatalf("LoadWheelConfig() = %v", err)
	}
	if cfg.Pins != nil || cfg.PointerGuide != nil {
		t.Errorf("pins = %+v, guide = %+v; want both disabled", cfg.Pins, cfg.PointerGuide)
	}

	if _, err := LoadWheelConfig(writeFile(t, "bad.json", `{"pins": "yes"}`)); err == nil {
		t.Error("string pins accepted")
	}
}

func TestLoadWheelConfigErrors(t *testing.T) {
	if _, err := LoadWheelConfig(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}
	if _, err := LoadWheelConfig(writeFile(t, "bad.json", `{"segments": 5}`)); err == nil {
		t.Error("malformed file accepted")
	}
}

func TestLoadPrizes(t *testing.T) {
	path := writeFile(t, "prizes.json", `{
		"prizes": [
			{"id": 1, "name": "10% off", "prize_type": "discount", "value": 10, "probability": 50, "color": "#FF0000", "is_active": true, "can_win": true},
			{"id": 2, "name": "Nothing", "prize_type": "no_prize", "probability": 50, "color": "#999999", "is_active": true, "can_win": true}
		],
		"control": {"name": "default", "control_mode": "sequence", "sequence_prizes": [2, 1], "is_active": true}
	}`)
	table, err := LoadPrizes(path)
	if err != nil {
		t.Fatalf("LoadPrizes() = %v", err)
	}
	if len(table.Prizes) != 2 || table.Control == nil || table.Control.Mode != ControlSequence {
		t.Errorf("table = %+v", table)
	}
}

func TestLoadPrizesValidation(t *testing.T) {
	path := writeFile(t, "prizes.json", `{
		"prizes": [
			{"id": 1, "name": "x", "prize_type": "discount", "value": 0, "color": "red"},
			{"id": 1, "name": "y", "prize_type": "no_prize", "color": "red"}
		],
		"control": {"control_mode": "force_prize", "forced_prize": 9, "is_active": true}
	}`)
	_, err := LoadPrizes(path)
	if !errors.Is(err, ErrInvalidPrize) {
		t.Fatalf("LoadPrizes() = %v, want ErrInvalidPrize", err)
	}
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 3 {
		t.Errorf("want three joined problems, got %v", err)
	}
}
