package wheel

import (
	"image/color"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColor turns a CSS-like colour string into a color.Color.
// It accepts named colours ("silver", "gold"), "#rgb", "#rgba", "#rrggbb"
// and "#rrggbbaa". Empty, "none" and "transparent" yield nil: nothing is painted.
func ParseColor(s string) (color.Color, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "none", "transparent":
		return nil, true
	}
	if strings.HasPrefix(s, "#") {
		if !validHex(s[1:]) {
			return nil, false
		}
		return gg.Hex(s).Color(), true
	}
	if c, ok := colornames.Map[s]; ok {
		return c, true
	}
	return nil, false
}

func validHex(h string) bool {
	switch len(h) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}

// paint resolves a style string, logging strings it cannot understand.
func paint(s string) color.Color {
	c, ok := ParseColor(s)
	if !ok {
		Logger().Debug("wheel: unknown colour, skipping", "colour", s)
	}
	return c
}
