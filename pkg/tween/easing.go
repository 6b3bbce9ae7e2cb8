package tween

import (
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

// DefaultEasing is used when a caller does not name one.
const DefaultEasing = "cubic.inout"

// easings maps lower-case names to gween easing curves. The powerN names
// are the aliases used by browser tween libraries.
var easings = map[string]ease.TweenFunc{
	"linear": ease.Linear,
	"none":   ease.Linear,

	"quad.in":     ease.InQuad,
	"quad.out":    ease.OutQuad,
	"quad.inout":  ease.InOutQuad,
	"cubic.in":    ease.InCubic,
	"cubic.out":   ease.OutCubic,
	"cubic.inout": ease.InOutCubic,
	"quart.in":    ease.InQuart,
	"quart.out":   ease.OutQuart,
	"quart.inout": ease.InOutQuart,
	"quint.in":    ease.InQuint,
	"quint.out":   ease.OutQuint,
	"quint.inout": ease.InOutQuint,
	"sine.in":     ease.InSine,
	"sine.out":    ease.OutSine,
	"sine.inout":  ease.InOutSine,
	"expo.in":     ease.InExpo,
	"expo.out":    ease.OutExpo,
	"expo.inout":  ease.InOutExpo,
	"circ.in":     ease.InCirc,
	"circ.out":    ease.OutCirc,
	"circ.inout":  ease.InOutCirc,
	"back.in":     ease.InBack,
	"back.out":    ease.OutBack,
	"back.inout":  ease.InOutBack,

	"bounce.in":    ease.InBounce,
	"bounce.out":   ease.OutBounce,
	"bounce.inout": ease.InOutBounce,

	"power1.in":    ease.InQuad,
	"power1.out":   ease.OutQuad,
	"power1.inout": ease.InOutQuad,
	"power2.in":    ease.InCubic,
	"power2.out":   ease.OutCubic,
	"power2.inout": ease.InOutCubic,
	"power3.in":    ease.InQuart,
	"power3.out":   ease.OutQuart,
	"power3.inout": ease.InOutQuart,
	"power4.in":    ease.InQuint,
	"power4.out":   ease.OutQuint,
	"power4.inout": ease.InOutQuint,
}

// Easing looks a curve up by name, case-insensitively. A bare family
// name ("power2", "sine") means its out variant.
func Easing(name string) (ease.TweenFunc, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultEasing
	}
	if fn, ok := easings[key]; ok {
		return fn, true
	}
	fn, ok := easings[key+".out"]
	return fn, ok
}

// Easings lists every registered name, sorted.
func Easings() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
