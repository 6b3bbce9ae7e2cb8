// pkg/render/bidi.go
package render

import (
	"unicode"

	ggtext "github.com/gogpu/gg/text"
)

// VisualOrder reorders s for a left-to-right glyph pen. Strings with Arabic
// or Hebrew letters are laid out as a right-to-left paragraph: runs are
// reversed and right-to-left runs are mirrored. Contextual letter forms
// are not shaped.
func VisualOrder(s string) string {
	if !hasRTL(s) {
		return s
	}
	segs := ggtext.SegmentTextRTL(s)
	out := make([]rune, 0, len(s))
	for i := len(segs) - 1; i >= 0; i-- {
		r := []rune(segs[i].Text)
		if segs[i].Direction == ggtext.DirectionRTL {
			for j := len(r) - 1; j >= 0; j-- {
				out = append(out, r[j])
			}
			continue
		}
		out = append(out, r...)
	}
	return string(out)
}

func hasRTL(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Arabic, unicode.Hebrew) {
			return true
		}
	}
	return false
}
