// pkg/render/fonts.go
package render

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"prize-wheel/pkg/wheel"
)

type faceKey struct {
	family string
	bold   bool
	size   float64
}

// FontBook resolves wheel.Font descriptions to x/image faces. Families that
// were never registered fall back to the Go fonts.
type FontBook struct {
	mu      sync.Mutex
	fonts   map[string]*opentype.Font
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

// NewFontBook parses the built-in Go fonts.
func NewFontBook() (*FontBook, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	return &FontBook{
		fonts:   make(map[string]*opentype.Font),
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// Register adds TTF/OTF data under a family name.
func (b *FontBook) Register(family string, bold bool, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", family, err)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fonts[fontKey(family, bold)] = f
	for k := range b.faces {
		if k.family == strings.ToLower(family) && k.bold == bold {
			delete(b.faces, k)
		}
	}
	return nil
}

// RegisterFile reads a font file and registers it.
func (b *FontBook) RegisterFile(family string, bold bool, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read font file: %w", err)
	}
	return b.Register(family, bold, data)
}

// Face returns a cached face for f.
func (b *FontBook) Face(f wheel.Font) font.Face {
	size := f.Size
	if size <= 0 {
		size = wheel.DefaultFontSize
	}
	key := faceKey{family: strings.ToLower(f.Family), bold: f.Bold(), size: size}

	b.mu.Lock()
	defer b.mu.Unlock()
	if face, ok := b.faces[key]; ok {
		return face
	}
	src := b.lookup(key.family, key.bold)
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		wheel.Logger().Warn("render: face creation failed, using regular", "family", f.Family, "err", err)
		face, _ = opentype.NewFace(b.regular, &opentype.FaceOptions{Size: size, DPI: 72})
	}
	b.faces[key] = face
	return face
}

func (b *FontBook) lookup(family string, bold bool) *opentype.Font {
	if f, ok := b.fonts[fontKey(family, bold)]; ok {
		return f
	}
	if bold {
		if f, ok := b.fonts[fontKey(family, false)]; ok {
			return f
		}
		return b.bold
	}
	return b.regular
}

// Measure returns the advance width of s in pixels.
func (b *FontBook) Measure(s string, f wheel.Font) float64 {
	adv := font.MeasureString(b.Face(f), s)
	return float64(adv) / 64
}

// metrics returns ascent and descent of the face in pixels.
func metrics(face font.Face) (ascent, descent float64) {
	m := face.Metrics()
	return float64(m.Ascent) / 64, float64(m.Descent) / 64
}

func fontKey(family string, bold bool) string {
	if bold {
		return strings.ToLower(family) + "|bold"
	}
	return strings.ToLower(family)
}
