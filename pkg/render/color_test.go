package render

import (
	"image/color"
	"testing"
)

func TestDarkenLighten(t *testing.T) {
	c := color.RGBA{200, 100, 0, 255}
	if got := DarkenColor(c); got != (color.RGBA{100, 50, 0, 255}) {
		t.Errorf("DarkenColor() = %v", got)
	}
	if got := LightenColor(c); got != (color.RGBA{227, 177, 127, 255}) {
		t.Errorf("LightenColor() = %v", got)
	}
}

func TestLuminance(t *testing.T) {
	if l := Luminance(color.White); l < 0.999 {
		t.Errorf("Luminance(white) = %v", l)
	}
	if l := Luminance(color.Black); l != 0 {
		t.Errorf("Luminance(black) = %v", l)
	}
	if Luminance(color.RGBA{0, 255, 0, 255}) <= Luminance(color.RGBA{0, 0, 255, 255}) {
		t.Error("green is not brighter than blue")
	}
}

func TestVertexColorUnpremultiplied(t *testing.T) {
	r, g, b, a := vertexColor(color.RGBA{128, 0, 0, 128})
	if a < 0.5 || a > 0.51 || r < 0.99 || g != 0 || b != 0 {
		t.Errorf("vertexColor() = %v %v %v %v", r, g, b, a)
	}
}
