// pkg/render/text.go
package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"prize-wheel/pkg/wheel"
)

// alignFactor — доля ширины текста слева от точки привязки.
func alignFactor(a wheel.Align) float64 {
	switch a {
	case wheel.AlignLeft:
		return 0
	case wheel.AlignRight:
		return 1
	}
	return 0.5
}

// textOrigin returns the baseline start so that the string's horizontal
// anchor sits on x and its vertical middle on y.
func textOrigin(face font.Face, s string, x, y float64, a wheel.Align) (ox, oy, width float64) {
	width = float64(font.MeasureString(face, s)) / 64
	ascent, descent := metrics(face)
	return x - width*alignFactor(a), y + (ascent-descent)/2, width
}

// haloOffsets are the shifts used to fake a text outline of width lw.
func haloOffsets(lw float64) [][2]float64 {
	r := lw / 2
	if r < 1 {
		r = 1
	}
	out := make([][2]float64, 0, 8)
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		out = append(out, [2]float64{r * math.Cos(a), r * math.Sin(a)})
	}
	return out
}

// rasterizeText draws s upright into a fresh RGBA image. The returned
// point is where the text anchor lands inside that image.
func rasterizeText(face font.Face, s string, a wheel.Align, st wheel.Style) (*image.RGBA, float64, float64) {
	width := float64(font.MeasureString(face, s)) / 64
	ascent, descent := metrics(face)
	pad := 2.0
	if st.Stroke != nil {
		pad += math.Ceil(st.LineWidth)
	}
	w := int(math.Ceil(width + 2*pad))
	h := int(math.Ceil(ascent + descent + 2*pad))
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	drawAt := func(dx, dy float64, c color.Color) {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c),
			Face: face,
			Dot:  fixed.Point26_6{X: fixed.Int26_6((pad + dx) * 64), Y: fixed.Int26_6((pad + ascent + dy) * 64)},
		}
		d.DrawString(s)
	}
	if st.Stroke != nil {
		for _, off := range haloOffsets(st.LineWidth) {
			drawAt(off[0], off[1], st.Stroke)
		}
	}
	if st.Fill != nil {
		drawAt(0, 0, st.Fill)
	}
	anchorX := pad + width*alignFactor(a)
	anchorY := pad + (ascent+descent)/2
	return img, anchorX, anchorY
}
