// internal/ui/spin_counter.go
package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"prize-wheel/internal/config"
)

// SpinCounter отображает число сыгранных вращений римскими цифрами.
type SpinCounter struct {
	X, Y  float64
	Count int
	face  font.Face
}

func NewSpinCounter(x, y float64, face font.Face) *SpinCounter {
	return &SpinCounter{X: x, Y: y, face: face}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

func (c *SpinCounter) Draw(screen *ebiten.Image) {
	if c.Count <= 0 {
		return
	}
	textColor := config.TextLightColor
	if c.Count%10 == 0 {
		textColor = config.WinColor // каждое десятое вращение подсвечиваем
	}
	DrawCentered(screen, toRoman(c.Count), c.face, c.X, c.Y, textColor)
}
