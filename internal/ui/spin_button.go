// internal/ui/spin_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"prize-wheel/internal/config"
	"prize-wheel/internal/utils"
)

// SpinButton — круглая кнопка запуска колеса с пульсацией при нажатии.
type SpinButton struct {
	X, Y          float32
	Radius        float32
	Label         string
	LastClickTime time.Time
	Busy          bool // колесо крутится, кнопка неактивна

	face font.Face
}

func NewSpinButton(x, y, radius float32, label string, face font.Face) *SpinButton {
	return &SpinButton{X: x, Y: y, Radius: radius, Label: label, face: face}
}

// Contains проверяет, был ли клик внутри кнопки
func (b *SpinButton) Contains(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Radius*b.Radius
}

// Ready — кнопку можно нажать: колесо стоит и прошла пауза между кликами.
func (b *SpinButton) Ready(now time.Time) bool {
	return !b.Busy && now.Sub(b.LastClickTime) >= config.ClickCooldown*time.Millisecond
}

// HandleClick запускает пульсацию
func (b *SpinButton) HandleClick(now time.Time) {
	b.LastClickTime = now
}

// CurrentRadius — радиус с учётом пульсации после клика.
func (b *SpinButton) CurrentRadius(now time.Time) float32 {
	elapsed := now.Sub(b.LastClickTime).Seconds()
	return b.Radius * float32(utils.ClickPulse(elapsed))
}

// Draw отрисовывает кнопку
func (b *SpinButton) Draw(screen *ebiten.Image) {
	var fill color.Color = config.SpinButtonColor
	if b.Busy {
		fill = config.SpinButtonBusyColor
	}
	r := b.CurrentRadius(time.Now())
	vector.DrawFilledCircle(screen, b.X, b.Y, r, fill, true)
	vector.StrokeCircle(screen, b.X, b.Y, r, float32(config.StrokeWidth), config.TextLightColor, true)
	DrawCentered(screen, b.Label, b.face, float64(b.X), float64(b.Y), config.TextLightColor)
}
