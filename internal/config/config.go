// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth   = 900
	ScreenHeight  = 900
	MaxDeltaTime  = 0.06
	ClickCooldown = 300 // мс между нажатиями на кнопку вращения

	WheelDataPath  = "assets/data/wheel.json"
	PrizesDataPath = "assets/data/prizes.json"

	WheelAreaHeight = 760 // колесо занимает верх окна, под ним кнопка
	ResizeDebounce  = 500 * time.Millisecond

	MinSpins        = 8
	MaxSpins        = 12
	SpinDuration    = 6.0 // секунды
	SpinEasing      = "power4.out"
	StopAngleMargin = 0.15 // доля сегмента, которую не занимает точка остановки у краёв

	SpinButtonY      = 830
	SpinButtonRadius = 42.0
	SpinButtonLabel  = "SPIN"

	PointerSize = 26.0

	ResultPanelHeight = 150
	PanelMargin       = 5
	PanelSlideSpeed   = 10.0

	TitleFontSize   = 28
	RegularFontSize = 18

	FrameRate = 60 // кадров в секунду у wheel-render
)

var (
	BackgroundColor     = color.RGBA{20, 20, 30, 255}
	TextLightColor      = color.RGBA{240, 240, 240, 255}
	TextDarkColor       = color.RGBA{20, 20, 30, 255}
	PointerColor        = color.RGBA{220, 60, 60, 255}
	PointerStrokeColor  = color.RGBA{255, 255, 255, 255}
	SpinButtonColor     = color.RGBA{50, 205, 50, 255}
	SpinButtonBusyColor = color.RGBA{128, 128, 128, 255}
	PanelColor          = color.RGBA{25, 35, 45, 230}
	PanelBorderColor    = color.RGBA{70, 130, 180, 255}
	WinColor            = color.RGBA{255, 215, 0, 255}
	LoseColor           = color.RGBA{150, 70, 70, 255}
	PauseOverlayColor   = color.RGBA{0, 0, 0, 128}
	StrokeWidth         = 2.0
)
