// internal/ui/result_panel.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"prize-wheel/internal/config"
	"prize-wheel/internal/utils"
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

// ResultPanel выезжает снизу и показывает выигрыш.
type ResultPanel struct {
	IsVisible     bool
	Title         string
	Message       string
	Win           bool
	CloseButton   Button
	fontFace      font.Face
	titleFontFace font.Face
	screenW       int
	screenH       int
	currentY      float64
	targetY       float64
}

// NewResultPanel creates a hidden panel for a screen of the given size.
func NewResultPanel(face, titleFace font.Face, screenW, screenH int) *ResultPanel {
	return &ResultPanel{
		fontFace:      face,
		titleFontFace: titleFace,
		screenW:       screenW,
		screenH:       screenH,
		currentY:      float64(screenH),
		targetY:       float64(screenH),
	}
}

// Show выдвигает панель с текстом результата
func (p *ResultPanel) Show(title, message string, win bool) {
	p.Title, p.Message, p.Win = title, message, win
	p.IsVisible = true
	p.targetY = float64(p.screenH - config.ResultPanelHeight)
}

func (p *ResultPanel) Hide() {
	p.targetY = float64(p.screenH)
}

// Resize переносит панель к новому нижнему краю экрана.
func (p *ResultPanel) Resize(w, h int) {
	shown := p.targetY < float64(p.screenH)
	p.screenW, p.screenH = w, h
	if shown {
		p.targetY = float64(h - config.ResultPanelHeight)
	} else {
		p.targetY = float64(h)
	}
	p.currentY = p.targetY
}

// Settled — панель доехала до места.
func (p *ResultPanel) Settled() bool {
	return p.currentY == p.targetY
}

func (p *ResultPanel) Update() {
	// Анимация панели
	if p.currentY != p.targetY {
		p.currentY = utils.Approach(p.currentY, p.targetY, config.PanelSlideSpeed)
		if p.currentY >= float64(p.screenH) {
			p.IsVisible = false
		}
	}
	p.layout()
}

// Clicked проверяет попадание в кнопку закрытия.
func (p *ResultPanel) Clicked(x, y int) bool {
	return p.IsVisible && image.Pt(x, y).In(p.CloseButton.Rect)
}

func (p *ResultPanel) rect() image.Rectangle {
	return image.Rect(
		config.PanelMargin,
		int(p.currentY)+config.PanelMargin,
		p.screenW-config.PanelMargin,
		int(p.currentY)+config.ResultPanelHeight-config.PanelMargin,
	)
}

func (p *ResultPanel) layout() {
	r := p.rect()
	btnWidth, btnHeight := 120, 40
	p.CloseButton.Rect = image.Rect(r.Max.X-btnWidth-20, r.Max.Y-btnHeight-20, r.Max.X-20, r.Max.Y-20)
	p.CloseButton.Text = "OK"
}

func (p *ResultPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible && p.currentY >= float64(p.screenH) {
		return
	}
	r := p.rect()
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.PanelColor, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.PanelBorderColor, true)

	var titleColor color.Color = config.LoseColor
	if p.Win {
		titleColor = config.WinColor
	}
	cx := float64(r.Min.X+r.Max.X) / 2
	DrawCentered(screen, p.Title, p.titleFontFace, cx, float64(r.Min.Y)+35, titleColor)
	DrawCentered(screen, p.Message, p.fontFace, cx, float64(r.Min.Y)+75, config.TextLightColor)

	b := p.CloseButton.Rect
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), config.PanelBorderColor, true)
	DrawCentered(screen, b.Text, p.fontFace, float64(b.Min.X+b.Max.X)/2, float64(b.Min.Y+b.Max.Y)/2, config.TextLightColor)
}
