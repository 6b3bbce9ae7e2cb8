// internal/state/wheel_state.go
package state

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	"prize-wheel/internal/app"
	"prize-wheel/internal/config"
	"prize-wheel/internal/event"
	"prize-wheel/internal/ui"
	"prize-wheel/pkg/render"
)

// WheelState — основной экран: колесо, стрелка, кнопка и панель результата
type WheelState struct {
	sm      *StateMachine
	game    *app.Game
	surface *render.EbitenSurface

	pointer *ui.Pointer
	button  *ui.SpinButton
	panel   *ui.ResultPanel
	counter *ui.SpinCounter
	face    font.Face

	screenW, screenH int
}

func NewWheelState(sm *StateMachine, game *app.Game, surface *render.EbitenSurface, face, titleFace font.Face) *WheelState {
	cfg := game.Wheel.Config()
	s := &WheelState{
		sm:      sm,
		game:    game,
		surface: surface,
		pointer: ui.NewPointer(cfg.CenterX, cfg.CenterY, cfg.OuterRadius, cfg.PointerAngle),
		button:  ui.NewSpinButton(float32(config.ScreenWidth)/2, config.SpinButtonY, config.SpinButtonRadius, config.SpinButtonLabel, face),
		panel:   ui.NewResultPanel(face, titleFace, config.ScreenWidth, config.ScreenHeight),
		counter: ui.NewSpinCounter(float64(config.ScreenWidth)-60, config.SpinButtonY, titleFace),
		face:    face,
		screenW: config.ScreenWidth,
		screenH: config.ScreenHeight,
	}
	listener := &wheelStateListener{state: s}
	game.EventDispatcher.Subscribe(event.PrizeAwarded, listener)
	game.EventDispatcher.Subscribe(event.SpinRejected, listener)
	return s
}

func (s *WheelState) Enter() {}

func (s *WheelState) Update(deltaTime float64) {
	s.panel.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewPauseState(s.sm, s, s.face))
		return
	}

	now := time.Now()
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	x, y := ebiten.CursorPosition()

	// Сначала закрываем панель результата
	if s.panel.IsVisible {
		if (clicked && s.panel.Clicked(x, y)) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			s.panel.Hide()
		}
	} else if inpututil.IsKeyJustPressed(ebiten.KeySpace) || (clicked && s.button.Contains(x, y)) {
		if s.button.Ready(now) {
			s.button.HandleClick(now)
			if err := s.game.Spin(); err != nil {
				log.Printf("Spin failed: %v", err)
			}
		}
	}

	s.game.Update(deltaTime)
	s.button.Busy = s.game.Spinning()
	s.syncPointer()
}

// syncPointer держит стрелку на ободе после перерасчёта геометрии колеса
func (s *WheelState) syncPointer() {
	cfg := s.game.Wheel.Config()
	s.pointer.CX, s.pointer.CY = cfg.CenterX, cfg.CenterY
	s.pointer.Radius, s.pointer.Angle = cfg.OuterRadius, cfg.PointerAngle
}

func (s *WheelState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	screen.DrawImage(s.surface.Image(), nil)
	s.pointer.Draw(screen)
	s.button.Draw(screen)
	s.counter.Draw(screen)
	s.panel.Draw(screen)
}

func (s *WheelState) Exit() {}

// Resize раскладывает экран под новый размер окна: колесо сверху, кнопка под ним.
func (s *WheelState) Resize(w, h int) {
	if w == s.screenW && h == s.screenH {
		return
	}
	s.screenW, s.screenH = w, h
	areaH := h - (config.ScreenHeight - config.WheelAreaHeight)
	if areaH < 1 {
		areaH = 1
	}
	s.surface.Resize(w, areaH)
	s.game.Resized(w, areaH)

	buttonY := float32(areaH) + float32(config.SpinButtonY-config.WheelAreaHeight)
	s.button.X, s.button.Y = float32(w)/2, buttonY
	s.counter.X, s.counter.Y = float64(w)-60, float64(buttonY)
	s.panel.Resize(w, h)
}

// wheelStateListener переводит события игры в UI
type wheelStateListener struct {
	state *WheelState
}

func (l *wheelStateListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PrizeAwarded:
		a, ok := e.Data.(*app.Award)
		if !ok {
			return
		}
		l.state.counter.Count++
		l.state.panel.Show(a.Prize.DisplayText(), a.Message, a.Prize.IsWin())
	case event.SpinRejected:
		if err, ok := e.Data.(error); ok {
			l.state.panel.Show("No prize", err.Error(), false)
		}
	}
}
