// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log"
	"time"

	"prize-wheel/internal/config"
	"prize-wheel/internal/defs"
	"prize-wheel/internal/event"
	"prize-wheel/internal/utils"
	"prize-wheel/pkg/tween"
	"prize-wheel/pkg/wheel"
)

// ErrNoPrizes is returned when the prize table has no active prize.
var ErrNoPrizes = errors.New("no active prizes")

// Award — итог вращения, который видит игрок.
type Award struct {
	Prize   defs.Prize
	Number  int // номер сектора, 1..n
	Message string
}

// Game holds the wheel, its animation engine and the prize logic.
type Game struct {
	Wheel           *wheel.Wheel
	Engine          *tween.Engine
	EventDispatcher *event.Dispatcher
	Spinner         *Spinner
	Rng             *utils.PRNGService
	Prizes          []defs.Prize // активные, в порядке секторов

	LastAward *Award
	planned   int // сектор, выбранный до начала вращения
}

// NewGame lays the active prizes out as wheel segments and builds the wheel
// on surface. Segments listed in cfg are replaced by the prize sectors.
func NewGame(cfg wheel.Config, table *defs.PrizeTable, surface wheel.Surface, seed int64) (*Game, error) {
	prizes := defs.ActivePrizes(table.Prizes)
	if len(prizes) == 0 {
		return nil, ErrNoPrizes
	}
	cfg.Segments = defs.ToSegments(prizes)
	cfg.NumSegments = 0

	rng := utils.NewPRNGService(seed)
	engine := tween.NewEngine()
	eventDispatcher := event.NewDispatcher()

	w, err := wheel.New(cfg, surface, true,
		wheel.WithTweener(engine),
		wheel.WithEvents(eventDispatcher),
		wheel.WithResizeDebounce(config.ResizeDebounce),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create wheel: %w", err)
	}

	g := &Game{
		Wheel:           w,
		Engine:          engine,
		EventDispatcher: eventDispatcher,
		Spinner:         NewSpinner(prizes, table.Control, rng),
		Rng:             rng,
		Prizes:          prizes,
		planned:         -1,
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.SpinFinished, listener)
	eventDispatcher.Subscribe(event.ImageLoaded, listener)
	return g, nil
}

// Spin picks the outcome and starts the wheel towards it.
func (g *Game) Spin() error {
	if g.Spinning() {
		return wheel.ErrAnimationRunning
	}
	index, err := g.Spinner.Pick()
	if err != nil {
		g.EventDispatcher.Dispatch(event.Event{Type: event.SpinRejected, Data: err})
		return fmt.Errorf("failed to pick a prize: %w", err)
	}
	cfg := g.Wheel.Config()
	spec, err := g.Spinner.Plan(cfg.Segments, cfg.PointerAngle, index)
	if err != nil {
		return fmt.Errorf("failed to plan spin: %w", err)
	}
	if err := g.Wheel.SetAnimation(spec); err != nil {
		return fmt.Errorf("failed to set animation: %w", err)
	}
	g.planned = index
	g.LastAward = nil
	if err := g.Wheel.StartAnimation(); err != nil {
		g.planned = -1
		return fmt.Errorf("failed to start spin: %w", err)
	}
	log.Printf("Spin started: %d turns, stop at %.1f°, sector %d", spec.Spins, spec.StopAngle, index+1)
	return nil
}

// Spinning reports whether the wheel is still moving.
func (g *Game) Spinning() bool {
	return g.Wheel.State() == wheel.AnimationRunning
}

// Update advances the spin animation by deltaTime seconds.
func (g *Game) Update(deltaTime float64) {
	g.Engine.Update(time.Duration(deltaTime * float64(time.Second)))
}

// Resized tells listeners that the drawing area changed size.
func (g *Game) Resized(w, h int) {
	g.EventDispatcher.Dispatch(event.Event{Type: event.SurfaceResized, Data: [2]int{w, h}})
}

// Close stops background work owned by the wheel.
func (g *Game) Close() {
	g.Engine.Stop()
	g.Wheel.Close()
}

func (g *Game) award(res wheel.SpinResult) {
	n := res.UnderPointer
	if n < 1 || n > len(g.Prizes) {
		log.Printf("Spin finished outside any sector (rotation %.1f°)", res.Rotation)
		return
	}
	if g.planned >= 0 && n != g.planned+1 {
		log.Printf("Spin landed on sector %d, planned %d", n, g.planned+1)
	}
	g.planned = -1

	prize := g.Prizes[n-1]
	a := &Award{Prize: prize, Number: n, Message: prize.WinMessage()}
	g.LastAward = a
	log.Printf("Prize awarded: %s (%s)", prize.Name, prize.Type)
	g.EventDispatcher.Dispatch(event.Event{Type: event.PrizeAwarded, Data: a})
}

// GameEventListener — слушатель событий колеса
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.SpinFinished:
		if res, ok := e.Data.(wheel.SpinResult); ok {
			l.game.award(res)
		}
	case event.ImageLoaded:
		if res, ok := e.Data.(wheel.ImageLoaded); ok && res.Err != nil {
			log.Printf("Wheel image %s failed to load: %v", res.Source, res.Err)
		}
	}
}
