// cmd/wheel/main.go
package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"prize-wheel/internal/app"
	"prize-wheel/internal/config"
	"prize-wheel/internal/defs"
	"prize-wheel/internal/state"
	"prize-wheel/pkg/render"
	"prize-wheel/pkg/wheel"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	surface        *render.EbitenSurface
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.surface.RunScheduled() // перерисовки после ресайза и загрузки картинки
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout отдаёт окну его реальный размер, экран перестраивается под него
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	wheelPath := flag.String("wheel", config.WheelDataPath, "wheel configuration JSON")
	prizesPath := flag.String("prizes", config.PrizesDataPath, "prize table JSON")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	fontPath := flag.String("font", "", "TTF/OTF file for segment and panel text")
	uniform := flag.Bool("uniform", false, "pick among winnable prizes uniformly, ignoring probabilities")
	debug := flag.Bool("debug", false, "verbose engine logging and pprof on localhost:6060")
	flag.Parse()

	if *debug {
		wheel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		go func() {
			log.Println(http.ListenAndServe("localhost:6060", nil))
		}()
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cfg, err := defs.LoadWheelConfig(*wheelPath)
	if err != nil {
		log.Fatalf("Failed to load wheel: %v", err)
	}
	table, err := defs.LoadPrizes(*prizesPath)
	if err != nil {
		log.Fatalf("Failed to load prizes: %v", err)
	}

	fonts, err := render.NewFontBook()
	if err != nil {
		log.Fatal(err)
	}
	if *fontPath != "" {
		// один файл обслуживает и обычное, и жирное начертание
		if err := fonts.RegisterFile(cfg.TextFontFamily, false, *fontPath); err != nil {
			log.Fatal(err)
		}
	}

	surface := render.NewEbitenSurface(config.ScreenWidth, config.WheelAreaHeight, fonts)
	game, err := app.NewGame(cfg, table, surface, *seed)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer game.Close()
	game.Spinner.Uniform = *uniform

	face := fonts.Face(wheel.Font{Family: cfg.TextFontFamily, Size: config.RegularFontSize})
	titleFace := fonts.Face(wheel.Font{Family: cfg.TextFontFamily, Size: config.TitleFontSize, Weight: "bold"})

	sm := state.NewStateMachine()
	sm.SetState(state.NewWheelState(sm, game, surface, face, titleFace))
	a := &AppGame{
		stateMachine:   sm,
		surface:        surface,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Prize Wheel")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.FrameRate)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
