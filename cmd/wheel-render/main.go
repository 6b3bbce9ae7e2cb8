// cmd/wheel-render/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"

	"prize-wheel/internal/app"
	"prize-wheel/internal/config"
	"prize-wheel/internal/defs"
	"prize-wheel/pkg/render"
	"prize-wheel/pkg/wheel"
)

// maxFrames ограничивает запись, если вращение почему-то не останавливается
const maxFrames = 60 * 60

func main() {
	wheelPath := flag.String("wheel", config.WheelDataPath, "wheel configuration JSON")
	prizesPath := flag.String("prizes", config.PrizesDataPath, "prize table JSON")
	out := flag.String("out", "wheel.png", "PNG file for the final frame")
	frames := flag.String("frames", "", "directory for a numbered PNG per frame of the spin")
	spin := flag.Bool("spin", false, "spin once before writing -out")
	width := flag.Int("width", config.ScreenWidth, "raster width")
	height := flag.Int("height", config.WheelAreaHeight, "raster height")
	seed := flag.Int64("seed", 1, "random seed")
	fontPath := flag.String("font", "", "TTF/OTF file for segment text")
	debug := flag.Bool("debug", false, "verbose engine logging")
	flag.Parse()

	if *debug {
		wheel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := run(*wheelPath, *prizesPath, *out, *frames, *spin || *frames != "", *width, *height, *seed, *fontPath); err != nil {
		log.Fatal(err)
	}
}

func run(wheelPath, prizesPath, out, framesDir string, spin bool, width, height int, seed int64, fontPath string) error {
	cfg, err := defs.LoadWheelConfig(wheelPath)
	if err != nil {
		return err
	}
	table, err := defs.LoadPrizes(prizesPath)
	if err != nil {
		return err
	}
	fonts, err := render.NewFontBook()
	if err != nil {
		return err
	}
	if fontPath != "" {
		if err := fonts.RegisterFile(cfg.TextFontFamily, false, fontPath); err != nil {
			return err
		}
	}

	surface := render.NewRasterSurface(width, height, fonts, config.BackgroundColor)
	game, err := app.NewGame(cfg, table, surface, seed)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	defer game.Close()

	if spin {
		if err := game.Spin(); err != nil {
			return err
		}
		if framesDir != "" {
			if err := os.MkdirAll(framesDir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", framesDir, err)
			}
		}
		step := time.Second / config.FrameRate
		for n := 0; game.Spinning(); n++ {
			if n >= maxFrames {
				return fmt.Errorf("spin did not finish after %d frames", n)
			}
			game.Engine.Update(step)
			if framesDir == "" {
				continue
			}
			if err := writeFrame(surface, game, filepath.Join(framesDir, fmt.Sprintf("frame_%04d.png", n))); err != nil {
				return err
			}
		}
		if a := game.LastAward; a != nil {
			log.Printf("Sector %d: %s", a.Number, a.Message)
		}
	}
	return writeFrame(surface, game, out)
}

// writeFrame дорисовывает стрелку поверх колеса и сохраняет PNG
func writeFrame(surface *render.RasterSurface, game *app.Game, path string) error {
	drawPointer(surface, game.Wheel.Config())
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := surface.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// drawPointer рисует стрелку у обода под углом указателя
func drawPointer(s wheel.Surface, cfg wheel.Config) {
	a := cfg.PointerAngle * math.Pi / 180
	ux, uy := math.Cos(a), math.Sin(a)
	size := config.PointerSize
	tip := cfg.OuterRadius - size*0.4
	base := cfg.OuterRadius + size*0.8
	bx, by := cfg.CenterX+ux*base, cfg.CenterY+uy*base

	p := gg.NewPath()
	p.MoveTo(cfg.CenterX+ux*tip, cfg.CenterY+uy*tip)
	p.LineTo(bx-uy*size/2, by+ux*size/2)
	p.LineTo(bx+uy*size/2, by-ux*size/2)
	p.Close()
	s.DrawPath(p, wheel.Style{Fill: config.PointerColor, Stroke: config.PointerStrokeColor, LineWidth: config.StrokeWidth})
}
