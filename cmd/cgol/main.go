//go:build ebiten

package main

import (
	"errors"
	"log"

	"cgol/internal/app"
	"cgol/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
)

func main() {
	cfg := app.NewConfig()
	parser := flaggy.NewParser("cgol")
	parser.Description = "Conway's Game of Life with a toolbar GUI"
	cfg.Bind(parser)
	if err := parser.Parse(); err != nil {
		log.Fatal(err)
	}

	grid, err := life.NewGrid(cfg.GridSize)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Random {
		grid.Randomize(cfg.Seed)
	}
	ctrl := life.NewController(grid)

	game := app.New(ctrl, cfg.CellSize, cfg.FPS)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
