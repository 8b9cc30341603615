package main

import (
	"log"

	"cgol/internal/app"
	"cgol/internal/view"
	"cgol/pkg/life"

	"github.com/integrii/flaggy"
)

func main() {
	cfg := app.NewConfig()
	parser := flaggy.NewParser("cgol-tui")
	parser.Description = "Conway's Game of Life in the terminal"
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

	console, err := view.NewConsole(ctrl, cfg.FPS)
	if err != nil {
		log.Fatal(err)
	}
	if err := console.Start(); err != nil {
		log.Fatal(err)
	}
}
