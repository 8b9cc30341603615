package app

import "github.com/integrii/flaggy"

// Config represents the command-line parameters for the simulator.
type Config struct {
	GridSize int
	CellSize int
	FPS      int
	Random   bool
	Seed     int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{GridSize: 25, CellSize: 30, FPS: 20, Seed: 42}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.Int(&c.GridSize, "g", "grid", "cells per side of the square board")
	p.Int(&c.CellSize, "c", "cell", "pixel size of one cell")
	p.Int(&c.FPS, "f", "fps", "simulation generations per second")
	p.Bool(&c.Random, "r", "random", "start from a random board instead of an empty one")
	p.Int64(&c.Seed, "s", "seed", "seed for the random board")
}
