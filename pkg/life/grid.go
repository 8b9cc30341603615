package life

import (
	"fmt"

	"cgol/pkg/core"
)

// Cell states stored in the grid buffers.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// mooreOffsets are the 8 neighbor positions of the Moore neighborhood.
var mooreOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid holds a square board of cells with toroidal wrapping. Cells are stored
// row-major in a flat buffer; a second buffer of the same size receives each
// new generation so a step never reads partially updated state.
type Grid struct {
	n   int
	cur []uint8
	nxt []uint8
}

// NewGrid returns a cleared n×n grid. n must be positive.
func NewGrid(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("life: grid size must be positive, got %d", n)
	}
	cells := make([]uint8, n*n)
	return &Grid{n: n, cur: cells, nxt: make([]uint8, len(cells))}, nil
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.n }

// Cells exposes the current generation's buffer for drawing.
func (g *Grid) Cells() []uint8 { return g.cur }

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.n || col < 0 || col >= g.n {
		panic(fmt.Sprintf("life: cell (%d,%d) out of range for %d×%d grid", row, col, g.n, g.n))
	}
	return row*g.n + col
}

// Alive reports whether the cell at (row, col) is alive.
func (g *Grid) Alive(row, col int) bool {
	return g.cur[g.index(row, col)] == Alive
}

// Toggle flips the cell at (row, col) between alive and dead.
func (g *Grid) Toggle(row, col int) {
	idx := g.index(row, col)
	g.cur[idx] = Alive - g.cur[idx]
}

// Set forces the cell at (row, col) to the given state.
func (g *Grid) Set(row, col int, alive bool) {
	idx := g.index(row, col)
	if alive {
		g.cur[idx] = Alive
	} else {
		g.cur[idx] = Dead
	}
}

// Settle marks the listed {row, col} pairs alive.
func (g *Grid) Settle(cells [][2]int) {
	for _, c := range cells {
		g.Set(c[0], c[1], true)
	}
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = Dead
	}
}

// Randomize fills the board with a deterministic random pattern for the seed.
func (g *Grid) Randomize(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillBinary(rng, g.cur)
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	count := 0
	for _, c := range g.cur {
		count += int(c)
	}
	return count
}

// NeighborCount returns how many of the 8 Moore neighbors of (row, col) are
// alive. Offsets wrap modulo the grid size in both directions, so edge cells
// neighbor the opposite edge.
func (g *Grid) NeighborCount(row, col int) int {
	// The center coordinate must be in range; only neighbor offsets wrap.
	g.index(row, col)
	n := g.n
	count := 0
	for _, d := range mooreOffsets {
		r := (row + d[0] + n) % n
		c := (col + d[1] + n) % n
		count += int(g.cur[r*n+c])
	}
	return count
}

// Step advances the board by one generation. The whole next generation is
// computed from the current buffer before the buffers swap, so no cell ever
// observes another cell's updated state within the same step.
func (g *Grid) Step() {
	n := g.n
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			neighbors := g.NeighborCount(row, col)
			idx := row*n + col
			cell := g.cur[idx]
			switch {
			case cell == Alive && (neighbors < 2 || neighbors > 3):
				g.nxt[idx] = Dead
			case cell == Dead && neighbors == 3:
				g.nxt[idx] = Alive
			default:
				g.nxt[idx] = cell
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}
