package life

import (
	"slices"
	"testing"
)

func TestNewGridRejectsNonPositiveSize(t *testing.T) {
	for _, n := range []int{0, -1, -25} {
		if _, err := NewGrid(n); err == nil {
			t.Fatalf("NewGrid(%d) succeeded, expected error", n)
		}
	}
}

func TestNewGridStartsCleared(t *testing.T) {
	g, err := NewGrid(7)
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 7 {
		t.Fatalf("Size() = %d, expected 7", g.Size())
	}
	if len(g.Cells()) != 49 {
		t.Fatalf("len(Cells()) = %d, expected 49", len(g.Cells()))
	}
	if g.Population() != 0 {
		t.Fatalf("new grid has %d live cells, expected 0", g.Population())
	}
}

func TestToggleSelfInverse(t *testing.T) {
	g, _ := NewGrid(5)
	g.Toggle(2, 3)
	if !g.Alive(2, 3) {
		t.Fatal("cell (2,3) dead after first toggle")
	}
	g.Toggle(2, 3)
	if g.Alive(2, 3) {
		t.Fatal("cell (2,3) alive after second toggle")
	}
	if g.Population() != 0 {
		t.Fatalf("grid has %d live cells after toggle pair, expected 0", g.Population())
	}
}

func TestOutOfRangePanics(t *testing.T) {
	g, _ := NewGrid(5)
	cases := [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {2, 7}}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Toggle(%d,%d) did not panic", c[0], c[1])
				}
			}()
			g.Toggle(c[0], c[1])
		}()
	}
}

func TestNeighborCountWraparound(t *testing.T) {
	g, _ := NewGrid(5)

	// A live cell on the right edge is a neighbor of the left edge.
	g.Set(2, 4, true)
	if got := g.NeighborCount(2, 0); got != 1 {
		t.Fatalf("NeighborCount(2,0) = %d, expected 1 from wrapped right edge", got)
	}

	// Corners connect diagonally through the wrap.
	g.Clear()
	g.Set(4, 4, true)
	if got := g.NeighborCount(0, 0); got != 1 {
		t.Fatalf("NeighborCount(0,0) = %d, expected 1 from wrapped corner", got)
	}
}

func TestNeighborCountFullRing(t *testing.T) {
	g, _ := NewGrid(5)
	for r := 1; r <= 3; r++ {
		for c := 1; c <= 3; c++ {
			g.Set(r, c, true)
		}
	}
	if got := g.NeighborCount(2, 2); got != 8 {
		t.Fatalf("NeighborCount(2,2) = %d, expected 8", got)
	}
	// The center cell itself must not be counted.
	g.Set(2, 2, false)
	if got := g.NeighborCount(2, 2); got != 8 {
		t.Fatalf("NeighborCount(2,2) = %d after clearing center, expected 8", got)
	}
}

func TestLonelyCellDies(t *testing.T) {
	g, _ := NewGrid(5)
	g.Set(2, 2, true)
	g.Step()
	if g.Population() != 0 {
		t.Fatalf("isolated cell survived, population = %d", g.Population())
	}

	// Two diagonal cells each have one neighbor; both die.
	g.Clear()
	g.Settle([][2]int{{1, 1}, {2, 2}})
	g.Step()
	if g.Population() != 0 {
		t.Fatalf("cells with one neighbor survived, population = %d", g.Population())
	}
}

func TestBlockStillLife(t *testing.T) {
	g, _ := NewGrid(5)
	block := [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	g.Settle(block)

	before := append([]uint8(nil), g.Cells()...)
	g.Step()
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("2x2 block changed after one generation")
	}
	g.Step()
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("2x2 block changed after two generations")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g, _ := NewGrid(5)
	g.Settle([][2]int{{2, 1}, {2, 2}, {2, 3}})

	g.Step()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := g.Alive(row, col)
			_, shouldBeAlive := expects[[2]int{row, col}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, alive, shouldBeAlive)
			}
		}
	}

	g.Step()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := g.Alive(row, col)
			_, shouldBeAlive := expects[[2]int{row, col}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", row, col, alive, shouldBeAlive)
			}
		}
	}
}

func TestStepDeterministic(t *testing.T) {
	a, _ := NewGrid(16)
	b, _ := NewGrid(16)
	a.Randomize(42)
	b.Randomize(42)

	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("Randomize with equal seeds produced different boards")
	}

	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("boards diverged at generation %d", i+1)
		}
	}
}

func TestStepReadsOnlyPreviousGeneration(t *testing.T) {
	// Row of three at the top edge: the blinker flips vertically through the
	// wrap. A sequential in-place update would corrupt this because cell
	// (0,2) reads (4,2) and (1,2) from the same generation as (0,1)/(0,3).
	g, _ := NewGrid(5)
	g.Settle([][2]int{{0, 1}, {0, 2}, {0, 3}})
	g.Step()

	expects := map[[2]int]bool{
		{4, 2}: true,
		{0, 2}: true,
		{1, 2}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := g.Alive(row, col)
			_, shouldBeAlive := expects[[2]int{row, col}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, alive, shouldBeAlive)
			}
		}
	}
}

func TestClearAndPopulation(t *testing.T) {
	g, _ := NewGrid(6)
	g.Randomize(7)
	if g.Population() == 0 {
		t.Fatal("randomized 6x6 board with seed 7 has no live cells")
	}
	g.Clear()
	if g.Population() != 0 {
		t.Fatalf("population %d after Clear, expected 0", g.Population())
	}
	if len(g.Cells()) != 36 {
		t.Fatalf("len(Cells()) = %d after Clear, expected 36", len(g.Cells()))
	}
}
