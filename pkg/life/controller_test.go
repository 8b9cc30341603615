package life

import (
	"slices"
	"testing"
)

func newTestController(t *testing.T, n int) *Controller {
	t.Helper()
	g, err := NewGrid(n)
	if err != nil {
		t.Fatal(err)
	}
	return NewController(g)
}

func TestControllerInitiallyStopped(t *testing.T) {
	c := newTestController(t, 5)
	if c.State() != Stopped {
		t.Fatalf("initial state = %v, expected stopped", c.State())
	}
}

func TestStartPauseIdempotent(t *testing.T) {
	c := newTestController(t, 5)
	c.Grid().Toggle(2, 2)

	c.Start()
	c.Start()
	if c.State() != Running {
		t.Fatalf("state = %v after Start, expected running", c.State())
	}
	if !c.Grid().Alive(2, 2) {
		t.Fatal("Start altered the board")
	}

	c.Pause()
	c.Pause()
	if c.State() != Stopped {
		t.Fatalf("state = %v after Pause, expected stopped", c.State())
	}
	if !c.Grid().Alive(2, 2) {
		t.Fatal("Pause altered the board")
	}
}

func TestTickWhileStoppedIsNoop(t *testing.T) {
	c := newTestController(t, 8)
	c.Grid().Randomize(13)
	before := append([]uint8(nil), c.Grid().Cells()...)

	for i := 0; i < 5; i++ {
		c.Tick()
	}
	if !slices.Equal(before, c.Grid().Cells()) {
		t.Fatal("Tick changed the board while stopped")
	}
}

func TestTickAdvancesWhileRunning(t *testing.T) {
	c := newTestController(t, 5)
	// Horizontal blinker flips to vertical on the first tick.
	c.Grid().Settle([][2]int{{2, 1}, {2, 2}, {2, 3}})

	c.Start()
	c.Tick()

	if !c.Grid().Alive(1, 2) || !c.Grid().Alive(2, 2) || !c.Grid().Alive(3, 2) {
		t.Fatal("blinker did not flip vertical after tick while running")
	}
	if c.Grid().Alive(2, 1) || c.Grid().Alive(2, 3) {
		t.Fatal("horizontal blinker arms survived the tick")
	}
}

func TestResetStopsAndClears(t *testing.T) {
	for _, running := range []bool{true, false} {
		c := newTestController(t, 6)
		c.Grid().Randomize(99)
		if running {
			c.Start()
		}

		c.Reset()

		if c.State() != Stopped {
			t.Fatalf("state = %v after Reset (running=%v), expected stopped", c.State(), running)
		}
		if c.Grid().Population() != 0 {
			t.Fatalf("population = %d after Reset (running=%v), expected 0", c.Grid().Population(), running)
		}
		if c.Grid().Size() != 6 {
			t.Fatalf("grid size = %d after Reset, expected 6", c.Grid().Size())
		}
	}
}

func TestStepOnceIgnoresRunState(t *testing.T) {
	c := newTestController(t, 5)
	c.Grid().Set(2, 2, true)

	c.StepOnce()

	if c.State() != Stopped {
		t.Fatalf("state = %v after StepOnce, expected stopped", c.State())
	}
	if c.Grid().Population() != 0 {
		t.Fatal("lonely cell survived StepOnce")
	}
}

func TestToggleCellWhileRunning(t *testing.T) {
	c := newTestController(t, 5)
	c.Start()

	c.ToggleCell(1, 1)
	if !c.Grid().Alive(1, 1) {
		t.Fatal("ToggleCell did not edit the live board")
	}
	c.ToggleCell(1, 1)
	if c.Grid().Alive(1, 1) {
		t.Fatal("second ToggleCell did not revert the cell")
	}
}
