package life

// State describes whether the simulation is advancing.
type State uint8

const (
	// Stopped is the initial state; ticks do nothing.
	Stopped State = iota
	// Running means each tick advances the board by one generation.
	Running
)

// String returns a human-readable state name.
func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Controller owns the run/pause/reset state machine around a Grid. All
// commands are total: they never fail, and repeating one is harmless.
type Controller struct {
	grid  *Grid
	state State
}

// NewController wraps the provided grid in a stopped controller.
func NewController(grid *Grid) *Controller {
	return &Controller{grid: grid, state: Stopped}
}

// Grid returns the board the controller drives.
func (c *Controller) Grid() *Grid { return c.grid }

// State returns the current run state.
func (c *Controller) State() State { return c.state }

// Start begins advancing the board on ticks. Board contents are untouched.
func (c *Controller) Start() { c.state = Running }

// Pause stops advancing the board on ticks. Board contents are untouched.
func (c *Controller) Pause() { c.state = Stopped }

// Reset stops the simulation and clears the board.
func (c *Controller) Reset() {
	c.state = Stopped
	c.grid.Clear()
}

// Tick advances the board by one generation if the simulation is running.
// The frame loop calls this once per tick interval; while stopped it is a
// no-op.
func (c *Controller) Tick() {
	if c.state == Running {
		c.grid.Step()
	}
}

// StepOnce advances the board by one generation regardless of run state.
func (c *Controller) StepOnce() {
	c.grid.Step()
}

// ToggleCell flips a single cell. Editing is allowed while running; the next
// tick consumes the edited board.
func (c *Controller) ToggleCell(row, col int) {
	c.grid.Toggle(row, col)
}
