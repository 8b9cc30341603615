//go:build ebiten

package app

import (
	"image/color"

	"cgol/internal/core"
	"cgol/internal/render"
	"cgol/internal/ui"
	"cgol/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	cellOn   = color.RGBA{255, 255, 255, 255}
	cellOff  = color.RGBA{0, 0, 255, 255}
	gridLine = color.RGBA{255, 255, 255, 255}
)

// Game adapts a life.Controller to the ebiten.Game interface: it routes mouse
// and keyboard input to the controller and paints the toolbar plus board.
type Game struct {
	ctrl    *life.Controller
	painter *render.GridPainter
	toolbar *ui.Toolbar
	step    *core.FixedStep

	cellSize int
}

// New constructs a Game around the provided controller. The simulation ticks
// at fps generations per second regardless of the display refresh rate.
func New(ctrl *life.Controller, cellSize, fps int) *Game {
	return &Game{
		ctrl:     ctrl,
		painter:  render.NewGridPainter(ctrl.Grid().Size()),
		toolbar:  ui.NewToolbar(),
		step:     core.NewFixedStep(fps),
		cellSize: cellSize,
	}
}

func (g *Game) start() {
	if g.ctrl.State() != life.Running {
		g.step.Reset()
	}
	g.ctrl.Start()
}

func (g *Game) dispatch(cmd ui.Command) {
	switch cmd {
	case ui.CmdStart:
		g.start()
	case ui.CmdPause:
		g.ctrl.Pause()
	case ui.CmdEnd:
		g.ctrl.Reset()
	}
}

// handleClick routes a click to the toolbar or toggles the cell under it.
// Clicks in the grid area outside the board bounds are dropped here, before
// the controller sees them.
func (g *Game) handleClick(x, y int) {
	if y < ui.ToolbarHeight {
		g.dispatch(g.toolbar.Click(x, y))
		return
	}
	row := (y - ui.ToolbarHeight) / g.cellSize
	col := x / g.cellSize
	n := g.ctrl.Grid().Size()
	if row >= 0 && row < n && col >= 0 && col < n {
		g.ctrl.ToggleCell(row, col)
	}
}

// Update handles per-frame input and advances the simulation on its cadence.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.ctrl.State() == life.Running {
			g.ctrl.Pause()
		} else {
			g.start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.handleClick(x, y)
	}

	if g.ctrl.State() == life.Running && g.step.ShouldStep() {
		g.ctrl.Tick()
	}
	return nil
}

// Draw renders the toolbar strip and the current board below it.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.ctrl.Grid()
	g.painter.Blit(screen, grid.Cells(), cellOn, cellOff, g.cellSize, ui.ToolbarHeight)
	g.painter.DrawGridLines(screen, gridLine, g.cellSize, ui.ToolbarHeight)
	g.toolbar.Draw(screen, grid.Size()*g.cellSize)
}

// Layout returns the logical screen size: the board plus the toolbar strip.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	n := g.ctrl.Grid().Size()
	return n * g.cellSize, n*g.cellSize + ui.ToolbarHeight
}
