package view

import (
	"bytes"
	"fmt"
	"time"

	"cgol/pkg/life"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console is a gocui front end over a life.Controller: the board is drawn as
// block characters, cells toggle on mouse click, and a background ticker
// drives the simulation at a fixed cadence. Every mutation is funneled
// through gocui.Gui.Update so the controller is only touched from the UI
// loop.
type Console struct {
	ctrl *life.Controller
	g    *gocui.Gui
	k    []keyBinding

	interval   time.Duration
	generation int
	done       chan struct{}

	liveFiller string
	deadFiller string
}

var stateDescr = map[life.State]string{
	life.Stopped: aurora.Colorize("stopped", aurora.BlueFg).String(),
	life.Running: aurora.Colorize("running", aurora.CyanFg).String(),
}

// NewConsole builds the terminal UI around the provided controller. The
// simulation advances fps generations per second while running.
func NewConsole(ctrl *life.Controller, fps int) (*Console, error) {
	if fps <= 0 {
		fps = 20
	}
	c := &Console{
		ctrl:       ctrl,
		interval:   time.Second / time.Duration(fps),
		done:       make(chan struct{}),
		liveFiller: aurora.Green("█").String(),
		deadFiller: "░",
	}

	var err error
	c.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}
	c.g.Mouse = true

	c.k = []keyBinding{
		{'s', "S", "Start", c.cmdStart, ""},
		{'p', "P", "Pause", c.cmdPause, ""},
		{'e', "E", "End (clear)", c.cmdEnd, ""},
		{'n', "N", "Next step", c.cmdStep, ""},
		{'w', "W", "Random fill", c.cmdRandom, ""},
		{'q', "Q", "Quit", c.cmdQuit, ""},
		{gocui.KeyCtrlC, "^C", "Quit", c.cmdQuit, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", c.cmdMouseClick, "board"},
	}
	c.g.SetManagerFunc(c.layout)

	for _, kb := range c.k {
		h := kb.handler
		if err := c.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			c.g.Close()
			return nil, err
		}
	}
	return c, nil
}

// Start runs the UI main loop until the user quits.
func (c *Console) Start() error {
	go c.tickLoop()
	err := c.g.MainLoop()
	close(c.done)
	c.g.Close()
	if err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

// tickLoop advances the simulation on its own cadence. The mutation happens
// inside g.Update, on the UI loop, never concurrently with key handlers.
func (c *Console) tickLoop() {
	t := time.NewTicker(c.interval)
	defer t.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-t.C:
			c.g.Update(func(g *gocui.Gui) error {
				if c.ctrl.State() == life.Running {
					c.ctrl.Tick()
					c.generation++
				}
				return nil
			})
		}
	}
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 24

	if v, err := g.SetView("header", -1, -1, maxX+1, 1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
		fmt.Fprint(v, " Conway's Game of Life")
	}

	if v, err := g.SetView("status", 0, 1, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}
	c.renderStatus(g)

	if v, err := g.SetView("board", leftColumnWidth+1, 1, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Board"
		v.Frame = true
	}
	c.renderBoard(g)

	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYBINDINGS: ")
		for i, kb := range c.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(kb.name).String())
			b.WriteString(": ")
			b.WriteString(kb.descr)
		}
		fmt.Fprintln(v, b.String())
	}

	return nil
}

func (c *Console) renderBoard(g *gocui.Gui) {
	v, err := g.View("board")
	if err != nil {
		return
	}
	v.Clear()

	grid := c.ctrl.Grid()
	n := grid.Size()
	maxW, maxH := v.Size()

	var b bytes.Buffer
	for row := 0; row < n; row++ {
		if row >= maxH {
			b.WriteString(aurora.Red("board larger than the viewing area").String())
			break
		}
		if row != 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < n; col++ {
			if col >= maxW {
				break
			}
			if grid.Alive(row, col) {
				b.WriteString(c.liveFiller)
			} else {
				b.WriteString(c.deadFiller)
			}
		}
	}
	fmt.Fprint(v, b.String())
}

func (c *Console) renderStatus(g *gocui.Gui) {
	v, err := g.View("status")
	if err != nil {
		return
	}
	v.Clear()
	grid := c.ctrl.Grid()
	fmt.Fprintln(v, c.renderProp("Board", "%d x %d", grid.Size(), grid.Size()))
	fmt.Fprintln(v, c.renderProp("Generation", "%d", c.generation))
	fmt.Fprintln(v, c.renderProp("Live cells", "%d", grid.Population()))
	fmt.Fprintln(v, c.renderProp("Interval", "%v", c.interval))
	fmt.Fprintln(v, c.renderProp("Mode", "%s", stateDescr[c.ctrl.State()]))
}

func (c *Console) renderProp(name, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (c *Console) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (c *Console) cmdStart(_ *gocui.View) error {
	c.ctrl.Start()
	return nil
}

func (c *Console) cmdPause(_ *gocui.View) error {
	c.ctrl.Pause()
	return nil
}

func (c *Console) cmdEnd(_ *gocui.View) error {
	c.ctrl.Reset()
	c.generation = 0
	return nil
}

func (c *Console) cmdStep(_ *gocui.View) error {
	c.ctrl.StepOnce()
	c.generation++
	return nil
}

func (c *Console) cmdRandom(_ *gocui.View) error {
	c.ctrl.Grid().Randomize(time.Now().UnixNano())
	return nil
}

// cmdMouseClick toggles the cell under the cursor. One terminal cell maps to
// one board cell, so the view cursor is the (col, row) pair directly.
func (c *Console) cmdMouseClick(v *gocui.View) error {
	col, row := v.Cursor()
	n := c.ctrl.Grid().Size()
	if row >= 0 && row < n && col >= 0 && col < n {
		c.ctrl.ToggleCell(row, col)
	}
	return nil
}
