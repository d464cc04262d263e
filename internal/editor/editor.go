// Package editor is the input-dispatch and edit state machine of the palette
// editor.
//
// A keystroke flows through two steps. KeyMap.Decode turns (mode, leader, key)
// into an Action without touching any state; Editor.Apply executes the Action
// and is the only place the grid, cursor, mode, register or multiplier change.
// Editor.HandleKey glues the two together and clears the leader after every
// keystroke.
package editor

import (
	"hexgrid/internal/clipboard"
	"hexgrid/internal/color"
	"hexgrid/internal/palette"

	tea "github.com/charmbracelet/bubbletea"
)

// Multiplier ladder bounds.
const (
	MinMultiplier    = 1
	MaxMultiplier    = 64
	multiplierFactor = 4
)

// Per-unit steps for perceptual adjustments; each is scaled by the multiplier.
const (
	hueStep       = 1.0                   // degrees
	lightnessStep = 0.01                  // OkLch L in [0,1]
	chromaStep    = color.MaxChroma / 100 // OkLch C
)

// Editor owns all mutable session state.
type Editor struct {
	keys KeyMap
	grid *palette.Grid
	clip clipboard.Provider

	cursor      int
	mode        Mode
	leader      Leader
	register    color.Color
	hasRegister bool
	multiplier  int
	running     bool
	showHelp    bool
	status      string
}

// New returns an editor in Normal mode over grid. A nil clip disables the
// clipboard leader commands.
func New(grid *palette.Grid, clip clipboard.Provider) *Editor {
	if clip == nil {
		clip = clipboard.Disabled{}
	}
	return &Editor{
		keys:       DefaultKeyMap(),
		grid:       grid,
		clip:       clip,
		mode:       Normal{},
		multiplier: MinMultiplier,
		running:    true,
	}
}

// HandleKey decodes and applies one keystroke.
func (e *Editor) HandleKey(msg tea.KeyMsg) {
	e.status = ""
	act, ok := e.keys.Decode(e.mode, e.leader, msg)
	e.leader = LeaderNone
	if e.showHelp {
		e.showHelp = false
		if !ok || act.Kind != ActQuit {
			return
		}
	}
	if ok {
		e.Apply(act)
	}
}

// Keys returns the bindings used by the decoder.
func (e *Editor) Keys() KeyMap { return e.keys }

// Grid returns the colour store. Callers outside this package must treat it as
// read-only.
func (e *Editor) Grid() *palette.Grid { return e.grid }

// Cursor returns the index of the selected cell.
func (e *Editor) Cursor() int { return e.cursor }

// Mode returns the active mode.
func (e *Editor) Mode() Mode { return e.mode }

// Leader returns the pending leader, if any.
func (e *Editor) Leader() Leader { return e.leader }

// Register returns the yank register and whether it holds a colour.
func (e *Editor) Register() (color.Color, bool) { return e.register, e.hasRegister }

// Multiplier returns the current adjustment step.
func (e *Editor) Multiplier() int { return e.multiplier }

// Running is false once quit has been applied.
func (e *Editor) Running() bool { return e.running }

// HelpVisible reports whether the help overlay is open.
func (e *Editor) HelpVisible() bool { return e.showHelp }

// Status describes the outcome of the last keystroke, or "".
func (e *Editor) Status() string { return e.status }

// Current returns the colour under the cursor.
func (e *Editor) Current() color.Color {
	c, _ := e.grid.Get(e.cursor)
	return c
}
