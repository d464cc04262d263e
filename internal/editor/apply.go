package editor

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"hexgrid/internal/clipboard"
	"hexgrid/internal/color"
	"hexgrid/internal/palette"
)

// Apply executes a decoded action. Failures from the grid or the clipboard are
// swallowed: state is left exactly as before and only Status records what
// happened.
func (e *Editor) Apply(a Action) {
	switch a.Kind {
	case ActQuit:
		e.running = false
	case ActToggleHelp:
		e.showHelp = !e.showHelp

	case ActMove:
		e.Move(a.Dx, a.Dy)
	case ActMoveFirst:
		e.cursor = 0
	case ActMoveLast:
		e.cursor = e.grid.Len() - 1

	case ActEnterInsert:
		e.mode = Insert{Buffer: e.Current().Hex(), Fresh: true}
	case ActAppend:
		e.insertBlank(e.cursor + 1)
	case ActInsertStart:
		e.insertBlank(0)
	case ActInsertEnd:
		e.insertBlank(e.grid.Len())
	case ActEnterAdjust:
		e.mode = Adjust{}
	case ActExitAdjust:
		e.mode = Normal{}
	case ActLeader:
		e.leader = LeaderSpace

	case ActInsertText, ActInsertBackspace, ActInsertClear, ActInsertConfirm, ActInsertCancel:
		e.applyInsert(a)

	case ActAdjustChannel:
		e.updateCurrent(func(c color.Color) color.Color {
			return c.AdjustChannel(a.Channel, a.Sign*e.multiplier)
		})
	case ActAdjustHue:
		e.updateCurrent(func(c color.Color) color.Color {
			return c.AdjustHue(float64(a.Sign*e.multiplier) * hueStep)
		})
	case ActAdjustLightness:
		e.updateCurrent(func(c color.Color) color.Color {
			return c.AdjustLightness(float64(a.Sign*e.multiplier) * lightnessStep)
		})
	case ActAdjustChroma:
		e.updateCurrent(func(c color.Color) color.Color {
			return c.AdjustChroma(float64(a.Sign*e.multiplier) * chromaStep)
		})
	case ActMultiplierUp:
		e.multiplier = min(e.multiplier*multiplierFactor, MaxMultiplier)
		e.status = fmt.Sprintf("step %d", e.multiplier)
	case ActMultiplierDown:
		e.multiplier = max(e.multiplier/multiplierFactor, MinMultiplier)
		e.status = fmt.Sprintf("step %d", e.multiplier)

	case ActDelete:
		removed, err := e.grid.DeleteAt(e.cursor)
		if err != nil {
			e.fail("delete", err)
			return
		}
		e.register, e.hasRegister = removed, true
		e.cursor = e.grid.Clamp(e.cursor)
	case ActYank:
		e.register, e.hasRegister = e.Current(), true
		e.status = "yanked " + e.register.Hex()
	case ActPasteAfter:
		if e.hasRegister {
			e.insertColor(e.cursor+1, e.register)
		}
	case ActPasteBefore:
		if e.hasRegister {
			e.insertColor(e.cursor, e.register)
		}
	case ActReplace:
		if e.hasRegister {
			e.setCurrent(e.register)
		}

	case ActClipboardYank:
		hex := e.Current().Hex()
		if err := e.clip.WriteText(hex); err != nil {
			e.fail("clipboard write", err)
			return
		}
		e.status = "copied " + hex
	case ActClipboardPasteAfter:
		if c, ok := e.readClipboard(); ok {
			e.insertColor(e.cursor+1, c)
		}
	case ActClipboardPasteBefore:
		if c, ok := e.readClipboard(); ok {
			e.insertColor(e.cursor, c)
		}
	case ActClipboardReplace:
		if c, ok := e.readClipboard(); ok {
			e.setCurrent(c)
		}
	}
}

// Move shifts the cursor by dx cells and dy rows on the flat sequence and
// clamps the result to the filled cells. Horizontal moves cross row edges.
func (e *Editor) Move(dx, dy int) {
	e.cursor = e.grid.Clamp(e.cursor + dx + dy*e.grid.Cols())
}

func (e *Editor) applyInsert(a Action) {
	ins, ok := e.mode.(Insert)
	if !ok {
		return
	}
	switch a.Kind {
	case ActInsertText:
		buf := ins.Buffer + a.Text
		if ins.Fresh {
			buf = a.Text
		}
		if len(buf) > color.HexLen {
			buf = buf[:color.HexLen]
		}
		e.mode = Insert{Buffer: buf}
	case ActInsertBackspace:
		if ins.Buffer != "" {
			e.mode = Insert{Buffer: ins.Buffer[:len(ins.Buffer)-1]}
		}
	case ActInsertClear:
		e.mode = Insert{}
	case ActInsertConfirm:
		e.mode = Normal{}
		c, err := color.FromHex(ins.Buffer)
		if err != nil {
			e.fail("confirm", err)
			return
		}
		e.setCurrent(c)
	case ActInsertCancel:
		e.mode = Normal{}
	}
}

// insertBlank adds a default cell at i, moves onto it and starts hex entry.
func (e *Editor) insertBlank(i int) {
	if e.insertColor(i, color.Default) {
		e.mode = Insert{}
	}
}

// insertColor inserts c at i and moves the cursor onto it.
func (e *Editor) insertColor(i int, c color.Color) bool {
	if err := e.grid.InsertAt(i, c); err != nil {
		e.fail("insert", err)
		return false
	}
	e.cursor = i
	return true
}

func (e *Editor) setCurrent(c color.Color) {
	if _, err := e.grid.Set(e.cursor, c); err != nil {
		e.fail("set", err)
	}
}

func (e *Editor) updateCurrent(fn func(color.Color) color.Color) {
	e.setCurrent(fn(e.Current()))
}

func (e *Editor) readClipboard() (color.Color, bool) {
	text, err := e.clip.ReadText()
	if err != nil {
		e.fail("clipboard read", err)
		return color.Color{}, false
	}
	c, err := color.FromHex(strings.TrimSpace(text))
	if err != nil {
		e.fail("clipboard parse", err)
		return color.Color{}, false
	}
	return c, true
}

func (e *Editor) fail(op string, err error) {
	log.Printf("[Editor] %s: %v", op, err)
	switch {
	case errors.Is(err, palette.ErrCapacityExceeded):
		e.status = "palette full"
	case errors.Is(err, palette.ErrMinimumSize):
		e.status = "cannot delete the last swatch"
	case errors.Is(err, color.ErrInvalidFormat):
		e.status = "not a hex color"
	case errors.Is(err, clipboard.ErrUnavailable):
		e.status = "clipboard unavailable"
	default:
		e.status = err.Error()
	}
}
