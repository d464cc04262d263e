package editor

import (
	"strings"

	"hexgrid/internal/color"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Decode maps a keystroke to an Action given the current mode and leader. It
// has no side effects. The boolean is false when the combination means
// nothing; the caller must still clear the leader in that case.
func (k KeyMap) Decode(mode Mode, leader Leader, msg tea.KeyMsg) (Action, bool) {
	if key.Matches(msg, k.Quit) {
		return Action{Kind: ActQuit}, true
	}
	if leader == LeaderSpace {
		return k.decodeLeader(msg)
	}
	switch m := mode.(type) {
	case Normal:
		return k.decodeNormal(msg)
	case Insert:
		return k.decodeInsert(m, msg)
	case Adjust:
		return k.decodeAdjust(msg)
	}
	return Action{}, false
}

func (k KeyMap) decodeNormal(msg tea.KeyMsg) (Action, bool) {
	switch {
	case key.Matches(msg, k.QuitNormal):
		return Action{Kind: ActQuit}, true
	case key.Matches(msg, k.Help):
		return Action{Kind: ActToggleHelp}, true
	case key.Matches(msg, k.Left):
		return move(-1, 0), true
	case key.Matches(msg, k.Right):
		return move(1, 0), true
	case key.Matches(msg, k.Up):
		return move(0, -1), true
	case key.Matches(msg, k.Down):
		return move(0, 1), true
	case key.Matches(msg, k.First):
		return Action{Kind: ActMoveFirst}, true
	case key.Matches(msg, k.Last):
		return Action{Kind: ActMoveLast}, true
	case key.Matches(msg, k.Insert):
		return Action{Kind: ActEnterInsert}, true
	case key.Matches(msg, k.Append):
		return Action{Kind: ActAppend}, true
	case key.Matches(msg, k.InsertStart):
		return Action{Kind: ActInsertStart}, true
	case key.Matches(msg, k.InsertEnd):
		return Action{Kind: ActInsertEnd}, true
	case key.Matches(msg, k.ColorMode):
		return Action{Kind: ActEnterAdjust}, true
	case key.Matches(msg, k.Delete):
		return Action{Kind: ActDelete}, true
	case key.Matches(msg, k.Yank):
		return Action{Kind: ActYank}, true
	case key.Matches(msg, k.PasteAfter):
		return Action{Kind: ActPasteAfter}, true
	case key.Matches(msg, k.PasteBefore):
		return Action{Kind: ActPasteBefore}, true
	case key.Matches(msg, k.Replace):
		return Action{Kind: ActReplace}, true
	case key.Matches(msg, k.Leader):
		return Action{Kind: ActLeader}, true
	}
	return k.decodeChannel(msg)
}

func (k KeyMap) decodeLeader(msg tea.KeyMsg) (Action, bool) {
	switch {
	case key.Matches(msg, k.ClipYank):
		return Action{Kind: ActClipboardYank}, true
	case key.Matches(msg, k.ClipPasteAfter):
		return Action{Kind: ActClipboardPasteAfter}, true
	case key.Matches(msg, k.ClipPasteBefore):
		return Action{Kind: ActClipboardPasteBefore}, true
	case key.Matches(msg, k.ClipReplace):
		return Action{Kind: ActClipboardReplace}, true
	}
	return Action{}, false
}

func (k KeyMap) decodeInsert(m Insert, msg tea.KeyMsg) (Action, bool) {
	switch {
	case key.Matches(msg, k.Confirm):
		return Action{Kind: ActInsertConfirm}, true
	case key.Matches(msg, k.Cancel):
		return Action{Kind: ActInsertCancel}, true
	case key.Matches(msg, k.Backspace):
		if m.Buffer == "" {
			return Action{}, false
		}
		return Action{Kind: ActInsertBackspace}, true
	case key.Matches(msg, k.Clear):
		return Action{Kind: ActInsertClear}, true
	}
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) == 0 {
		return Action{}, false
	}
	text := string(msg.Runes)
	if !isHex(text) || (!m.Fresh && len(m.Buffer) >= color.HexLen) {
		return Action{}, false
	}
	return Action{Kind: ActInsertText, Text: strings.ToLower(text)}, true
}

func (k KeyMap) decodeAdjust(msg tea.KeyMsg) (Action, bool) {
	switch {
	case key.Matches(msg, k.ExitAdjust):
		return Action{Kind: ActExitAdjust}, true
	case key.Matches(msg, k.HueDown):
		return signed(ActAdjustHue, -1), true
	case key.Matches(msg, k.HueUp):
		return signed(ActAdjustHue, 1), true
	case key.Matches(msg, k.LightnessDown):
		return signed(ActAdjustLightness, -1), true
	case key.Matches(msg, k.LightnessUp):
		return signed(ActAdjustLightness, 1), true
	case key.Matches(msg, k.ChromaDown):
		return signed(ActAdjustChroma, -1), true
	case key.Matches(msg, k.ChromaUp):
		return signed(ActAdjustChroma, 1), true
	case key.Matches(msg, k.MultiplierUp):
		return Action{Kind: ActMultiplierUp}, true
	case key.Matches(msg, k.MultiplierDn):
		return Action{Kind: ActMultiplierDown}, true
	case key.Matches(msg, k.AdjustLeft):
		return move(-1, 0), true
	case key.Matches(msg, k.AdjustRight):
		return move(1, 0), true
	case key.Matches(msg, k.AdjustUp):
		return move(0, -1), true
	case key.Matches(msg, k.AdjustDown):
		return move(0, 1), true
	}
	return k.decodeChannel(msg)
}

func (k KeyMap) decodeChannel(msg tea.KeyMsg) (Action, bool) {
	switch {
	case key.Matches(msg, k.RedDown):
		return channel(color.Red, -1), true
	case key.Matches(msg, k.RedUp):
		return channel(color.Red, 1), true
	case key.Matches(msg, k.GreenDown):
		return channel(color.Green, -1), true
	case key.Matches(msg, k.GreenUp):
		return channel(color.Green, 1), true
	case key.Matches(msg, k.BlueDown):
		return channel(color.Blue, -1), true
	case key.Matches(msg, k.BlueUp):
		return channel(color.Blue, 1), true
	}
	return Action{}, false
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
