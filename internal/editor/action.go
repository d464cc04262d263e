package editor

import "hexgrid/internal/color"

// ActionKind identifies what an Action does.
type ActionKind int

const (
	ActNone ActionKind = iota
	ActQuit
	ActToggleHelp

	// Cursor
	ActMove
	ActMoveFirst
	ActMoveLast

	// Mode transitions from Normal
	ActEnterInsert
	ActAppend
	ActInsertStart
	ActInsertEnd
	ActEnterAdjust
	ActLeader

	// Insert mode
	ActInsertText
	ActInsertBackspace
	ActInsertClear
	ActInsertConfirm
	ActInsertCancel

	// Adjust mode (channel adjustment is also bound in Normal)
	ActAdjustChannel
	ActAdjustHue
	ActAdjustLightness
	ActAdjustChroma
	ActMultiplierUp
	ActMultiplierDown
	ActExitAdjust

	// Register
	ActDelete
	ActYank
	ActPasteAfter
	ActPasteBefore
	ActReplace

	// Leader(Space) clipboard commands
	ActClipboardYank
	ActClipboardPasteAfter
	ActClipboardPasteBefore
	ActClipboardReplace
)

var actionNames = map[ActionKind]string{
	ActNone:                 "none",
	ActQuit:                 "quit",
	ActToggleHelp:           "help",
	ActMove:                 "move",
	ActMoveFirst:            "move-first",
	ActMoveLast:             "move-last",
	ActEnterInsert:          "insert",
	ActAppend:               "append",
	ActInsertStart:          "insert-start",
	ActInsertEnd:            "insert-end",
	ActEnterAdjust:          "color-mode",
	ActLeader:               "leader",
	ActInsertText:           "type",
	ActInsertBackspace:      "backspace",
	ActInsertClear:          "clear",
	ActInsertConfirm:        "confirm",
	ActInsertCancel:         "cancel",
	ActAdjustChannel:        "channel",
	ActAdjustHue:            "hue",
	ActAdjustLightness:      "lightness",
	ActAdjustChroma:         "chroma",
	ActMultiplierUp:         "multiplier-up",
	ActMultiplierDown:       "multiplier-down",
	ActExitAdjust:           "normal-mode",
	ActDelete:               "delete",
	ActYank:                 "yank",
	ActPasteAfter:           "paste-after",
	ActPasteBefore:          "paste-before",
	ActReplace:              "replace",
	ActClipboardYank:        "clipboard-yank",
	ActClipboardPasteAfter:  "clipboard-paste-after",
	ActClipboardPasteBefore: "clipboard-paste-before",
	ActClipboardReplace:     "clipboard-replace",
}

func (k ActionKind) String() string {
	if s, ok := actionNames[k]; ok {
		return s
	}
	return "unknown"
}

// Action is a decoded command. Only the fields relevant to Kind are set:
// Dx/Dy for ActMove, Channel and Sign for ActAdjustChannel, Sign for the
// perceptual adjustments, Text for ActInsertText.
type Action struct {
	Kind    ActionKind
	Dx, Dy  int
	Channel color.Channel
	Sign    int
	Text    string
}

func move(dx, dy int) Action {
	return Action{Kind: ActMove, Dx: dx, Dy: dy}
}

func channel(ch color.Channel, sign int) Action {
	return Action{Kind: ActAdjustChannel, Channel: ch, Sign: sign}
}

func signed(kind ActionKind, sign int) Action {
	return Action{Kind: kind, Sign: sign}
}
