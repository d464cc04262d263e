package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the decoder understands. Bindings are grouped by
// the mode (or leader) in which they are consulted.
type KeyMap struct {
	// Any mode.
	Quit key.Binding

	// Normal.
	QuitNormal  key.Binding
	Help        key.Binding
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	First       key.Binding
	Last        key.Binding
	Insert      key.Binding
	Append      key.Binding
	InsertStart key.Binding
	InsertEnd   key.Binding
	ColorMode   key.Binding
	Delete      key.Binding
	Yank        key.Binding
	PasteAfter  key.Binding
	PasteBefore key.Binding
	Replace     key.Binding
	Leader      key.Binding

	// Normal and Adjust.
	RedDown   key.Binding
	RedUp     key.Binding
	GreenDown key.Binding
	GreenUp   key.Binding
	BlueDown  key.Binding
	BlueUp    key.Binding

	// Leader(Space).
	ClipYank        key.Binding
	ClipPasteAfter  key.Binding
	ClipPasteBefore key.Binding
	ClipReplace     key.Binding

	// Insert.
	Backspace key.Binding
	Clear     key.Binding
	Confirm   key.Binding
	Cancel    key.Binding

	// Adjust.
	HueDown       key.Binding
	HueUp         key.Binding
	LightnessDown key.Binding
	LightnessUp   key.Binding
	ChromaDown    key.Binding
	ChromaUp      key.Binding
	MultiplierUp  key.Binding
	MultiplierDn  key.Binding
	AdjustLeft    key.Binding
	AdjustRight   key.Binding
	AdjustUp      key.Binding
	AdjustDown    key.Binding
	ExitAdjust    key.Binding
}

// DefaultKeyMap returns the vi-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

		QuitNormal:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Left:        key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left")),
		Right:       key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right")),
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up a row")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down a row")),
		First:       key.NewBinding(key.WithKeys("0", "home"), key.WithHelp("0", "first swatch")),
		Last:        key.NewBinding(key.WithKeys("$", "end"), key.WithHelp("$", "last swatch")),
		Insert:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "edit hex")),
		Append:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "new swatch after")),
		InsertStart: key.NewBinding(key.WithKeys("I"), key.WithHelp("I", "new swatch at start")),
		InsertEnd:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "new swatch at end")),
		ColorMode:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color mode")),
		Delete:      key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d/x", "delete")),
		Yank:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank")),
		PasteAfter:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste after")),
		PasteBefore: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "paste before")),
		Replace:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "replace from register")),
		Leader:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "clipboard leader")),

		RedDown:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r/R", "red -/+")),
		RedUp:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "red +")),
		GreenDown: key.NewBinding(key.WithKeys("g"), key.WithHelp("g/G", "green -/+")),
		GreenUp:   key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "green +")),
		BlueDown:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b/B", "blue -/+")),
		BlueUp:    key.NewBinding(key.WithKeys("B"), key.WithHelp("B", "blue +")),

		ClipYank:        key.NewBinding(key.WithKeys("y"), key.WithHelp("spc y", "copy hex")),
		ClipPasteAfter:  key.NewBinding(key.WithKeys("p"), key.WithHelp("spc p", "paste clipboard after")),
		ClipPasteBefore: key.NewBinding(key.WithKeys("P"), key.WithHelp("spc P", "paste clipboard before")),
		ClipReplace:     key.NewBinding(key.WithKeys("s"), key.WithHelp("spc s", "replace from clipboard")),

		Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "delete char")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+u", "ctrl+w"), key.WithHelp("ctrl+u", "clear")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

		HueDown:       key.NewBinding(key.WithKeys("h"), key.WithHelp("h/H", "hue -/+")),
		HueUp:         key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "hue +")),
		LightnessDown: key.NewBinding(key.WithKeys("l"), key.WithHelp("l/L", "lightness -/+")),
		LightnessUp:   key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "lightness +")),
		ChromaDown:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c/C", "chroma -/+")),
		ChromaUp:      key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "chroma +")),
		MultiplierUp:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "step x4")),
		MultiplierDn:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "step /4")),
		AdjustLeft:    key.NewBinding(key.WithKeys("left")),
		AdjustRight:   key.NewBinding(key.WithKeys("right")),
		AdjustUp:      key.NewBinding(key.WithKeys("up")),
		AdjustDown:    key.NewBinding(key.WithKeys("down")),
		ExitAdjust:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Insert, k.ColorMode, k.Leader, k.Help, k.QuitNormal}
}

// FullHelp implements help.KeyMap. Each inner slice is rendered as a column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.First, k.Last, k.Help, k.QuitNormal, k.Quit},
		{k.Insert, k.Append, k.InsertStart, k.InsertEnd, k.Delete, k.Yank, k.PasteAfter, k.PasteBefore, k.Replace},
		{k.Leader, k.ClipYank, k.ClipPasteAfter, k.ClipPasteBefore, k.ClipReplace, k.Backspace, k.Clear, k.Confirm, k.Cancel},
		{k.ColorMode, k.RedDown, k.GreenDown, k.BlueDown, k.HueDown, k.LightnessDown, k.ChromaDown, k.MultiplierUp, k.MultiplierDn, k.ExitAdjust},
	}
}
