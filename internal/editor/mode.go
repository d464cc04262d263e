package editor

// Mode is the active edit mode. The set of modes is closed: Normal, Insert and
// Adjust are the only implementations.
type Mode interface {
	// Name is the label shown in the status bar.
	Name() string
	isMode()
}

// Normal is the initial command mode.
type Normal struct{}

// Insert is hex text entry for the cell under the cursor. Buffer holds at most
// color.HexLen characters and is discarded when the mode is left.
//
// Fresh marks a buffer pre-filled from the current colour that has not been
// edited yet; the first typed digit replaces it instead of appending.
type Insert struct {
	Buffer string
	Fresh  bool
}

// Adjust nudges the colour under the cursor by the current multiplier.
type Adjust struct{}

func (Normal) Name() string { return "NORMAL" }
func (Insert) Name() string { return "INSERT" }
func (Adjust) Name() string { return "COLOR" }

func (Normal) isMode() {}
func (Insert) isMode() {}
func (Adjust) isMode() {}

// Leader is a one-keystroke prefix that selects an alternate command set.
type Leader int

const (
	LeaderNone Leader = iota
	LeaderSpace
)

func (l Leader) String() string {
	switch l {
	case LeaderSpace:
		return "SPC"
	default:
		return ""
	}
}
