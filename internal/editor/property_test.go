package editor

import (
	"testing"

	"hexgrid/internal/clipboard"
	"hexgrid/internal/palette"

	tea "github.com/charmbracelet/bubbletea"
	"pgregory.net/rapid"
)

var propertyKeys = []tea.KeyMsg{
	runeKey('h'), runeKey('j'), runeKey('k'), runeKey('l'), runeKey('0'), runeKey('$'),
	runeKey('i'), runeKey('a'), runeKey('I'), runeKey('A'), runeKey('c'),
	runeKey('d'), runeKey('x'), runeKey('y'), runeKey('p'), runeKey('P'), runeKey('s'),
	runeKey('r'), runeKey('R'), runeKey('g'), runeKey('G'), runeKey('b'), runeKey('B'),
	runeKey('H'), runeKey('L'), runeKey('C'), runeKey('+'), runeKey('-'), runeKey('?'),
	runeKey(' '), runeKey('f'), runeKey('3'), runeKey('e'),
	specialKey(tea.KeyEnter), specialKey(tea.KeyEsc), specialKey(tea.KeyBackspace),
	specialKey(tea.KeyCtrlU), specialKey(tea.KeyLeft), specialKey(tea.KeyRight),
	specialKey(tea.KeyUp), specialKey(tea.KeyDown),
}

// Random key streams never break the structural invariants of the session.
func TestEditorInvariantsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cols := rapid.IntRange(1, 5).Draw(t, "cols")
		rows := rapid.IntRange(1, 5).Draw(t, "rows")
		g := palette.New(cols, rows)
		e := New(g, clipboard.NewMemory("a0b0c0"))

		keys := rapid.SliceOfN(rapid.SampledFrom(propertyKeys), 1, 200).Draw(t, "keys")
		for _, k := range keys {
			before := g.Len()
			e.HandleKey(k)

			if n := g.Len(); n < 1 || n > g.Cap() {
				t.Fatalf("len = %d, want 1..%d", n, g.Cap())
			}
			if d := g.Len() - before; d < -1 || d > 1 {
				t.Fatalf("len changed by %d in one keystroke", d)
			}
			if c := e.Cursor(); c < 0 || c >= g.Len() {
				t.Fatalf("cursor = %d, len = %d", c, g.Len())
			}
			if m := e.Multiplier(); m < MinMultiplier || m > MaxMultiplier {
				t.Fatalf("multiplier = %d", m)
			}
			if ins, ok := e.Mode().(Insert); ok && len(ins.Buffer) > 6 {
				t.Fatalf("insert buffer %q too long", ins.Buffer)
			}
			if e.Leader() != LeaderNone && k.Type != tea.KeySpace {
				t.Fatalf("leader %v survived key %q", e.Leader(), k.String())
			}
		}
	})
}

// Any key under the leader other than its four commands leaves the grid alone.
func TestLeaderUnboundKeysProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := New(palette.New(4, 4), clipboard.NewMemory("ffffff"))
		e.HandleKey(runeKey('y'))
		e.HandleKey(runeKey('p'))
		before := e.Grid().Colors()
		reg, _ := e.Register()

		r := rapid.SampledFrom([]rune("hjkl0$iaIAcdxrRgGbBq?zZ ")).Draw(t, "key")
		e.HandleKey(runeKey(' '))
		e.HandleKey(runeKey(r))

		after := e.Grid().Colors()
		if len(after) != len(before) {
			t.Fatalf("len %d -> %d", len(before), len(after))
		}
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("cell %d changed %s -> %s", i, before[i], after[i])
			}
		}
		if got, _ := e.Register(); got != reg {
			t.Fatalf("register changed %s -> %s", reg, got)
		}
		if e.Mode() != (Normal{}) || e.Leader() != LeaderNone {
			t.Fatalf("mode = %#v leader = %v", e.Mode(), e.Leader())
		}
	})
}
