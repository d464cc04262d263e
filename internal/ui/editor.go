package ui

import (
	"fmt"
	"log"
	"strings"

	"hexgrid/internal/color"
	"hexgrid/internal/config"
	"hexgrid/internal/editor"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// caret marks the insertion point of the pending hex buffer.
const caret = "▏"

// EditorModel is the bubbletea front end of an editor.Editor. All state lives
// in the wrapped editor; the model only tracks the terminal size.
type EditorModel struct {
	ed     *editor.Editor
	cell   config.CellConfig
	width  int
	height int
}

// NewEditorModel wraps ed, drawing each swatch at the given cell size.
func NewEditorModel(ed *editor.Editor, cell config.CellConfig) EditorModel {
	return EditorModel{ed: ed, cell: cell}
}

// Editor returns the wrapped session.
func (m EditorModel) Editor() *editor.Editor { return m.ed }

// SetDimensions sets the terminal size used for centring.
func (m *EditorModel) SetDimensions(width, height int) {
	m.width = width
	m.height = height
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the editor.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		log.Printf("[EditorModel] key: type=%d string=%q mode=%s leader=%v",
			msg.Type, msg.String(), m.ed.Mode().Name(), m.ed.Leader())
		m.ed.HandleKey(msg)
		if s := m.ed.Status(); s != "" {
			log.Printf("[EditorModel] status: %s", s)
		}
		if !m.ed.Running() {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m EditorModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.ed.HelpVisible() {
		return RenderHelp(m.ed.Keys(), m.width, m.height)
	}

	grid := m.renderGrid()
	status := m.renderStatusBar(lipgloss.Width(grid))
	body := lipgloss.JoinVertical(lipgloss.Left, grid, status)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(backgroundColor))
}

func (m EditorModel) renderGrid() string {
	g := m.ed.Grid()
	rows := make([]string, 0, g.Rows())
	for r := 0; r < g.Rows(); r++ {
		cells := make([]string, 0, g.Cols())
		for c := 0; c < g.Cols(); c++ {
			cells = append(cells, m.renderCell(r*g.Cols()+c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCell draws slot i. Slots past the end of the palette are blank; the
// cursor slot gets a thick border and, in insert mode, the pending buffer.
func (m EditorModel) renderCell(i int) string {
	w, h := m.cell.Width, m.cell.Height
	c, err := m.ed.Grid().Get(i)
	if err != nil {
		return placeholderStyle.Width(w).Height(h).Render("")
	}

	label := c.Hex()
	style := swatchStyle
	if i == m.ed.Cursor() {
		if ins, ok := m.ed.Mode().(editor.Insert); ok {
			label = ins.Buffer + caret
			if parsed, err := color.FromHex(ins.Buffer); err == nil {
				c = parsed
			}
		}
		w, h = w-2, h-2
		label = fitTail(label, w)
		style = cursorStyle.
			BorderForeground(termColor(c.Contrast())).
			BorderBackground(termColor(c))
	}
	return style.
		Width(w).
		Height(h).
		Background(termColor(c)).
		Foreground(termColor(c.Contrast())).
		Render(label)
}

func (m EditorModel) renderStatusBar(width int) string {
	ed := m.ed
	modeDisplay := editorModeStyle.Render(fmt.Sprintf(" %s ", ed.Mode().Name()))
	if l := ed.Leader(); l != editor.LeaderNone {
		modeDisplay += leaderStyle.Render(fmt.Sprintf(" %s ", l))
	}

	info := fmt.Sprintf(" %d/%d", ed.Cursor()+1, ed.Grid().Len())
	if _, ok := ed.Mode().(editor.Adjust); ok {
		info += fmt.Sprintf(" │ step %d", ed.Multiplier())
	}
	if s := ed.Status(); s != "" {
		info += " │ " + s
	}

	right := fmt.Sprintf(" cap %d ", ed.Grid().Cap())
	if reg, ok := ed.Register(); ok {
		swatch := lipgloss.NewStyle().Background(termColor(reg)).Render("  ")
		right = " reg " + swatch + right
	}

	gap := width - lipgloss.Width(modeDisplay) - lipgloss.Width(info) - lipgloss.Width(right)
	if gap < 0 {
		gap = 1
	}
	line := modeDisplay + info + strings.Repeat(" ", gap) + right
	return editorStatusStyle.Width(max(width, lipgloss.Width(line))).Render(line)
}

func termColor(c color.Color) lipgloss.Color {
	return lipgloss.Color("#" + c.Hex())
}

// fitTail keeps the last w runes of s so the caret stays visible in narrow
// cells.
func fitTail(s string, w int) string {
	r := []rune(s)
	if w <= 0 {
		return ""
	}
	if len(r) <= w {
		return s
	}
	return string(r[len(r)-w:])
}

// Styles for the grid and status bar.
var (
	backgroundColor = lipgloss.Color("#000000")

	swatchStyle = lipgloss.NewStyle().
			Align(lipgloss.Center, lipgloss.Center)

	cursorStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Align(lipgloss.Left, lipgloss.Center)

	placeholderStyle = lipgloss.NewStyle().
				Background(backgroundColor)

	editorStatusStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#333333")).
				Foreground(lipgloss.Color("#AAAAAA"))

	editorModeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#7D56F4")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	leaderStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#FF9500")).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)
)
