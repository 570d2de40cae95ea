// Package tui provides a Bubble Tea terminal front end for the pixed
// editing engine.
package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/pixed"
)

// Screen position of the canvas: one title line above it, flush left.
const (
	canvasTop  = 1
	canvasLeft = 0
)

// gridSizes are the canvas sizes offered by Grow and Shrink.
var gridSizes = []int{8, 16, 32, 64}

// thumbSize is the longer side, in cells, of the history panel thumbnail.
const thumbSize = 16

// Model is the Bubble Tea model for the editor.
//
// One terminal cell is one column of a canvas cell: at the session's cell
// size n, a canvas cell is n columns wide and n/2 rows tall, which looks
// roughly square in most terminal fonts.
type Model struct {
	session *pixed.Session
	palette []pixed.Color

	keys   keyMap
	help   help.Model
	styles cellStyles

	cursorX  int
	cursorY  int
	selected int // history entry shown in the panel
	status   string

	width    int
	height   int
	quitting bool
}

// New creates a model editing s. palette backs the 1-9 color keys.
func New(s *pixed.Session, palette []pixed.Color) Model {
	return Model{
		session:  s,
		palette:  palette,
		keys:     keys,
		help:     help.New(),
		styles:   make(cellStyles),
		selected: s.History().Len() - 1,
	}
}

// Run starts the Bubble Tea program.
func Run(s *pixed.Session, palette []pixed.Color) error {
	p := tea.NewProgram(New(s, palette), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses, mouse events and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.session.PointerUp()
			m.quitting = true
			pixed.Logger().Info("tui: quit")
			return m, tea.Quit
		}
		m.handleKey(msg)
	}
	return m, nil
}

// cellSize returns the width and height of one canvas cell in terminal cells.
func (m Model) cellSize() (cols, rows int) {
	n := m.session.CellSize()
	return n, max(n/2, 1)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	cols, rows := m.cellSize()
	x := pixed.CellAt(float64(msg.X), canvasLeft, float64(cols))
	y := pixed.CellAt(float64(msg.Y), canvasTop, float64(rows))
	if m.session.Buffer().InBounds(x, y) {
		m.cursorX, m.cursorY = x, y
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.session.PointerDown(x, y)
		m.status = ""
	case tea.MouseActionMotion:
		m.session.PointerMove(x, y)
	case tea.MouseActionRelease:
		m.session.PointerUp()
	}
	m.followHistory()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	s := m.session
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Apply):
		s.PointerDown(m.cursorX, m.cursorY)
		s.PointerUp()

	case key.Matches(msg, m.keys.Brush):
		s.SetTool(pixed.Brush)
	case key.Matches(msg, m.keys.Bucket):
		s.SetTool(pixed.Bucket)
	case key.Matches(msg, m.keys.Palette):
		i := int(msg.String()[0] - '1')
		if i < len(m.palette) {
			s.SetColor(m.palette[i])
		} else {
			m.status = fmt.Sprintf("no color in slot %d", i+1)
		}

	case key.Matches(msg, m.keys.Undo):
		if !s.Undo() {
			m.status = "nothing to undo"
		}
	case key.Matches(msg, m.keys.Redo):
		if !s.Redo() {
			m.status = "nothing to redo"
		}

	case key.Matches(msg, m.keys.ZoomIn):
		s.ZoomIn()
	case key.Matches(msg, m.keys.ZoomOut):
		if !s.ZoomOut() {
			m.status = "already at minimum zoom"
		}
	case key.Matches(msg, m.keys.Grow):
		m.resize(nextGridSize(s.Buffer().Width(), 1))
	case key.Matches(msg, m.keys.Shrink):
		m.resize(nextGridSize(s.Buffer().Width(), -1))

	case key.Matches(msg, m.keys.HistoryPrev):
		m.selected = max(m.selected-1, 0)
		return
	case key.Matches(msg, m.keys.HistoryNext):
		m.selected = min(m.selected+1, s.History().Len()-1)
		return
	case key.Matches(msg, m.keys.Jump):
		if err := s.JumpTo(m.selected); err != nil {
			m.status = err.Error()
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return
	}
	m.followHistory()
}

// followHistory points the history panel at the current entry.
func (m *Model) followHistory() {
	m.selected = m.session.History().Len() - 1
}

func (m *Model) moveCursor(dx, dy int) {
	w, h := m.session.GridSize()
	m.cursorX = min(max(m.cursorX+dx, 0), w-1)
	m.cursorY = min(max(m.cursorY+dy, 0), h-1)
}

func (m *Model) resize(n int) {
	w, _ := m.session.GridSize()
	if n == w {
		return
	}
	if err := m.session.Resize(n, n); err != nil {
		m.status = err.Error()
		return
	}
	m.moveCursor(0, 0)
	m.status = fmt.Sprintf("new %dx%d canvas", n, n)
}

// nextGridSize returns the offered grid size after (dir > 0) or before
// (dir < 0) current, or current when there is none.
func nextGridSize(current, dir int) int {
	if dir > 0 {
		for _, n := range gridSizes {
			if n > current {
				return n
			}
		}
		return current
	}
	for i := len(gridSizes) - 1; i >= 0; i-- {
		if gridSizes[i] < current {
			return gridSizes[i]
		}
	}
	return current
}

// View renders the title, canvas, history panel, status line and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cols, rows := m.cellSize()
	canvas := m.styles.renderImage(m.session.Buffer(), cols, rows, image.Pt(m.cursorX, m.cursorY))
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvas, stylePanel.Render(m.historyPanel()))

	var b strings.Builder
	b.WriteString(styleTitle.Render("pixed"))
	b.WriteByte('\n')
	b.WriteString(body)
	b.WriteByte('\n')
	b.WriteString(m.statusLine())
	if m.status != "" {
		b.WriteByte('\n')
		b.WriteString(styleMessage.Render(m.status))
	}
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) statusLine() string {
	s := m.session
	w, h := s.GridSize()
	c := s.Color()
	swatch := m.styles.cell(c, 2, false)
	return styleStatusBar.Render(fmt.Sprintf(" %s ", s.Tool())) + " " + swatch +
		styleStatusBar.Render(fmt.Sprintf(" %s  %dx%d  zoom %d  (%d,%d)  history %d/%d  redo %d ",
			c.Hex(), w, h, s.CellSize(), m.cursorX, m.cursorY,
			s.History().Len(), s.History().Limit(), s.History().FutureLen()))
}

func (m Model) historyPanel() string {
	hist := m.session.History()
	var b strings.Builder
	fmt.Fprintf(&b, "History %d/%d\n", m.selected+1, hist.Len())

	snap, ok := hist.Entry(m.selected)
	if !ok {
		return b.String()
	}
	thumb := pixed.Thumbnail(snap, thumbSize)
	b.WriteString(m.styles.renderImage(thumb, 2, 1, image.Pt(-1, -1)))
	b.WriteByte('\n')

	label := "current"
	if m.selected < hist.Len()-1 {
		label = "enter: jump here"
	}
	b.WriteString(styleSelected.Render(label))
	return b.String()
}
