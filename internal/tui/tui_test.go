package tui

import (
	"image"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/gogpu/pixed"
)

func newTestModel(t *testing.T, opts ...pixed.SessionOption) Model {
	t.Helper()
	opts = append([]pixed.SessionOption{
		pixed.WithGridSize(8, 8),
		pixed.WithCellSize(2),
		pixed.WithBackground(pixed.White),
	}, opts...)
	s, err := pixed.NewSession(opts...)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return New(s, []pixed.Color{pixed.Black, pixed.Red, pixed.Blue})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds messages through Update and returns the resulting model.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestKeyboardPaint(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeySpace},
	)

	if m.cursorX != 2 || m.cursorY != 1 {
		t.Fatalf("cursor = (%d, %d), want (2, 1)", m.cursorX, m.cursorY)
	}
	if got := m.session.Buffer().Pixel(2, 1); got != pixed.Black {
		t.Errorf("Pixel(2, 1) = %v, want black", got)
	}
	if m.session.Stroking() {
		t.Error("keyboard apply left a stroke open")
	}
	if m.session.History().Len() != 2 {
		t.Errorf("History().Len() = %d, want 2", m.session.History().Len())
	}
}

func TestCursorClamped(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursorX != 0 || m.cursorY != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 0)", m.cursorX, m.cursorY)
	}
	for i := 0; i < 20; i++ {
		m = send(t, m, runes("l"), runes("j"))
	}
	if m.cursorX != 7 || m.cursorY != 7 {
		t.Errorf("cursor = (%d, %d), want (7, 7)", m.cursorX, m.cursorY)
	}
}

func TestUndoRedoKeys(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.session.Buffer().Pixel(0, 0); got != pixed.White {
		t.Errorf("after ctrl+z Pixel(0, 0) = %v, want white", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.session.Buffer().Pixel(0, 0); got != pixed.Black {
		t.Errorf("after ctrl+y Pixel(0, 0) = %v, want black", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if m.status != "nothing to redo" {
		t.Errorf("status = %q, want %q", m.status, "nothing to redo")
	}

	m = send(t, m, runes("u"))
	if got := m.session.Buffer().Pixel(0, 0); got != pixed.White {
		t.Errorf("after u Pixel(0, 0) = %v, want white", got)
	}
	m = send(t, m, runes("U"))
	if got := m.session.Buffer().Pixel(0, 0); got != pixed.Black {
		t.Errorf("after U Pixel(0, 0) = %v, want black", got)
	}
}

func TestKeyBindingsReachable(t *testing.T) {
	// Key names bubbletea can produce for a single key press.
	known := map[string]bool{
		"up": true, "down": true, "left": true, "right": true,
		" ": true, "space": true, "enter": true,
		"ctrl+c": true, "ctrl+y": true, "ctrl+z": true,
	}
	for _, groups := range keys.FullHelp() {
		for _, b := range groups {
			for _, k := range b.Keys() {
				if len([]rune(k)) == 1 || known[k] {
					continue
				}
				t.Errorf("binding %q (%s) uses unknown key %q", b.Help().Key, b.Help().Desc, k)
			}
		}
	}
}

func TestToolAndPaletteKeys(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("f"), runes("2"))
	if m.session.Tool() != pixed.Bucket {
		t.Errorf("Tool() = %v, want Bucket", m.session.Tool())
	}
	if m.session.Color() != pixed.Red {
		t.Errorf("Color() = %v, want red", m.session.Color())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if got := m.session.Buffer().Pixel(7, 7); got != pixed.Red {
		t.Errorf("bucket fill left Pixel(7, 7) = %v, want red", got)
	}

	m = send(t, m, runes("9"))
	if !strings.Contains(m.status, "slot 9") {
		t.Errorf("status = %q, want a missing-slot message", m.status)
	}
	m = send(t, m, runes("b"))
	if m.session.Tool() != pixed.Brush {
		t.Errorf("Tool() = %v, want Brush", m.session.Tool())
	}
}

// TestMouseStroke drags across three cells and checks the stroke becomes
// one history entry.
func TestMouseStroke(t *testing.T) {
	m := newTestModel(t)
	// Cells are 2 columns by 1 row; the canvas starts on row 1.
	m = send(t, m,
		mouse(tea.MouseActionPress, 0, 1),
		mouse(tea.MouseActionMotion, 3, 1),
		mouse(tea.MouseActionMotion, 5, 2),
	)
	if m.session.History().Len() != 1 {
		t.Errorf("History().Len() = %d mid-drag, want 1", m.session.History().Len())
	}
	m = send(t, m, mouse(tea.MouseActionRelease, 5, 2))

	for _, p := range [][2]int{{0, 0}, {1, 0}, {2, 1}} {
		if got := m.session.Buffer().Pixel(p[0], p[1]); got != pixed.Black {
			t.Errorf("Pixel(%d, %d) = %v, want black", p[0], p[1], got)
		}
	}
	if m.session.History().Len() != 2 {
		t.Errorf("History().Len() = %d, want 2", m.session.History().Len())
	}
	if m.cursorX != 2 || m.cursorY != 1 {
		t.Errorf("cursor = (%d, %d), want (2, 1)", m.cursorX, m.cursorY)
	}
}

func TestMouseOutsideCanvas(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m,
		mouse(tea.MouseActionPress, 40, 0),
		mouse(tea.MouseActionRelease, 40, 0),
	)
	if m.session.History().Len() != 1 {
		t.Errorf("click outside canvas recorded history: Len() = %d", m.session.History().Len())
	}
}

func TestZoomChangesMouseMapping(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("+"))
	if m.session.CellSize() != 4 {
		t.Fatalf("CellSize() = %d, want 4", m.session.CellSize())
	}
	// 4 columns by 2 rows per cell now.
	m = send(t, m,
		mouse(tea.MouseActionPress, 5, 3),
		mouse(tea.MouseActionRelease, 5, 3),
	)
	if got := m.session.Buffer().Pixel(1, 1); got != pixed.Black {
		t.Errorf("Pixel(1, 1) = %v, want black", got)
	}

	m = send(t, m, runes("-"), runes("-"))
	if m.status != "already at minimum zoom" {
		t.Errorf("status = %q", m.status)
	}
}

func TestGridSizeKeys(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace}, runes(">"))
	if w, h := m.session.GridSize(); w != 16 || h != 16 {
		t.Errorf("GridSize() = %dx%d, want 16x16", w, h)
	}
	if m.session.History().Len() != 1 {
		t.Error("grid change kept old history")
	}

	m = send(t, m, runes("<"), runes("<"))
	if w, _ := m.session.GridSize(); w != 8 {
		t.Errorf("GridSize() width = %d, want 8", w)
	}
}

func TestNextGridSize(t *testing.T) {
	tests := []struct {
		current, dir, want int
	}{
		{8, 1, 16},
		{64, 1, 64},
		{10, 1, 16},
		{64, -1, 32},
		{8, -1, 8},
		{100, -1, 64},
	}
	for _, tt := range tests {
		if got := nextGridSize(tt.current, tt.dir); got != tt.want {
			t.Errorf("nextGridSize(%d, %d) = %d, want %d", tt.current, tt.dir, got, tt.want)
		}
	}
}

func TestHistoryBrowser(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 3; i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeySpace}, tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.selected != 3 {
		t.Fatalf("selected = %d, want 3", m.selected)
	}

	m = send(t, m, runes("["), runes("["))
	if m.selected != 1 {
		t.Fatalf("selected = %d, want 1", m.selected)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.session.History().Len() != 2 {
		t.Errorf("History().Len() = %d after jump, want 2", m.session.History().Len())
	}
	if got := m.session.Buffer().Pixel(1, 0); got != pixed.White {
		t.Errorf("Pixel(1, 0) = %v after jump, want white", got)
	}
	if m.session.History().CanRedo() {
		t.Error("redo available after jump")
	}

	m = send(t, m, runes("]"), runes("]"), runes("]"))
	if m.selected != 1 {
		t.Errorf("selected = %d, want clamped to 1", m.selected)
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	short := m.View()
	m = send(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Fatal("help not expanded")
	}
	full := m.View()
	if !strings.Contains(full, "zoom in") || strings.Contains(short, "zoom in") {
		t.Error("full help should list zoom bindings, short help should not")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, mouse(tea.MouseActionPress, 0, 1))

	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command did not produce tea.QuitMsg")
	}
	m = next.(Model)
	if m.View() != "" {
		t.Error("View() not empty after quit")
	}
	if m.session.Stroking() || m.session.History().Len() != 2 {
		t.Error("quit did not commit the open stroke")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	v := m.View()

	for _, want := range []string{"pixed", "Brush", "#000000", "8x8", "zoom 2", "history 1/100", "History 1/1", "current"} {
		if !strings.Contains(v, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestRenderImage(t *testing.T) {
	b, err := pixed.NewBuffer(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	b.Clear(pixed.White)
	b.Paint(0, 0, pixed.Transparent)

	cs := make(cellStyles)
	out := cs.renderImage(b, 2, 2, image.Pt(1, 1))
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("rendered %d lines, want 4", len(lines))
	}
	if !strings.Contains(lines[0], "·") {
		t.Error("transparent cell not drawn as a dot")
	}
	if !strings.Contains(lines[2], "[]") {
		t.Error("cursor cell not bracketed")
	}
}

func TestContrast(t *testing.T) {
	if contrast(pixed.White) != pixed.Black {
		t.Error("contrast(white) should be black")
	}
	if contrast(pixed.Black) != pixed.White {
		t.Error("contrast(black) should be white")
	}
}

// trueColor renders styles with 24-bit color for the rest of the test so
// that cell colors show up in the output.
func trueColor(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestHistoryPanelThumbnail(t *testing.T) {
	trueColor(t)
	const red = "48;2;255;0;0"

	m := newTestModel(t, pixed.WithBackground(pixed.Transparent))
	m = send(t, m, runes("f"), runes("2"), tea.KeyMsg{Type: tea.KeySpace})
	if m.session.History().Len() != 2 {
		t.Fatalf("History().Len() = %d, want 2", m.session.History().Len())
	}

	panel := m.historyPanel()
	if !strings.Contains(panel, red) {
		t.Errorf("panel for the fill entry has no red cells:\n%q", panel)
	}
	if strings.Contains(panel, "·") {
		t.Errorf("panel for the fill entry shows transparent cells:\n%q", panel)
	}

	m = send(t, m, runes("["))
	panel = m.historyPanel()
	if strings.Contains(panel, red) {
		t.Error("panel for the blank entry shows red cells")
	}
	if !strings.Contains(panel, "·") {
		t.Error("panel for the blank entry shows no transparent cells")
	}
	if !strings.Contains(panel, "enter: jump here") {
		t.Error("older entry not offered as a jump target")
	}

	m = send(t, m, runes("]"))
	if !strings.Contains(m.historyPanel(), red) {
		t.Error("panel lost the fill after selecting it again")
	}
}
