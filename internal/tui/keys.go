package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists every key binding of the editor.
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Apply key.Binding

	Brush   key.Binding
	Bucket  key.Binding
	Palette key.Binding

	Undo key.Binding
	Redo key.Binding

	ZoomIn  key.Binding
	ZoomOut key.Binding
	Grow    key.Binding
	Shrink  key.Binding

	HistoryPrev key.Binding
	HistoryNext key.Binding
	Jump        key.Binding

	Help key.Binding
	Quit key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Apply: key.NewBinding(
		key.WithKeys(" ", "space"),
		key.WithHelp("space", "apply tool"),
	),
	Brush: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "brush"),
	),
	Bucket: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "bucket"),
	),
	Palette: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "color"),
	),
	Undo: key.NewBinding(
		key.WithKeys("ctrl+z", "u"),
		key.WithHelp("ctrl+z", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+y", "U"),
		key.WithHelp("ctrl+y", "redo"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "zoom out"),
	),
	Grow: key.NewBinding(
		key.WithKeys(">"),
		key.WithHelp(">", "bigger grid"),
	),
	Shrink: key.NewBinding(
		key.WithKeys("<"),
		key.WithHelp("<", "smaller grid"),
	),
	HistoryPrev: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "older entry"),
	),
	HistoryNext: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "newer entry"),
	),
	Jump: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "jump to entry"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Brush, k.Bucket, k.Undo, k.Redo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Apply},
		{k.Brush, k.Bucket, k.Palette},
		{k.Undo, k.Redo, k.HistoryPrev, k.HistoryNext, k.Jump},
		{k.ZoomIn, k.ZoomOut, k.Grow, k.Shrink},
		{k.Help, k.Quit},
	}
}
