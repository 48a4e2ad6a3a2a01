package views

import "github.com/charmbracelet/bubbles/key"

// CommonKeyMap holds the bindings every screen shares
type CommonKeyMap struct {
	Back key.Binding
	Help key.Binding
	Quit key.Binding
}

var CommonKeys = CommonKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace", "b"),
		key.WithHelp("esc", "back"),
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

// MenuKeyMap defines key bindings for the task and journey menus
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

var MenuKeys = MenuKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", "l", "right"),
		key.WithHelp("enter", "select"),
	),
}

// digitIndex maps "1".."9" to a zero-based index
func digitIndex(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}
