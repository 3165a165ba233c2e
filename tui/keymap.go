package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains the keybindings for the panel workspace, vim style first.
type KeyMap struct {
	// Navigation within the focused panel
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Panel focus
	FocusNext key.Binding
	FocusPrev key.Binding

	// Selection
	Select      key.Binding
	ClearSelect key.Binding

	// Panel management
	CycleState        key.Binding
	CyclePresentation key.Binding
	DuplicatePanel    key.Binding
	ClosePanel        key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default vim-style keymap.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "next panel"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab", "h"),
			key.WithHelp("S-tab", "prev panel"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle select"),
		),
		ClearSelect: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),
		CycleState: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle state"),
		),
		CyclePresentation: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle presentation"),
		),
		DuplicatePanel: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open twin panel"),
		),
		ClosePanel: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close panel"),
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
}

// HelpBindings returns the bindings shown in the help footer, in order.
func (k KeyMap) HelpBindings() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.FocusNext, k.Select, k.ClearSelect,
		k.CycleState, k.CyclePresentation, k.DuplicatePanel, k.ClosePanel,
		k.Help, k.Quit,
	}
}
