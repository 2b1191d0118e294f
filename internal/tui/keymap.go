package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts of the list screen.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Views
	Personal key.Binding
	Company  key.Binding
	Income   key.Binding
	NextView key.Binding

	// Actions
	Add       key.Binding
	Delete    key.Binding
	Reimburse key.Binding

	// Application
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),

		Personal: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "personal"),
		),
		Company: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "company"),
		),
		Income: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "income"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next view"),
		),

		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Reimburse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "toggle reimbursed"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "force quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Add, k.Delete, k.Reimburse, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Personal, k.Company, k.Income, k.NextView},
		{k.Add, k.Delete, k.Reimburse},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
