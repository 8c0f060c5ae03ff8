package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the browser
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Top          key.Binding
	Bottom       key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	JumpCategory key.Binding
	Add          key.Binding
	Remove       key.Binding
	OpenCart     key.Binding
	CloseCart    key.Binding
	Checkout     key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:       key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page down")),
		Top:          key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		NextCategory: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next category")),
		PrevCategory: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("⇧tab/←", "prev category")),
		JumpCategory: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "category")),
		Add:          key.NewBinding(key.WithKeys("a", "+", "="), key.WithHelp("a/+", "add")),
		Remove:       key.NewBinding(key.WithKeys("x", "-"), key.WithHelp("x/-", "remove")),
		OpenCart:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cart")),
		CloseCart:    key.NewBinding(key.WithKeys("esc", "c"), key.WithHelp("esc", "close cart")),
		Checkout:     key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "checkout")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.NextCategory, k.OpenCart, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.NextCategory, k.PrevCategory, k.JumpCategory},
		{k.Add, k.Remove, k.OpenCart, k.CloseCart, k.Checkout},
		{k.Help, k.Quit},
	}
}

// cartKeys is the help shown while the cart panel is open
type cartKeys struct {
	KeyMap
}

func (k cartKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Remove, k.Checkout, k.CloseCart}
}

func (k cartKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Quit}}
}
