package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines the key bindings for the counter list
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Add       key.Binding
	Remove    key.Binding
	Increment key.Binding
	Decrement key.Binding
	Color     key.Binding
	Log       key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add counter"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove last"),
		),
		Increment: key.NewBinding(
			key.WithKeys("+", "=", "l", "right"),
			key.WithHelp("+/l", "increment"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-", "h", "left"),
			key.WithHelp("-/h", "decrement"),
		),
		Color: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cycle color"),
		),
		Log: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "action log"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Increment, k.Decrement, k.Color, k.Help, k.Quit}
}

// FullHelp returns all bindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Remove},
		{k.Increment, k.Decrement, k.Color},
		{k.Log, k.Help, k.Quit},
	}
}
