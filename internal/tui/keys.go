package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/colonyops/toaster/internal/tui/toast"
)

// KeyMap holds the showcase bindings. Toast bindings are owned by the
// renderer and take precedence while cards are on screen.
type KeyMap struct {
	Success key.Binding
	Error   key.Binding
	Warning key.Binding
	Info    key.Binding
	Undo    key.Binding
	Failing key.Binding
	Sticky  key.Binding
	Clear   key.Binding
	Theme   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the built-in showcase bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Success: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "success")),
		Error:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "error")),
		Warning: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "warning")),
		Info:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Undo:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "with action")),
		Failing: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "failing action")),
		Sticky:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "sticky")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear all")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next theme")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// helpKeys merges the showcase and toast bindings for the help bar.
type helpKeys struct {
	show  KeyMap
	toast toast.KeyMap
}

func (h helpKeys) ShortHelp() []key.Binding {
	return append(
		[]key.Binding{h.show.Success, h.show.Error, h.show.Undo, h.show.Clear},
		append(h.toast.ShortHelp(), h.show.Help, h.show.Quit)...,
	)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return append([][]key.Binding{
		{h.show.Success, h.show.Error, h.show.Warning, h.show.Info},
		{h.show.Undo, h.show.Failing, h.show.Sticky, h.show.Clear},
		{h.show.Theme, h.show.Help, h.show.Quit},
	}, h.toast.FullHelp()...)
}
