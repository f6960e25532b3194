package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the presenter.
type KeyMap struct {
	NextSlide  key.Binding
	PrevSlide  key.Binding
	FirstSlide key.Binding
	LastSlide  key.Binding
	RevealMore key.Binding
	RevealLess key.Binding
	Select     key.Binding
	TOC        key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextSlide: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next slide"),
		),
		PrevSlide: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous slide"),
		),
		FirstSlide: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g/home", "first slide"),
		),
		LastSlide: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "last slide"),
		),
		RevealMore: key.NewBinding(
			key.WithKeys("down", "j", " "),
			key.WithHelp("↓/j/space", "reveal next"),
		),
		RevealLess: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "hide last"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "jump to slide"),
		),
		TOC: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "table of contents"),
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
