// Package app wires deck loading to the terminal UI.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"deckview/internal/ui"
)

// Run executes the Bubble Tea program for the presenter.
func Run(target string) error {
	state, err := LoadInitialState(target)
	if err != nil {
		return err
	}
	program := tea.NewProgram(ui.NewModel(state), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
