package app

import (
	"os"
	"path/filepath"
	"strings"

	"deckview/internal/deck"
	"deckview/internal/ui"
)

// LoadInitialState reads the deck at target and prepares the UI state. A
// regular file is a single deck; a directory contributes every .txt file in
// name order. When front matter carries no title, the file or directory name
// stands in.
func LoadInitialState(target string) (ui.State, error) {
	info, err := os.Stat(target)
	if err != nil {
		return ui.State{}, err
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return ui.State{}, err
	}

	meta, slides, err := deck.LoadPath(absTarget)
	if err != nil {
		return ui.State{}, err
	}

	state := ui.State{
		Deck:   slides,
		Title:  meta.Title,
		Author: meta.Author,
	}
	if info.IsDir() {
		state.SourceDir = absTarget
		if state.Title == "" {
			state.Title = filepath.Base(absTarget)
		}
	} else {
		state.SourcePath = absTarget
		if state.Title == "" {
			base := filepath.Base(absTarget)
			state.Title = strings.TrimSuffix(base, filepath.Ext(base))
		}
	}
	return state, nil
}
