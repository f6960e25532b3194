package ui

import "deckview/internal/deck"

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Deck   deck.Deck
	Title  string
	Author string

	// SourcePath is set when presenting a single deck file, SourceDir when
	// presenting a directory of deck files. Whichever is set is watched for
	// live reload.
	SourcePath string
	SourceDir  string
}
