// Package deck loads slide decks and resolves which lines of a slide are
// visible at a given reveal level.
package deck

import (
	"regexp"
	"strings"

	"deckview/internal/markup"
)

// Slides are separated by horizontal-rule lines: five or more hyphens,
// optionally surrounded by whitespace.
var delimiter = regexp.MustCompile(`^\s*-{5,}\s*$`)

// Deck is an ordered sequence of slides, read-only after Load.
type Deck []Slide

// Slide is one unit of presented content.
type Slide struct {
	lines []string
}

// Load splits raw input into slides on horizontal-rule lines. Bodies that
// contain only whitespace are dropped, so empty input yields an empty deck.
// Kept bodies are never altered.
func Load(raw string) Deck {
	var deck Deck
	var current []string

	flush := func() {
		if strings.TrimSpace(strings.Join(current, "")) != "" {
			deck = append(deck, Slide{lines: current})
		}
		current = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		if delimiter.MatchString(line) {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return deck
}

// Lines returns the slide's raw lines in order.
func (s Slide) Lines() []string {
	return s.lines
}

// Title returns the first non-blank line with markup stripped. It labels the
// slide in the table of contents.
func (s Slide) Title() string {
	for _, line := range s.lines {
		if text := strings.TrimSpace(markup.Strip(line)); text != "" {
			return text
		}
	}
	return ""
}
