package deck

import (
	"regexp"
	"strings"

	"deckview/internal/markup"
)

// Kind is the role a single line plays within its slide.
type Kind int

const (
	// Blank lines are empty or all whitespace.
	Blank Kind = iota
	// Bullet lines start with a hyphen-space marker and are revealed one at
	// a time.
	Bullet
	// Continuation lines follow a slide's bullet section and are withheld
	// until every bullet is revealed.
	Continuation
	// Plain lines precede any bullet section and are always shown.
	Plain
)

var bulletMarker = regexp.MustCompile(`^\s*- `)

// Classify determines the role of one line. inSection reports whether the
// surrounding slide has already entered its bullet section. Tags are stripped
// before testing so markup never confuses classification, and the blank check
// takes priority over bullet detection.
func Classify(line string, inSection bool) Kind {
	stripped := markup.Strip(line)
	switch {
	case strings.TrimSpace(stripped) == "":
		return Blank
	case bulletMarker.MatchString(stripped):
		return Bullet
	case inSection:
		return Continuation
	default:
		return Plain
	}
}
