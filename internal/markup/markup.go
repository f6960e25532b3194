// Package markup tokenizes the inline color tags used in slide text.
//
// Three tag pairs are recognized: <y>…</y> (yellow), <g>…</g> (green) and
// <p>…</p> (magenta). The grammar is deliberately permissive: tags are not
// required to nest or match, and any closing tag resets the color
// unconditionally. Slide content was authored against this behavior, so it is
// preserved rather than tightened.
package markup

import "strings"

// Color selects the foreground applied to a span of slide text.
type Color int

const (
	None Color = iota
	Yellow
	Green
	Magenta
)

// Span is a run of visible characters sharing one color.
type Span struct {
	Text  string
	Color Color
}

var openers = []struct {
	tag   string
	color Color
}{
	{"<y>", Yellow},
	{"<g>", Green},
	{"<p>", Magenta},
}

var closers = []string{"</y>", "</g>", "</p>"}

// Scan splits a line into color spans with a single left-to-right pass.
// Opening tags set the current color, closing tags reset it, and both
// contribute no visible characters. Angle-bracket sequences that are not one
// of the six known tags pass through as literal text. Empty runs produce no
// span.
func Scan(line string) []Span {
	var spans []Span
	var run strings.Builder
	current := None

	flush := func() {
		if run.Len() > 0 {
			spans = append(spans, Span{Text: run.String(), Color: current})
			run.Reset()
		}
	}

	for i := 0; i < len(line); {
		if line[i] == '<' {
			if color, width, ok := matchTag(line[i:]); ok {
				flush()
				current = color
				i += width
				continue
			}
		}
		run.WriteByte(line[i])
		i++
	}
	flush()
	return spans
}

// Strip removes the recognized tags from a line, leaving only the characters
// that occupy screen columns. It is the concatenation of Scan's span texts.
func Strip(line string) string {
	spans := Scan(line)
	if len(spans) == 1 {
		return spans[0].Text
	}
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(span.Text)
	}
	return b.String()
}

func matchTag(s string) (Color, int, bool) {
	for _, o := range openers {
		if strings.HasPrefix(s, o.tag) {
			return o.color, len(o.tag), true
		}
	}
	for _, tag := range closers {
		if strings.HasPrefix(s, tag) {
			return None, len(tag), true
		}
	}
	return None, 0, false
}
