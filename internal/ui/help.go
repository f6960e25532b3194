package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const helpContent = `# deckview

Progressive-disclosure presenter for plain text decks.

## Keys

- ` + "`→` / `l`" + ` : next slide
- ` + "`←` / `h`" + ` : previous slide
- ` + "`↓` / `j` / `space`" + ` : reveal next bullet
- ` + "`↑` / `k`" + ` : hide last bullet
- ` + "`g` / `G`" + ` : first / last slide
- ` + "`t`" + ` : table of contents
- ` + "`?`" + ` : toggle this help
- ` + "`q`" + ` : quit

## Markup

Slides are separated by lines of five or more hyphens. Inside a slide,
` + "`<y>`, `<g>` and `<p>`" + ` color the following text yellow, green and
magenta; any closing tag switches back to the default color.
`

// helpView renders the help overlay, caching the result until the next
// resize invalidates it.
func (m *Model) helpView() string {
	if m.helpCache != "" {
		return m.helpCache
	}

	wrap := 60
	if m.width > 0 && m.width-10 < wrap {
		wrap = max(m.width-10, 20)
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return helpContent
	}
	rendered, err := renderer.Render(helpContent)
	if err != nil {
		return helpContent
	}
	m.helpCache = strings.TrimRight(rendered, "\n")
	return m.helpCache
}
