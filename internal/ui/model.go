package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fsnotify/fsnotify"

	"deckview/internal/deck"
	"deckview/internal/markup"
)

const (
	chromeHeight = 2 // status line + progress bar
	minTOCWidth  = 18
)

// Model implements the Bubble Tea program for the presenter. The entire
// navigation state is the (slide, reveal) pair; every update recomputes the
// visible lines from it, so redrawing is idempotent.
type Model struct {
	deck   deck.Deck
	title  string
	author string

	slide  int
	reveal int

	keys     KeyMap
	progress progress.Model
	tocVP    viewport.Model

	tocVisible   bool
	tocSelection int
	showHelp     bool
	helpCache    string

	width  int
	height int
	err    error

	sourcePath string
	sourceDir  string

	watcher   *fsnotify.Watcher
	watchDir  string
	watchChan chan tea.Msg
}

// NewModel constructs the presenter model with the provided initial state.
func NewModel(state State) *Model {
	tocVP := viewport.New(0, 0)
	tocVP.Style = tocPanelStyle(tocFocusBorderColor)
	tocVP.MouseWheelEnabled = false

	return &Model{
		deck:       state.Deck,
		title:      state.Title,
		author:     state.Author,
		keys:       DefaultKeyMap(),
		progress:   progress.New(progress.WithDefaultGradient()),
		tocVP:      tocVP,
		sourcePath: state.SourcePath,
		sourceDir:  state.SourceDir,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.progress.SetPercent(m.percent())}
	if cmd := m.startWatching(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case fileEventMsg:
		return m, m.handleFileEvent(msg)

	case fileWatchErrMsg:
		m.err = msg.err
		return m, m.waitForFileEvent()

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return nil
	}

	if m.showHelp {
		// Any other key dismisses the overlay.
		m.showHelp = false
		return nil
	}

	if key.Matches(msg, m.keys.TOC) {
		m.toggleTOC()
		return nil
	}

	if m.tocVisible {
		return m.handleTOCKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.NextSlide):
		return m.gotoSlide(m.slide + 1)
	case key.Matches(msg, m.keys.PrevSlide):
		return m.gotoSlide(m.slide - 1)
	case key.Matches(msg, m.keys.FirstSlide):
		return m.gotoSlide(0)
	case key.Matches(msg, m.keys.LastSlide):
		return m.gotoSlide(len(m.deck) - 1)
	case key.Matches(msg, m.keys.RevealMore):
		return m.revealMore()
	case key.Matches(msg, m.keys.RevealLess):
		return m.revealLess()
	}
	return nil
}

// gotoSlide moves to slide i if it exists, collapsing the reveal state.
// Out-of-range targets, including any target on an empty deck, are no-ops.
func (m *Model) gotoSlide(i int) tea.Cmd {
	if i < 0 || i >= len(m.deck) {
		return nil
	}
	m.slide = i
	m.reveal = 0
	return m.progress.SetPercent(m.percent())
}

// revealMore shows the next bullet of the current slide. Past the last
// bullet it steps into the next slide's fully collapsed state, which is
// intentionally asymmetric with revealLess.
func (m *Model) revealMore() tea.Cmd {
	if len(m.deck) == 0 {
		return nil
	}
	if m.reveal < m.deck[m.slide].Bullets() {
		m.reveal++
		return nil
	}
	return m.gotoSlide(m.slide + 1)
}

// revealLess hides the last revealed bullet. At level zero it steps back
// into the previous slide's fully collapsed state.
func (m *Model) revealLess() tea.Cmd {
	if m.reveal > 0 {
		m.reveal--
		return nil
	}
	return m.gotoSlide(m.slide - 1)
}

func (m *Model) percent() float64 {
	if len(m.deck) == 0 {
		return 0
	}
	return float64(m.slide+1) / float64(len(m.deck))
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width = width
	m.height = height
	m.progress.Width = max(width-4, 0)
	m.helpCache = ""

	contentHeight := max(height-chromeHeight, 1)
	if m.tocVisible {
		m.tocVP.Width = m.tocWidth(width)
		m.tocVP.Height = contentHeight
		m.updateTOCContent()
	} else {
		m.tocVP.Width = 0
		m.tocVP.Height = contentHeight
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	contentHeight := max(m.height-chromeHeight, 1)

	body := m.slideView(contentHeight)
	if m.tocVisible {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.tocVP.View(), body)
	}
	if m.err != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, errorStyle.Render(m.err.Error()), body)
	}

	if m.showHelp {
		overlay := helpBoxStyle.Render(m.helpView())
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
		}
		return overlay
	}

	return body + "\n" + m.statusLine() + "\n" + m.progress.View()
}

func (m *Model) slideView(height int) string {
	if len(m.deck) == 0 {
		return padLines([]string{"Deck is empty.", "", "Press q to quit."}, height)
	}

	lines := m.deck[m.slide].Visible(m.reveal)
	rendered := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered = append(rendered, renderLine(line))
	}
	if len(rendered) > height {
		rendered = rendered[:height]
	}
	return padLines(rendered, height)
}

// renderLine paints one line's markup spans. Tags occupy no columns, so the
// painted width equals the stripped text width.
func renderLine(line string) string {
	spans := markup.Scan(line)
	if len(spans) == 0 {
		return ""
	}
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(spanStyle(span.Color).Render(span.Text))
	}
	return b.String()
}

func padLines(lines []string, height int) string {
	content := strings.Join(lines, "\n")
	if pad := height - len(lines); pad > 0 {
		content += strings.Repeat("\n", pad)
	}
	return content
}

func (m *Model) statusLine() string {
	left := "No slides"
	if len(m.deck) > 0 {
		left = fmt.Sprintf("Slide %d/%d", m.slide+1, len(m.deck))
		if total := m.deck[m.slide].Bullets(); total > 0 {
			left += fmt.Sprintf(" · %d/%d revealed", m.reveal, total)
		}
	}

	right := m.title
	if m.author != "" {
		if right != "" {
			right += " · "
		}
		right += m.author
	}

	available := max(m.width-statusStyle.GetHorizontalFrameSize(), 0)
	leftWidth := lipgloss.Width(left)
	if leftWidth+lipgloss.Width(right) >= available && available > leftWidth+1 {
		right = ansi.Truncate(right, available-leftWidth-1, "…")
	}
	gap := available - leftWidth - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return statusStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m *Model) toggleTOC() {
	if len(m.deck) == 0 {
		return
	}
	m.tocVisible = !m.tocVisible
	if m.tocVisible {
		m.tocSelection = m.slide
	}
	m.resize(m.width, m.height)
}

func (m *Model) handleTOCKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.RevealMore):
		m.moveTOCSelection(1)
	case key.Matches(msg, m.keys.RevealLess):
		m.moveTOCSelection(-1)
	case key.Matches(msg, m.keys.FirstSlide):
		m.tocSelection = 0
		m.updateTOCContent()
	case key.Matches(msg, m.keys.LastSlide):
		m.tocSelection = len(m.deck) - 1
		m.updateTOCContent()
	case key.Matches(msg, m.keys.Select):
		target := m.tocSelection
		m.tocVisible = false
		m.resize(m.width, m.height)
		return m.gotoSlide(target)
	case msg.Type == tea.KeyEsc:
		m.tocVisible = false
		m.resize(m.width, m.height)
	}
	return nil
}

func (m *Model) moveTOCSelection(delta int) {
	if len(m.deck) == 0 {
		return
	}
	m.tocSelection = clamp(m.tocSelection+delta, 0, len(m.deck)-1)
	m.updateTOCContent()
}

func (m *Model) tocLabel(i int, s deck.Slide) string {
	return fmt.Sprintf(" %2d  %s ", i+1, s.Title())
}

func (m *Model) tocWidth(total int) int {
	longest := 0
	for i, s := range m.deck {
		if w := lipgloss.Width(m.tocLabel(i, s)); w > longest {
			longest = w
		}
	}
	frame := m.tocVP.Style.GetHorizontalFrameSize()
	return clamp(longest+frame, minTOCWidth, max(total/3, minTOCWidth))
}

func (m *Model) updateTOCContent() {
	var b strings.Builder
	for i, s := range m.deck {
		label := m.tocLabel(i, s)
		if i == m.tocSelection {
			b.WriteString(tocSelectedStyle.Render(label))
		} else {
			b.WriteString(tocLineStyle.Render(label))
		}
		if i < len(m.deck)-1 {
			b.WriteByte('\n')
		}
	}
	m.tocVP.SetContent(b.String())
	m.ensureTOCSelectionVisible()
}

func (m *Model) ensureTOCSelectionVisible() {
	if len(m.deck) == 0 || m.tocVP.Height == 0 {
		return
	}
	if m.tocSelection < m.tocVP.YOffset {
		m.tocVP.SetYOffset(m.tocSelection)
		return
	}
	bottom := m.tocVP.YOffset + m.tocVP.Height - 1
	if m.tocSelection > bottom {
		m.tocVP.SetYOffset(m.tocSelection - m.tocVP.Height + 1)
	}
}

func (m *Model) clampCursor() {
	if len(m.deck) == 0 {
		m.slide, m.reveal = 0, 0
		return
	}
	m.slide = clamp(m.slide, 0, len(m.deck)-1)
	m.reveal = clamp(m.reveal, 0, m.deck[m.slide].Bullets())
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
