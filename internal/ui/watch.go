package ui

import (
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"deckview/internal/deck"
)

type fileEventMsg struct {
	path string
	op   fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

// startWatching observes the deck source so edits show up mid-presentation.
// Watching is best-effort: a watcher failure surfaces on the error line but
// never stops the presentation.
func (m *Model) startWatching() tea.Cmd {
	dir := m.sourceDir
	if dir == "" && m.sourcePath != "" {
		dir = filepath.Dir(m.sourcePath)
	}
	if dir == "" {
		return nil
	}

	if err := m.ensureWatcher(); err != nil {
		m.err = err
		return nil
	}

	if dir != m.watchDir {
		if m.watchDir != "" {
			_ = m.watcher.Remove(m.watchDir)
		}
		if err := m.watcher.Add(dir); err != nil {
			m.err = err
			return nil
		}
		m.watchDir = dir
	}
	return m.waitForFileEvent()
}

func (m *Model) ensureWatcher() error {
	if m.watcher != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.watcher = watcher
	m.watchChan = make(chan tea.Msg, 10)

	go m.watchLoop()
	return nil
}

func (m *Model) watchLoop() {
	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			m.watchChan <- fileEventMsg{path: event.Name, op: event.Op}
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			m.watchChan <- fileWatchErrMsg{err: err}
		}
	}
}

func (m *Model) waitForFileEvent() tea.Cmd {
	if m.watchChan == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-m.watchChan
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) handleFileEvent(msg fileEventMsg) tea.Cmd {
	if !m.watchesPath(msg.path) {
		return m.waitForFileEvent()
	}
	return tea.Batch(m.reloadDeck(), m.waitForFileEvent())
}

func (m *Model) watchesPath(path string) bool {
	if m.sourceDir != "" {
		base := filepath.Base(path)
		return filepath.Ext(base) == ".txt" && !strings.HasPrefix(base, "_")
	}
	return m.sourcePath != "" && filepath.Clean(path) == filepath.Clean(m.sourcePath)
}

// reloadDeck swaps in the deck re-read from disk and clamps the cursor to
// the new shape.
func (m *Model) reloadDeck() tea.Cmd {
	source := m.sourcePath
	if m.sourceDir != "" {
		source = m.sourceDir
	}

	meta, loaded, err := deck.LoadPath(source)
	if err != nil {
		m.err = err
		return nil
	}
	m.err = nil
	m.deck = loaded
	if meta.Title != "" {
		m.title = meta.Title
	}
	if meta.Author != "" {
		m.author = meta.Author
	}

	m.clampCursor()
	if len(m.deck) == 0 {
		m.tocVisible = false
		m.tocSelection = 0
	} else {
		m.tocSelection = clamp(m.tocSelection, 0, len(m.deck)-1)
	}
	if m.tocVisible {
		m.updateTOCContent()
	}
	return m.progress.SetPercent(m.percent())
}
