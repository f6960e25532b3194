package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadInitialStateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mystery.txt")
	content := "---\ntitle: The Final Problem\nauthor: Doyle\n---\nintro\n-----\n- clue one\n- clue two"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	state, err := LoadInitialState(path)
	if err != nil {
		t.Fatalf("LoadInitialState: %v", err)
	}
	if state.Title != "The Final Problem" {
		t.Errorf("Title = %q, want %q", state.Title, "The Final Problem")
	}
	if state.Author != "Doyle" {
		t.Errorf("Author = %q, want %q", state.Author, "Doyle")
	}
	if len(state.Deck) != 2 {
		t.Errorf("expected 2 slides, got %d", len(state.Deck))
	}
	if state.SourcePath == "" || state.SourceDir != "" {
		t.Errorf("expected file source, got path=%q dir=%q", state.SourcePath, state.SourceDir)
	}
}

func TestLoadInitialStateTitleFallsBackToFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "evening-talk.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	state, err := LoadInitialState(path)
	if err != nil {
		t.Fatalf("LoadInitialState: %v", err)
	}
	if state.Title != "evening-talk" {
		t.Errorf("Title = %q, want %q", state.Title, "evening-talk")
	}
}

func TestLoadInitialStateDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "01.txt"), []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "02.txt"), []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}

	state, err := LoadInitialState(dir)
	if err != nil {
		t.Fatalf("LoadInitialState: %v", err)
	}
	if len(state.Deck) != 2 {
		t.Errorf("expected 2 slides, got %d", len(state.Deck))
	}
	if state.SourceDir == "" || state.SourcePath != "" {
		t.Errorf("expected directory source, got path=%q dir=%q", state.SourcePath, state.SourceDir)
	}
	if state.Title != filepath.Base(dir) {
		t.Errorf("Title = %q, want directory name %q", state.Title, filepath.Base(dir))
	}
}

func TestLoadInitialStateMissingTarget(t *testing.T) {
	if _, err := LoadInitialState(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing target")
	}
}
