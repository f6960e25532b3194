package deck

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
)

// Meta is the optional YAML front matter at the top of a deck source.
type Meta struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

// ParseSource splits optional front matter from a deck source and loads the
// remainder. Sources without front matter are parsed as-is. The front matter
// fence is exactly three hyphens, so it never collides with the five-hyphen
// slide delimiter.
func ParseSource(data []byte) (Meta, Deck, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return Meta{}, nil, fmt.Errorf("front matter: %w", err)
	}
	return meta, Load(string(body)), nil
}

// LoadPath reads a deck from a file, or from every deck file in a directory.
// Directory mode concatenates the slides of each .txt file in name order,
// skipping names that start with an underscore; the first non-empty title and
// author in front matter win.
func LoadPath(path string) (Meta, Deck, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Meta{}, nil, err
	}
	if !info.IsDir() {
		data, err := os.ReadFile(path)
		if err != nil {
			return Meta{}, nil, err
		}
		return ParseSource(data)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return Meta{}, nil, err
	}
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".txt" || strings.HasPrefix(name, "_") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var meta Meta
	var deck Deck
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(path, name))
		if err != nil {
			return Meta{}, nil, err
		}
		fileMeta, slides, err := ParseSource(data)
		if err != nil {
			return Meta{}, nil, fmt.Errorf("%s: %w", name, err)
		}
		if meta.Title == "" {
			meta.Title = fileMeta.Title
		}
		if meta.Author == "" {
			meta.Author = fileMeta.Author
		}
		deck = append(deck, slides...)
	}
	return meta, deck, nil
}
