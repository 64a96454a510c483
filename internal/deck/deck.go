// internal/deck/deck.go

// Package deck loads a markdown file, parses it into an AST and splits
// the top-level nodes into slides. A Deck is immutable once loaded.
package deck

import (
	"errors"
	"fmt"
	"os"

	"github.com/bethropolis/deck/internal/logger"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	// ErrParse reports a source that could not be read or parsed into
	// a document tree. Fatal at load time, never retried.
	ErrParse = errors.New("deck: parse failure")

	// ErrNodeStructure reports a parsed tree whose root is not a
	// document node. Fatal at load time.
	ErrNodeStructure = errors.New("deck: unexpected node structure")
)

// markdown is the shared CommonMark parser. Parse builds a fresh
// context per call, so the instance is safe to reuse.
var markdown = goldmark.New()

// Slide is a contiguous run of top-level nodes treated as one
// navigable unit. The nodes reference the deck's shared source bytes.
type Slide struct {
	Nodes []ast.Node
}

// Deck holds the parsed slides and the raw source their text segments
// point into.
type Deck struct {
	Path   string
	Source []byte

	slides []Slide
}

// Parse builds a Deck from raw markdown source.
func Parse(source []byte) (*Deck, error) {
	root := markdown.Parser().Parse(text.NewReader(source))
	if root == nil {
		return nil, fmt.Errorf("%w: parser produced no tree", ErrParse)
	}
	if root.Kind() != ast.KindDocument {
		return nil, fmt.Errorf("%w: root kind %s", ErrNodeStructure, root.Kind())
	}

	return &Deck{
		Source: source,
		slides: segment(root),
	}, nil
}

// Load reads and parses the markdown file at path.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, err
	}
	d.Path = path

	logger.Infof("Loaded %s: %d slide(s)", path, d.Count())
	return d, nil
}

// Count returns the number of slides, always at least 1.
func (d *Deck) Count() int {
	return len(d.slides)
}

// Slide returns the slide at index i.
func (d *Deck) Slide(i int) Slide {
	return d.slides[i]
}

// Position renders the human-readable position indicator for slide i.
func (d *Deck) Position(i int) string {
	return fmt.Sprintf("%d/%d", i+1, len(d.slides))
}
