package lsp

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dhamidi/arc/comb"
	"github.com/dhamidi/arc/grammar"
)

// Diagnostic is a parse failure on one line of a document. Line is 0-based;
// Column is the 0-based byte offset within the line.
type Diagnostic struct {
	Line    int
	Column  int
	Kind    comb.ErrorKind
	Message string
}

// Document is an open text document and the result of its last check.
type Document struct {
	URI         string
	Grammar     string
	Content     string
	Diagnostics []Diagnostic
}

// Documents keeps the open documents of a session.
type Documents struct {
	mu        sync.RWMutex
	files     map[string]*Document
	grammarOf func(uri string) string
}

// NewDocuments returns an empty store. grammarOf picks the grammar for a
// document URI.
func NewDocuments(grammarOf func(uri string) string) *Documents {
	return &Documents{
		files:     make(map[string]*Document),
		grammarOf: grammarOf,
	}
}

// Update stores content for uri, checks it, and returns the document.
func (d *Documents) Update(uri, content string) (*Document, error) {
	name := d.grammarOf(uri)
	diags, err := Check(name, content)
	if err != nil {
		return nil, err
	}
	doc := &Document{
		URI:         uri,
		Grammar:     name,
		Content:     content,
		Diagnostics: diags,
	}

	d.mu.Lock()
	d.files[uri] = doc
	d.mu.Unlock()
	return doc, nil
}

// Get returns the document stored for uri, or nil.
func (d *Documents) Get(uri string) *Document {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.files[uri]
}

// Remove forgets uri.
func (d *Documents) Remove(uri string) {
	d.mu.Lock()
	delete(d.files, uri)
	d.mu.Unlock()
}

// Check parses every non-blank line of content as one complete value of
// the named grammar and reports a diagnostic per failing line.
func Check(grammarName, content string) ([]Diagnostic, error) {
	p, ok := grammar.Lookup(grammarName)
	if !ok {
		return nil, fmt.Errorf("unknown grammar: %s", grammarName)
	}

	var diags []Diagnostic
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, err := comb.Parse(p, line); err != nil {
			perr := err.(*comb.Error)
			diags = append(diags, Diagnostic{
				Line:    i,
				Column:  perr.Position,
				Kind:    perr.Kind,
				Message: perr.Message,
			})
		}
	}
	return diags, nil
}

// utf16Column converts a byte offset within line to UTF-16 code units, the
// unit LSP positions are measured in. Each invalid byte counts as one unit,
// matching the U+FFFD an editor shows in its place.
func utf16Column(line string, byteOffset int) int {
	if byteOffset > len(line) {
		byteOffset = len(line)
	}
	n := 0
	for _, r := range line[:byteOffset] {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

func lineAt(content string, n int) string {
	lines := strings.Split(content, "\n")
	if n < 0 || n >= len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[n], "\r")
}
