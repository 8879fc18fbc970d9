// Package format encodes the final state of a parse for display.
package format

import (
	"encoding"
	"fmt"
	"io"
	"sort"

	"github.com/dhamidi/arc/comb"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(s comb.State) error
}

// Options control encoders that support them.
type Options struct {
	Color bool
}

var encoders = map[string]func(io.Writer, Options) Encoder{
	"json": func(w io.Writer, _ Options) Encoder { return NewJSONEncoder(w) },
	"yaml": func(w io.Writer, _ Options) Encoder { return NewYAMLEncoder(w) },
	"text": func(w io.Writer, opts Options) Encoder { return NewTextEncoder(w, opts.Color) },
}

// New returns the encoder registered under name.
func New(name string, w io.Writer, opts Options) (Encoder, error) {
	mk, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %s", name)
	}
	return mk(w, opts), nil
}

// Names returns the supported format names.
func Names() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// document is the serialized form shared by the JSON and YAML encoders.
type document struct {
	OK     bool           `json:"ok" yaml:"ok"`
	Cursor int            `json:"cursor" yaml:"cursor"`
	Result any            `json:"result,omitempty" yaml:"result,omitempty"`
	Error  *documentError `json:"error,omitempty" yaml:"error,omitempty"`
}

type documentError struct {
	Kind     string `json:"kind" yaml:"kind"`
	Message  string `json:"message" yaml:"message"`
	Position int    `json:"position" yaml:"position"`
	Line     int    `json:"line" yaml:"line"`
	Column   int    `json:"column" yaml:"column"`
}

func buildDocument(s comb.State) document {
	if !s.Failed {
		return document{OK: true, Cursor: s.Cursor, Result: s.Result}
	}
	pos := comb.LineColumn(s.Source, s.Err.Position)
	return document{
		Cursor: s.Cursor,
		Error: &documentError{
			Kind:     s.Err.Kind.String(),
			Message:  s.Err.Message,
			Position: s.Err.Position,
			Line:     pos.Line,
			Column:   pos.Column,
		},
	}
}
