package format

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/dhamidi/arc/comb"
	"github.com/fatih/color"
)

// TextEncoder writes a short human-readable summary. On failure it shows
// the offending line with a caret under the failure position.
type TextEncoder struct {
	w     io.Writer
	state comb.State

	ok, fail, dim *color.Color
}

func NewTextEncoder(w io.Writer, useColor bool) *TextEncoder {
	e := &TextEncoder{
		w:    w,
		ok:   color.New(color.FgGreen, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
		dim:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{e.ok, e.fail, e.dim} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return e
}

func (e *TextEncoder) Encode(s comb.State) error {
	e.state = s
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	s := e.state
	if !s.Failed {
		e.ok.Fprint(&buf, "ok")
		e.dim.Fprintf(&buf, " (consumed %d of %d bytes)\n", s.Cursor, len(s.Source))
		fmt.Fprintln(&buf, Render(s.Result))
		return buf.Bytes(), nil
	}

	pos := comb.LineColumn(s.Source, s.Err.Position)
	e.fail.Fprint(&buf, "error")
	fmt.Fprintf(&buf, " %s: %s\n", pos, s.Err.Message)
	line, start := sourceLine(s.Source, pos.Offset)
	fmt.Fprintf(&buf, "  %s\n", line)
	indent := utf8.RuneCountInString(s.Source[start:pos.Offset])
	e.dim.Fprintf(&buf, "  %s^\n", strings.Repeat(" ", indent))
	return buf.Bytes(), nil
}

// sourceLine returns the line containing offset and the offset it starts at.
func sourceLine(source string, offset int) (string, int) {
	start := strings.LastIndexByte(source[:offset], '\n') + 1
	end := strings.IndexByte(source[offset:], '\n')
	if end < 0 {
		return source[start:], start
	}
	return source[start : offset+end], start
}

// Render formats a parse result compactly: lists as [a, b], strings quoted.
func Render(v any) string {
	var sb strings.Builder
	render(&sb, v)
	return sb.String()
}

func render(sb *strings.Builder, v any) {
	switch v := v.(type) {
	case nil:
		sb.WriteString("nil")
	case string:
		fmt.Fprintf(sb, "%q", v)
	case []any:
		sb.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				sb.WriteString(", ")
			}
			render(sb, item)
		}
		sb.WriteByte(']')
	case fmt.Stringer:
		sb.WriteString(v.String())
	default:
		fmt.Fprintf(sb, "%v", v)
	}
}
