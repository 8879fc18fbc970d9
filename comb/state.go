package comb

import "unicode/utf8"

// State is the record threaded through every parser. It is passed and
// returned by value: parsers produce a new State and never modify the one
// they were given.
type State struct {
	Source string
	Cursor int
	Result any
	Failed bool
	Err    *Error
}

// NewState returns the initial state for input: cursor at zero, no result.
func NewState(input string) State {
	return State{Source: input}
}

// Remaining returns the unconsumed part of the source.
func (s State) Remaining() string {
	return s.Source[s.Cursor:]
}

// AtEnd reports whether the cursor has reached the end of the source.
func (s State) AtEnd() bool {
	return s.Cursor >= len(s.Source)
}

// Peek returns up to n bytes of input starting at the cursor, cut back so
// that it never ends inside a UTF-8 sequence.
func (s State) Peek(n int) string {
	end := s.Cursor + n
	if end >= len(s.Source) {
		return s.Source[s.Cursor:]
	}
	for end > s.Cursor && !utf8.RuneStart(s.Source[end]) {
		end--
	}
	return s.Source[s.Cursor:end]
}

func (s State) succeed(result any, cursor int) State {
	s.Result = result
	s.Cursor = cursor
	return s
}

func (s State) fail(kind ErrorKind, message string) State {
	s.Result = nil
	s.Failed = true
	s.Err = &Error{Kind: kind, Message: message, Position: s.Cursor}
	return s
}
