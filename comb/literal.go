package comb

import (
	"fmt"
	"strings"
)

// peekWindow is how much of the actual input a literal mismatch quotes.
const peekWindow = 10

// Literal matches s exactly at the cursor. The result is s.
func Literal(s string) Parser {
	return New(fmt.Sprintf("literal(%q)", s), func(st State) State {
		if strings.HasPrefix(st.Remaining(), s) {
			return st.succeed(s, st.Cursor+len(s))
		}
		return st.fail(KindLiteralMismatch,
			fmt.Sprintf("tried to match %q, but got %q at position %d", s, st.Peek(peekWindow), st.Cursor))
	})
}

// EndOfInput succeeds with a nil result only when no input remains.
var EndOfInput = New("end of input", func(s State) State {
	if s.AtEnd() {
		return s.succeed(nil, s.Cursor)
	}
	return s.fail(KindTrailingInput,
		fmt.Sprintf("expected end of input, but got %q at position %d", s.Peek(peekWindow), s.Cursor))
})

// Succeed returns a parser that consumes nothing and yields v.
func Succeed(v any) Parser {
	return New("succeed", func(s State) State {
		return s.succeed(v, s.Cursor)
	})
}

// Fail returns a parser that always fails at the cursor with message.
func Fail(message string) Parser {
	return New("fail", func(s State) State {
		return s.fail(KindCustom, message)
	})
}
