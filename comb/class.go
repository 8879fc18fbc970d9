package comb

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Class matches the longest non-empty run of runes satisfying pred,
// starting at the cursor. The result is the matched substring.
func Class(name string, pred func(rune) bool) Parser {
	return New(name, func(s State) State {
		if s.AtEnd() {
			return s.fail(KindUnexpectedEOF,
				fmt.Sprintf("%s: unexpected end of input", name))
		}
		end := s.Cursor
		for end < len(s.Source) {
			r, size := utf8.DecodeRuneInString(s.Source[end:])
			if !pred(r) {
				break
			}
			end += size
		}
		if end == s.Cursor {
			return s.fail(KindClassMismatch,
				fmt.Sprintf("could not match %s at position %d", name, s.Cursor))
		}
		return s.succeed(s.Source[s.Cursor:end], end)
	})
}

var (
	Letters      = Class("letters", unicode.IsLetter)
	Digits       = Class("digits", isDigit)
	Whitespace   = Class("whitespace", unicode.IsSpace)
	Alphanumeric = Class("alphanumeric", func(r rune) bool {
		return unicode.IsLetter(r) || isDigit(r)
	})
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
