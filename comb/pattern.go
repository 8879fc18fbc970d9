package comb

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Pattern matches the regular expression expr anchored at the cursor. The
// result is the matched text. Matches of zero length count as failures so
// that Pattern parsers are safe inside repetitions.
//
// Pattern panics if expr does not compile.
func Pattern(name, expr string) Parser {
	re := regexp2.MustCompile(`\A(?:`+expr+`)`, regexp2.None)
	return New(name, func(s State) State {
		if s.AtEnd() {
			return s.fail(KindUnexpectedEOF,
				fmt.Sprintf("%s: unexpected end of input", name))
		}
		m, err := re.FindStringMatch(s.Remaining())
		if err != nil || m == nil || m.Length == 0 {
			return s.fail(KindClassMismatch,
				fmt.Sprintf("could not match %s at position %d", name, s.Cursor))
		}
		text := m.String()
		return s.succeed(text, s.Cursor+len(text))
	})
}
