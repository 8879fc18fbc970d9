// Package array parses nested array literals such as [1,[2,[3],4],5].
//
// Numbers decode to int and arrays to []any. Whitespace is not allowed.
package array

import (
	"fmt"
	"strconv"

	"github.com/dhamidi/arc/comb"
)

// Number matches a run of decimal digits and yields it as an int. Numbers
// that do not fit in an int fail.
var Number = comb.Digits.Bind(func(v any) comb.Parser {
	n, err := strconv.Atoi(v.(string))
	if err != nil {
		return comb.Fail(fmt.Sprintf("number %s is out of range", v))
	}
	return comb.Succeed(n)
}).Named("number")

// Value matches a number or a nested array.
var Value comb.Parser

// Array matches a bracketed, comma-separated list of values.
var Array comb.Parser

func init() {
	Value = comb.Choice(Number, comb.Lazy(func() comb.Parser { return Array })).Named("value")
	Array = comb.Between(comb.Literal("["), comb.Literal("]"))(
		comb.SeparatedBy(comb.Literal(","))(Value),
	).MapError(func(msg string, pos int) string {
		return "array: " + msg
	}).Named("array")
}

// Parse parses input as a single array literal covering the whole input.
func Parse(input string) ([]any, error) {
	v, err := comb.Parse(Array, input)
	if err != nil {
		return nil, err
	}
	return v.([]any), nil
}
