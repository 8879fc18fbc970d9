// Package tagged parses values of the form type:payload, where the type
// decides how the payload is read.
//
//	string:hello     Value{Type: "string", Value: "hello"}
//	number:42        Value{Type: "number", Value: 42}
//	diceroll:2d8     Value{Type: "diceroll", Value: Dice{Count: 2, Sides: 8}}
package tagged

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dhamidi/arc/comb"
)

// Value is a parsed tagged value.
type Value struct {
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

func (v Value) String() string {
	return fmt.Sprintf("%s:%v", v.Type, v.Value)
}

// Dice is the payload of a diceroll value.
type Dice struct {
	Count int `json:"count" yaml:"count"`
	Sides int `json:"sides" yaml:"sides"`
}

func (d Dice) String() string {
	return fmt.Sprintf("%dd%d", d.Count, d.Sides)
}

var integer = comb.Digits.Bind(func(v any) comb.Parser {
	n, err := strconv.Atoi(v.(string))
	if err != nil {
		return comb.Fail(fmt.Sprintf("integer %s is out of range", v))
	}
	return comb.Succeed(n)
}).Named("integer")

var payloads = map[string]comb.Parser{
	"string": comb.Letters,
	"number": integer,

	"diceroll": comb.Sequence(integer, comb.Literal("d"), integer).Map(func(v any) any {
		parts := v.([]any)
		return Dice{Count: parts[0].(int), Sides: parts[2].(int)}
	}),
}

// Types returns the tags understood by Parser, sorted.
func Types() []string {
	types := make([]string, 0, len(payloads))
	for typ := range payloads {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

// Parser reads a tag, a colon, and the payload grammar the tag selects.
var Parser = comb.Sequence(comb.Letters, comb.Literal(":")).
	Map(func(v any) any { return v.([]any)[0] }).
	Bind(func(v any) comb.Parser {
		tag := v.(string)
		payload, ok := payloads[tag]
		if !ok {
			return comb.Fail(fmt.Sprintf("unknown type %q", tag))
		}
		return payload.
			Map(func(v any) any { return Value{Type: tag, Value: v} }).
			MapError(func(msg string, pos int) string {
				return fmt.Sprintf("%s payload: %s", tag, msg)
			})
	}).
	Named("tagged")

// Parse parses input as a single tagged value covering the whole input.
func Parse(input string) (Value, error) {
	v, err := comb.Parse(Parser, input)
	if err != nil {
		return Value{}, err
	}
	return v.(Value), nil
}
