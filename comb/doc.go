// Package comb provides parser combinators over an immutable parse state.
//
// # Overview
//
// A Parser is a value that turns one State into another. States carry the
// whole source text, a cursor, the result of the last successful step and,
// once something goes wrong, a failure. Grammars are built by combining
// small parsers:
//
//	┌────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Run      │────▶│   Parser    │────▶│ final State │
//	│ (input)    │     │ (combined)  │     │ result/err  │
//	└────────────┘     └─────────────┘     └─────────────┘
//
// # Failure
//
// Expected failures are values, not panics. When a parser fails it sets
// State.Failed and State.Err; every parser applied to a failed state
// returns it unchanged, so a chain stops at the first failure without any
// special handling. Choice is the only combinator that retries after a
// failure, and MapError the only one that rewrites it.
//
// Panics are reserved for misuse such as applying the zero Parser or
// passing an invalid expression to Pattern.
//
// # Recursion
//
// Grammars that refer to themselves must break the cycle with Lazy:
//
//	var value comb.Parser
//	value = comb.Choice(comb.Digits, comb.Lazy(func() comb.Parser {
//	    return comb.Between(comb.Literal("["), comb.Literal("]"))(
//	        comb.SeparatedBy(comb.Literal(","))(value))
//	}))
//
// # Context-sensitive grammars
//
// Bind picks the next parser from a result that has already been parsed:
//
//	tagged := comb.Sequence(comb.Letters, comb.Literal(":")).Bind(func(v any) comb.Parser {
//	    switch v.([]any)[0] {
//	    case "number":
//	        return comb.Digits
//	    default:
//	        return comb.Letters
//	    }
//	})
//
// # Concurrency
//
// Parsers hold no mutable state apart from the one-time construction in
// Lazy, which is synchronized. Any number of goroutines may run the same
// parser at once.
package comb
