package comb

import (
	"fmt"
	"strings"
	"sync"
)

// Sequence applies each parser in order. The result is a []any holding
// each step's result. The first failure is returned as is.
func Sequence(parsers ...Parser) Parser {
	return New(joinNames("sequence", parsers), func(s State) State {
		results := make([]any, 0, len(parsers))
		next := s
		for _, p := range parsers {
			next = p.Apply(next)
			if next.Failed {
				return next
			}
			results = append(results, next.Result)
		}
		return next.succeed(results, next.Cursor)
	})
}

// Choice tries each parser against the same state and returns the first
// success. Order matters: an earlier alternative wins even if a later one
// would consume more input.
func Choice(parsers ...Parser) Parser {
	return New(joinNames("choice", parsers), func(s State) State {
		for _, p := range parsers {
			next := p.Apply(s)
			if !next.Failed {
				return next
			}
		}
		return s.fail(KindNoAlternative,
			fmt.Sprintf("no alternative matched at position %d", s.Cursor))
	})
}

// ZeroOrMore applies p until it fails and collects the results into a
// []any. It never fails. p must consume input whenever it succeeds,
// otherwise ZeroOrMore does not terminate.
func ZeroOrMore(p Parser) Parser {
	return New("zeroOrMore("+p.Name()+")", func(s State) State {
		results, next := many(p, s)
		return next.succeed(results, next.Cursor)
	})
}

// OneOrMore is like ZeroOrMore but fails at the starting cursor when p
// does not match at least once.
func OneOrMore(p Parser) Parser {
	return New("oneOrMore("+p.Name()+")", func(s State) State {
		results, next := many(p, s)
		if len(results) == 0 {
			return s.fail(KindEmptyRepetition,
				fmt.Sprintf("unable to match any input using parser %s at position %d", p.Name(), s.Cursor))
		}
		return next.succeed(results, next.Cursor)
	})
}

// many returns the collected results and the state after the last
// successful application of p.
func many(p Parser, s State) ([]any, State) {
	results := []any{}
	for {
		next := p.Apply(s)
		if next.Failed {
			return results, s
		}
		results = append(results, next.Result)
		s = next
	}
}

// Optional succeeds with p's result if p matches and with nil otherwise.
func Optional(p Parser) Parser {
	return New("optional("+p.Name()+")", func(s State) State {
		next := p.Apply(s)
		if next.Failed {
			return s.succeed(nil, s.Cursor)
		}
		return next
	})
}

// SeparatedBy returns a function that builds a parser for zero or more
// values separated by sep. Only the values are collected. A separator that
// is not followed by a value is left unconsumed.
func SeparatedBy(sep Parser) func(value Parser) Parser {
	return func(value Parser) Parser {
		name := fmt.Sprintf("separatedBy(%s)(%s)", sep.Name(), value.Name())
		return New(name, func(s State) State {
			results := []any{}
			next := value.Apply(s)
			if next.Failed {
				return s.succeed(results, s.Cursor)
			}
			for {
				results = append(results, next.Result)
				end := next
				afterSep := sep.Apply(end)
				if afterSep.Failed {
					return end.succeed(results, end.Cursor)
				}
				next = value.Apply(afterSep)
				if next.Failed {
					return end.succeed(results, end.Cursor)
				}
			}
		})
	}
}

// Between returns a function that builds a parser for content enclosed by
// left and right. The result is content's result.
func Between(left, right Parser) func(content Parser) Parser {
	return func(content Parser) Parser {
		return Sequence(left, content, right).Map(func(v any) any {
			return v.([]any)[1]
		}).Named(fmt.Sprintf("between(%s, %s)(%s)", left.Name(), right.Name(), content.Name()))
	}
}

// Lazy defers calling thunk until the parser is first applied, which
// allows grammars to refer to themselves. thunk is called at most once.
func Lazy(thunk func() Parser) Parser {
	var (
		once sync.Once
		p    Parser
	)
	return New("lazy", func(s State) State {
		once.Do(func() { p = thunk() })
		return p.Apply(s)
	})
}

func joinNames(op string, parsers []Parser) string {
	names := make([]string, len(parsers))
	for i, p := range parsers {
		names[i] = p.Name()
	}
	return op + "(" + strings.Join(names, ", ") + ")"
}
