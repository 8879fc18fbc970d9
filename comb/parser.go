package comb

import (
	"fmt"

	"github.com/tliron/commonlog"
)

// A Parser transforms a State into a new State. Parsers are immutable and
// safe to share between goroutines; each application works on its own copy
// of the state.
type Parser struct {
	name  string
	apply func(State) State
}

// New wraps fn as a Parser. fn is only called for states that have not
// failed; failed states pass through unchanged.
func New(name string, fn func(State) State) Parser {
	if fn == nil {
		panic("comb: New called with nil function")
	}
	return Parser{name: name, apply: fn}
}

// Name returns the name used in diagnostics.
func (p Parser) Name() string {
	if p.name == "" {
		return "parser"
	}
	return p.name
}

// Named returns a copy of p that reports name in diagnostics.
func (p Parser) Named(name string) Parser {
	p.name = name
	return p
}

// Apply runs p against s.
func (p Parser) Apply(s State) State {
	if p.apply == nil {
		panic("comb: use of zero Parser")
	}
	if s.Failed {
		return s
	}
	return p.apply(s)
}

// Run applies p to a fresh state over input and returns the final state.
func (p Parser) Run(input string) State {
	return Run(p, input)
}

// Map replaces the result of a successful parse with fn(result).
func (p Parser) Map(fn func(any) any) Parser {
	return New(p.name, func(s State) State {
		next := p.Apply(s)
		if next.Failed {
			return next
		}
		next.Result = fn(next.Result)
		return next
	})
}

// MapError rewrites the message of a failed parse. The position and kind
// of the failure are kept.
func (p Parser) MapError(fn func(message string, position int) string) Parser {
	return New(p.name, func(s State) State {
		next := p.Apply(s)
		if !next.Failed {
			return next
		}
		err := *next.Err
		err.Message = fn(err.Message, err.Position)
		next.Err = &err
		return next
	})
}

// Bind runs p and, on success, passes its result to fn to obtain the
// parser that continues from the state p left behind.
func (p Parser) Bind(fn func(any) Parser) Parser {
	return New(p.name, func(s State) State {
		next := p.Apply(s)
		if next.Failed {
			return next
		}
		return fn(next.Result).Apply(next)
	})
}

// Trace logs every application of p and its outcome at debug level.
func (p Parser) Trace(log commonlog.Logger) Parser {
	return New(p.name, func(s State) State {
		log.Debugf("%s: enter at %d", p.Name(), s.Cursor)
		next := p.Apply(s)
		if next.Failed {
			log.Debugf("%s: failed at %d: %s", p.Name(), next.Err.Position, next.Err.Message)
		} else {
			log.Debugf("%s: matched %d..%d", p.Name(), s.Cursor, next.Cursor)
		}
		return next
	})
}

func (p Parser) String() string {
	return fmt.Sprintf("Parser(%s)", p.Name())
}

// Run builds the initial state for input and applies p to it once.
func Run(p Parser, input string) State {
	return p.Apply(NewState(input))
}

// Parse runs p over input and requires it to consume all of it. It returns
// the final result, or an *Error describing the failure.
func Parse(p Parser, input string) (any, error) {
	s := Run(p, input)
	if s.Failed {
		return nil, s.Err
	}
	if !s.AtEnd() {
		return nil, &Error{
			Kind:     KindTrailingInput,
			Message:  fmt.Sprintf("unexpected input %q at position %d", s.Peek(peekWindow), s.Cursor),
			Position: s.Cursor,
		}
	}
	return s.Result, nil
}
