package comb

import (
	"errors"
	"fmt"
)

// ErrParse is wrapped by every *Error so callers can test with errors.Is.
var ErrParse = errors.New("parse error")

// ErrorKind classifies an expected parse failure.
type ErrorKind int

const (
	KindCustom ErrorKind = iota
	KindLiteralMismatch
	KindUnexpectedEOF
	KindClassMismatch
	KindNoAlternative
	KindEmptyRepetition
	KindTrailingInput
)

var kindNames = map[ErrorKind]string{
	KindCustom:          "custom",
	KindLiteralMismatch: "literal mismatch",
	KindUnexpectedEOF:   "unexpected end of input",
	KindClassMismatch:   "class mismatch",
	KindNoAlternative:   "no alternative matched",
	KindEmptyRepetition: "empty repetition",
	KindTrailingInput:   "trailing input",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error describes where and why a parse failed.
type Error struct {
	Kind     ErrorKind
	Message  string
	Position int
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return ErrParse
}
