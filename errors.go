package durstr

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Error kinds returned by Parse. Use errors.Is to test for them; the
// concrete error is a *ParseError carrying the position of the failure.
var (
	ErrEmptyInput     = errors.New("empty input")
	ErrExpectedNumber = errors.New("expected a number")
	ErrExpectedUnit   = errors.New("expected a unit")
	ErrUnknownUnit    = errors.New("unknown unit")
	ErrOverflow       = errors.New("duration out of range")
)

// ErrInvalidUnit is returned by UnitTable.AddUnit for a definition the
// scanner could never match or that has a non-positive value.
var ErrInvalidUnit = errors.New("invalid unit")

// ParseError describes why an input could not be parsed.
type ParseError struct {
	Kind   error  // one of the Err* sentinels
	Input  string // the full input passed to Parse
	Offset int    // byte offset of the failure in Input
	Unit   string // offending alias, set for ErrUnknownUnit
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrEmptyInput:
		return "durstr: empty input"
	case ErrUnknownUnit:
		return fmt.Sprintf("durstr: unknown unit %q at offset %d", e.Unit, e.Offset)
	case ErrOverflow:
		return fmt.Sprintf("durstr: duration out of range at offset %d", e.Offset)
	}
	if e.Offset >= len(e.Input) {
		return fmt.Sprintf("durstr: %v at end of input", e.Kind)
	}
	r, _ := utf8.DecodeRuneInString(e.Input[e.Offset:])
	return fmt.Sprintf("durstr: %v at offset %d, found %q", e.Kind, e.Offset, r)
}

// Unwrap returns the error kind so errors.Is works against the sentinels.
func (e *ParseError) Unwrap() error {
	return e.Kind
}

func newParseError(kind error, input string, offset int) *ParseError {
	return &ParseError{Kind: kind, Input: input, Offset: offset}
}
