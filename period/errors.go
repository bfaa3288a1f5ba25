package period

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownUnit is returned in strict mode when a unit literal is not in the unit table
	ErrUnknownUnit = errors.New("unknown duration unit")

	// ErrNumericOverflow indicates a number or the resulting total does not fit in int64
	ErrNumericOverflow = errors.New("duration number overflows int64")

	// ErrUnitConflict indicates a literal was bound to two different multipliers
	ErrUnitConflict = errors.New("conflicting duration unit")

	// ErrInvalidUnit indicates a malformed unit table entry
	ErrInvalidUnit = errors.New("invalid duration unit")

	// ErrParse is the fallback for a ParseError without a known Kind
	ErrParse = errors.New("parse error")
)

// Kind classifies a ParseError.
type Kind int

const (
	UnknownUnit Kind = iota + 1
	NumericOverflow
)

func (k Kind) String() string {
	switch k {
	case UnknownUnit:
		return "unknown unit"
	case NumericOverflow:
		return "numeric overflow"
	default:
		return "unknown"
	}
}

// ParseError reports the token that made a parse fail
type ParseError struct {
	Kind Kind

	// Literal is the offending text: the unit literal for UnknownUnit,
	// the numeric run (and unit, if any) for NumericOverflow
	Literal string

	// Pos is the byte offset of Literal in the source
	Pos int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q at offset %d", e.Unwrap(), e.Literal, e.Pos)
}

// Unwrap returns the sentinel error matching Kind
func (e *ParseError) Unwrap() error {
	switch e.Kind {
	case UnknownUnit:
		return ErrUnknownUnit
	case NumericOverflow:
		return ErrNumericOverflow
	default:
		return ErrParse
	}
}

// IsUnknownUnit returns true if the error is ErrUnknownUnit
func IsUnknownUnit(err error) bool {
	return errors.Is(err, ErrUnknownUnit)
}

// IsNumericOverflow returns true if the error is ErrNumericOverflow
func IsNumericOverflow(err error) bool {
	return errors.Is(err, ErrNumericOverflow)
}
