package betnumber

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPosition is returned for a position that is negative or would
	// spill into the tag byte.
	ErrInvalidPosition = errors.New("position out of range")
	// ErrInvalidTag is returned for a tag that does not fit in one byte.
	ErrInvalidTag = errors.New("tag out of range")
	// ErrEmptyPositionSet is returned by RequireNonEmpty.
	ErrEmptyPositionSet = errors.New("empty position set")
	// ErrInvalidTotal is returned for a total that does not fit in one byte.
	ErrInvalidTotal = errors.New("total out of range")
	// ErrInvalidIdentifier is returned when a string is not a 256-bit number.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// FieldError names the input field that failed validation.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %v: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
