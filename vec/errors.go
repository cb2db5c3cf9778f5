package vec

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientInput is reported when fewer tokens than axes are available.
	ErrInsufficientInput = errors.New("insufficient input")
	// ErrMalformedToken is reported when a token is not a valid scalar literal.
	ErrMalformedToken = errors.New("malformed token")
	// ErrOutOfRange is reported when a token does not fit the element type.
	ErrOutOfRange = errors.New("value out of range")
	// ErrTrailingInput is reported by UnmarshalText when tokens follow the last axis.
	ErrTrailingInput = errors.New("trailing input")
)

// ParseError records the axis and token a parse failed at.
// Err is one of the package sentinels.
type ParseError struct {
	Axis  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("vec: axis %d: %v", e.Axis, e.Err)
	}
	return fmt.Sprintf("vec: axis %d: %v %q", e.Axis, e.Err, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }
