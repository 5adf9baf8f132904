package reading

import (
	"errors"
	"fmt"
)

// ErrNegativeDuration is returned when a caller tries to accumulate a
// negative reading-time delta. Reading time only ever grows.
var ErrNegativeDuration = errors.New("reading time delta must not be negative")

// ErrUnknownCategory is returned when a bookmark category name does not
// match any known category.
var ErrUnknownCategory = errors.New("unknown bookmark category")

// RangeError signals a section index outside [0, Length). Index-based
// operations report it instead of clamping, so callers can treat it as the
// programmer error it is.
type RangeError struct {
	Op     string
	Index  int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: section index %d out of range [0, %d)", e.Op, e.Index, e.Length)
}
