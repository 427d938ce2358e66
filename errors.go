package hybridvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when construction receives unusable input,
	// such as an empty value sequence or an unknown option value.
	ErrInvalidInput = errors.New("invalid input")
)

// ErrDimensionMismatch indicates that two operands of a binary operation have
// different half lengths.
// The lengths can be read via errors.As.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected half length %d, got %d", e.Expected, e.Actual)
}

// Is reports whether target is any *ErrDimensionMismatch, so callers can use
// errors.Is(err, &ErrDimensionMismatch{}) without matching the lengths.
func (e *ErrDimensionMismatch) Is(target error) bool {
	_, ok := target.(*ErrDimensionMismatch)
	return ok
}
