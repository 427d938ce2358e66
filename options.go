package hybridvec

import (
	"fmt"
	"strings"
)

// Padding selects how the working length is made even before the split.
type Padding uint8

const (
	// PadToEven appends one zero when the input length is odd.
	// Half length is ceil(n/2) and no input element is dropped.
	PadToEven Padding = iota

	// PadLegacy appends one zero when the input length is even.
	// Half length is floor(n/2): the pad is never stored for even n and the
	// last input element is dropped for odd n.
	PadLegacy
)

func (p Padding) String() string {
	switch p {
	case PadToEven:
		return "even"
	case PadLegacy:
		return "legacy"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// ParsePadding parses "even" or "legacy".
func ParsePadding(s string) (Padding, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "even", "":
		return PadToEven, true
	case "legacy":
		return PadLegacy, true
	default:
		return PadToEven, false
	}
}

// halfLen returns the length of each half for an input of length n.
func (p Padding) halfLen(n int) int {
	switch p {
	case PadLegacy:
		if n%2 == 0 {
			n++
		}
		return n / 2
	default:
		return (n + n%2) / 2
	}
}

type options struct {
	padding Padding
}

// Option configures vector construction.
type Option func(*options)

// WithPadding selects the padding rule. Unknown values make New fail with
// ErrInvalidInput.
func WithPadding(p Padding) Option {
	return func(o *options) {
		o.padding = p
	}
}

func (o *options) validate() error {
	if o.padding > PadLegacy {
		return fmt.Errorf("%w: unknown padding %s", ErrInvalidInput, o.padding)
	}
	return nil
}
