package conv

import (
	"fmt"
	"math"
)

// Float is the set of floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Unsigned is the set of fixed-width unsigned code types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

// MaxCode returns the largest value representable by Q.
func MaxCode[Q Unsigned]() Q {
	var zero Q
	return ^zero
}

// RoundToCode rounds x to the nearest integer (half away from zero) and
// saturates the result into [0, maxCode]. NaN maps to 0.
func RoundToCode[F Float, Q Unsigned](x F, maxCode Q) Q {
	r := math.Round(float64(x))
	switch {
	case r != r: // NaN
		return 0
	case r <= 0:
		return 0
	case r >= float64(maxCode):
		return maxCode
	}
	return Q(r)
}

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}
