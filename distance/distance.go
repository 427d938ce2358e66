package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/hybridvec/internal/simd"
)

// Float is the set of element types the distance functions accept.
type Float interface {
	~float32 | ~float64
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2[F Float](a, b []F) F {
	switch x := any(a).(type) {
	case []float64:
		return F(simd.SquaredL2F64(x, any(b).([]float64)))
	case []float32:
		return F(simd.SquaredL2F32(x, any(b).([]float32)))
	}

	var sum F
	b = b[:len(a)]
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// L2 calculates the Euclidean distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func L2[F Float](a, b []F) F {
	return F(math.Sqrt(float64(SquaredL2(a, b))))
}

// Metric selects between the squared and plain Euclidean distance.
type Metric int

const (
	MetricSquaredL2 Metric = iota
	MetricL2
)

func (m Metric) String() string {
	switch m {
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricL2:
		return "L2"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func[F Float] func(a, b []F) F

// Provider returns the distance function for the given metric.
func Provider[F Float](m Metric) (Func[F], error) {
	switch m {
	case MetricSquaredL2:
		return SquaredL2[F], nil
	case MetricL2:
		return L2[F], nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
