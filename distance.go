package hybridvec

import (
	"math"

	"github.com/hupe1980/hybridvec/distance"
)

// SquaredDistance returns the approximate squared Euclidean distance to other.
//
// The float halves contribute sum((x_a - x_b)^2). The code halves contribute
// sum((q_a - q_b)^2) * (v.Scale() * other.Scale()), which equals the
// dequantized squared difference only when both scales match. If v is
// degenerate its code term is zero whatever other holds.
//
// Fails with *ErrDimensionMismatch if the half lengths differ.
func (v *Vector[F, Q]) SquaredDistance(other *Vector[F, Q]) (F, error) {
	if err := v.checkDims(other); err != nil {
		return 0, err
	}

	sum := distance.SquaredL2(v.exact, other.exact)
	if v.Degenerate() {
		return sum, nil
	}

	return sum + squaredCodeDiff[F](v.codes, other.codes)*(v.scale*other.scale), nil
}

// SquaredDistanceExact dequantizes both code halves with their own
// parameters before differencing. It is symmetric and serves as the
// reference for the error of SquaredDistance.
func (v *Vector[F, Q]) SquaredDistanceExact(other *Vector[F, Q]) (F, error) {
	if err := v.checkDims(other); err != nil {
		return 0, err
	}

	sum := distance.SquaredL2(v.exact, other.exact)
	for i := range v.codes {
		d := v.Dequantize(v.codes[i]) - other.Dequantize(other.codes[i])
		sum += d * d
	}
	return sum, nil
}

// SquaredDistance returns a.SquaredDistance(b).
func SquaredDistance[F Float, Q Code](a, b *Vector[F, Q]) (F, error) {
	return a.SquaredDistance(b)
}

// Distance returns the approximate Euclidean distance between a and b,
// i.e. the square root of a.SquaredDistance(b).
func Distance[F Float, Q Code](a, b *Vector[F, Q]) (F, error) {
	d2, err := a.SquaredDistance(b)
	if err != nil {
		return 0, err
	}
	return F(math.Sqrt(float64(d2))), nil
}

// Accumulate returns the sum of the exact half plus the dequantized codes
// that cover input elements. The zero pad slot is skipped, matching Decode.
func (v *Vector[F, Q]) Accumulate() F {
	var sum F
	for _, x := range v.exact {
		sum += x
	}
	for _, c := range v.codes[:v.coveredCodes()] {
		sum += v.Dequantize(c)
	}
	return sum
}

func (v *Vector[F, Q]) checkDims(other *Vector[F, Q]) error {
	if len(v.exact) != len(other.exact) {
		return &ErrDimensionMismatch{Expected: len(v.exact), Actual: len(other.exact)}
	}
	if len(v.codes) != len(other.codes) {
		return &ErrDimensionMismatch{Expected: len(v.codes), Actual: len(other.codes)}
	}
	return nil
}
