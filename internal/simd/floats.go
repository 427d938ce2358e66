package simd

import (
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

var (
	squaredL2F64Impl = squaredL2F64Generic
	squaredL2F32Impl = squaredL2F32Generic
)

// bindKernels installs the implementations for the active ISA.
func bindKernels() {
	switch activeISA {
	case AVX2:
		squaredL2F64Impl = squaredL2F64Vek
		squaredL2F32Impl = squaredL2F32Vek
	default:
		squaredL2F64Impl = squaredL2F64Generic
		squaredL2F32Impl = squaredL2F32Generic
	}
}

// SquaredL2F64 calculates the squared L2 distance between two float64 slices.
//
// SAFETY: This function assumes len(a) == len(b).
func SquaredL2F64(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return squaredL2F64Impl(a, b)
}

// SquaredL2F32 calculates the squared L2 distance between two float32 slices.
//
// SAFETY: This function assumes len(a) == len(b).
func SquaredL2F32(a, b []float32) float32 {
	if len(a) == 0 {
		return 0
	}
	return squaredL2F32Impl(a, b)
}

// squaredL2F64Vek squares vek's Euclidean distance. This costs one sqrt and
// one rounding step per call; a Sub+Dot pair would avoid both but needs a
// scratch buffer per call.
func squaredL2F64Vek(a, b []float64) float64 {
	d := vek.Distance(a, b)
	return d * d
}

// squaredL2F32Vek is the float32 form of squaredL2F64Vek.
func squaredL2F32Vek(a, b []float32) float32 {
	d := vek32.Distance(a, b)
	return d * d
}

func squaredL2F64Generic(a, b []float64) float64 {
	var s0, s1, s2, s3 float64
	n := len(a)
	b = b[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	for ; i < n; i++ {
		d := a[i] - b[i]
		s0 += d * d
	}
	return (s0 + s1) + (s2 + s3)
}

func squaredL2F32Generic(a, b []float32) float32 {
	var s0, s1, s2, s3 float32
	n := len(a)
	b = b[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}
	for ; i < n; i++ {
		d := a[i] - b[i]
		s0 += d * d
	}
	return (s0 + s1) + (s2 + s3)
}
