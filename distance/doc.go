// Package distance provides exact Euclidean distances on float slices.
//
// These are the reference distances hybrid vectors approximate. The
// []float32 and []float64 paths use the kernels selected by internal/simd
// (vek on AVX2 hosts, a portable loop elsewhere); named float types fall
// back to a generic loop.
//
// # Usage
//
//	d2 := distance.SquaredL2(a, b)
//	d := distance.L2(a, b)
package distance
