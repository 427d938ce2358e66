// Package simd provides the distance kernels used by hybrid vectors.
//
// # Supported Platforms
//
//   - x86-64: AVX2+FMA through github.com/viterin/vek
//   - everything else: generic Go loops
//
// Runtime CPU feature detection selects the implementation once at init.
// Set HYBRIDVEC_SIMD=generic to force the generic fallback.
//
// # Operations
//
//   - Float halves: SquaredL2F64, SquaredL2F32
//   - Code halves: SquaredDiffU8, SquaredDiffU16, SquaredDiffU32
//
// Code kernels accumulate in the integer domain where the width allows it,
// so callers multiply by the scale product once per call instead of once
// per element.
package simd
