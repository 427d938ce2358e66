// Package testutil provides testing utilities for hybridvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random vectors and computing exact
// reference distances on raw float64 data.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vec := make([]float64, 128)
//	rng.FillUniform(vec, -10, 10)
//	vecs := rng.UniformVectors(1000, 4096, -10, 10)
//
// # Reference Distances
//
//	d2 := testutil.SquaredL2(a, b)
//	sum := testutil.ChainDistanceSum(vecs) // sum of sqrt(d2) over consecutive pairs
package testutil
