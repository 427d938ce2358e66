package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillUniform fills dst with values in [minVal, maxVal).
func (r *RNG) FillUniform(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fillLocked(dst, minVal, maxVal)
}

func (r *RNG) fillLocked(dst []float64, minVal, maxVal float64) {
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformVectors generates num random vectors with values in [minVal, maxVal).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num, dimensions int, minVal, maxVal float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)
	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		r.fillLocked(vec, minVal, maxVal)
		vectors[i] = vec
	}

	return vectors
}

// Constant returns a vector of length n where every element is c.
func Constant(n int, c float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = c
	}
	return v
}

// Ramp returns [0, 1, ..., n-1].
func Ramp(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(i)
	}
	return v
}

// SquaredL2 is the exact squared Euclidean distance on raw vectors.
func SquaredL2(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// ChainDistanceSum returns sum(sqrt(SquaredL2(v[i], v[i+1]))) over
// consecutive pairs.
func ChainDistanceSum(vectors [][]float64) float64 {
	var total float64
	for i := 0; i+1 < len(vectors); i++ {
		total += math.Sqrt(SquaredL2(vectors[i], vectors[i+1]))
	}
	return total
}
