package hybridvec

import "github.com/hupe1980/hybridvec/internal/simd"

// squaredCodeDiff returns sum((a[i]-b[i])^2) with codes promoted to F.
func squaredCodeDiff[F Float, Q Code](a, b []Q) F {
	switch x := any(a).(type) {
	case []uint8:
		return F(simd.SquaredDiffU8(x, any(b).([]uint8)))
	case []uint16:
		return F(simd.SquaredDiffU16(x, any(b).([]uint16)))
	case []uint32:
		return F(simd.SquaredDiffU32(x, any(b).([]uint32)))
	}

	var sum F
	for i := range a {
		d := F(a[i]) - F(b[i])
		sum += d * d
	}
	return sum
}
