package simd

// SquaredDiffU8 returns sum((a[i]-b[i])^2) over uint8 codes.
// The result is exact: each term is below 2^16 so a uint64 accumulator
// cannot overflow for any addressable slice length.
//
// SAFETY: This function assumes len(a) == len(b).
func SquaredDiffU8(a, b []uint8) uint64 {
	var s0, s1, s2, s3 uint64
	n := len(a)
	b = b[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		d0 := int32(a[i]) - int32(b[i])
		d1 := int32(a[i+1]) - int32(b[i+1])
		d2 := int32(a[i+2]) - int32(b[i+2])
		d3 := int32(a[i+3]) - int32(b[i+3])
		s0 += uint64(d0 * d0)
		s1 += uint64(d1 * d1)
		s2 += uint64(d2 * d2)
		s3 += uint64(d3 * d3)
	}
	for ; i < n; i++ {
		d := int32(a[i]) - int32(b[i])
		s0 += uint64(d * d)
	}
	return s0 + s1 + s2 + s3
}

// SquaredDiffU16 returns sum((a[i]-b[i])^2) over uint16 codes.
// Each term is below 2^32.
//
// SAFETY: This function assumes len(a) == len(b).
func SquaredDiffU16(a, b []uint16) uint64 {
	var s0, s1 uint64
	n := len(a)
	b = b[:n]
	i := 0
	for ; i+2 <= n; i += 2 {
		d0 := int64(a[i]) - int64(b[i])
		d1 := int64(a[i+1]) - int64(b[i+1])
		s0 += uint64(d0 * d0)
		s1 += uint64(d1 * d1)
	}
	for ; i < n; i++ {
		d := int64(a[i]) - int64(b[i])
		s0 += uint64(d * d)
	}
	return s0 + s1
}

// SquaredDiffU32 returns sum((a[i]-b[i])^2) over uint32 codes.
// Terms reach 2^64, so accumulation happens in float64.
//
// SAFETY: This function assumes len(a) == len(b).
func SquaredDiffU32(a, b []uint32) float64 {
	var s float64
	n := len(a)
	b = b[:n]
	for i := 0; i < n; i++ {
		d := float64(a[i]) - float64(b[i])
		s += d * d
	}
	return s
}
