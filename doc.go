// Package hybridvec provides a memory-reduced vector representation for
// approximate Euclidean distance computation.
//
// A hybrid vector splits its input into two contiguous halves. The first half
// is kept at full floating-point precision; the second half is linearly
// quantized to a narrow unsigned integer code using a scale/offset pair
// derived once from the input's value range.
//
// # Quick Start
//
//	a, _ := hybridvec.New[float64, uint8](rawA)
//	b, _ := hybridvec.New[float64, uint8](rawB)
//	d2, _ := a.SquaredDistance(b)    // approximate squared L2
//	d, _ := hybridvec.Distance(a, b) // sqrt of the above
//
// # Distance Model
//
// The squared distance mixes an exact term over the float halves with a
// linearized term over the code halves:
//
//	sum((x_a - x_b)^2) + sum((q_a - q_b)^2) * scale_a * scale_b
//
// The product of both scales stands in for per-element dequantization. The
// term matches the dequantized difference when both vectors share a scale and
// is a first-order approximation otherwise. When the receiver has a degenerate
// range (min == max) its code term is zero regardless of the other operand, so
// SquaredDistance is not symmetric in that case. SquaredDistanceExact
// dequantizes both sides instead and is always symmetric.
//
// # Padding
//
// The split needs an even working length. PadToEven (default) appends one
// zero to odd-length input so no element is dropped. PadLegacy appends the
// zero to even-length input instead, which yields floor(n/2) halves and drops
// the last element of odd-length input.
//
//	v, _ := hybridvec.New[float64, uint8](raw, hybridvec.WithPadding(hybridvec.PadLegacy))
//
// # Memory
//
//	| Layout           | Bytes per 2 dims |
//	|------------------|------------------|
//	| float64 raw      | 16               |
//	| float64 + uint8  | 9                |
//	| float32 + uint8  | 5                |
//
// # Thread Safety
//
// Distance, Accumulate, Decode and the allocating arithmetic forms only read
// their operands and are safe for concurrent use. AddInPlace, SubInPlace and
// MulInPlace mutate the receiver and must not race with any other use of it.
//
// # Arithmetic
//
// Elementwise arithmetic operates on the float half with float arithmetic and
// on the code half with native wrapping unsigned arithmetic. Quantization
// parameters are frozen at construction, so after arithmetic the codes are no
// longer guaranteed to dequantize to meaningful values.
package hybridvec
