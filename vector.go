package hybridvec

import (
	"fmt"
	"slices"
	"unsafe"

	"github.com/hupe1980/hybridvec/internal/conv"
)

// Float is the set of element types for the exact half.
type Float interface {
	~float32 | ~float64
}

// Code is the set of fixed-width unsigned types for the quantized half.
type Code interface {
	~uint8 | ~uint16 | ~uint32
}

// Vector is a hybrid quantized vector: the first half of the input is stored
// as F, the second half as linear Q codes over [0, max(Q)].
//
// Quantization parameters (min, max, scale, offset) are fixed at construction.
type Vector[F Float, Q Code] struct {
	exact []F
	codes []Q

	min    F
	max    F
	scale  F
	offset F

	inputLen int
	padding  Padding
}

// New builds a hybrid vector from values.
//
// The value range is taken over the whole input before padding. A constant
// input (min == max) is degenerate: scale is 1, offset is 0 and every code is 0.
// Empty input fails with ErrInvalidInput.
func New[F Float, Q Code](values []F, opts ...Option) (*Vector[F, Q], error) {
	o := options{padding: PadToEven}
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: empty vector", ErrInvalidInput)
	}

	lo, hi := values[0], values[0]
	for _, x := range values[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}

	v := &Vector[F, Q]{
		min:      lo,
		max:      hi,
		inputLen: len(values),
		padding:  o.padding,
	}
	v.deriveParams()

	half := o.padding.halfLen(len(values))
	v.exact = make([]F, half)
	v.codes = make([]Q, half)

	copy(v.exact, values[:half])
	for i := range v.codes {
		var x F // zero pad past the end of the input
		if j := half + i; j < len(values) {
			x = values[j]
		}
		v.codes[i] = v.Quantize(x)
	}

	return v, nil
}

func (v *Vector[F, Q]) deriveParams() {
	if v.max == v.min {
		v.scale = 1
		v.offset = 0
		return
	}
	const qmin = 0
	qmax := F(conv.MaxCode[Q]())
	v.scale = (v.max - v.min) / (qmax - qmin)
	v.offset = qmin - v.min/v.scale
}

// Quantize maps x onto a code with the vector's own parameters, rounding to
// the nearest code and saturating outside [min, max].
func (v *Vector[F, Q]) Quantize(x F) Q {
	if v.Degenerate() {
		return 0
	}
	return conv.RoundToCode(x/v.scale+v.offset, conv.MaxCode[Q]())
}

// Dequantize maps a code back to an approximate value. For a degenerate
// vector it returns min for every code.
func (v *Vector[F, Q]) Dequantize(code Q) F {
	if v.Degenerate() {
		return v.min
	}
	return (F(code) - v.offset) * v.scale
}

// Decode reconstructs the input prefix covered by the two halves: the exact
// half verbatim followed by dequantized codes. The zero pad is not returned.
func (v *Vector[F, Q]) Decode() []F {
	out := make([]F, 0, len(v.exact)+v.coveredCodes())
	out = append(out, v.exact...)
	for _, c := range v.codes[:v.coveredCodes()] {
		out = append(out, v.Dequantize(c))
	}
	return out
}

// coveredCodes returns how many leading codes hold input elements rather
// than the zero pad.
func (v *Vector[F, Q]) coveredCodes() int {
	return max(0, min(len(v.codes), v.inputLen-len(v.exact)))
}

// Degenerate reports whether the input range was empty (min == max).
func (v *Vector[F, Q]) Degenerate() bool {
	return v.max == v.min
}

// Len returns the length of each half.
func (v *Vector[F, Q]) Len() int {
	return len(v.exact)
}

// InputLen returns the length of the input the vector was built from.
func (v *Vector[F, Q]) InputLen() int {
	return v.inputLen
}

// Padding returns the padding rule used at construction.
func (v *Vector[F, Q]) Padding() Padding {
	return v.padding
}

// Exact returns a copy of the full-precision half.
func (v *Vector[F, Q]) Exact() []F {
	return slices.Clone(v.exact)
}

// Codes returns a copy of the quantized half.
func (v *Vector[F, Q]) Codes() []Q {
	return slices.Clone(v.codes)
}

// Min returns the smallest input value.
func (v *Vector[F, Q]) Min() F { return v.min }

// Max returns the largest input value.
func (v *Vector[F, Q]) Max() F { return v.max }

// Scale returns the value step between adjacent codes (1 when degenerate).
func (v *Vector[F, Q]) Scale() F { return v.scale }

// Offset returns the code that value 0 maps to before rounding (0 when degenerate).
func (v *Vector[F, Q]) Offset() F { return v.offset }

// Clone returns a deep copy.
func (v *Vector[F, Q]) Clone() *Vector[F, Q] {
	c := *v
	c.exact = slices.Clone(v.exact)
	c.codes = slices.Clone(v.codes)
	return &c
}

// SizeBytes returns the payload size: both halves plus the four
// quantization parameters.
func (v *Vector[F, Q]) SizeBytes() int {
	var f F
	var q Q
	fs := int(unsafe.Sizeof(f))
	qs := int(unsafe.Sizeof(q))
	return len(v.exact)*fs + len(v.codes)*qs + 4*fs
}
