package hybridvec

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hybridvec/testutil"
)

func TestNew(t *testing.T) {
	t.Run("Ramp", func(t *testing.T) {
		v, err := New[float64, uint8](testutil.Ramp(8))
		require.NoError(t, err)

		assert.Equal(t, 4, v.Len())
		assert.Equal(t, 8, v.InputLen())
		assert.Equal(t, []float64{0, 1, 2, 3}, v.Exact())
		assert.Equal(t, []uint8{146, 182, 219, 255}, v.Codes())
		assert.Equal(t, 0.0, v.Min())
		assert.Equal(t, 7.0, v.Max())
		assert.InDelta(t, 7.0/255.0, v.Scale(), 1e-15)
		assert.Equal(t, 0.0, v.Offset())
		assert.False(t, v.Degenerate())
	})

	t.Run("RampLegacy", func(t *testing.T) {
		v, err := New[float64, uint8](testutil.Ramp(8), WithPadding(PadLegacy))
		require.NoError(t, err)

		assert.Equal(t, PadLegacy, v.Padding())
		assert.Equal(t, []float64{0, 1, 2, 3}, v.Exact())
		assert.Equal(t, []uint8{146, 182, 219, 255}, v.Codes())
	})

	t.Run("NegativeRange", func(t *testing.T) {
		v, err := New[float64, uint8]([]float64{-10, 0, -5, 10})
		require.NoError(t, err)

		assert.InDelta(t, 20.0/255.0, v.Scale(), 1e-15)
		assert.InDelta(t, 127.5, v.Offset(), 1e-9)
		// -5 -> 63.75 -> 64, 10 -> 255
		assert.Equal(t, []uint8{64, 255}, v.Codes())
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := New[float64, uint8](nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))

		_, err = New[float32, uint16]([]float32{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("UnknownPadding", func(t *testing.T) {
		_, err := New[float64, uint8]([]float64{1, 2}, WithPadding(Padding(9)))
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "Unknown(9)")
	})

	t.Run("DoesNotAliasInput", func(t *testing.T) {
		in := []float64{1, 2, 3, 4}
		v, err := New[float64, uint8](in)
		require.NoError(t, err)

		in[0] = 100
		assert.Equal(t, 1.0, v.Exact()[0])

		exact := v.Exact()
		exact[1] = 100
		assert.Equal(t, 2.0, v.Exact()[1])
	})
}

func TestHalfLengthParity(t *testing.T) {
	tests := []struct {
		n      int
		even   int
		legacy int
	}{
		{1, 1, 0},
		{2, 1, 1},
		{3, 2, 1},
		{4, 2, 2},
		{5, 3, 2},
		{8, 4, 4},
		{9, 5, 4},
		{4096, 2048, 2048},
		{4097, 2049, 2048},
	}
	for _, tt := range tests {
		in := testutil.Ramp(tt.n)

		v, err := New[float64, uint8](in)
		require.NoError(t, err)
		assert.Equal(t, tt.even, v.Len(), "even padding, n=%d", tt.n)
		assert.Equal(t, v.Len(), len(v.Codes()))

		l, err := New[float64, uint8](in, WithPadding(PadLegacy))
		require.NoError(t, err)
		assert.Equal(t, tt.legacy, l.Len(), "legacy padding, n=%d", tt.n)
		assert.Equal(t, l.Len(), len(l.Codes()))
	}
}

func TestPadding(t *testing.T) {
	t.Run("OddInputKeepsLastElement", func(t *testing.T) {
		v, err := New[float64, uint8](testutil.Ramp(9))
		require.NoError(t, err)

		assert.Equal(t, []float64{0, 1, 2, 3, 4}, v.Exact())
		// 5..8 quantized, pad 0 equals min so it lands on code 0
		assert.Equal(t, uint8(0), v.Codes()[4])
		assert.Equal(t, uint8(255), v.Codes()[3])

		dec := v.Decode()
		require.Len(t, dec, 9)
		assert.InDelta(t, 8.0, dec[8], v.Scale())
	})

	t.Run("LegacyOddInputDropsLastElement", func(t *testing.T) {
		v, err := New[float64, uint8](testutil.Ramp(9), WithPadding(PadLegacy))
		require.NoError(t, err)

		assert.Equal(t, []float64{0, 1, 2, 3}, v.Exact())
		// range still covers the dropped element
		assert.Equal(t, 8.0, v.Max())
		assert.Len(t, v.Decode(), 8)
	})

	t.Run("PadOutsideRangeSaturates", func(t *testing.T) {
		v, err := New[float64, uint8]([]float64{5, 6, 7})
		require.NoError(t, err)

		assert.Equal(t, []float64{5, 6}, v.Exact())
		assert.Equal(t, []uint8{255, 0}, v.Codes())
		assert.Len(t, v.Decode(), 3)
	})

	t.Run("ParsePadding", func(t *testing.T) {
		p, ok := ParsePadding("legacy")
		assert.True(t, ok)
		assert.Equal(t, PadLegacy, p)

		p, ok = ParsePadding(" Even ")
		assert.True(t, ok)
		assert.Equal(t, PadToEven, p)

		_, ok = ParsePadding("odd")
		assert.False(t, ok)

		assert.Equal(t, "even", PadToEven.String())
		assert.Equal(t, "legacy", PadLegacy.String())
	})
}

func TestDegenerate(t *testing.T) {
	t.Run("Constant", func(t *testing.T) {
		v, err := New[float64, uint8](testutil.Constant(7, 3.5))
		require.NoError(t, err)

		assert.True(t, v.Degenerate())
		assert.Equal(t, 1.0, v.Scale())
		assert.Equal(t, 0.0, v.Offset())
		for _, c := range v.Codes() {
			assert.Equal(t, uint8(0), c)
		}
		assert.Equal(t, 3.5, v.Dequantize(0))
		assert.Equal(t, 3.5, v.Dequantize(200))
		assert.Equal(t, uint8(0), v.Quantize(1000))
		assert.Equal(t, testutil.Constant(7, 3.5), v.Decode())
	})

	t.Run("SingleElement", func(t *testing.T) {
		v, err := New[float64, uint8]([]float64{5})
		require.NoError(t, err)

		assert.True(t, v.Degenerate())
		assert.Equal(t, []float64{5}, v.Exact())
		assert.Equal(t, []uint8{0}, v.Codes())
		assert.Equal(t, []float64{5}, v.Decode())
	})

	t.Run("SingleElementLegacy", func(t *testing.T) {
		v, err := New[float64, uint8]([]float64{5}, WithPadding(PadLegacy))
		require.NoError(t, err)

		assert.Equal(t, 0, v.Len())
		assert.Empty(t, v.Decode())

		d, err := v.SquaredDistance(v)
		require.NoError(t, err)
		assert.Equal(t, 0.0, d)
	})
}

func TestRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for _, n := range []int{2, 3, 17, 128, 1001} {
		for _, in := range rng.UniformVectors(5, n, -10, 10) {
			v, err := New[float64, uint8](in)
			require.NoError(t, err)

			dec := v.Decode()
			require.Len(t, dec, n)

			for i := 0; i < v.Len(); i++ {
				assert.Equal(t, in[i], dec[i])
			}
			for i := v.Len(); i < n; i++ {
				assert.LessOrEqual(t, math.Abs(dec[i]-in[i]), v.Scale()/2+1e-12, "n=%d i=%d", n, i)
			}
		}
	}
}

func TestRoundTripWideCodes(t *testing.T) {
	in := testutil.NewRNG(7).UniformVectors(1, 64, -1, 1)[0]
	f32 := make([]float32, len(in))
	for i, x := range in {
		f32[i] = float32(x)
	}

	v16, err := New[float32, uint16](f32)
	require.NoError(t, err)
	v8, err := New[float32, uint8](f32)
	require.NoError(t, err)

	dec16 := v16.Decode()
	dec8 := v8.Decode()
	var err16, err8 float64
	for i := v16.Len(); i < len(f32); i++ {
		err16 += math.Abs(float64(dec16[i] - f32[i]))
		err8 += math.Abs(float64(dec8[i] - f32[i]))
	}
	assert.Less(t, err16, err8)

	v32, err := New[float64, uint32](in)
	require.NoError(t, err)
	dec32 := v32.Decode()
	for i := v32.Len(); i < len(in); i++ {
		assert.InDelta(t, in[i], dec32[i], 1e-8)
	}
}

type celsius float64
type code8 uint8

func TestNamedTypes(t *testing.T) {
	a, err := New[celsius, code8]([]celsius{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	b, err := New[celsius, code8]([]celsius{1, 2, 4, 4, 5, 7})
	require.NoError(t, err)

	ra, err := New[float64, uint8]([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	rb, err := New[float64, uint8]([]float64{1, 2, 4, 4, 5, 7})
	require.NoError(t, err)

	got, err := a.SquaredDistance(b)
	require.NoError(t, err)
	want, err := ra.SquaredDistance(rb)
	require.NoError(t, err)

	assert.InDelta(t, want, float64(got), 1e-9)
}

func TestClone(t *testing.T) {
	v, err := New[float64, uint8](testutil.Ramp(10))
	require.NoError(t, err)

	c := v.Clone()
	require.NoError(t, c.AddInPlace(v))

	assert.Equal(t, []float64{0, 1, 2, 3, 4}, v.Exact())
	assert.NotEqual(t, v.Codes(), c.Codes())
	assert.Equal(t, v.Scale(), c.Scale())
}

func TestSizeBytes(t *testing.T) {
	v, err := New[float64, uint8](testutil.Ramp(8))
	require.NoError(t, err)
	assert.Equal(t, 4*8+4*1+4*8, v.SizeBytes())

	w, err := New[float32, uint16]([]float32{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 2*4+2*2+4*4, w.SizeBytes())
}
