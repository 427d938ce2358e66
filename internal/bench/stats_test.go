package bench

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, Summary{}, Summarize(nil))
	})

	t.Run("Single", func(t *testing.T) {
		assert.Equal(t, Summary{Mean: 2, Min: 2, Max: 2}, Summarize([]float64{2}))
	})

	t.Run("Many", func(t *testing.T) {
		s := Summarize([]float64{1, 2, 3, 4})
		assert.Equal(t, 2.5, s.Mean)
		assert.Equal(t, 1.0, s.Min)
		assert.Equal(t, 4.0, s.Max)
		// sample standard deviation
		assert.InDelta(t, math.Sqrt(5.0/3.0), s.StdDev, 1e-12)
	})
}
