package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}
	assert.Equal(t, BasicMetricsStats{}, m.GetStats())

	m.RecordBuild(10, 100*time.Nanosecond)
	m.RecordRun(1, 10*time.Nanosecond, 30*time.Nanosecond, 0.1)
	m.RecordRun(2, 20*time.Nanosecond, 50*time.Nanosecond, 0.2)

	s := m.GetStats()
	assert.Equal(t, int64(10), s.BuildCount)
	assert.Equal(t, int64(10), s.BuildAvgNanos)
	assert.Equal(t, int64(2), s.RunCount)
	assert.Equal(t, int64(15), s.HybridAvgNanos)
	assert.Equal(t, int64(40), s.RawAvgNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	var m MetricsCollector = NoopMetricsCollector{}
	m.RecordBuild(1, time.Second)
	m.RecordRun(1, time.Second, time.Second, 0)
}
