package bench

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	rep := &Report{
		Config:      DefaultConfig(),
		ISA:         "generic",
		RawBytes:    32 << 20,
		HybridBytes: 18 << 20,
		Runs: []RunResult{
			{Run: 1, Speedup: 1.5, RelativeError: 0.001},
			{Run: 2, Speedup: 2.5, RelativeError: 0.003},
		},
	}
	rep.summarize()
	return rep
}

func TestReportWriteResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().WriteResults(&buf))

	assert.Equal(t, "run,speedup,relative_error\n1,1.5,0.001\n2,2.5,0.003\n", buf.String())
}

func TestReportWriteStats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().WriteStats(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "metric,value", lines[0])
	assert.Contains(t, lines, "avg_speedup,2")
	assert.Contains(t, lines, "min_speedup,1.5")
	assert.Contains(t, lines, "max_speedup,2.5")
	assert.Contains(t, lines, "max_error,0.003")
	assert.Contains(t, lines, "num_runs,2")
}

func TestReportWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().WriteSummary(&buf))

	out := buf.String()
	assert.Contains(t, out, "=== FINAL RESULTS ===")
	assert.Contains(t, out, "Average speedup: 2.0000x")
	assert.Contains(t, out, "Memory: raw 32 MiB, hybrid 18 MiB")
	assert.Contains(t, out, "Kernels: generic")
}

func TestReportWriteCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	require.NoError(t, sampleReport().WriteCSV(dir))

	results, err := os.ReadFile(filepath.Join(dir, ResultsFile))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(results), "run,speedup,relative_error\n"))

	stats, err := os.ReadFile(filepath.Join(dir, StatsFile))
	require.NoError(t, err)
	assert.Contains(t, string(stats), "num_runs,2")
}
