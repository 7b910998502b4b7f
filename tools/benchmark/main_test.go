package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "N/A", formatRate(10, 0))
	assert.Equal(t, "5.00/s", formatRate(10, 2*time.Second))
	assert.Equal(t, "0.50/s", formatRate(1, 2*time.Second))
}

func TestPercentageString(t *testing.T) {
	assert.Equal(t, "0.00%", percentageString(1, 0))
	assert.Equal(t, "50.00%", percentageString(1, 2))
	assert.Equal(t, "100.00%", percentageString(3, 3))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", formatDuration(250*time.Millisecond))
	assert.Equal(t, "1.5s", formatDuration(1500*time.Millisecond))
}

func TestPercentile(t *testing.T) {
	latencies := []time.Duration{
		1 * time.Millisecond,
		2 * time.Millisecond,
		3 * time.Millisecond,
		4 * time.Millisecond,
		5 * time.Millisecond,
		6 * time.Millisecond,
		7 * time.Millisecond,
		8 * time.Millisecond,
		9 * time.Millisecond,
		10 * time.Millisecond,
	}

	assert.Equal(t, time.Duration(0), percentile(nil, 50))
	assert.Equal(t, 1*time.Millisecond, percentile(latencies, 0))
	assert.Equal(t, 5*time.Millisecond, percentile(latencies, 50))
	assert.Equal(t, 10*time.Millisecond, percentile(latencies, 100))
}

func TestSortLatencies(t *testing.T) {
	latencies := []time.Duration{3 * time.Millisecond, 1 * time.Millisecond, 2 * time.Millisecond}
	sortLatencies(latencies)
	assert.Equal(t, []time.Duration{1 * time.Millisecond, 2 * time.Millisecond, 3 * time.Millisecond}, latencies)
}

func TestStatusEmoji(t *testing.T) {
	assert.Equal(t, "🟡", statusEmoji(1, 1, 1))
	assert.Equal(t, "❌", statusEmoji(1, 1, 0))
	assert.Equal(t, "✅", statusEmoji(1, 0, 0))
	assert.Equal(t, "⚪", statusEmoji(0, 0, 0))
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "benchmark.json")

	cfg := &BenchmarkConfig{APIURL: "http://localhost:9090"}
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.APIURL, loaded.APIURL)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestRunBenchmark(t *testing.T) {
	var requestCount int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		if requestCount%5 == 0 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	cfg := &Config{
		APIURL:      server.URL,
		Endpoint:    "/cards",
		Method:      http.MethodGet,
		Requests:    20,
		Concurrency: 1,
		Timeout:     5 * time.Second,
	}

	stats, err := runBenchmark(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 20, stats.Total)
	assert.Equal(t, 16, stats.Succeeded)
	assert.Equal(t, 4, stats.Failed)
	assert.Equal(t, 16, stats.StatusCounts[http.StatusOK])
	assert.Equal(t, 4, stats.StatusCounts[http.StatusInternalServerError])
	assert.Len(t, stats.Latencies, 20)
	assert.GreaterOrEqual(t, stats.TotalDuration, time.Duration(0))
}

func TestWriteMarkdownReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")

	stats := &RunStats{
		Endpoint:      "/cards",
		Method:        http.MethodGet,
		Total:         10,
		Succeeded:     10,
		StatusCounts:  map[int]int{http.StatusOK: 10},
		Latencies:     []time.Duration{1 * time.Millisecond, 2 * time.Millisecond},
		TotalDuration: 100 * time.Millisecond,
	}

	require.NoError(t, writeMarkdownReport(path, stats))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Benchmark Report")
	assert.Contains(t, string(data), "GET /cards")
	assert.Contains(t, string(data), "| Total requests | 10 |")
}
