// Package main provides helper functions for the benchmark CLI
package main

import (
	"fmt"
	"sort"
	"time"
)

// formatRate formats a rate (requests per second)
func formatRate(count int, duration time.Duration) string {
	if duration.Seconds() == 0 {
		return "N/A"
	}
	rate := float64(count) / duration.Seconds()
	return fmt.Sprintf("%.2f/s", rate)
}

// percentageString calculates and formats a percentage
func percentageString(part, total int) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(part)/float64(total)*100)
}

// formatDuration renders a duration with millisecond precision
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}

// percentile returns the p-th percentile of the sorted latency slice
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(float64(len(sorted)-1) * p / 100.0)
	return sorted[idx]
}

// sortLatencies sorts latencies ascending in place
func sortLatencies(latencies []time.Duration) {
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
}

// statusEmoji returns an emoji for the run status
func statusEmoji(passed, failed, running int) string {
	if running > 0 {
		return "🟡"
	}
	if failed > 0 {
		return "❌"
	}
	if passed > 0 {
		return "✅"
	}
	return "⚪"
}
