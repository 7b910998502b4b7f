// Command benchmark load-tests a running cardfolio API server and reports
// latency percentiles per endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"
)

const (
	defaultAPIURL = "http://localhost:8080"
)

type Config struct {
	APIURL      string
	Endpoint    string        // Path to hit, e.g. /cards
	Method      string        // HTTP method
	Body        string        // Request body for POST/PUT
	Requests    int           // Total number of requests
	Concurrency int           // Number of concurrent workers
	Timeout     time.Duration // Per-request timeout
	OutputFile  string        // Output markdown file path (optional)
	Debug       bool
}

// RequestResult holds the outcome of a single request
type RequestResult struct {
	StatusCode int
	Latency    time.Duration
	Err        error
}

// RunStats aggregates the outcomes of a benchmark run
type RunStats struct {
	Endpoint      string
	Method        string
	Total         int
	Succeeded     int
	Failed        int
	StatusCounts  map[int]int
	Latencies     []time.Duration
	TotalDuration time.Duration
}

func parseFlags() *Config {
	cfg := &Config{}

	defaults := &BenchmarkConfig{APIURL: defaultAPIURL}
	if loaded, err := LoadConfig(GetDefaultConfigPath()); err == nil && loaded.APIURL != "" {
		defaults = loaded
	}

	flag.StringVar(&cfg.APIURL, "url", defaults.APIURL, "Base URL of the API server")
	flag.StringVar(&cfg.Endpoint, "endpoint", "/cards", "Endpoint path to benchmark")
	flag.StringVar(&cfg.Method, "method", http.MethodGet, "HTTP method")
	flag.StringVar(&cfg.Body, "body", "", "Request body (JSON) for POST/PUT requests")
	flag.IntVar(&cfg.Requests, "requests", 1000, "Total number of requests")
	flag.IntVar(&cfg.Concurrency, "concurrency", 10, "Number of concurrent workers")
	flag.DurationVar(&cfg.Timeout, "timeout", 10*time.Second, "Per-request timeout")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Print every request outcome")
	flag.Parse()

	return cfg
}

func main() {
	cfg := parseFlags()

	if cfg.Requests <= 0 || cfg.Concurrency <= 0 {
		fmt.Println("Error: requests and concurrency must be positive")
		flag.Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	fmt.Printf("Benchmarking %s %s%s\n", cfg.Method, cfg.APIURL, cfg.Endpoint)
	fmt.Printf("Requests: %d, concurrency: %d, timeout: %s\n\n", cfg.Requests, cfg.Concurrency, cfg.Timeout)

	stats, err := runBenchmark(ctx, cfg)
	if err != nil {
		fmt.Printf("Error running benchmark: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("BENCHMARK RESULTS")
	fmt.Println(strings.Repeat("=", 80))
	printRunStats(stats)

	// Write to markdown file if specified
	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, stats); err != nil {
			fmt.Printf("\n⚠️  Warning: Failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\n✓ Report written to: %s\n", cfg.OutputFile)
		}
	}

	if stats.Failed > 0 {
		os.Exit(1)
	}
}

// runBenchmark fans the configured number of requests out over a worker pool
// and aggregates the results
func runBenchmark(ctx context.Context, cfg *Config) (*RunStats, error) {
	client := &http.Client{Timeout: cfg.Timeout}
	targetURL := strings.TrimRight(cfg.APIURL, "/") + cfg.Endpoint

	jobs := make(chan int)
	results := make(chan RequestResult, cfg.Requests)

	var wg sync.WaitGroup
	for w := 0; w < cfg.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				results <- doRequest(ctx, client, cfg, targetURL)
			}
		}()
	}

	start := time.Now()

	go func() {
		defer close(jobs)
		for i := 0; i < cfg.Requests; i++ {
			select {
			case <-ctx.Done():
				return
			case jobs <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	stats := &RunStats{
		Endpoint:     cfg.Endpoint,
		Method:       cfg.Method,
		StatusCounts: make(map[int]int),
	}

	completed := 0
	for result := range results {
		completed++
		stats.Total++

		if result.Err != nil {
			stats.Failed++
			if cfg.Debug {
				fmt.Printf("request %d: error: %v\n", completed, result.Err)
			}
			continue
		}

		stats.StatusCounts[result.StatusCode]++
		stats.Latencies = append(stats.Latencies, result.Latency)
		if result.StatusCode >= 200 && result.StatusCode < 400 {
			stats.Succeeded++
		} else {
			stats.Failed++
		}

		if cfg.Debug {
			fmt.Printf("request %d: %d in %s\n", completed, result.StatusCode, formatDuration(result.Latency))
		} else if completed%100 == 0 {
			fmt.Printf("\r⏳ %d/%d requests", completed, cfg.Requests)
		}
	}
	fmt.Printf("\r")

	stats.TotalDuration = time.Since(start)
	sortLatencies(stats.Latencies)
	return stats, nil
}

// doRequest issues one request and records its latency
func doRequest(ctx context.Context, client *http.Client, cfg *Config, targetURL string) RequestResult {
	var body io.Reader
	if cfg.Body != "" {
		body = strings.NewReader(cfg.Body)
	}

	req, err := http.NewRequestWithContext(ctx, cfg.Method, targetURL, body)
	if err != nil {
		return RequestResult{Err: err}
	}
	if cfg.Body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	latency := time.Since(start)
	if err != nil {
		return RequestResult{Err: err, Latency: latency}
	}
	defer resp.Body.Close()

	// Drain the body so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	return RequestResult{StatusCode: resp.StatusCode, Latency: latency}
}

// printRunStats prints the aggregated statistics to stdout
func printRunStats(stats *RunStats) {
	fmt.Printf("\n%s %s %s\n", statusEmoji(stats.Succeeded, stats.Failed, 0), stats.Method, stats.Endpoint)
	fmt.Printf("  Total requests:  %d\n", stats.Total)
	fmt.Printf("  Succeeded:       %d (%s)\n", stats.Succeeded, percentageString(stats.Succeeded, stats.Total))
	fmt.Printf("  Failed:          %d (%s)\n", stats.Failed, percentageString(stats.Failed, stats.Total))
	fmt.Printf("  Duration:        %s\n", formatDuration(stats.TotalDuration))
	fmt.Printf("  Throughput:      %s\n", formatRate(stats.Total, stats.TotalDuration))

	if len(stats.Latencies) > 0 {
		fmt.Printf("\n  Latency:\n")
		fmt.Printf("    min:  %s\n", formatDuration(stats.Latencies[0]))
		fmt.Printf("    p50:  %s\n", formatDuration(percentile(stats.Latencies, 50)))
		fmt.Printf("    p90:  %s\n", formatDuration(percentile(stats.Latencies, 90)))
		fmt.Printf("    p99:  %s\n", formatDuration(percentile(stats.Latencies, 99)))
		fmt.Printf("    max:  %s\n", formatDuration(stats.Latencies[len(stats.Latencies)-1]))
	}

	if len(stats.StatusCounts) > 0 {
		fmt.Printf("\n  Status codes:\n")
		for code, count := range stats.StatusCounts {
			fmt.Printf("    %d: %d (%s)\n", code, count, percentageString(count, stats.Total))
		}
	}
}

// writeMarkdownReport writes the statistics as a markdown table
func writeMarkdownReport(path string, stats *RunStats) error {
	var sb strings.Builder

	sb.WriteString("# Benchmark Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Endpoint: `%s %s`\n\n", stats.Method, stats.Endpoint))

	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Total requests | %d |\n", stats.Total))
	sb.WriteString(fmt.Sprintf("| Succeeded | %d (%s) |\n", stats.Succeeded, percentageString(stats.Succeeded, stats.Total)))
	sb.WriteString(fmt.Sprintf("| Failed | %d (%s) |\n", stats.Failed, percentageString(stats.Failed, stats.Total)))
	sb.WriteString(fmt.Sprintf("| Duration | %s |\n", formatDuration(stats.TotalDuration)))
	sb.WriteString(fmt.Sprintf("| Throughput | %s |\n", formatRate(stats.Total, stats.TotalDuration)))

	if len(stats.Latencies) > 0 {
		sb.WriteString("\n## Latency\n\n")
		sb.WriteString("| Percentile | Latency |\n")
		sb.WriteString("|------------|--------|\n")
		sb.WriteString(fmt.Sprintf("| min | %s |\n", formatDuration(stats.Latencies[0])))
		sb.WriteString(fmt.Sprintf("| p50 | %s |\n", formatDuration(percentile(stats.Latencies, 50))))
		sb.WriteString(fmt.Sprintf("| p90 | %s |\n", formatDuration(percentile(stats.Latencies, 90))))
		sb.WriteString(fmt.Sprintf("| p99 | %s |\n", formatDuration(percentile(stats.Latencies, 99))))
		sb.WriteString(fmt.Sprintf("| max | %s |\n", formatDuration(stats.Latencies[len(stats.Latencies)-1])))
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}
