package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/revintel/internal/testpredictions"
)

// Default configuration constants.
const (
	defaultTopN        = 10
	defaultLogLimit    = 50
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 30 * time.Second
	defaultTestTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:9080", "Base URL of the service")
		workers    = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		topN       = flag.Int("top", defaultTopN, "Number of top scored leads to display")
		logLimit   = flag.Int("limit", defaultLogLimit, "Number of prediction log entries to query")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		outputFile = flag.String("output", "", "Output file for scored leads (default: scored_leads_TIMESTAMP.json)")
		logFile    = flag.String("log", "", "Log file for test output (default: test_log_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		testpredictions.ShowHelp()
		return
	}

	// Setup logging
	if err := testpredictions.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	// Create test configuration
	config := &testpredictions.Config{
		BaseURL:    *baseURL,
		Workers:    *workers,
		TopN:       *topN,
		Timeout:    *timeout,
		LogLimit:   *logLimit,
		OutputFile: *outputFile,
		LogFile:    *logFile,
		Verbose:    *verbose,
	}

	// Run the test
	if err := testpredictions.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Test failed: " + err.Error() + "\n")
		return
	}
}
