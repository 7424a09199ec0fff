package testpredictions

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/okian/revintel/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "test_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the prediction test tool.
func ShowHelp() {
	os.Stdout.WriteString(`Revintel Prediction Test Tool
=============================

A concurrent smoke-test tool for the revenue intelligence prediction service.
It scores every seeded lead, analyzes churn risk for every account, requests
conversion insights for all accounts (expecting refusals for non-trial plans),
then checks the prediction log and model health endpoints for consistency.

Usage:
  go run cmd/test-predictions/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -top int
        Number of top scored leads to display (default 10)
  -limit int
        Number of prediction log entries to query (default 50)
  -timeout duration
        HTTP request timeout (default 30s)
  -output string
        Output file for scored leads (default: scored_leads_TIMESTAMP.json)
  -log string
        Log file for test output (default: test_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Test with default settings
  go run cmd/test-predictions/main.go

  # Test against a different instance
  go run cmd/test-predictions/main.go -url http://localhost:8080 -workers 8

  # Test with verbose output and a custom log file
  go run cmd/test-predictions/main.go -verbose -log my_test.log
`)
}
