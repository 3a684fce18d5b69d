package testathletes

import (
	"fmt"
	"os"

	"github.com/okian/sportfit/pkg/logger"
)

// SetupLogging initializes the logger, at debug level when verbose.
func SetupLogging(verbose bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the athlete test tool.
func ShowHelp() {
	os.Stdout.WriteString(`Sport-Fit Athlete Test Tool
===========================

Generates synthetic athletes, submits their fitness-test percentiles to the
recommendation service concurrently and verifies every ranked list.

Usage:
  go run ./cmd/test-athletes [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -athletes int
        Number of synthetic athletes to score (default 1000)
  -workers int
        Number of concurrent submitters (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 10s)
  -seed int
        Seed for the percentile generator (default 1)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Test with default settings
  go run ./cmd/test-athletes

  # Larger run against another port
  go run ./cmd/test-athletes -athletes 20000 -workers 32 -url http://localhost:8080
`)
}
