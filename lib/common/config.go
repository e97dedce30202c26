package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Configuration struct
// --------------------------------------------------------------------------

// Config holds all configuration parameters of the lockey command line tool.
type Config struct {
	// Logging configuration
	LogLevel string

	// Session parameters
	Script  string // path of a script file, empty to read from stdin
	Metrics bool   // print the metrics of the session when it ends
	Prompt  bool   // print a prompt before reading each command

	// Benchmark parameters
	Threads    int
	Requesters int
	Iterations int
}

// DefaultConfig returns the configuration used when no flags or environment
// variables are set
func DefaultConfig() Config {
	return Config{
		LogLevel:   "info",
		Threads:    10,
		Requesters: 100,
		Iterations: 100_000,
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Threads < 1 {
		return fmt.Errorf("threads must be at least 1 (got %d)", c.Threads)
	}
	if c.Requesters < 1 {
		return fmt.Errorf("requesters must be at least 1 (got %d)", c.Requesters)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative (got %d)", c.Iterations)
	}
	return nil
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// Logging configuration
	addSection("Logging")
	addField("Log Level", c.LogLevel)

	// Session
	addSection("Session")
	script := c.Script
	if script == "" {
		script = "<stdin>"
	}
	addField("Script", script)
	addField("Print Metrics", strconv.FormatBool(c.Metrics))
	addField("Prompt", strconv.FormatBool(c.Prompt))

	// Benchmark
	addSection("Benchmark")
	addField("Threads", strconv.Itoa(c.Threads))
	addField("Requesters", strconv.Itoa(c.Requesters))
	addField("Iterations", strconv.Itoa(c.Iterations))

	return sb.String()
}
