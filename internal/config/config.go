// Package config provides configuration for the boardlog command.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// OutputFormat selects how the final state is written.
type OutputFormat int

const (
	Text OutputFormat = iota // Move list, board diagram and placement
	JSON                     // Single JSON document
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	// Diagnostics: 0=nothing, 1=summary, 2=every token
	Verbosity int

	// StrictUndo turns an undo against an empty move log into an error
	// instead of the default silent no-op.
	StrictUndo bool

	// EachSource writes one state per input source, starting each source
	// from the initial position. Otherwise all sources feed one state.
	EachSource bool

	// SuppressDuplicates skips states whose final position was already
	// written. Only meaningful with EachSource.
	SuppressDuplicates bool

	// Output formatting
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil {
		return fmt.Errorf("no output file: %w", errors.ErrInvalidConfig)
	}
	if c.LogFile == nil {
		return fmt.Errorf("no log file: %w", errors.ErrInvalidConfig)
	}
	if c.Output == nil {
		return fmt.Errorf("no output settings: %w", errors.ErrInvalidConfig)
	}
	return c.Output.Validate()
}
