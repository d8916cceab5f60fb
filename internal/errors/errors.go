// Package errors provides sentinel errors and error types for chessboard-go.
// Sentinels are checked with errors.Is(); MoveError carries the ply and
// source location of a failing move and is extracted with errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrOutOfBounds indicates a row or column outside 0..7.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrInvalidSquare indicates a square name that is not a file a-h
	// followed by a rank 1-8.
	ErrInvalidSquare = errors.New("invalid square name")

	// ErrInvalidNotation indicates move text that is not of the form "e2e4".
	ErrInvalidNotation = errors.New("invalid move notation")

	// ErrInvalidPlacement indicates a malformed FEN piece-placement field.
	ErrInvalidPlacement = errors.New("invalid piece placement")

	// ErrNothingToUndo indicates an undo request against an empty move log.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps an error with the context of the move that caused it.
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply the move would have occupied (0 if unknown)
	MoveText string // The token that was being processed
	File     string // Source name (if known)
	Line     int    // Line number in source (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil && context == "":
		return "move error"
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
