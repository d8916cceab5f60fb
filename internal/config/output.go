package config

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// MinLineLength is the narrowest move list that can hold one numbered move pair.
const MinLineLength = 16

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text or JSON output
	Format OutputFormat

	// MaxLineLength wraps the move list; 0 disables wrapping
	MaxLineLength uint

	// ShowMoves includes the move list
	ShowMoves bool

	// KeepMoveNumbers prefixes each white move with its move number
	KeepMoveNumbers bool

	// ShowBoard includes a board diagram
	ShowBoard bool

	// ShowPlacement includes the FEN piece-placement field
	ShowPlacement bool

	// Colour renders the board diagram with ANSI colours
	Colour bool

	// ShowHash includes the Zobrist hash of the position
	ShowHash bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          Text,
		MaxLineLength:   80,
		ShowMoves:       true,
		KeepMoveNumbers: true,
		ShowBoard:       true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength != 0 && o.MaxLineLength < MinLineLength {
		return fmt.Errorf("line length %d below minimum %d: %w",
			o.MaxLineLength, MinLineLength, errors.ErrInvalidConfig)
	}
	if o.Format != Text && o.Format != JSON {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
