// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

var (
	// Input options
	inlineMoves = flag.String("m", "", "Moves given inline, whitespace separated (e.g. \"e2e4 e7e5 undo\")")
	eachSource  = flag.Bool("each", false, "Write a separate state for each input, each from the initial position")
	// Note: -A is handled before flag.Parse() in loadArgsFromFileIfSpecified
	_ = flag.String("A", "", "File containing command-line arguments (one per line, # for comments)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length of the move list (0 = no wrapping)")
	outputFormat = flag.String("format", "text", "Output format: text, json")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format (same as -format json)")

	// Content options
	showBoard     = flag.Bool("board", true, "Print the board diagram")
	colourBoard   = flag.Bool("colour", false, "Draw the board with ANSI colours")
	showPlacement = flag.Bool("fen", false, "Print the FEN piece-placement field")
	noMoves       = flag.Bool("nomoves", false, "Don't print the move list")
	noNumbers     = flag.Bool("nonumbers", false, "Don't print move numbers in the move list")
	showHash      = flag.Bool("hash", false, "Print the Zobrist hash of the position")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "With -each, skip inputs ending in a position already written")

	// Undo handling
	strictUndo = flag.Bool("strict", false, "Treat undo on an empty move log as an error")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Verbose diagnostics (log every token)")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no move list, no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyContentFlags(cfg); err != nil {
		return err
	}
	if err := applyOutputFormatFlags(cfg); err != nil {
		return err
	}

	cfg.StrictUndo = *strictUndo
	cfg.EachSource = *eachSource
	cfg.SuppressDuplicates = *suppressDuplicates

	switch {
	case *quiet:
		cfg.Verbosity = 0
		cfg.Output.ShowMoves = false
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyContentFlags configures what each written state contains.
func applyContentFlags(cfg *config.Config) error {
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.Colour = *colourBoard
	cfg.Output.ShowPlacement = *showPlacement
	cfg.Output.ShowMoves = !*noMoves
	cfg.Output.KeepMoveNumbers = !*noNumbers
	cfg.Output.ShowHash = *showHash
	if *lineLength < 0 {
		return fmt.Errorf("line length %d is negative: %w", *lineLength, errors.ErrInvalidConfig)
	}
	cfg.Output.MaxLineLength = uint(*lineLength)
	return nil
}

// applyOutputFormatFlags configures the output format. -J wins over -format.
func applyOutputFormatFlags(cfg *config.Config) error {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
		return nil
	}
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	return nil
}
