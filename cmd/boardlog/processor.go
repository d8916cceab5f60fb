// processor.go - Token processing against a board state
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// undoToken removes the most recent move.
const undoToken = "undo"

// Processor feeds move tokens from one or more sources into a board state.
type Processor struct {
	cfg   *config.Config
	state *engine.BoardState

	applied int
	undone  int
	ignored int
	sources int
}

// NewProcessor creates a processor starting from the initial position.
func NewProcessor(cfg *config.Config) *Processor {
	return &Processor{
		cfg:   cfg,
		state: engine.NewBoardState(),
	}
}

// State returns the state built so far.
func (p *Processor) State() *engine.BoardState {
	return p.state
}

// Reset starts again from the initial position. Counters are kept.
func (p *Processor) Reset() {
	p.state = engine.NewBoardState()
}

// ProcessReader reads tokens line by line. name labels errors and
// diagnostics. Processing stops at the first bad token; moves before it
// stay applied.
func (p *Processor) ProcessReader(r io.Reader, name string) error {
	p.sources++

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := p.processLine(scanner.Text(), name, lineNo); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	return nil
}

// processLine handles one line of input. Everything after '#' is a comment.
func (p *Processor) processLine(line, name string, lineNo int) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	for _, tok := range strings.Fields(line) {
		if err := p.processToken(tok, name, lineNo); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) processToken(tok, name string, lineNo int) error {
	if isMoveNumber(tok) {
		return nil
	}

	if strings.EqualFold(tok, undoToken) {
		return p.undo(tok, name, lineNo)
	}

	ply := p.state.Len() + 1
	m, err := p.state.ApplyNotation(tok)
	if err != nil {
		return &errors.MoveError{Err: err, Ply: ply, MoveText: tok, File: name, Line: lineNo}
	}
	p.applied++

	if p.cfg.Verbosity > 1 {
		fmt.Fprintf(p.cfg.LogFile, "%s:%d: ply %d %s %s\n", name, lineNo, ply, m.Moved(), m.Notation())
	}
	return nil
}

func (p *Processor) undo(tok, name string, lineNo int) error {
	m, ok := p.state.Undo()
	if !ok {
		if p.cfg.StrictUndo {
			return &errors.MoveError{Err: errors.ErrNothingToUndo, MoveText: tok, File: name, Line: lineNo}
		}
		p.ignored++
		if p.cfg.Verbosity > 0 {
			fmt.Fprintf(p.cfg.LogFile, "%s:%d: undo with an empty move log ignored\n", name, lineNo)
		}
		return nil
	}
	p.undone++

	if p.cfg.Verbosity > 1 {
		fmt.Fprintf(p.cfg.LogFile, "%s:%d: undo %s\n", name, lineNo, m.Notation())
	}
	return nil
}

// isMoveNumber reports whether tok is a move number such as "12.", so
// the text output can be read back in.
func isMoveNumber(tok string) bool {
	digits := strings.TrimRight(tok, ".")
	if digits == tok || digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// reportStatistics writes the run summary to the log file.
func (p *Processor) reportStatistics() {
	fmt.Fprintf(p.cfg.LogFile, "%d move(s) applied, %d undone", p.applied, p.undone)
	if p.ignored > 0 {
		fmt.Fprintf(p.cfg.LogFile, ", %d empty undo(s) ignored", p.ignored)
	}
	fmt.Fprintf(p.cfg.LogFile, " from %d source(s).\n", p.sources)
}
