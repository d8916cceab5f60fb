// Package output renders a board state as text or JSON.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/hashing"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. A maxLineLength of zero or
// less disables wrapping.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.maxLineLength > 0 && o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputState writes a state in text form: move list, board diagram,
// placement, hash and side to move, each section controlled by cfg.Output.
func OutputState(s *engine.BoardState, cfg *config.Config, w io.Writer) {
	if cfg.Output.ShowMoves && s.Len() > 0 {
		outputMoves(s.Notations(), cfg, w)
	}

	board := s.Board()
	if cfg.Output.ShowBoard {
		RenderBoard(w, &board, cfg.Output.Colour)
	}
	if cfg.Output.ShowPlacement {
		fmt.Fprintf(w, "Placement: %s\n", board.Placement())
	}
	if cfg.Output.ShowHash {
		fmt.Fprintf(w, "Hash: %016x\n", hashing.Hash(&board, s.SideToMove()))
	}
	fmt.Fprintf(w, "%s to move\n", s.SideToMove())
}

// outputMoves writes the numbered move list, wrapped to the configured width.
func outputMoves(notations []string, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))
	for i, text := range notations {
		if i%2 == 0 && cfg.Output.KeepMoveNumbers {
			ow.Write(strconv.Itoa(i/2+1) + ".")
		}
		ow.Write(text)
	}
	ow.NewLine()
}

// RenderBoard draws the board with rank 8 at the top. White pieces are
// uppercase, black pieces lowercase and empty squares '.'. With colour
// set, squares are drawn with ANSI backgrounds regardless of the terminal.
func RenderBoard(w io.Writer, b *chess.Board, colour bool) {
	fmt.Fprintln(w, "  +------------------------+")
	for row := 0; row < chess.BoardSize; row++ {
		fmt.Fprintf(w, "%c |", chess.RowToRank(row))
		for col := 0; col < chess.BoardSize; col++ {
			p := b[row][col]
			cell := " " + string(p.FENChar()) + " "
			if colour {
				cell = styleSquare(row, col, p).Sprint(cell)
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w, "|")
	}
	fmt.Fprintln(w, "  +------------------------+")
	fmt.Fprint(w, "  ")
	for col := 0; col < chess.BoardSize; col++ {
		fmt.Fprintf(w, "  %c", chess.ColToFile(col))
	}
	fmt.Fprintln(w)
}

// styleSquare returns the colour for a square; a8 is a light square.
// White pieces are drawn bold.
func styleSquare(row, col int, p chess.Piece) *color.Color {
	bg := color.BgHiWhite
	if (row+col)%2 == 1 {
		bg = color.BgGreen
	}
	attrs := []color.Attribute{bg, color.FgBlack}
	if !p.IsEmpty() && p.Colour() == chess.White {
		attrs = append(attrs, color.Bold)
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c
}
