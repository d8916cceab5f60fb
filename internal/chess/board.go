package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Board is an 8x8 grid of pieces indexed [row][col].
// Board is a plain array, so assignment copies it and == compares it.
type Board [BoardSize][BoardSize]Piece

// backRank is the order of pieces on each back rank, from the a-file.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// StandardBoard creates a board holding the standard starting position.
func StandardBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	for col := 0; col < BoardSize; col++ {
		b[0][col] = B(backRank[col])
		b[1][col] = B(Pawn)
		b[6][col] = W(Pawn)
		b[7][col] = W(backRank[col])
	}
}

// At returns the piece on sq, or NoPiece if sq is off the board.
func (b *Board) At(sq Square) Piece {
	if !sq.InBounds() {
		return NoPiece
	}
	return b[sq.Row][sq.Col]
}

// Set places a piece on sq. Setting an off-board square is a no-op.
func (b *Board) Set(sq Square, p Piece) {
	if sq.InBounds() {
		b[sq.Row][sq.Col] = p
	}
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for row := range b {
		for col := range b[row] {
			if !b[row][col].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Placement returns the FEN piece-placement field, rank 8 first.
func (b *Board) Placement() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < BoardSize; col++ {
			p := b[row][col]
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.FENChar())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

// ParsePlacement builds a board from a FEN piece-placement field.
// Any trailing FEN fields after the first space are ignored.
func ParsePlacement(placement string) (*Board, error) {
	if i := strings.IndexByte(placement, ' '); i >= 0 {
		placement = placement[:i]
	}
	ranks := strings.Split(placement, "/")
	if len(ranks) != BoardSize {
		return nil, fmt.Errorf("%d ranks: %w", len(ranks), errors.ErrInvalidPlacement)
	}

	b := NewBoard()
	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			p, ok := PieceFromFEN(c)
			if !ok {
				return nil, fmt.Errorf("unexpected %q in rank %c: %w", c, RowToRank(row), errors.ErrInvalidPlacement)
			}
			if col >= BoardSize {
				return nil, fmt.Errorf("rank %c is too long: %w", RowToRank(row), errors.ErrInvalidPlacement)
			}
			b[row][col] = p
			col++
		}
		if col != BoardSize {
			return nil, fmt.Errorf("rank %c has %d squares: %w", RowToRank(row), col, errors.ErrInvalidPlacement)
		}
	}
	return b, nil
}
