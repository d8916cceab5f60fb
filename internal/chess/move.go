package chess

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Move is a single ply. It records the squares and a snapshot of the
// moved and captured pieces taken from the board when the move was built,
// so its contents stay valid after the board changes.
// Only NewMove and ParseMove build valid moves; the zero value is not one.
type Move struct {
	from     Square
	to       Square
	moved    Piece
	captured Piece
	valid    bool
}

// NewMove creates a move from one square to another, reading the moved
// piece and the captured piece (possibly NoPiece) from b.
// No legality checking is performed.
func NewMove(from, to Square, b *Board) (Move, error) {
	if err := checkBounds(from); err != nil {
		return Move{}, err
	}
	if err := checkBounds(to); err != nil {
		return Move{}, err
	}
	return Move{
		from:     from,
		to:       to,
		moved:    b.At(from),
		captured: b.At(to),
		valid:    true,
	}, nil
}

// ParseMove parses coordinate notation such as "e2e4" against b.
func ParseMove(text string, b *Board) (Move, error) {
	if len(text) != 4 {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidNotation)
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return Move{}, fmt.Errorf("%q: %w: %w", text, errors.ErrInvalidNotation, err)
	}
	to, err := ParseSquare(text[2:])
	if err != nil {
		return Move{}, fmt.Errorf("%q: %w: %w", text, errors.ErrInvalidNotation, err)
	}
	return NewMove(from, to, b)
}

// Valid reports whether m was built by NewMove or ParseMove.
func (m Move) Valid() bool { return m.valid }

// From returns the start square.
func (m Move) From() Square { return m.from }

// To returns the end square.
func (m Move) To() Square { return m.to }

// Moved returns the piece that stood on the start square.
func (m Move) Moved() Piece { return m.moved }

// Captured returns the piece that stood on the end square, or NoPiece.
func (m Move) Captured() Piece { return m.captured }

// IsCapture returns true if the end square was occupied.
func (m Move) IsCapture() bool {
	return !m.captured.IsEmpty()
}

// Notation returns the move in coordinate notation, start square then
// end square ("e2e4").
func (m Move) Notation() string {
	return m.from.String() + m.to.String()
}

// String implements fmt.Stringer.
func (m Move) String() string {
	return m.Notation()
}
