package engine

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// MoveFromSquares builds a move between two squares against the current board.
func (s *BoardState) MoveFromSquares(from, to chess.Square) (chess.Move, error) {
	return chess.NewMove(from, to, &s.board)
}

// ApplyNotation parses coordinate notation ("e2e4") against the current
// board and applies the resulting move. On error the state is unchanged.
func (s *BoardState) ApplyNotation(text string) (chess.Move, error) {
	m, err := chess.ParseMove(text, &s.board)
	if err != nil {
		return chess.Move{}, err
	}
	s.Apply(m)
	return m, nil
}

// Notations renders the move log in coordinate notation.
func (s *BoardState) Notations() []string {
	out := make([]string, len(s.moveLog))
	for i, m := range s.moveLog {
		out[i] = m.Notation()
	}
	return out
}

// Replay builds a state from the starting position by applying moves in
// order. The moves are applied as recorded; their snapshots are not
// re-read from the board.
func Replay(moves []chess.Move) *BoardState {
	s := NewBoardState()
	for _, m := range moves {
		s.Apply(m)
	}
	return s
}

// ReplayNotation builds a state from the starting position by applying
// each coordinate move in turn.
func ReplayNotation(moves ...string) (*BoardState, error) {
	s := NewBoardState()
	for i, text := range moves {
		if _, err := s.ApplyNotation(text); err != nil {
			return nil, fmt.Errorf("ply %d: %w", i+1, err)
		}
	}
	return s, nil
}
