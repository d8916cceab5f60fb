package testutil

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
)

// MustState returns a fresh state with the given coordinate moves applied.
// It calls t.Fatal if any move cannot be applied.
func MustState(t *testing.T, moves ...string) *engine.BoardState {
	t.Helper()
	s := engine.NewBoardState()
	for i, text := range moves {
		if _, err := s.ApplyNotation(text); err != nil {
			t.Fatalf("ply %d %q: %v", i+1, text, err)
		}
	}
	return s
}

// MustSquare parses an algebraic square name, calling t.Fatal on failure.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// MustPlacement parses a FEN piece-placement field, calling t.Fatal on failure.
func MustPlacement(t *testing.T, placement string) chess.Board {
	t.Helper()
	b, err := chess.ParsePlacement(placement)
	if err != nil {
		t.Fatalf("ParsePlacement(%q): %v", placement, err)
	}
	return *b
}
