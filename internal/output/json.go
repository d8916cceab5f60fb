package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/hashing"
)

// JSONState represents a board state in JSON format.
type JSONState struct {
	Source     string     `json:"source,omitempty"`
	Moves      []JSONMove `json:"moves"`
	PlyCount   int        `json:"plyCount"`
	SideToMove string     `json:"sideToMove"`
	Placement  string     `json:"placement"`
	Hash       string     `json:"hash"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply      int    `json:"ply"`
	Colour   string `json:"colour"` // side to move when the move was applied
	Notation string `json:"notation"`
	From     string `json:"from"`
	To       string `json:"to"`
	Piece    string `json:"piece"`
	Captured string `json:"captured,omitempty"`
}

// JSONOutput holds multiple states for array output.
type JSONOutput struct {
	States []*JSONState `json:"states"`
}

// StateToJSON converts a board state to JSON form.
func StateToJSON(s *engine.BoardState, source string) *JSONState {
	log := s.MoveLog()
	board := s.Board()
	js := &JSONState{
		Source:     source,
		Moves:      make([]JSONMove, len(log)),
		PlyCount:   len(log),
		SideToMove: colourName(s.SideToMove()),
		Placement:  board.Placement(),
		Hash:       fmt.Sprintf("%016x", hashing.Hash(&board, s.SideToMove())),
	}

	// The log always starts from the initial position, white to move.
	mover := chess.White
	for i, m := range log {
		jm := JSONMove{
			Ply:      i + 1,
			Colour:   colourName(mover),
			Notation: m.Notation(),
			From:     m.From().String(),
			To:       m.To().String(),
			Piece:    m.Moved().String(),
		}
		if m.IsCapture() {
			jm.Captured = m.Captured().String()
		}
		js.Moves[i] = jm
		mover = mover.Opposite()
	}
	return js
}

// OutputStateJSON writes a single state as indented JSON.
func OutputStateJSON(s *engine.BoardState, source string, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(StateToJSON(s, source))
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
