// Package engine holds the mutable game record that sits on top of the
// chess value types: the board, whose turn it is and the move log.
//
// BoardState trusts its caller. It performs no legality checking of any
// kind; a rules layer is expected to decide which moves to apply.
// It is not safe for concurrent use.
package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// BoardState owns the board contents, the side-to-move flag and the
// ordered history of applied moves.
//
// Replaying the move log from the starting position with Apply always
// reproduces the current board, and the log length always equals the
// number of side-to-move toggles since the start.
type BoardState struct {
	board       chess.Board
	whiteToMove bool
	moveLog     []chess.Move
}

// NewBoardState creates a state holding the standard starting position
// with white to move and an empty move log.
func NewBoardState() *BoardState {
	return &BoardState{
		board:       *chess.StandardBoard(),
		whiteToMove: true,
	}
}

// Apply executes m: the start square is emptied, the end square receives
// m.Moved(), m is appended to the log and the side to move flips.
// Off-board squares are rejected when the move is built by chess.NewMove.
// A Move not built that way (such as the zero value) is ignored and Apply
// returns false.
func (s *BoardState) Apply(m chess.Move) bool {
	if !m.Valid() {
		return false
	}
	from, to := m.From(), m.To()
	s.board[from.Row][from.Col] = chess.NoPiece
	s.board[to.Row][to.Col] = m.Moved()
	s.moveLog = append(s.moveLog, m)
	s.whiteToMove = !s.whiteToMove
	return true
}

// Undo takes back the most recent move, restoring the moved piece to its
// start square and the captured piece (possibly NoPiece) to the end square.
// It returns the move that was undone. With an empty log Undo does nothing
// and returns false.
func (s *BoardState) Undo() (chess.Move, bool) {
	n := len(s.moveLog)
	if n == 0 {
		return chess.Move{}, false
	}

	m := s.moveLog[n-1]
	s.moveLog = s.moveLog[:n-1]

	from, to := m.From(), m.To()
	s.board[from.Row][from.Col] = m.Moved()
	s.board[to.Row][to.Col] = m.Captured()
	s.whiteToMove = !s.whiteToMove
	return m, true
}

// Board returns a copy of the current board.
func (s *BoardState) Board() chess.Board {
	return s.board
}

// At returns the piece on sq, or NoPiece if sq is off the board.
func (s *BoardState) At(sq chess.Square) chess.Piece {
	return s.board.At(sq)
}

// WhiteToMove reports whether white moves next.
func (s *BoardState) WhiteToMove() bool {
	return s.whiteToMove
}

// SideToMove returns the colour that moves next.
func (s *BoardState) SideToMove() chess.Colour {
	if s.whiteToMove {
		return chess.White
	}
	return chess.Black
}

// MoveLog returns a copy of the applied moves, oldest first.
func (s *BoardState) MoveLog() []chess.Move {
	log := make([]chess.Move, len(s.moveLog))
	copy(log, s.moveLog)
	return log
}

// Len returns the number of moves in the log.
func (s *BoardState) Len() int {
	return len(s.moveLog)
}

// LastMove returns the most recent move, if any.
func (s *BoardState) LastMove() (chess.Move, bool) {
	if len(s.moveLog) == 0 {
		return chess.Move{}, false
	}
	return s.moveLog[len(s.moveLog)-1], true
}

// Clone returns an independent copy of the state.
func (s *BoardState) Clone() *BoardState {
	return &BoardState{
		board:       s.board,
		whiteToMove: s.whiteToMove,
		moveLog:     s.MoveLog(),
	}
}

// Equal reports whether two states have the same board, side to move and
// move log.
func (s *BoardState) Equal(other *BoardState) bool {
	if s.board != other.board || s.whiteToMove != other.whiteToMove {
		return false
	}
	if len(s.moveLog) != len(other.moveLog) {
		return false
	}
	for i := range s.moveLog {
		if s.moveLog[i] != other.moveLog[i] {
			return false
		}
	}
	return true
}
