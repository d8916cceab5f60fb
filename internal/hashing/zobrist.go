package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// numPieceCodes covers every Piece value: kind<<1 | colour.
const numPieceCodes = int(chess.NumKinds) << 1

var (
	zobristPiece [numPieceCodes][chess.BoardSize * chess.BoardSize]uint64
	zobristSide  uint64 // XORed in when black is to move
)

func init() {
	// Fixed seed so hashes are stable between runs.
	rnd := rand.New(rand.NewSource(0xC0DE))
	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	zobristSide = rnd.Uint64()
}

func pieceKey(p chess.Piece, sq chess.Square) uint64 {
	if p.IsEmpty() {
		return 0
	}
	return zobristPiece[p][sq.Row*chess.BoardSize+sq.Col]
}

// Hash computes the Zobrist hash of a board with the given side to move.
func Hash(b *chess.Board, toMove chess.Colour) uint64 {
	var key uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			key ^= pieceKey(b[row][col], chess.Sq(row, col))
		}
	}
	if toMove == chess.Black {
		key ^= zobristSide
	}
	return key
}

// Update returns the hash after m is applied to a position hashing to h.
// Applying Update twice with the same move gives back h, so it also
// reverses an undo. Invalid moves leave h unchanged, as Apply ignores them.
func Update(h uint64, m chess.Move) uint64 {
	if !m.Valid() {
		return h
	}
	if m.From() == m.To() {
		return h ^ zobristSide
	}
	h ^= pieceKey(m.Moved(), m.From())
	h ^= pieceKey(m.Captured(), m.To())
	h ^= pieceKey(m.Moved(), m.To())
	return h ^ zobristSide
}
