// Package hashing provides position hashing and duplicate detection for
// board states.
package hashing

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
)

// StateHash returns the Zobrist hash of the current position of s.
func StateHash(s *engine.BoardState) uint64 {
	b := s.Board()
	return Hash(&b, s.SideToMove())
}

// History returns the hash of the position before the first move and
// after every move of the log, computed incrementally.
func History(s *engine.BoardState) []uint64 {
	start := chess.StandardBoard()
	h := Hash(start, chess.White)

	log := s.MoveLog()
	hashes := make([]uint64, 0, len(log)+1)
	hashes = append(hashes, h)
	for _, m := range log {
		h = Update(h, m)
		hashes = append(hashes, h)
	}
	return hashes
}

// DuplicateDetector tracks the final positions of states already seen.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]Signature
	// useExactMatch also requires the same number of plies
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// Signature identifies the final position of a state.
type Signature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// PlyCount is the length of the move log
	PlyCount int
	// Placement is the FEN placement, guarding against hash collisions
	Placement string
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]Signature),
		useExactMatch: exactMatch,
	}
}

// SignatureOf builds the signature of a state's current position.
func SignatureOf(s *engine.BoardState) Signature {
	b := s.Board()
	return Signature{
		Hash:      Hash(&b, s.SideToMove()),
		PlyCount:  s.Len(),
		Placement: b.Placement(),
	}
}

// CheckAndAdd checks if a state ends in a position already seen and
// records it. Returns true if the state is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(s *engine.BoardState) bool {
	sig := SignatureOf(s)

	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.Placement != b.Placement {
		return false
	}
	if d.useExactMatch && a.PlyCount != b.PlyCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
}
