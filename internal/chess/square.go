package chess

import (
	"fmt"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Square is a board coordinate. Row 0 is the black back rank and row 7
// the white back rank; column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether both coordinates are in 0..7.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// String returns the algebraic name of the square ("e4"), or "??" when
// the square is off the board.
func (s Square) String() string {
	if !s.InBounds() {
		return "??"
	}
	return string([]byte{ColToFile(s.Col), RowToRank(s.Row)})
}

// Lookup tables between board indices and algebraic characters.
// rankRows and fileCols are indexed by rank-'1' and file-'a' and are
// the exact inverses of rowRanks and colFiles.
var (
	rowRanks = [BoardSize]byte{'8', '7', '6', '5', '4', '3', '2', '1'}
	rankRows = [BoardSize]int{7, 6, 5, 4, 3, 2, 1, 0}
	colFiles = [BoardSize]byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'}
	fileCols = [BoardSize]int{0, 1, 2, 3, 4, 5, 6, 7}
)

// RowToRank returns the rank digit for a row, or 0 if row is out of range.
func RowToRank(row int) byte {
	if row < 0 || row >= BoardSize {
		return 0
	}
	return rowRanks[row]
}

// RankToRow returns the row for a rank digit '1'..'8'.
func RankToRow(rank byte) (int, bool) {
	if rank < '1' || rank > '8' {
		return 0, false
	}
	return rankRows[rank-'1'], true
}

// ColToFile returns the file letter for a column, or 0 if col is out of range.
func ColToFile(col int) byte {
	if col < 0 || col >= BoardSize {
		return 0
	}
	return colFiles[col]
}

// FileToCol returns the column for a file letter 'a'..'h'.
func FileToCol(file byte) (int, bool) {
	if file < 'a' || file > 'h' {
		return 0, false
	}
	return fileCols[file-'a'], true
}

// ParseSquare converts an algebraic square name such as "e2" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	col, okFile := FileToCol(name[0])
	row, okRank := RankToRow(name[1])
	if !okFile || !okRank {
		return Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return Square{Row: row, Col: col}, nil
}

// checkBounds returns an ErrOutOfBounds error naming the offending square.
func checkBounds(s Square) error {
	if s.InBounds() {
		return nil
	}
	return errors.Wrapf(errors.ErrOutOfBounds, "row %d col %d", s.Row, s.Col)
}
