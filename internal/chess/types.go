// Package chess provides the value types of the board layer: colours,
// pieces, squares, the 8x8 board and the immutable move record.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind is the type of a piece, independent of its colour.
type Kind int

const (
	NoKind Kind = iota // No piece
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the name of the kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single uppercase letter of the kind.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is the content of a square: either NoPiece or a (colour, kind) pair.
// The kind lives in the upper bits and the colour in bit 0.
type Piece uint8

// NoPiece is the empty square.
const NoPiece Piece = 0

const pieceShift = 1

// MakePiece creates a coloured piece. Any kind outside Pawn..King yields NoPiece.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind <= NoKind || kind >= NumKinds {
		return NoPiece
	}
	return Piece(int(kind)<<pieceShift | int(colour&1))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// Kind extracts the kind; NoKind for an empty square.
func (p Piece) Kind() Kind {
	return Kind(p >> pieceShift)
}

// Colour extracts the colour. Meaningless for NoPiece.
func (p Piece) Colour() Colour {
	return Colour(p & 1)
}

// IsEmpty reports whether p is the empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind() == NoKind
}

// FENChar returns the FEN letter of the piece: uppercase for white,
// lowercase for black, '.' for an empty square.
func (p Piece) FENChar() byte {
	if p.IsEmpty() {
		return '.'
	}
	c := p.Kind().Letter()
	if p.Colour() == Black {
		c += 'a' - 'A'
	}
	return c
}

// String returns the two-character code of the piece ("wN", "bp", "--").
// Pawns use a lowercase letter.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "--"
	}
	colour := byte('b')
	if p.Colour() == White {
		colour = 'w'
	}
	letter := p.Kind().Letter()
	if p.Kind() == Pawn {
		letter = 'p'
	}
	return string([]byte{colour, letter})
}

// PieceFromFEN converts a FEN letter to a piece. ok is false for any
// character that is not one of PNBRQK in either case.
func PieceFromFEN(c byte) (p Piece, ok bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	for k := Pawn; k < NumKinds; k++ {
		if k.Letter() == c {
			return MakePiece(colour, k), true
		}
	}
	return NoPiece, false
}

// BoardSize is the number of rows and columns on the board.
const BoardSize = 8
