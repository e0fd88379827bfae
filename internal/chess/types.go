// Package chess provides the core board and piece types of the rules engine.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta a pawn of this colour moves by.
// White starts on rows 6-7 and advances towards row 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PawnRow returns the row pawns of this colour start on.
func (c Colour) PawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

// BackRow returns the row the pieces of this colour start on.
func (c Colour) BackRow() int {
	if c == White {
		return 7
	}
	return 0
}

// PromotionRow returns the row on which a pawn of this colour promotes.
func (c Colour) PromotionRow() int {
	return c.Opposite().BackRow()
}

// PieceType is the closed set of chess piece kinds.
type PieceType int

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the lower-case name of a piece type.
func (p PieceType) String() string {
	names := []string{"pawn", "knight", "bishop", "rook", "queen", "king"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}

// Letter returns the SAN letter of a piece type (uppercase, empty for pawns).
func (p PieceType) Letter() string {
	letters := []string{"", "N", "B", "R", "Q", "K"}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return "?"
}

// PieceTypeFromLetter maps a SAN/FEN letter (either case) to a piece type.
func PieceTypeFromLetter(c byte) (PieceType, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return Pawn, false
}

// Board dimensions.
const (
	BoardSize = 8

	// Columns the rooks stand on before castling and land on after it.
	QueensideRookCol = 0
	KingsideRookCol  = BoardSize - 1
	QueensideRookTo  = 3
	KingsideRookTo   = 5
)

// Square is a (row, col) board coordinate. Row 0 is rank 8 and col 0 is file a.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// String returns the algebraic name of the square, such as "e4".
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte('a' + s.Col), byte('0' + BoardSize - s.Row)})
}

// ParseSquare converts an algebraic square name such as "e4" to a Square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return Square{}, false
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, false
	}
	return Square{Row: BoardSize - int(rank-'0'), Col: int(file - 'a')}, true
}

// InBounds reports whether the square lies on the 8x8 board.
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Add returns the square offset by the given deltas.
func (s Square) Add(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// EnPassantTarget is the square a pawn may capture onto en passant.
// It is only meaningful when Active is set.
type EnPassantTarget struct {
	Active bool
	Square Square
}

// Is reports whether sq is the active en passant square.
func (ep EnPassantTarget) Is(sq Square) bool {
	return ep.Active && ep.Square == sq
}

// CastlingRights holds the four independent castling flags.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns rights with every flag set.
func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

// Has reports whether the colour may still castle on the given side.
func (cr CastlingRights) Has(c Colour, kingside bool) bool {
	switch {
	case c == White && kingside:
		return cr.WhiteKingside
	case c == White:
		return cr.WhiteQueenside
	case kingside:
		return cr.BlackKingside
	default:
		return cr.BlackQueenside
	}
}

// Revoke clears the right for one colour and side.
func (cr *CastlingRights) Revoke(c Colour, kingside bool) {
	switch {
	case c == White && kingside:
		cr.WhiteKingside = false
	case c == White:
		cr.WhiteQueenside = false
	case kingside:
		cr.BlackKingside = false
	default:
		cr.BlackQueenside = false
	}
}

// Clear revokes both rights of a colour.
func (cr *CastlingRights) Clear(c Colour) {
	cr.Revoke(c, true)
	cr.Revoke(c, false)
}

// Any reports whether the colour keeps at least one castling right.
func (cr CastlingRights) Any(c Colour) bool {
	return cr.Has(c, true) || cr.Has(c, false)
}

// RookCorner reports which castling right, if any, belongs to a rook corner.
func RookCorner(sq Square) (colour Colour, kingside bool, ok bool) {
	switch sq {
	case Sq(White.BackRow(), KingsideRookCol):
		return White, true, true
	case Sq(White.BackRow(), QueensideRookCol):
		return White, false, true
	case Sq(Black.BackRow(), KingsideRookCol):
		return Black, true, true
	case Sq(Black.BackRow(), QueensideRookCol):
		return Black, false, true
	}
	return White, false, false
}
