package chess

import "fmt"

// PieceID identifies a piece in a board's arena. The zero value means no piece.
type PieceID int

// NoPiece is the empty PieceID.
const NoPiece PieceID = 0

// Piece is a single chess piece. Pieces are owned by the Board that created
// them and are mutated in place as they move, promote or get captured.
type Piece struct {
	ID       PieceID
	Type     PieceType
	Colour   Colour
	Position Square
	HasMoved bool
}

// String returns a short description such as "white knight@(7,6)".
func (p *Piece) String() string {
	if p == nil {
		return "<none>"
	}
	return fmt.Sprintf("%s %s@(%d,%d)", p.Colour, p.Type, p.Position.Row, p.Position.Col)
}

// Is reports whether the piece has the given colour and type.
func (p *Piece) Is(c Colour, t PieceType) bool {
	return p != nil && p.Colour == c && p.Type == t
}
