package chess

// CastleInfo describes the rook relocation of a castling move.
type CastleInfo struct {
	Kingside  bool
	RookStart Square
	RookEnd   Square
}

// MoveInfo is the metadata of a move that has been applied to a board.
type MoveInfo struct {
	// The piece that moved.
	Piece PieceID

	// Source and destination squares.
	Start Square
	End   Square

	// The piece captured (NoPiece if no capture) and the square it stood on.
	// For en passant the square differs from End.
	Captured       PieceID
	CapturedSquare Square

	// Rook relocation, nil unless the move was a castle.
	Castle *CastleInfo

	// Whether the mover was promoted on this move.
	Promoted bool
}

// IsCapture returns true if this move captured a piece.
func (m MoveInfo) IsCapture() bool {
	return m.Captured != NoPiece
}

// IsEnPassant returns true if the captured piece did not stand on the destination.
func (m MoveInfo) IsEnPassant() bool {
	return m.IsCapture() && m.CapturedSquare != m.End
}

// IsCastle returns true if this move was a castle.
func (m MoveInfo) IsCastle() bool {
	return m.Castle != nil
}
