package game

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CastleRecord is the rook half of a castling move.
type CastleRecord struct {
	Rook         chess.PieceID
	Kingside     bool
	RookStart    chess.Square
	RookEnd      chess.Square
	RookHadMoved bool
}

// PromotionRecord notes a type change of the mover.
type PromotionRecord struct {
	From chess.PieceType
	To   chess.PieceType
}

// Record is one history entry: everything needed to take a move back.
type Record struct {
	Start chess.Square
	End   chess.Square

	// The mover and its state before the move.
	Piece        chess.PieceID
	Colour       chess.Colour
	PrevType     chess.PieceType
	PrevHasMoved bool

	// Occupant stood on End before the move. Captured is the piece the board
	// reports as taken; it differs from Occupant only for en passant.
	Occupant       chess.PieceID
	Captured       chess.PieceID
	CapturedSquare chess.Square

	PrevEnPassant chess.EnPassantTarget
	PrevCastling  chess.CastlingRights
	PrevHalfmove  int
	PrevFullmove  int

	Castle    *CastleRecord
	Promotion *PromotionRecord

	// Rivals are the other pieces of the mover's type that could also have
	// reached End. SAN uses them to disambiguate.
	Rivals []chess.Square
}

// IsCapture reports whether the move took a piece.
func (r Record) IsCapture() bool {
	return r.Captured != chess.NoPiece
}

// IsEnPassant reports whether the captured piece stood off the destination.
func (r Record) IsEnPassant() bool {
	return r.IsCapture() && r.CapturedSquare != r.End
}

// MoveInfo rebuilds the board's last-move metadata for this record.
func (r Record) MoveInfo() chess.MoveInfo {
	info := chess.MoveInfo{
		Piece:          r.Piece,
		Start:          r.Start,
		End:            r.End,
		Captured:       r.Captured,
		CapturedSquare: r.CapturedSquare,
		Promoted:       r.Promotion != nil,
	}
	if r.Castle != nil {
		info.Castle = &chess.CastleInfo{
			Kingside:  r.Castle.Kingside,
			RookStart: r.Castle.RookStart,
			RookEnd:   r.Castle.RookEnd,
		}
	}
	return info
}
