package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isValidPawnMove checks single and double pushes and diagonal captures,
// including captures onto the board's en passant square. The pawn taken en
// passant is resolved by MovePiece.
func isValidPawnMove(b *chess.Board, pawn *chess.Piece, start, end chess.Square) bool {
	dir := pawn.Colour.Forward()

	// Movement forward
	if start.Col == end.Col {
		if end.Row == start.Row+dir && b.IsEmpty(end) {
			return true
		}
		if start.Row == pawn.Colour.PawnRow() && end.Row == start.Row+2*dir {
			return b.IsEmpty(start.Add(dir, 0)) && b.IsEmpty(end)
		}
		return false
	}

	// Capturing diagonally
	if abs(start.Col-end.Col) == 1 && end.Row == start.Row+dir {
		if target := b.PieceAt(end); target != nil && target.Colour != pawn.Colour {
			return true
		}
		return b.EnPassant.Is(end)
	}
	return false
}

// EnPassantVictim returns the square of the pawn captured when a pawn of the
// given colour lands on the en passant square end: one rank behind it.
func EnPassantVictim(mover chess.Colour, end chess.Square) chess.Square {
	return end.Add(-mover.Forward(), 0)
}

// promoteIfDue turns a pawn on its promotion row into a queen.
func promoteIfDue(pawn *chess.Piece) bool {
	if pawn.Type != chess.Pawn || pawn.Position.Row != pawn.Colour.PromotionRow() {
		return false
	}
	pawn.Type = chess.Queen
	logger().Debug("pawn promoted", "colour", pawn.Colour, "square", pawn.Position, "to", pawn.Type)
	return true
}

// updateEnPassant sets the en passant square after a double pawn push and
// clears it after any other move.
func updateEnPassant(b *chess.Board, piece *chess.Piece, start, end chess.Square) {
	b.EnPassant = chess.EnPassantTarget{}
	if piece.Type == chess.Pawn && abs(end.Row-start.Row) == 2 {
		b.EnPassant = chess.EnPassantTarget{
			Active: true,
			Square: chess.Sq((start.Row+end.Row)/2, start.Col),
		}
	}
}
