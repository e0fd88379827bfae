package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MovePiece validates the move from start to end for the board's current
// player and, if it is legal, applies it with all of its side effects:
// captures (including en passant), promotion to queen, the castling rook,
// castling rights, the en passant square and the last-move record.
// It returns false without changing the board if the move is rejected.
// MovePiece does not switch turns; that is the game session's job.
func MovePiece(b *chess.Board, start, end chess.Square) bool {
	if !start.InBounds() || !end.InBounds() {
		return false
	}

	piece := b.PieceAt(start)
	if piece == nil || piece.Colour != b.CurrentPlayer {
		return false
	}
	if !IsValidMove(b, piece, start, end) {
		logger().Debug("move rejected", "piece", piece, "start", start, "end", end)
		return false
	}

	info := chess.MoveInfo{Piece: piece.ID, Start: start, End: end}
	target := b.PieceAt(end)

	// En passant: the captured pawn stands behind the landing square
	if target == nil && piece.Type == chess.Pawn && b.EnPassant.Is(end) {
		victimSq := EnPassantVictim(piece.Colour, end)
		if victim := b.PieceAt(victimSq); victim != nil && victim.Colour != piece.Colour {
			b.Remove(victimSq)
			b.AddCaptured(victim.ID)
			info.Captured = victim.ID
			info.CapturedSquare = victimSq
		}
	}

	if target != nil {
		b.Remove(end)
		b.AddCaptured(target.ID)
		info.Captured = target.ID
		info.CapturedSquare = end
	}

	b.Remove(start)
	b.Put(end, piece)
	piece.HasMoved = true

	info.Promoted = promoteIfDue(piece)

	if piece.Type == chess.King && abs(end.Col-start.Col) == 2 {
		info.Castle = castleRook(b, piece, start, end)
	}

	updateCastlingRights(b, piece, start, info)
	updateEnPassant(b, piece, start, end)

	b.SetLastMove(info)
	b.ClearSelection()
	return true
}
