package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// canCastle checks the castling preconditions for a king moving two columns:
// neither king nor the corner rook has moved and the squares between them are
// empty. Attacked squares are not considered.
func canCastle(b *chess.Board, king *chess.Piece, start, end chess.Square) bool {
	if king.HasMoved {
		return false
	}

	rookCol := chess.QueensideRookCol
	if end.Col > start.Col {
		rookCol = chess.KingsideRookCol
	}
	rook := b.PieceAt(chess.Sq(start.Row, rookCol))
	if !rook.Is(king.Colour, chess.Rook) || rook.HasMoved {
		return false
	}

	step := sign(rookCol - start.Col)
	for col := start.Col + step; col != rookCol; col += step {
		if !b.IsEmpty(chess.Sq(start.Row, col)) {
			return false
		}
	}
	return true
}

// castleRook moves the rook of a castling king next to the king's new square
// and revokes both castling rights of the king's colour.
func castleRook(b *chess.Board, king *chess.Piece, start, end chess.Square) *chess.CastleInfo {
	info := &chess.CastleInfo{Kingside: end.Col > start.Col}
	if info.Kingside {
		info.RookStart = chess.Sq(start.Row, chess.KingsideRookCol)
		info.RookEnd = chess.Sq(start.Row, chess.KingsideRookTo)
	} else {
		info.RookStart = chess.Sq(start.Row, chess.QueensideRookCol)
		info.RookEnd = chess.Sq(start.Row, chess.QueensideRookTo)
	}

	if rook := b.Remove(info.RookStart); rook != nil {
		b.Put(info.RookEnd, rook)
		rook.HasMoved = true
	}
	b.Castling.Clear(king.Colour)
	return info
}

// updateCastlingRights revokes rights after a king move, a rook leaving its
// corner, or a capture on a rook corner.
func updateCastlingRights(b *chess.Board, piece *chess.Piece, start chess.Square, info chess.MoveInfo) {
	if piece.Type == chess.King {
		b.Castling.Clear(piece.Colour)
	}
	if piece.Type == chess.Rook {
		if colour, kingside, ok := chess.RookCorner(start); ok {
			b.Castling.Revoke(colour, kingside)
		}
	}
	if info.IsCapture() {
		if colour, kingside, ok := chess.RookCorner(info.CapturedSquare); ok {
			b.Castling.Revoke(colour, kingside)
		}
	}
}
