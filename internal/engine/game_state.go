package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate reports whether colour is checkmated. Like IsInCheck it is a
// stub and always returns false.
func IsCheckmate(b *chess.Board, colour chess.Colour) bool {
	return IsInCheck(b, colour) && !hasAnyMove(b, colour)
}

// IsStalemate reports whether colour is stalemated. It always returns false
// because it needs check detection to tell stalemate from checkmate.
func IsStalemate(b *chess.Board, colour chess.Colour) bool {
	return false
}

// hasAnyMove reports whether colour has at least one pseudo-legal move.
func hasAnyMove(b *chess.Board, colour chess.Colour) bool {
	for _, p := range b.Pieces(colour) {
		if len(p.ValidMoves(b)) > 0 {
			return true
		}
	}
	return false
}
