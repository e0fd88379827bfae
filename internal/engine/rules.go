// Package engine decides move legality and applies moves to a chess.Board.
package engine

import (
	"log/slog"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func logger() *slog.Logger {
	return slog.Default().With("package", "engine")
}

// IsValidMove reports whether piece may move from start to end on b under its
// movement rules. The check is pseudo-legal: it never asks whether the mover's
// own king would be left in check.
func IsValidMove(b *chess.Board, piece *chess.Piece, start, end chess.Square) bool {
	if piece == nil || start == end || !end.InBounds() {
		return false
	}
	if target := b.PieceAt(end); target != nil && target.Colour == piece.Colour {
		return false // No capturing own pieces
	}

	switch piece.Type {
	case chess.Pawn:
		return isValidPawnMove(b, piece, start, end)
	case chess.Knight:
		return isValidKnightMove(start, end)
	case chess.Bishop:
		return isValidBishopMove(b, start, end)
	case chess.Rook:
		return isValidRookMove(b, start, end)
	case chess.Queen:
		return isValidQueenMove(b, start, end)
	case chess.King:
		return isValidKingMove(b, piece, start, end)
	}
	return false
}

func isValidKnightMove(start, end chess.Square) bool {
	rowDiff := abs(end.Row - start.Row)
	colDiff := abs(end.Col - start.Col)
	return (rowDiff == 2 && colDiff == 1) || (rowDiff == 1 && colDiff == 2)
}

func isValidBishopMove(b *chess.Board, start, end chess.Square) bool {
	if abs(end.Row-start.Row) != abs(end.Col-start.Col) {
		return false
	}
	return IsPathClear(b, start, end)
}

func isValidRookMove(b *chess.Board, start, end chess.Square) bool {
	if start.Row != end.Row && start.Col != end.Col {
		return false
	}
	return IsPathClear(b, start, end)
}

func isValidQueenMove(b *chess.Board, start, end chess.Square) bool {
	rowDiff := abs(end.Row - start.Row)
	colDiff := abs(end.Col - start.Col)
	if rowDiff != colDiff && rowDiff != 0 && colDiff != 0 {
		return false
	}
	return IsPathClear(b, start, end)
}

func isValidKingMove(b *chess.Board, king *chess.Piece, start, end chess.Square) bool {
	rowDiff := abs(end.Row - start.Row)
	colDiff := abs(end.Col - start.Col)
	if max(rowDiff, colDiff) == 1 {
		return true
	}
	if rowDiff == 0 && colDiff == 2 {
		return canCastle(b, king, start, end)
	}
	return false
}
