package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsPathClear reports whether every square strictly between start and end is
// empty, walking in unit steps along the direction from start to end. The
// squares must share a row, a column or a diagonal.
func IsPathClear(b *chess.Board, start, end chess.Square) bool {
	rowStep := sign(end.Row - start.Row)
	colStep := sign(end.Col - start.Col)

	sq := start.Add(rowStep, colStep)
	for sq != end {
		if !sq.InBounds() || !b.IsEmpty(sq) {
			return false
		}
		sq = sq.Add(rowStep, colStep)
	}
	return true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
