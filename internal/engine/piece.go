package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// FindSources returns every square holding a piece of the given colour and
// type that may legally move to end, in row-major order. A hint of -1 means
// the origin row or column is unconstrained; otherwise only pieces on that
// row or column are considered (SAN disambiguation such as "Nbd7").
func FindSources(b *chess.Board, colour chess.Colour, pt chess.PieceType, end chess.Square, hintRow, hintCol int) []chess.Square {
	var sources []chess.Square
	for _, p := range b.Pieces(colour) {
		if p.Type != pt {
			continue
		}

		// Check disambiguation
		if hintRow >= 0 && p.Position.Row != hintRow {
			continue
		}
		if hintCol >= 0 && p.Position.Col != hintCol {
			continue
		}

		if IsValidMove(b, p, p.Position, end) {
			sources = append(sources, p.Position)
		}
	}
	return sources
}

// FindSource is FindSources for callers that need exactly one origin.
// It reports false when no piece, or more than one, can make the move.
func FindSource(b *chess.Board, colour chess.Colour, pt chess.PieceType, end chess.Square, hintRow, hintCol int) (chess.Square, bool) {
	sources := FindSources(b, colour, pt, end, hintRow, hintCol)
	if len(sources) != 1 {
		return chess.Square{}, false
	}
	return sources[0], true
}
