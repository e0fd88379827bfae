package processing

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// Resolve finds the origin and destination squares of a parsed move for
// colour on b. The move is not checked beyond what is needed to find a
// unique origin; the session makes the final decision.
func Resolve(b *chess.Board, colour chess.Colour, p notation.Parsed) (chess.Square, chess.Square, error) {
	// Pawns always promote to a queen.
	if p.Promotes && p.Promotion != chess.Queen {
		return chess.Square{}, chess.Square{}, fmt.Errorf("promotion to %s: %w", p.Promotion, errors.ErrUnsupported)
	}

	if p.Castle != notation.NoCastle {
		king := b.FindKing(colour)
		if king == nil {
			return chess.Square{}, chess.Square{}, fmt.Errorf("%s: no %s king: %w", p.Castle, colour, errors.ErrIllegalMove)
		}
		col := king.Position.Col + 2
		if p.Castle == notation.Queenside {
			col = king.Position.Col - 2
		}
		return king.Position, chess.Sq(king.Position.Row, col), nil
	}

	if p.HasStart() {
		return p.Start(), p.End, nil
	}

	hintCol := p.FromCol
	if p.Piece == chess.Pawn && !p.Capture {
		hintCol = p.End.Col
	}
	sources := engine.FindSources(b, colour, p.Piece, p.End, p.FromRow, hintCol)
	switch len(sources) {
	case 0:
		return chess.Square{}, chess.Square{}, fmt.Errorf("no %s %s can reach %s: %w", colour, p.Piece, p.End, errors.ErrIllegalMove)
	case 1:
		return sources[0], p.End, nil
	}
	return chess.Square{}, chess.Square{}, fmt.Errorf("%d %s pieces can reach %s: %w", len(sources), p.Piece, p.End, errors.ErrInvalidNotation)
}
