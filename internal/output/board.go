package output

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/assets"
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// BoardOptions controls how WriteBoard draws a position.
type BoardOptions struct {
	// Coordinates adds rank numbers on the left and files underneath.
	Coordinates bool

	// Highlight marks the empty destinations of the selected piece with '*'.
	Highlight bool
}

// Glyphs used for empty and highlighted squares.
const (
	emptySquare  = "."
	targetSquare = "*"
)

// WriteBoard draws b from white's side, rank 8 at the top, followed by a
// line naming the side to move.
func WriteBoard(w io.Writer, b *chess.Board, reg *assets.Registry, opts BoardOptions) error {
	var targets []chess.Square
	if sel := b.Selected(); opts.Highlight && sel != nil {
		targets = sel.ValidMoves(b)
	}

	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		if opts.Coordinates {
			fmt.Fprintf(&sb, "%d ", chess.BoardSize-row)
		}
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sq := chess.Sq(row, col)
			p := b.PieceAt(sq)
			switch {
			case p != nil:
				sb.WriteString(reg.Glyph(p.Colour, p.Type))
			case slices.Contains(targets, sq):
				sb.WriteString(targetSquare)
			default:
				sb.WriteString(emptySquare)
			}
		}
		sb.WriteByte('\n')
	}
	if opts.Coordinates {
		sb.WriteString("  a b c d e f g h\n")
	}
	fmt.Fprintf(&sb, "Turn: %s\n", b.CurrentPlayer)

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteCaptured writes the captured pieces in capture order on one line.
func WriteCaptured(w io.Writer, b *chess.Board, ids []chess.PieceID, reg *assets.Registry) error {
	glyphs := make([]string, 0, len(ids))
	for _, id := range ids {
		if p := b.Piece(id); p != nil {
			glyphs = append(glyphs, reg.Glyph(p.Colour, p.Type))
		}
	}
	_, err := fmt.Fprintf(w, "Captured: %s\n", strings.Join(glyphs, " "))
	return err
}
