package assets

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		name   string
		reg    *Registry
		colour chess.Colour
		piece  chess.PieceType
		want   string
	}{
		{"unicode white king", Unicode(), chess.White, chess.King, "♔"},
		{"unicode black pawn", Unicode(), chess.Black, chess.Pawn, "♟"},
		{"ascii white knight", ASCII(), chess.White, chess.Knight, "N"},
		{"ascii black queen", ASCII(), chess.Black, chess.Queen, "q"},
		{"empty registry", NewRegistry(nil), chess.White, chess.Rook, Placeholder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.reg.Glyph(tt.colour, tt.piece), tt.want)
		})
	}
}

func TestRegistry_SetAndMissing(t *testing.T) {
	r := ASCII()
	testutil.AssertEqual(t, len(r.Missing()), 0)

	r.Set(chess.Black, chess.King, "")
	r.Set(chess.White, chess.Pawn, "o")

	testutil.AssertEqual(t, r.Missing(), []string{"black_king"})
	testutil.AssertEqual(t, r.Glyph(chess.Black, chess.King), Placeholder)
	testutil.AssertEqual(t, r.Glyph(chess.White, chess.Pawn), "o")

	// The built-in sets are not shared between registries.
	testutil.AssertEqual(t, ASCII().Glyph(chess.White, chess.Pawn), "P")
}

func TestKey(t *testing.T) {
	testutil.AssertEqual(t, Key(chess.White, chess.Knight), "white_knight")
	testutil.AssertEqual(t, Key(chess.Black, chess.Bishop), "black_bishop")
}
