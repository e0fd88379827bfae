package engine

import (
	"slices"
	"testing"

	cchess "github.com/corentings/chess/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// The positions below contain no checks or pins, so the pseudo-legal moves
// accepted by IsValidMove must match the legal moves of an independent
// move generator exactly.
func TestIsValidMove_MatchesReferenceGenerator(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			opt, err := cchess.FEN(fen)
			if err != nil {
				t.Fatalf("reference FEN(%q) error: %v", fen, err)
			}
			ref := cchess.NewGame(opt)

			var want []string
			for _, m := range ref.ValidMoves() {
				uci := m.S1().String() + m.S2().String()
				if !slices.Contains(want, uci) {
					want = append(want, uci)
				}
			}
			slices.Sort(want)

			b := mustBoard(t, fen)
			var got []string
			for _, p := range b.Pieces(b.CurrentPlayer) {
				for row := 0; row < chess.BoardSize; row++ {
					for col := 0; col < chess.BoardSize; col++ {
						end := chess.Sq(row, col)
						if IsValidMove(b, p, p.Position, end) {
							got = append(got, p.Position.String()+end.String())
						}
					}
				}
			}
			slices.Sort(got)

			if !slices.Equal(got, want) {
				t.Errorf("moves mismatch:\n got %v\nwant %v", got, want)
			}
		})
	}
}
