package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestParseFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board, Clocks) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board, c Clocks) bool {
				return b.PieceAt(chess.Sq(7, 4)).Is(chess.White, chess.King) &&
					b.PieceAt(chess.Sq(0, 4)).Is(chess.Black, chess.King) &&
					b.PieceAt(chess.Sq(6, 4)).Is(chess.White, chess.Pawn) &&
					b.CurrentPlayer == chess.White &&
					b.Castling == chess.AllCastlingRights() &&
					!b.EnPassant.Active &&
					c == InitialClocks
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board, c Clocks) bool {
				return b.PieceAt(chess.Sq(4, 4)).Is(chess.White, chess.Pawn) &&
					b.IsEmpty(chess.Sq(6, 4)) &&
					b.CurrentPlayer == chess.Black &&
					b.EnPassant == chess.EnPassantTarget{Active: true, Square: chess.Sq(5, 4)}
			},
		},
		{
			name: "clocks",
			fen:  "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
			checkFn: func(b *chess.Board, c Clocks) bool {
				return c == Clocks{Halfmove: 2, Fullmove: 3}
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(b *chess.Board, c Clocks) bool {
				return b.CurrentPlayer == chess.White &&
					b.Castling == chess.CastlingRights{} &&
					c == InitialClocks
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, c, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN() error = %v", err)
			}
			if !tt.checkFn(b, c) {
				t.Errorf("ParseFEN() board check failed: %s", BoardToFEN(b, c))
			}
		})
	}
}

func TestParseFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"long rank", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"piece past the edge", "rnbqkbnrp/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad piece letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBXKBNR w KQkq - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling", "4k3/8/8/8/8/8/8/4K3 w KX - 0 1"},
		{"bad en passant", "4k3/8/8/8/8/8/8/4K3 w - e4 0 1"},
		{"bad halfmove", "4k3/8/8/8/8/8/8/4K3 w - - x 1"},
		{"zero fullmove", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
		{"too many fields", "4k3/8/8/8/8/8/8/4K3 w - - 0 1 extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseFEN(tt.fen)
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("ParseFEN(%q) error = %v, want ErrInvalidFEN", tt.fen, err)
			}
		})
	}

	t.Run("parse error carries the column", func(t *testing.T) {
		_, _, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBXKBNR w KQkq - 0 1")
		var pe *chesserrors.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("error %v is not a *ParseError", err)
		}
		if pe.Column != 39 {
			t.Errorf("Column = %d, want 39", pe.Column)
		}
	})
}

func TestBoardToFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b Qk - 12 40",
		"8/8/8/8/8/8/8/8 w - - 0 1",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			b, c, err := ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN() error = %v", err)
			}
			if got := BoardToFEN(b, c); got != fen {
				t.Errorf("BoardToFEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestParseFEN_HasMoved(t *testing.T) {
	b := mustBoard(t, "r3k2r/1p6/8/8/4P3/8/P7/R3K1R1 w Qk - 0 1")

	tests := []struct {
		square string
		moved  bool
	}{
		{"a2", false}, // white pawn on its home row
		{"e4", true},  // white pawn advanced
		{"b7", false}, // black pawn on its home row
		{"e1", false}, // white king with a right
		{"a1", false}, // corner with the Q right
		{"g1", true},  // rook away from its corner
		{"e8", false}, // black king with a right
		{"h8", false}, // corner with the k right
		{"a8", true},  // corner without the q right
	}
	for _, tt := range tests {
		p := b.PieceAt(sq(t, tt.square))
		if p == nil {
			t.Fatalf("no piece on %s", tt.square)
		}
		if p.HasMoved != tt.moved {
			t.Errorf("%s HasMoved = %v, want %v", tt.square, p.HasMoved, tt.moved)
		}
	}

	t.Run("king without rights", func(t *testing.T) {
		b := mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
		if !b.PieceAt(sq(t, "e1")).HasMoved {
			t.Error("king without castling rights counts as unmoved")
		}
	})
}

func TestNewInitialBoardMatchesFEN(t *testing.T) {
	got := BoardToFEN(chess.NewInitialBoard(), InitialClocks)
	if got != InitialFEN {
		t.Errorf("BoardToFEN(NewInitialBoard()) = %q, want %q", got, InitialFEN)
	}
}
