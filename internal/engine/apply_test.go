package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

func TestMovePiece_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to chess.Square
	}{
		{"start off board", InitialFEN, chess.Sq(8, 4), chess.Sq(5, 4)},
		{"end off board", InitialFEN, chess.Sq(6, 0), chess.Sq(6, -1)},
		{"empty start", InitialFEN, chess.Sq(4, 4), chess.Sq(3, 4)},
		{"wrong colour", InitialFEN, chess.Sq(1, 4), chess.Sq(3, 4)},
		{"illegal geometry", InitialFEN, chess.Sq(7, 6), chess.Sq(5, 6)},
		{"self capture", InitialFEN, chess.Sq(7, 0), chess.Sq(6, 0)},
		{"blocked castle", InitialFEN, chess.Sq(7, 4), chess.Sq(7, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.fen)
			before := BoardToFEN(b, InitialClocks)
			b.SelectPiece(chess.Sq(6, 4))

			if MovePiece(b, tt.from, tt.to) {
				t.Fatal("MovePiece() = true, want false")
			}
			if after := BoardToFEN(b, InitialClocks); after != before {
				t.Errorf("board changed on rejection:\n got %s\nwant %s", after, before)
			}
			if _, ok := b.LastMove(); ok {
				t.Error("LastMove recorded for a rejected move")
			}
			if b.Selected() == nil {
				t.Error("selection cleared by a rejected move")
			}
		})
	}
}

func TestMovePiece_PawnDoubleStep(t *testing.T) {
	b := chess.NewInitialBoard()
	b.SelectPiece(sq(t, "e2"))

	if !MovePiece(b, sq(t, "e2"), sq(t, "e4")) {
		t.Fatal("MovePiece(e2, e4) = false")
	}

	p := b.PieceAt(sq(t, "e4"))
	if !p.Is(chess.White, chess.Pawn) || !p.HasMoved || p.Position != sq(t, "e4") {
		t.Errorf("e4 = %v (moved %v)", p, p.HasMoved)
	}
	if !b.IsEmpty(sq(t, "e2")) {
		t.Error("e2 still occupied")
	}
	want := chess.EnPassantTarget{Active: true, Square: sq(t, "e3")}
	if b.EnPassant != want {
		t.Errorf("EnPassant = %+v, want %+v", b.EnPassant, want)
	}
	if b.CurrentPlayer != chess.White {
		t.Errorf("CurrentPlayer = %v; MovePiece must not switch turns", b.CurrentPlayer)
	}
	if b.Selected() != nil {
		t.Error("selection not cleared")
	}

	last, ok := b.LastMove()
	wantLast := chess.MoveInfo{Piece: p.ID, Start: sq(t, "e2"), End: sq(t, "e4")}
	if !ok {
		t.Fatal("LastMove() ok = false")
	}
	if diff := cmp.Diff(wantLast, last); diff != "" {
		t.Errorf("LastMove() mismatch (-want +got):\n%s", diff)
	}

	// Any following move clears the target.
	b.CurrentPlayer = chess.Black
	if !MovePiece(b, sq(t, "g8"), sq(t, "f6")) {
		t.Fatal("MovePiece(g8, f6) = false")
	}
	if b.EnPassant.Active {
		t.Errorf("EnPassant = %+v after a knight move, want inactive", b.EnPassant)
	}
}

func TestMovePiece_Capture(t *testing.T) {
	b := mustBoard(t, "4k3/8/3p4/8/4N3/8/8/4K3 w - - 0 1")
	victim := b.PieceAt(sq(t, "d6"))

	if !MovePiece(b, sq(t, "e4"), sq(t, "d6")) {
		t.Fatal("MovePiece(e4, d6) = false")
	}
	if got := b.Captured(); len(got) != 1 || got[0] != victim.ID {
		t.Errorf("Captured() = %v, want [%d]", got, victim.ID)
	}
	if !b.PieceAt(sq(t, "d6")).Is(chess.White, chess.Knight) {
		t.Errorf("d6 = %v", b.PieceAt(sq(t, "d6")))
	}
	last, _ := b.LastMove()
	if last.Captured != victim.ID || last.CapturedSquare != sq(t, "d6") || last.IsEnPassant() {
		t.Errorf("LastMove() = %+v", last)
	}
}

func TestMovePiece_EnPassant(t *testing.T) {
	tests := []struct {
		name             string
		fen              string
		from, to, victim string
	}{
		{"white takes", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5", "d6", "d5"},
		{"black takes", "4k3/8/8/8/3Pp3/8/8/4K3 b - d3 0 1", "e4", "d3", "d4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.fen)
			victim := b.PieceAt(sq(t, tt.victim))

			if !MovePiece(b, sq(t, tt.from), sq(t, tt.to)) {
				t.Fatalf("MovePiece(%s, %s) = false", tt.from, tt.to)
			}
			if !b.IsEmpty(sq(t, tt.victim)) {
				t.Errorf("victim square %s still occupied", tt.victim)
			}
			if got := b.Captured(); len(got) != 1 || got[0] != victim.ID {
				t.Errorf("Captured() = %v, want [%d]", got, victim.ID)
			}
			last, _ := b.LastMove()
			if !last.IsEnPassant() || last.CapturedSquare != sq(t, tt.victim) {
				t.Errorf("LastMove() = %+v, want en passant from %s", last, tt.victim)
			}
			if b.EnPassant.Active {
				t.Error("EnPassant still active")
			}
		})
	}

	t.Run("never removes own pawn", func(t *testing.T) {
		b := mustBoard(t, "4k3/8/8/3PP3/8/8/8/4K3 w - d6 0 1")
		if !MovePiece(b, sq(t, "e5"), sq(t, "d6")) {
			t.Fatal("MovePiece(e5, d6) = false")
		}
		if !b.PieceAt(sq(t, "d5")).Is(chess.White, chess.Pawn) {
			t.Errorf("d5 = %v, want white pawn", b.PieceAt(sq(t, "d5")))
		}
		if len(b.Captured()) != 0 {
			t.Errorf("Captured() = %v, want empty", b.Captured())
		}
	})
}

func TestMovePiece_Promotion(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
		colour   chess.Colour
	}{
		{"white pawn", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7", "a8", chess.White},
		{"black pawn", "4k3/8/8/8/8/8/p7/4K3 b - - 0 1", "a2", "a1", chess.Black},
		{"promotion by capture", "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7", "b8", chess.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.fen)
			id := b.PieceAt(sq(t, tt.from)).ID

			if !MovePiece(b, sq(t, tt.from), sq(t, tt.to)) {
				t.Fatalf("MovePiece(%s, %s) = false", tt.from, tt.to)
			}
			p := b.PieceAt(sq(t, tt.to))
			if !p.Is(tt.colour, chess.Queen) || p.ID != id {
				t.Errorf("%s = %v (id %d), want promoted piece %d", tt.to, p, p.ID, id)
			}
			if last, _ := b.LastMove(); !last.Promoted {
				t.Error("LastMove().Promoted = false")
			}
		})
	}
}

func TestMovePiece_Castling(t *testing.T) {
	tests := []struct {
		name             string
		fen              string
		from, to         string
		rookFrom, rookTo string
		wantRights       chess.CastlingRights
	}{
		{
			name: "white kingside", fen: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			from: "e1", to: "g1", rookFrom: "h1", rookTo: "f1",
			wantRights: chess.CastlingRights{BlackKingside: true, BlackQueenside: true},
		},
		{
			name: "white queenside", fen: "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			from: "e1", to: "c1", rookFrom: "a1", rookTo: "d1",
			wantRights: chess.CastlingRights{BlackKingside: true, BlackQueenside: true},
		},
		{
			name: "black kingside", fen: "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			from: "e8", to: "g8", rookFrom: "h8", rookTo: "f8",
			wantRights: chess.CastlingRights{WhiteKingside: true, WhiteQueenside: true},
		},
		{
			name: "black queenside", fen: "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			from: "e8", to: "c8", rookFrom: "a8", rookTo: "d8",
			wantRights: chess.CastlingRights{WhiteKingside: true, WhiteQueenside: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.fen)
			rook := b.PieceAt(sq(t, tt.rookFrom))

			if !MovePiece(b, sq(t, tt.from), sq(t, tt.to)) {
				t.Fatalf("MovePiece(%s, %s) = false", tt.from, tt.to)
			}
			if b.PieceAt(sq(t, tt.rookTo)) != rook || !rook.HasMoved {
				t.Errorf("rook = %v (moved %v), want on %s", rook, rook.HasMoved, tt.rookTo)
			}
			if !b.IsEmpty(sq(t, tt.rookFrom)) {
				t.Errorf("%s still occupied", tt.rookFrom)
			}
			if b.Castling != tt.wantRights {
				t.Errorf("Castling = %+v, want %+v", b.Castling, tt.wantRights)
			}
			last, _ := b.LastMove()
			wantCastle := &chess.CastleInfo{
				Kingside:  tt.to[0] == 'g',
				RookStart: sq(t, tt.rookFrom),
				RookEnd:   sq(t, tt.rookTo),
			}
			if diff := cmp.Diff(wantCastle, last.Castle); diff != "" {
				t.Errorf("LastMove().Castle mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMovePiece_CastlingRights(t *testing.T) {
	const fen = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	tests := []struct {
		name     string
		from, to string
		want     chess.CastlingRights
	}{
		{
			name: "king step clears both", from: "e1", to: "f1",
			want: chess.CastlingRights{BlackKingside: true, BlackQueenside: true},
		},
		{
			name: "queenside rook leaves corner", from: "a1", to: "a2",
			want: chess.CastlingRights{WhiteKingside: true, BlackKingside: true, BlackQueenside: true},
		},
		{
			name: "kingside rook leaves corner", from: "h1", to: "h5",
			want: chess.CastlingRights{WhiteQueenside: true, BlackKingside: true, BlackQueenside: true},
		},
		{
			name: "rook captures rook in corner", from: "a1", to: "a8",
			want: chess.CastlingRights{WhiteKingside: true, BlackKingside: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, fen)
			if !MovePiece(b, sq(t, tt.from), sq(t, tt.to)) {
				t.Fatalf("MovePiece(%s, %s) = false", tt.from, tt.to)
			}
			if b.Castling != tt.want {
				t.Errorf("Castling = %+v, want %+v", b.Castling, tt.want)
			}
		})
	}
}
