package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// MustBoardFromFEN parses a FEN string and calls t.Fatal on failure.
func MustBoardFromFEN(t *testing.T, fen string) *chess.Board {
	t.Helper()
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return b
}

// MustGame starts a session from a FEN string (the standard position if
// empty) and calls t.Fatal on failure.
func MustGame(t *testing.T, fen string) *game.GameState {
	t.Helper()
	if fen == "" {
		return game.New(nil)
	}
	g, err := game.NewFromFEN(fen)
	if err != nil {
		t.Fatalf("NewFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// Sq converts an algebraic square name and calls t.Fatal if it is not one.
func Sq(t *testing.T, name string) chess.Square {
	t.Helper()
	s, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("invalid square %q", name)
	}
	return s
}

// Snapshot is a comparable copy of everything a session exposes, used to
// check that an undo restores the exact prior state.
type Snapshot struct {
	FEN            string
	Pieces         []chess.Piece
	BoardCaptured  []chess.PieceID
	GameCaptured   []chess.PieceID
	LastMove       chess.MoveInfo
	HasLastMove    bool
	HistoryLength  int
	CurrentColour  chess.Colour
	HalfmoveClock  int
	FullmoveNumber int
}

// TakeSnapshot copies the state of g, including every piece ever created on
// its board.
func TakeSnapshot(g *game.GameState) Snapshot {
	b := g.Board()
	s := Snapshot{
		FEN:            g.FEN(),
		BoardCaptured:  b.Captured(),
		GameCaptured:   g.CapturedPieces(),
		HistoryLength:  len(g.History()),
		CurrentColour:  g.CurrentColour(),
		HalfmoveClock:  g.HalfmoveClock(),
		FullmoveNumber: g.FullmoveNumber(),
	}
	s.LastMove, s.HasLastMove = b.LastMove()
	for id := chess.PieceID(1); b.Piece(id) != nil; id++ {
		s.Pieces = append(s.Pieces, *b.Piece(id))
	}
	return s
}
