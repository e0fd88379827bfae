// Package game wraps a chess.Board in a game session: turn order, move
// counters, history and undo.
package game

import (
	"log/slog"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

func logger() *slog.Logger {
	return slog.Default().With("package", "game")
}

// GameState owns one board for the length of a game. It is the only
// component that switches turns and the only one that can take moves back.
// A GameState is not safe for concurrent use.
type GameState struct {
	board    *chess.Board
	startFEN string

	currentColour  chess.Colour
	halfmoveClock  int
	fullmoveNumber int

	enPassant chess.EnPassantTarget
	castling  chess.CastlingRights

	history  []Record
	captured []chess.PieceID
}

// New starts a session on board. A nil board gets the standard starting position.
func New(board *chess.Board) *GameState {
	g := &GameState{}
	g.StartNewGame(board)
	return g
}

// NewFromFEN starts a session from a FEN position, including its clocks.
func NewFromFEN(fen string) (*GameState, error) {
	board, clocks, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	g := New(board)
	g.halfmoveClock = clocks.Halfmove
	g.fullmoveNumber = clocks.Fullmove
	g.startFEN = engine.BoardToFEN(board, clocks)
	return g, nil
}

// StartNewGame attaches board and resets the counters, history and captured list.
// The side to move is taken from the board.
func (g *GameState) StartNewGame(board *chess.Board) {
	if board == nil {
		board = chess.NewInitialBoard()
	}
	*g = GameState{
		board:          board,
		currentColour:  board.CurrentPlayer,
		halfmoveClock:  engine.InitialClocks.Halfmove,
		fullmoveNumber: engine.InitialClocks.Fullmove,
		enPassant:      board.EnPassant,
		castling:       board.Castling,
		captured:       board.Captured(),
	}
	g.startFEN = engine.BoardToFEN(board, g.Clocks())
}

// ApplyMove plays the move from start to end for the side to move. It
// returns false, leaving the session untouched, if the square is empty, the
// piece belongs to the other side or the board rejects the move.
func (g *GameState) ApplyMove(start, end chess.Square) bool {
	b := g.board
	mover := b.PieceAt(start)
	if mover == nil || mover.Colour != g.currentColour {
		return false
	}

	rec := Record{
		Start:         start,
		End:           end,
		Piece:         mover.ID,
		Colour:        mover.Colour,
		PrevType:      mover.Type,
		PrevHasMoved:  mover.HasMoved,
		PrevEnPassant: b.EnPassant,
		PrevCastling:  b.Castling,
		PrevHalfmove:  g.halfmoveClock,
		PrevFullmove:  g.fullmoveNumber,
	}
	if occupant := b.PieceAt(end); occupant != nil {
		rec.Occupant = occupant.ID
	}
	rookHadMoved := castlingRookMoved(b, mover, start, end)
	rec.Rivals = rivals(b, mover, start, end)

	if !engine.MovePiece(b, start, end) {
		return false
	}

	// The board knows what was really captured; en passant victims never
	// stand on the destination.
	info, _ := b.LastMove()
	rec.Captured = info.Captured
	rec.CapturedSquare = info.CapturedSquare
	if info.IsCapture() {
		g.captured = append(g.captured, info.Captured)
	}

	if info.IsCapture() || rec.PrevType == chess.Pawn {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}
	if mover.Colour == chess.Black {
		g.fullmoveNumber++
	}

	g.enPassant = b.EnPassant
	g.castling = b.Castling

	if mover.Type != rec.PrevType {
		rec.Promotion = &PromotionRecord{From: rec.PrevType, To: mover.Type}
	}
	if info.Castle != nil {
		rec.Castle = &CastleRecord{
			Rook:         b.PieceAt(info.Castle.RookEnd).ID,
			Kingside:     info.Castle.Kingside,
			RookStart:    info.Castle.RookStart,
			RookEnd:      info.Castle.RookEnd,
			RookHadMoved: rookHadMoved,
		}
	}

	g.history = append(g.history, rec)
	g.switchTurn()

	logger().Debug("move applied", "ply", len(g.history), "start", start, "end", end,
		"captured", rec.IsCapture(), "castle", rec.Castle != nil, "promotion", rec.Promotion != nil)
	return true
}

// rivals lists the other pieces of the mover's type that could also move to
// end. Pawns never need them.
func rivals(b *chess.Board, mover *chess.Piece, start, end chess.Square) []chess.Square {
	if mover.Type == chess.Pawn {
		return nil
	}
	var out []chess.Square
	for _, sq := range engine.FindSources(b, mover.Colour, mover.Type, end, -1, -1) {
		if sq != start {
			out = append(out, sq)
		}
	}
	return out
}

// castlingRookMoved returns the HasMoved flag of the rook a two-column king
// move would take along, before the move is made.
func castlingRookMoved(b *chess.Board, mover *chess.Piece, start, end chess.Square) bool {
	if mover.Type != chess.King || start.Row != end.Row {
		return false
	}
	col := chess.KingsideRookCol
	switch end.Col - start.Col {
	case 2:
	case -2:
		col = chess.QueensideRookCol
	default:
		return false
	}
	if rook := b.PieceAt(chess.Sq(start.Row, col)); rook != nil {
		return rook.HasMoved
	}
	return false
}

// UndoLastMove takes back the most recent move exactly. It returns false if
// there is nothing to undo.
func (g *GameState) UndoLastMove() bool {
	if len(g.history) == 0 {
		return false
	}
	rec := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	b := g.board
	mover := b.Piece(rec.Piece)

	if rec.Castle != nil {
		rook := b.Piece(rec.Castle.Rook)
		b.Remove(rec.Castle.RookEnd)
		b.Put(rec.Castle.RookStart, rook)
		rook.HasMoved = rec.Castle.RookHadMoved
	}

	b.Remove(rec.End)
	b.Put(rec.Start, mover)
	mover.HasMoved = rec.PrevHasMoved
	mover.Type = rec.PrevType

	b.Put(rec.End, b.Piece(rec.Occupant))
	if rec.IsCapture() {
		b.Put(rec.CapturedSquare, b.Piece(rec.Captured))
		b.RemoveCaptured(rec.Captured)
		g.removeCaptured(rec.Captured)
	}

	b.EnPassant = rec.PrevEnPassant
	b.Castling = rec.PrevCastling
	g.enPassant = rec.PrevEnPassant
	g.castling = rec.PrevCastling
	g.halfmoveClock = rec.PrevHalfmove
	g.fullmoveNumber = rec.PrevFullmove

	if last, ok := g.PeekLastMove(); ok {
		b.SetLastMove(last.MoveInfo())
	} else {
		b.ClearLastMove()
	}
	b.ClearSelection()
	g.switchTurn()

	logger().Debug("move undone", "ply", len(g.history)+1, "start", rec.Start, "end", rec.End)
	return true
}

func (g *GameState) removeCaptured(id chess.PieceID) {
	for i := len(g.captured) - 1; i >= 0; i-- {
		if g.captured[i] == id {
			g.captured = append(g.captured[:i], g.captured[i+1:]...)
			return
		}
	}
}

// switchTurn flips the side to move on the session and its board.
func (g *GameState) switchTurn() {
	g.currentColour = g.currentColour.Opposite()
	g.board.CurrentPlayer = g.currentColour
}

// Board returns the session's board.
func (g *GameState) Board() *chess.Board { return g.board }

// CurrentColour returns the side to move.
func (g *GameState) CurrentColour() chess.Colour { return g.currentColour }

// HalfmoveClock returns the number of moves since the last pawn move or capture.
func (g *GameState) HalfmoveClock() int { return g.halfmoveClock }

// FullmoveNumber returns the number of the current move pair, starting at 1.
func (g *GameState) FullmoveNumber() int { return g.fullmoveNumber }

// Clocks returns both counters.
func (g *GameState) Clocks() engine.Clocks {
	return engine.Clocks{Halfmove: g.halfmoveClock, Fullmove: g.fullmoveNumber}
}

// EnPassant returns the en passant target after the last move.
func (g *GameState) EnPassant() chess.EnPassantTarget { return g.enPassant }

// Castling returns the castling rights after the last move.
func (g *GameState) Castling() chess.CastlingRights { return g.castling }

// History returns a copy of the move history, oldest first.
func (g *GameState) History() []Record {
	out := make([]Record, len(g.history))
	copy(out, g.history)
	return out
}

// PeekLastMove returns the most recent history entry.
func (g *GameState) PeekLastMove() (Record, bool) {
	if len(g.history) == 0 {
		return Record{}, false
	}
	return g.history[len(g.history)-1], true
}

// CapturedPieces returns the captured pieces in capture order.
func (g *GameState) CapturedPieces() []chess.PieceID {
	out := make([]chess.PieceID, len(g.captured))
	copy(out, g.captured)
	return out
}

// IsInCheck reports whether colour is in check. Always false, see engine.IsInCheck.
func (g *GameState) IsInCheck(colour chess.Colour) bool {
	return engine.IsInCheck(g.board, colour)
}

// IsCheckmate reports whether colour is checkmated. Always false.
func (g *GameState) IsCheckmate(colour chess.Colour) bool {
	return engine.IsCheckmate(g.board, colour)
}

// FEN returns the current position as a FEN string.
func (g *GameState) FEN() string {
	return engine.BoardToFEN(g.board, g.Clocks())
}

// StartFEN returns the position the session started from.
func (g *GameState) StartFEN() string {
	return g.startFEN
}
