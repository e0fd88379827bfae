// Package notation converts between board coordinates, moves and their
// algebraic text ("e4", "Nf3", "exd5", "O-O", "e8=Q"). It is stateless and
// knows nothing about legality; resolving a parsed move to an origin square
// is the caller's job.
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Castle names the side of a castling move.
type Castle int

const (
	NoCastle Castle = iota
	Kingside
	Queenside
)

// String returns the SAN text of the castle, or "" for NoCastle.
func (c Castle) String() string {
	switch c {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	}
	return ""
}

// Move is the textual view of a move that has been played.
type Move struct {
	Piece     chess.PieceType
	Start     chess.Square
	End       chess.Square
	Capture   bool
	Castle    Castle
	Promotes  bool
	Promotion chess.PieceType

	// Rivals are other origins from which a piece of the same type could
	// reach End.
	Rivals []chess.Square
}

// PosToNotation converts a board square to its algebraic name: (0, 0) is a8
// and (7, 7) is h1.
func PosToNotation(sq chess.Square) (string, error) {
	if !sq.InBounds() {
		return "", fmt.Errorf("(%d,%d): %w", sq.Row, sq.Col, errors.ErrInvalidSquare)
	}
	return sq.String(), nil
}

// NotationToPos converts an algebraic square name to a board square.
func NotationToPos(name string) (chess.Square, error) {
	sq, ok := chess.ParseSquare(name)
	if !ok {
		return chess.Square{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// MoveToNotation returns the algebraic text of m. Pawn captures name the
// origin file ("exd5"). Pieces with rivals add the origin file, the rank
// when a rival shares the file, or both ("Nbd2", "R1e2", "Qh4e1").
func MoveToNotation(m Move) string {
	if m.Castle != NoCastle {
		return m.Castle.String()
	}

	var sb strings.Builder
	if m.Piece == chess.Pawn {
		if m.Capture {
			sb.WriteByte(m.Start.String()[0])
			sb.WriteByte('x')
		}
	} else {
		sb.WriteString(m.Piece.Letter())
		sb.WriteString(disambiguation(m.Start, m.Rivals))
		if m.Capture {
			sb.WriteByte('x')
		}
	}
	sb.WriteString(m.End.String())

	if m.Promotes {
		sb.WriteByte('=')
		sb.WriteString(m.Promotion.Letter())
	}
	return sb.String()
}

func disambiguation(start chess.Square, rivals []chess.Square) string {
	if len(rivals) == 0 {
		return ""
	}
	sameFile, sameRank := false, false
	for _, r := range rivals {
		if r.Col == start.Col {
			sameFile = true
		}
		if r.Row == start.Row {
			sameRank = true
		}
	}
	name := start.String()
	switch {
	case !sameFile:
		return name[:1]
	case !sameRank:
		return name[1:]
	}
	return name
}

// FromRecord builds the textual view of a history entry.
func FromRecord(rec game.Record) Move {
	m := Move{
		Piece:   rec.PrevType,
		Start:   rec.Start,
		End:     rec.End,
		Capture: rec.IsCapture(),
		Rivals:  rec.Rivals,
	}
	if rec.Castle != nil {
		m.Castle = Queenside
		if rec.Castle.Kingside {
			m.Castle = Kingside
		}
	}
	if rec.Promotion != nil {
		m.Promotes = true
		m.Promotion = rec.Promotion.To
	}
	return m
}

// UCI returns the long coordinate form of a move, such as "e2e4" or "a7a8q".
func UCI(m Move) string {
	s := m.Start.String() + m.End.String()
	if m.Promotes {
		s += strings.ToLower(m.Promotion.Letter())
	}
	return s
}

// FormatMoveNumber returns the move number prefix for a colour: "1. " for
// white and "1... " for black.
func FormatMoveNumber(number int, colour chess.Colour) string {
	if colour == chess.White {
		return fmt.Sprintf("%d. ", number)
	}
	return fmt.Sprintf("%d... ", number)
}

// LogMove appends move text to a log kept in move pairs ("1. e4 e5").
// A black move with no open white entry starts its own "N... " entry.
func LogMove(log []string, text string, number int, colour chess.Colour) []string {
	if colour == chess.White || len(log) == 0 {
		return append(log, FormatMoveNumber(number, colour)+text)
	}
	log[len(log)-1] += " " + text
	return log
}

// LogHistory renders a session's history as a paired move log.
func LogHistory(g *game.GameState) []string {
	var log []string
	for _, rec := range g.History() {
		log = LogMove(log, MoveToNotation(FromRecord(rec)), rec.PrevFullmove, rec.Colour)
	}
	return log
}
