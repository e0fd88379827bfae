package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Parsed is a move decoded from text. The origin is usually incomplete:
// FromRow and FromCol are -1 when the text does not name them.
type Parsed struct {
	Piece     chess.PieceType
	End       chess.Square
	FromRow   int
	FromCol   int
	Capture   bool
	Castle    Castle
	Promotes  bool
	Promotion chess.PieceType
}

// HasStart reports whether the text named the full origin square.
func (p Parsed) HasStart() bool {
	return p.FromRow >= 0 && p.FromCol >= 0
}

// Start returns the named origin square; only meaningful if HasStart.
func (p Parsed) Start() chess.Square {
	return chess.Sq(p.FromRow, p.FromCol)
}

func isFile(c byte) bool { return c >= 'a' && c <= 'h' }
func isRank(c byte) bool { return c >= '1' && c <= '8' }

// ParseMove decodes a SAN move such as "e4", "Nf3", "exd5", "Nbd7",
// "R1a3", "Qh4xe1", "O-O", "e8=Q" or "e8Q". Check and annotation suffixes
// are ignored; "0-0" is accepted for castling.
func ParseMove(text string) (Parsed, error) {
	p := Parsed{FromRow: -1, FromCol: -1}
	s := strings.TrimRight(strings.TrimSpace(text), "+#!?")
	bad := func(expected string) (Parsed, error) {
		return Parsed{}, &errors.ParseError{Err: errors.ErrInvalidNotation, Input: text, Expected: expected}
	}

	switch strings.ReplaceAll(s, "0", "O") {
	case "O-O":
		p.Piece, p.Castle = chess.King, Kingside
		return p, nil
	case "O-O-O":
		p.Piece, p.Castle = chess.King, Queenside
		return p, nil
	}
	if s == "" {
		return bad("a move")
	}

	// Piece letter; lowercase is reserved for files.
	if pt, ok := chess.PieceTypeFromLetter(s[0]); ok && s[0] >= 'A' && s[0] <= 'Z' && pt != chess.Pawn {
		p.Piece = pt
		s = s[1:]
	}

	// Promotion suffix: "=Q" or a bare trailing piece letter.
	if i := strings.IndexByte(s, '='); i >= 0 {
		if i != len(s)-2 {
			return bad("one piece letter after '='")
		}
		s = s[:i] + s[i+1:]
	}
	if n := len(s); n > 0 && s[n-1] >= 'A' && s[n-1] <= 'Z' {
		pt, ok := chess.PieceTypeFromLetter(s[n-1])
		if !ok || pt == chess.Pawn || pt == chess.King {
			return bad("promotion to N, B, R or Q")
		}
		if p.Piece != chess.Pawn {
			return bad("promotion on a pawn move")
		}
		p.Promotes, p.Promotion = true, pt
		s = s[:n-1]
	}

	if strings.ContainsAny(s, "x:") {
		p.Capture = true
	}
	s = strings.NewReplacer("x", "", ":", "", "-", "").Replace(s)

	if len(s) < 2 || !isFile(s[len(s)-2]) || !isRank(s[len(s)-1]) {
		return bad("destination square")
	}
	p.End, _ = chess.ParseSquare(s[len(s)-2:])

	switch from := s[:len(s)-2]; len(from) {
	case 0:
	case 1:
		switch {
		case isFile(from[0]):
			p.FromCol = int(from[0] - 'a')
		case isRank(from[0]):
			p.FromRow = chess.BoardSize - int(from[0]-'0')
		default:
			return bad("file or rank")
		}
	case 2:
		sq, ok := chess.ParseSquare(from)
		if !ok {
			return bad("origin square")
		}
		p.FromRow, p.FromCol = sq.Row, sq.Col
	default:
		return bad("at most one origin square")
	}

	if p.Piece == chess.Pawn && p.Capture && p.FromCol < 0 {
		return bad("origin file on a pawn capture")
	}
	return p, nil
}

// ParseCoordinate decodes a coordinate move such as "e2e4", "e2-e4" or
// "a7a8q".
func ParseCoordinate(text string) (Parsed, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), "-", "")
	bad := &errors.ParseError{Err: errors.ErrInvalidNotation, Input: text, Expected: "coordinate move"}
	if len(s) != 4 && len(s) != 5 {
		return Parsed{}, bad
	}

	start, ok1 := chess.ParseSquare(s[:2])
	end, ok2 := chess.ParseSquare(s[2:4])
	if !ok1 || !ok2 {
		return Parsed{}, bad
	}
	p := Parsed{End: end, FromRow: start.Row, FromCol: start.Col}
	if len(s) == 5 {
		pt, ok := chess.PieceTypeFromLetter(s[4])
		if !ok || pt == chess.Pawn || pt == chess.King {
			return Parsed{}, bad
		}
		p.Promotes, p.Promotion = true, pt
	}
	return p, nil
}

// IsCoordinate reports whether text looks like a coordinate move rather
// than SAN. "e2e4" is ambiguous in SAN too; both readings agree on it.
func IsCoordinate(text string) bool {
	s := strings.ReplaceAll(strings.TrimSpace(text), "-", "")
	if len(s) != 4 && len(s) != 5 {
		return false
	}
	return isFile(s[0]) && isRank(s[1]) && isFile(s[2]) && isRank(s[3]) &&
		(len(s) == 4 || strings.IndexByte("nbrq", s[4]) >= 0)
}
