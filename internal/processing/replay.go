package processing

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// UndoToken takes back the last move when it appears in a move list.
const UndoToken = "undo"

// moveNumberRegex matches a leading move number such as "12." or "12...".
var moveNumberRegex = regexp.MustCompile(`^\d+\.+`)

func logger() *slog.Logger {
	return slog.Default().With("package", "processing")
}

// Tokenize splits move text into move tokens, dropping move numbers and
// results. "1.e4 e5 2. Nf3 1-0" gives ["e4", "e5", "Nf3"].
func Tokenize(text string) []string {
	var tokens []string
	for _, field := range strings.Fields(text) {
		field = moveNumberRegex.ReplaceAllString(field, "")
		if field == "" || isValidResult(field) {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// ParseToken decodes one move token in coordinate or SAN form.
func ParseToken(token string) (notation.Parsed, error) {
	if notation.IsCoordinate(token) {
		return notation.ParseCoordinate(token)
	}
	return notation.ParseMove(token)
}

// ApplyToken plays one token on g: a move in SAN or coordinate form, or
// UndoToken. Errors wrap ErrInvalidNotation, ErrIllegalMove,
// ErrUnsupported or ErrEmptyHistory.
func ApplyToken(g *game.GameState, token string) error {
	if strings.EqualFold(token, UndoToken) {
		if !g.UndoLastMove() {
			return errors.ErrEmptyHistory
		}
		return nil
	}

	p, err := ParseToken(token)
	if err != nil {
		return err
	}
	start, end, err := Resolve(g.Board(), g.CurrentColour(), p)
	if err != nil {
		return err
	}
	if !g.ApplyMove(start, end) {
		return fmt.Errorf("%s to %s: %w", start, end, errors.ErrIllegalMove)
	}
	return nil
}

// Replay starts a session from startFEN (the standard position if empty)
// and plays the tokens in order. The first failing token stops the replay
// with a MoveError; the session is returned as it stood before that token.
func Replay(startFEN string, tokens []string) (*game.GameState, error) {
	g, err := NewSession(startFEN)
	if err != nil {
		return nil, err
	}
	for i, token := range tokens {
		if err := ApplyToken(g, token); err != nil {
			logger().Debug("replay stopped", "ply", i+1, "token", token, "error", err)
			return g, &errors.MoveError{Err: err, PlyNum: i + 1, MoveText: token}
		}
	}
	return g, nil
}

// NewSession starts a session from a FEN, or the standard position if fen
// is empty.
func NewSession(fen string) (*game.GameState, error) {
	if fen == "" {
		return game.New(nil), nil
	}
	return game.NewFromFEN(fen)
}

// isValidResult checks if a result string is a valid PGN result.
func isValidResult(result string) bool {
	switch result {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	default:
		return false
	}
}
