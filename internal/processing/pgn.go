package processing

import (
	"fmt"
	"io"

	cchess "github.com/corentings/chess/v2"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// knownTags are copied from an imported PGN game when present.
var knownTags = []string{
	"Event", "Site", "Date", "Round", "White", "Black", "Result",
	"ECO", "Opening", "WhiteElo", "BlackElo", "TimeControl", "Termination",
	"SetUp", "FEN",
}

// ImportedGame is a PGN game replayed into a session.
type ImportedGame struct {
	Game   *game.GameState
	Tags   map[string]string
	Result string
}

// ReplayPGN reads the first game of a PGN stream and replays its main line
// into a new session. Variations and comments are ignored. A move the
// rules engine rejects or cannot express (underpromotion) stops the replay
// with a MoveError; the partial session is returned with it.
func ReplayPGN(r io.Reader) (*ImportedGame, error) {
	opt, err := cchess.PGN(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidNotation, fmt.Sprintf("reading PGN: %v", err))
	}
	pg := cchess.NewGame(opt)

	imp := &ImportedGame{
		Tags:   make(map[string]string),
		Result: pg.GetTagPair("Result"),
	}
	for _, tag := range knownTags {
		if v := pg.GetTagPair(tag); v != "" {
			imp.Tags[tag] = v
		}
	}
	if imp.Result == "" {
		imp.Result = pg.Outcome().String()
	}

	imp.Game, err = NewSession(imp.Tags["FEN"])
	if err != nil {
		return nil, err
	}

	for i, m := range pg.Moves() {
		uci := cchess.UCINotation{}.Encode(nil, m)
		if promo := m.Promo(); promo != cchess.NoPieceType && promo != cchess.Queen {
			return imp, &errors.MoveError{Err: errors.Wrap(errors.ErrUnsupported, "underpromotion"), PlyNum: i + 1, MoveText: uci}
		}
		p, err := notation.ParseCoordinate(uci)
		if err != nil {
			return imp, &errors.MoveError{Err: err, PlyNum: i + 1, MoveText: uci}
		}
		if !imp.Game.ApplyMove(p.Start(), p.End) {
			return imp, &errors.MoveError{Err: errors.ErrIllegalMove, PlyNum: i + 1, MoveText: uci}
		}
	}
	logger().Debug("pgn replayed", "plies", len(imp.Game.History()), "result", imp.Result)
	return imp, nil
}
