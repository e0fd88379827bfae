package output

import (
	"fmt"
	"io"

	cchess "github.com/corentings/chess/v2"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// SevenTagRoster lists the tags every exported game carries, in PGN order.
var SevenTagRoster = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}

// ToPGN replays the session's history into a game of the PGN library,
// which supplies disambiguated SAN with check marks. A move the library
// refuses (one that leaves the own king in check, say) is reported as a
// MoveError wrapping ErrIllegalMove.
func ToPGN(g *game.GameState, tags map[string]string) (*cchess.Game, error) {
	var opts []func(*cchess.Game)
	start := g.StartFEN()
	if start != engine.InitialFEN {
		opt, err := cchess.FEN(start)
		if err != nil {
			return nil, fmt.Errorf("start position %q: %w", start, errors.ErrInvalidFEN)
		}
		opts = append(opts, opt)
	}
	pg := cchess.NewGame(opts...)

	for _, tag := range SevenTagRoster {
		pg.AddTagPair(tag, "?")
	}
	pg.AddTagPair("Result", "*")
	if start != engine.InitialFEN {
		pg.AddTagPair("SetUp", "1")
		pg.AddTagPair("FEN", start)
	}
	for k, v := range tags {
		pg.AddTagPair(k, v)
	}

	for i, rec := range g.History() {
		uci := notation.UCI(notation.FromRecord(rec))
		mv, err := cchess.UCINotation{}.Decode(pg.Position(), uci)
		if err != nil {
			return nil, &errors.MoveError{Err: errors.Wrap(errors.ErrIllegalMove, err.Error()), PlyNum: i + 1, MoveText: uci}
		}
		san := cchess.AlgebraicNotation{}.Encode(pg.Position(), mv)
		if err := pg.PushMove(san, &cchess.PushMoveOptions{ForceMainline: true}); err != nil {
			return nil, &errors.MoveError{Err: errors.Wrap(errors.ErrIllegalMove, err.Error()), PlyNum: i + 1, MoveText: san}
		}
	}
	return pg, nil
}

// SANMoves returns the session's moves as fully disambiguated SAN.
func SANMoves(g *game.GameState) ([]string, error) {
	pg, err := ToPGN(g, nil)
	if err != nil {
		return nil, err
	}
	moves := pg.Moves()
	out := make([]string, len(moves))
	for i, m := range moves {
		parent := m.Parent()
		out[i] = cchess.AlgebraicNotation{}.Encode(parent.Position(), m)
	}
	return out, nil
}

// WritePGN writes the session as a PGN game followed by a blank line.
func WritePGN(w io.Writer, g *game.GameState, tags map[string]string) error {
	pg, err := ToPGN(g, tags)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n\n", pg.String())
	return err
}
