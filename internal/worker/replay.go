package worker

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// Replay is the ProcessFunc for replay jobs. It replays the item's PGN text
// or move list and analyses the resulting session, partial or not.
func Replay(item WorkItem) ProcessResult {
	res := ProcessResult{Index: item.Index, Source: item.Source}

	if strings.TrimSpace(item.PGN) != "" {
		imp, err := processing.ReplayPGN(strings.NewReader(item.PGN))
		if imp != nil {
			res.Game = imp.Game
			res.Tags = imp.Tags
		}
		res.Error = err
	} else {
		res.Game, res.Error = processing.Replay(item.StartFEN, item.Moves)
	}

	if res.Game != nil {
		res.Analysis = processing.AnalyzeGame(res.Game)
	}
	return res
}
