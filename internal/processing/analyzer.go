// Package processing turns move text into game sessions and analyses them.
package processing

import (
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// GameAnalysis holds analysis results from replaying a session's history.
type GameAnalysis struct {
	Plies      int
	Captures   int
	Castles    int
	EnPassants int
	Promotions int

	HasFiftyMoveRule   bool
	Has75MoveRule      bool
	HasRepetition      bool
	Has5FoldRepetition bool

	Positions []uint64 // Zobrist keys, start position first; unhashable positions are left out
	FinalFEN  string
}

// FiftyMoveTriggered returns true if the game reached the fifty-move rule.
func (ga *GameAnalysis) FiftyMoveTriggered() bool {
	return ga.HasFiftyMoveRule
}

// RepetitionDetected returns true if the game has a threefold repetition.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// AnalyzeGame replays the history of g on a fresh session from the same
// start position and collects move statistics and draw-rule triggers.
// g itself is not modified.
func AnalyzeGame(g *game.GameState) *GameAnalysis {
	analysis := &GameAnalysis{}

	replay, err := NewSession(g.StartFEN())
	if err != nil {
		// StartFEN is produced by the session itself.
		return analysis
	}

	positionCount := make(map[uint64]int)
	addPosition := func() int {
		posHash, err := hashing.GenerateZobristHash(replay.Board())
		if err != nil {
			logger().Warn("position not hashed", "ply", analysis.Plies, "error", err)
			return 0
		}
		analysis.Positions = append(analysis.Positions, posHash)
		positionCount[posHash]++
		return positionCount[posHash]
	}
	addPosition()

	for _, rec := range g.History() {
		if !replay.ApplyMove(rec.Start, rec.End) {
			break
		}
		analysis.Plies++

		switch {
		case rec.Castle != nil:
			analysis.Castles++
		case rec.IsEnPassant():
			analysis.EnPassants++
		}
		if rec.IsCapture() {
			analysis.Captures++
		}
		if rec.Promotion != nil {
			analysis.Promotions++
		}

		// 50-move rule (100 half-moves)
		if replay.HalfmoveClock() >= 100 {
			analysis.HasFiftyMoveRule = true
		}

		// 75-move rule (150 half-moves)
		if replay.HalfmoveClock() >= 150 {
			analysis.Has75MoveRule = true
		}

		seen := addPosition()
		if seen >= 3 {
			analysis.HasRepetition = true
		}
		if seen >= 5 {
			analysis.Has5FoldRepetition = true
		}
	}

	analysis.FinalFEN = replay.FEN()
	return analysis
}
