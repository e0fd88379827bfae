package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/assets"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestRunMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		moves  string
		format config.OutputFormat
		want   string
	}{
		{"san", "", "e4 e5 Nf3 Nc6", config.SAN, "1. e4 e5 2. Nf3 Nc6\n"},
		{"coordinates to lalg", "", "e2e4 e7e5", config.LALG, "1. e2e4 e7e5\n"},
		{"undo inside the list", "", "e4 e5 undo c5", config.SAN, "1. e4 c5\n"},
		{"fen", "", "e4 c5 Nf3", config.FEN, "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2\n"},
		{"from a set-up position", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a8=Q", config.SAN, "1. a8=Q\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			cfg.StartFEN = tt.fen
			cfg.Output.Format = tt.format
			var buf bytes.Buffer
			cfg.OutputFile = &buf

			testutil.AssertNoError(t, runMoves(cfg, assets.ASCII(), tt.moves))
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}

	t.Run("with board", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Output.ShowBoard = true
		cfg.Output.Coordinates = false
		var buf bytes.Buffer
		cfg.OutputFile = &buf

		testutil.AssertNoError(t, runMoves(cfg, assets.ASCII(), "e4"))
		lines := strings.Split(buf.String(), "\n")
		testutil.AssertEqual(t, lines[0], "1. e4")
		testutil.AssertEqual(t, lines[5], ". . . . P . . .")
		testutil.AssertEqual(t, lines[9], "Turn: black")
	})

	t.Run("illegal move", func(t *testing.T) {
		cfg := config.NewConfig()
		var buf bytes.Buffer
		cfg.OutputFile = &buf

		err := runMoves(cfg, assets.ASCII(), "e4 e5 Ke3")
		var me *chesserrors.MoveError
		if !errors.As(err, &me) {
			t.Fatalf("runMoves() error = %v; want MoveError", err)
		}
		testutil.AssertEqual(t, me.PlyNum, 3)
		testutil.AssertEqual(t, buf.Len(), 0)
	})
}

func TestRegistryFor(t *testing.T) {
	testutil.AssertEqual(t, registryFor(config.ASCII).Glyph(chess.White, chess.King), "K")
	testutil.AssertEqual(t, registryFor(config.Unicode).Glyph(chess.White, chess.King), "♔")
}

func TestInputNames(t *testing.T) {
	defer saveRestoreString(inputFile, "games.pgn")()
	testutil.AssertEqual(t, inputNames(), []string{"games.pgn"})
}
