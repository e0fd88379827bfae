// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Input options
	movesFlag = flag.String("moves", "", "Replay a move list and print the result (e.g. \"e4 e5 Nf3\")")
	inputFile = flag.String("i", "", "Batch input: one move list per line, or PGN games")
	startFEN  = flag.String("fen", "", "Start position in FEN (default: standard position)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("W", "san", "Output format: san, lalg, uci, fen, json, pgn")
	showBoard    = flag.Bool("board", false, "Print a board diagram after every move")
	asciiBoard   = flag.Bool("ascii", false, "Use ASCII letters instead of Unicode pieces")
	noCoords     = flag.Bool("nocoords", false, "Omit file and rank labels from diagrams")

	// Batch options
	workers         = flag.Int("j", 0, "Number of batch workers (0 = one per CPU)")
	suppressDups    = flag.Bool("D", false, "Suppress duplicate games in batch output")
	exactDuplicates = flag.Bool("exact", false, "Duplicates must also have the same number of moves")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 warnings, 1 info, 2 debug")
	logFile   = flag.String("l", "", "Write log output to this file (default: stderr)")
	quiet     = flag.Bool("s", false, "Silent mode: no statistics")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags into cfg. Streams are opened
// separately by main.
func applyFlags(cfg *config.Config) error {
	cfg.Verbosity = *verbosity
	cfg.LogLevel = config.LevelForVerbosity(*verbosity)
	cfg.StartFEN = *startFEN
	cfg.Workers = *workers
	return applyOutputFlags(cfg)
}

// applyOutputFlags configures the output format and diagrams.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.Coordinates = !*noCoords
	if *asciiBoard {
		cfg.Output.Glyphs = config.ASCII
	} else {
		cfg.Output.Glyphs = config.Unicode
	}
	return nil
}
