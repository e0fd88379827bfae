// chess-rules plays and replays chess games against a rules engine.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/assets"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/processing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

const programVersion = "0.1.0"

func logger() *slog.Logger {
	return slog.Default().With("package", "main")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	slog.SetDefault(cfg.NewLogger())

	reg := registryFor(cfg.Output.Glyphs)

	var err error
	switch {
	case *movesFlag != "":
		err = runMoves(cfg, reg, *movesFlag)
	case *inputFile != "" || flag.NArg() > 0:
		err = runInputs(cfg, inputNames())
	default:
		err = runInteractive(cfg, reg, os.Stdin)
	}
	if err != nil {
		logger().Error("failed", "error", err)
		os.Exit(1)
	}
}

// registryFor builds the glyph registry for a diagram style.
func registryFor(style config.GlyphStyle) *assets.Registry {
	if style == config.ASCII {
		return assets.ASCII()
	}
	return assets.Unicode()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// runMoves replays one move list and writes the game in the configured
// format, followed by a diagram when boards are enabled.
func runMoves(cfg *config.Config, reg *assets.Registry, moves string) error {
	g, err := processing.Replay(cfg.StartFEN, processing.Tokenize(moves))
	if err != nil {
		return err
	}
	if err := output.WriteGame(cfg.OutputFile, g, nil, cfg.Output.Format); err != nil {
		return err
	}
	if !cfg.Output.ShowBoard {
		return nil
	}
	return output.WriteBoard(cfg.OutputFile, g.Board(), reg, output.BoardOptions{Coordinates: cfg.Output.Coordinates})
}

// inputNames lists the batch inputs: -i first, then positional arguments.
func inputNames() []string {
	var names []string
	if *inputFile != "" {
		names = append(names, *inputFile)
	}
	return append(names, flag.Args()...)
}

// runInputs replays every game of the named files as one batch. "-" reads
// standard input.
func runInputs(cfg *config.Config, names []string) error {
	var items []worker.WorkItem
	for _, name := range names {
		fileItems, err := readInput(name, cfg.StartFEN)
		if err != nil {
			return err
		}
		for _, item := range fileItems {
			item.Index = len(items)
			items = append(items, item)
		}
	}

	w := output.NewGameWriter(cfg.OutputFile, cfg.Output.Format)
	stats, err := runBatch(cfg, items, batchOptions{
		SuppressDuplicates: *suppressDups,
		ExactDuplicates:    *exactDuplicates,
	}, w)
	if err != nil {
		return err
	}
	if !*quiet {
		reportStatistics(stats)
	}
	return nil
}

func readInput(name, startFEN string) ([]worker.WorkItem, error) {
	if name == "-" {
		return readWorkItems(os.Stdin, "stdin", startFEN)
	}
	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck // read-only
	return readWorkItems(file, name, startFEN)
}

// runInteractive runs the command loop on in, prompting when in is a
// terminal.
func runInteractive(cfg *config.Config, reg *assets.Registry, in *os.File) error {
	s, err := NewSession(cfg, reg, cfg.OutputFile)
	if err != nil {
		return err
	}
	prompt := isTerminal(in)
	if prompt {
		io.WriteString(cfg.OutputFile, "Type 'help' for commands.\n") //nolint:errcheck,gosec // best-effort banner
	}
	return runREPL(in, s, prompt)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess interactively, or replays move lists and PGN games.\n")
	fmt.Fprintf(os.Stderr, "With no -moves and no input files, reads commands from stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-W):\n")
	fmt.Fprintf(os.Stderr, "  san    Standard Algebraic Notation (default)\n")
	fmt.Fprintf(os.Stderr, "  lalg   Long algebraic (e2e4)\n")
	fmt.Fprintf(os.Stderr, "  uci    UCI format\n")
	fmt.Fprintf(os.Stderr, "  fen    Final position as FEN\n")
	fmt.Fprintf(os.Stderr, "  json   JSON game snapshot\n")
	fmt.Fprintf(os.Stderr, "  pgn    PGN with the seven tag roster\n")
}
