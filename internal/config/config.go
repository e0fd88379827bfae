// Package config provides configuration for the chess-rules command.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat represents the notation used when printing a game.
type OutputFormat int

const (
	SAN  OutputFormat = iota // Standard Algebraic Notation move log
	LALG                     // Long algebraic (e2e4)
	UCI                      // UCI coordinates, same as LALG with promotion suffix
	FEN                      // Final position only
	JSON                     // Session snapshot
	PGN                      // Full PGN with tags
)

var outputFormatNames = []string{"san", "lalg", "uci", "fen", "json", "pgn"}

// String returns the flag name of the format.
func (f OutputFormat) String() string {
	if f >= 0 && int(f) < len(outputFormatNames) {
		return outputFormatNames[f]
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat maps a flag value such as "pgn" to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for i, name := range outputFormatNames {
		if strings.EqualFold(s, name) {
			return OutputFormat(i), nil
		}
	}
	return SAN, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// GlyphStyle selects how pieces are drawn in board diagrams.
type GlyphStyle int

const (
	Unicode GlyphStyle = iota
	ASCII
)

// ParseGlyphStyle maps "unicode" or "ascii" to a GlyphStyle.
func ParseGlyphStyle(s string) (GlyphStyle, error) {
	switch strings.ToLower(s) {
	case "unicode":
		return Unicode, nil
	case "ascii":
		return ASCII, nil
	}
	return Unicode, fmt.Errorf("unknown glyph style %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=warnings only, 1=info, 2=debug
	LogLevel  slog.Level

	// Position every new session starts from; empty means the standard one.
	StartFEN string

	// Number of batch workers; 0 means one per CPU.
	Workers int

	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		LogLevel:   slog.LevelInfo,
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Output == nil {
		return fmt.Errorf("missing output settings: %w", errors.ErrInvalidConfig)
	}
	if c.Output.Format < SAN || c.Output.Format > PGN {
		return fmt.Errorf("unknown output format %d: %w", int(c.Output.Format), errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log streams are required: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// LevelForVerbosity maps the -v count to a log level.
func LevelForVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelWarn
	case v == 1:
		return slog.LevelInfo
	}
	return slog.LevelDebug
}

// NewLogger returns a text logger writing to LogFile at LogLevel.
func (c *Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(c.LogFile, &slog.HandlerOptions{Level: c.LogLevel}))
}
