// Package output renders game sessions: board diagrams, move logs, JSON
// snapshots and PGN.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator or a line break if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.emit("\n")
			o.lineLength = 0
		} else {
			o.emit(" ")
			o.lineLength++
		}
	}
	o.emit(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.emit("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error, if any.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) emit(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// FormatMove formats a history entry in the given notation. FEN, JSON and
// PGN describe whole games, so they fall back to SAN here.
func FormatMove(rec game.Record, format config.OutputFormat) string {
	m := notation.FromRecord(rec)
	switch format {
	case config.LALG:
		s := rec.Start.String() + rec.End.String()
		if m.Promotes {
			s += "=" + m.Promotion.Letter()
		}
		return s
	case config.UCI:
		return notation.UCI(m)
	default:
		return notation.MoveToNotation(m)
	}
}

// WriteMoveLog writes the session's moves with move numbers, wrapping lines
// at maxLineLength. Black moves that open a line get an "N..." prefix.
func WriteMoveLog(w io.Writer, g *game.GameState, format config.OutputFormat, maxLineLength int) error {
	ow := NewOutputWriter(w, maxLineLength)
	for i, rec := range g.History() {
		if rec.Colour == chess.White || i == 0 {
			ow.Write(strings.TrimSpace(notation.FormatMoveNumber(rec.PrevFullmove, rec.Colour)))
		}
		ow.Write(FormatMove(rec, format))
	}
	ow.NewLine()
	return ow.Err()
}

// WriteGame writes one session in the configured output format.
func WriteGame(w io.Writer, g *game.GameState, tags map[string]string, format config.OutputFormat) error {
	switch format {
	case config.FEN:
		_, err := fmt.Fprintln(w, g.FEN())
		return err
	case config.JSON:
		return WriteJSON(w, g, tags)
	case config.PGN:
		return WritePGN(w, g, tags)
	default:
		return WriteMoveLog(w, g, format, 0)
	}
}
