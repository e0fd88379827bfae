package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// GameWriter is the interface for writing finished sessions to output.
// Different implementations handle different output formats.
type GameWriter interface {
	// WriteGame writes a single session with its PGN tags.
	WriteGame(g *game.GameState, tags map[string]string) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch writers (JSON) write pending output here.
	Close() error
}

// NewGameWriter returns the writer for an output format.
func NewGameWriter(w io.Writer, format config.OutputFormat) GameWriter {
	switch format {
	case config.PGN:
		return NewPGNWriter(w)
	case config.JSON:
		return NewJSONWriter(w)
	default:
		return &TextWriter{w: w, format: format}
	}
}

// TextWriter writes one line per session: a move log or a FEN.
type TextWriter struct {
	w      io.Writer
	format config.OutputFormat
}

// WriteGame writes a session; tags are ignored.
func (tw *TextWriter) WriteGame(g *game.GameState, _ map[string]string) error {
	return WriteGame(tw.w, g, nil, tw.format)
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error { return nil }

// Close is a no-op.
func (tw *TextWriter) Close() error { return nil }

// PGNWriter writes sessions in PGN format.
type PGNWriter struct {
	w io.Writer
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer) *PGNWriter {
	return &PGNWriter{w: w}
}

// WriteGame writes a session in PGN format.
func (pw *PGNWriter) WriteGame(g *game.GameState, tags map[string]string) error {
	return WritePGN(pw.w, g, tags)
}

// Flush flushes the PGN writer (no-op for PGN as it writes immediately).
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter collects snapshots and writes them as one JSON document on
// Flush or Close. Snapshots are taken at WriteGame time.
type JSONWriter struct {
	w     io.Writer
	games []*JSONGame
}

// NewJSONWriter creates a new batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame buffers the snapshot of a session.
func (jw *JSONWriter) WriteGame(g *game.GameState, tags map[string]string) error {
	jw.games = append(jw.games, GameToJSON(g, tags))
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})
	jw.games = jw.games[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
