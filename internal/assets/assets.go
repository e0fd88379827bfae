// Package assets maps pieces to the glyphs used when drawing a board.
//
// A Registry is built once at startup and handed to the presentation code.
// The rules packages never see it.
package assets

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Placeholder is drawn for any piece without a registered glyph.
const Placeholder = "?"

// Key returns the registry key of a piece, such as "white_king".
func Key(c chess.Colour, t chess.PieceType) string {
	return fmt.Sprintf("%s_%s", c, t)
}

var unicodeGlyphs = map[string]string{
	"white_king": "♔", "white_queen": "♕", "white_rook": "♖",
	"white_bishop": "♗", "white_knight": "♘", "white_pawn": "♙",
	"black_king": "♚", "black_queen": "♛", "black_rook": "♜",
	"black_bishop": "♝", "black_knight": "♞", "black_pawn": "♟",
}

var asciiGlyphs = map[string]string{
	"white_king": "K", "white_queen": "Q", "white_rook": "R",
	"white_bishop": "B", "white_knight": "N", "white_pawn": "P",
	"black_king": "k", "black_queen": "q", "black_rook": "r",
	"black_bishop": "b", "black_knight": "n", "black_pawn": "p",
}

// Registry holds one glyph per piece key.
type Registry struct {
	glyphs map[string]string
	logger *slog.Logger
}

// NewRegistry builds a registry from a key to glyph map. Unknown keys are
// kept; they are simply never looked up.
func NewRegistry(glyphs map[string]string) *Registry {
	r := &Registry{
		glyphs: make(map[string]string, len(glyphs)),
		logger: slog.Default().With("package", "assets"),
	}
	for k, v := range glyphs {
		r.glyphs[k] = v
	}
	return r
}

// Unicode returns a registry of the standard chess symbols.
func Unicode() *Registry { return NewRegistry(unicodeGlyphs) }

// ASCII returns a registry of FEN letters.
func ASCII() *Registry { return NewRegistry(asciiGlyphs) }

// Glyph returns the glyph of a piece, or Placeholder if none is registered.
func (r *Registry) Glyph(c chess.Colour, t chess.PieceType) string {
	key := Key(c, t)
	if g, ok := r.glyphs[key]; ok && g != "" {
		return g
	}
	r.logger.Debug("missing glyph", "key", key)
	return Placeholder
}

// Set registers or replaces the glyph for a piece. An empty glyph removes it.
func (r *Registry) Set(c chess.Colour, t chess.PieceType, glyph string) {
	key := Key(c, t)
	if glyph == "" {
		delete(r.glyphs, key)
		return
	}
	r.glyphs[key] = glyph
}

// Missing lists the keys of the twelve pieces that have no glyph, sorted.
func (r *Registry) Missing() []string {
	var out []string
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for t := chess.Pawn; t < chess.NumPieceTypes; t++ {
			if g := r.glyphs[Key(c, t)]; g == "" {
				out = append(out, Key(c, t))
			}
		}
	}
	sort.Strings(out)
	return out
}
