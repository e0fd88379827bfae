package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// JSONGame is the JSON snapshot of a session.
type JSONGame struct {
	Tags           map[string]string `json:"tags,omitempty"`
	StartFEN       string            `json:"startFEN"`
	FEN            string            `json:"fen"`
	Turn           string            `json:"turn"`
	Castling       string            `json:"castling"`
	EnPassant      string            `json:"enPassant,omitempty"`
	HalfmoveClock  int               `json:"halfmoveClock"`
	FullmoveNumber int               `json:"fullmoveNumber"`
	PlyCount       int               `json:"plyCount"`
	Moves          []JSONMove        `json:"moves"`
	Captured       []JSONPiece       `json:"captured"`
	InCheck        bool              `json:"inCheck"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castle     string `json:"castle,omitempty"`
	EnPassant  bool   `json:"enPassant,omitempty"`
}

// JSONPiece names a piece by colour and type.
type JSONPiece struct {
	Color string `json:"color"`
	Piece string `json:"piece"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a session to its JSON snapshot.
func GameToJSON(g *game.GameState, tags map[string]string) *JSONGame {
	b := g.Board()
	fields := strings.Fields(g.FEN())

	jg := &JSONGame{
		Tags:           tags,
		StartFEN:       g.StartFEN(),
		FEN:            g.FEN(),
		Turn:           g.CurrentColour().String(),
		Castling:       fields[2],
		HalfmoveClock:  g.HalfmoveClock(),
		FullmoveNumber: g.FullmoveNumber(),
		Moves:          []JSONMove{},
		Captured:       []JSONPiece{},
		InCheck:        g.IsInCheck(g.CurrentColour()),
	}
	if ep := g.EnPassant(); ep.Active {
		jg.EnPassant = ep.Square.String()
	}

	for _, rec := range g.History() {
		jg.Moves = append(jg.Moves, recordToJSON(b, rec))
	}
	jg.PlyCount = len(jg.Moves)

	for _, id := range g.CapturedPieces() {
		if p := b.Piece(id); p != nil {
			jg.Captured = append(jg.Captured, JSONPiece{Color: p.Colour.String(), Piece: p.Type.String()})
		}
	}
	return jg
}

func recordToJSON(b *chess.Board, rec game.Record) JSONMove {
	m := notation.FromRecord(rec)
	jm := JSONMove{
		Color:     rec.Colour.String(),
		SAN:       notation.MoveToNotation(m),
		UCI:       notation.UCI(m),
		From:      rec.Start.String(),
		To:        rec.End.String(),
		Piece:     rec.PrevType.String(),
		Castle:    m.Castle.String(),
		EnPassant: rec.IsEnPassant(),
	}
	if rec.Colour == chess.White {
		jm.MoveNumber = rec.PrevFullmove
	}
	if p := b.Piece(rec.Captured); p != nil {
		jm.Captured = p.Type.String()
	}
	if rec.Promotion != nil {
		jm.Promotion = rec.Promotion.To.String()
	}
	return jm
}

// WriteJSON writes the snapshot of one session as indented JSON.
func WriteJSON(w io.Writer, g *game.GameState, tags map[string]string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(g, tags))
}
