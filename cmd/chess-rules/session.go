// session.go - Interactive command loop
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/assets"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/notation"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// moveLogWidth is where the history command wraps its lines.
const moveLogWidth = 80

const sessionHelp = `Enter moves in SAN (e4, Nf3, O-O, e8=Q) or coordinates (e2e4).
Commands:
  undo            take back the last move
  board           show the board
  select <sq>     select a piece and list its moves
  history         show the move list
  captured        show captured pieces
  fen | pgn | json  print the session in that format
  new [fen]       start a new game
  help            show this text
  quit            leave
`

// Session is one interactive game driven by text commands.
type Session struct {
	cfg  *config.Config
	reg  *assets.Registry
	out  io.Writer
	game *game.GameState
}

// NewSession starts a session from cfg.StartFEN.
func NewSession(cfg *config.Config, reg *assets.Registry, out io.Writer) (*Session, error) {
	g, err := processing.NewSession(cfg.StartFEN)
	if err != nil {
		return nil, err
	}
	return &Session{cfg: cfg, reg: reg, out: out, game: g}, nil
}

// Game returns the current game.
func (s *Session) Game() *game.GameState {
	return s.game
}

// Execute runs one input line. It reports whether the session should end.
// Errors describe a rejected command; the session stays usable.
func (s *Session) Execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch cmd, args := strings.ToLower(fields[0]), fields[1:]; cmd {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		_, err = io.WriteString(s.out, sessionHelp)
	case "board":
		err = s.writeBoard()
	case "select":
		err = s.selectPiece(args)
	case "history":
		err = output.WriteMoveLog(s.out, s.game, s.logFormat(), moveLogWidth)
	case "captured":
		err = output.WriteCaptured(s.out, s.game.Board(), s.game.CapturedPieces(), s.reg)
	case "fen":
		err = output.WriteGame(s.out, s.game, nil, config.FEN)
	case "pgn":
		err = output.WritePGN(s.out, s.game, nil)
	case "json":
		err = output.WriteJSON(s.out, s.game, nil)
	case "new":
		err = s.newGame(strings.Join(args, " "))
	default:
		err = s.play(processing.Tokenize(line))
	}
	return false, err
}

// play applies move tokens until one is rejected.
func (s *Session) play(tokens []string) error {
	for _, token := range tokens {
		if err := processing.ApplyToken(s.game, token); err != nil {
			return fmt.Errorf("%s: %w", token, err)
		}
		if err := s.echo(token); err != nil {
			return err
		}
	}
	return nil
}

// echo reports the result of a token: the move played or the take-back.
func (s *Session) echo(token string) error {
	if strings.EqualFold(token, processing.UndoToken) {
		if _, err := fmt.Fprintf(s.out, "Undone. %s to move.\n", s.game.CurrentColour()); err != nil {
			return err
		}
	} else {
		rec, _ := s.game.PeekLastMove()
		text := notation.FormatMoveNumber(rec.PrevFullmove, rec.Colour) + output.FormatMove(rec, s.logFormat())
		if _, err := fmt.Fprintln(s.out, text); err != nil {
			return err
		}
	}
	if s.cfg.Output.ShowBoard {
		return s.writeBoard()
	}
	return nil
}

func (s *Session) writeBoard() error {
	return output.WriteBoard(s.out, s.game.Board(), s.reg, output.BoardOptions{
		Coordinates: s.cfg.Output.Coordinates,
		Highlight:   true,
	})
}

// selectPiece selects the named square and lists every destination the
// rules engine accepts for the selected piece.
func (s *Session) selectPiece(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: select <square>: %w", errors.ErrInvalidNotation)
	}
	sq, err := notation.NotationToPos(args[0])
	if err != nil {
		return err
	}
	b := s.game.Board()
	b.SelectPiece(sq)
	p := b.Selected()
	if p == nil {
		return fmt.Errorf("no %s piece on %s: %w", s.game.CurrentColour(), sq, errors.ErrInvalidSquare)
	}

	targets := legalTargets(b, p)
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.String()
	}
	_, err = fmt.Fprintf(s.out, "%s %s on %s: %s\n", p.Colour, p.Type, sq, strings.Join(names, " "))
	return err
}

// legalTargets returns the squares p may move to in row-major order,
// castling and en passant included.
func legalTargets(b *chess.Board, p *chess.Piece) []chess.Square {
	var targets []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if end := chess.Sq(row, col); engine.IsValidMove(b, p, p.Position, end) {
				targets = append(targets, end)
			}
		}
	}
	return targets
}

func (s *Session) newGame(fen string) error {
	if fen == "" {
		fen = s.cfg.StartFEN
	}
	g, err := processing.NewSession(fen)
	if err != nil {
		return err
	}
	s.game = g
	_, err = fmt.Fprintf(s.out, "New game. %s to move.\n", g.CurrentColour())
	return err
}

// logFormat is the notation moves are echoed in. Whole-game formats fall
// back to SAN.
func (s *Session) logFormat() config.OutputFormat {
	switch f := s.cfg.Output.Format; f {
	case config.LALG, config.UCI:
		return f
	}
	return config.SAN
}

// runREPL reads commands from in until EOF or quit.
func runREPL(in io.Reader, s *Session, prompt bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprintf(s.out, "%s> ", s.game.CurrentColour())
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		quit, err := s.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			logger().Debug("command rejected", "line", scanner.Text(), "error", err)
		}
		if quit {
			return nil
		}
	}
}
