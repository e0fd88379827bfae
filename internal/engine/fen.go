package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Clocks holds the two move counters of a FEN record. The board does not
// track them; the game session does.
type Clocks struct {
	Halfmove int
	Fullmove int
}

// InitialClocks are the counters of a game that has not started.
var InitialClocks = Clocks{Halfmove: 0, Fullmove: 1}

// fenLetter returns the FEN letter of a piece: uppercase for white.
func fenLetter(p *chess.Piece) byte {
	letter := byte('P')
	if p.Type != chess.Pawn {
		letter = p.Type.Letter()[0]
	}
	if p.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewBoardFromFEN creates a board from a FEN string, discarding the clocks.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	board, _, err := ParseFEN(fen)
	return board, err
}

// ParseFEN parses a FEN string into a board and its move counters.
// Only the piece placement field is required; missing trailing fields
// default to "w - - 0 1".
//
// FEN carries no per-piece move history, so HasMoved is inferred: pawns off
// their home row have moved, and a king or rook counts as unmoved only when
// it stands on its home square and a matching castling right is present.
func ParseFEN(fen string) (*chess.Board, Clocks, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, Clocks{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return nil, Clocks{}, &errors.ParseError{
			Err: errors.ErrInvalidFEN, Input: fen, Expected: "at most 6 fields", Got: strconv.Itoa(len(parts)),
		}
	}

	board := chess.NewBoard()
	clocks := InitialClocks

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, Clocks{}, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, Clocks{}, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, Clocks{}, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, Clocks{}, err
	}
	if err := parseClocks(&clocks, parts); err != nil {
		return nil, Clocks{}, err
	}

	inferHasMoved(board)
	return board, clocks, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{
			Err: errors.ErrInvalidFEN, Input: positions, Expected: "8 ranks", Got: strconv.Itoa(len(ranks)),
		}
	}

	column := 0
	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			column++
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				pt, ok := chess.PieceTypeFromLetter(c)
				if !ok {
					return &errors.ParseError{
						Err: errors.ErrInvalidFEN, Input: positions, Column: column,
						Expected: "piece letter or digit", Got: fmt.Sprintf("%q", c),
					}
				}
				if col >= chess.BoardSize {
					return &errors.ParseError{
						Err: errors.ErrInvalidFEN, Input: positions, Column: column,
						Expected: "8 squares in rank " + strconv.Itoa(chess.BoardSize-row), Got: "more",
					}
				}
				colour := chess.White
				if unicode.IsLower(rune(c)) {
					colour = chess.Black
				}
				board.Place(pt, colour, chess.Sq(row, col))
				col++
			}
		}
		if col != chess.BoardSize {
			return &errors.ParseError{
				Err: errors.ErrInvalidFEN, Input: positions, Column: column,
				Expected: "8 squares in rank " + strconv.Itoa(chess.BoardSize-row), Got: strconv.Itoa(col),
			}
		}
		column++ // the '/'
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.CurrentPlayer = chess.White
	case "b":
		board.CurrentPlayer = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, parts []string) error {
	board.Castling = chess.CastlingRights{}
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			board.Castling.WhiteKingside = true
		case 'Q':
			board.Castling.WhiteQueenside = true
		case 'k':
			board.Castling.BlackKingside = true
		case 'q':
			board.Castling.BlackQueenside = true
		default:
			return fmt.Errorf("invalid castling availability: %s: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, parts []string) error {
	board.EnPassant = chess.EnPassantTarget{}
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(parts[3])
	if !ok || (sq.Row != 2 && sq.Row != 5) {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	board.EnPassant = chess.EnPassantTarget{Active: true, Square: sq}
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(clocks *Clocks, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
		clocks.Halfmove = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
		}
		clocks.Fullmove = n
	}
	return nil
}

// inferHasMoved sets HasMoved on pawns, kings and rooks from their squares
// and the castling rights.
func inferHasMoved(board *chess.Board) {
	const kingCol = 4
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range board.Pieces(colour) {
			switch p.Type {
			case chess.Pawn:
				p.HasMoved = p.Position.Row != colour.PawnRow()
			case chess.King:
				home := chess.Sq(colour.BackRow(), kingCol)
				p.HasMoved = p.Position != home || !board.Castling.Any(colour)
			case chess.Rook:
				c, kingside, ok := chess.RookCorner(p.Position)
				p.HasMoved = !ok || c != colour || !board.Castling.Has(colour, kingside)
			}
		}
	}
}

// BoardToFEN converts a board and its counters to a FEN string.
func BoardToFEN(board *chess.Board, clocks Clocks) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", clocks.Halfmove, clocks.Fullmove)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			p := board.PieceAt(chess.Sq(row, col))
			if p == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(fenLetter(p))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.CurrentPlayer == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	cr := board.Castling
	if cr == (chess.CastlingRights{}) {
		sb.WriteByte('-')
		return
	}
	if cr.WhiteKingside {
		sb.WriteByte('K')
	}
	if cr.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if cr.BlackKingside {
		sb.WriteByte('k')
	}
	if cr.BlackQueenside {
		sb.WriteByte('q')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant.Active {
		sb.WriteString(board.EnPassant.Square.String())
	} else {
		sb.WriteByte('-')
	}
}
