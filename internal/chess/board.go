package chess

// Board represents a chess board with all state needed to apply moves.
// Turn switching is not the board's job: CurrentPlayer is set by the
// game session that owns it.
type Board struct {
	// Grid of piece ids, tiles[row][col]; NoPiece marks an empty square.
	tiles [BoardSize][BoardSize]PieceID

	// Arena of every piece created on this board; pieces[id-1].
	// Captured pieces stay here so undo can put them back.
	pieces []*Piece

	// Who is allowed to move next.
	CurrentPlayer Colour

	// Square a pawn may capture onto en passant on the next move only.
	EnPassant EnPassantTarget

	// Castling eligibility per colour and side.
	Castling CastlingRights

	captured []PieceID
	lastMove MoveInfo
	hasLast  bool
	selected PieceID
}

// NewBoard creates a new empty board with white to move and no castling rights.
func NewBoard() *Board {
	return &Board{CurrentPlayer: White}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and sets up the standard starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{CurrentPlayer: White, Castling: AllCastlingRights()}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, pt := range backRank {
		b.Place(pt, Black, Sq(Black.BackRow(), col))
		b.Place(Pawn, Black, Sq(Black.PawnRow(), col))
		b.Place(Pawn, White, Sq(White.PawnRow(), col))
		b.Place(pt, White, Sq(White.BackRow(), col))
	}
}

// Place creates a new piece in the arena and puts it on sq, replacing
// whatever stood there. It returns nil if sq is off the board.
func (b *Board) Place(t PieceType, c Colour, sq Square) *Piece {
	if !sq.InBounds() {
		return nil
	}
	p := &Piece{
		ID:       PieceID(len(b.pieces) + 1),
		Type:     t,
		Colour:   c,
		Position: sq,
	}
	b.pieces = append(b.pieces, p)
	b.tiles[sq.Row][sq.Col] = p.ID
	return p
}

// Piece returns the arena piece for an id, or nil.
func (b *Board) Piece(id PieceID) *Piece {
	if id <= NoPiece || int(id) > len(b.pieces) {
		return nil
	}
	return b.pieces[id-1]
}

// PieceAt returns the piece on sq, or nil if the square is empty or off the board.
func (b *Board) PieceAt(sq Square) *Piece {
	if !sq.InBounds() {
		return nil
	}
	return b.Piece(b.tiles[sq.Row][sq.Col])
}

// IsEmpty reports whether sq is on the board and unoccupied.
func (b *Board) IsEmpty(sq Square) bool {
	return sq.InBounds() && b.tiles[sq.Row][sq.Col] == NoPiece
}

// Put places p on sq and updates its position. A nil p empties the square.
// It does not touch the square p came from.
func (b *Board) Put(sq Square, p *Piece) {
	if !sq.InBounds() {
		return
	}
	if p == nil {
		b.tiles[sq.Row][sq.Col] = NoPiece
		return
	}
	b.tiles[sq.Row][sq.Col] = p.ID
	p.Position = sq
}

// Remove empties sq and returns the piece that stood there, if any.
// The piece keeps its last Position so it can be restored later.
func (b *Board) Remove(sq Square) *Piece {
	p := b.PieceAt(sq)
	if p != nil {
		b.tiles[sq.Row][sq.Col] = NoPiece
	}
	return p
}

// Grid returns a copy of the id grid for drawing.
func (b *Board) Grid() [BoardSize][BoardSize]PieceID {
	return b.tiles
}

// Pieces returns the pieces of a colour currently on the board, row-major.
func (b *Board) Pieces(c Colour) []*Piece {
	var out []*Piece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Piece(b.tiles[row][col]); p != nil && p.Colour == c {
				out = append(out, p)
			}
		}
	}
	return out
}

// FindKing returns the king of the given colour, or nil if there is none.
func (b *Board) FindKing(c Colour) *Piece {
	for _, p := range b.Pieces(c) {
		if p.Type == King {
			return p
		}
	}
	return nil
}

// Captured returns the captured pieces in capture order.
func (b *Board) Captured() []PieceID {
	out := make([]PieceID, len(b.captured))
	copy(out, b.captured)
	return out
}

// AddCaptured appends a piece to the captured list.
func (b *Board) AddCaptured(id PieceID) {
	b.captured = append(b.captured, id)
}

// RemoveCaptured removes the most recent occurrence of id from the captured list.
func (b *Board) RemoveCaptured(id PieceID) bool {
	for i := len(b.captured) - 1; i >= 0; i-- {
		if b.captured[i] == id {
			b.captured = append(b.captured[:i], b.captured[i+1:]...)
			return true
		}
	}
	return false
}

// LastMove returns metadata about the most recent move applied to the board.
func (b *Board) LastMove() (MoveInfo, bool) {
	return b.lastMove, b.hasLast
}

// SetLastMove records the most recent move.
func (b *Board) SetLastMove(m MoveInfo) {
	b.lastMove = m
	b.hasLast = true
}

// ClearLastMove forgets the most recent move.
func (b *Board) ClearLastMove() {
	b.lastMove = MoveInfo{}
	b.hasLast = false
}

// SelectPiece selects the piece on sq if it belongs to the current player,
// otherwise it clears the selection.
func (b *Board) SelectPiece(sq Square) {
	p := b.PieceAt(sq)
	if p == nil || p.Colour != b.CurrentPlayer {
		b.selected = NoPiece
		return
	}
	b.selected = p.ID
}

// Selected returns the selected piece, or nil.
func (b *Board) Selected() *Piece {
	return b.Piece(b.selected)
}

// ClearSelection drops the current selection.
func (b *Board) ClearSelection() {
	b.selected = NoPiece
}
