package chess

import "slices"

var (
	rookDirs   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	queenDirs  = append(append([][2]int{}, rookDirs...), bishopDirs...)

	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// ValidMoves returns the pseudo-legal destinations of the piece on b, in
// row-major order. Moves that leave the own king in check are not filtered,
// en passant and castling are not generated.
func (p *Piece) ValidMoves(b *Board) []Square {
	var moves []Square
	switch p.Type {
	case Pawn:
		moves = p.pawnMoves(b)
	case Knight:
		moves = p.stepMoves(b, knightOffsets)
	case Bishop:
		moves = p.slideMoves(b, bishopDirs)
	case Rook:
		moves = p.slideMoves(b, rookDirs)
	case Queen:
		moves = p.slideMoves(b, queenDirs)
	case King:
		moves = p.stepMoves(b, kingOffsets)
	}
	slices.SortFunc(moves, CompareSquares)
	return moves
}

func (p *Piece) pawnMoves(b *Board) []Square {
	var moves []Square
	dir := p.Colour.Forward()

	one := p.Position.Add(dir, 0)
	if b.IsEmpty(one) {
		moves = append(moves, one)
		two := p.Position.Add(2*dir, 0)
		if p.Position.Row == p.Colour.PawnRow() && b.IsEmpty(two) {
			moves = append(moves, two)
		}
	}

	for _, dc := range []int{-1, 1} {
		diag := p.Position.Add(dir, dc)
		if target := b.PieceAt(diag); target != nil && target.Colour != p.Colour {
			moves = append(moves, diag)
		}
	}
	return moves
}

func (p *Piece) stepMoves(b *Board, offsets [][2]int) []Square {
	var moves []Square
	for _, off := range offsets {
		sq := p.Position.Add(off[0], off[1])
		if !sq.InBounds() {
			continue
		}
		if target := b.PieceAt(sq); target != nil && target.Colour == p.Colour {
			continue
		}
		moves = append(moves, sq)
	}
	return moves
}

func (p *Piece) slideMoves(b *Board, dirs [][2]int) []Square {
	var moves []Square
	for _, dir := range dirs {
		sq := p.Position.Add(dir[0], dir[1])
		for sq.InBounds() {
			target := b.PieceAt(sq)
			if target == nil {
				moves = append(moves, sq)
				sq = sq.Add(dir[0], dir[1])
				continue
			}
			if target.Colour != p.Colour {
				moves = append(moves, sq)
			}
			break // Blocked
		}
	}
	return moves
}

// CompareSquares orders squares row-major.
func CompareSquares(a, b Square) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}
