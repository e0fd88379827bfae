package chess

import (
	"slices"
	"testing"
)

func sqs(pairs ...int) []Square {
	out := make([]Square, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Sq(pairs[i], pairs[i+1]))
	}
	slices.SortFunc(out, CompareSquares)
	return out
}

func TestValidMovesInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name string
		from Square
		want []Square
	}{
		{"white e-pawn", Sq(6, 4), sqs(5, 4, 4, 4)},
		{"black d-pawn", Sq(1, 3), sqs(2, 3, 3, 3)},
		{"white g-knight", Sq(7, 6), sqs(5, 5, 5, 7)},
		{"black b-knight", Sq(0, 1), sqs(2, 0, 2, 2)},
		{"white rook boxed in", Sq(7, 0), nil},
		{"white bishop boxed in", Sq(7, 2), nil},
		{"white queen boxed in", Sq(7, 3), nil},
		{"white king boxed in", Sq(7, 4), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.PieceAt(tt.from).ValidMoves(b)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ValidMoves() = %v; want %v", got, tt.want)
			}
		})
	}

	t.Run("twenty moves for white", func(t *testing.T) {
		total := 0
		for _, p := range b.Pieces(White) {
			total += len(p.ValidMoves(b))
		}
		if total != 20 {
			t.Errorf("total = %d; want 20", total)
		}
	})
}

func TestValidMovesPawn(t *testing.T) {
	t.Run("blocked pawn", func(t *testing.T) {
		b := NewBoard()
		p := b.Place(Pawn, White, Sq(6, 4))
		b.Place(Knight, Black, Sq(5, 4))
		if got := p.ValidMoves(b); len(got) != 0 {
			t.Errorf("ValidMoves() = %v; want none", got)
		}
	})

	t.Run("double step blocked on destination", func(t *testing.T) {
		b := NewBoard()
		p := b.Place(Pawn, Black, Sq(1, 2))
		b.Place(Bishop, White, Sq(3, 2))
		want := sqs(2, 2)
		if got := p.ValidMoves(b); !slices.Equal(got, want) {
			t.Errorf("ValidMoves() = %v; want %v", got, want)
		}
	})

	t.Run("no double step off the home rank", func(t *testing.T) {
		b := NewBoard()
		p := b.Place(Pawn, White, Sq(5, 0))
		want := sqs(4, 0)
		if got := p.ValidMoves(b); !slices.Equal(got, want) {
			t.Errorf("ValidMoves() = %v; want %v", got, want)
		}
	})

	t.Run("captures enemies only", func(t *testing.T) {
		b := NewBoard()
		p := b.Place(Pawn, White, Sq(4, 4))
		b.Place(Rook, Black, Sq(3, 3))
		b.Place(Rook, White, Sq(3, 5))
		want := sqs(3, 3, 3, 4)
		if got := p.ValidMoves(b); !slices.Equal(got, want) {
			t.Errorf("ValidMoves() = %v; want %v", got, want)
		}
	})

	t.Run("edge file drops off-board diagonals", func(t *testing.T) {
		b := NewBoard()
		p := b.Place(Pawn, Black, Sq(1, 7))
		want := sqs(2, 7, 3, 7)
		if got := p.ValidMoves(b); !slices.Equal(got, want) {
			t.Errorf("ValidMoves() = %v; want %v", got, want)
		}
	})
}

func TestValidMovesSliders(t *testing.T) {
	b := NewBoard()
	r := b.Place(Rook, White, Sq(4, 4))
	b.Place(Pawn, White, Sq(4, 6))
	b.Place(Pawn, Black, Sq(2, 4))

	want := sqs(
		3, 4, 2, 4, // up to and including the black pawn
		5, 4, 6, 4, 7, 4,
		4, 3, 4, 2, 4, 1, 4, 0,
		4, 5, // stops before the white pawn
	)
	if got := r.ValidMoves(b); !slices.Equal(got, want) {
		t.Errorf("rook ValidMoves() = %v; want %v", got, want)
	}

	t.Run("bishop in the corner", func(t *testing.T) {
		b := NewBoard()
		bp := b.Place(Bishop, Black, Sq(0, 0))
		want := sqs(1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7)
		if got := bp.ValidMoves(b); !slices.Equal(got, want) {
			t.Errorf("ValidMoves() = %v; want %v", got, want)
		}
	})

	t.Run("queen on an empty board", func(t *testing.T) {
		b := NewBoard()
		q := b.Place(Queen, White, Sq(3, 3))
		if got := len(q.ValidMoves(b)); got != 27 {
			t.Errorf("len(ValidMoves()) = %d; want 27", got)
		}
	})
}

func TestValidMovesSteppers(t *testing.T) {
	t.Run("knight in the corner", func(t *testing.T) {
		b := NewBoard()
		n := b.Place(Knight, White, Sq(7, 7))
		b.Place(Pawn, White, Sq(5, 6))
		want := sqs(6, 5)
		if got := n.ValidMoves(b); !slices.Equal(got, want) {
			t.Errorf("ValidMoves() = %v; want %v", got, want)
		}
	})

	t.Run("king never generates castling", func(t *testing.T) {
		b := NewBoard()
		b.Castling = AllCastlingRights()
		k := b.Place(King, White, Sq(7, 4))
		b.Place(Rook, White, Sq(7, 7))
		want := sqs(6, 3, 6, 4, 6, 5, 7, 3, 7, 5)
		if got := k.ValidMoves(b); !slices.Equal(got, want) {
			t.Errorf("ValidMoves() = %v; want %v", got, want)
		}
	})
}
