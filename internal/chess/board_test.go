package chess

import (
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.ToMove != White {
			t.Errorf("ToMove = %v; want White", b.ToMove)
		}
		if b.EnPassant {
			t.Error("EnPassant = true; want false")
		}
		if b.Promotion {
			t.Error("Promotion = true; want false")
		}
		if b.HistoryLen() != 0 {
			t.Errorf("HistoryLen() = %d; want 0", b.HistoryLen())
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for r := 0; r < BoardSize; r++ {
			for c := 0; c < BoardSize; c++ {
				if got := b.Get(Sq(r, c)); !got.IsEmpty() {
					t.Errorf("Get(%v) = %v; want empty", Sq(r, c), got)
				}
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name  string
		sq    Coords
		piece ColouredPiece
	}{
		{"white rook a1", Sq(0, 0), W(Rook)},
		{"white knight b1", Sq(0, 1), W(Knight)},
		{"white queen d1", Sq(0, 3), W(Queen)},
		{"white king e1", Sq(0, 4), W(King)},
		{"white pawn e2", Sq(1, 4), W(Pawn)},
		{"black pawn d7", Sq(6, 3), B(Pawn)},
		{"black queen d8", Sq(7, 3), B(Queen)},
		{"black king e8", Sq(7, 4), B(King)},
		{"black rook h8", Sq(7, 7), B(Rook)},
		{"empty e4", Sq(3, 4), NoPiece},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Get(tt.sq); got != tt.piece {
				t.Errorf("Get(%v) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}

	if got := b.Occupied(White).Len(); got != 16 {
		t.Errorf("Occupied(White).Len() = %d; want 16", got)
	}
	if got := b.PieceSquares(Black, Pawn).Len(); got != 8 {
		t.Errorf("PieceSquares(Black, Pawn).Len() = %d; want 8", got)
	}
	if k, ok := b.KingSquare(Black); !ok || k != Sq(7, 4) {
		t.Errorf("KingSquare(Black) = %v, %v; want e8, true", k, ok)
	}
}

func TestBoardGetSet(t *testing.T) {
	b := NewBoard()

	b.Set(Sq(3, 4), W(Queen))
	if got := b.Get(Sq(3, 4)); got != W(Queen) {
		t.Errorf("Get(e4) = %v; want wQ", got)
	}
	if !b.PieceSquares(White, Queen).Has(Sq(3, 4)) {
		t.Error("location index does not contain e4 after Set")
	}

	// Replacing an occupant moves the index entry too.
	b.Set(Sq(3, 4), B(Knight))
	if b.PieceSquares(White, Queen).Has(Sq(3, 4)) {
		t.Error("location index still has the replaced white queen")
	}
	if !b.PieceSquares(Black, Knight).Has(Sq(3, 4)) {
		t.Error("location index missing black knight on e4")
	}

	b.Clear(Sq(3, 4))
	if !b.Get(Sq(3, 4)).IsEmpty() {
		t.Error("Clear(e4) left a piece behind")
	}
	if b.Occupied(Black) != 0 {
		t.Errorf("Occupied(Black) = %b; want empty", b.Occupied(Black))
	}

	t.Run("off board", func(t *testing.T) {
		b.Set(Sq(8, 0), W(Rook))
		if got := b.Get(Sq(8, 0)); !got.IsEmpty() {
			t.Errorf("Get(off board) = %v; want empty", got)
		}
		if b.Occupied(White) != 0 {
			t.Error("off-board Set changed the location index")
		}
	})
}

func TestBoardCopy(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()
	b.BeginRecord(Move{From: Sq(1, 4), To: Sq(3, 4)})
	b.SetRecorded(Sq(3, 4), b.Get(Sq(1, 4)))
	b.SetRecorded(Sq(1, 4), NoPiece)

	c := b.Copy()
	c.Set(Sq(3, 4), NoPiece)
	c.Revert()

	if got := b.Get(Sq(3, 4)); got != W(Pawn) {
		t.Errorf("original e4 = %v after modifying copy; want wP", got)
	}
	if b.HistoryLen() != 1 {
		t.Errorf("original HistoryLen() = %d; want 1", b.HistoryLen())
	}
	if c.HistoryLen() != 0 {
		t.Errorf("copy HistoryLen() = %d; want 0", c.HistoryLen())
	}
}

func TestBoardRevert(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()
	before := b.Snapshot()

	b.BeginRecord(Move{From: Sq(0, 6), To: Sq(2, 5)})
	knight := b.Get(Sq(0, 6))
	knight.MovesCounter++
	b.SetRecorded(Sq(2, 5), knight)
	b.SetRecorded(Sq(0, 6), NoPiece)
	b.ToMove = Black
	b.EnPassant = true
	b.EPSquare = Sq(2, 5)

	if !b.Revert() {
		t.Fatal("Revert() = false; want true")
	}
	if b.Snapshot() != before {
		t.Error("Snapshot differs after Revert")
	}
	if got := b.Get(Sq(0, 6)); got.MovesCounter != 0 {
		t.Errorf("restored knight MovesCounter = %d; want 0", got.MovesCounter)
	}
	if b.ToMove != White || b.EnPassant {
		t.Errorf("markers not restored: ToMove = %v, EnPassant = %v", b.ToMove, b.EnPassant)
	}
	if b.PieceSquares(White, Knight).Has(Sq(2, 5)) {
		t.Error("location index still has f3 after Revert")
	}
	if b.Revert() {
		t.Error("Revert() on empty history = true; want false")
	}
}

func TestSetRecordedKeepsFirstPrior(t *testing.T) {
	b := NewBoard()
	b.Set(Sq(0, 0), W(Rook))
	b.BeginRecord(Move{})
	b.SetRecorded(Sq(0, 0), W(Queen))
	b.SetRecorded(Sq(0, 0), W(King))

	r, ok := b.LastRecord()
	if !ok {
		t.Fatal("LastRecord() ok = false")
	}
	if len(r.Changes) != 1 {
		t.Fatalf("len(Changes) = %d; want 1", len(r.Changes))
	}
	if r.Changes[0].Prior != W(Rook) {
		t.Errorf("Prior = %v; want wR", r.Changes[0].Prior)
	}
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()
	s := b.Snapshot()
	s[0][0] = Occupant{}
	if b.Get(Sq(0, 0)) != W(Rook) {
		t.Error("modifying a snapshot changed the board")
	}
}
