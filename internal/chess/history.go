package chess

// SquareRecord holds the occupant a square had before a ply changed it.
type SquareRecord struct {
	Square Coords
	Prior  ColouredPiece
}

// Record captures everything needed to take back one ply: the prior
// occupant of every square it touched plus the board markers it replaced.
type Record struct {
	Move    Move
	Changes []SquareRecord

	ToMove          Colour
	EnPassant       bool
	EPSquare        Coords
	Promotion       bool
	PromotionSquare Coords
}

func (r Record) clone() Record {
	r.Changes = append([]SquareRecord(nil), r.Changes...)
	return r
}

// BeginRecord opens a new history record for m, saving the current markers.
// Subsequent SetRecorded calls are captured in it.
func (b *Board) BeginRecord(m Move) {
	b.history = append(b.history, Record{
		Move:            m,
		Changes:         make([]SquareRecord, 0, 4),
		ToMove:          b.ToMove,
		EnPassant:       b.EnPassant,
		EPSquare:        b.EPSquare,
		Promotion:       b.Promotion,
		PromotionSquare: b.PromotionSquare,
	})
}

// SetRecorded behaves like Set but first saves the square's occupant in the
// open record. Only the first change to a square within a record is kept.
func (b *Board) SetRecorded(c Coords, p ColouredPiece) {
	if n := len(b.history); n > 0 && c.OnBoard() {
		top := &b.history[n-1]
		seen := false
		for _, ch := range top.Changes {
			if ch.Square == c {
				seen = true
				break
			}
		}
		if !seen {
			top.Changes = append(top.Changes, SquareRecord{Square: c, Prior: b.Get(c)})
		}
	}
	b.Set(c, p)
}

// Revert pops the most recent record and restores the board to the state it
// was in before that record was opened. It returns false if there is
// nothing to revert.
func (b *Board) Revert() bool {
	n := len(b.history)
	if n == 0 {
		return false
	}
	r := b.history[n-1]
	b.history = b.history[:n-1]

	for i := len(r.Changes) - 1; i >= 0; i-- {
		b.Set(r.Changes[i].Square, r.Changes[i].Prior)
	}
	b.ToMove = r.ToMove
	b.EnPassant = r.EnPassant
	b.EPSquare = r.EPSquare
	b.Promotion = r.Promotion
	b.PromotionSquare = r.PromotionSquare
	return true
}

// HistoryLen returns the number of plies that can be taken back.
func (b *Board) HistoryLen() int {
	return len(b.history)
}

// LastRecord returns a copy of the most recent record.
func (b *Board) LastRecord() (Record, bool) {
	if len(b.history) == 0 {
		return Record{}, false
	}
	return b.history[len(b.history)-1].clone(), true
}
