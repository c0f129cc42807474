package chess

// Board represents a chess board with all state needed for the game.
//
// The grid and the piece-location index are only changed through Set and
// SetRecorded so that the two always agree.
type Board struct {
	// squares[row][col]; row 0 is White's back rank.
	squares [BoardSize][BoardSize]ColouredPiece

	// Squares occupied by each colour and piece type.
	locations [NumColours][NumPieceValues]SquareSet

	// Who has the next move.
	ToMove Colour

	// Is EnPassant capture possible? If so then EPSquare holds the pawn
	// that has just advanced two squares and may be captured.
	EnPassant bool
	EPSquare  Coords

	// Is a promotion choice outstanding? If so the pawn that reached the
	// last row stands on PromotionSquare.
	Promotion       bool
	PromotionSquare Coords

	// Undo stack, one record per ply.
	history []Record
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{ToMove: White}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{ToMove: White}

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Set(Sq(HomeRow(White), col), W(backRank[col]))
		b.Set(Sq(PawnRow(White), col), W(Pawn))
		b.Set(Sq(PawnRow(Black), col), B(Pawn))
		b.Set(Sq(HomeRow(Black), col), B(backRank[col]))
	}
}

// Get returns the occupant of c, or NoPiece when c is empty or off the board.
func (b *Board) Get(c Coords) ColouredPiece {
	if !c.OnBoard() {
		return NoPiece
	}
	return b.squares[c.R][c.C]
}

// Set places p on c, replacing any previous occupant, and updates the
// location index. Setting NoPiece clears the square.
func (b *Board) Set(c Coords, p ColouredPiece) {
	if !c.OnBoard() {
		return
	}
	old := b.squares[c.R][c.C]
	if !old.IsEmpty() {
		b.locations[old.Colour][old.Piece] = b.locations[old.Colour][old.Piece].Remove(c)
	}
	b.squares[c.R][c.C] = p
	if !p.IsEmpty() {
		b.locations[p.Colour][p.Piece] = b.locations[p.Colour][p.Piece].Add(c)
	}
}

// Clear empties c.
func (b *Board) Clear(c Coords) {
	b.Set(c, NoPiece)
}

// PieceSquares returns the squares holding pieces of the given colour and type.
func (b *Board) PieceSquares(colour Colour, piece Piece) SquareSet {
	if piece <= Empty || piece >= NumPieceValues {
		return 0
	}
	return b.locations[colour][piece]
}

// Occupied returns every square holding a piece of the given colour.
func (b *Board) Occupied(colour Colour) SquareSet {
	var s SquareSet
	for piece := Pawn; piece < NumPieceValues; piece++ {
		s |= b.locations[colour][piece]
	}
	return s
}

// KingSquare returns the square of the given colour's king.
func (b *Board) KingSquare(colour Colour) (Coords, bool) {
	return b.locations[colour][King].First()
}

// Copy creates a deep copy of the board, history included.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.history = make([]Record, len(b.history))
	for i, r := range b.history {
		newBoard.history[i] = r.clone()
	}
	return newBoard
}

// Occupant is the read-only view of one square in a Snapshot.
type Occupant struct {
	Colour Colour
	Piece  Piece
}

// IsEmpty reports whether the square was empty.
func (o Occupant) IsEmpty() bool {
	return o.Piece == Empty
}

// Snapshot is a copy of the board contents indexed [row][col].
type Snapshot [BoardSize][BoardSize]Occupant

// At returns the occupant of c.
func (s Snapshot) At(c Coords) Occupant {
	if !c.OnBoard() {
		return Occupant{}
	}
	return s[c.R][c.C]
}

// Snapshot copies the board contents. The result does not alias the board.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			p := b.squares[r][c]
			s[r][c] = Occupant{Colour: p.Colour, Piece: p.Piece}
		}
	}
	return s
}
