// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// NumColours is the number of colours, used to size per-colour tables.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRow returns the back-rank row of the given colour.
func HomeRow(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRow returns the row a pawn of the given colour starts on.
func PawnRow(colour Colour) int {
	return HomeRow(colour) + ColourOffset(colour)
}

// LastRow returns the row on which a pawn of the given colour promotes.
func LastRow(colour Colour) int {
	return HomeRow(colour.Opposite())
}

// Piece represents a chess piece type.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PromotionPieces lists the pieces a pawn may promote to, in generation order.
var PromotionPieces = [...]Piece{Knight, Bishop, Rook, Queen}

// IsPromotionPiece reports whether p is a legal promotion choice.
func IsPromotionPiece(p Piece) bool {
	for _, candidate := range PromotionPieces {
		if p == candidate {
			return true
		}
	}
	return false
}

// ColouredPiece is the occupant of a square: a piece kind, its colour and
// the number of times this particular piece has moved.
type ColouredPiece struct {
	Colour       Colour
	Piece        Piece
	MovesCounter int
}

// NoPiece is the occupant of an empty square.
var NoPiece = ColouredPiece{}

// MakeColouredPiece creates a piece that has never moved.
func MakeColouredPiece(colour Colour, piece Piece) ColouredPiece {
	return ColouredPiece{Colour: colour, Piece: piece}
}

// W creates a white piece.
func W(piece Piece) ColouredPiece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) ColouredPiece {
	return MakeColouredPiece(Black, piece)
}

// Moved returns a copy of p with its move counter set to n.
func (p ColouredPiece) Moved(n int) ColouredPiece {
	p.MovesCounter = n
	return p
}

// IsEmpty reports whether the occupant represents an empty square.
func (p ColouredPiece) IsEmpty() bool {
	return p.Piece == Empty
}

// Is reports whether the occupant is the given colour and kind.
func (p ColouredPiece) Is(colour Colour, piece Piece) bool {
	return p.Piece == piece && p.Colour == colour
}

func (p ColouredPiece) String() string {
	if p.IsEmpty() {
		return "  "
	}
	c := byte('b')
	if p.Colour == White {
		c = 'w'
	}
	return string([]byte{c, p.Piece.Letter()})
}

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	ColBase  = 'a'
)

// Coords addresses a square by 0-indexed row (rank 1 = row 0) and column
// (file a = column 0).
type Coords struct {
	R, C int
}

// Sq builds coordinates from a row and column.
func Sq(r, c int) Coords {
	return Coords{R: r, C: c}
}

// OnBoard reports whether both components are within 0..7.
func (c Coords) OnBoard() bool {
	return c.R >= 0 && c.R < BoardSize && c.C >= 0 && c.C < BoardSize
}

// Add returns the coordinates offset by d.
func (c Coords) Add(d Direction) Coords {
	return Coords{R: c.R + d.DR, C: c.C + d.DC}
}

// Sub returns the offset that leads from o to c.
func (c Coords) Sub(o Coords) Direction {
	return Direction{DR: c.R - o.R, DC: c.C - o.C}
}

// Index returns the square number 0..63 (a1 = 0, h8 = 63).
// The result is meaningless for coordinates that are not on the board.
func (c Coords) Index() int {
	return c.R*BoardSize + c.C
}

// CoordsFromIndex is the inverse of Coords.Index.
func CoordsFromIndex(i int) Coords {
	return Coords{R: i / BoardSize, C: i % BoardSize}
}

// String returns algebraic notation ("e2") for on-board coordinates.
func (c Coords) String() string {
	if !c.OnBoard() {
		return fmt.Sprintf("(%d,%d)", c.R, c.C)
	}
	return string([]byte{byte(ColBase + c.C), byte(RankBase + c.R)})
}

// Direction is a row/column step.
type Direction struct {
	DR, DC int
}

// Direction vector sets.
var (
	Diagonal      = []Direction{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	Orthogonal    = []Direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	AllDirections = append(append([]Direction{}, Diagonal...), Orthogonal...)
	KnightJumps   = []Direction{{1, 2}, {-1, 2}, {-1, -2}, {1, -2}, {2, 1}, {-2, 1}, {-2, -1}, {2, -1}}
)

// Move is a request to move the piece on From to To. Promotion is Empty
// unless the move is a pawn reaching its last row.
type Move struct {
	From      Coords
	To        Coords
	Promotion Piece
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(rune(m.Promotion.Letter() + 'a' - 'A'))
	}
	return s
}

// GameStatus is the state of the game for one side.
type GameStatus int

const (
	Normal GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s GameStatus) String() string {
	switch s {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "Normal"
}

// IsOver reports whether the status ends the game.
func (s GameStatus) IsOver() bool {
	return s == Checkmate || s == Stalemate
}
