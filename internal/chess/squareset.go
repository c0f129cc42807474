package chess

import "math/bits"

// SquareSet is a set of on-board coordinates, one bit per square.
type SquareSet uint64

// Add returns the set with c included. Off-board coordinates are ignored.
func (s SquareSet) Add(c Coords) SquareSet {
	if !c.OnBoard() {
		return s
	}
	return s | 1<<uint(c.Index())
}

// Remove returns the set without c.
func (s SquareSet) Remove(c Coords) SquareSet {
	if !c.OnBoard() {
		return s
	}
	return s &^ (1 << uint(c.Index()))
}

// Has reports whether c is in the set.
func (s SquareSet) Has(c Coords) bool {
	return c.OnBoard() && s&(1<<uint(c.Index())) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Coords returns the members in ascending square order (a1, b1, ..., h8).
func (s SquareSet) Coords() []Coords {
	out := make([]Coords, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		out = append(out, CoordsFromIndex(bits.TrailingZeros64(rest)))
	}
	return out
}

// First returns the lowest member, or false if the set is empty.
func (s SquareSet) First() (Coords, bool) {
	if s == 0 {
		return Coords{}, false
	}
	return CoordsFromIndex(bits.TrailingZeros64(uint64(s))), true
}
