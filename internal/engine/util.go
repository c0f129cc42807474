package engine

import "github.com/lgbarn/chesslogic-go/internal/chess"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// hasTarget reports whether any move in moves lands on to.
func hasTarget(moves []chess.Move, to chess.Coords) bool {
	for _, m := range moves {
		if m.To == to {
			return true
		}
	}
	return false
}
