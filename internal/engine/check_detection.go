package engine

import (
	"github.com/lgbarn/chesslogic-go/internal/chess"
	"github.com/lgbarn/chesslogic-go/internal/errors"
)

// IsInCheck returns true if the given colour's king is in check.
// A board without that king is never in check; Status reports it instead.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.KingSquare(colour)
	if !ok {
		return false // No king found
	}
	return IsUnderThreat(board, king, colour.Opposite())
}

// IsUnderThreat returns true if any piece of byColour attacks sq.
// Every piece's attack set is recomputed; there are no shortcuts for pins
// or lines.
func IsUnderThreat(board *chess.Board, sq chess.Coords, byColour chess.Colour) bool {
	for piece := chess.Pawn; piece < chess.NumPieceValues; piece++ {
		for _, from := range board.PieceSquares(byColour, piece).Coords() {
			if Threatens(board, from).Has(sq) {
				return true
			}
		}
	}
	return false
}

// kingExposed returns ErrKingExposed if colour's king is attacked, or
// ErrMissingKing if colour has no king at all.
func kingExposed(board *chess.Board, colour chess.Colour) error {
	king, ok := board.KingSquare(colour)
	if !ok {
		return errors.Wrapf(errors.ErrMissingKing, "%s has no king", colour)
	}
	if IsUnderThreat(board, king, colour.Opposite()) {
		return errors.ErrKingExposed
	}
	return nil
}
