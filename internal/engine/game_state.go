package engine

import (
	"github.com/lgbarn/chesslogic-go/internal/chess"
	"github.com/lgbarn/chesslogic-go/internal/errors"
)

// Status returns Normal, Check, Checkmate or Stalemate for colour.
// A board without colour's king returns errors.ErrMissingKing, which is
// fatal for the game.
func Status(board *chess.Board, colour chess.Colour) (chess.GameStatus, error) {
	king, ok := board.KingSquare(colour)
	if !ok {
		return chess.Normal, errors.Wrapf(errors.ErrMissingKing, "%s has no king", colour)
	}

	inCheck := IsUnderThreat(board, king, colour.Opposite())
	canMove := HasLegalMoves(board, colour)

	switch {
	case inCheck && !canMove:
		return chess.Checkmate, nil
	case inCheck:
		return chess.Check, nil
	case !canMove:
		return chess.Stalemate, nil
	}
	return chess.Normal, nil
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.ToMove
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
