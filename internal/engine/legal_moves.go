package engine

import "github.com/lgbarn/chesslogic-go/internal/chess"

// LegalMoves returns every legal move for colour, ordered by origin square
// (a1 first) and then by generation order. The order is deterministic.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range board.Occupied(colour).Coords() {
		moves = append(moves, legalMovesFrom(board, from)...)
	}
	return moves
}

// LegalMovesFrom returns the legal moves of the piece on sq, whichever
// side it belongs to.
func LegalMovesFrom(board *chess.Board, sq chess.Coords) []chess.Move {
	if board.Get(sq).IsEmpty() {
		return nil
	}
	return legalMovesFrom(board, sq)
}

func legalMovesFrom(board *chess.Board, from chess.Coords) []chess.Move {
	var moves []chess.Move
	for _, m := range PseudoLegalMoves(board, from) {
		if tryMove(board, m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, from := range board.Occupied(colour).Coords() {
		for _, m := range PseudoLegalMoves(board, from) {
			if tryMove(board, m) {
				return true
			}
		}
	}
	return false
}

// tryMove applies m and immediately takes it back, reporting whether the
// move was accepted.
func tryMove(board *chess.Board, m chess.Move) bool {
	if err := applyMove(board, m); err != nil {
		return false
	}
	board.Revert()
	return true
}
