package engine

import "github.com/lgbarn/chesslogic-go/internal/chess"

// pieceReach computes the moves and attacked squares of the piece on from.
// King safety is not considered here; it is enforced when a move is applied.
func pieceReach(board *chess.Board, from chess.Coords) reach {
	var r reach
	piece := board.Get(from)

	switch piece.Piece {
	case chess.Pawn:
		pawnReach(board, from, piece.Colour, &r)

	case chess.Knight:
		step(board, from, piece.Colour, chess.KnightJumps, &r)

	case chess.Bishop:
		slide(board, from, piece.Colour, chess.Diagonal, &r)

	case chess.Rook:
		slide(board, from, piece.Colour, chess.Orthogonal, &r)

	case chess.Queen:
		slide(board, from, piece.Colour, chess.AllDirections, &r)

	case chess.King:
		step(board, from, piece.Colour, chess.AllDirections, &r)
		castlingReach(board, from, &r)
	}

	return r
}

// PseudoLegalMoves returns the moves of the piece on from that fit its
// movement pattern and the board occupancy, before the king-safety filter.
// Pawn moves to the last row appear once per promotion piece.
func PseudoLegalMoves(board *chess.Board, from chess.Coords) []chess.Move {
	return pieceReach(board, from).moves
}

// Threatens returns the squares attacked by the piece on from, including
// squares held by its own side.
func Threatens(board *chess.Board, from chess.Coords) chess.SquareSet {
	return pieceReach(board, from).threatens
}
