// Package ai provides computer players that choose moves by asking the
// rules engine for legal moves and searching over them.
package ai

import "github.com/lgbarn/chesslogic-go/internal/chess"

// MateScore is the score of a position in which the side to move has been
// checkmated. It dominates any material balance.
const MateScore = 1_000_000

// Heuristic scores a position from White's point of view: positive is good
// for White.
type Heuristic func(board *chess.Board) int

var materialValues = [chess.NumPieceValues]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
}

// PieceValue returns the material weight of a piece kind. Kings are worth 0.
func PieceValue(piece chess.Piece) int {
	if piece < 0 || piece >= chess.NumPieceValues {
		return 0
	}
	return materialValues[piece]
}

// MaterialHeuristic counts White material minus Black material using the
// location index, without scanning the grid.
func MaterialHeuristic(board *chess.Board) int {
	score := 0
	for piece := chess.Pawn; piece < chess.NumPieceValues; piece++ {
		white := board.PieceSquares(chess.White, piece).Len()
		black := board.PieceSquares(chess.Black, piece).Len()
		score += materialValues[piece] * (white - black)
	}
	return score
}

// relative turns a White-positive score into one for colour.
func relative(score int, colour chess.Colour) int {
	if colour == chess.Black {
		return -score
	}
	return score
}
