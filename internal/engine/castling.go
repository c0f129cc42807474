package engine

import "github.com/lgbarn/chesslogic-go/internal/chess"

// kingHomeCol is the column a king must stand on to castle.
const kingHomeCol = 4

// castleSquares returns, for a king move from -> to, the corner the rook
// castles from and the square it lands on.
func castleSquares(from, to chess.Coords) (rookFrom, rookTo chess.Coords, ok bool) {
	if from.R != to.R || abs(to.C-from.C) != 2 {
		return chess.Coords{}, chess.Coords{}, false
	}
	dir := sign(to.C - from.C)
	rookCol := 0
	if dir > 0 {
		rookCol = chess.BoardSize - 1
	}
	return chess.Sq(from.R, rookCol), chess.Sq(from.R, from.C+dir), true
}

// isCastle reports whether moving the piece on from to to is a castling move.
func isCastle(board *chess.Board, from, to chess.Coords) bool {
	_, _, ok := castleSquares(from, to)
	return ok && board.Get(from).Piece == chess.King
}

// canCastle checks that neither king nor rook has moved and that every
// square between them is empty. Attacks are checked by castlingPathSafe.
func canCastle(board *chess.Board, from, to chess.Coords) bool {
	king := board.Get(from)
	if king.Piece != chess.King || king.MovesCounter != 0 {
		return false
	}
	if from.R != chess.HomeRow(king.Colour) || from.C != kingHomeCol {
		return false
	}
	rookFrom, _, ok := castleSquares(from, to)
	if !ok {
		return false
	}
	rook := board.Get(rookFrom)
	if !rook.Is(king.Colour, chess.Rook) || rook.MovesCounter != 0 {
		return false
	}
	dir := sign(rookFrom.C - from.C)
	for c := from.C + dir; c != rookFrom.C; c += dir {
		if !board.Get(chess.Sq(from.R, c)).IsEmpty() {
			return false
		}
	}
	return true
}

// castlingPathSafe reports whether the king's origin, the square it passes
// and the square it lands on are all free of enemy attack.
func castlingPathSafe(board *chess.Board, from, to chess.Coords) bool {
	enemy := board.Get(from).Colour.Opposite()
	dir := sign(to.C - from.C)
	for c := from.C; ; c += dir {
		if IsUnderThreat(board, chess.Sq(from.R, c), enemy) {
			return false
		}
		if c == to.C {
			return true
		}
	}
}

// castlingReach adds the castling targets that are physically available.
func castlingReach(board *chess.Board, from chess.Coords, r *reach) {
	for _, dc := range []int{2, -2} {
		to := chess.Sq(from.R, from.C+dc)
		if to.OnBoard() && canCastle(board, from, to) {
			r.add(from, to)
		}
	}
}

// applyCastle moves king and rook inside the open history record.
func applyCastle(board *chess.Board, from, to chess.Coords) {
	rookFrom, rookTo, _ := castleSquares(from, to)
	movePiece(board, from, to)
	movePiece(board, rookFrom, rookTo)
}
