package engine

import "github.com/lgbarn/chesslogic-go/internal/chess"

// pawnReach generates pawn pushes, captures and en passant captures.
// Moves onto the last row are expanded into one move per promotion piece.
func pawnReach(board *chess.Board, from chess.Coords, colour chess.Colour, r *reach) {
	dir := chess.ColourOffset(colour)
	forward := chess.Direction{DR: dir}

	// Forward move
	one := from.Add(forward)
	if one.OnBoard() && board.Get(one).IsEmpty() {
		r.add(from, one)
		// Double push from starting row
		if from.R == chess.PawnRow(colour) {
			two := one.Add(forward)
			if board.Get(two).IsEmpty() {
				r.add(from, two)
			}
		}
	}

	// Captures
	for dc := -1; dc <= 1; dc += 2 {
		to := chess.Sq(from.R+dir, from.C+dc)
		if !to.OnBoard() {
			continue
		}
		r.threatens = r.threatens.Add(to)
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour != colour {
			r.add(from, to)
		} else if isEnPassant(board, from, to) {
			r.add(from, to)
		}
	}

	if one.R == chess.LastRow(colour) {
		r.moves = expandPromotions(r.moves)
	}
}

// expandPromotions replaces every move with one move per promotion piece.
func expandPromotions(moves []chess.Move) []chess.Move {
	out := make([]chess.Move, 0, len(moves)*len(chess.PromotionPieces))
	for _, m := range moves {
		for _, p := range chess.PromotionPieces {
			m.Promotion = p
			out = append(out, m)
		}
	}
	return out
}

// isEnPassant reports whether moving the piece on from to to is an en
// passant capture of the pawn that has just made a double push.
func isEnPassant(board *chess.Board, from, to chess.Coords) bool {
	if !board.EnPassant {
		return false
	}
	pawn := board.Get(from)
	if pawn.Piece != chess.Pawn {
		return false
	}
	victimSq := board.EPSquare
	victim := board.Get(victimSq)
	if victim.Piece != chess.Pawn || victim.Colour == pawn.Colour {
		return false
	}
	return victimSq.R == from.R &&
		to.R == from.R+chess.ColourOffset(pawn.Colour) &&
		to.C == victimSq.C &&
		abs(to.C-from.C) == 1 &&
		board.Get(to).IsEmpty()
}

// promotes reports whether a pawn of colour arriving on to must promote.
func promotes(piece chess.ColouredPiece, to chess.Coords) bool {
	return piece.Piece == chess.Pawn && to.R == chess.LastRow(piece.Colour)
}
