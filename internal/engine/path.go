package engine

import "github.com/lgbarn/chesslogic-go/internal/chess"

// reach is what a single piece can do from its square: the moves it could
// make ignoring king safety, and the squares it attacks.
type reach struct {
	moves     []chess.Move
	threatens chess.SquareSet
}

func (r *reach) add(from, to chess.Coords) {
	r.moves = append(r.moves, chess.Move{From: from, To: to})
}

// slide walks each direction from from until the board edge or the first
// occupied square. An enemy on that square can be captured; a friendly
// piece is only covered.
func slide(board *chess.Board, from chess.Coords, colour chess.Colour, dirs []chess.Direction, r *reach) {
	for _, dir := range dirs {
		for to := from.Add(dir); to.OnBoard(); to = to.Add(dir) {
			r.threatens = r.threatens.Add(to)
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					r.add(from, to)
				}
				break // Blocked
			}
			r.add(from, to)
		}
	}
}

// step tries each offset once from from, for knights and kings.
func step(board *chess.Board, from chess.Coords, colour chess.Colour, offsets []chess.Direction, r *reach) {
	for _, offset := range offsets {
		to := from.Add(offset)
		if !to.OnBoard() {
			continue
		}
		r.threatens = r.threatens.Add(to)
		target := board.Get(to)
		if target.IsEmpty() || target.Colour != colour {
			r.add(from, to)
		}
	}
}
