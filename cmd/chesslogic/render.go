package main

import (
	"strings"

	"github.com/lgbarn/chesslogic-go/internal/chess"
	"github.com/lgbarn/chesslogic-go/internal/engine"
)

// renderBoard draws a snapshot with rank 8 at the top, White in upper case
// and empty squares as dots.
func renderBoard(s chess.Snapshot) string {
	var sb strings.Builder
	for row := chess.BoardSize - 1; row >= 0; row-- {
		sb.WriteByte(byte(chess.RankBase + row))
		sb.WriteByte(' ')
		for col := 0; col < chess.BoardSize; col++ {
			occ := s.At(chess.Sq(row, col))
			if occ.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(engine.ColouredPieceToFENLetter(chess.MakeColouredPiece(occ.Colour, occ.Piece)))
			}
			if col < chess.BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
