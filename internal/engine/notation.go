package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesslogic-go/internal/chess"
	"github.com/lgbarn/chesslogic-go/internal/errors"
)

// ParseSquare converts algebraic coordinates such as "e2" to Coords.
func ParseSquare(s string) (chess.Coords, error) {
	if len(s) != 2 {
		return chess.Coords{}, fmt.Errorf("invalid coordinates %q: %w", s, errors.ErrCoordinateOutOfRange)
	}
	col := int(s[0]) - chess.ColBase
	row := int(s[1]) - chess.RankBase
	c := chess.Sq(row, col)
	if !c.OnBoard() {
		return chess.Coords{}, fmt.Errorf("invalid coordinates %q: %w", s, errors.ErrCoordinateOutOfRange)
	}
	return c, nil
}

// ParsePromotion converts a promotion letter (Q, R, B or N, either case).
func ParsePromotion(s string) (chess.Piece, error) {
	if len(s) == 1 {
		if p := ConvertFENCharToPiece(s[0]); chess.IsPromotionPiece(p) {
			return p, nil
		}
	}
	return chess.Empty, fmt.Errorf("invalid promotion %q: %w", s, errors.ErrInvalidPromotion)
}

// ParseMove accepts "e2 e4", "a7 a8 Q", "e2e4" or "a7a8q".
func ParseMove(text string) (chess.Move, error) {
	fields := strings.Fields(text)
	if len(fields) == 1 && (len(fields[0]) == 4 || len(fields[0]) == 5) {
		s := fields[0]
		fields = []string{s[0:2], s[2:4]}
		if len(s) == 5 {
			fields = append(fields, s[4:])
		}
	}
	if len(fields) != 2 && len(fields) != 3 {
		return chess.Move{}, fmt.Errorf("invalid move %q: %w", text, errors.ErrCoordinateOutOfRange)
	}

	var m chess.Move
	var err error
	if m.From, err = ParseSquare(fields[0]); err != nil {
		return chess.Move{}, err
	}
	if m.To, err = ParseSquare(fields[1]); err != nil {
		return chess.Move{}, err
	}
	if len(fields) == 3 {
		if m.Promotion, err = ParsePromotion(fields[2]); err != nil {
			return chess.Move{}, err
		}
	}
	return m, nil
}
