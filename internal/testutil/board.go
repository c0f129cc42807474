package testutil

import (
	"testing"

	"github.com/lgbarn/chesslogic-go/internal/chess"
	"github.com/lgbarn/chesslogic-go/internal/engine"
)

// MustBoard builds a board from a piece placement, or the standard position
// when fen is empty. It calls t.Fatal if the placement is invalid.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	if fen == "" {
		return engine.NewInitialBoard()
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

// MustMove parses coordinate notation such as "e2e4" or "a7 a8 Q".
func MustMove(t *testing.T, text string) chess.Move {
	t.Helper()
	m, err := engine.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", text, err)
	}
	return m
}

// MustSquare parses algebraic coordinates such as "e4".
func MustSquare(t *testing.T, text string) chess.Coords {
	t.Helper()
	sq, err := engine.ParseSquare(text)
	if err != nil {
		t.Fatalf("ParseSquare(%q) error: %v", text, err)
	}
	return sq
}

// MustPlay plays each move in turn and calls t.Fatal on the first rejection.
func MustPlay(t *testing.T, board *chess.Board, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if err := engine.Play(board, MustMove(t, text)); err != nil {
			t.Fatalf("Play(%s) error: %v", text, err)
		}
	}
}
