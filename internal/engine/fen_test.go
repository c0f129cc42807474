package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chesslogic-go/internal/chess"
	chesserrors "github.com/lgbarn/chesslogic-go/internal/errors"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr error
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.Sq(0, 4)) == chess.W(chess.King) &&
					b.Get(chess.Sq(7, 4)) == chess.B(chess.King) &&
					b.Get(chess.Sq(1, 4)) == chess.W(chess.Pawn) &&
					b.Get(chess.Sq(6, 4)) == chess.B(chess.Pawn) &&
					b.ToMove == chess.White
			},
		},
		{
			name: "extra fields are ignored",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.Sq(3, 4)) == chess.W(chess.Pawn) &&
					b.Get(chess.Sq(1, 4)).IsEmpty() &&
					b.ToMove == chess.White &&
					!b.EnPassant
			},
		},
		{
			name: "kings only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(b *chess.Board) bool {
				return b.Occupied(chess.White).Len() == 1 && b.Occupied(chess.Black).Len() == 1
			},
		},
		{name: "empty string", fen: "", wantErr: chesserrors.ErrInvalidFEN},
		{name: "bad letter", fen: "4k3/8/8/8/8/8/8/4X3", wantErr: chesserrors.ErrInvalidFEN},
		{name: "seven ranks", fen: "4k3/8/8/8/8/8/4K3", wantErr: chesserrors.ErrInvalidFEN},
		{name: "long rank", fen: "4k3/8/8/8/8/8/8/4K4", wantErr: chesserrors.ErrInvalidFEN},
		{name: "short rank", fen: "4k3/8/8/8/8/8/8/4K2", wantErr: chesserrors.ErrInvalidFEN},
		{name: "no white king", fen: "4k3/8/8/8/8/8/8/8", wantErr: chesserrors.ErrMissingKing},
		{name: "two black kings", fen: "k3k3/8/8/8/8/8/8/4K3", wantErr: chesserrors.ErrInvalidFEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewBoardFromFEN() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if tt.checkFn != nil && !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN() board check failed")
			}
		})
	}
}

func TestBoardToFEN(t *testing.T) {
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R",
		"8/8/8/8/8/8/8/k3K3",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			board, err := NewBoardFromFEN(fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN() error = %v", err)
			}
			if got := BoardToFEN(board); got != fen {
				t.Errorf("BoardToFEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestNewInitialBoard(t *testing.T) {
	board := NewInitialBoard()
	if got := BoardToFEN(board); got != InitialFEN {
		t.Errorf("BoardToFEN(NewInitialBoard()) = %q, want %q", got, InitialFEN)
	}
}
