package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chesslogic-go/internal/chess"
	chesserrors "github.com/lgbarn/chesslogic-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    chess.Coords
		wantErr bool
	}{
		{"a1", chess.Sq(0, 0), false},
		{"e2", chess.Sq(1, 4), false},
		{"h8", chess.Sq(7, 7), false},
		{"i1", chess.Coords{}, true},
		{"a9", chess.Coords{}, true},
		{"a0", chess.Coords{}, true},
		{"e", chess.Coords{}, true},
		{"e22", chess.Coords{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrCoordinateOutOfRange) {
					t.Errorf("ParseSquare(%q) error = %v, want ErrCoordinateOutOfRange", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in      string
		want    chess.Move
		wantErr error
	}{
		{in: "e2 e4", want: chess.Move{From: chess.Sq(1, 4), To: chess.Sq(3, 4)}},
		{in: "e2e4", want: chess.Move{From: chess.Sq(1, 4), To: chess.Sq(3, 4)}},
		{in: "a7 a8 Q", want: chess.Move{From: chess.Sq(6, 0), To: chess.Sq(7, 0), Promotion: chess.Queen}},
		{in: "a7a8n", want: chess.Move{From: chess.Sq(6, 0), To: chess.Sq(7, 0), Promotion: chess.Knight}},
		{in: "a7a8k", wantErr: chesserrors.ErrInvalidPromotion},
		{in: "a7 a8 P", wantErr: chesserrors.ErrInvalidPromotion},
		{in: "e2", wantErr: chesserrors.ErrCoordinateOutOfRange},
		{in: "e2 e4 Q R", wantErr: chesserrors.ErrCoordinateOutOfRange},
		{in: "z2 e4", wantErr: chesserrors.ErrCoordinateOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMove(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseMove(%q) error = %v, want %v", tt.in, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMoveStringRoundTrip(t *testing.T) {
	for _, text := range []string{"e2e4", "g1f3", "a7a8q", "h2h1n"} {
		m, err := ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q) error: %v", text, err)
		}
		if got := m.String(); got != text {
			t.Errorf("ParseMove(%q).String() = %q", text, got)
		}
	}
}
