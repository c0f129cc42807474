package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lgbarn/chesslogic-go/internal/chess"
	chesserrors "github.com/lgbarn/chesslogic-go/internal/errors"
)

// TestConfig_Defaults verifies Config has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Search.Depth != 1 {
		t.Errorf("Search.Depth = %d, want 1", cfg.Search.Depth)
	}
	if cfg.Search.Workers != 1 {
		t.Errorf("Search.Workers = %d, want 1", cfg.Search.Workers)
	}
	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.Player(chess.White) != MinMaxPlayer {
		t.Errorf("Player(White) = %v, want minmax", cfg.Player(chess.White))
	}
	if cfg.Player(chess.Black) != RandomPlayer {
		t.Errorf("Player(Black) = %v, want random", cfg.Player(chess.Black))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v, want nil", err)
	}
}

// TestSearchConfig_Validate verifies search config validation
func TestSearchConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SearchConfig
		wantErr bool
	}{
		{"defaults", *NewSearchConfig(), false},
		{"depth 3 with 4 workers", SearchConfig{Depth: 3, Workers: 4}, false},
		{"zero depth", SearchConfig{Depth: 0, Workers: 1}, true},
		{"zero workers", SearchConfig{Depth: 2, Workers: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfig_ValidateMaxPlies rejects negative ply limits
func TestConfig_ValidateMaxPlies(t *testing.T) {
	cfg := NewConfigBuilder().WithMaxPlies(-1).Build()
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
	}
}

// TestParsePlayerKind covers the accepted spellings
func TestParsePlayerKind(t *testing.T) {
	tests := []struct {
		in      string
		want    PlayerKind
		wantErr bool
	}{
		{"r", RandomPlayer, false},
		{"random", RandomPlayer, false},
		{"m", MinMaxPlayer, false},
		{"MinMax", MinMaxPlayer, false},
		{"human", RandomPlayer, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlayerKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePlayerKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePlayerKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestConfigBuilder verifies the fluent builder
func TestConfigBuilder(t *testing.T) {
	var log bytes.Buffer
	cfg := NewConfigBuilder().
		WithDepth(3).
		WithWorkers(2).
		WithSeed(42).
		WithPlayers(RandomPlayer, MinMaxPlayer).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3").
		WithOpeningMoves("e2e4", "e7e5").
		WithMaxPlies(10).
		WithLogFile(&log).
		WithVerbosity(2).
		Build()

	if cfg.Search.Depth != 3 || cfg.Search.Workers != 2 || cfg.Search.Seed != 42 {
		t.Errorf("Search = %+v, want depth 3, workers 2, seed 42", *cfg.Search)
	}
	if cfg.White != RandomPlayer || cfg.Black != MinMaxPlayer {
		t.Errorf("players = %v/%v, want random/minmax", cfg.White, cfg.Black)
	}
	if len(cfg.OpeningMoves) != 2 {
		t.Errorf("len(OpeningMoves) = %d, want 2", len(cfg.OpeningMoves))
	}
	if cfg.MaxPlies != 10 {
		t.Errorf("MaxPlies = %d, want 10", cfg.MaxPlies)
	}

	cfg.Logf(2, "ply %d\n", 1)
	cfg.Logf(3, "too chatty\n")
	if got := log.String(); got != "ply 1\n" {
		t.Errorf("log = %q, want %q", got, "ply 1\n")
	}
}
