// Package config provides configuration for games played through the engine.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chesslogic-go/internal/chess"
	"github.com/lgbarn/chesslogic-go/internal/errors"
)

// PlayerKind selects who makes the moves for one side.
type PlayerKind int

const (
	RandomPlayer PlayerKind = iota // Uniformly random legal move
	MinMaxPlayer                   // Fixed-depth minimax search
)

// String returns the string representation of a player kind.
func (k PlayerKind) String() string {
	if k == MinMaxPlayer {
		return "minmax"
	}
	return "random"
}

// ParsePlayerKind accepts "r", "random", "m" or "minmax".
func ParsePlayerKind(s string) (PlayerKind, error) {
	switch strings.ToLower(s) {
	case "r", "random":
		return RandomPlayer, nil
	case "m", "minmax":
		return MinMaxPlayer, nil
	}
	return RandomPlayer, fmt.Errorf("unknown player %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game summary, 2=running commentary

	// Piece placement to start from; empty means the standard position.
	StartFEN string

	// Moves played before the players take over, e.g. "e2e4 e7e5".
	OpeningMoves []string

	// Stop after this many plies (0 = play until the game ends).
	MaxPlies int

	// Who plays each side.
	White PlayerKind
	Black PlayerKind

	Search *SearchConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		MaxPlies:   200,
		White:      MinMaxPlayer,
		Black:      RandomPlayer,
		Search:     NewSearchConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Player returns the configured player kind for colour.
func (c *Config) Player(colour chess.Colour) PlayerKind {
	if colour == chess.White {
		return c.White
	}
	return c.Black
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.MaxPlies < 0 {
		return fmt.Errorf("max plies %d is negative: %w", c.MaxPlies, errors.ErrInvalidConfig)
	}
	if c.Search == nil {
		return fmt.Errorf("missing search configuration: %w", errors.ErrInvalidConfig)
	}
	return c.Search.Validate()
}

// Logf writes a message to the log file when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
