package config

import (
	"fmt"

	"github.com/lgbarn/chesslogic-go/internal/errors"
)

// SearchConfig holds the settings of the computer players.
type SearchConfig struct {
	// Plies searched by the minimax player; must be at least 1.
	Depth int

	// Goroutines used to search root moves in parallel (1 = sequential).
	Workers int

	// Seed for the random player.
	Seed int64
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:   1,
		Workers: 1,
		Seed:    1,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 {
		return fmt.Errorf("search depth %d must be at least 1: %w", s.Depth, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("worker count %d must be at least 1: %w", s.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
