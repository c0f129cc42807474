package ai

import (
	"fmt"
	"math/rand"

	"github.com/lgbarn/chesslogic-go/internal/chess"
	"github.com/lgbarn/chesslogic-go/internal/config"
	"github.com/lgbarn/chesslogic-go/internal/engine"
	"github.com/lgbarn/chesslogic-go/internal/errors"
)

// Player chooses moves for one side. ChooseMove may use the board for
// search but must return it in the state it was given.
type Player interface {
	Name() string
	Colour() chess.Colour
	ChooseMove(board *chess.Board) (chess.Move, error)
}

// NewPlayer builds the player configured for colour.
func NewPlayer(colour chess.Colour, cfg *config.Config) (Player, error) {
	switch kind := cfg.Player(colour); kind {
	case config.RandomPlayer:
		return NewRandomPlayer(colour, cfg.Search.Seed+int64(colour)), nil
	case config.MinMaxPlayer:
		p, err := NewMinMaxPlayer(colour, cfg.Search.Depth, MaterialHeuristic,
			WithSearchWorkers(cfg.Search.Workers), WithConfig(cfg))
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown player kind %d: %w", kind, errors.ErrInvalidConfig)
	}
}

// legalMoves returns the moves available to the side to move, or
// ErrNoLegalMoves.
func legalMoves(board *chess.Board, colour chess.Colour) ([]chess.Move, error) {
	if board.Promotion {
		return nil, errors.ErrPromotionPending
	}
	if board.ToMove != colour {
		return nil, errors.Wrapf(errors.ErrWrongSideToMove, "%s asked to move", colour)
	}
	moves := engine.LegalMoves(board, colour)
	if len(moves) == 0 {
		return nil, errors.Wrapf(errors.ErrNoLegalMoves, "%s", colour)
	}
	return moves, nil
}

// RandomPlayer picks uniformly among the legal moves.
type RandomPlayer struct {
	colour chess.Colour
	rng    *rand.Rand
}

// NewRandomPlayer creates a random player with its own seeded source.
func NewRandomPlayer(colour chess.Colour, seed int64) *RandomPlayer {
	return &RandomPlayer{colour: colour, rng: rand.New(rand.NewSource(seed))}
}

// Name returns "random".
func (p *RandomPlayer) Name() string { return "random" }

// Colour returns the side the player moves for.
func (p *RandomPlayer) Colour() chess.Colour { return p.colour }

// ChooseMove returns a uniformly chosen legal move.
func (p *RandomPlayer) ChooseMove(board *chess.Board) (chess.Move, error) {
	moves, err := legalMoves(board, p.colour)
	if err != nil {
		return chess.Move{}, err
	}
	return moves[p.rng.Intn(len(moves))], nil
}
