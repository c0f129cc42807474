package ai

import (
	"fmt"

	"github.com/lgbarn/chesslogic-go/internal/chess"
	"github.com/lgbarn/chesslogic-go/internal/config"
	"github.com/lgbarn/chesslogic-go/internal/engine"
	"github.com/lgbarn/chesslogic-go/internal/errors"
	"github.com/lgbarn/chesslogic-go/internal/worker"
)

// MinMaxPlayer searches every line to a fixed depth and plays the move
// with the best guaranteed heuristic score.
type MinMaxPlayer struct {
	colour    chess.Colour
	depth     int
	heuristic Heuristic
	workers   int
	cfg       *config.Config
}

// MinMaxOption configures a MinMaxPlayer.
type MinMaxOption func(*MinMaxPlayer)

// WithSearchWorkers evaluates root moves on n goroutines, each on its own
// copy of the board.
func WithSearchWorkers(n int) MinMaxOption {
	return func(p *MinMaxPlayer) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithConfig sends search commentary to the config's log.
func WithConfig(cfg *config.Config) MinMaxOption {
	return func(p *MinMaxPlayer) {
		p.cfg = cfg
	}
}

// NewMinMaxPlayer creates a minimax player. depth must be at least 1.
func NewMinMaxPlayer(colour chess.Colour, depth int, h Heuristic, opts ...MinMaxOption) (*MinMaxPlayer, error) {
	if depth < 1 {
		return nil, fmt.Errorf("search depth %d must be at least 1: %w", depth, errors.ErrInvalidConfig)
	}
	if h == nil {
		h = MaterialHeuristic
	}
	p := &MinMaxPlayer{colour: colour, depth: depth, heuristic: h, workers: 1}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Name returns "minmax".
func (p *MinMaxPlayer) Name() string { return "minmax" }

// Colour returns the side the player moves for.
func (p *MinMaxPlayer) Colour() chess.Colour { return p.colour }

// Depth returns the search depth in plies.
func (p *MinMaxPlayer) Depth() int { return p.depth }

// ChooseMove returns the first root move with the highest score.
func (p *MinMaxPlayer) ChooseMove(board *chess.Board) (chess.Move, error) {
	moves, err := legalMoves(board, p.colour)
	if err != nil {
		return chess.Move{}, err
	}

	var results []worker.ProcessResult
	if p.workers > 1 && len(moves) > 1 {
		results = p.scoreParallel(board, moves)
	} else {
		results = p.scoreSequential(board, moves)
	}

	best := -1
	for i, res := range results {
		if res.Error != nil {
			p.cfg.Logf(2, "%s: skipped %s: %v\n", p.colour, res.Move, res.Error)
			continue
		}
		if best < 0 || res.Score > results[best].Score {
			best = i
		}
	}
	if best < 0 {
		return chess.Move{}, errors.Wrapf(errors.ErrNoLegalMoves, "%s", p.colour)
	}
	p.cfg.Logf(2, "%s: %s scores %d at depth %d\n", p.colour, results[best].Move, results[best].Score, p.depth)
	return results[best].Move, nil
}

// scoreSequential scores the root moves on the caller's board.
func (p *MinMaxPlayer) scoreSequential(board *chess.Board, moves []chess.Move) []worker.ProcessResult {
	results := make([]worker.ProcessResult, len(moves))
	for i, m := range moves {
		results[i] = p.scoreRoot(worker.WorkItem{Board: board, Move: m, Index: i})
	}
	return results
}

// scoreParallel scores the root moves on independent board copies.
func (p *MinMaxPlayer) scoreParallel(board *chess.Board, moves []chess.Move) []worker.ProcessResult {
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Board: board.Copy(), Move: m, Index: i}
	}
	return worker.Map(items, p.workers, p.scoreRoot)
}

// scoreRoot plays one root move, searches the reply tree and takes the
// move back.
func (p *MinMaxPlayer) scoreRoot(item worker.WorkItem) worker.ProcessResult {
	res := worker.ProcessResult{Move: item.Move, Index: item.Index}
	if err := engine.Play(item.Board, item.Move); err != nil {
		res.Error = err
		return res
	}
	res.Score = p.minimax(item.Board, p.depth-1)
	if err := engine.Undo(item.Board); err != nil {
		res.Error = err
	}
	return res
}

// minimax returns the score of board for the root player. The side to move
// maximises when it is the root player and minimises otherwise.
func (p *MinMaxPlayer) minimax(board *chess.Board, depth int) int {
	if depth == 0 {
		return relative(p.heuristic(board), p.colour)
	}

	maximising := board.ToMove == p.colour
	best, found := 0, false
	for _, m := range engine.LegalMoves(board, board.ToMove) {
		if err := engine.Play(board, m); err != nil {
			continue
		}
		score := p.minimax(board, depth-1)
		_ = engine.Undo(board)

		if !found || (maximising && score > best) || (!maximising && score < best) {
			best, found = score, true
		}
	}
	if found {
		return best
	}

	// No legal move: mate or stalemate. Nearer mates score further from 0.
	if !engine.IsInCheck(board, board.ToMove) {
		return 0
	}
	if maximising {
		return -(MateScore + depth)
	}
	return MateScore + depth
}
