package engine

import (
	"github.com/lgbarn/chesslogic-go/internal/chess"
	"github.com/lgbarn/chesslogic-go/internal/config"
)

// Game owns one board and is the surface used by user interfaces: submit a
// move, finish a promotion, take a move back, and read the position.
//
// A Game is not safe for concurrent use.
type Game struct {
	board *chess.Board
	cfg   *config.Config
}

// NewGame starts a game from the standard position. cfg may be nil.
func NewGame(cfg *config.Config) *Game {
	return &Game{board: NewInitialBoard(), cfg: cfg}
}

// NewGameFromFEN starts a game from a piece placement. White moves first.
func NewGameFromFEN(fen string, cfg *config.Config) (*Game, error) {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{board: board, cfg: cfg}, nil
}

// Board returns the underlying board. Callers such as search players
// borrow it and must leave it as they found it.
func (g *Game) Board() *chess.Board {
	return g.board
}

// SubmitMove plays a move for the side to move. See engine.SubmitMove.
func (g *Game) SubmitMove(from, to chess.Coords, promotion chess.Piece) (chess.GameStatus, error) {
	mover := g.board.ToMove
	status, err := SubmitMove(g.board, from, to, promotion)
	if err != nil {
		g.cfg.Logf(2, "%s %s-%s rejected: %v\n", mover, from, to, err)
		return status, err
	}
	g.logPly(mover, status)
	return status, nil
}

// Play submits a parsed move.
func (g *Game) Play(m chess.Move) (chess.GameStatus, error) {
	return g.SubmitMove(m.From, m.To, m.Promotion)
}

// ResolvePromotion completes a move that is waiting for a promotion piece.
func (g *Game) ResolvePromotion(piece chess.Piece) (chess.GameStatus, error) {
	mover := g.board.ToMove
	status, err := ResolvePromotion(g.board, piece)
	if err != nil {
		return status, err
	}
	g.logPly(mover, status)
	return status, nil
}

// Undo takes back the last ply.
func (g *Game) Undo() error {
	if err := Undo(g.board); err != nil {
		return err
	}
	g.cfg.Logf(2, "took back ply %d\n", g.board.HistoryLen()+1)
	return nil
}

// Snapshot returns a copy of the board contents for display.
func (g *Game) Snapshot() chess.Snapshot {
	return g.board.Snapshot()
}

// Status returns the status of colour in the current position.
func (g *Game) Status(colour chess.Colour) (chess.GameStatus, error) {
	return Status(g.board, colour)
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.board.ToMove
}

// PendingPromotion returns the square of a pawn waiting to be promoted.
func (g *Game) PendingPromotion() (chess.Coords, bool) {
	return g.board.PromotionSquare, g.board.Promotion
}

// LegalMoves returns the legal moves of the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return LegalMoves(g.board, g.board.ToMove)
}

// Plies returns the number of plies played (and not taken back).
func (g *Game) Plies() int {
	return g.board.HistoryLen()
}

// FEN returns the current piece placement.
func (g *Game) FEN() string {
	return BoardToFEN(g.board)
}

func (g *Game) logPly(mover chess.Colour, status chess.GameStatus) {
	if last, ok := g.board.LastRecord(); ok {
		g.cfg.Logf(2, "%d. %s %s: %s\n", g.board.HistoryLen(), mover, last.Move, status)
	}
}
