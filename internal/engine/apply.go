package engine

import (
	"github.com/lgbarn/chesslogic-go/internal/chess"
	"github.com/lgbarn/chesslogic-go/internal/errors"
)

// SubmitMove validates and plays a move for the side to move and returns
// the status of the side that is now to move. promotion may be chess.Empty;
// a pawn reaching its last row without one leaves the move pending and
// returns errors.ErrPromotionChoiceRequired.
//
// On any error the board is left as it was, except for the pending
// promotion case described above.
func SubmitMove(board *chess.Board, from, to chess.Coords, promotion chess.Piece) (chess.GameStatus, error) {
	if err := Play(board, chess.Move{From: from, To: to, Promotion: promotion}); err != nil {
		return chess.Normal, err
	}
	return Status(board, board.ToMove)
}

// ResolvePromotion completes a pending promotion with the given piece and
// returns the status of the side that is now to move.
func ResolvePromotion(board *chess.Board, piece chess.Piece) (chess.GameStatus, error) {
	if err := resolvePromotion(board, piece); err != nil {
		return chess.Normal, err
	}
	return Status(board, board.ToMove)
}

// Play validates m for the side to move and applies it without evaluating
// the resulting game status. It is the entry point used by search.
func Play(board *chess.Board, m chess.Move) error {
	ply := board.HistoryLen() + 1
	if board.Promotion {
		if last, ok := board.LastRecord(); ok && m.Promotion != chess.Empty &&
			last.Move.From == m.From && m.To == board.PromotionSquare {
			return resolvePromotion(board, m.Promotion)
		}
		return moveError(ply-1, m, errors.ErrPromotionPending)
	}
	if err := validate(board, m); err != nil {
		return moveError(ply, m, err)
	}
	if err := applyMove(board, m); err != nil {
		return moveError(ply, m, err)
	}
	return nil
}

// Undo takes back the most recent ply, including a half-finished promotion.
func Undo(board *chess.Board) error {
	if !board.Revert() {
		return errors.ErrNoLegalMoveToUndo
	}
	return nil
}

// validate performs the checks that do not depend on the piece's movement.
func validate(board *chess.Board, m chess.Move) error {
	if !m.From.OnBoard() || !m.To.OnBoard() {
		return errors.ErrCoordinateOutOfRange
	}
	if m.From == m.To {
		return errors.ErrDegenerateMove
	}
	piece := board.Get(m.From)
	if piece.IsEmpty() {
		return errors.ErrEmptyOrigin
	}
	if piece.Colour != board.ToMove {
		return errors.ErrWrongSideToMove
	}
	if target := board.Get(m.To); !target.IsEmpty() && target.Colour == piece.Colour {
		return errors.ErrFriendlyCapture
	}
	return nil
}

// applyMove applies a move for the colour of the piece on m.From. The move
// is recorded as a single history entry; if it leaves the mover's king
// attacked the entry is reverted and ErrKingExposed returned.
func applyMove(board *chess.Board, m chess.Move) error {
	piece := board.Get(m.From)
	colour := piece.Colour

	if !hasTarget(PseudoLegalMoves(board, m.From), m.To) {
		return errors.ErrIllegalDestination
	}

	promotion := promotes(piece, m.To)
	if promotion && m.Promotion != chess.Empty && !chess.IsPromotionPiece(m.Promotion) {
		return errors.ErrInvalidPromotion
	}

	castle := isCastle(board, m.From, m.To)
	if castle && !castlingPathSafe(board, m.From, m.To) {
		return errors.ErrKingExposed
	}

	board.BeginRecord(m)
	switch {
	case castle:
		applyCastle(board, m.From, m.To)
	case isEnPassant(board, m.From, m.To):
		board.SetRecorded(board.EPSquare, chess.NoPiece)
		movePiece(board, m.From, m.To)
	default:
		movePiece(board, m.From, m.To)
	}

	if promotion && m.Promotion != chess.Empty {
		board.SetRecorded(m.To, chess.MakeColouredPiece(colour, m.Promotion))
	}

	if err := kingExposed(board, colour); err != nil {
		board.Revert()
		return err
	}

	if promotion && m.Promotion == chess.Empty {
		board.Promotion = true
		board.PromotionSquare = m.To
		board.EnPassant = false
		return errors.ErrPromotionChoiceRequired
	}

	finishPly(board, piece, m)
	return nil
}

// resolvePromotion replaces the pawn waiting on the last row.
func resolvePromotion(board *chess.Board, piece chess.Piece) error {
	if !board.Promotion {
		return errors.Wrap(errors.ErrInvalidPromotion, "no promotion pending")
	}
	if !chess.IsPromotionPiece(piece) {
		return errors.Wrapf(errors.ErrInvalidPromotion, "cannot promote to %s", piece)
	}
	sq := board.PromotionSquare
	pawn := board.Get(sq)
	// The open record already holds the square's state from before the
	// pawn arrived, so undo still restores the original occupant.
	board.SetRecorded(sq, chess.MakeColouredPiece(pawn.Colour, piece))
	board.Promotion = false
	board.EnPassant = false
	board.ToMove = pawn.Colour.Opposite()
	return nil
}

// movePiece moves the piece on from to to, capturing anything there, and
// counts the move against the piece.
func movePiece(board *chess.Board, from, to chess.Coords) {
	p := board.Get(from)
	p.MovesCounter++
	board.SetRecorded(to, p)
	board.SetRecorded(from, chess.NoPiece)
}

// finishPly updates the markers once a move is complete and passes the turn.
func finishPly(board *chess.Board, piece chess.ColouredPiece, m chess.Move) {
	board.EnPassant = false
	if piece.Piece == chess.Pawn && abs(m.To.R-m.From.R) == 2 {
		board.EnPassant = true
		board.EPSquare = m.To
	}
	board.Promotion = false
	board.ToMove = piece.Colour.Opposite()
}

// moveError attaches the move and ply to a validation failure.
func moveError(ply int, m chess.Move, err error) error {
	return &errors.MoveError{
		Err:  err,
		Ply:  ply,
		From: m.From.String(),
		To:   m.To.String(),
	}
}
