// Package errors provides sentinel errors and error types for the chess engine.
// It defines the move-validation failures and structured error types that
// preserve context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for move validation.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrCoordinateOutOfRange indicates an origin or target off the 8x8 grid.
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")

	// ErrDegenerateMove indicates a move whose origin equals its target.
	ErrDegenerateMove = errors.New("origin and target are the same square")

	// ErrEmptyOrigin indicates there is no piece on the origin square.
	ErrEmptyOrigin = errors.New("no piece on origin square")

	// ErrWrongSideToMove indicates the origin piece belongs to the side not on move.
	ErrWrongSideToMove = errors.New("wrong side to move")

	// ErrFriendlyCapture indicates the target holds a piece of the mover's colour.
	ErrFriendlyCapture = errors.New("target occupied by own piece")

	// ErrPromotionPending indicates a move was submitted while a promotion
	// choice is still outstanding.
	ErrPromotionPending = errors.New("promotion choice pending")

	// ErrPromotionChoiceRequired indicates a pawn reached its last row and a
	// promotion piece must be supplied to complete the move.
	ErrPromotionChoiceRequired = errors.New("promotion choice required")

	// ErrInvalidPromotion indicates a promotion piece other than N, B, R or Q.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrIllegalDestination indicates the piece cannot move to the target.
	ErrIllegalDestination = errors.New("illegal destination")

	// ErrKingExposed indicates the move would leave the mover's king attacked.
	ErrKingExposed = errors.New("king would be in check")

	// ErrNoLegalMoveToUndo indicates undo was requested with an empty history.
	ErrNoLegalMoveToUndo = errors.New("no move to undo")

	// ErrMissingKing indicates a side has no king on the board. It is fatal:
	// the game cannot continue.
	ErrMissingKing = errors.New("missing king")

	// ErrInvalidFEN indicates a malformed piece-placement string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrNoLegalMoves indicates a player was asked to move in a position
	// where it has none.
	ErrNoLegalMoves = errors.New("no legal moves")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IsFatal reports whether err signals a corrupted position that must end
// the session rather than be retried.
func IsFatal(err error) bool {
	return errors.Is(err, ErrMissingKing)
}

// MoveError wraps a validation failure with the move that caused it.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Ply  int    // 1-based ply the move would have been (0 if not applicable)
	From string // Origin square, e.g. "e2"
	To   string // Target square, e.g. "e4"
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
