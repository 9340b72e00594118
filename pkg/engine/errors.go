package engine

import (
	"errors"
	"fmt"

	"github.com/kbhawesh/chessrules/pkg/move"
)

// Sentinel errors, one per rejection reason a move can fail for. Callers
// should compare against these with errors.Is; a failed ApplyMove or
// ApplyPromotion always returns a *MoveError wrapping one of them.
var (
	ErrGameOver           = errors.New("chessrules: game has already ended")
	ErrEmptySource        = errors.New("chessrules: source square is empty")
	ErrWrongTurn          = errors.New("chessrules: piece on source square does not belong to the side to move")
	ErrInvalidPattern     = errors.New("chessrules: move does not match the piece's movement pattern")
	ErrBlockedMove        = errors.New("chessrules: path is blocked or destination holds a piece of the same color")
	ErrMoveExposesOwnKing = errors.New("chessrules: move would leave the mover's own king in check")
	ErrInvalidCastle      = errors.New("chessrules: castling preconditions are not satisfied")
	ErrInvalidPromotion   = errors.New("chessrules: promotion piece or square is invalid")
)

// MoveError reports why a move was rejected, identifying both the move
// attempted and the ply it was attempted on.
type MoveError struct {
	Move move.Move
	Ply  int
	err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("chessrules: move %s rejected at ply %d: %v", e.Move, e.Ply, e.err)
}

// Unwrap lets errors.Is/errors.As see through to the sentinel.
func (e *MoveError) Unwrap() error {
	return e.err
}

func (b *Board) reject(m move.Move, sentinel error) error {
	err := &MoveError{Move: m, Ply: b.Plies + 1, err: sentinel}
	b.logger.Debug("move rejected", zapMoveFields(m, sentinel)...)
	return err
}
