// Package move declares the move representation passed to and reported
// by the rules engine: a source square, a target square and an optional
// promotion piece, printable in long algebraic notation.
package move

import (
	"github.com/kbhawesh/chessrules/pkg/piece"
	"github.com/kbhawesh/chessrules/pkg/square"
)

// Move is a single candidate or played move in long algebraic form.
type Move struct {
	From, To    square.Square
	Promotion   piece.Kind
	IsPromotion bool
}

// New builds a non-promoting move.
func New(from, to square.Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion builds a promoting move.
func NewPromotion(from, to square.Square, promotion piece.Kind) Move {
	return Move{From: from, To: to, Promotion: promotion, IsPromotion: true}
}

// String renders the move in long algebraic notation, e.g. "e2e4" or
// "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion {
		s += m.Promotion.String()
	}
	return s
}
