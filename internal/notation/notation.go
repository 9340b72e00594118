// Package notation parses the long-algebraic move strings a terminal
// user or a batch file feeds to the chessrules CLI. It lives outside
// pkg/engine because parsing caller-supplied move text is the caller's
// job, not the rules engine's: engine.Board only ever accepts already
// decoded squares.
package notation

import (
	"fmt"

	"github.com/kbhawesh/chessrules/pkg/piece"
	"github.com/kbhawesh/chessrules/pkg/square"
)

// Move is a parsed long-algebraic move, e.g. "e2e4" or "e7e8q".
type Move struct {
	From, To    square.Square
	Promotion   piece.Kind
	IsPromotion bool
}

// Parse decodes a long-algebraic move string of the form "e2e4" or
// "e7e8q".
func Parse(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("notation: %q: want 4 or 5 characters", s)
	}
	if err := validateSquareText(s[0:2]); err != nil {
		return Move{}, fmt.Errorf("notation: %q: %w", s, err)
	}
	if err := validateSquareText(s[2:4]); err != nil {
		return Move{}, fmt.Errorf("notation: %q: %w", s, err)
	}

	m := Move{From: square.NewFromString(s[0:2]), To: square.NewFromString(s[2:4])}
	if len(s) == 5 {
		kind, ok := piece.NewPromotionFromString(s[4:5])
		if !ok {
			return Move{}, fmt.Errorf("notation: %q: invalid promotion piece %q", s, s[4:5])
		}
		m.Promotion, m.IsPromotion = kind, true
	}
	return m, nil
}

func validateSquareText(s string) error {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return fmt.Errorf("invalid square %q", s)
	}
	return nil
}
