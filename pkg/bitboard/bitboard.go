// Package bitboard implements a 64-bit bitboard, one bit per square,
// and the small set of masks (files, ranks, single squares) the rest of
// chessrules builds on.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/kbhawesh/chessrules/pkg/square"
)

// Board is a set of squares packed into a 64-bit word. Bit i is
// square.Square(i), using chessrules' a1-at-bit-0 convention.
type Board uint64

const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// Squares holds the singleton bitboard for every square.
var Squares [square.N]Board

// Files holds the full-file bitboard for every file.
var Files [square.FileN]Board

// Ranks holds the full-rank bitboard for every rank.
var Ranks [square.RankN]Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		Squares[s] = Board(1) << uint(s)
	}
	for f := square.FileA; f <= square.FileH; f++ {
		var b Board
		for r := square.Rank1; r <= square.Rank8; r++ {
			b |= Squares[square.New(f, r)]
		}
		Files[f] = b
	}
	for r := square.Rank1; r <= square.Rank8; r++ {
		var b Board
		for f := square.FileA; f <= square.FileH; f++ {
			b |= Squares[square.New(f, r)]
		}
		Ranks[r] = b
	}
}

// Set marks the given square as occupied. A no-op for square.None.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Unset clears the given square. A no-op for square.None.
func (b *Board) Unset(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}

// IsSet reports whether the given square is occupied.
func (b Board) IsSet(s square.Square) bool {
	return b&Squares[s] != 0
}

// Pop clears and returns the lowest-indexed set square.
func (b *Board) Pop() square.Square {
	s := b.FirstOne()
	*b &= *b - 1
	return s
}

// FirstOne returns the lowest-indexed set square, or square.None if b
// is empty.
func (b Board) FirstOne() square.Square {
	if b == Empty {
		return square.None
	}
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// LastOne returns the highest-indexed set square, or square.None if b
// is empty.
func (b Board) LastOne() square.Square {
	if b == Empty {
		return square.None
	}
	return square.Square(63 - bits.LeadingZeros64(uint64(b)))
}

// Count returns the number of set squares.
func (b Board) Count() int {
	return bits.OnesCount64(uint64(b))
}

func (b Board) String() string {
	var s strings.Builder
	for r := square.Rank8; r >= square.Rank1; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			if b.IsSet(square.New(f, r)) {
				s.WriteByte('1')
			} else {
				s.WriteByte('0')
			}
			if f != square.FileH {
				s.WriteByte(' ')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}
