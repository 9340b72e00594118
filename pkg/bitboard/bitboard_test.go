package bitboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbhawesh/chessrules/pkg/bitboard"
	"github.com/kbhawesh/chessrules/pkg/square"
)

func TestSetUnsetIsSet(t *testing.T) {
	var b bitboard.Board
	assert.False(t, b.IsSet(square.E4))

	b.Set(square.E4)
	assert.True(t, b.IsSet(square.E4))

	b.Unset(square.E4)
	assert.False(t, b.IsSet(square.E4))
}

func TestSetUnsetNoneIsNoop(t *testing.T) {
	var b bitboard.Board
	b.Set(square.None)
	assert.Equal(t, bitboard.Empty, b)
	b.Unset(square.None)
	assert.Equal(t, bitboard.Empty, b)
}

func TestPopOrder(t *testing.T) {
	var b bitboard.Board
	b.Set(square.H1)
	b.Set(square.A1)
	b.Set(square.D4)

	assert.Equal(t, square.A1, b.Pop())
	assert.Equal(t, square.H1, b.Pop())
	assert.Equal(t, square.D4, b.Pop())
	assert.Equal(t, bitboard.Empty, b)
}

func TestFirstOneLastOneEmpty(t *testing.T) {
	var b bitboard.Board
	assert.Equal(t, square.None, b.FirstOne())
	assert.Equal(t, square.None, b.LastOne())
}

func TestCount(t *testing.T) {
	var b bitboard.Board
	b.Set(square.A1)
	b.Set(square.B2)
	b.Set(square.C3)
	assert.Equal(t, 3, b.Count())
}

func TestFilesAndRanks(t *testing.T) {
	assert.True(t, bitboard.Files[square.FileA].IsSet(square.A1))
	assert.True(t, bitboard.Files[square.FileA].IsSet(square.A8))
	assert.False(t, bitboard.Files[square.FileA].IsSet(square.B1))

	assert.True(t, bitboard.Ranks[square.Rank1].IsSet(square.A1))
	assert.True(t, bitboard.Ranks[square.Rank1].IsSet(square.H1))
	assert.False(t, bitboard.Ranks[square.Rank1].IsSet(square.A2))
}

func TestSquaresSingleton(t *testing.T) {
	assert.Equal(t, 1, bitboard.Squares[square.D4].Count())
	assert.True(t, bitboard.Squares[square.D4].IsSet(square.D4))
}
