package tables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbhawesh/chessrules/pkg/bitboard"
	"github.com/kbhawesh/chessrules/pkg/square"
	"github.com/kbhawesh/chessrules/pkg/tables"
)

func TestKnightCornerAttacks(t *testing.T) {
	atk := tables.Knight[square.A1]
	assert.Equal(t, 2, atk.Count())
	assert.True(t, atk.IsSet(square.B3))
	assert.True(t, atk.IsSet(square.C2))
}

func TestKingCentralAttacks(t *testing.T) {
	atk := tables.King[square.D4]
	assert.Equal(t, 8, atk.Count())
}

func TestPawnAttacksDirection(t *testing.T) {
	white := tables.Pawn[0][square.E4]
	assert.True(t, white.IsSet(square.D5))
	assert.True(t, white.IsSet(square.F5))
	assert.False(t, white.IsSet(square.D3))

	black := tables.Pawn[1][square.E4]
	assert.True(t, black.IsSet(square.D3))
	assert.True(t, black.IsSet(square.F3))
}

func TestRookOpenFileAttacks(t *testing.T) {
	atk := tables.Rook(square.A1, bitboard.Squares[square.A1])
	assert.True(t, atk.IsSet(square.A8))
	assert.True(t, atk.IsSet(square.H1))
	assert.Equal(t, 14, atk.Count())
}

func TestRookBlockedByOwnOccupant(t *testing.T) {
	occ := bitboard.Squares[square.A1] | bitboard.Squares[square.A4]
	atk := tables.Rook(square.A1, occ)
	assert.True(t, atk.IsSet(square.A4))
	assert.False(t, atk.IsSet(square.A5))
}

func TestBishopDiagonal(t *testing.T) {
	atk := tables.Bishop(square.D4, bitboard.Squares[square.D4])
	assert.True(t, atk.IsSet(square.A1))
	assert.True(t, atk.IsSet(square.G7))
	assert.False(t, atk.IsSet(square.D5))
}

func TestQueenIsRookPlusBishop(t *testing.T) {
	occ := bitboard.Squares[square.D4]
	want := tables.Rook(square.D4, occ) | tables.Bishop(square.D4, occ)
	assert.Equal(t, want, tables.Queen(square.D4, occ))
}

func TestBetweenSymmetricAndInclusive(t *testing.T) {
	between := tables.Between[square.A1][square.A4]
	assert.Equal(t, tables.Between[square.A4][square.A1], between)
	assert.True(t, between.IsSet(square.A1))
	assert.True(t, between.IsSet(square.A2))
	assert.True(t, between.IsSet(square.A3))
	assert.True(t, between.IsSet(square.A4))
	assert.False(t, between.IsSet(square.A5))
}

func TestDiagUpDownThroughD4(t *testing.T) {
	up := tables.DiagUp[square.D4]
	assert.True(t, up.IsSet(square.A1))
	assert.True(t, up.IsSet(square.H8))
	assert.False(t, up.IsSet(square.A8))

	down := tables.DiagDown[square.D4]
	assert.True(t, down.IsSet(square.A7))
	assert.True(t, down.IsSet(square.G1))
	assert.False(t, down.IsSet(square.A1))
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	mask := tables.RookMask(square.D4)
	for idx := 0; idx < 1<<mask.Count(); idx++ {
		occ := bitboard.Empty
		bit := 0
		for m := mask; m != bitboard.Empty; {
			s := m.Pop()
			if idx&(1<<bit) != 0 {
				occ.Set(s)
			}
			bit++
		}
		assert.Equal(t, idx, tables.Compress(occ, mask))
	}
}
