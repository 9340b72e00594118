package square_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbhawesh/chessrules/pkg/square"
)

func TestNewAndAccessors(t *testing.T) {
	s := square.New(square.FileE, square.Rank4)
	assert.Equal(t, square.E4, s)
	assert.Equal(t, square.FileE, s.File())
	assert.Equal(t, square.Rank4, s.Rank())
	assert.Equal(t, "e4", s.String())
}

func TestAOneIsBitZero(t *testing.T) {
	assert.Equal(t, square.Square(0), square.A1)
	assert.Equal(t, 0, square.A1.Row())
	assert.Equal(t, 0, square.A1.Col())
}

func TestNewFromString(t *testing.T) {
	assert.Equal(t, square.H8, square.NewFromString("h8"))
	assert.Equal(t, square.None, square.NewFromString("-"))
}

func TestNewFromStringInvalidPanics(t *testing.T) {
	assert.Panics(t, func() { square.NewFromString("z9x") })
}

func TestValid(t *testing.T) {
	assert.True(t, square.A1.Valid())
	assert.True(t, square.H8.Valid())
	assert.False(t, square.None.Valid())
}
