package piece_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbhawesh/chessrules/pkg/piece"
)

func TestNewRoundTrip(t *testing.T) {
	for c := piece.White; c <= piece.Black; c++ {
		for k := piece.Pawn; k <= piece.King; k++ {
			p := piece.New(k, c)
			assert.Equal(t, k, p.Kind())
			assert.Equal(t, c, p.Color())
		}
	}
}

func TestNewFromStringRoundTrip(t *testing.T) {
	for _, glyph := range []string{"P", "N", "B", "R", "Q", "K", "p", "n", "b", "r", "q", "k"} {
		p := piece.NewFromString(glyph)
		assert.Equal(t, glyph, p.String())
	}
}

func TestNewPromotionFromString(t *testing.T) {
	tests := map[string]piece.Kind{"q": piece.Queen, "r": piece.Rook, "b": piece.Bishop, "n": piece.Knight}
	for glyph, want := range tests {
		got, ok := piece.NewPromotionFromString(glyph)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := piece.NewPromotionFromString("k")
	assert.False(t, ok)
}

func TestEmptyPanicsOnKindAndColor(t *testing.T) {
	assert.Panics(t, func() { piece.Empty.Kind() })
	assert.Panics(t, func() { piece.Empty.Color() })
}
