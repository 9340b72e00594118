package engine_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/kbhawesh/chessrules/pkg/castling"
	"github.com/kbhawesh/chessrules/pkg/engine"
	"github.com/kbhawesh/chessrules/pkg/piece"
	"github.com/kbhawesh/chessrules/pkg/square"
)

func TestNewGameStartingPosition(t *testing.T) {
	b := engine.NewGame()
	assert.Equal(t, piece.White, b.SideToMove)
	assert.Equal(t, castling.All, b.CastlingRights)
	assert.Equal(t, square.None, b.EnPassant)
	assert.Equal(t, 0, b.HalfmoveClock)
	assert.Equal(t, 1, b.FullmoveNumber)
	assert.Equal(t, engine.StartFEN, b.FEN())
	assert.Equal(t, engine.NoCheck, b.Check)
	assert.Equal(t, engine.InProgress, b.Result)
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		engine.StartFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 4 26",
		"8/8/8/4k3/8/8/8/4K2R w K - 0 1",
		"8/8/8/8/8/8/8/k1K5 w - - 0 1",
	}
	for _, fen := range fens {
		b, err := engine.NewFromFEN(fen)
		assert.NoError(t, err, fen)
		assert.Equal(t, fen, b.FEN(), fen)
	}
}

func TestNewFromFENMalformedInputs(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
		"rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBXR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",
	}
	for _, fen := range bad {
		_, err := engine.NewFromFEN(fen)
		assert.Error(t, err, fen)
	}
}

func TestPieceAtAndOccupancy(t *testing.T) {
	b := engine.NewGame()
	assert.Equal(t, piece.WhiteRook, b.PieceAt(square.A1))
	assert.Equal(t, piece.Empty, b.PieceAt(square.E4))
	assert.Equal(t, 16, b.Occupancy(piece.White).Count())
	assert.Equal(t, 16, b.Occupancy(piece.Black).Count())
	assert.Equal(t, 32, b.AllOccupancy().Count())
}

func TestPositionMatchesFENOrientation(t *testing.T) {
	b := engine.NewGame()
	grid := b.Position()
	assert.Equal(t, "r", grid[0][0])
	assert.Equal(t, "R", grid[7][0])
	assert.Equal(t, ".", grid[4][4])
}

func TestPositionMatchesExpectedGridExactly(t *testing.T) {
	b := engine.NewGame()

	want := [8][8]string{
		{"r", "n", "b", "q", "k", "b", "n", "r"},
		{"p", "p", "p", "p", "p", "p", "p", "p"},
		{".", ".", ".", ".", ".", ".", ".", "."},
		{".", ".", ".", ".", ".", ".", ".", "."},
		{".", ".", ".", ".", ".", ".", ".", "."},
		{".", ".", ".", ".", ".", ".", ".", "."},
		{"P", "P", "P", "P", "P", "P", "P", "P"},
		{"R", "N", "B", "Q", "K", "B", "N", "R"},
	}

	if diff := cmp.Diff(want, b.Position()); diff != "" {
		t.Errorf("Position() mismatch (-want +got):\n%s", diff)
	}
}
