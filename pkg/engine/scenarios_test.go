package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kbhawesh/chessrules/pkg/engine"
	"github.com/kbhawesh/chessrules/pkg/piece"
	"github.com/kbhawesh/chessrules/pkg/square"
)

func TestFoolsMate(t *testing.T) {
	b := engine.NewGame()
	moves := [][2]square.Square{
		{square.F2, square.F3},
		{square.E7, square.E5},
		{square.G2, square.G4},
		{square.D8, square.H4},
	}
	for _, mv := range moves {
		assert.NoError(t, b.ApplyMove(mv[0], mv[1]))
	}
	assert.Equal(t, engine.BlackWinsByCheckmate, b.Result)
	assert.Equal(t, engine.DirectCheck, b.Check)
	assert.True(t, b.IsCheckmate(piece.White))
	assert.False(t, b.IsCheckmate(piece.Black))
}

func TestScholarsMate(t *testing.T) {
	b := engine.NewGame()
	moves := [][2]square.Square{
		{square.E2, square.E4},
		{square.E7, square.E5},
		{square.F1, square.C4},
		{square.B8, square.C6},
		{square.D1, square.H5},
		{square.G8, square.F6},
		{square.H5, square.F7},
	}
	for _, mv := range moves {
		assert.NoError(t, b.ApplyMove(mv[0], mv[1]))
	}
	assert.Equal(t, engine.WhiteWinsByCheckmate, b.Result)
}

func TestStalemate(t *testing.T) {
	b, err := engine.NewFromFEN("7k/8/6Q1/8/8/8/8/6K1 b - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, engine.NoCheck, b.Check)
	assert.Equal(t, engine.DrawByStalemate, b.Result)
	assert.True(t, b.IsStalemate())
}

func TestThreefoldRepetition(t *testing.T) {
	b := engine.NewGame()
	shuffle := [][2]square.Square{
		{square.G1, square.F3}, {square.G8, square.F6},
		{square.F3, square.G1}, {square.F6, square.G8},
		{square.G1, square.F3}, {square.G8, square.F6},
		{square.F3, square.G1}, {square.F6, square.G8},
	}
	for _, mv := range shuffle {
		assert.NoError(t, b.ApplyMove(mv[0], mv[1]))
	}
	assert.Equal(t, engine.DrawByRepetition, b.Result)
	assert.True(t, b.IsDrawByRepetition())
}

func TestEnPassantCapture(t *testing.T) {
	b, err := engine.NewFromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2")
	assert.NoError(t, err)
	err = b.ApplyMove(square.E5, square.D6)
	assert.NoError(t, err)
	assert.Equal(t, piece.WhitePawn, b.PieceAt(square.D6))
	assert.Equal(t, piece.Empty, b.PieceAt(square.D5))
	assert.Equal(t, piece.Empty, b.PieceAt(square.E5))
}

func TestEnPassantDiscoveredCheck(t *testing.T) {
	// White queen sits behind its own pawn on the e-file; the pawn's
	// only path past a just-played f7-f5 is capturing en passant, which
	// vacates e5 and opens the file onto the black king.
	b, err := engine.NewFromFEN("4k3/8/8/4Pp2/8/8/6K1/4Q3 w - f6 0 2")
	assert.NoError(t, err)
	err = b.ApplyMove(square.E5, square.F6)
	assert.NoError(t, err)
	assert.Equal(t, engine.DiscoveryCheck, b.Check)
}

func TestEnPassantIsOnlyEscapeFromCheck(t *testing.T) {
	// White king h4 is checked by the black pawn on g5, which just
	// played g7-g5. Every king step is covered by a black knight, the
	// checking pawn itself is defended by the knight on e6, and the
	// only other pawn move (f5xe6) leaves the check unresolved — en
	// passant capture f5xg6 is the sole legal reply, since it is the
	// only way to remove the checking pawn.
	b, err := engine.NewFromFEN("k7/8/4nn2/5Pp1/7K/4n3/4nn2/8 w - g6 0 1")
	assert.NoError(t, err)
	assert.Equal(t, engine.DirectCheck, b.Check)
	assert.Equal(t, engine.InProgress, b.Result)

	err = b.ApplyMove(square.F5, square.G6)
	assert.NoError(t, err)
	assert.False(t, b.IsInCheck(piece.White))
}

func TestPromotionDeliversCheckmate(t *testing.T) {
	b, err := engine.NewFromFEN("k7/1PK5/8/8/8/8/8/8 w - - 0 1")
	assert.NoError(t, err)
	err = b.ApplyPromotion(square.B7, square.B8, piece.Queen)
	assert.NoError(t, err)
	assert.Equal(t, engine.WhiteWinsByCheckmate, b.Result)
}

func TestInsufficientMaterialKingVsKing(t *testing.T) {
	b, err := engine.NewFromFEN("8/8/8/4k3/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, engine.DrawByInsufficientMaterial, b.Result)
}

func TestInsufficientMaterialSameColoredBishops(t *testing.T) {
	b, err := engine.NewFromFEN("8/8/8/4k3/8/5b2/8/4K2B w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, engine.DrawByInsufficientMaterial, b.Result)
	assert.True(t, b.IsDrawByInsufficientMaterial())
}

func TestSufficientMaterialOppositeColoredBishops(t *testing.T) {
	b, err := engine.NewFromFEN("8/8/8/4k3/8/2b5/8/4K2B w - - 0 1")
	assert.NoError(t, err)
	assert.NotEqual(t, engine.DrawByInsufficientMaterial, b.Result)
}

func TestFiftyMoveRule(t *testing.T) {
	b, err := engine.NewFromFEN("7k/8/8/8/8/8/6K1/R7 w - - 99 50")
	assert.NoError(t, err)
	err = b.ApplyMove(square.G2, square.G3)
	assert.NoError(t, err)
	assert.Equal(t, engine.DrawByFiftyMoveRule, b.Result)
	assert.True(t, b.IsDrawByFiftyMoveRule())
}

func TestCastlingRejectedWithoutRights(t *testing.T) {
	b, err := engine.NewFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	assert.NoError(t, err)
	err = b.ApplyMove(square.E1, square.G1)
	assert.Error(t, err)
}
