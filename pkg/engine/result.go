package engine

import (
	"github.com/kbhawesh/chessrules/pkg/piece"
	"github.com/kbhawesh/chessrules/pkg/square"
	"github.com/kbhawesh/chessrules/pkg/tables"
)

// pieceAttacksSquare reports whether the piece sitting on from attacks
// target, given the board's current occupancy.
func (b *Board) pieceAttacksSquare(from, target square.Square) bool {
	p := b.grid[from]
	if p == piece.Empty {
		return false
	}
	switch p.Kind() {
	case piece.Pawn:
		return tables.Pawn[p.Color()][from].IsSet(target)
	case piece.Knight:
		return tables.Knight[from].IsSet(target)
	case piece.Bishop:
		return tables.Bishop(from, b.allOcc).IsSet(target)
	case piece.Rook:
		return tables.Rook(from, b.allOcc).IsSet(target)
	case piece.Queen:
		return tables.Queen(from, b.allOcc).IsSet(target)
	case piece.King:
		return tables.King[from].IsSet(target)
	default:
		return false
	}
}

// classifyCheck determines why defender is in check (if at all) right
// after a move that vacated the given squares and left pieces on the
// given squares. A direct check comes from one of the pieces now on a
// filled square; a discovered check comes from vacating a square that
// was blocking one of the mover's sliders from defender's king. Both
// can be true at once (double check), when a moved piece attacks the
// king from its new square and its departure also uncovers a slider. A
// king's own step never attacks the other king, so a non-castling king
// move can only give a discovered check.
func (b *Board) classifyCheck(defender piece.Color, vacated, filled []square.Square) CheckType {
	king := b.kingSquare(defender)

	direct := false
	for _, s := range filled {
		if b.pieceAttacksSquare(s, king) {
			direct = true
			break
		}
	}

	discovery := false
	for _, s := range vacated {
		if _, attacker := b.pinDirection(defender, s); attacker != square.None {
			discovery = true
			break
		}
	}

	switch {
	case direct && discovery:
		return DoubleCheck
	case direct:
		return DirectCheck
	case discovery:
		return DiscoveryCheck
	default:
		return NoCheck
	}
}

// checkTypeFromScratch classifies color's check status with no move
// history to consult, as used right after loading a position from FEN:
// it can tell whether color is in check and, roughly, by how many
// attackers, but not whether any one of them is a "discovered"
// attacker, since that is a property of the move that was just played,
// not of the position alone.
func (b *Board) checkTypeFromScratch(color piece.Color) CheckType {
	king := b.kingSquare(color)
	opp := color.Other()
	occ := b.allOcc

	attackers := 0
	if tables.Pawn[color][king]&b.pieces(piece.Pawn, opp) != 0 {
		attackers++
	}
	if tables.Knight[king]&b.pieces(piece.Knight, opp) != 0 {
		attackers++
	}
	if tables.Bishop(king, occ)&(b.pieces(piece.Bishop, opp)|b.pieces(piece.Queen, opp)) != 0 {
		attackers++
	}
	if tables.Rook(king, occ)&(b.pieces(piece.Rook, opp)|b.pieces(piece.Queen, opp)) != 0 {
		attackers++
	}

	switch {
	case attackers >= 2:
		return DoubleCheck
	case attackers == 1:
		return DirectCheck
	default:
		return NoCheck
	}
}

// refreshCheckAndResult recomputes both Check and Result from the
// position alone. It is used only right after loading a position (FEN
// construction), where there is no preceding move to classify the
// check from; ApplyMove and ApplyPromotion classify Check more
// precisely via classifyCheck and then only need computeResult.
func (b *Board) refreshCheckAndResult() {
	b.Check = b.checkTypeFromScratch(b.SideToMove)
	b.Result = b.computeResult()
}

// computeResult adjudicates the position for the side now to move, in
// the order a claim would actually be checked at the board: first
// whether the game has already ended outright (checkmate or
// stalemate), since neither side can claim a draw in a position with
// no legal replies; only then the three ways a player could otherwise
// claim or be awarded a draw.
func (b *Board) computeResult() GameResult {
	mover := b.SideToMove

	if !b.canAnyPieceMove(mover) {
		if b.Check != NoCheck {
			if mover == piece.White {
				return BlackWinsByCheckmate
			}
			return WhiteWinsByCheckmate
		}
		return DrawByStalemate
	}

	if b.positionFreq[b.Hash] >= 3 {
		return DrawByRepetition
	}
	if b.isInsufficientMaterial() {
		return DrawByInsufficientMaterial
	}
	if b.HalfmoveClock >= 100 {
		return DrawByFiftyMoveRule
	}
	return InProgress
}

// isInsufficientMaterial reports whether neither side has enough force
// left to deliver checkmate by any sequence of legal moves: king vs
// king, king and a single minor piece vs king, or one bishop a side
// with both bishops on the same square color. Positions with more than
// one minor piece a side are not treated as insufficient.
func (b *Board) isInsufficientMaterial() bool {
	if b.pieces(piece.Pawn, piece.White)|b.pieces(piece.Pawn, piece.Black) != 0 {
		return false
	}
	if b.pieces(piece.Rook, piece.White)|b.pieces(piece.Rook, piece.Black) != 0 {
		return false
	}
	if b.pieces(piece.Queen, piece.White)|b.pieces(piece.Queen, piece.Black) != 0 {
		return false
	}

	wn, bn := b.pieces(piece.Knight, piece.White).Count(), b.pieces(piece.Knight, piece.Black).Count()
	wb, bb := b.pieces(piece.Bishop, piece.White), b.pieces(piece.Bishop, piece.Black)
	wbN, bbN := wb.Count(), bb.Count()

	switch total := wn + bn + wbN + bbN; {
	case total == 0, total == 1:
		return true
	case total == 2 && wn == 0 && bn == 0 && wbN == 1 && bbN == 1:
		return squareColor(wb.FirstOne()) == squareColor(bb.FirstOne())
	default:
		return false
	}
}

func squareColor(s square.Square) int {
	return (int(s.Col()) + int(s.Row())) % 2
}

// IsCheckmate reports whether color has been checkmated.
func (b *Board) IsCheckmate(color piece.Color) bool {
	switch color {
	case piece.White:
		return b.Result == BlackWinsByCheckmate
	default:
		return b.Result == WhiteWinsByCheckmate
	}
}

// IsStalemate reports whether the game ended in stalemate.
func (b *Board) IsStalemate() bool {
	return b.Result == DrawByStalemate
}

// IsDrawByRepetition reports whether the game ended by threefold
// repetition.
func (b *Board) IsDrawByRepetition() bool {
	return b.Result == DrawByRepetition
}

// IsDrawByFiftyMoveRule reports whether the game ended by the
// fifty-move rule.
func (b *Board) IsDrawByFiftyMoveRule() bool {
	return b.Result == DrawByFiftyMoveRule
}

// IsDrawByInsufficientMaterial reports whether the game ended because
// neither side has enough material left to checkmate.
func (b *Board) IsDrawByInsufficientMaterial() bool {
	return b.Result == DrawByInsufficientMaterial
}
