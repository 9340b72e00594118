package engine

import (
	"github.com/kbhawesh/chessrules/internal/util"
	"github.com/kbhawesh/chessrules/pkg/bitboard"
	"github.com/kbhawesh/chessrules/pkg/piece"
	"github.com/kbhawesh/chessrules/pkg/square"
	"github.com/kbhawesh/chessrules/pkg/tables"
)

// PinDirection names the line a pinned piece is confined to, or NoPin
// if the piece is not pinned.
type PinDirection int

const (
	NoPin PinDirection = iota
	PinRank
	PinFile
	PinDiagUp   // file-rank = const, the "a1-h8" diagonal direction
	PinDiagDown // file+rank = const, the "a8-h1" diagonal direction
)

// pinDirection reports whether the piece occupying pieceSq is pinned
// against color's king: an enemy slider lies on the same rank, file or
// diagonal as the king beyond pieceSq, with nothing but pieceSq's
// occupant between them.
//
// This also powers discovered-check detection: calling it with color
// set to the opponent and pieceSq set to a square the mover is about to
// vacate asks the equivalent question "does removing this piece unveil
// an attack from one of the mover's sliders onto the opponent's king".
// The piece actually on pieceSq is never examined, only the squares
// between it and the king and the first occupant beyond it, so the
// trick is sound regardless of whose piece sits there.
func (b *Board) pinDirection(color piece.Color, pieceSq square.Square) (PinDirection, square.Square) {
	king := b.kingSquare(color)
	if king == pieceSq {
		return NoPin, square.None
	}

	kf, kr := king.Col(), king.Row()
	pf, pr := pieceSq.Col(), pieceSq.Row()
	df, dr := pf-kf, pr-kr

	var dir PinDirection
	var stepF, stepR int
	switch {
	case dr == 0 && df != 0:
		dir, stepF, stepR = PinRank, sign(df), 0
	case df == 0 && dr != 0:
		dir, stepF, stepR = PinFile, 0, sign(dr)
	case util.Abs(df) == util.Abs(dr) && df != 0:
		if sign(df) == sign(dr) {
			dir = PinDiagUp
		} else {
			dir = PinDiagDown
		}
		stepF, stepR = sign(df), sign(dr)
	default:
		return NoPin, square.None
	}

	between := tables.Between[king][pieceSq] &^ bitboard.Squares[king] &^ bitboard.Squares[pieceSq]
	if between&b.allOcc != bitboard.Empty {
		return NoPin, square.None
	}

	beyond := rayToEdge(pieceSq, stepF, stepR)
	if beyond == bitboard.Empty {
		return NoPin, square.None
	}

	occupants := beyond & b.allOcc
	if occupants == bitboard.Empty {
		return NoPin, square.None
	}

	opp := color.Other()
	var sliders bitboard.Board
	switch dir {
	case PinRank, PinFile:
		sliders = b.pieces(piece.Rook, opp) | b.pieces(piece.Queen, opp)
	default:
		sliders = b.pieces(piece.Bishop, opp) | b.pieces(piece.Queen, opp)
	}
	attackers := occupants & sliders
	obstructors := occupants &^ attackers

	// delta is the change in square index each ray step produces; its
	// sign tells us whether the nearest occupied square (to pieceSq) is
	// the lowest-indexed one on the ray (delta > 0) or the
	// highest-indexed one (delta < 0).
	delta := stepR*8 + stepF

	var nearestAttacker, nearestObstructor square.Square = square.None, square.None
	if attackers != bitboard.Empty {
		if delta > 0 {
			nearestAttacker = attackers.FirstOne()
		} else {
			nearestAttacker = attackers.LastOne()
		}
	}
	if obstructors != bitboard.Empty {
		if delta > 0 {
			nearestObstructor = obstructors.FirstOne()
		} else {
			nearestObstructor = obstructors.LastOne()
		}
	}

	if nearestAttacker == square.None {
		return NoPin, square.None
	}
	if nearestObstructor != square.None {
		closer := nearestAttacker
		if delta > 0 {
			if nearestObstructor < nearestAttacker {
				closer = nearestObstructor
			}
		} else {
			if nearestObstructor > nearestAttacker {
				closer = nearestObstructor
			}
		}
		if closer != nearestAttacker {
			return NoPin, square.None
		}
	}

	return dir, nearestAttacker
}

func rayToEdge(from square.Square, stepF, stepR int) bitboard.Board {
	var result bitboard.Board
	f, r := from.Col()+stepF, from.Row()+stepR
	for f >= 0 && f < square.FileN && r >= 0 && r < square.RankN {
		result.Set(square.New(square.File(f), square.Rank(r)))
		f += stepF
		r += stepR
	}
	return result
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

// attacksOfColor returns every square color attacks. includeKing
// controls whether color's king itself contributes its attack set; both
// callers in this package (IsInCheck and isSquareAttacked) pass true,
// since they test squares a king has just stepped onto or is about to
// step onto or past, and a king may not stand next to the opposing
// king. When obeyPins is true, a pinned piece only contributes the
// portion of its attack set that stays on its pin line (or nothing, for
// a piece pinned in a direction it cannot move in). When obeyPins is
// false it is color's raw attacking power, ignoring whether moving a
// piece would expose its own king; this is what "is square s attacked"
// questions (check detection, castling safety) need, since a pinned
// piece still threatens the squares it geometrically covers. Both
// callers pass false; stalemate and checkmate detection go through
// canAnyPieceMove instead.
func (b *Board) attacksOfColor(color piece.Color, includeKing, obeyPins bool) bitboard.Board {
	occ := b.allOcc
	var result bitboard.Board

	for pawns := b.pieces(piece.Pawn, color); pawns != bitboard.Empty; {
		s := pawns.Pop()
		result |= b.maskPin(color, s, tables.Pawn[color][s], obeyPins)
	}
	for knights := b.pieces(piece.Knight, color); knights != bitboard.Empty; {
		s := knights.Pop()
		result |= b.maskPin(color, s, tables.Knight[s], obeyPins)
	}
	for bishops := b.pieces(piece.Bishop, color); bishops != bitboard.Empty; {
		s := bishops.Pop()
		result |= b.maskPin(color, s, tables.Bishop(s, occ), obeyPins)
	}
	for rooks := b.pieces(piece.Rook, color); rooks != bitboard.Empty; {
		s := rooks.Pop()
		result |= b.maskPin(color, s, tables.Rook(s, occ), obeyPins)
	}
	for queens := b.pieces(piece.Queen, color); queens != bitboard.Empty; {
		s := queens.Pop()
		result |= b.maskPin(color, s, tables.Queen(s, occ), obeyPins)
	}
	if k := b.kingSquare(color); includeKing && k != square.None {
		result |= tables.King[k]
	}

	return result
}

// maskPin restricts atk, the unconstrained attack set of the piece on
// s, down to the part consistent with any pin on s.
func (b *Board) maskPin(color piece.Color, s square.Square, atk bitboard.Board, obeyPins bool) bitboard.Board {
	if !obeyPins {
		return atk
	}
	dir, _ := b.pinDirection(color, s)
	switch dir {
	case NoPin:
		return atk
	case PinRank:
		return atk & bitboard.Ranks[s.Rank()]
	case PinFile:
		return atk & bitboard.Files[s.File()]
	case PinDiagUp:
		return atk & tables.DiagUp[s]
	case PinDiagDown:
		return atk & tables.DiagDown[s]
	default:
		return atk
	}
}

// IsInCheck reports whether color's king is attacked. The opposing
// king's reach counts, so a tentative king move onto a square next to
// the other king leaves the mover in check.
func (b *Board) IsInCheck(color piece.Color) bool {
	return b.attacksOfColor(color.Other(), true, false).IsSet(b.kingSquare(color))
}

// isSquareAttacked reports whether s is attacked by color, ignoring
// pins (the question "can color's pieces see this square right now",
// not "could color legally move a piece there"). Like IsInCheck this
// includes color's own king, since callers use it to vet squares a king
// is about to move through (castling's passage/destination squares),
// where the opposing king's adjacency genuinely matters.
func (b *Board) isSquareAttacked(s square.Square, color piece.Color) bool {
	return b.attacksOfColor(color, true, false).IsSet(s)
}

// canAnyPieceMove reports whether color has any legal move available:
// any pseudo-legal destination, for any of color's pieces, that does
// not leave color's own king in check afterward. It is used purely for
// stalemate/checkmate adjudication once the side to move has no
// pending move to validate, so it is allowed to be a plain brute-force
// scan rather than a fast move generator.
func (b *Board) canAnyPieceMove(color piece.Color) bool {
	occ := b.allOcc
	own := b.Occupancy(color)

	tryTargets := func(from square.Square, targets bitboard.Board) bool {
		for t := targets &^ own; t != bitboard.Empty; {
			to := t.Pop()
			if b.wouldExposeKing(color, from, to) {
				continue
			}
			return true
		}
		return false
	}

	for pawns := b.pieces(piece.Pawn, color); pawns != bitboard.Empty; {
		s := pawns.Pop()
		if tryTargets(s, pawnMoveTargets(b, color, s)) {
			return true
		}
	}
	for knights := b.pieces(piece.Knight, color); knights != bitboard.Empty; {
		s := knights.Pop()
		if tryTargets(s, tables.Knight[s]) {
			return true
		}
	}
	for bishops := b.pieces(piece.Bishop, color); bishops != bitboard.Empty; {
		s := bishops.Pop()
		if tryTargets(s, tables.Bishop(s, occ)) {
			return true
		}
	}
	for rooks := b.pieces(piece.Rook, color); rooks != bitboard.Empty; {
		s := rooks.Pop()
		if tryTargets(s, tables.Rook(s, occ)) {
			return true
		}
	}
	for queens := b.pieces(piece.Queen, color); queens != bitboard.Empty; {
		s := queens.Pop()
		if tryTargets(s, tables.Queen(s, occ)) {
			return true
		}
	}

	king := b.kingSquare(color)
	if tryTargets(king, tables.King[king]) {
		return true
	}
	return b.hasLegalCastle(color)
}

// wouldExposeKing reports whether moving the piece on from to to,
// including an en-passant capture, would leave color's king in check.
// It is the brute-force "apply tentatively, check, undo" technique the
// engine also uses in ApplyMove, kept available here for
// canAnyPieceMove's quick scan.
func (b *Board) wouldExposeKing(color piece.Color, from, to square.Square) bool {
	moved := b.grid[from]

	epCaptureSq := square.None
	captured := b.grid[to]
	if moved.Kind() == piece.Pawn && to == b.EnPassant {
		epCaptureSq = epCapturedSquare(to, color)
		captured = b.grid[epCaptureSq]
	}

	b.clearSquare(from)
	if epCaptureSq != square.None {
		b.clearSquare(epCaptureSq)
	} else if captured != piece.Empty {
		b.clearSquare(to)
	}
	b.fillSquare(to, moved)

	exposed := b.IsInCheck(color)

	b.clearSquare(to)
	b.fillSquare(from, moved)
	if epCaptureSq != square.None {
		b.fillSquare(epCaptureSq, captured)
	} else if captured != piece.Empty {
		b.fillSquare(to, captured)
	}

	return exposed
}

// pawnMoveTargets returns every square the pawn on s could move or
// capture to, ignoring pins: single/double pushes and diagonal
// captures (including en passant).
func pawnMoveTargets(b *Board, color piece.Color, s square.Square) bitboard.Board {
	var targets bitboard.Board
	f, r := s.Col(), s.Row()

	forward := 1
	startRank := square.Rank2
	if color == piece.Black {
		forward = -1
		startRank = square.Rank7
	}

	one := r + forward
	if one >= 0 && one < square.RankN {
		oneSq := square.New(square.File(f), square.Rank(one))
		if !b.allOcc.IsSet(oneSq) {
			targets.Set(oneSq)
			two := r + 2*forward
			if s.Rank() == startRank && two >= 0 && two < square.RankN {
				twoSq := square.New(square.File(f), square.Rank(two))
				if !b.allOcc.IsSet(twoSq) {
					targets.Set(twoSq)
				}
			}
		}
	}

	caps := tables.Pawn[color][s]
	for t := caps; t != bitboard.Empty; {
		to := t.Pop()
		if b.allOcc.IsSet(to) || to == b.EnPassant {
			targets.Set(to)
		}
	}
	return targets
}
