// Package tables implements chessrules' PrecomputedTables component: a
// set of attack and geometry lookup tables built once at process
// startup and never mutated afterwards, so any number of engine.Board
// values can share them without synchronization.
//
// Sliding-piece attacks are resolved by direct occupancy compression
// rather than magic-number hashing: for each square the relevant
// blocker mask is known ahead of time, a full-board occupancy is masked
// and repacked into a dense index by walking the mask from its lowest
// bit, and that index looks up a precomputed attack bitboard. This
// trades a larger table (no attempt to minimize the blocker mask to the
// non-edge squares a magic hash would use) for a construction that
// needs no trial-and-error magic-number search.
package tables

import (
	"github.com/kbhawesh/chessrules/pkg/bitboard"
	"github.com/kbhawesh/chessrules/pkg/square"
)

// Knight and King hold the attack set of that piece placed alone on
// each square.
var (
	Knight [square.N]bitboard.Board
	King   [square.N]bitboard.Board
)

// Pawn holds the diagonal-forward attack squares of a pawn of the given
// color placed alone on each square. It does not include pushes.
var Pawn [2][square.N]bitboard.Board

// Between[a][b] is the inclusive range of squares from a to b, for any
// pair sharing a rank, file or diagonal. It is symmetric: Between[a][b]
// == Between[b][a]. For unaligned pairs the value is bitboard.Empty and
// must never be consulted.
var Between [square.N][square.N]bitboard.Board

// rookMask[s] and bishopMask[s] are the relevant-blocker masks: the
// full rank+file (rook) or both full diagonals (bishop) through s,
// excluding s itself. The board-edge squares are kept in the mask even
// though their occupancy never changes the attack set (see the package
// comment).
var (
	rookMask   [square.N]bitboard.Board
	bishopMask [square.N]bitboard.Board
)

// rookAttack[s] and bishopAttack[s] are indexed by the compressed
// occupancy of rookMask[s]/bishopMask[s] (see Compress) and hold the
// resulting slide attack set, with the first blocker on each ray
// included.
var (
	rookAttack   [square.N][]bitboard.Board
	bishopAttack [square.N][]bitboard.Board
)

// DiagUp[s] and DiagDown[s] hold the single full diagonal line through
// s, inclusive of s: DiagUp for the file-rank=const ("a1-h8 direction")
// diagonal, DiagDown for the file+rank=const ("a8-h1 direction")
// diagonal. Used to mask a pinned slider's attacks down to the one line
// it may still move along.
var (
	DiagUp   [square.N]bitboard.Board
	DiagDown [square.N]bitboard.Board
)

type delta struct{ df, dr int }

var (
	knightDeltas = []delta{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDeltas   = []delta{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	rookDeltas   = []delta{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	bishopDeltas = []delta{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
)

func inBounds(f, r int) bool {
	return f >= 0 && f < square.FileN && r >= 0 && r < square.RankN
}

func init() {
	buildLeaperTables()
	buildBetween()
	buildSliderTables(rookDeltas, &rookMask, &rookAttack)
	buildSliderTables(bishopDeltas, &bishopMask, &bishopAttack)
	buildDiagonalMasks()
}

func buildDiagonalMasks() {
	for s := square.A1; s <= square.H8; s++ {
		f0, r0 := s.Col(), s.Row()
		var up, down bitboard.Board
		for t := square.A1; t <= square.H8; t++ {
			f, r := t.Col(), t.Row()
			if f-r == f0-r0 {
				up.Set(t)
			}
			if f+r == f0+r0 {
				down.Set(t)
			}
		}
		DiagUp[s] = up
		DiagDown[s] = down
	}
}

func buildLeaperTables() {
	for s := square.A1; s <= square.H8; s++ {
		f, r := s.Col(), s.Row()

		var knight, king bitboard.Board
		for _, d := range knightDeltas {
			if nf, nr := f+d.df, r+d.dr; inBounds(nf, nr) {
				knight.Set(square.New(square.File(nf), square.Rank(nr)))
			}
		}
		for _, d := range kingDeltas {
			if nf, nr := f+d.df, r+d.dr; inBounds(nf, nr) {
				king.Set(square.New(square.File(nf), square.Rank(nr)))
			}
		}
		Knight[s] = knight
		King[s] = king

		// White pawns attack towards higher ranks, Black towards lower.
		var whiteAtk, blackAtk bitboard.Board
		if nf, nr := f-1, r+1; inBounds(nf, nr) {
			whiteAtk.Set(square.New(square.File(nf), square.Rank(nr)))
		}
		if nf, nr := f+1, r+1; inBounds(nf, nr) {
			whiteAtk.Set(square.New(square.File(nf), square.Rank(nr)))
		}
		if nf, nr := f-1, r-1; inBounds(nf, nr) {
			blackAtk.Set(square.New(square.File(nf), square.Rank(nr)))
		}
		if nf, nr := f+1, r-1; inBounds(nf, nr) {
			blackAtk.Set(square.New(square.File(nf), square.Rank(nr)))
		}
		Pawn[0][s] = whiteAtk
		Pawn[1][s] = blackAtk
	}
}

// buildBetween walks the four "forward" rays (east, north, north-east,
// north-west) from every square, accumulating the visited squares into
// a running mask and recording it symmetrically at every pair visited
// along the way, exactly as spec'd for range_mask.
func buildBetween() {
	rays := []delta{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}
	for s := square.A1; s <= square.H8; s++ {
		f0, r0 := s.Col(), s.Row()
		for _, d := range rays {
			mask := bitboard.Squares[s]
			f, r := f0+d.df, r0+d.dr
			for inBounds(f, r) {
				t := square.New(square.File(f), square.Rank(r))
				mask.Set(t)
				Between[s][t] = mask
				Between[t][s] = mask
				f += d.df
				r += d.dr
			}
		}
	}
}

func buildSliderTables(deltas []delta, mask *[square.N]bitboard.Board, attack *[square.N][]bitboard.Board) {
	for s := square.A1; s <= square.H8; s++ {
		f0, r0 := s.Col(), s.Row()

		var relevant bitboard.Board
		for _, d := range deltas {
			f, r := f0+d.df, r0+d.dr
			for inBounds(f, r) {
				relevant.Set(square.New(square.File(f), square.Rank(r)))
				f += d.df
				r += d.dr
			}
		}
		mask[s] = relevant

		n := 1 << relevant.Count()
		attack[s] = make([]bitboard.Board, n)

		for occIdx := 0; occIdx < n; occIdx++ {
			occ := decompress(occIdx, relevant)
			attack[s][occIdx] = traceAttack(s, occ, deltas)
		}
	}
}

// traceAttack walks each of the given ray directions from s, including
// squares up to and including the first square set in occ.
func traceAttack(s square.Square, occ bitboard.Board, deltas []delta) bitboard.Board {
	var result bitboard.Board
	f0, r0 := s.Col(), s.Row()
	for _, d := range deltas {
		f, r := f0+d.df, r0+d.dr
		for inBounds(f, r) {
			t := square.New(square.File(f), square.Rank(r))
			result.Set(t)
			if occ.IsSet(t) {
				break
			}
			f += d.df
			r += d.dr
		}
	}
	return result
}

// Compress re-packs the bits of occ that lie within mask into a dense
// index, walking mask from its lowest set bit to its highest.
func Compress(occ, mask bitboard.Board) int {
	idx := 0
	bit := 0
	for m := mask; m != bitboard.Empty; {
		s := m.Pop()
		if occ.IsSet(s) {
			idx |= 1 << bit
		}
		bit++
	}
	return idx
}

// decompress is Compress's inverse: it expands index's low bits back
// out onto mask's set squares, producing one occupancy subset of mask.
func decompress(index int, mask bitboard.Board) bitboard.Board {
	var occ bitboard.Board
	bit := 0
	for m := mask; m != bitboard.Empty; {
		s := m.Pop()
		if index&(1<<bit) != 0 {
			occ.Set(s)
		}
		bit++
	}
	return occ
}

// RookMask returns the relevant-blocker mask for a rook on s.
func RookMask(s square.Square) bitboard.Board { return rookMask[s] }

// BishopMask returns the relevant-blocker mask for a bishop on s.
func BishopMask(s square.Square) bitboard.Board { return bishopMask[s] }

// Rook returns the rook attack set from s given the full-board
// occupancy occ.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	return rookAttack[s][Compress(occ, rookMask[s])]
}

// Bishop returns the bishop attack set from s given the full-board
// occupancy occ.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	return bishopAttack[s][Compress(occ, bishopMask[s])]
}

// Queen returns the queen attack set from s given the full-board
// occupancy occ: the union of the rook and bishop slides.
func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Rook(s, occ) | Bishop(s, occ)
}
