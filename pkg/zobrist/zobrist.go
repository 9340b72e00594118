// Package zobrist implements chessrules' PositionHasher component: a
// fixed table of random 64-bit keys, one per (piece, square), castling
// combination and en-passant file, plus one side-to-move key, all
// derived once at startup from a deterministic seed so that hashes are
// reproducible across runs.
package zobrist

import (
	"github.com/kbhawesh/chessrules/internal/prng"
	"github.com/kbhawesh/chessrules/pkg/castling"
	"github.com/kbhawesh/chessrules/pkg/piece"
	"github.com/kbhawesh/chessrules/pkg/square"
)

// Key is a Zobrist hash value.
type Key uint64

// defaultSeed is fixed so that two processes produce identical key tables and
// therefore identical hashes for identical positions.
const defaultSeed = 1070372

var (
	PieceSquare [piece.N][square.N]Key
	EnPassant   [square.FileN]Key
	Castling    [castling.N]Key
	SideToMove  Key
)

func init() {
	Seed(defaultSeed)
}

// Seed regenerates every key table from the given seed. The tables are
// shared by the whole process, so reseeding changes the keys every
// Board uses, and hashes computed before the call no longer match ones
// computed after it. Ordinary callers never need to call it.
func Seed(seed uint64) {
	rng := prng.New(seed)

	for p := piece.Piece(0); p < piece.N; p++ {
		for s := square.A1; s <= square.H8; s++ {
			PieceSquare[p][s] = Key(rng.Uint64())
		}
	}
	for f := square.FileA; f <= square.FileH; f++ {
		EnPassant[f] = Key(rng.Uint64())
	}
	for r := castling.Rights(0); r < castling.N; r++ {
		Castling[r] = Key(rng.Uint64())
	}
	SideToMove = Key(rng.Uint64())
}

// Grid is the minimal view of a position's piece placement the hasher
// needs: one Piece per square, indexed by square.Square (a1 = 0).
type Grid [square.N]piece.Piece

// Compute returns the Zobrist hash of the position described by grid,
// the side to move, the castling rights and the en-passant target
// square (square.None if there is none).
func Compute(grid Grid, whiteToMove bool, rights castling.Rights, enPassant square.Square) Key {
	var h Key
	for s := square.A1; s <= square.H8; s++ {
		if p := grid[s]; p != piece.Empty {
			h ^= PieceSquare[p][s]
		}
	}
	if whiteToMove {
		h ^= SideToMove
	}
	h ^= Castling[rights]
	if enPassant != square.None {
		h ^= EnPassant[enPassant.File()]
	}
	return h
}
