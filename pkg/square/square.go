// Package square declares the board-index type used throughout
// chessrules, along with files, ranks and the algebraic notation
// conversions between them.
//
// Squares are numbered 0..63 with square 0 at a1. Row (rank) is
// square/8 and column (file) is square%8, so row 0 is White's back
// rank. This is the opposite of the "h1 is bit 0" convention some
// bitboard engines use; chessrules picks a1-at-bit-0 and keeps it
// consistent everywhere a square index appears.
package square

import "fmt"

// Square is an index 0..63 into the board, or None for "no square".
type Square int8

// None is the sentinel value used for an absent en-passant target or
// check square.
const None Square = 64

// N is the number of real squares on a board.
const N = 64

// constants for every square, named in algebraic notation.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63
)

// File represents a file (column) on the chessboard, a column.
type File int8

// constants representing every file.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// FileN is the number of files.
const FileN = 8

func (f File) String() string {
	return string("abcdefgh"[f])
}

// FileFrom parses a single-character file identifier, e.g. "e".
func FileFrom(id string) File {
	return File(id[0] - 'a')
}

// Rank represents a rank (row) on the chessboard, 1-indexed in display
// but 0-indexed internally: Rank1 is White's back rank, row 0.
type Rank int8

// constants representing every rank.
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// RankN is the number of ranks.
const RankN = 8

func (r Rank) String() string {
	return string("12345678"[r])
}

// RankFrom parses a single-character rank identifier, e.g. "4".
func RankFrom(id string) Rank {
	return Rank(id[0] - '1')
}

// New builds a Square from a file and a rank.
func New(file File, rank Rank) Square {
	return Square(int(rank)*8 + int(file))
}

// NewFromString parses a square in algebraic notation, e.g. "e4", or
// "-" for None.
func NewFromString(id string) Square {
	switch {
	case id == "-":
		return None
	case len(id) != 2:
		panic(fmt.Sprintf("square: invalid square id %q", id))
	}

	return New(FileFrom(id[0:1]), RankFrom(id[1:2]))
}

// File returns the file (column) of the square.
func (s Square) File() File {
	return File(s % 8)
}

// Rank returns the rank (row) of the square.
func (s Square) Rank() Rank {
	return Rank(s / 8)
}

// Row is an alias for Rank as an int, matching the row/col vocabulary
// used by the move-validation routines.
func (s Square) Row() int {
	return int(s / 8)
}

// Col is an alias for File as an int.
func (s Square) Col() int {
	return int(s % 8)
}

func (s Square) String() string {
	if s == None {
		return "-"
	}
	return s.File().String() + s.Rank().String()
}

// Valid reports whether s identifies a real square (excludes None).
func (s Square) Valid() bool {
	return s >= A1 && s <= H8
}
