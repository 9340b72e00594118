// Package piece implements chess piece kinds, colors and the combined
// piece encoding used to label squares.
//
// King, Queen, Rook, Knight, Bishop and Pawn are represented by the
// letters K, Q, R, N, B and P, uppercase for White and lowercase for
// Black. The strings "w" and "b" represent White and Black.
package piece

import "fmt"

// Color is White or Black.
type Color int8

const (
	White Color = iota
	Black
)

// NColor is the number of colors.
const NColor = 2

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// NewColor parses "w" or "b".
func NewColor(id string) Color {
	switch id {
	case "w":
		return White
	case "b":
		return Black
	default:
		panic(fmt.Sprintf("piece: invalid color id %q", id))
	}
}

// Kind is one of the six chess piece kinds.
type Kind int8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// NKind is the number of piece kinds.
const NKind = 6

func (k Kind) String() string {
	return "pnbrqk"[k : k+1]
}

// Piece identifies a colored piece occupying a square, or Empty.
//
// Encoding: White kinds are 0..5, Black kinds are 6..11, Empty is 12.
// index%NKind recovers the Kind; index/NKind recovers the Color (0 for
// White) for any occupied value.
type Piece int8

// Empty marks a square with no piece on it.
const Empty Piece = 12

// N is the number of occupied piece values (Empty is not counted).
const N = 12

// the twelve occupied piece values, White first then Black, each in
// Pawn, Knight, Bishop, Rook, Queen, King order.
const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// New builds a Piece from a kind and a color.
func New(k Kind, c Color) Piece {
	return Piece(c)*NKind + Piece(k)
}

// Kind returns the piece's kind. Calling it on Empty is a programmer
// error and panics.
func (p Piece) Kind() Kind {
	if p == Empty {
		panic("piece: Kind of Empty")
	}
	return Kind(p % NKind)
}

// Color returns the piece's color. Calling it on Empty is a programmer
// error and panics.
func (p Piece) Color() Color {
	if p == Empty {
		panic("piece: Color of Empty")
	}
	return Color(p / NKind)
}

var pieceGlyphs = [N]string{
	WhitePawn: "P", WhiteKnight: "N", WhiteBishop: "B",
	WhiteRook: "R", WhiteQueen: "Q", WhiteKing: "K",
	BlackPawn: "p", BlackKnight: "n", BlackBishop: "b",
	BlackRook: "r", BlackQueen: "q", BlackKing: "k",
}

func (p Piece) String() string {
	if p == Empty {
		return "."
	}
	return pieceGlyphs[p]
}

// NewFromString parses a single FEN piece glyph, e.g. "Q" or "n".
func NewFromString(id string) Piece {
	switch id {
	case "P":
		return WhitePawn
	case "N":
		return WhiteKnight
	case "B":
		return WhiteBishop
	case "R":
		return WhiteRook
	case "Q":
		return WhiteQueen
	case "K":
		return WhiteKing
	case "p":
		return BlackPawn
	case "n":
		return BlackKnight
	case "b":
		return BlackBishop
	case "r":
		return BlackRook
	case "q":
		return BlackQueen
	case "k":
		return BlackKing
	default:
		panic(fmt.Sprintf("piece: invalid piece id %q", id))
	}
}

// NewPromotionFromString parses a single promotion-piece letter, as
// used at the end of a long-algebraic move like "e7e8q". Only Queen,
// Rook, Bishop and Knight are valid; ok is false otherwise.
func NewPromotionFromString(id string) (Kind, bool) {
	switch id {
	case "q":
		return Queen, true
	case "r":
		return Rook, true
	case "b":
		return Bishop, true
	case "n":
		return Knight, true
	default:
		return 0, false
	}
}
