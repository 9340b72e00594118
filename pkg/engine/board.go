// Package engine implements chessrules' MoveEngine and AttackAnalysis
// components: a legal-move validator for standard chess, built on the
// bitboards, precomputed tables and Zobrist hasher from the sibling
// packages.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kbhawesh/chessrules/pkg/bitboard"
	"github.com/kbhawesh/chessrules/pkg/castling"
	"github.com/kbhawesh/chessrules/pkg/piece"
	"github.com/kbhawesh/chessrules/pkg/square"
	"github.com/kbhawesh/chessrules/pkg/zobrist"
)

// StartFEN is the FEN of the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// CheckType classifies why the side to move is in check, distinguishing
// a discovered check (the moved piece unveiled an attacker) from a
// direct one (the moved piece is the attacker) since some callers care
// which piece must be dealt with.
type CheckType int

const (
	NoCheck CheckType = iota
	DirectCheck
	DiscoveryCheck
	DoubleCheck
)

func (c CheckType) String() string {
	switch c {
	case NoCheck:
		return "none"
	case DirectCheck:
		return "direct"
	case DiscoveryCheck:
		return "discovery"
	case DoubleCheck:
		return "double"
	default:
		return "unknown"
	}
}

// GameResult is the sticky outcome of a game. Once set to anything
// other than InProgress it never changes.
type GameResult int

const (
	InProgress GameResult = iota
	WhiteWinsByCheckmate
	BlackWinsByCheckmate
	DrawByStalemate
	DrawByRepetition
	DrawByInsufficientMaterial
	DrawByFiftyMoveRule
)

func (r GameResult) String() string {
	switch r {
	case InProgress:
		return "in_progress"
	case WhiteWinsByCheckmate:
		return "white_wins_checkmate"
	case BlackWinsByCheckmate:
		return "black_wins_checkmate"
	case DrawByStalemate:
		return "draw_stalemate"
	case DrawByRepetition:
		return "draw_repetition"
	case DrawByInsufficientMaterial:
		return "draw_insufficient_material"
	case DrawByFiftyMoveRule:
		return "draw_fifty_move_rule"
	default:
		return "unknown"
	}
}

// Done reports whether r ends the game.
func (r GameResult) Done() bool {
	return r != InProgress
}

// Board is a chess position plus the bookkeeping needed to validate the
// next move against it: piece placement, side to move, castling
// rights, the en-passant target, the halfmove clock and fullmove number, the
// running Zobrist hash and a tally of how often each hash has occurred
// (for threefold repetition), and the last-computed check/result
// classification.
type Board struct {
	pieceBoards [piece.N]bitboard.Board
	whiteOcc    bitboard.Board
	blackOcc    bitboard.Board
	allOcc      bitboard.Board
	grid        [square.N]piece.Piece

	SideToMove     piece.Color
	CastlingRights castling.Rights
	EnPassant      square.Square
	HalfmoveClock  int
	FullmoveNumber int

	// Plies counts half-moves already applied; it drives MoveError's
	// ply field.
	Plies int

	Hash         zobrist.Key
	positionFreq map[zobrist.Key]int

	Check  CheckType
	Result GameResult

	logger *zap.Logger
}

// NewGame returns a Board set to the standard starting position.
func NewGame(opts ...Option) *Board {
	b, err := NewFromFEN(StartFEN, opts...)
	if err != nil {
		// StartFEN is a compile-time constant; a failure here is a
		// programmer error in this package, not a caller mistake.
		panic("engine: " + err.Error())
	}
	return b
}

// NewFromFEN builds a Board from a FEN string. FEN input is not part of
// the move-validation contract itself, but every engine needs some way
// to start from an arbitrary position, so chessrules offers it the way
// any chess library does.
func NewFromFEN(fen string, opts ...Option) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("chessrules: fen %q: want 6 space-separated fields, got %d", fen, len(fields))
	}

	b := &Board{EnPassant: square.None}
	for s := range b.grid {
		b.grid[s] = piece.Empty
	}
	applyOptions(b, opts)

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("chessrules: fen %q: want 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := square.Rank(7 - i)
		file := square.FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += square.File(ch - '0')
				continue
			}
			if file > square.FileH || !strings.ContainsRune("PNBRQKpnbrqk", ch) {
				return nil, fmt.Errorf("chessrules: fen %q: malformed rank %q", fen, rankStr)
			}
			b.fillSquare(square.New(file, rank), piece.NewFromString(string(ch)))
			file++
		}
	}

	switch fields[1] {
	case "w":
		b.SideToMove = piece.White
	case "b":
		b.SideToMove = piece.Black
	default:
		return nil, fmt.Errorf("chessrules: fen %q: invalid side to move %q", fen, fields[1])
	}

	b.CastlingRights = castling.NewFromString(fields[2])

	ep, err := parseEnPassant(fields[3])
	if err != nil {
		return nil, fmt.Errorf("chessrules: fen %q: %w", fen, err)
	}
	b.EnPassant = ep

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("chessrules: fen %q: invalid halfmove clock %q", fen, fields[4])
	}
	b.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("chessrules: fen %q: invalid fullmove number %q", fen, fields[5])
	}
	b.FullmoveNumber = fullmove

	b.Hash = zobrist.Compute(b.zobristGrid(), b.SideToMove == piece.White, b.CastlingRights, b.EnPassant)
	b.positionFreq = map[zobrist.Key]int{b.Hash: 1}
	b.refreshCheckAndResult()

	return b, nil
}

func parseEnPassant(field string) (square.Square, error) {
	if field == "-" {
		return square.None, nil
	}
	if len(field) != 2 || field[0] < 'a' || field[0] > 'h' || field[1] < '1' || field[1] > '8' {
		return square.None, fmt.Errorf("invalid en-passant target %q", field)
	}
	return square.NewFromString(field), nil
}

func (b *Board) zobristGrid() zobrist.Grid {
	return zobrist.Grid(b.grid)
}

// occOf returns a pointer to the occupancy bitboard for c, so callers
// can Set/Unset it in place.
func (b *Board) occOf(c piece.Color) *bitboard.Board {
	if c == piece.White {
		return &b.whiteOcc
	}
	return &b.blackOcc
}

// clearSquare empties s, updating every derived bitboard and the
// running piece-square component of the hash. It is a no-op on an
// already-empty square.
func (b *Board) clearSquare(s square.Square) {
	p := b.grid[s]
	if p == piece.Empty {
		return
	}
	b.pieceBoards[p].Unset(s)
	b.occOf(p.Color()).Unset(s)
	b.allOcc.Unset(s)
	b.grid[s] = piece.Empty
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// fillSquare places p on s, which must currently be empty.
func (b *Board) fillSquare(s square.Square, p piece.Piece) {
	b.pieceBoards[p].Set(s)
	b.occOf(p.Color()).Set(s)
	b.allOcc.Set(s)
	b.grid[s] = p
	b.Hash ^= zobrist.PieceSquare[p][s]
}

// pieces returns the bitboard of every piece of the given kind and
// color.
func (b *Board) pieces(k piece.Kind, c piece.Color) bitboard.Board {
	return b.pieceBoards[piece.New(k, c)]
}

func (b *Board) kingSquare(c piece.Color) square.Square {
	return b.pieces(piece.King, c).FirstOne()
}

// PieceAt returns the piece occupying s, or piece.Empty.
func (b *Board) PieceAt(s square.Square) piece.Piece {
	return b.grid[s]
}

// Occupancy returns the combined bitboard of every piece of color c.
func (b *Board) Occupancy(c piece.Color) bitboard.Board {
	return *b.occOf(c)
}

// AllOccupancy returns the bitboard of every occupied square.
func (b *Board) AllOccupancy() bitboard.Board {
	return b.allOcc
}

// Position renders the board as an 8x8 grid of FEN glyphs, rows ordered
// rank 8 (index 0) down to rank 1 (index 7), each row ordered file a to
// file h, matching how a FEN diagram reads on the page.
func (b *Board) Position() [8][8]string {
	var grid [8][8]string
	for rank := square.Rank1; rank <= square.Rank8; rank++ {
		row := 7 - int(rank)
		for file := square.FileA; file <= square.FileH; file++ {
			grid[row][file] = b.grid[square.New(file, rank)].String()
		}
	}
	return grid
}

// FEN renders the current position as a FEN string.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := square.Rank8; ; rank-- {
		empty := 0
		for file := square.FileA; file <= square.FileH; file++ {
			p := b.grid[square.New(file, rank)]
			if p == piece.Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank == square.Rank1 {
			break
		}
		sb.WriteByte('/')
	}
	sb.WriteByte(' ')
	sb.WriteString(b.SideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(b.CastlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(b.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullmoveNumber))
	return sb.String()
}

func (b *Board) String() string {
	return b.FEN()
}
