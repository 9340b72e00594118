package engine

import (
	"go.uber.org/zap"

	"github.com/kbhawesh/chessrules/internal/util"
	"github.com/kbhawesh/chessrules/pkg/bitboard"
	"github.com/kbhawesh/chessrules/pkg/castling"
	"github.com/kbhawesh/chessrules/pkg/move"
	"github.com/kbhawesh/chessrules/pkg/piece"
	"github.com/kbhawesh/chessrules/pkg/square"
	"github.com/kbhawesh/chessrules/pkg/tables"
	"github.com/kbhawesh/chessrules/pkg/zobrist"
)

// ApplyMove plays a single non-promoting move, validates it fully
// (pattern, blockers, pins and check exposure), and, if legal, mutates
// the Board and recomputes its check and result state. On rejection the
// Board is left exactly as it was.
func (b *Board) ApplyMove(from, to square.Square) error {
	return b.applyMove(move.New(from, to))
}

// ApplyPromotion plays a pawn move to the back rank, promoting to the
// given kind. promotion must be Knight, Bishop, Rook or Queen.
func (b *Board) ApplyPromotion(from, to square.Square, promotion piece.Kind) error {
	return b.applyMove(move.NewPromotion(from, to, promotion))
}

func (b *Board) applyMove(m move.Move) error {
	if b.Result.Done() {
		return b.reject(m, ErrGameOver)
	}

	from, to := m.From, m.To
	if from == to || !from.Valid() || !to.Valid() {
		return b.reject(m, ErrInvalidPattern)
	}

	moving := b.grid[from]
	if moving == piece.Empty {
		return b.reject(m, ErrEmptySource)
	}
	if moving.Color() != b.SideToMove {
		return b.reject(m, ErrWrongTurn)
	}

	kind := moving.Kind()
	if kind == piece.King && to.Rank() == from.Rank() && util.Abs(int(to.File())-int(from.File())) == 2 {
		return b.applyCastle(m, from, to)
	}

	if err := b.validatePattern(m, moving, from, to); err != nil {
		return err
	}

	isEnPassant := kind == piece.Pawn && to == b.EnPassant
	isPromotion := kind == piece.Pawn && (to.Rank() == square.Rank8 || to.Rank() == square.Rank1)
	if isPromotion != m.IsPromotion {
		return b.reject(m, ErrInvalidPromotion)
	}
	if isPromotion {
		switch m.Promotion {
		case piece.Knight, piece.Bishop, piece.Rook, piece.Queen:
		default:
			return b.reject(m, ErrInvalidPromotion)
		}
	}

	epCaptureSq := square.None
	captured := b.grid[to]
	if isEnPassant {
		epCaptureSq = epCapturedSquare(to, b.SideToMove)
		captured = b.grid[epCaptureSq]
	}

	placed := moving
	if isPromotion {
		placed = piece.New(m.Promotion, b.SideToMove)
	}

	b.clearSquare(from)
	if isEnPassant {
		b.clearSquare(epCaptureSq)
	} else if captured != piece.Empty {
		b.clearSquare(to)
	}
	b.fillSquare(to, placed)

	if b.IsInCheck(b.SideToMove) {
		b.clearSquare(to)
		b.fillSquare(from, moving)
		if isEnPassant {
			b.fillSquare(epCaptureSq, captured)
		} else if captured != piece.Empty {
			b.fillSquare(to, captured)
		}
		return b.reject(m, ErrMoveExposesOwnKing)
	}

	vacated := []square.Square{from}
	if isEnPassant {
		vacated = append(vacated, epCaptureSq)
	}
	b.finishMove(from, to, kind == piece.Pawn, captured != piece.Empty || isEnPassant, vacated, []square.Square{to})
	return nil
}

// epCapturedSquare returns the square of the pawn captured by an
// en-passant move landing on to, played by mover.
func epCapturedSquare(to square.Square, mover piece.Color) square.Square {
	if mover == piece.White {
		return square.New(to.File(), to.Rank()-1)
	}
	return square.New(to.File(), to.Rank()+1)
}

// validatePattern checks a non-castling move's geometry, path and
// destination against the moving piece's kind, without touching the
// board. It accepts a diagonal pawn step onto the en-passant target but
// neither removes the captured pawn nor handles promotion; the caller
// does both afterward.
func (b *Board) validatePattern(m move.Move, moving piece.Piece, from, to square.Square) error {
	color := moving.Color()

	switch moving.Kind() {
	case piece.Pawn:
		return b.validatePawnPattern(m, color, from, to)
	case piece.Knight:
		return b.validateLeaperPattern(m, color, to, tables.Knight[from])
	case piece.King:
		return b.validateLeaperPattern(m, color, to, tables.King[from])
	case piece.Bishop:
		df, dr := int(to.File())-int(from.File()), int(to.Rank())-int(from.Rank())
		onLine := util.Abs(df) == util.Abs(dr) && df != 0
		return b.validateSliderPattern(m, color, to, onLine, tables.Bishop(from, b.allOcc))
	case piece.Rook:
		df, dr := int(to.File())-int(from.File()), int(to.Rank())-int(from.Rank())
		onLine := (df == 0) != (dr == 0)
		return b.validateSliderPattern(m, color, to, onLine, tables.Rook(from, b.allOcc))
	case piece.Queen:
		df, dr := int(to.File())-int(from.File()), int(to.Rank())-int(from.Rank())
		onLine := (df == 0) != (dr == 0) || (util.Abs(df) == util.Abs(dr) && df != 0)
		return b.validateSliderPattern(m, color, to, onLine, tables.Queen(from, b.allOcc))
	default:
		return b.reject(m, ErrInvalidPattern)
	}
}

func (b *Board) validateLeaperPattern(m move.Move, color piece.Color, to square.Square, reach bitboard.Board) error {
	if !reach.IsSet(to) {
		return b.reject(m, ErrInvalidPattern)
	}
	if b.Occupancy(color).IsSet(to) {
		return b.reject(m, ErrBlockedMove)
	}
	return nil
}

func (b *Board) validateSliderPattern(m move.Move, color piece.Color, to square.Square, onLine bool, reachable bitboard.Board) error {
	if !onLine {
		return b.reject(m, ErrInvalidPattern)
	}
	if !reachable.IsSet(to) {
		return b.reject(m, ErrBlockedMove)
	}
	if b.Occupancy(color).IsSet(to) {
		return b.reject(m, ErrBlockedMove)
	}
	return nil
}

func (b *Board) validatePawnPattern(m move.Move, color piece.Color, from, to square.Square) error {
	df := int(to.File()) - int(from.File())
	dr := int(to.Rank()) - int(from.Rank())

	forward, startRank := 1, square.Rank2
	if color == piece.Black {
		forward, startRank = -1, square.Rank7
	}

	switch {
	case df == 0 && dr == forward:
		if b.allOcc.IsSet(to) {
			return b.reject(m, ErrBlockedMove)
		}
		return nil

	case df == 0 && dr == 2*forward && from.Rank() == startRank:
		mid := square.New(from.File(), square.Rank(int(from.Rank())+forward))
		if b.allOcc.IsSet(mid) || b.allOcc.IsSet(to) {
			return b.reject(m, ErrBlockedMove)
		}
		return nil

	case util.Abs(df) == 1 && dr == forward:
		if to == b.EnPassant {
			return nil
		}
		if !b.allOcc.IsSet(to) {
			return b.reject(m, ErrInvalidPattern)
		}
		if b.Occupancy(color).IsSet(to) {
			return b.reject(m, ErrBlockedMove)
		}
		return nil

	default:
		return b.reject(m, ErrInvalidPattern)
	}
}

// castleSquares works out the rook's home and destination square, and
// the right that must be held, for a castling attempt landing on to.
func castleSquares(color piece.Color, from, to square.Square) (rookFrom, rookTo square.Square, right castling.Rights, ok bool) {
	rank := from.Rank()
	switch to.File() {
	case square.FileG:
		rookFrom, rookTo = square.New(square.FileH, rank), square.New(square.FileF, rank)
		if color == piece.White {
			right = castling.WhiteKingside
		} else {
			right = castling.BlackKingside
		}
	case square.FileC:
		rookFrom, rookTo = square.New(square.FileA, rank), square.New(square.FileD, rank)
		if color == piece.White {
			right = castling.WhiteQueenside
		} else {
			right = castling.BlackQueenside
		}
	default:
		return 0, 0, 0, false
	}
	return rookFrom, rookTo, right, true
}

// validateCastle checks every castling precondition without mutating
// the Board: the right is held, the rook is where it should be, every
// square between king and rook is empty, and the king's start,
// passage and destination squares are not attacked (raw attacks,
// ignoring pins, since a pin is irrelevant to whether a square is
// under fire).
func (b *Board) validateCastle(color piece.Color, from, to square.Square) (rookFrom, rookTo square.Square, err error) {
	rookFrom, rookTo, right, ok := castleSquares(color, from, to)
	if !ok || from.Rank() != to.Rank() {
		return 0, 0, ErrInvalidCastle
	}
	if !b.CastlingRights.Has(right) {
		return 0, 0, ErrInvalidCastle
	}
	if b.grid[from] != piece.New(piece.King, color) || b.grid[rookFrom] != piece.New(piece.Rook, color) {
		return 0, 0, ErrInvalidCastle
	}

	between := tables.Between[from][rookFrom] &^ bitboard.Squares[from] &^ bitboard.Squares[rookFrom]
	if between&b.allOcc != bitboard.Empty {
		return 0, 0, ErrInvalidCastle
	}

	opp := color.Other()
	passSq := square.New(square.FileF, from.Rank())
	if to.File() == square.FileC {
		passSq = square.New(square.FileD, from.Rank())
	}
	for _, s := range [3]square.Square{from, passSq, to} {
		if b.isSquareAttacked(s, opp) {
			return 0, 0, ErrInvalidCastle
		}
	}
	return rookFrom, rookTo, nil
}

func (b *Board) applyCastle(m move.Move, from, to square.Square) error {
	color := b.SideToMove
	rookFrom, rookTo, err := b.validateCastle(color, from, to)
	if err != nil {
		return b.reject(m, err)
	}

	b.clearSquare(from)
	b.clearSquare(rookFrom)
	b.fillSquare(to, piece.New(piece.King, color))
	b.fillSquare(rookTo, piece.New(piece.Rook, color))

	b.finishMove(from, to, false, false, []square.Square{from, rookFrom}, []square.Square{to, rookTo})
	return nil
}

// hasLegalCastle reports whether color has at least one legal castling
// move available, for stalemate/checkmate's "can anything move" scan.
func (b *Board) hasLegalCastle(color piece.Color) bool {
	rank := square.Rank1
	if color == piece.Black {
		rank = square.Rank8
	}
	from := square.New(square.FileE, rank)
	if b.grid[from] != piece.New(piece.King, color) {
		return false
	}
	for _, to := range [2]square.Square{square.New(square.FileG, rank), square.New(square.FileC, rank)} {
		if _, _, err := b.validateCastle(color, from, to); err == nil {
			return true
		}
	}
	return false
}

// rightsLostBySquare returns the castling rights permanently forfeited
// when a king or rook leaves (or a rook is captured on) its home
// square.
func rightsLostBySquare(s square.Square) castling.Rights {
	switch s {
	case square.E1:
		return castling.WhiteKingside | castling.WhiteQueenside
	case square.A1:
		return castling.WhiteQueenside
	case square.H1:
		return castling.WhiteKingside
	case square.E8:
		return castling.BlackKingside | castling.BlackQueenside
	case square.A8:
		return castling.BlackQueenside
	case square.H8:
		return castling.BlackKingside
	default:
		return castling.None
	}
}

// finishMove applies every side effect common to all move kinds once
// the piece placement itself has been committed: castling-right loss,
// the en-passant target, the two move counters, the turn switch, the
// remaining hash components, the repetition tally and the check/result
// recomputation. vacated and filled list the squares the move emptied
// and occupied respectively (more than one of each for castling and en
// passant), and drive the post-move check classification.
func (b *Board) finishMove(from, to square.Square, isPawnMove, isCaptureOrEP bool, vacated, filled []square.Square) {
	b.Hash ^= zobrist.Castling[b.CastlingRights]
	b.CastlingRights = b.CastlingRights.Clear(rightsLostBySquare(from) | rightsLostBySquare(to))
	b.Hash ^= zobrist.Castling[b.CastlingRights]

	if b.EnPassant != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassant.File()]
	}
	b.EnPassant = square.None
	if isPawnMove && util.Abs(int(to.Rank())-int(from.Rank())) == 2 {
		epSq := square.New(from.File(), square.Rank((int(from.Rank())+int(to.Rank()))/2))
		b.EnPassant = epSq
		b.Hash ^= zobrist.EnPassant[epSq.File()]
	}

	if isPawnMove || isCaptureOrEP {
		b.HalfmoveClock = 0
	} else {
		b.HalfmoveClock++
	}

	if b.SideToMove == piece.Black {
		b.FullmoveNumber++
	}
	b.Plies++
	b.Hash ^= zobrist.SideToMove
	b.SideToMove = b.SideToMove.Other()

	b.positionFreq[b.Hash]++
	b.Check = b.classifyCheck(b.SideToMove, vacated, filled)
	b.Result = b.computeResult()
	if b.Result.Done() {
		b.logger.Info("game over", zap.String("result", b.Result.String()))
	}
}
