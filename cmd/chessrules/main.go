// Command chessrules is a small terminal driver for the rules engine:
// it starts from the standard position (or from the FEN in the
// CHESSRULES_FEN environment variable, when set), plays the moves fed
// on stdin one per line against the engine, prints the board after
// every move and reports the final result.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/kbhawesh/chessrules/internal/notation"
	"github.com/kbhawesh/chessrules/pkg/engine"
)

var (
	lightSquare = color.New(color.BgWhite, color.FgBlack)
	darkSquare  = color.New(color.BgHiBlack, color.FgWhite)
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	fen := engine.StartFEN
	if f := os.Getenv("CHESSRULES_FEN"); f != "" {
		fen = f
	}

	board, err := engine.NewFromFEN(fen, engine.WithLogger(logger))
	if err != nil {
		fmt.Fprintln(os.Stderr, "chessrules:", err)
		os.Exit(1)
	}

	printBoard(board)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if board.Result.Done() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := playMove(board, line); err != nil {
			fmt.Fprintln(os.Stderr, "chessrules:", err)
			continue
		}
		printBoard(board)
	}

	fmt.Println("result:", board.Result)
}

func playMove(b *engine.Board, text string) error {
	m, err := notation.Parse(text)
	if err != nil {
		return err
	}
	if m.IsPromotion {
		return b.ApplyPromotion(m.From, m.To, m.Promotion)
	}
	return b.ApplyMove(m.From, m.To)
}

func printBoard(b *engine.Board) {
	grid := b.Position()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := grid[row][col]
			if sq == "." {
				sq = " "
			}
			cell := " " + sq + " "
			if (row+col)%2 == 0 {
				lightSquare.Print(cell)
			} else {
				darkSquare.Print(cell)
			}
		}
		fmt.Println()
	}
	fmt.Println(b.FEN())
	if b.Check != engine.NoCheck {
		fmt.Println("check:", b.Check)
	}
	fmt.Println()
}
