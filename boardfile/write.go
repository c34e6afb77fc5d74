package boardfile

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Si0uL/chess-guru/board"
)

// Write renders p in the board file format, one rank of cells per line.
func Write(w io.Writer, p *board.Position) error {
	bw := bufio.NewWriter(w)
	cr := p.CastlingRights()
	flag := func(f board.CastlingRights) int {
		if cr.Has(f) {
			return 1
		}
		return 0
	}
	turn := 0
	if p.SideToMove() == board.White {
		turn = 1
	}
	fmt.Fprintf(bw, "%s = %d\n", keyTurn, turn)
	fmt.Fprintf(bw, "%s = %d\n", keyScore, p.Material())
	fmt.Fprintf(bw, "%s = %d\n", keyWhiteKing, p.KingSquare(board.White))
	fmt.Fprintf(bw, "%s = %d\n", keyBlackKing, p.KingSquare(board.Black))
	fmt.Fprintf(bw, "%s = %d\n", keyWhiteLeft, flag(board.CastlingWhiteLeft))
	fmt.Fprintf(bw, "%s = %d\n", keyWhiteRight, flag(board.CastlingWhiteRight))
	fmt.Fprintf(bw, "%s = %d\n", keyBlackLeft, flag(board.CastlingBlackLeft))
	fmt.Fprintf(bw, "%s = %d\n", keyBlackRight, flag(board.CastlingBlackRight))

	cells := p.Cells()
	for sq, pc := range cells {
		sep := " "
		if sq%8 == 7 {
			sep = "\n"
		}
		fmt.Fprintf(bw, "%d%s", pc, sep)
	}
	return bw.Flush()
}

// Save writes p to path, replacing any existing file.
func Save(path string, p *board.Position) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
