package board_test

import (
	"math/rand"
	"testing"

	"golang.org/x/exp/slices"

	"github.com/Si0uL/chess-guru/board"
)

func mustFEN(t testing.TB, fen string) *board.Position {
	t.Helper()
	p, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return p
}

func sq(t testing.TB, alg string) board.Square {
	t.Helper()
	s, err := board.ParseSquare(alg)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", alg, err)
	}
	return s
}

func hasMove(moves []board.Move, from, to board.Square) bool {
	for _, m := range moves {
		if m.From == from && m.To == to {
			return true
		}
	}
	return false
}

func moveStrings(moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	slices.Sort(out)
	return out
}

// playout walks a seeded random game from p and calls visit before each move.
// The position is left at the final node.
func playout(p *board.Position, rng *rand.Rand, plies int, visit func(moves []board.Move)) []board.Undo {
	var undos []board.Undo
	for i := 0; i < plies; i++ {
		moves := p.GenerateMoves()
		visit(moves)
		if len(moves) == 0 {
			break
		}
		m := moves[rng.Intn(len(moves))]
		undos = append(undos, p.Play(m.From, m.To))
	}
	return undos
}

var testFENs = []string{
	board.FENStartPos,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
}
