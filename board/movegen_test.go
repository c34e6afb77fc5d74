package board_test

import (
	"math/rand"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"

	"github.com/Si0uL/chess-guru/board"
)

func TestGeneratedMovesNeverLeaveKingInCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, fen := range testFENs {
		p := mustFEN(t, fen)
		playout(p, rng, 100, func(moves []board.Move) {
			us := p.SideToMove()
			for _, m := range moves {
				u := p.Play(m.From, m.To)
				if p.IsInCheck(us) {
					t.Fatalf("%s: move %s leaves %v in check", p.FEN(), m, us)
				}
				p.Unplay(u)
			}
		})
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		status  board.Status
		inCheck bool
	}{
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", board.Checkmate, true},
		{"smothered mate", "6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1", board.Checkmate, true},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", board.Stalemate, false},
		{"check with escape", "R5k1/6pp/8/8/8/8/8/6K1 b - - 0 1", board.Ongoing, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := mustFEN(t, tc.fen)
			side := p.SideToMove()
			inCheck := p.IsInCheck(side)
			if inCheck != tc.inCheck {
				t.Fatalf("IsInCheck = %v, want %v", inCheck, tc.inCheck)
			}
			moves := p.AllLegalMoves(side, inCheck, nil)
			if (len(moves) == 0) != (tc.status != board.Ongoing) {
				t.Fatalf("got %d legal moves for status %v", len(moves), tc.status)
			}
			if got := p.Status(); got != tc.status {
				t.Fatalf("Status = %v, want %v", got, tc.status)
			}
		})
	}
}

func TestCastlingLegality(t *testing.T) {
	tests := []struct {
		name        string
		fen         string
		left, right bool
	}{
		{"both wings open", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true},
		{"crossing square attacked", "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, false},
		{"destination attacked", "4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, false},
		{"rook square attacked only", "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, true},
		{"queenside path attacked", "3rk3/8/8/8/8/8/8/R3K2R w KQ - 0 1", false, true},
		{"king in check", "k3r3/8/8/8/8/8/8/R3K2R w KQ - 0 1", false, false},
		{"knight blocks", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", false, true},
		{"rook missing", "r3k2r/8/8/8/8/8/8/4K2R w KQkq - 0 1", false, true},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := mustFEN(t, tc.fen)
			e1 := sq(t, "e1")
			moves := p.LegalMoves(e1, p.IsInCheck(board.White), nil)
			if got := hasMove(moves, e1, sq(t, "c1")); got != tc.left {
				t.Errorf("queenside castle available = %v, want %v", got, tc.left)
			}
			if got := hasMove(moves, e1, sq(t, "g1")); got != tc.right {
				t.Errorf("kingside castle available = %v, want %v", got, tc.right)
			}
		})
	}
}

func TestCastlingWingsAreIndependent(t *testing.T) {
	for _, tc := range []struct {
		rights      string
		left, right bool
	}{
		{"K", false, true},
		{"Q", true, false},
		{"k", false, false},
	} {
		p := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w "+tc.rights+" - 0 1")
		moves := p.GenerateMoves()
		e1 := sq(t, "e1")
		if hasMove(moves, e1, sq(t, "c1")) != tc.left || hasMove(moves, e1, sq(t, "g1")) != tc.right {
			t.Errorf("rights %q: left=%v right=%v, want %v %v", tc.rights,
				hasMove(moves, e1, sq(t, "c1")), hasMove(moves, e1, sq(t, "g1")), tc.left, tc.right)
		}
	}
	p := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R b q - 0 1")
	moves := p.GenerateMoves()
	e8 := sq(t, "e8")
	if !hasMove(moves, e8, sq(t, "c8")) || hasMove(moves, e8, sq(t, "g8")) {
		t.Errorf("black with only q: got %v", moveStrings(moves))
	}
}

func TestPawnMoves(t *testing.T) {
	p := mustFEN(t, "4k3/8/8/8/8/p1p5/1P6/4K3 w - - 0 1")
	got := moveStrings(p.LegalMoves(sq(t, "b2"), false, nil))
	want := []string{"b2a3", "b2b3", "b2b4", "b2c3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("pawn moves mismatch (-want +got):\n%s", diff)
	}

	blocked := mustFEN(t, "4k3/8/8/8/1n6/8/1P6/4K3 w - - 0 1")
	got = moveStrings(blocked.LegalMoves(sq(t, "b2"), false, nil))
	if diff := cmp.Diff([]string{"b2b3"}, got); diff != "" {
		t.Fatalf("blocked double step mismatch (-want +got):\n%s", diff)
	}
}

func TestPinnedPieceStays(t *testing.T) {
	p := mustFEN(t, "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1")
	if moves := p.LegalMoves(sq(t, "e2"), false, nil); len(moves) != 0 {
		t.Fatalf("pinned knight should have no moves, got %v", moveStrings(moves))
	}
}

func TestMoveOrderIsBoardScan(t *testing.T) {
	p := board.NewGame()
	moves := p.GenerateMoves()
	for i := 1; i < len(moves); i++ {
		if moves[i].From < moves[i-1].From {
			t.Fatalf("moves not in ascending origin order: %v then %v", moves[i-1], moves[i])
		}
	}
	if moves[0].String() != "b1c3" {
		t.Fatalf("first move = %s, want b1c3", moves[0])
	}
}

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		nodes uint64
	}{
		{"start d1", board.FENStartPos, 1, 20},
		{"start d2", board.FENStartPos, 2, 400},
		{"start d3", board.FENStartPos, 3, 8902},
		{"start d4", board.FENStartPos, 4, 197281},
		{"kiwipete d1", testFENs[1], 1, 48},
		// 2039 with the single en passant capture excluded.
		{"kiwipete d2", testFENs[1], 2, 2038},
		{"endgame d1", testFENs[2], 1, 14},
		{"endgame d2", testFENs[2], 2, 191},
	}
	for _, tc := range tests {
		if testing.Short() && tc.nodes > 10000 {
			continue
		}
		p := mustFEN(t, tc.fen)
		if got := board.Perft(p, tc.depth); got != tc.nodes {
			t.Errorf("%s: perft(%d) = %d, want %d", tc.name, tc.depth, got, tc.nodes)
		}
		if p.FEN() != mustFEN(t, tc.fen).FEN() {
			t.Errorf("%s: perft did not restore the position", tc.name)
		}
	}
}

func TestPerftDivideSums(t *testing.T) {
	p := mustFEN(t, testFENs[1])
	div := board.PerftDivide(p, 2)
	if len(div) != 48 {
		t.Fatalf("divide has %d root moves, want 48", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != board.Perft(p, 2) {
		t.Fatalf("divide sum %d != perft %d", sum, board.Perft(p, 2))
	}
}

// oracleMoves maps the legal moves of a reference generator onto this
// package's rules: en passant is dropped and every promotion is a queen.
func oracleMoves(ref *dragontoothmg.Board, p *board.Position) map[string]dragontoothmg.Move {
	out := make(map[string]dragontoothmg.Move)
	for _, m := range ref.GenerateLegalMoves() {
		if promo := m.Promote(); promo != dragontoothmg.Nothing && promo != dragontoothmg.Queen {
			continue
		}
		mv := board.Move{From: board.Square(m.From()), To: board.Square(m.To())}
		pc := p.PieceAt(mv.From)
		if pc.Type() == board.PieceTypePawn && mv.From.File() != mv.To.File() && p.PieceAt(mv.To) == board.NoPiece {
			continue
		}
		out[mv.String()] = m
	}
	return out
}

func TestMovesMatchReferenceGenerator(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	positions := 0
	for _, fen := range testFENs {
		for game := 0; game < 6; game++ {
			p := mustFEN(t, fen)
			ref := dragontoothmg.ParseFen(fen)
			for ply := 0; ply < 80; ply++ {
				moves := p.GenerateMoves()
				oracle := oracleMoves(&ref, p)
				want := make([]string, 0, len(oracle))
				for k := range oracle {
					want = append(want, k)
				}
				slices.Sort(want)
				if diff := cmp.Diff(want, moveStrings(moves)); diff != "" {
					t.Fatalf("%s: legal moves mismatch (-reference +got):\n%s", p.FEN(), diff)
				}
				positions++
				if len(moves) == 0 {
					break
				}
				m := moves[rng.Intn(len(moves))]
				ref.Apply(oracle[m.String()])
				p.Play(m.From, m.To)
			}
		}
	}
	t.Logf("compared %d positions", positions)
}
