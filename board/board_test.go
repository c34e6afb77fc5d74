package board_test

import (
	"errors"
	"testing"

	"github.com/Si0uL/chess-guru/board"
)

func TestNewGame(t *testing.T) {
	p := board.NewGame()
	if p.IsInCheck(board.White) || p.IsInCheck(board.Black) {
		t.Fatalf("no side should be in check at the start")
	}
	if got := len(p.AllLegalMoves(board.White, false, nil)); got != 20 {
		t.Fatalf("start position: got %d legal moves, want 20", got)
	}
	if p.SideToMove() != board.White {
		t.Fatalf("white should move first")
	}
	if p.CastlingRights() != board.CastlingAll {
		t.Fatalf("castling rights = %b, want all", p.CastlingRights())
	}
	if p.KingSquare(board.White) != 4 || p.KingSquare(board.Black) != 60 {
		t.Fatalf("king squares = %d, %d", p.KingSquare(board.White), p.KingSquare(board.Black))
	}
	if p.Material() != 0 || !p.Validate() {
		t.Fatalf("start position inconsistent: material %d", p.Material())
	}
	if p.FEN() != board.FENStartPos {
		t.Fatalf("FEN = %q", p.FEN())
	}
}

func TestPieceValues(t *testing.T) {
	tests := []struct {
		pc   board.Piece
		want int
	}{
		{board.WhitePawn, 1},
		{board.WhiteKnight, 3},
		{board.WhiteBishop, 3},
		{board.WhiteRook, 5},
		{board.WhiteQueen, 9},
		{board.WhiteKing, 0},
		{board.BlackQueen, -9},
		{board.BlackPawn, -1},
		{board.NoPiece, 0},
	}
	for _, tc := range tests {
		if got := tc.pc.Value(); got != tc.want {
			t.Errorf("Value(%d) = %d, want %d", tc.pc, got, tc.want)
		}
	}
}

func TestFromCellsValidation(t *testing.T) {
	var cells [64]board.Piece
	cells[4] = board.WhiteKing
	if _, err := board.FromCells(cells, board.White, board.CastlingNone); !errors.Is(err, board.ErrKingCount) {
		t.Fatalf("missing black king: got %v", err)
	}
	cells[60] = board.BlackKing
	cells[61] = board.BlackKing
	if _, err := board.FromCells(cells, board.White, board.CastlingNone); !errors.Is(err, board.ErrKingCount) {
		t.Fatalf("two black kings: got %v", err)
	}
	cells[61] = 9
	if _, err := board.FromCells(cells, board.White, board.CastlingNone); !errors.Is(err, board.ErrInvalidPiece) {
		t.Fatalf("invalid code: got %v", err)
	}
	cells[61] = board.BlackRook
	p, err := board.FromCells(cells, board.Black, board.CastlingNone)
	if err != nil {
		t.Fatalf("FromCells: %v", err)
	}
	if p.Material() != -5 || p.KingSquare(board.Black) != 60 {
		t.Fatalf("material %d, black king %d", p.Material(), p.KingSquare(board.Black))
	}
}

func TestSquareNames(t *testing.T) {
	for _, tc := range []struct {
		sq   board.Square
		name string
	}{{0, "a1"}, {7, "h1"}, {28, "e4"}, {56, "a8"}, {63, "h8"}, {board.NoSquare, "-"}} {
		if got := tc.sq.String(); got != tc.name {
			t.Errorf("Square(%d) = %q, want %q", tc.sq, got, tc.name)
		}
	}
}
