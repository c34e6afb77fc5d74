package board

import (
	"errors"
	"strings"
)

// Move is a from/to pair. Promotion is implicit: a pawn reaching the last
// rank always becomes a queen.
type Move struct {
	From, To Square
}

// NullMove is the zero-information move returned when nothing was chosen.
var NullMove = Move{From: NoSquare, To: NoSquare}

// String produces the coordinate form of the move (e.g. "e2e4").
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	return m.From.String() + m.To.String()
}

// UCI renders the move as a UCI engine would, adding the promotion suffix
// when the moving piece is a pawn reaching the last rank.
func (p *Position) UCI(m Move) string {
	s := m.String()
	pc := p.cells[m.From]
	if pc.Type() == PieceTypePawn && m.To.Rank() == homeRank[pc.Color().Other()] {
		s += "q"
	}
	return s
}

// ParseMove converts a coordinate string (e2e4, e7e8q) into a Move.
// A promotion suffix is accepted but only "q" is meaningful.
func ParseMove(movestr string) (Move, error) {
	movestr = strings.TrimSpace(strings.ToLower(movestr))
	if len(movestr) < 4 || len(movestr) > 5 {
		return NullMove, errors.New("invalid move length")
	}
	from, err := ParseSquare(movestr[0:2])
	if err != nil {
		return NullMove, err
	}
	to, err := ParseSquare(movestr[2:4])
	if err != nil {
		return NullMove, err
	}
	if len(movestr) == 5 && movestr[4] != 'q' {
		return NullMove, errors.New("only queen promotion is supported")
	}
	return Move{From: from, To: to}, nil
}

// ParseSquare converts an algebraic square such as "e4" into a Square.
func ParseSquare(alg string) (Square, error) {
	if len(alg) != 2 {
		return NoSquare, errors.New("invalid algebraic square length")
	}
	file := alg[0]
	rank := alg[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, errors.New("invalid algebraic square")
	}
	return NewSquare(int(rank-'1'), int(file-'a')), nil
}
