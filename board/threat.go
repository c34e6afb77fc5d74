package board

// Direction is one of the eight ray directions a line piece moves along.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	UpRight
	DownRight
	UpLeft
	DownLeft
)

// rayStep holds the rank and file delta of each direction.
var rayStep = [8][2]int{
	Up:        {1, 0},
	Down:      {-1, 0},
	Left:      {0, -1},
	Right:     {0, 1},
	UpRight:   {1, 1},
	DownRight: {-1, 1},
	UpLeft:    {1, -1},
	DownLeft:  {-1, -1},
}

// Diagonal reports whether d is one of the four bishop directions.
func (d Direction) Diagonal() bool { return d >= UpRight }

var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// pawnCaptureStep is the rank delta, seen from the attacked square, at which a
// pawn of the given color sits when it threatens that square.
var pawnCaptureStep = [2]int{White: -1, Black: 1}

func onBoard(rank, file int) bool {
	return rank >= 0 && rank < 8 && file >= 0 && file < 8
}

// RayThreat reports whether sq is attacked by a piece of color `by` along
// direction d. The first occupied cell on the ray decides.
func (p *Position) RayThreat(sq Square, d Direction, by Color) bool {
	step := rayStep[d]
	rank, file := sq.Rank()+step[0], sq.File()+step[1]
	for dist := 1; onBoard(rank, file); dist++ {
		pc := p.cells[NewSquare(rank, file)]
		if pc != NoPiece {
			if pc.Color() != by {
				return false
			}
			return canAttackAlong(pc.Type(), d, dist, step[0] == pawnCaptureStep[by])
		}
		rank += step[0]
		file += step[1]
	}
	return false
}

// canAttackAlong decides whether a piece type found at distance dist on a ray
// of direction d threatens the ray's origin. pawnSide is true when the ray
// points back toward the attacking pawn's starting side.
func canAttackAlong(pt PieceType, d Direction, dist int, pawnSide bool) bool {
	switch pt {
	case PieceTypeQueen:
		return true
	case PieceTypeKing:
		return dist == 1
	case PieceTypeRook:
		return !d.Diagonal()
	case PieceTypeBishop:
		return d.Diagonal()
	case PieceTypePawn:
		return d.Diagonal() && dist == 1 && pawnSide
	}
	return false
}

// KnightThreat reports whether a knight of color `by` attacks sq.
func (p *Position) KnightThreat(sq Square, by Color) bool {
	knight := PieceFromType(by, PieceTypeKnight)
	rank, file := sq.Rank(), sq.File()
	for _, off := range knightOffsets {
		r, f := rank+off[0], file+off[1]
		if onBoard(r, f) && p.cells[NewSquare(r, f)] == knight {
			return true
		}
	}
	return false
}

// IsSquareAttacked reports whether the given square is attacked by the given color.
func (p *Position) IsSquareAttacked(sq Square, by Color) bool {
	for d := Up; d <= DownLeft; d++ {
		if p.RayThreat(sq, d, by) {
			return true
		}
	}
	return p.KnightThreat(sq, by)
}

// IsInCheck reports whether the king of side c is attacked.
func (p *Position) IsInCheck(c Color) bool {
	return p.IsSquareAttacked(p.kings[c], c.Other())
}

// lineBetween returns the direction leading from a to b when both lie on a
// common rank, file or diagonal.
func lineBetween(a, b Square) (Direction, bool) {
	dr, df := b.Rank()-a.Rank(), b.File()-a.File()
	if a == b || (dr != 0 && df != 0 && abs(dr) != abs(df)) {
		return 0, false
	}
	sr, sf := sign(dr), sign(df)
	for d, step := range rayStep {
		if step[0] == sr && step[1] == sf {
			return Direction(d), true
		}
	}
	return 0, false
}

// WouldBeInCheck reports whether moving the piece on from to to exposes the
// mover's king. Only the line through the king and from can change, so only
// that ray is rescanned.
//
// It must not be used for king moves or while the mover is already in check.
func (p *Position) WouldBeInCheck(from, to Square) bool {
	moved := p.cells[from]
	us := moved.Color()
	d, ok := lineBetween(p.kings[us], from)
	if !ok {
		return false
	}
	captured := p.cells[to]
	p.cells[to] = moved
	p.cells[from] = NoPiece
	exposed := p.RayThreat(p.kings[us], d, us.Other())
	p.cells[from] = moved
	p.cells[to] = captured
	return exposed
}
