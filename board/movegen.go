package board

// maxPieceMoves bounds the pseudo-legal destinations of one piece: a queen
// reaches at most 27 squares, a king 8 plus two castles.
const maxPieceMoves = 32

var (
	orthogonal = [4]Direction{Up, Down, Left, Right}
	diagonal   = [4]Direction{UpRight, DownRight, UpLeft, DownLeft}
)

// pawnStep is the rank delta of a forward pawn move for each color.
var pawnStep = [2]int{White: 1, Black: -1}

// pawnStartRank is the rank a pawn may double-step from.
var pawnStartRank = [2]int{White: 1, Black: 6}

// PseudoLegalMoves appends the destinations the piece on sq can reach by its
// movement rules into dst. Moves may still leave the mover in check.
func (p *Position) PseudoLegalMoves(sq Square, dst []Move) []Move {
	pc := p.cells[sq]
	inCheck := pc.Type() == PieceTypeKing && p.IsInCheck(pc.Color())
	return p.pseudoLegalMoves(sq, inCheck, dst)
}

func (p *Position) pseudoLegalMoves(sq Square, inCheck bool, dst []Move) []Move {
	pc := p.cells[sq]
	if pc == NoPiece {
		return dst
	}
	us := pc.Color()
	switch pc.Type() {
	case PieceTypePawn:
		dst = p.pawnMoves(sq, us, dst)
	case PieceTypeRook:
		dst = p.slidingMoves(sq, us, orthogonal[:], dst)
	case PieceTypeBishop:
		dst = p.slidingMoves(sq, us, diagonal[:], dst)
	case PieceTypeQueen:
		dst = p.slidingMoves(sq, us, orthogonal[:], dst)
		dst = p.slidingMoves(sq, us, diagonal[:], dst)
	case PieceTypeKnight:
		dst = p.knightMoves(sq, us, dst)
	case PieceTypeKing:
		dst = p.kingMoves(sq, us, dst)
		if !inCheck {
			dst = p.castlingMoves(sq, us, dst)
		}
	}
	return dst
}

// enterable reports whether a piece of color us may land on sq.
func (p *Position) enterable(sq Square, us Color) bool {
	pc := p.cells[sq]
	return pc == NoPiece || pc.Color() != us
}

func (p *Position) pawnMoves(sq Square, us Color, dst []Move) []Move {
	rank, file := sq.Rank(), sq.File()
	next := rank + pawnStep[us]
	if next < 0 || next > 7 {
		return dst
	}
	one := NewSquare(next, file)
	if p.cells[one] == NoPiece {
		dst = append(dst, Move{From: sq, To: one})
		if rank == pawnStartRank[us] {
			two := NewSquare(next+pawnStep[us], file)
			if p.cells[two] == NoPiece {
				dst = append(dst, Move{From: sq, To: two})
			}
		}
	}
	for _, df := range [2]int{-1, 1} {
		f := file + df
		if f < 0 || f > 7 {
			continue
		}
		target := NewSquare(next, f)
		if pc := p.cells[target]; pc != NoPiece && pc.Color() != us {
			dst = append(dst, Move{From: sq, To: target})
		}
	}
	return dst
}

func (p *Position) slidingMoves(sq Square, us Color, dirs []Direction, dst []Move) []Move {
	for _, d := range dirs {
		step := rayStep[d]
		rank, file := sq.Rank()+step[0], sq.File()+step[1]
		for onBoard(rank, file) {
			target := NewSquare(rank, file)
			pc := p.cells[target]
			if pc != NoPiece {
				if pc.Color() != us {
					dst = append(dst, Move{From: sq, To: target})
				}
				break
			}
			dst = append(dst, Move{From: sq, To: target})
			rank += step[0]
			file += step[1]
		}
	}
	return dst
}

func (p *Position) knightMoves(sq Square, us Color, dst []Move) []Move {
	rank, file := sq.Rank(), sq.File()
	for _, off := range knightOffsets {
		r, f := rank+off[0], file+off[1]
		if onBoard(r, f) && p.enterable(NewSquare(r, f), us) {
			dst = append(dst, Move{From: sq, To: NewSquare(r, f)})
		}
	}
	return dst
}

func (p *Position) kingMoves(sq Square, us Color, dst []Move) []Move {
	rank, file := sq.Rank(), sq.File()
	for _, step := range rayStep {
		r, f := rank+step[0], file+step[1]
		if onBoard(r, f) && p.enterable(NewSquare(r, f), us) {
			dst = append(dst, Move{From: sq, To: NewSquare(r, f)})
		}
	}
	return dst
}

// castlingMoves appends the castle destinations of the king on sq. The caller
// guarantees the king is not in check.
func (p *Position) castlingMoves(sq Square, us Color, dst []Move) []Move {
	if sq != NewSquare(homeRank[us], 4) {
		return dst
	}
	rook := PieceFromType(us, PieceTypeRook)
	if p.castling.Has(castleLeft[us]) && p.cells[rookCorner(us, false)] == rook &&
		p.emptyBetween(sq, rookCorner(us, false)) && p.safeCastlePath(sq, -1) {
		dst = append(dst, Move{From: sq, To: sq - 2})
	}
	if p.castling.Has(castleRight[us]) && p.cells[rookCorner(us, true)] == rook &&
		p.emptyBetween(sq, rookCorner(us, true)) && p.safeCastlePath(sq, 1) {
		dst = append(dst, Move{From: sq, To: sq + 2})
	}
	return dst
}

// emptyBetween reports whether every square strictly between a and b on the
// same rank is empty.
func (p *Position) emptyBetween(a, b Square) bool {
	if a > b {
		a, b = b, a
	}
	for sq := a + 1; sq < b; sq++ {
		if p.cells[sq] != NoPiece {
			return false
		}
	}
	return true
}

// safeCastlePath walks the king one file at a time toward its castle square
// and reports whether neither the crossed nor the final square is attacked.
func (p *Position) safeCastlePath(king Square, dir Square) bool {
	us := p.cells[king].Color()
	first := p.Play(king, king+dir)
	safe := !p.IsInCheck(us)
	if safe {
		second := p.Play(king+dir, king+2*dir)
		safe = !p.IsInCheck(us)
		p.Unplay(second)
	}
	p.Unplay(first)
	return safe
}

// LegalMoves appends the legal destinations of the piece on sq into dst.
// alreadyInCheck must report whether the mover is currently in check.
func (p *Position) LegalMoves(sq Square, alreadyInCheck bool, dst []Move) []Move {
	var buf [maxPieceMoves]Move
	pc := p.cells[sq]
	us := pc.Color()
	slow := alreadyInCheck || pc.Type() == PieceTypeKing
	for _, m := range p.pseudoLegalMoves(sq, alreadyInCheck, buf[:0]) {
		if slow {
			u := p.Play(m.From, m.To)
			ok := !p.IsInCheck(us)
			p.Unplay(u)
			if !ok {
				continue
			}
		} else if p.WouldBeInCheck(m.From, m.To) {
			continue
		}
		dst = append(dst, m)
	}
	return dst
}

// AllLegalMoves appends every legal move of side into dst, scanning squares
// in ascending order.
func (p *Position) AllLegalMoves(side Color, alreadyInCheck bool, dst []Move) []Move {
	for sq := Square(0); sq < 64; sq++ {
		if pc := p.cells[sq]; pc != NoPiece && pc.Color() == side {
			dst = p.LegalMoves(sq, alreadyInCheck, dst)
		}
	}
	return dst
}

// GenerateMoves generates all legal moves for the current side to move.
func (p *Position) GenerateMoves() []Move {
	return p.GenerateMovesInto(make([]Move, 0, 64))
}

// GenerateMovesInto appends the legal moves for the side to move into dst.
func (p *Position) GenerateMovesInto(dst []Move) []Move {
	return p.AllLegalMoves(p.sideToMove, p.IsInCheck(p.sideToMove), dst)
}

// Status classifies the position for the side to move.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

// Status reports whether the side to move is checkmated, stalemated or can play on.
func (p *Position) Status() Status {
	var buf [256]Move
	if len(p.GenerateMovesInto(buf[:0])) > 0 {
		return Ongoing
	}
	if p.IsInCheck(p.sideToMove) {
		return Checkmate
	}
	return Stalemate
}

// Perft counts leaf nodes (move sequences) from the position for a given depth.
// Optimized to reuse per-depth buffers to avoid allocations.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(p, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 128)
	}
	return buf[:0]
}

func perftRec(p *Position, depth int, pc *perftCtx) uint64 {
	moves := p.GenerateMovesInto(pc.bufFor(depth))
	pc.bufs[depth] = moves
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		u := p.Play(m.From, m.To)
		nodes += perftRec(p, depth-1, pc)
		p.Unplay(u)
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf nodes
// reachable from that move at the given depth. Useful for debugging.
func PerftDivide(p *Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.GenerateMoves() {
		u := p.Play(m.From, m.To)
		result[m] = Perft(p, depth-1)
		p.Unplay(u)
	}
	return result
}
