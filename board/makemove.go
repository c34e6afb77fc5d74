package board

// Undo holds the minimal state needed to reverse one Play.
type Undo struct {
	From, To Square

	// Moved and Captured are the exact codes that stood on From and To.
	Moved    Piece
	Captured Piece

	// PrevCastling is the full rights snapshot; a rook capture can clear the
	// opponent's flags as well as the mover's.
	PrevCastling CastlingRights
	PrevScore    int
}

// rookCorner returns the corner square of c's rook on the given wing.
func rookCorner(c Color, right bool) Square {
	if right {
		return NewSquare(homeRank[c], 7)
	}
	return NewSquare(homeRank[c], 0)
}

// cornerRight maps a corner square to the castling flag it guards.
func cornerRight(sq Square) CastlingRights {
	switch sq {
	case 0:
		return CastlingWhiteLeft
	case 7:
		return CastlingWhiteRight
	case 56:
		return CastlingBlackLeft
	case 63:
		return CastlingBlackRight
	}
	return CastlingNone
}

// castleRookSquares returns the rook's origin and destination for a king
// moving two files from `from` to `to`.
func castleRookSquares(from, to Square) (rookFrom, rookTo Square) {
	rank := from.Rank()
	if to.File() > from.File() {
		return NewSquare(rank, 7), to - 1
	}
	return NewSquare(rank, 0), to + 1
}

// Play applies the move from -> to without any legality check and returns
// the record that Unplay needs. Pawns reaching the last rank become queens.
func (p *Position) Play(from, to Square) Undo {
	moved := p.cells[from]
	captured := p.cells[to]
	u := Undo{
		From:         from,
		To:           to,
		Moved:        moved,
		Captured:     captured,
		PrevCastling: p.castling,
		PrevScore:    p.score,
	}
	us := moved.Color()

	p.cells[to] = moved
	p.cells[from] = NoPiece
	p.score -= captured.Value()

	switch moved.Type() {
	case PieceTypePawn:
		if to.Rank() == homeRank[us.Other()] {
			queen := PieceFromType(us, PieceTypeQueen)
			p.cells[to] = queen
			p.score += queen.Value() - moved.Value()
		}
	case PieceTypeKing:
		p.kings[us] = to
		p.castling &^= castleLeft[us] | castleRight[us]
		if abs(to.File()-from.File()) == 2 {
			rookFrom, rookTo := castleRookSquares(from, to)
			p.cells[rookTo] = p.cells[rookFrom]
			p.cells[rookFrom] = NoPiece
		}
	case PieceTypeRook:
		p.castling &^= cornerRight(from) & (castleLeft[us] | castleRight[us])
	}
	if captured.Type() == PieceTypeRook {
		them := us.Other()
		p.castling &^= cornerRight(to) & (castleLeft[them] | castleRight[them])
	}

	p.sideToMove = p.sideToMove.Other()
	return u
}

// Unplay undoes a previously played move, restoring the exact prior state.
func (p *Position) Unplay(u Undo) {
	p.sideToMove = p.sideToMove.Other()

	p.cells[u.From] = u.Moved
	p.cells[u.To] = u.Captured
	p.castling = u.PrevCastling
	p.score = u.PrevScore

	if u.Moved.Type() == PieceTypeKing {
		p.kings[u.Moved.Color()] = u.From
		if abs(u.To.File()-u.From.File()) == 2 {
			rookFrom, rookTo := castleRookSquares(u.From, u.To)
			p.cells[rookFrom] = p.cells[rookTo]
			p.cells[rookTo] = NoPiece
		}
	}
}
