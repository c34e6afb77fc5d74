package board

import (
	"errors"
	"fmt"
)

// PieceType is the colorless kind of a piece, using the board file codes.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeRook   PieceType = 2
	PieceTypeKnight PieceType = 3
	PieceTypeBishop PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Piece is a signed cell value: the sign is the side (positive = White), the
// magnitude is the PieceType.
type Piece int8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteRook   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = -1
	BlackRook   Piece = -2
	BlackKnight Piece = -3
	BlackBishop Piece = -4
	BlackQueen  Piece = -5
	BlackKing   Piece = -6
)

// pieceValues is indexed by PieceType.
var pieceValues = [7]int{0, 1, 5, 3, 3, 9, 0}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(abs(int(p))) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p < 0 {
		return Black
	}
	return White
}

// Value is the signed material value of the piece, positive for White.
func (p Piece) Value() int { return sign(int(p)) * pieceValues[p.Type()] }

// Valid reports whether p is a legal cell code.
func (p Piece) Valid() bool { return p >= BlackKing && p <= WhiteKing }

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	return Piece(color.Sign() * int(pt))
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

// Sign is +1 for White and -1 for Black.
func (c Color) Sign() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// CastlingRights holds the four independent castling flags. "Left" is the
// a-file (queen side) wing, "right" the h-file (king side) wing.
type CastlingRights uint8

const (
	CastlingWhiteLeft CastlingRights = 1 << iota
	CastlingWhiteRight
	CastlingBlackLeft
	CastlingBlackRight

	CastlingNone CastlingRights = 0
	CastlingAll                 = CastlingWhiteLeft | CastlingWhiteRight | CastlingBlackLeft | CastlingBlackRight
)

// castleLeft and castleRight give the flag for each side's wing.
var (
	castleLeft  = [2]CastlingRights{CastlingWhiteLeft, CastlingBlackLeft}
	castleRight = [2]CastlingRights{CastlingWhiteRight, CastlingBlackRight}
)

// CastleLeft returns the left-wing flag for c.
func CastleLeft(c Color) CastlingRights { return castleLeft[c] }

// CastleRight returns the right-wing flag for c.
func CastleRight(c Color) CastlingRights { return castleRight[c] }

// Has reports whether every flag in f is set.
func (cr CastlingRights) Has(f CastlingRights) bool { return cr&f == f }

// Square is a board index: rank*8 + file, a1 = 0, h8 = 63.
type Square int

const NoSquare Square = -1

// NewSquare builds a square from a rank and file in [0, 8).
func NewSquare(rank, file int) Square { return Square(rank*8 + file) }

func (sq Square) Rank() int { return int(sq) / 8 }
func (sq Square) File() int { return int(sq) % 8 }

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < 64 }

// String renders the square in algebraic form, e.g. "e4".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// homeRank is the back rank of each side.
var homeRank = [2]int{0, 7}

var (
	ErrKingCount    = errors.New("each side needs exactly one king")
	ErrInvalidPiece = errors.New("invalid piece code")
)

// Position is the mutable game state. It is mutated in place by Play and
// restored by Unplay; search never copies it.
type Position struct {
	cells [64]Piece

	sideToMove Color

	// kings caches each side's king square (index by Color).
	kings [2]Square

	castling CastlingRights

	// score is the running material balance, positive favors White.
	score int
}

var firstRank = [8]PieceType{
	PieceTypeRook, PieceTypeKnight, PieceTypeBishop, PieceTypeQueen,
	PieceTypeKing, PieceTypeBishop, PieceTypeKnight, PieceTypeRook,
}

// NewGame returns the standard starting position with White to move.
func NewGame() *Position {
	p := &Position{castling: CastlingAll, sideToMove: White}
	for file := 0; file < 8; file++ {
		p.cells[NewSquare(0, file)] = PieceFromType(White, firstRank[file])
		p.cells[NewSquare(1, file)] = WhitePawn
		p.cells[NewSquare(6, file)] = BlackPawn
		p.cells[NewSquare(7, file)] = PieceFromType(Black, firstRank[file])
	}
	p.kings = [2]Square{NewSquare(0, 4), NewSquare(7, 4)}
	return p
}

// FromCells builds a position from raw cell codes. King squares and the
// material score are derived from the cells.
func FromCells(cells [64]Piece, side Color, castling CastlingRights) (*Position, error) {
	p := &Position{cells: cells, sideToMove: side, castling: castling & CastlingAll}
	kings := [2]int{}
	for sq, pc := range cells {
		if !pc.Valid() {
			return nil, fmt.Errorf("%w %d on %s", ErrInvalidPiece, pc, Square(sq))
		}
		if pc.Type() == PieceTypeKing {
			kings[pc.Color()]++
			p.kings[pc.Color()] = Square(sq)
		}
		p.score += pc.Value()
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return nil, fmt.Errorf("%w: white has %d, black has %d", ErrKingCount, kings[White], kings[Black])
	}
	return p, nil
}

// PieceAt returns the piece on a square.
func (p *Position) PieceAt(sq Square) Piece { return p.cells[sq] }

// Cells returns a copy of the 64 cell codes.
func (p *Position) Cells() [64]Piece { return p.cells }

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.sideToMove }

// KingSquare returns the cached king square of c.
func (p *Position) KingSquare(c Color) Square { return p.kings[c] }

// CastlingRights returns the current castling flags.
func (p *Position) CastlingRights() CastlingRights { return p.castling }

// Material returns the running material score, positive favors White.
func (p *Position) Material() int { return p.score }

// ComputeMaterial recomputes the material score from the cells.
func (p *Position) ComputeMaterial() int {
	total := 0
	for _, pc := range p.cells {
		total += pc.Value()
	}
	return total
}

// Validate checks the cached king squares and material score against the cells.
// Returns true if consistent, false otherwise.
func (p *Position) Validate() bool {
	var count [2]int
	for sq, pc := range p.cells {
		if !pc.Valid() {
			return false
		}
		if pc.Type() == PieceTypeKing {
			count[pc.Color()]++
			if p.kings[pc.Color()] != Square(sq) {
				return false
			}
		}
	}
	if count[White] != 1 || count[Black] != 1 {
		return false
	}
	return p.score == p.ComputeMaterial()
}
