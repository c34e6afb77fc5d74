package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var ErrInvalidFEN = errors.New("invalid FEN")

var fenLetters = [7]byte{0, 'p', 'r', 'n', 'b', 'q', 'k'}

// pieceFromChar converts a FEN character to the corresponding Piece.
func pieceFromChar(ch byte) Piece {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
	} else {
		ch += 'a' - 'A'
	}
	for pt, letter := range fenLetters {
		if pt > 0 && letter == ch {
			return PieceFromType(color, PieceType(pt))
		}
	}
	return NoPiece
}

// charFromPiece converts a Piece to its FEN character representation.
func charFromPiece(p Piece) byte {
	ch := fenLetters[p.Type()]
	if p.Color() == White {
		ch -= 'a' - 'A'
	}
	return ch
}

func fenError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidFEN, fmt.Sprintf(format, args...))
}

// ParseFEN parses a FEN string into a Position. The en passant square and
// move clocks are validated but not kept.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fenError("not enough fields")
	}

	// 1. Piece placement
	var cells [64]Piece
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fenError("incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return nil, fenError("empty rank description")
		}
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return nil, fenError("unrecognized piece character %q", ch)
			}
			if file >= 8 {
				return nil, fenError("too many squares in rank %d", rank+1)
			}
			cells[NewSquare(rank, file)] = piece
			file++
		}
		if file != 8 {
			return nil, fenError("rank %d does not have 8 columns", rank+1)
		}
	}

	// 2. Side to move
	var side Color
	switch fields[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return nil, fenError("side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	castling := CastlingNone
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				castling |= CastlingWhiteRight
			case 'Q':
				castling |= CastlingWhiteLeft
			case 'k':
				castling |= CastlingBlackRight
			case 'q':
				castling |= CastlingBlackLeft
			default:
				return nil, fenError("invalid castling rights character %q", ch)
			}
		}
	}

	// 4. En passant target square (not modeled)
	if fields[3] != "-" {
		if _, err := ParseSquare(fields[3]); err != nil {
			return nil, fenError("en passant square: %v", err)
		}
	}

	// 5, 6. Clocks
	for _, f := range fields[4:] {
		if _, err := strconv.Atoi(f); err != nil {
			return nil, fenError("move clock %q is not a number", f)
		}
	}

	p, err := FromCells(cells, side, castling)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}
	return p, nil
}

// FEN produces the FEN string of the position. The en passant field is always
// "-" and the clocks are fixed at "0 1".
func (p *Position) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < 8; file++ {
			pc := p.cells[NewSquare(rank, file)]
			if pc == NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte('0' + byte(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(charFromPiece(pc))
		}
		if emptyCount > 0 {
			sb.WriteByte('0' + byte(emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if p.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if p.castling == CastlingNone {
		sb.WriteByte('-')
	} else {
		for _, f := range []struct {
			flag CastlingRights
			ch   byte
		}{
			{CastlingWhiteRight, 'K'},
			{CastlingWhiteLeft, 'Q'},
			{CastlingBlackRight, 'k'},
			{CastlingBlackLeft, 'q'},
		} {
			if p.castling.Has(f.flag) {
				sb.WriteByte(f.ch)
			}
		}
	}
	sb.WriteString(" - 0 1")
	return sb.String()
}
