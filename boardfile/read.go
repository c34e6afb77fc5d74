package boardfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Si0uL/chess-guru/board"
)

// header keys in file order.
const (
	keyTurn       = "w_turn"
	keyScore      = "w_score"
	keyWhiteKing  = "w_king_pos"
	keyBlackKing  = "b_king_pos"
	keyWhiteLeft  = "castling_wl"
	keyWhiteRight = "castling_wr"
	keyBlackLeft  = "castling_bl"
	keyBlackRight = "castling_br"
)

var headerKeys = [...]string{
	keyTurn, keyScore, keyWhiteKing, keyBlackKing,
	keyWhiteLeft, keyWhiteRight, keyBlackLeft, keyBlackRight,
}

const fieldCells = "cells"

// Load opens path and parses it with Read.
func Load(path string) (*board.Position, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses a board file. Every header must be present in order and every
// value must parse; w_score and both king squares must agree with the cells.
func Read(r io.Reader) (*board.Position, error) {
	sc := bufio.NewScanner(r)
	line := 0
	values := make(map[string]int, len(headerKeys))

	for _, key := range headerKeys {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, &ParseError{Line: line + 1, Field: key, Err: fmt.Errorf("%w: unexpected end of file", ErrMalformed)}
		}
		line++
		v, err := parseHeader(sc.Text(), key)
		if err != nil {
			err.Line = line
			return nil, err
		}
		values[key] = v
	}

	var cells [64]board.Piece
	n := 0
	for sc.Scan() {
		line++
		for _, tok := range strings.Fields(sc.Text()) {
			if n == len(cells) {
				return nil, &ParseError{Line: line, Field: fieldCells, Got: tok, Err: fmt.Errorf("%w: more than 64 cells", ErrMalformed)}
			}
			code, err := strconv.Atoi(tok)
			if err != nil {
				return nil, &ParseError{Line: line, Field: fieldCells, Got: tok, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
			}
			if code < int(board.BlackKing) || code > int(board.WhiteKing) {
				return nil, &ParseError{Line: line, Field: fieldCells, Got: tok, Err: fmt.Errorf("%w: %w", ErrMalformed, board.ErrInvalidPiece)}
			}
			cells[n] = board.Piece(code)
			n++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if n != len(cells) {
		return nil, &ParseError{Line: line, Field: fieldCells, Err: fmt.Errorf("%w: want 64 cells, got %d", ErrMalformed, n)}
	}

	return build(cells, values)
}

// parseHeader checks one "key = value" line. The returned error has no line set.
func parseHeader(text, key string) (int, *ParseError) {
	name, raw, ok := strings.Cut(text, "=")
	if !ok || strings.TrimSpace(name) != key {
		return 0, &ParseError{Field: key, Got: text, Err: fmt.Errorf("%w: expected %q header", ErrMalformed, key)}
	}
	raw = strings.TrimSpace(raw)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ParseError{Field: key, Got: raw, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	switch key {
	case keyScore:
	case keyWhiteKing, keyBlackKing:
		if !board.Square(v).Valid() {
			return 0, &ParseError{Field: key, Got: raw, Err: fmt.Errorf("%w: square out of range", ErrMalformed)}
		}
	default:
		if v != 0 && v != 1 {
			return 0, &ParseError{Field: key, Got: raw, Err: fmt.Errorf("%w: flag must be 0 or 1", ErrMalformed)}
		}
	}
	return v, nil
}

func build(cells [64]board.Piece, values map[string]int) (*board.Position, error) {
	side := board.Black
	if values[keyTurn] == 1 {
		side = board.White
	}
	castling := board.CastlingNone
	for key, flag := range map[string]board.CastlingRights{
		keyWhiteLeft:  board.CastlingWhiteLeft,
		keyWhiteRight: board.CastlingWhiteRight,
		keyBlackLeft:  board.CastlingBlackLeft,
		keyBlackRight: board.CastlingBlackRight,
	} {
		if values[key] == 1 {
			castling |= flag
		}
	}

	p, err := board.FromCells(cells, side, castling)
	if err != nil {
		return nil, &ParseError{Field: fieldCells, Err: fmt.Errorf("%w: %w", ErrInconsistent, err)}
	}
	if got := values[keyScore]; got != p.Material() {
		return nil, &ParseError{Line: 2, Field: keyScore, Got: strconv.Itoa(got),
			Err: fmt.Errorf("%w: cells give material %d", ErrInconsistent, p.Material())}
	}
	for i, c := range [2]board.Color{board.White, board.Black} {
		key := []string{keyWhiteKing, keyBlackKing}[i]
		if got := board.Square(values[key]); got != p.KingSquare(c) {
			return nil, &ParseError{Line: 3 + i, Field: key, Got: strconv.Itoa(values[key]),
				Err: fmt.Errorf("%w: %s king is on %d", ErrInconsistent, c, p.KingSquare(c))}
		}
	}
	return p, nil
}
