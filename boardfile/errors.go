// Package boardfile reads and writes positions in the labeled board text
// format: eight "key = value" header lines followed by 64 cell codes.
package boardfile

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed reports a file that does not follow the format.
	ErrMalformed = errors.New("malformed board file")

	// ErrInconsistent reports header values that disagree with the cells.
	ErrInconsistent = errors.New("inconsistent board file")
)

// ParseError locates a failure inside a board file.
type ParseError struct {
	Line  int    // 1-based line number, 0 when the whole file is at fault
	Field string // header key or "cells"
	Got   string // offending text, if any
	Err   error
}

func (e *ParseError) Error() string {
	msg := e.Field
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, e.Field)
	}
	if e.Got != "" {
		msg += fmt.Sprintf(": got %q", e.Got)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }
