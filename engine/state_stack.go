package engine

import (
	"github.com/Si0uL/chess-guru/board"
)

// defaultMoveCapacity is the initial per-depth move buffer size. Buffers grow
// on demand; no reachable position is cut short.
const defaultMoveCapacity = 128

// frame is the bookkeeping of one depth level of the explicit search stack.
type frame struct {
	moves  []board.Move
	cursor int

	// bound is the running nu value: best score found so far for the side
	// to move at this level.
	bound    int
	maximize bool

	// undo of the move currently being explored below this frame.
	undo board.Undo
}

// frameStack is a fixed arena with one frame per ply, reused across siblings.
type frameStack struct {
	frames []frame
}

// ensure grows the arena to hold depth frames with at least capacity moves each.
func (fs *frameStack) ensure(depth, capacity int) {
	for len(fs.frames) < depth {
		fs.frames = append(fs.frames, frame{moves: make([]board.Move, 0, capacity)})
	}
}

// open generates the legal moves at level d and resets its cursor and bound.
// It reports the number of moves and whether the side to move is in check.
func (fs *frameStack) open(d int, p *board.Position) (n int, inCheck bool) {
	f := &fs.frames[d]
	side := p.SideToMove()
	inCheck = p.IsInCheck(side)
	f.moves = p.AllLegalMoves(side, inCheck, f.moves[:0])
	f.cursor = 0
	f.maximize = side == board.White
	if f.maximize {
		f.bound = -boundSentinel
	} else {
		f.bound = boundSentinel
	}
	return len(f.moves), inCheck
}

// absorb folds a child's score into frame d and reports whether it improved.
func (f *frame) absorb(score int) bool {
	if f.maximize {
		if score > f.bound {
			f.bound = score
			return true
		}
		return false
	}
	if score < f.bound {
		f.bound = score
		return true
	}
	return false
}

// refuted reports whether child can no longer change parent's choice: the
// parent only accepts strict improvements over its own bound.
func refuted(child, parent *frame) bool {
	if child.maximize {
		return child.bound >= parent.bound
	}
	return child.bound <= parent.bound
}
