package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Si0uL/chess-guru/board"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// MateScore is the magnitude of a checkmate, white-positive.
	MateScore = 1000
	DrawScore = 0

	// boundSentinel starts every frame at a score worse than any reachable one.
	boundSentinel = 5000
)

var (
	ErrInvalidDepth = errors.New("search depth must be even and at least 2")
	ErrNoLegalMoves = errors.New("no legal moves at the root")
)

// Config tunes a Searcher. The zero value is ready to use.
type Config struct {
	// Logger receives root move scores (debug) and a summary (info).
	// Nil disables logging.
	Logger *zerolog.Logger

	// MoveCapacity is the initial move buffer size per depth level.
	MoveCapacity int
}

// Result is the outcome of one search.
type Result struct {
	Move  board.Move
	Score int
	Depth int
	Stats Stats
}

// Searcher runs fixed-depth minimax searches. Its frame arena is allocated
// once and reused by later searches. A Searcher is not safe for concurrent use.
type Searcher struct {
	stack    frameStack
	capacity int
	log      zerolog.Logger
	stats    Stats
}

// NewSearcher returns a Searcher configured by cfg.
func NewSearcher(cfg Config) *Searcher {
	s := &Searcher{capacity: cfg.MoveCapacity, log: zerolog.Nop()}
	if s.capacity <= 0 {
		s.capacity = defaultMoveCapacity
	}
	if cfg.Logger != nil {
		s.log = *cfg.Logger
	}
	return s
}

// Search runs a Searcher with the default configuration.
func Search(p *board.Position, depth int) (Result, error) {
	return NewSearcher(Config{}).Search(p, depth)
}

// Search explores the full game tree below p to depth plies and returns the
// best root move for the side to move. p is mutated during the search and is
// restored before Search returns.
func (s *Searcher) Search(p *board.Position, depth int) (Result, error) {
	if depth < 2 || depth%2 != 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	s.stats = Stats{}
	start := time.Now()
	s.stack.ensure(depth, s.capacity)
	frames := s.stack.frames

	if n, _ := s.stack.open(0, p); n == 0 {
		return Result{}, ErrNoLegalMoves
	}
	best := 0

	d := 0
	for {
		f := &frames[d]
		if f.cursor < len(f.moves) {
			idx := f.cursor
			m := f.moves[idx]
			f.cursor++
			f.undo = p.Play(m.From, m.To)
			s.stats.Nodes++

			child := d + 1
			var score int
			if child == depth {
				s.stats.Leaves++
				score = p.Material()
			} else if n, inCheck := s.stack.open(child, p); n > 0 {
				d = child
				continue
			} else {
				score = s.terminal(p, inCheck)
			}
			p.Unplay(f.undo)
			s.settle(d, idx, score, &best)
			continue
		}

		// Frame exhausted: its bound is final.
		if d == 0 {
			break
		}
		score := f.bound
		d--
		p.Unplay(frames[d].undo)
		s.settle(d, frames[d].cursor-1, score, &best)
	}

	root := &frames[0]
	s.stats.Elapsed = time.Since(start)
	res := Result{
		Move:  root.moves[best],
		Score: root.bound,
		Depth: depth,
		Stats: s.stats,
	}
	s.log.Info().
		Int("depth", depth).
		Str("move", res.Move.String()).
		Int("score", res.Score).
		Uint64("nodes", s.stats.Nodes).
		Uint64("leaves", s.stats.Leaves).
		Uint64("mates", s.stats.Mates).
		Uint64("stalemates", s.stats.Stalemates).
		Uint64("cutoffs", s.stats.Cutoffs).
		Dur("elapsed", s.stats.Elapsed).
		Msg("search complete")
	return res, nil
}

// terminal scores a node where the side to move has no legal move.
func (s *Searcher) terminal(p *board.Position, inCheck bool) int {
	if !inCheck {
		s.stats.Stalemates++
		return DrawScore
	}
	s.stats.Mates++
	// The side to move is mated.
	return -p.SideToMove().Sign() * MateScore
}

// settle folds a child's score into frame d, remembers the root choice, and
// closes frame d early once its parent can no longer accept it.
func (s *Searcher) settle(d, idx, score int, best *int) {
	frames := s.stack.frames
	f := &frames[d]
	improved := f.absorb(score)
	if d == 0 {
		if improved {
			*best = idx
			s.log.Debug().
				Str("move", f.moves[idx].String()).
				Int("score", score).
				Msg("new best root move")
		}
		return
	}
	if improved && f.cursor < len(f.moves) && refuted(f, &frames[d-1]) {
		s.stats.Cutoffs++
		f.cursor = len(f.moves)
	}
}

// Stats returns the counters of the last search.
func (s *Searcher) Stats() Stats { return s.stats }
