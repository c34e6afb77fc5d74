// Command search loads a board file and prints the best move found by a
// fixed-depth search as two board indices: "<from> <to>".
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Si0uL/chess-guru/boardfile"
	"github.com/Si0uL/chess-guru/engine"
)

const usage = "usage: search [-v] [-stats] <board file> <depth>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log every improving root move")
	stats := fs.Bool("stats", false, "print search statistics to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).
		With().Timestamp().Logger()

	depth, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		fmt.Fprintf(stderr, "invalid depth %q\n%s\n", fs.Arg(1), usage)
		return 2
	}

	pos, err := boardfile.Load(fs.Arg(0))
	if err != nil {
		logger.Error().Err(err).Str("file", fs.Arg(0)).Msg("cannot load board")
		return 1
	}

	logger.Debug().Str("fen", pos.FEN()).Int("depth", depth).Msg("searching")
	s := engine.NewSearcher(engine.Config{Logger: &logger})
	res, err := s.Search(pos, depth)
	switch {
	case errors.Is(err, engine.ErrInvalidDepth):
		fmt.Fprintf(stderr, "%v\n%s\n", err, usage)
		return 2
	case err != nil:
		logger.Error().Err(err).Msg("search failed")
		return 1
	}

	fmt.Fprintf(stdout, "%d %d\n", res.Move.From, res.Move.To)
	if *stats {
		res.Stats.Dump(stderr)
	}
	return 0
}
