package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Si0uL/chess-guru/board"
	"github.com/Si0uL/chess-guru/engine"
)

const defaultDepth = 4

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
	uciLoop(os.Stdin, os.Stdout, &logger)
}

type uciSession struct {
	out      io.Writer
	pos      *board.Position
	searcher *engine.Searcher
}

func uciLoop(in io.Reader, out io.Writer, logger *zerolog.Logger) {
	s := &uciSession{
		out:      out,
		pos:      board.NewGame(),
		searcher: engine.NewSearcher(engine.Config{Logger: logger}),
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			fmt.Fprintln(out, "id name chess-guru")
			fmt.Fprintln(out, "id author chess-guru developers")
			fmt.Fprintln(out, "uciok")
		case "isready":
			fmt.Fprintln(out, "readyok")
		case "ucinewgame":
			s.pos = board.NewGame()
		case "quit":
			return
		case "position":
			s.position(tokens[1:])
		case "go":
			s.goCommand(tokens[1:])
		case "fen":
			fmt.Fprintln(out, "info string", s.pos.FEN())
		default:
			fmt.Fprintln(out, "info string Unknown command:", line)
		}
	}
}

func (s *uciSession) position(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "info string Malformed position command")
		return
	}
	var rest []string
	switch strings.ToLower(args[0]) {
	case "startpos":
		s.pos = board.NewGame()
		rest = args[1:]
	case "fen":
		end := len(args)
		for i, a := range args {
			if strings.ToLower(a) == "moves" {
				end = i
				break
			}
		}
		pos, err := board.ParseFEN(strings.Join(args[1:end], " "))
		if err != nil {
			fmt.Fprintln(s.out, "info string Invalid fen position:", err)
			return
		}
		s.pos = pos
		rest = args[end:]
	default:
		fmt.Fprintln(s.out, "info string Invalid position subcommand")
		return
	}
	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return
	}
	for _, moveStr := range rest[1:] {
		mv, err := board.ParseMove(moveStr)
		if err != nil {
			fmt.Fprintln(s.out, "info string Move parsing failed:", err)
			return
		}
		if !s.isLegal(mv) {
			fmt.Fprintln(s.out, "info string Move", moveStr, "not found for position", s.pos.FEN())
			return
		}
		s.pos.Play(mv.From, mv.To)
	}
}

func (s *uciSession) isLegal(mv board.Move) bool {
	for _, m := range s.pos.GenerateMoves() {
		if m == mv {
			return true
		}
	}
	return false
}

func (s *uciSession) goCommand(args []string) {
	depth := defaultDepth
	for i := 0; i < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "depth":
			if i+1 >= len(args) {
				fmt.Fprintln(s.out, "info string Malformed go command option depth")
				return
			}
			i++
			d, err := strconv.Atoi(args[i])
			if err != nil {
				fmt.Fprintln(s.out, "info string Malformed go command option; could not convert depth")
				return
			}
			depth = d
		default:
			fmt.Fprintln(s.out, "info string Unknown go subcommand", args[i])
		}
	}
	if even := engine.EvenDepth(depth); even != depth {
		fmt.Fprintf(s.out, "info string depth %d rounded to %d\n", depth, even)
		depth = even
	}

	res, err := s.searcher.Search(s.pos, depth)
	if err != nil {
		fmt.Fprintln(s.out, "info string", err)
		fmt.Fprintln(s.out, "bestmove 0000")
		return
	}
	fmt.Fprintf(s.out, "info depth %d score cp %d nodes %d nps %d\n",
		res.Depth, res.Score*s.pos.SideToMove().Sign()*100, res.Stats.Nodes, res.Stats.NodesPerSecond())
	fmt.Fprintln(s.out, "bestmove", s.pos.UCI(res.Move))
}
