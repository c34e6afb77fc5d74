package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/exp/slices"

	"github.com/Si0uL/chess-guru/board"
	"github.com/Si0uL/chess-guru/boardfile"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("perft", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fen := fs.String("fen", board.FENStartPos, "FEN string (defaults to initial position)")
	file := fs.String("file", "", "Board file to load instead of -fen")
	depth := fs.Int("depth", 0, "Perft depth (required)")
	divide := fs.Bool("divide", false, "Print per-move node counts at root")
	repeat := fs.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := fs.String("label", "", "Optional label prefix for one-line output")
	cpuProf := fs.String("cpuprofile", "", "Write CPU profile to file during run")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *depth <= 0 {
		fmt.Fprintln(stderr, "-depth must be > 0")
		return 2
	}

	var (
		pos *board.Position
		err error
	)
	if *file != "" {
		pos, err = boardfile.Load(*file)
	} else {
		pos, err = board.ParseFEN(*fen)
	}
	if err != nil {
		fmt.Fprintf(stderr, "load error: %v\n", err)
		return 2
	}

	if *divide {
		div := board.PerftDivide(pos, *depth)
		keys := make([]string, 0, len(div))
		counts := make(map[string]uint64, len(div))
		var sum uint64
		for m, n := range div {
			s := pos.UCI(m)
			keys = append(keys, s)
			counts[s] = n
			sum += n
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(stdout, "%s: %d\n", k, counts[k])
		}
		fmt.Fprintf(stdout, "Total: %d\n", sum)
		return 0
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(stderr, "creating cpuprofile: %v\n", err)
			return 2
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(stderr, "start cpu profile: %v\n", err)
			return 2
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += board.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Label Depth Nodes Time NPS
	fmt.Fprintf(stdout, "%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
	return 0
}
