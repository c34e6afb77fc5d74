package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"

	"github.com/Si0uL/chess-guru/board"
	"github.com/Si0uL/chess-guru/boardfile"
	"github.com/Si0uL/chess-guru/engine"
)

func main() {
	depthFlag := flag.Int("depth", 4, "search depth in plies (even, >= 2)")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", board.FENStartPos, "FEN to search")
	fileFlag := flag.String("file", "", "board file to search instead of -fen")
	label := flag.String("label", "", "optional label for the summary line")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	if *label != "" {
		logger = logger.With().Str("label", *label).Logger()
	}

	var (
		pos *board.Position
		err error
	)
	if *fileFlag != "" {
		pos, err = boardfile.Load(*fileFlag)
	} else {
		pos, err = board.ParseFEN(*fenFlag)
	}
	if err != nil {
		log.Fatalf("could not load position: %v", err)
	}

	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	logger.Info().Str("fen", pos.FEN()).Int("depth", *depthFlag).Int("repeat", *repeatFlag).Msg("searchbench")

	// One searcher for every run: the frame arena is allocated once.
	searcher := engine.NewSearcher(engine.Config{})
	var nodes uint64
	startAll := time.Now()
	for i := 0; i < *repeatFlag; i++ {
		res, err := searcher.Search(pos, *depthFlag)
		if err != nil {
			log.Fatalf("search failed: %v", err)
		}
		nodes += res.Stats.Nodes
		logger.Info().
			Int("iteration", i+1).
			Str("bestmove", pos.UCI(res.Move)).
			Int("score", res.Score).
			Uint64("nodes", res.Stats.Nodes).
			Uint64("cutoffs", res.Stats.Cutoffs).
			Dur("time", res.Stats.Elapsed).
			Msg("search")
	}
	total := time.Since(startAll)
	logger.Info().
		Dur("total", total).
		Uint64("nodes", nodes).
		Float64("nps", float64(nodes)/total.Seconds()).
		Msg("done")

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
