package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"mailbox-chess/engine"
	"mailbox-chess/mailbox"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", engine.DefaultOptions().Depth, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run per algorithm")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	algoFlag := flag.String("algo", "both", "alphabeta, negamax or both")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 || *depthFlag > engine.MaxDepth {
		log.Fatalf("depth must be in [1,%d], got %d", engine.MaxDepth, *depthFlag)
	}

	algos := []engine.Algorithm{engine.AlphaBeta, engine.Negamax}
	if *algoFlag != "both" {
		a, err := engine.ParseAlgorithm(*algoFlag)
		if err != nil {
			log.Fatalf("%v", err)
		}
		algos = []engine.Algorithm{a}
	}

	fen := mailbox.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}
	pos, err := mailbox.ParseFEN(fen)
	if err != nil {
		log.Fatalf("could not parse FEN: %v", err)
	}

	// --- Optional CPU profiling setup ---
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

	depth := *depthFlag
	repeat := *repeatFlag
	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", fen, depth, repeat)

	startAll := time.Now()
	for _, algo := range algos {
		s := engine.NewSearcher(algo)
		for i := 0; i < repeat; i++ {
			res := s.Search(pos, depth)
			nps := float64(res.Nodes) / res.Elapsed.Seconds()
			fmt.Printf("%-9s iteration %d: bestmove %s score %d nodes %d time=%v nps=%.0f\n",
				algo, i+1, res.Move, res.Score, res.Nodes, res.Elapsed, nps)
		}
	}
	fmt.Printf("total time: %v\n", time.Since(startAll))

	// --- Optional heap profile at the end ---
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
