package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"mailbox-chess/internal/oracle"
	"mailbox-chess/mailbox"
)

func main() {
	fen := flag.String("fen", mailbox.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required unless -suite)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Compare the divide against the reference generators")
	suite := flag.Bool("suite", false, "Run the standard perft suite concurrently and check every count")
	maxDepth := flag.Int("maxdepth", 4, "Deepest suite entry to run")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *suite {
		if err := runSuite(*maxDepth); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := mailbox.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *verify {
		if !verifyDivide(*fen, board, *depth) {
			os.Exit(1)
		}
		return
	}

	if *divide {
		div := mailbox.PerftDivide(board, *depth)
		moves := maps.Keys(div)
		slices.Sort(moves)
		var sum uint64
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, div[m])
			sum += div[m]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += mailbox.Perft(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Label Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

// verifyDivide prints every root move whose count differs from dragontoothmg
// and checks the total against each reference generator.
func verifyDivide(fen string, board *mailbox.Position, depth int) bool {
	ok := true
	got := mailbox.PerftDivide(board, depth)
	for _, d := range oracle.DiffDivide(got, oracle.Divide(fen, depth)) {
		fmt.Println(d)
		ok = false
	}

	var total uint64
	for _, n := range got {
		total += n
	}
	for _, src := range oracle.Sources {
		want, err := oracle.Perft(src, fen, depth)
		if err != nil {
			fmt.Printf("%s: %v\n", src, err)
			ok = false
			continue
		}
		status := "ok"
		if want != total {
			status = "MISMATCH"
			ok = false
		}
		fmt.Printf("%-14s depth %d: got %d want %d %s\n", src, depth, total, want, status)
	}
	return ok
}
