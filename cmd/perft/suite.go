package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"mailbox-chess/mailbox"
)

type suiteEntry struct {
	label string
	fen   string
	nodes []uint64 // nodes[d-1] is the count at depth d
}

var suiteEntries = []suiteEntry{
	{"Initial", mailbox.FENStartPos, []uint64{20, 400, 8902, 197281, 4865609}},
	{"Kiwipete", mailbox.FENKiwipete, []uint64{48, 2039, 97862, 4085603}},
	{"Position3", mailbox.FENPosition3, []uint64{14, 191, 2812, 43238, 674624}},
	{"Position4", mailbox.FENPosition4, []uint64{6, 264, 9467, 422333}},
	{"Position5", mailbox.FENPosition5, []uint64{44, 1486, 62379, 2103487}},
	{"Position6", mailbox.FENPosition6, []uint64{46, 2079, 89890, 3894594}},
}

type suiteResult struct {
	label   string
	depth   int
	nodes   uint64
	want    uint64
	elapsed time.Duration
}

// runSuite counts every suite entry up to maxDepth. Entries are independent,
// so they run on separate goroutines; each perft is still single-threaded.
func runSuite(maxDepth int) error {
	var jobs []suiteResult
	var fens []string
	for _, e := range suiteEntries {
		for d := 1; d <= len(e.nodes) && d <= maxDepth; d++ {
			jobs = append(jobs, suiteResult{label: e.label, depth: d, want: e.nodes[d-1]})
			fens = append(fens, e.fen)
		}
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU())
	for i := range jobs {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := mailbox.ParseFEN(fens[i])
			if err != nil {
				return fmt.Errorf("%s: %w", jobs[i].label, err)
			}
			start := time.Now()
			jobs[i].nodes = mailbox.Perft(p, jobs[i].depth)
			jobs[i].elapsed = time.Since(start)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tStatus")
	for _, r := range jobs {
		status := "ok"
		if r.nodes != r.want {
			status = fmt.Sprintf("MISMATCH want %d", r.want)
			failed++
		}
		fmt.Printf("%s \t%d \t\t%d \t\t%s \t%s\n", r.label, r.depth, r.nodes, r.elapsed, status)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d perft counts wrong", failed, len(jobs))
	}
	return nil
}
