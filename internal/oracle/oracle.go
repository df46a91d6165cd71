// Package oracle wraps independent move generators that serve as reference
// implementations when validating the mailbox generator.
package oracle

import (
	"fmt"
	"strings"

	goose "github.com/Oliverans/GooseEngineMG/goosemg"
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Source names a reference generator.
type Source string

const (
	Dragontooth Source = "dragontoothmg"
	Goose       Source = "goosemg"
)

// Sources lists every available reference generator.
var Sources = []Source{Dragontooth, Goose}

// Perft counts leaf nodes at depth using the given reference generator.
func Perft(src Source, fen string, depth int) (uint64, error) {
	switch src {
	case Dragontooth:
		b := dragontoothmg.ParseFen(fen)
		return dragontoothPerft(&b, depth), nil
	case Goose:
		b, err := goose.ParseFEN(fen)
		if err != nil {
			return 0, fmt.Errorf("oracle %s: %w", src, err)
		}
		return goose.Perft(b, depth), nil
	default:
		return 0, fmt.Errorf("oracle: unknown source %q", src)
	}
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

// Divide returns per-root-move leaf counts from dragontoothmg, keyed by
// coordinate notation.
func Divide(fen string, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	b := dragontoothmg.ParseFen(fen)
	for _, m := range b.GenerateLegalMoves() {
		name := strings.ToLower(m.String())
		unapply := b.Apply(m)
		result[name] = dragontoothPerft(&b, depth-1)
		unapply()
	}
	return result
}

// LegalMoves returns dragontoothmg's legal moves for fen, sorted.
func LegalMoves(fen string) []string {
	b := dragontoothmg.ParseFen(fen)
	moves := b.GenerateLegalMoves()
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, strings.ToLower(m.String()))
	}
	slices.Sort(names)
	return names
}

// DiffDivide compares two divide tables and describes every root move whose
// count differs or that only one side generated. An empty result means the
// tables agree.
func DiffDivide(got, want map[string]uint64) []string {
	keys := maps.Keys(got)
	for k := range want {
		if _, ok := got[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	var diffs []string
	for _, k := range keys {
		g, gok := got[k]
		w, wok := want[k]
		switch {
		case !wok:
			diffs = append(diffs, fmt.Sprintf("%s: extra move (%d nodes)", k, g))
		case !gok:
			diffs = append(diffs, fmt.Sprintf("%s: missing move (%d nodes)", k, w))
		case g != w:
			diffs = append(diffs, fmt.Sprintf("%s: got %d want %d", k, g, w))
		}
	}
	return diffs
}
