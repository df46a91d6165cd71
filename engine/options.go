package engine

import (
	"fmt"
	"strings"
)

// Algorithm selects the tree search used to pick a move.
type Algorithm uint8

const (
	AlphaBeta Algorithm = iota
	Negamax
)

func (a Algorithm) String() string {
	switch a {
	case AlphaBeta:
		return "alphabeta"
	case Negamax:
		return "negamax"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm accepts the names printed by Algorithm.String, in any case.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "alphabeta", "ab":
		return AlphaBeta, nil
	case "negamax", "nm":
		return Negamax, nil
	}
	return 0, fmt.Errorf("unknown search algorithm %q (want alphabeta or negamax)", name)
}

// MaxDepth bounds the depth accepted from callers. Searches are exhaustive,
// so anything near it would not finish anyway.
const MaxDepth = 32

// Options configures a Game's searches.
type Options struct {
	Depth     int
	Algorithm Algorithm
}

// DefaultOptions searches four plies with alpha-beta pruning.
func DefaultOptions() Options {
	return Options{Depth: 4, Algorithm: AlphaBeta}
}

// Validate reports options that cannot drive a search.
func (o Options) Validate() error {
	if o.Depth < 1 || o.Depth > MaxDepth {
		return fmt.Errorf("search depth %d out of range [1,%d]", o.Depth, MaxDepth)
	}
	if o.Algorithm != AlphaBeta && o.Algorithm != Negamax {
		return fmt.Errorf("unknown search algorithm %v", o.Algorithm)
	}
	return nil
}
