package mailbox

import (
	"fmt"
	"io"
)

// Perft counts leaf nodes (move sequences) from the position for a given depth.
func Perft(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for i := range moves {
		nodes += Perft(&moves[i], depth-1)
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf nodes
// reachable from that move at the given depth. Useful for debugging.
func PerftDivide(p *Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range p.LegalMoves() {
		result[m.LastMove()] = Perft(&m, depth-1)
	}
	return result
}

// PerftNotated is Perft that also writes "move: nodes" for every root move, in
// generation order, to w.
func PerftNotated(w io.Writer, p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	var nodes uint64
	for _, m := range p.LegalMoves() {
		n := Perft(&m, depth-1)
		fmt.Fprintf(w, "%s: %d\n", m.LastMove(), n)
		nodes += n
	}
	return nodes
}
