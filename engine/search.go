package engine

import (
	"time"

	"mailbox-chess/mailbox"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  = 1<<31 - 1
	MateScore = MaxScore - 10000
	DrawScore = 0
)

// Outcome describes the game state found at the root of a search.
type Outcome uint8

const (
	Ongoing Outcome = iota
	WhiteWon
	BlackWon
	Draw
)

func (o Outcome) String() string {
	switch o {
	case WhiteWon:
		return "White Won!"
	case BlackWon:
		return "Black Won!"
	case Draw:
		return "Draw"
	default:
		return "Ongoing"
	}
}

// Result is what a search settles on. When the root has no legal moves Move is
// empty and Outcome says how the game ended.
type Result struct {
	Move     string
	Position mailbox.Position
	Score    int
	Outcome  Outcome
	Nodes    uint64
	Elapsed  time.Duration
}

// IsMate reports whether score is a forced mate for either side.
func IsMate(score int) bool {
	return score >= MateScore || score <= -MateScore
}

// MateIn converts a mate score found by a search of the given depth into moves
// to mate: positive when the side to move mates, negative when it is mated.
func MateIn(score, depth int) int {
	if score >= MateScore {
		plies := depth - (score - MateScore)
		return (plies + 1) / 2
	}
	plies := depth - (-score - MateScore)
	return -plies / 2
}

// Searcher runs fixed-depth searches. The zero value uses alpha-beta.
type Searcher struct {
	Algorithm Algorithm

	nodes uint64
}

// NewSearcher returns a searcher for the given algorithm.
func NewSearcher(algo Algorithm) *Searcher {
	return &Searcher{Algorithm: algo}
}

// Nodes is the number of positions visited by the last search.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// Search looks depth plies ahead of p and returns the best successor. Depths
// below one are treated as one so that a move is always chosen.
func (s *Searcher) Search(p *mailbox.Position, depth int) Result {
	start := time.Now()
	s.nodes = 1
	depth = Max(depth, 1)

	moves := p.LegalMoves()
	if len(moves) == 0 {
		res := Result{Score: terminalScore(p, depth), Outcome: Draw}
		if p.InCheck() {
			res.Outcome = WhiteWon
			if p.ToMove() == mailbox.White {
				res.Outcome = BlackWon
			}
		}
		res.Nodes, res.Elapsed = s.nodes, time.Since(start)
		return res
	}

	best, bestIdx := -MaxScore, 0
	alpha, beta := -MaxScore, MaxScore
	for i := range moves {
		var score int
		switch s.Algorithm {
		case Negamax:
			score = -s.negamax(&moves[i], depth-1)
		default:
			score = -s.alphaBeta(&moves[i], depth-1, -beta, -alpha)
		}
		// Strictly greater keeps the first of equal moves, so both algorithms
		// agree on the choice.
		if score > best {
			best, bestIdx = score, i
		}
		alpha = Max(alpha, score)
	}

	return Result{
		Move:     moves[bestIdx].LastMove(),
		Position: moves[bestIdx],
		Score:    best,
		Outcome:  Ongoing,
		Nodes:    s.nodes,
		Elapsed:  time.Since(start),
	}
}

// terminalScore scores a node without legal moves. Being mated with more
// depth left means the mate came sooner, so it scores lower.
func terminalScore(p *mailbox.Position, depth int) int {
	if p.InCheck() {
		return -MateScore - depth
	}
	return DrawScore
}

// =============================================================================
// NEGAMAX
// =============================================================================

func (s *Searcher) negamax(p *mailbox.Position, depth int) int {
	s.nodes++
	if depth == 0 {
		return p.Score()
	}
	moves := p.LegalMoves()
	if len(moves) == 0 {
		return terminalScore(p, depth)
	}
	best := -MaxScore
	for i := range moves {
		best = Max(best, -s.negamax(&moves[i], depth-1))
	}
	return best
}

// =============================================================================
// ALPHA-BETA
// =============================================================================

// alphaBeta is fail-soft negamax with an (alpha, beta) window. Every call
// scores the node for its own side to move.
func (s *Searcher) alphaBeta(p *mailbox.Position, depth, alpha, beta int) int {
	s.nodes++
	if depth == 0 {
		return p.Score()
	}
	moves := p.LegalMoves()
	if len(moves) == 0 {
		return terminalScore(p, depth)
	}
	best := -MaxScore
	for i := range moves {
		score := -s.alphaBeta(&moves[i], depth-1, -beta, -alpha)
		if score > best {
			best = score
		}
		alpha = Max(alpha, score)
		if alpha >= beta {
			break
		}
	}
	return best
}
