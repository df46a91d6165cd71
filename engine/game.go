package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"mailbox-chess/mailbox"
)

// ErrIllegalMove is wrapped when a notated move matches no legal move.
var ErrIllegalMove = errors.New("illegal move")

// Game tracks the current position of a game, its legal moves and the search
// settings used to answer it.
type Game struct {
	// ID identifies the game session; it changes on every Reset.
	ID string

	opts     Options
	position mailbox.Position
	legal    []mailbox.Position
	searcher Searcher
}

// NewGame starts a game from the initial position.
func NewGame(opts Options) *Game {
	g := &Game{opts: opts}
	g.Reset()
	return g
}

// Reset begins a new game session from the initial position.
func (g *Game) Reset() {
	g.ID = uuid.NewString()
	g.SetStartPosition()
}

// Options returns the search settings.
func (g *Game) Options() Options { return g.opts }

// SetOptions replaces the search settings.
func (g *Game) SetOptions(opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	g.opts = opts
	return nil
}

// SetStartPosition puts the board back to the initial position.
func (g *Game) SetStartPosition() {
	g.SetPosition(mailbox.StartPosition())
}

// SetFEN replaces the position. On error the game is left unchanged.
func (g *Game) SetFEN(fen string) error {
	p, err := mailbox.ParseFEN(fen)
	if err != nil {
		return err
	}
	g.SetPosition(*p)
	return nil
}

// SetPosition replaces the current position with p.
func (g *Game) SetPosition(p mailbox.Position) {
	g.position = p
	g.legal = p.LegalMoves()
}

// Position returns a copy of the current position.
func (g *Game) Position() mailbox.Position { return g.position }

// LegalMoves lists the notation of every legal move, in generation order.
func (g *Game) LegalMoves() []string {
	moves := make([]string, len(g.legal))
	for i := range g.legal {
		moves[i] = g.legal[i].LastMove()
	}
	return moves
}

// Play applies a move given in coordinate notation, e.g. "e2e4" or "e7e8q".
func (g *Game) Play(move string) error {
	if len(move) != 4 && len(move) != 5 {
		return fmt.Errorf("%w: move %q must have 4 or 5 characters", mailbox.ErrFormat, move)
	}
	move = strings.ToLower(move)
	for i := range g.legal {
		if g.legal[i].LastMove() == move {
			g.SetPosition(g.legal[i])
			return nil
		}
	}
	return fmt.Errorf("%w: %s in %s", ErrIllegalMove, move, g.position.ToFEN())
}

// PlayMoves applies moves in order. It stops at the first bad move and
// returns its error; the moves before it stay applied.
func (g *Game) PlayMoves(moves []string) error {
	for _, m := range moves {
		if err := g.Play(m); err != nil {
			return err
		}
	}
	return nil
}

// BestMove searches the current position. A depth of zero or less uses the
// configured depth.
func (g *Game) BestMove(depth int) Result {
	if depth <= 0 {
		depth = g.opts.Depth
	}
	depth = Clamp(depth, 1, MaxDepth)
	g.searcher.Algorithm = g.opts.Algorithm
	return g.searcher.Search(&g.position, depth)
}
