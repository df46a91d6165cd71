package engine

import (
	"errors"
	"testing"

	"mailbox-chess/mailbox"
)

func TestGamePlay(t *testing.T) {
	g := NewGame(DefaultOptions())
	if n := len(g.LegalMoves()); n != 20 {
		t.Fatalf("start legal moves: got %d want 20", n)
	}
	if err := g.PlayMoves([]string{"e2e4", "E7E5", "g1f3"}); err != nil {
		t.Fatalf("PlayMoves failed: %v", err)
	}
	pos := g.Position()
	if got, want := pos.ToFEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 1"; got != want {
		t.Fatalf("position: got %q want %q", got, want)
	}

	if err := g.Play("e2"); !errors.Is(err, mailbox.ErrFormat) {
		t.Fatalf("short move: got %v want ErrFormat", err)
	}
	if err := g.Play("e7e5q2"); !errors.Is(err, mailbox.ErrFormat) {
		t.Fatalf("long move: got %v want ErrFormat", err)
	}
	if err := g.Play("e2e4"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("illegal move: got %v want ErrIllegalMove", err)
	}
	after := g.Position()
	if after.ToFEN() != pos.ToFEN() {
		t.Fatalf("rejected move changed the position")
	}
}

func TestGamePromotionAndCastlingNotation(t *testing.T) {
	g := NewGame(DefaultOptions())
	if err := g.SetFEN("r3k3/1P6/8/8/8/8/8/R3K2R w KQq - 0 1"); err != nil {
		t.Fatalf("SetFEN failed: %v", err)
	}
	if err := g.Play("b7a8q"); err != nil {
		t.Fatalf("promotion capture rejected: %v", err)
	}
	if err := g.Play("e8d7"); err != nil {
		t.Fatalf("king move rejected: %v", err)
	}
	if err := g.Play("e1g1"); err != nil {
		t.Fatalf("castling rejected: %v", err)
	}
	pos := g.Position()
	if got, want := pos.ToFEN(), "Q7/3k4/8/8/8/8/8/R4RK1 b - - 0 1"; got != want {
		t.Fatalf("position: got %q want %q", got, want)
	}
}

func TestGameSetFENKeepsPositionOnError(t *testing.T) {
	g := NewGame(DefaultOptions())
	if err := g.SetFEN("not a fen"); !errors.Is(err, mailbox.ErrFormat) {
		t.Fatalf("bad FEN: got %v want ErrFormat", err)
	}
	pos := g.Position()
	if pos.ToFEN() != mailbox.FENStartPos {
		t.Fatalf("position changed after a bad FEN: %s", pos.ToFEN())
	}
}

func TestGameReset(t *testing.T) {
	g := NewGame(DefaultOptions())
	first := g.ID
	if first == "" {
		t.Fatalf("game has no ID")
	}
	if err := g.Play("d2d4"); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	g.Reset()
	if g.ID == first {
		t.Fatalf("Reset kept the game ID %s", first)
	}
	pos := g.Position()
	if pos.ToFEN() != mailbox.FENStartPos {
		t.Fatalf("Reset left %s", pos.ToFEN())
	}
}

func TestGameBestMove(t *testing.T) {
	g := NewGame(Options{Depth: 2, Algorithm: Negamax})
	if err := g.SetFEN("4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1"); err != nil {
		t.Fatalf("SetFEN failed: %v", err)
	}
	res := g.BestMove(0)
	if res.Move != "e4d5" {
		t.Fatalf("best move: got %s want e4d5", res.Move)
	}
	// The search must not move the game along.
	pos := g.Position()
	if pos.ToFEN() != "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1" {
		t.Fatalf("BestMove changed the position to %s", pos.ToFEN())
	}

	if err := g.SetFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"); err != nil {
		t.Fatalf("SetFEN failed: %v", err)
	}
	if res := g.BestMove(1); res.Outcome != BlackWon || res.Move != "" {
		t.Fatalf("mated root: got %q %v", res.Move, res.Outcome)
	}
}

func TestGameOptions(t *testing.T) {
	g := NewGame(DefaultOptions())
	if err := g.SetOptions(Options{Depth: 0}); err == nil {
		t.Fatalf("depth 0 accepted")
	}
	if err := g.SetOptions(Options{Depth: MaxDepth + 1}); err == nil {
		t.Fatalf("depth %d accepted", MaxDepth+1)
	}
	if err := g.SetOptions(Options{Depth: 3, Algorithm: Negamax}); err != nil {
		t.Fatalf("SetOptions failed: %v", err)
	}
	if got := g.Options(); got.Depth != 3 || got.Algorithm != Negamax {
		t.Fatalf("options: got %+v", got)
	}

	for _, name := range []string{"alphabeta", "AB", "negamax", "NegaMax"} {
		if _, err := ParseAlgorithm(name); err != nil {
			t.Fatalf("ParseAlgorithm(%q) failed: %v", name, err)
		}
	}
	if _, err := ParseAlgorithm("mcts"); err == nil {
		t.Fatalf("ParseAlgorithm(mcts) succeeded")
	}
}

func TestGenericHelpers(t *testing.T) {
	if Max(3, 7) != 7 || Min(3, 7) != 3 {
		t.Fatalf("Max/Min on ints")
	}
	if Max("a", "b") != "b" {
		t.Fatalf("Max on strings")
	}
	if Clamp(40, 1, MaxDepth) != MaxDepth || Clamp(-1, 1, MaxDepth) != 1 || Clamp(5, 1, MaxDepth) != 5 {
		t.Fatalf("Clamp")
	}
}
