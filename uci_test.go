package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"mailbox-chess/engine"
)

func runUCI(t *testing.T, script string) []string {
	t.Helper()
	var out bytes.Buffer
	logger := log.New(io.Discard, "", 0)
	if err := uciLoop(strings.NewReader(script), &out, logger, engine.Options{Depth: 2, Algorithm: engine.AlphaBeta}); err != nil {
		t.Fatalf("uciLoop failed: %v", err)
	}
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func contains(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}

func TestUCIHandshake(t *testing.T) {
	lines := runUCI(t, "uci\nisready\nquit\ngo\n")
	want := []string{"id name " + engineName, "id author " + engineAuthor, "uciok", "readyok"}
	if len(lines) != len(want) {
		t.Fatalf("got %q want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q want %q", i, lines[i], want[i])
		}
	}
}

func TestUCIGoFindsMate(t *testing.T) {
	lines := runUCI(t, "position fen 7k/6pp/6Q1/8/8/2B5/8/6K1 w - - 0 1\ngo depth 2\n")
	if len(lines) != 2 {
		t.Fatalf("got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "info depth 2 score mate 1 ") {
		t.Fatalf("info line: got %q", lines[0])
	}
	if lines[1] != "bestmove g6g7" && lines[1] != "bestmove g6e8" {
		t.Fatalf("bestmove: got %q", lines[1])
	}
}

func TestUCIPositionWithMoves(t *testing.T) {
	lines := runUCI(t, "position startpos moves e2e4 e7e5 g1f3\nd\n")
	if !contains(lines, "Fen: rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 1") {
		t.Fatalf("position not applied: %q", lines)
	}
}

func TestUCIBadInputKeepsPosition(t *testing.T) {
	script := strings.Join([]string{
		"position startpos moves e2e4",
		"position startpos moves d2d4 e2e5",
		"position fen rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"position sideways",
		"go depth x",
		"go fast",
		"perft",
		"frobnicate",
		"d",
	}, "\n")
	lines := runUCI(t, script)

	infos := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "info string ") {
			infos++
		}
	}
	if infos != 7 {
		t.Fatalf("info string lines: got %d want 7 in %q", infos, lines)
	}
	if !contains(lines, "info string Unknown command frobnicate") {
		t.Fatalf("unknown command not reported: %q", lines)
	}
	if !contains(lines, "Fen: rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1") {
		t.Fatalf("position after bad input: %q", lines)
	}
}

func TestUCIGameOver(t *testing.T) {
	lines := runUCI(t, strings.Join([]string{
		"position fen rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"go",
		"position fen 7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"go",
	}, "\n"))
	want := []string{"info string Black Won!", "bestmove 0000", "info string Draw", "bestmove 0000"}
	if len(lines) != len(want) {
		t.Fatalf("got %q want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q want %q", i, lines[i], want[i])
		}
	}
}

func TestUCIPerft(t *testing.T) {
	lines := runUCI(t, "ucinewgame\nperft 2\n")
	if len(lines) != 22 {
		t.Fatalf("perft lines: got %d want 22", len(lines))
	}
	if lines[0] != "a2a3: 20" {
		t.Fatalf("first divide line: got %q", lines[0])
	}
	if lines[len(lines)-1] != "Total: 400" {
		t.Fatalf("total: got %q", lines[len(lines)-1])
	}
}

func BenchmarkSearch(b *testing.B) {
	g := engine.NewGame(engine.DefaultOptions())
	for i := 0; i < b.N; i++ {
		g.BestMove(0)
	}
}
