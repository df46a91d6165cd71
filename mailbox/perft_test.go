package mailbox_test

import (
	"bytes"
	"strings"
	"testing"

	"mailbox-chess/mailbox"
)

type perftCase struct {
	name  string
	fen   string
	nodes []uint64 // nodes[d-1] is the count at depth d
	short int      // deepest depth run under -short
}

var perftCases = []perftCase{
	{"Initial", mailbox.FENStartPos, []uint64{20, 400, 8902, 197281, 4865609}, 4},
	{"Kiwipete", mailbox.FENKiwipete, []uint64{48, 2039, 97862, 4085603}, 3},
	{"Position3", mailbox.FENPosition3, []uint64{14, 191, 2812, 43238, 674624}, 4},
	{"Position4", mailbox.FENPosition4, []uint64{6, 264, 9467, 422333}, 3},
	{"Position5", mailbox.FENPosition5, []uint64{44, 1486, 62379, 2103487}, 3},
	{"Position6", mailbox.FENPosition6, []uint64{46, 2079, 89890, 3894594}, 3},
	{"EnPassant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", []uint64{5, 19}, 2},
	{"Promotion", "1n5k/P7/8/8/8/8/8/7K w - - 0 1", []uint64{11}, 1},
}

func TestPerft(t *testing.T) {
	for _, tc := range perftCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := mailbox.ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN failed: %v", err)
			}
			if got := mailbox.Perft(p, 0); got != 1 {
				t.Fatalf("%s depth0: got %d want 1", tc.name, got)
			}
			for d, want := range tc.nodes {
				depth := d + 1
				if testing.Short() && depth > tc.short {
					t.Skipf("skipping depth %d perft in short mode", depth)
				}
				if got := mailbox.Perft(p, depth); got != want {
					t.Fatalf("%s depth%d: got %d want %d", tc.name, depth, got, want)
				}
			}
		})
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	p := mailbox.MustParseFEN(mailbox.FENKiwipete)
	div := mailbox.PerftDivide(&p, 2)
	if len(div) != 48 {
		t.Fatalf("divide root moves: got %d want %d", len(div), 48)
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 2039 {
		t.Fatalf("divide sum: got %d want %d", sum, 2039)
	}
	if div["e1g1"] == 0 || div["e1c1"] == 0 {
		t.Fatalf("expected both castling moves in divide, got %v", div)
	}
}

func TestPerftNotated(t *testing.T) {
	p := mailbox.StartPosition()
	var buf bytes.Buffer
	if got := mailbox.PerftNotated(&buf, &p, 2); got != 400 {
		t.Fatalf("notated perft: got %d want %d", got, 400)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 20 {
		t.Fatalf("notated lines: got %d want %d", len(lines), 20)
	}
	if !strings.Contains(buf.String(), "e2e4: 20\n") {
		t.Fatalf("expected e2e4: 20 in output:\n%s", buf.String())
	}
}
