package mailbox

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat is wrapped by every error caused by malformed position or move
// text.
var ErrFormat = errors.New("malformed notation")

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Standard perft positions from the Chess Programming Wiki.
const (
	FENKiwipete  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	FENPosition3 = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	FENPosition4 = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	FENPosition5 = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	FENPosition6 = "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
)

func formatError(msg string, args ...any) error {
	return fmt.Errorf("%w: invalid FEN: %s", ErrFormat, fmt.Sprintf(msg, args...))
}

func isPieceLetter(c byte) bool {
	return strings.IndexByte("PNBRQKpnbrqk", c) >= 0
}

// ParseFEN builds a position from a FEN string. Piece placement, active
// color, castling availability and the en-passant target are used; move
// counters are validated when present but otherwise ignored.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, formatError("need at least 4 fields, got %d", len(fields))
	}

	p := NewPosition()

	// 1. Piece placement, laid out from White's side.
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, formatError("expected 8 ranks, got %d", len(ranks))
	}
	var kings [2]int
	for r, rank := range ranks {
		row := 2 + r
		col := 1
		for i := 0; i < len(rank); i++ {
			ch := rank[i]
			switch {
			case ch >= '1' && ch <= '8':
				col += int(ch - '0')
			case isPieceLetter(ch):
				if col > 8 {
					return nil, formatError("rank %d has too many squares", 8-r)
				}
				p.cells[row*10+col] = ch
				switch ch {
				case 'K':
					kings[White]++
				case 'k':
					kings[Black]++
				}
				col++
			default:
				return nil, formatError("unexpected character %q in placement", ch)
			}
		}
		if col != 9 {
			return nil, formatError("rank %d does not have 8 squares", 8-r)
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return nil, formatError("each side needs exactly one king")
	}

	// 2. Active color.
	switch fields[1] {
	case "w":
		p.toMove = White
	case "b":
		p.toMove = Black
	default:
		return nil, formatError("active color must be 'w' or 'b', got %q", fields[1])
	}

	// 3. Castling availability. White's Left corner is a1, Black's is h8.
	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.castling[White][Right] = true
			case 'Q':
				p.castling[White][Left] = true
			case 'k':
				p.castling[Black][Left] = true
			case 'q':
				p.castling[Black][Right] = true
			default:
				return nil, formatError("invalid castling character %q", fields[2][i])
			}
		}
	}

	// 4. En passant target, converted to the mover's coordinates below.
	ep := -1
	if fields[3] != "-" {
		i, err := whiteIndex(fields[3])
		if err != nil {
			return nil, formatError("en passant square %q", fields[3])
		}
		ep = i
	}

	// 5, 6. Half-move clock and full-move number.
	for _, f := range fields[4:min(len(fields), 6)] {
		if _, err := strconv.Atoi(f); err != nil {
			return nil, formatError("move counter %q is not a number", f)
		}
	}

	if p.toMove == Black {
		// Rotated flips the mover too, so rotate from White's view.
		p.toMove = White
		p = p.Rotated()
		if ep >= 0 {
			ep = BoardSize - 1 - ep
		}
	}
	if ep >= 0 {
		p.SetEnPassant(ep)
	}
	p.score = Evaluate(&p)
	return &p, nil
}

// MustParseFEN is ParseFEN for positions known to be valid.
func MustParseFEN(fen string) Position {
	p, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return *p
}

// whiteCells returns the board laid out from White's side, White uppercase.
func (p *Position) whiteCells() [BoardSize]byte {
	if p.toMove == White {
		return p.cells
	}
	return p.Rotated().cells
}

// ToFEN produces the FEN string of the position. Move counters are not
// tracked and are always written as "0 1".
func (p *Position) ToFEN() string {
	var sb strings.Builder
	cells := p.whiteCells()

	// 1. Piece placement
	for row := 2; row <= 9; row++ {
		empty := 0
		for col := 1; col <= 8; col++ {
			c := cells[row*10+col]
			if c == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(c)
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if row < 9 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if p.toMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	rights := ""
	if p.castling[White][Right] {
		rights += "K"
	}
	if p.castling[White][Left] {
		rights += "Q"
	}
	if p.castling[Black][Left] {
		rights += "k"
	}
	if p.castling[Black][Right] {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)
	sb.WriteByte(' ')

	// 4. En passant square
	if ep, ok := p.EnPassantTarget(); ok {
		sb.WriteString(p.SquareName(ep))
	} else {
		sb.WriteByte('-')
	}

	sb.WriteString(" 0 1")
	return sb.String()
}
