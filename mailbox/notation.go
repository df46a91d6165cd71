package mailbox

import "fmt"

// whiteSquareName names cell i of a board seen from White.
func whiteSquareName(i int) (string, bool) {
	if !onBoard(i) {
		return "", false
	}
	file := byte('a' + i%10 - 1)
	rank := byte('0' + 10 - i/10)
	return string([]byte{file, rank}), true
}

// whiteIndex is the inverse of whiteSquareName.
func whiteIndex(name string) (int, error) {
	if len(name) != 2 {
		return 0, fmt.Errorf("%w: square %q must have two characters", ErrFormat, name)
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, fmt.Errorf("%w: square %q is off the board", ErrFormat, name)
	}
	return int(10-(rank-'0'))*10 + int(file-'a') + 1, nil
}

// SquareName converts a cell index to algebraic notation. The board is stored
// from the mover's side, so the same index names different squares for White
// and for Black.
func (p *Position) SquareName(i int) string {
	if p.toMove == Black {
		i = BoardSize - 1 - i
	}
	name, ok := whiteSquareName(i)
	if !ok {
		panic(fmt.Sprintf("mailbox: cell %d is not a playing square", i))
	}
	return name
}

// IndexOf converts algebraic notation ("e4") to a cell index for the side to
// move.
func (p *Position) IndexOf(name string) (int, error) {
	i, err := whiteIndex(name)
	if err != nil {
		return 0, err
	}
	if p.toMove == Black {
		i = BoardSize - 1 - i
	}
	return i, nil
}

// Notate records from-to as the last move, e.g. "e2e4".
func (p *Position) Notate(from, to int) {
	p.lastMove = p.SquareName(from) + p.SquareName(to)
}
