package mailbox

import "strings"

var whiteGlyphs = map[byte]string{
	'K': "♔", 'Q': "♕", 'R': "♖", 'B': "♗", 'N': "♘", 'P': "♙",
	'k': "♚", 'q': "♛", 'r': "♜", 'b': "♝", 'n': "♞", 'p': "♟",
}

// Render draws the board as seen from view. White pieces are uppercase (or
// white glyphs when unicode is set) regardless of who is to move.
func (p *Position) Render(view Color, unicode bool) string {
	cells := p.whiteCells()
	files := "a b c d e f g h"
	rows := []int{2, 3, 4, 5, 6, 7, 8, 9}
	cols := []int{1, 2, 3, 4, 5, 6, 7, 8}
	if view == Black {
		files = "h g f e d c b a"
		rows = []int{9, 8, 7, 6, 5, 4, 3, 2}
		cols = []int{8, 7, 6, 5, 4, 3, 2, 1}
	}

	var sb strings.Builder
	sb.WriteString("   " + files + "\n")
	for _, row := range rows {
		sb.WriteByte(byte('0' + 10 - row))
		sb.WriteString("  ")
		for _, col := range cols {
			c := cells[row*10+col]
			if g, ok := whiteGlyphs[c]; ok && unicode {
				sb.WriteString(g)
			} else {
				sb.WriteByte(c)
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   " + files + "\n")
	return sb.String()
}

// String draws the board from the side to move's view.
func (p *Position) String() string {
	return p.Render(p.toMove, false)
}
