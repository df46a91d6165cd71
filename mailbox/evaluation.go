package mailbox

// CastlingBonus is credited to the side that castles.
const CastlingBonus = 110

// Material values. The king's value is deliberately huge; it is scored like
// any other piece.
var pieceValues = [128]int{
	'P': 100,
	'N': 310,
	'B': 370,
	'R': 500,
	'Q': 950,
	'K': 60000,
}

// Piece-square tables, indexed by cell from the mover's side (row 2 is the
// mover's eighth rank).
var (
	pawnTable = [BoardSize]int{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 50, 50, 50, 50, 50, 50, 50, 50, 0,
		0, 10, 10, 20, 30, 30, 20, 10, 10, 0,
		0, 5, 5, 10, 27, 27, 10, 5, 5, 0,
		0, 0, 0, 0, 25, 25, 0, 0, 0, 0,
		0, 5, -5, -10, 0, 0, -10, -5, 5, 0,
		0, 5, 10, 10, -25, -25, 10, 10, 5, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	knightTable = [BoardSize]int{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, -50, -40, -30, -30, -30, -30, -40, -50, 0,
		0, -40, -20, 0, 0, 0, 0, -20, -40, 0,
		0, -30, 0, 10, 15, 15, 10, 0, -30, 0,
		0, -30, 5, 15, 20, 20, 15, 5, -30, 0,
		0, -30, 0, 15, 20, 20, 15, 0, -30, 0,
		0, -30, 5, 10, 15, 15, 10, 5, -30, 0,
		0, -40, -20, 0, 5, 5, 0, -20, -40, 0,
		0, -50, -40, -20, -30, -30, -20, -40, -50, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	bishopTable = [BoardSize]int{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, -20, -10, -10, -10, -10, -10, -10, -20, 0,
		0, -10, 0, 0, 0, 0, 0, 0, -10, 0,
		0, -10, 0, 5, 10, 10, 5, 0, -10, 0,
		0, -10, 5, 5, 10, 10, 5, 5, -10, 0,
		0, -10, 0, 10, 10, 10, 10, 0, -10, 0,
		0, -10, 10, 10, 10, 10, 10, 10, -10, 0,
		0, -10, 5, 0, 0, 0, 0, 5, -10, 0,
		0, -20, -10, -40, -10, -10, -40, -10, -20, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	rookTable = [BoardSize]int{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 5, 10, 10, 10, 10, 10, 10, 5, 0,
		0, -5, 0, 0, 0, 0, 0, 0, -5, 0,
		0, -5, 0, 0, 0, 0, 0, 0, -5, 0,
		0, -5, 0, 0, 0, 0, 0, 0, -5, 0,
		0, -5, 0, 0, 0, 0, 0, 0, -5, 0,
		0, -5, 0, 0, 0, 0, 0, 0, -5, 0,
		0, 0, 0, 0, 5, 5, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	queenTable = [BoardSize]int{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, -20, -10, -10, -5, -5, -10, -10, -20, 0,
		0, -10, 0, 0, 0, 0, 0, 0, -10, 0,
		0, -10, 0, 5, 5, 5, 5, 0, -10, 0,
		0, -5, 0, 5, 5, 5, 5, 0, -5, 0,
		0, 0, 0, 5, 5, 5, 5, 0, -5, 0,
		0, -10, 5, 5, 5, 5, 5, 0, -10, 0,
		0, -10, 0, 5, 0, 0, 0, 0, -10, 0,
		0, -20, -10, -10, -5, -5, -10, -10, -20, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	kingTable = [BoardSize]int{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, -30, -40, -40, -50, -50, -40, -40, -30, 0,
		0, -30, -40, -40, -50, -50, -40, -40, -30, 0,
		0, -30, -40, -40, -50, -50, -40, -40, -30, 0,
		0, -30, -40, -40, -50, -50, -40, -40, -30, 0,
		0, -20, -30, -30, -40, -40, -30, -30, -20, 0,
		0, -10, -20, -20, -20, -20, -20, -20, -10, 0,
		0, 20, 20, 0, 0, 0, 0, 20, 20, 0,
		0, 20, 30, 10, 0, 0, 10, 30, 20, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

var pieceSquareTables = [128]*[BoardSize]int{
	'P': &pawnTable,
	'N': &knightTable,
	'B': &bishopTable,
	'R': &rookTable,
	'Q': &queenTable,
	'K': &kingTable,
}

// PieceValue returns the material value of a piece letter of either case.
func PieceValue(piece byte) int {
	return pieceValues[upper(piece)]
}

// squareValue is the positional value of piece on cell i in the owner's own
// frame. Callers mirror the index for opponent pieces.
func squareValue(piece byte, i int) int {
	table := pieceSquareTables[upper(piece)]
	if table == nil {
		return 0
	}
	return table[i]
}

// mirror maps a cell to the same square as seen by the opponent.
func mirror(i int) int { return BoardSize - 1 - i }

// Evaluate computes the material and positional balance of the board from
// scratch, from the side to move's perspective. It ignores history terms such
// as the castling bonus.
func Evaluate(p *Position) int {
	score := 0
	for i, c := range p.cells {
		switch {
		case isFriendly(c):
			score += PieceValue(c) + squareValue(c, i)
		case isEnemy(c):
			score -= PieceValue(c) + squareValue(c, mirror(i))
		}
	}
	return score
}

// evaluateMove updates the score for moving the piece on from to to,
// including any capture on to.
func (p *Position) evaluateMove(from, to int) {
	piece := p.cells[from]
	victim := p.cells[to]

	delta := squareValue(piece, to) - squareValue(piece, from)
	if isEnemy(victim) {
		delta += PieceValue(victim) + squareValue(victim, mirror(to))
	}
	p.score += delta
}

func (p *Position) evaluateEnPassant(from, to int) {
	p.evaluateMove(from, to)

	victim := p.cells[to+south]
	p.score += PieceValue(victim) + squareValue(victim, mirror(to+south))
}

// evaluatePromotion swaps the pawn's contribution on sq for the new piece's.
func (p *Position) evaluatePromotion(sq int, piece byte) {
	pawn := p.cells[sq]
	p.score += PieceValue(piece) + squareValue(piece, sq) -
		PieceValue(pawn) - squareValue(pawn, sq)
}

func (p *Position) addCastlingBonus() {
	p.score += CastlingBonus
}
