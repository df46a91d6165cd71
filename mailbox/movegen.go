package mailbox

// directions holds the step vectors of each piece type. Pawns step forward,
// double-step and capture diagonally; knights, kings and pawns take a single
// step per vector while bishops, rooks and queens slide.
var directions [128][]int

// attackers lists the piece types scanned for when testing a square.
var attackers = []byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// promotions lists the pieces a pawn may become, in generation order.
var promotions = []byte{'R', 'N', 'B', 'Q'}

func init() {
	directions['P'] = []int{north, north + north, north + west, north + east}
	directions['N'] = []int{
		north + north + east, east + north + east, east + south + east, south + south + east,
		south + south + west, west + south + west, west + north + west, north + north + west,
	}
	directions['B'] = []int{north + east, south + east, south + west, north + west}
	directions['R'] = []int{north, east, south, west}
	directions['Q'] = []int{north, east, south, west, north + east, south + east, south + west, north + west}
	directions['K'] = directions['Q']
}

func isStepper(piece byte) bool {
	return piece == 'P' || piece == 'N' || piece == 'K'
}

// onSecondRank reports whether cell i is on the mover's second rank.
func onSecondRank(i int) bool { return i >= A1+north && i <= H1+north }

// kingHome is the mover's initial king cell. White's king starts on e1 (95);
// Black's rotated king starts on what the mover sees as d1 (94).
func (p *Position) kingHome() int {
	if p.toMove == White {
		return 95
	}
	return 94
}

// LegalMoves returns every legal successor of the position, each already
// rotated to the perspective of the opponent.
func (p *Position) LegalMoves() []Position {
	moves := make([]Position, 0, 48)

	for from, piece := range p.cells {
		if !isFriendly(piece) {
			continue
		}
		for _, dir := range directions[piece] {
			for to := from + dir; ; to += dir {
				target := p.cells[to]
				if target == Offboard || isFriendly(target) {
					break
				}

				child := *p
				child.DecayEnPassant()
				promote := false

				if piece == 'P' {
					if (dir == north || dir == north+north) && target != Empty {
						break
					}
					if dir == north+north {
						if !onSecondRank(from) || p.cells[from+north] != Empty {
							break
						}
						child.SetEnPassant(mirror(from + north))
					}
					if dir == north+west || dir == north+east {
						if child.EnPassantActive() && to == child.epSquare {
							child.MakeEnPassantMove(from, to)
							if !child.InCheck() {
								moves = append(moves, child.Rotated())
							}
							break
						}
						if target == Empty {
							break
						}
					}
					promote = to >= A8 && to <= H8
				}

				child.MakeMove(from, to)

				if piece == 'K' {
					child.ClearAllCastling()
				}
				if piece == 'R' {
					moves = p.appendCastling(moves, &child, from, to)
				}

				if !child.InCheck() {
					if promote {
						for _, pr := range promotions {
							c := child
							c.Promote(to, pr)
							moves = append(moves, c.Rotated())
						}
					} else {
						moves = append(moves, child.Rotated())
					}
				}

				if isStepper(piece) || isEnemy(target) {
					break
				}
			}
		}
	}
	return moves
}

// appendCastling handles a rook leaving from; moved is the position after the
// plain rook move. Leaving a home corner drops that right, and if the rook
// has just landed next to the unmoved king the castled position is added too.
// The king may not castle out of check, onto an attacked square, or across the
// rook's destination while it is attacked.
func (p *Position) appendCastling(moves []Position, moved *Position, from, to int) []Position {
	var side CastlingSide
	var kingFrom, kingTo int
	switch from {
	case A1:
		side, kingFrom, kingTo = Left, to+east, to+west
	case H1:
		side, kingFrom, kingTo = Right, to+west, to+east
	default:
		return moves
	}
	if !p.CanCastle(side) {
		return moves
	}
	moved.ClearCastling(side)

	if p.cells[to] != Empty || kingFrom != p.kingHome() || p.cells[kingFrom] != 'K' {
		return moves
	}
	if p.InCheck() {
		return moves
	}

	castled := *moved
	castled.MakeCastlingMove(kingFrom, kingTo)
	if castled.InCheck() || moved.Attacked(to) {
		return moves
	}
	return append(moves, castled.Rotated())
}

// InCheck reports whether the mover's king is attacked.
func (p *Position) InCheck() bool {
	return p.Attacked(p.kingSquare())
}

// Attacked reports whether an opponent piece attacks cell sq. It walks every
// piece type's vectors outward from sq and looks for an enemy of that type at
// the matching range.
func (p *Position) Attacked(sq int) bool {
	for _, piece := range attackers {
		enemy := swapCase(piece)
		for _, dir := range directions[piece] {
			// Pawns only attack diagonally.
			if piece == 'P' && (dir == north || dir == north+north) {
				continue
			}
			for to := sq + dir; ; to += dir {
				c := p.cells[to]
				if c == Offboard || isFriendly(c) {
					break
				}
				if c == enemy {
					return true
				}
				if c != Empty || isStepper(piece) {
					break
				}
			}
		}
	}
	return false
}
