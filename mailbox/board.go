package mailbox

import "fmt"

// Cell contents. Pieces are stored as letters: uppercase belongs to the side
// to move, lowercase to the opponent.
const (
	Empty    byte = '.'
	Offboard byte = ' '
)

// BoardSize is the number of cells in the 10x12 grid, border included.
const BoardSize = 120

// Step vectors. North is always the forward direction of the side to move.
const (
	north = -10
	east  = 1
	south = 10
	west  = -1
)

// Corner and edge cells, as seen by the side to move.
const (
	A1 = 91
	H1 = 98
	A8 = 21
	H8 = 28
)

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// CastlingSide names a rook corner relative to the side to move: Left is the
// rook that starts on the mover's A1 cell, Right the one on H1. For White
// Left is the queenside, for Black (whose board is rotated) it is the kingside.
type CastlingSide uint8

const (
	Left  CastlingSide = 0
	Right CastlingSide = 1
)

// MoveKind classifies the move that produced a position.
type MoveKind uint8

const (
	NoMove MoveKind = iota
	Quiet
	Capture
	EnPassant
	Promotion
	Castle
)

func (k MoveKind) String() string {
	switch k {
	case Quiet:
		return "quiet"
	case Capture:
		return "capture"
	case EnPassant:
		return "en passant"
	case Promotion:
		return "promotion"
	case Castle:
		return "castle"
	default:
		return "none"
	}
}

// enPassantLifetime is the number of generated plies a new en-passant target
// survives: the reply that may capture decrements it to one, every later ply
// to zero.
const enPassantLifetime = 2

// Position is one node of the game tree. The cells are always expressed from
// the perspective of the side to move; finishing a move rotates the board
// by 180 degrees and swaps the case of every piece.
type Position struct {
	cells [BoardSize]byte

	toMove Color

	// castling[color][side]; flags only ever go from true to false.
	castling [2][2]bool

	// En passant target, stored in the coordinates of the side that may
	// capture, plus the number of plies it stays visible.
	epSquare   int
	epLifetime int

	// Running evaluation from the perspective of the side to move.
	score int

	lastMove string
	kind     MoveKind
}

// NewPosition returns an empty board: every playing cell is Empty and every
// border cell holds Offboard. White is to move and no castling is available.
func NewPosition() Position {
	var p Position
	for i := range p.cells {
		if onBoard(i) {
			p.cells[i] = Empty
		} else {
			p.cells[i] = Offboard
		}
	}
	return p
}

// StartPosition returns the standard initial position.
func StartPosition() Position {
	p, err := ParseFEN(FENStartPos)
	if err != nil {
		panic(err)
	}
	return *p
}

func onBoard(i int) bool {
	row, col := i/10, i%10
	return row >= 2 && row <= 9 && col >= 1 && col <= 8
}

func isFriendly(c byte) bool { return c >= 'A' && c <= 'Z' }

func isEnemy(c byte) bool { return c >= 'a' && c <= 'z' }

func swapCase(c byte) byte {
	switch {
	case isFriendly(c):
		return c + ('a' - 'A')
	case isEnemy(c):
		return c - ('a' - 'A')
	default:
		return c
	}
}

func upper(c byte) byte {
	if isEnemy(c) {
		return c - ('a' - 'A')
	}
	return c
}

// Square returns the content of cell i. An index outside the board grid is an
// internal error and panics.
func (p *Position) Square(i int) byte {
	if i < 0 || i >= BoardSize {
		panic(fmt.Sprintf("mailbox: cell index %d out of range [0,%d)", i, BoardSize))
	}
	return p.cells[i]
}

// ToMove reports the side to move.
func (p *Position) ToMove() Color { return p.toMove }

// Score is the incrementally maintained evaluation, from the mover's view.
func (p *Position) Score() int { return p.score }

// LastMove is the coordinate notation of the move that led here ("" for a
// root position).
func (p *Position) LastMove() string { return p.lastMove }

// Kind reports what sort of move LastMove was.
func (p *Position) Kind() MoveKind { return p.kind }

// CanCastle reports the mover's castling right for the given corner.
func (p *Position) CanCastle(side CastlingSide) bool {
	return p.castling[p.toMove][side]
}

// ClearCastling removes the mover's castling right for one corner.
func (p *Position) ClearCastling(side CastlingSide) {
	p.castling[p.toMove][side] = false
}

// ClearAllCastling removes both of the mover's castling rights.
func (p *Position) ClearAllCastling() {
	p.castling[p.toMove] = [2]bool{}
}

// clearOpponentCastling drops the opponent's right when its unmoved rook is
// captured. The opponent's A1 rook sits on our H8 cell and vice versa.
func (p *Position) clearOpponentCastling(captured int) {
	them := p.toMove.Other()
	switch captured {
	case BoardSize - 1 - A1:
		p.castling[them][Left] = false
	case BoardSize - 1 - H1:
		p.castling[them][Right] = false
	}
}

// SetEnPassant records a fresh en-passant target, given in the coordinates of
// the side that will be allowed to capture.
func (p *Position) SetEnPassant(target int) {
	if target < 0 || target >= BoardSize {
		panic(fmt.Sprintf("mailbox: en passant target %d out of range", target))
	}
	p.epSquare = target
	p.epLifetime = enPassantLifetime
}

// EnPassantActive reports whether the en-passant target is still alive.
func (p *Position) EnPassantActive() bool { return p.epLifetime > 0 }

// EnPassantTarget returns the target the side to move may capture on, if any.
func (p *Position) EnPassantTarget() (int, bool) {
	if p.epLifetime == enPassantLifetime {
		return p.epSquare, true
	}
	return 0, false
}

// DecayEnPassant counts down the target's lifetime by one ply.
func (p *Position) DecayEnPassant() {
	if p.epLifetime > 0 {
		p.epLifetime--
	}
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() Position { return *p }

// Rotated returns a copy seen from the other side: cells reversed, piece case
// swapped, score negated.
func (p *Position) Rotated() Position {
	r := *p
	for i, c := range p.cells {
		r.cells[BoardSize-1-i] = swapCase(c)
	}
	r.toMove = p.toMove.Other()
	r.score = -p.score
	return r
}

// kingSquare returns the mover's king cell. Every legal position has exactly
// one, so a missing king is an internal error.
func (p *Position) kingSquare() int {
	for i, c := range p.cells {
		if c == 'K' {
			return i
		}
	}
	panic("mailbox: side to move has no king")
}

// MakeMove moves the piece on from to to, capturing whatever stands there.
// The move is assumed to be legal.
func (p *Position) MakeMove(from, to int) {
	p.Notate(from, to)
	p.evaluateMove(from, to)

	p.kind = Quiet
	if isEnemy(p.cells[to]) {
		p.kind = Capture
		p.clearOpponentCastling(to)
	}
	p.cells[to] = p.cells[from]
	p.cells[from] = Empty
}

// MakeEnPassantMove plays a pawn capture onto the en-passant target, removing
// the pawn that stands just south of it.
func (p *Position) MakeEnPassantMove(from, to int) {
	p.Notate(from, to)
	p.evaluateEnPassant(from, to)

	p.cells[to] = p.cells[from]
	p.cells[to+south] = Empty
	p.cells[from] = Empty
	p.kind = EnPassant
}

// Promote replaces the pawn on sq with piece (an uppercase letter) and
// appends the promotion letter to the move notation. Calling it again on the
// same position replaces the earlier suffix.
func (p *Position) Promote(sq int, piece byte) {
	if len(p.lastMove) == 5 {
		p.lastMove = p.lastMove[:4]
	}
	p.evaluatePromotion(sq, piece)
	p.lastMove += string(swapCase(piece))
	p.cells[sq] = piece
	p.kind = Promotion
}

// MakeCastlingMove relocates the king after its rook has already been moved,
// clears both of the mover's rights and credits the castling bonus.
func (p *Position) MakeCastlingMove(kingFrom, kingTo int) {
	p.MakeMove(kingFrom, kingTo)
	p.ClearAllCastling()
	p.addCastlingBonus()
	p.kind = Castle
}
