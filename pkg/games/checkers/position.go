// Package checkers implements the checkers position model: legal-move
// generation with forced capture, king promotion, and the static evaluator
// of spec §4.3.
//
// Squares are numbered 1..32 in standard checkers notation. Player one
// plays the pieces marked 'b'/'B' (black, moving toward higher square
// numbers); player two plays 'w'/'W' (white, moving toward lower square
// numbers).
package checkers

import (
	"fmt"

	"github.com/yourusername/stratengine/pkg/games"
)

// Piece occupies a square, or is empty.
type Piece uint8

const (
	Empty Piece = iota
	BlackMan
	BlackKing
	WhiteMan
	WhiteKing
)

// owner returns the player that owns a non-empty piece.
func (p Piece) owner() games.Player {
	if p == BlackMan || p == BlackKing {
		return games.PlayerOne
	}
	return games.PlayerTwo
}

func (p Piece) isKing() bool { return p == BlackKing || p == WhiteKing }

// centerSquares are the four middle dark squares used by the evaluator.
var centerSquares = map[int]bool{14: true, 15: true, 18: true, 19: true}

// Position is a full checkers board.
type Position struct {
	squares [33]Piece // 1-indexed; squares[0] unused
	side    games.Player
}

// New returns the standard starting position.
func New() *Position {
	p := &Position{side: games.PlayerOne}
	for i := 1; i <= 12; i++ {
		p.squares[i] = BlackMan
	}
	for i := 21; i <= 32; i++ {
		p.squares[i] = WhiteMan
	}
	return p
}

func (p *Position) SideToMove() games.Player { return p.side }

func (p *Position) Clone() games.Position {
	cp := *p
	return &cp
}

// squareToRC converts a 1..32 square number to board row/column (0..7).
func squareToRC(s int) (int, int) {
	idx := s - 1
	row := idx / 4
	pos := idx % 4
	var col int
	if row%2 == 0 {
		col = pos*2 + 1
	} else {
		col = pos * 2
	}
	return row, col
}

// rcToSquare converts a row/column back to a square number, ok is false
// off-board or on a light square.
func rcToSquare(row, col int) (int, bool) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return 0, false
	}
	if (row+col)%2 == 0 {
		return 0, false
	}
	var pos int
	if row%2 == 0 {
		pos = (col - 1) / 2
	} else {
		pos = col / 2
	}
	return row*4 + pos + 1, true
}

// direction vectors: (rowDelta, colDelta)
type dir struct{ dr, dc int }

var (
	dirNW = dir{-1, -1}
	dirNE = dir{-1, 1}
	dirSW = dir{1, -1}
	dirSE = dir{1, 1}
)

// forwardDirs returns the directions a man of the given piece may move (or
// capture) in; kings use all four.
func forwardDirs(pc Piece) []dir {
	switch pc {
	case BlackMan:
		return []dir{dirSW, dirSE} // black advances toward higher squares (higher rows)
	case WhiteMan:
		return []dir{dirNW, dirNE}
	default:
		return []dir{dirNW, dirNE, dirSW, dirSE}
	}
}

func (p *Position) at(sq int) Piece { return p.squares[sq] }

// neighbor returns the square one step from sq in direction d.
func neighbor(sq int, d dir) (int, bool) {
	r, c := squareToRC(sq)
	return rcToSquare(r+d.dr, c+d.dc)
}

func lastRank(side games.Player, sq int) bool {
	r, _ := squareToRC(sq)
	if side == games.PlayerOne {
		return r == 7
	}
	return r == 0
}

func (p *Position) String() string {
	return fmt.Sprintf("checkers position, side=%v", p.side)
}
