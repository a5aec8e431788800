// Package xiangqi implements a 9x10 xiangqi (Chinese chess) position: palace
// confinement for king and advisor, river crossing for elephant and soldier,
// the cannon's screen-capture, the flying-generals rule, and the
// material+mobility static evaluator of spec §4.3.
//
// Squares are indexed 0..89, rank-major: sq = rank*9 + file, file 0..8,
// rank 0..9. Player one (Red) starts on ranks 0-4 and advances toward rank
// 9; player two (Black) starts on ranks 5-9 and advances toward rank 0.
package xiangqi

import "github.com/yourusername/stratengine/pkg/games"

// Kind identifies a piece type, independent of color.
type Kind uint8

const (
	NoKind Kind = iota
	King
	Advisor
	Elephant
	Horse
	Chariot
	Cannon
	Soldier
)

// Cell is one board square; an empty cell has Kind == NoKind.
type Cell struct {
	Kind  Kind
	Owner games.Player
}

var empty = Cell{}

// Position is a full xiangqi board.
type Position struct {
	board [90]Cell
	side  games.Player
}

func file(sq int) int       { return sq % 9 }
func rank(sq int) int       { return sq / 9 }
func square(f, r int) int   { return r*9 + f }
func onBoard(f, r int) bool { return f >= 0 && f < 9 && r >= 0 && r < 10 }

// inPalace reports whether (f,r) lies in side's palace (files 3-5, the
// three ranks nearest that side's own edge).
func inPalace(side games.Player, f, r int) bool {
	if f < 3 || f > 5 {
		return false
	}
	if side == games.PlayerOne {
		return r >= 0 && r <= 2
	}
	return r >= 7 && r <= 9
}

// ownSide reports whether rank r is on side's own half of the river.
func ownSide(side games.Player, r int) bool {
	if side == games.PlayerOne {
		return r <= 4
	}
	return r >= 5
}

// crossedRiver reports whether a soldier belonging to side standing on rank
// r has already crossed the river.
func crossedRiver(side games.Player, r int) bool {
	return !ownSide(side, r)
}

// New returns the standard starting position.
func New() *Position {
	p := &Position{side: games.PlayerOne}

	backRow := [9]Kind{Chariot, Horse, Elephant, Advisor, King, Advisor, Elephant, Horse, Chariot}
	for f := 0; f < 9; f++ {
		p.board[square(f, 0)] = Cell{backRow[f], games.PlayerOne}
		p.board[square(f, 9)] = Cell{backRow[f], games.PlayerTwo}
	}
	for _, f := range []int{1, 7} {
		p.board[square(f, 2)] = Cell{Cannon, games.PlayerOne}
		p.board[square(f, 7)] = Cell{Cannon, games.PlayerTwo}
	}
	for _, f := range []int{0, 2, 4, 6, 8} {
		p.board[square(f, 3)] = Cell{Soldier, games.PlayerOne}
		p.board[square(f, 6)] = Cell{Soldier, games.PlayerTwo}
	}
	return p
}

func (p *Position) SideToMove() games.Player { return p.side }

// Clone returns an independent copy. The board is a fixed-size array so a
// plain struct copy already deep-copies it.
func (p *Position) Clone() games.Position {
	cp := *p
	return &cp
}

func (p *Position) kingSquare(side games.Player) int {
	for sq := 0; sq < 90; sq++ {
		if p.board[sq].Kind == King && p.board[sq].Owner == side {
			return sq
		}
	}
	return -1
}

// Winner reports a side as winner only once the opposing king has been
// captured; like the shogi package, this implementation does not detect
// check or checkmate (see DESIGN.md), so the flying-generals rule is
// expressed as an actual capturing move (see move.go) rather than as a
// legality filter.
func (p *Position) Winner() (games.Player, bool) {
	if p.kingSquare(games.PlayerOne) < 0 {
		return games.PlayerTwo, true
	}
	if p.kingSquare(games.PlayerTwo) < 0 {
		return games.PlayerOne, true
	}
	return 0, false
}

var materialValue = map[Kind]int32{
	King: 200, Chariot: 9, Cannon: 5, Horse: 4, Elephant: 2, Advisor: 2, Soldier: 1,
}

// soldierValue doubles a soldier's value once it has crossed the river,
// reflecting its gained sideways mobility — the traditional xiangqi
// handicap for an uncrossed pawn.
func soldierValue(owner games.Player, r int) int32 {
	if crossedRiver(owner, r) {
		return 2
	}
	return 1
}

// StaticEval implements spec §4.3's material+mobility combination, mirroring
// the shogi package's 10*material + 1*mobility weighting since the spec
// leaves xiangqi's exact combination unspecified beyond "same pattern".
func (p *Position) StaticEval() int32 {
	var material int32
	for sq := 0; sq < 90; sq++ {
		c := p.board[sq]
		if c.Kind == NoKind {
			continue
		}
		var v int32
		if c.Kind == Soldier {
			v = soldierValue(c.Owner, rank(sq))
		} else {
			v = materialValue[c.Kind]
		}
		if c.Owner == games.PlayerOne {
			material += v
		} else {
			material -= v
		}
	}

	mobilityOne := int32(len(p.pseudoLegalMovesFor(games.PlayerOne)))
	mobilityTwo := int32(len(p.pseudoLegalMovesFor(games.PlayerTwo)))

	return 10*material + (mobilityOne - mobilityTwo)
}
