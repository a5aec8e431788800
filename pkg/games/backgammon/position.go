// Package backgammon implements the backgammon position model: 24 points
// numbered from player one's perspective (24 is their farthest point, 1 is
// nearest their bear-off edge; player two moves the opposite direction),
// a bar, born-off counts, and the dice-driven move generator and
// expectimax search of spec §4.1/§4.3.
package backgammon

import "github.com/yourusername/stratengine/pkg/games"

const (
	pointBar = 0  // sentinel "from" meaning the bar
	pointOff = 25 // sentinel "to" meaning borne off
)

// Point holds the checker counts of both players on one of the 24 points.
// At most one of P1, P2 is non-zero (spec §3 invariant).
type Point struct {
	P1, P2 uint8
}

// Position is a full backgammon state.
type Position struct {
	Points [24]Point // index 0 = point 1 ... index 23 = point 24
	Bar    [2]uint8  // Bar[0] = player one, Bar[1] = player two
	Off    [2]uint8
	Dice   [2]int // 1..6, or 0 if unset (no roll pending / fully consumed)
	side   games.Player
}

func idx(point int) int { return point - 1 }

func (p *Position) point(n int) *Point { return &p.Points[idx(n)] }

func playerIndex(side games.Player) int {
	if side == games.PlayerOne {
		return 0
	}
	return 1
}

// count returns the number of side's checkers on point n.
func (p *Position) count(side games.Player, n int) uint8 {
	pt := p.point(n)
	if side == games.PlayerOne {
		return pt.P1
	}
	return pt.P2
}

func (p *Position) setCount(side games.Player, n int, v uint8) {
	pt := p.point(n)
	if side == games.PlayerOne {
		pt.P1 = v
	} else {
		pt.P2 = v
	}
}

// New returns the standard backgammon starting position with no dice
// rolled.
func New() *Position {
	p := &Position{side: games.PlayerOne}
	p.setCount(games.PlayerOne, 24, 2)
	p.setCount(games.PlayerOne, 13, 5)
	p.setCount(games.PlayerOne, 8, 3)
	p.setCount(games.PlayerOne, 6, 5)
	p.setCount(games.PlayerTwo, 1, 2)
	p.setCount(games.PlayerTwo, 12, 5)
	p.setCount(games.PlayerTwo, 17, 3)
	p.setCount(games.PlayerTwo, 19, 5)
	return p
}

func (p *Position) SideToMove() games.Player { return p.side }

func (p *Position) Clone() games.Position {
	cp := *p
	return &cp
}

// home returns [lo, hi] inclusive, the bearing-off quadrant for side.
func home(side games.Player) (int, int) {
	if side == games.PlayerOne {
		return 1, 6
	}
	return 19, 24
}

func (p *Position) allInHome(side games.Player) bool {
	lo, hi := home(side)
	if p.Bar[playerIndex(side)] > 0 {
		return false
	}
	total := p.Off[playerIndex(side)]
	for n := 1; n <= 24; n++ {
		if n < lo || n > hi {
			if p.count(side, n) > 0 {
				return false
			}
		} else {
			total += p.count(side, n)
		}
	}
	return total == 15
}

// advance returns the destination point for moving one checker of side
// from point n by die, and whether that destination is still on the board
// (as opposed to bear-off territory).
func advance(side games.Player, n, die int) (int, bool) {
	if side == games.PlayerOne {
		d := n - die
		return d, d >= 1
	}
	d := n + die
	return d, d <= 24
}

func entryPoint(side games.Player, die int) int {
	if side == games.PlayerOne {
		return 25 - die
	}
	return die
}

func (p *Position) canLand(side games.Player, point int) bool {
	return p.count(side.Other(), point) < 2
}

// Winner reports the player who has borne off all 15 checkers.
func (p *Position) Winner() (games.Player, bool) {
	if p.Off[0] == 15 {
		return games.PlayerOne, true
	}
	if p.Off[1] == 15 {
		return games.PlayerTwo, true
	}
	return 0, false
}

// StaticEval implements spec §4.3's backgammon evaluator.
func (p *Position) StaticEval() int32 {
	var primes1, primes2, blots1, blots2, home1, home2 int32
	lo1, hi1 := home(games.PlayerOne)
	lo2, hi2 := home(games.PlayerTwo)
	for n := 1; n <= 24; n++ {
		pt := p.point(n)
		if pt.P1 > 0 {
			primes1++
			if pt.P1 == 1 {
				blots1++
			}
			if n >= lo1 && n <= hi1 {
				home1 += int32(pt.P1)
			}
		}
		if pt.P2 > 0 {
			primes2++
			if pt.P2 == 1 {
				blots2++
			}
			if n >= lo2 && n <= hi2 {
				home2 += int32(pt.P2)
			}
		}
	}

	var winValue int32
	if w, ok := p.Winner(); ok {
		if w == games.PlayerOne {
			winValue = 1
		} else {
			winValue = -1
		}
	}

	bar1, bar2 := int32(p.Bar[0]), int32(p.Bar[1])
	off1, off2 := int32(p.Off[0]), int32(p.Off[1])

	return 8*(primes1-primes2) +
		16*(blots2-blots1) +
		32*(bar2-bar1) +
		64*(home1-home2) +
		128*(off1-off2) +
		256*winValue
}
