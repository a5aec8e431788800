// Package weiqi implements a 19x19 go position: stone placement, capture by
// liberty removal, suicide prohibition, positional superko tracked against
// the full game history, and the stones+territory static evaluator of spec
// §4.3. The package is named weiqi (the game's Chinese name) since "go" is
// a reserved word.
//
// Points are indexed 0..360, row-major: sq = row*19 + col, col 0..18
// (`a`..`s`), row 0..18. Player one is Black (moves first); player two is
// White.
package weiqi

import "github.com/yourusername/stratengine/pkg/games"

const boardSize = 19
const numPoints = boardSize * boardSize

func col(sq int) int     { return sq % boardSize }
func row(sq int) int     { return sq / boardSize }
func point(c, r int) int { return r*boardSize + c }
func onBoard(c, r int) bool {
	return c >= 0 && c < boardSize && r >= 0 && r < boardSize
}

// Position is a full go board plus the capture tallies and board-state
// history positional superko needs.
type Position struct {
	board             [numPoints]games.Player // 0 means empty; PlayerOne/PlayerTwo own a stone
	side              games.Player
	capturedBy        [2]int // capturedBy[0] = White stones captured by Black, etc.
	consecutivePasses int
	history           []string // canonical board snapshots seen so far, oldest first
}

func playerIndex(side games.Player) int {
	if side == games.PlayerOne {
		return 0
	}
	return 1
}

// New returns the empty starting position.
func New() *Position {
	p := &Position{side: games.PlayerOne}
	p.history = []string{p.signature()}
	return p
}

func (p *Position) SideToMove() games.Player { return p.side }

// Clone returns an independent copy; the history slice is copied so the
// clone can diverge without aliasing the original's move list.
func (p *Position) Clone() games.Position {
	cp := &Position{
		board:             p.board,
		side:              p.side,
		capturedBy:        p.capturedBy,
		consecutivePasses: p.consecutivePasses,
	}
	cp.history = make([]string, len(p.history))
	copy(cp.history, p.history)
	return cp
}

func (p *Position) signature() string {
	buf := make([]byte, numPoints)
	for i, owner := range p.board {
		switch owner {
		case games.PlayerOne:
			buf[i] = 'b'
		case games.PlayerTwo:
			buf[i] = 'w'
		default:
			buf[i] = '.'
		}
	}
	return string(buf)
}

func neighbors(sq int) []int {
	c, r := col(sq), row(sq)
	var out []int
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		nc, nr := c+d[0], r+d[1]
		if onBoard(nc, nr) {
			out = append(out, point(nc, nr))
		}
	}
	return out
}

// group flood-fills the connected stones of the same color as sq, and
// reports whether the group has any liberty (an adjacent empty point).
func (p *Position) group(sq int) (stones []int, liberty bool) {
	owner := p.board[sq]
	seen := map[int]bool{sq: true}
	stack := []int{sq}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stones = append(stones, cur)
		for _, n := range neighbors(cur) {
			if p.board[n] == 0 {
				liberty = true
				continue
			}
			if p.board[n] == owner && !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return stones, liberty
}

// Winner reports a side as winner once both players have passed
// consecutively, by comparing Chinese-rules score (spec §4.3).
func (p *Position) Winner() (games.Player, bool) {
	if p.consecutivePasses < 2 {
		return 0, false
	}
	s1, s2 := p.score()
	if s1 > s2 {
		return games.PlayerOne, true
	}
	if s2 > s1 {
		return games.PlayerTwo, true
	}
	return 0, false
}

// score returns each player's stones-on-board plus exclusively-surrounded
// territory (spec §4.3).
func (p *Position) score() (int32, int32) {
	var s1, s2 int32
	for _, owner := range p.board {
		switch owner {
		case games.PlayerOne:
			s1++
		case games.PlayerTwo:
			s2++
		}
	}

	visited := make([]bool, numPoints)
	for sq := 0; sq < numPoints; sq++ {
		if p.board[sq] != 0 || visited[sq] {
			continue
		}
		region, borders := p.emptyRegion(sq, visited)
		if len(borders) == 1 {
			for b := range borders {
				if b == games.PlayerOne {
					s1 += int32(len(region))
				} else {
					s2 += int32(len(region))
				}
			}
		}
	}
	return s1, s2
}

func (p *Position) emptyRegion(start int, visited []bool) (region []int, borders map[games.Player]bool) {
	borders = map[games.Player]bool{}
	stack := []int{start}
	visited[start] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, cur)
		for _, n := range neighbors(cur) {
			if p.board[n] != 0 {
				borders[p.board[n]] = true
				continue
			}
			if !visited[n] {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return region, borders
}

// StaticEval implements spec §4.3: 2*(score1-score2).
func (p *Position) StaticEval() int32 {
	s1, s2 := p.score()
	return 2 * (s1 - s2)
}
