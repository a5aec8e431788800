package backgammon

import (
	"fmt"
	"strings"

	"github.com/yourusername/stratengine/pkg/games"
)

// subMove is the use of a single die.
type subMove struct {
	from int // pointBar for entering from the bar
	to   int // pointOff for bearing off
	die  int
	hit  bool
}

// Move is a full play: one or more die uses consumed in a single ply
// (spec §3 "Move", §4.1 "must use as many dice as possible").
type Move struct {
	Dice [2]int // the roll this move was generated from, in the position's order
	Subs []subMove
}

func locationString(n int) string {
	switch n {
	case pointBar:
		return "bar"
	case pointOff:
		return "off"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func (m *Move) String() string {
	hi, lo := m.Dice[0], m.Dice[1]
	if lo > hi {
		hi, lo = lo, hi
	}
	parts := make([]string, 0, len(m.Subs))
	for _, s := range m.Subs {
		seg := fmt.Sprintf("%s/%s", locationString(s.from), locationString(s.to))
		if s.hit {
			seg += "*"
		}
		parts = append(parts, seg)
	}
	return fmt.Sprintf("%d-%d: %s", hi, lo, strings.Join(parts, " "))
}

// diceMultiset expands a roll into the list of die values available to
// use: two for a regular roll, four for doubles.
func diceMultiset(dice [2]int) []int {
	if dice[0] == dice[1] {
		return []int{dice[0], dice[0], dice[0], dice[0]}
	}
	return []int{dice[0], dice[1]}
}

func removeAt(xs []int, i int) []int {
	out := make([]int, 0, len(xs)-1)
	out = append(out, xs[:i]...)
	out = append(out, xs[i+1:]...)
	return out
}

// singleMoveOptions enumerates the single-die plays available to side
// given the current position, respecting the must-enter-from-bar rule.
func (p *Position) singleMoveOptions(side games.Player, die int) []subMove {
	if p.Bar[playerIndex(side)] > 0 {
		dest := entryPoint(side, die)
		if p.canLand(side, dest) {
			return []subMove{{from: pointBar, to: dest, die: die, hit: p.count(side.Other(), dest) == 1}}
		}
		return nil
	}

	var opts []subMove
	for n := 1; n <= 24; n++ {
		if p.count(side, n) == 0 {
			continue
		}
		dest, onBoard := advance(side, n, die)
		if onBoard {
			if p.canLand(side, dest) {
				opts = append(opts, subMove{from: n, to: dest, die: die, hit: p.count(side.Other(), dest) == 1})
			}
			continue
		}
		if !p.allInHome(side) {
			continue
		}
		if dest == 0 || dest == 25 {
			opts = append(opts, subMove{from: n, to: pointOff, die: die})
			continue
		}
		// Overage bear-off: allowed only if no checker sits behind n
		// (further from home) within the home board.
		if noCheckerBehind(p, side, n) {
			opts = append(opts, subMove{from: n, to: pointOff, die: die})
		}
	}
	return opts
}

func noCheckerBehind(p *Position, side games.Player, n int) bool {
	lo, hi := home(side)
	if side == games.PlayerOne {
		for m := n + 1; m <= hi; m++ {
			if p.count(side, m) > 0 {
				return false
			}
		}
	} else {
		for m := lo; m < n; m++ {
			if p.count(side, m) > 0 {
				return false
			}
		}
	}
	return true
}

func (p *Position) applySub(side games.Player, s subMove) {
	if s.from == pointBar {
		p.Bar[playerIndex(side)]--
	} else {
		p.setCount(side, s.from, p.count(side, s.from)-1)
	}
	if s.to == pointOff {
		p.Off[playerIndex(side)]++
		return
	}
	if s.hit {
		p.setCount(side.Other(), s.to, 0)
		p.Bar[playerIndex(side.Other())]++
	}
	p.setCount(side, s.to, p.count(side, s.to)+1)
}

func (p *Position) undoSub(side games.Player, s subMove) {
	if s.to == pointOff {
		p.Off[playerIndex(side)]--
	} else {
		p.setCount(side, s.to, p.count(side, s.to)-1)
		if s.hit {
			p.Bar[playerIndex(side.Other())]--
			p.setCount(side.Other(), s.to, 1)
		}
	}
	if s.from == pointBar {
		p.Bar[playerIndex(side)]++
	} else {
		p.setCount(side, s.from, p.count(side, s.from)+1)
	}
}

func boardKey(p *Position) string {
	var b strings.Builder
	for n := 1; n <= 24; n++ {
		pt := p.point(n)
		fmt.Fprintf(&b, "%d,%d|", pt.P1, pt.P2)
	}
	fmt.Fprintf(&b, "%d,%d|%d,%d", p.Bar[0], p.Bar[1], p.Off[0], p.Off[1])
	return b.String()
}

// LegalMoves enumerates all maximal dice-usage sequences from the current
// position and dice (spec §4.1 "Backgammon"), deduplicated by resulting
// position. Returns nil if no dice are set.
func (p *Position) LegalMoves() []games.Move {
	if p.Dice[0] == 0 {
		return nil
	}
	dice := diceMultiset(p.Dice)

	type candidate struct {
		subs []subMove
		key  string
	}
	seen := map[string]bool{}
	var candidates []candidate

	var recurse func(pos *Position, remaining []int, path []subMove)
	recurse = func(pos *Position, remaining []int, path []subMove) {
		extended := false
		triedDie := map[int]bool{}
		for i, d := range remaining {
			if triedDie[d] {
				continue
			}
			opts := pos.singleMoveOptions(p.side, d)
			if len(opts) == 0 {
				continue
			}
			triedDie[d] = true
			for _, sm := range opts {
				child := pos.Clone().(*Position)
				child.applySub(p.side, sm)
				extended = true
				nextPath := append(append([]subMove{}, path...), sm)
				recurse(child, removeAt(remaining, i), nextPath)
			}
		}
		if !extended && len(path) > 0 {
			key := boardKey(pos) + fmt.Sprintf("|%d", len(path))
			if !seen[key] {
				seen[key] = true
				candidates = append(candidates, candidate{subs: append([]subMove{}, path...), key: key})
			}
		}
	}
	recurse(p, dice, nil)

	if len(candidates) == 0 {
		return nil
	}

	maxUsed := 0
	for _, c := range candidates {
		if len(c.subs) > maxUsed {
			maxUsed = len(c.subs)
		}
	}
	filtered := candidates[:0]
	for _, c := range candidates {
		if len(c.subs) == maxUsed {
			filtered = append(filtered, c)
		}
	}

	if maxUsed == 1 && dice[0] != dice[1] {
		larger := dice[0]
		if dice[1] > larger {
			larger = dice[1]
		}
		var usingLarger []candidate
		for _, c := range filtered {
			if c.subs[0].die == larger {
				usingLarger = append(usingLarger, c)
			}
		}
		if len(usingLarger) > 0 {
			filtered = usingLarger
		}
	}

	out := make([]games.Move, 0, len(filtered))
	for _, c := range filtered {
		out = append(out, &Move{Dice: p.Dice, Subs: c.subs})
	}
	return out
}

// Apply plays m: every submove is applied in order and the side to move
// toggles once, after the whole roll is consumed (spec §4.2).
func (p *Position) Apply(mv games.Move) error {
	m, ok := mv.(*Move)
	if !ok {
		return fmt.Errorf("%w: not a backgammon move", games.ErrInternalInvariant)
	}
	for _, s := range m.Subs {
		p.applySub(p.side, s)
	}
	p.side = p.side.Other()
	p.Dice = [2]int{0, 0}
	return nil
}

// Undo reverses Apply(m) exactly.
func (p *Position) Undo(mv games.Move) error {
	m, ok := mv.(*Move)
	if !ok {
		return fmt.Errorf("%w: not a backgammon move", games.ErrInternalInvariant)
	}
	p.side = p.side.Other()
	p.Dice = m.Dice
	for i := len(m.Subs) - 1; i >= 0; i-- {
		p.undoSub(p.side, m.Subs[i])
	}
	return nil
}
