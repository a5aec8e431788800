package weiqi

import (
	"fmt"

	"github.com/yourusername/stratengine/pkg/games"
)

// Move is a stone placement (Point >= 0) or a pass (Point == -1).
type Move struct {
	Point int

	captured              []int
	mover                 games.Player
	prevConsecutivePasses int
}

func pointName(sq int) string {
	return fmt.Sprintf("%c%c", 'a'+col(sq), 'a'+row(sq))
}

func (m *Move) String() string {
	if m.Point < 0 {
		return "pass"
	}
	return pointName(m.Point)
}

// LegalMoves enumerates every empty point whose placement does not suicide
// the placed stone's group (after applying any resulting captures) and does
// not repeat a board state already seen this game (positional superko),
// plus the always-available pass.
func (p *Position) LegalMoves() []games.Move {
	out := []games.Move{&Move{Point: -1}}
	for sq := 0; sq < numPoints; sq++ {
		if p.board[sq] != 0 {
			continue
		}
		if p.wouldBeLegal(sq) {
			out = append(out, &Move{Point: sq})
		}
	}
	return out
}

func (p *Position) wouldBeLegal(sq int) bool {
	trial := *p
	trial.board[sq] = p.side

	opp := p.side.Other()
	for _, n := range neighbors(sq) {
		if trial.board[n] != opp {
			continue
		}
		stones, liberty := trial.group(n)
		if !liberty {
			for _, s := range stones {
				trial.board[s] = 0
			}
		}
	}

	_, liberty := trial.group(sq)
	if !liberty {
		return false
	}

	sig := trial.signature()
	for _, seen := range p.history {
		if seen == sig {
			return false
		}
	}
	return true
}

// Apply mutates the position by playing m (spec §4.2).
func (p *Position) Apply(mv games.Move) error {
	m, ok := mv.(*Move)
	if !ok {
		return fmt.Errorf("%w: not a weiqi move", games.ErrInternalInvariant)
	}
	m.mover = p.side
	m.prevConsecutivePasses = p.consecutivePasses

	if m.Point < 0 {
		p.consecutivePasses++
		p.side = p.side.Other()
		return nil
	}

	if p.board[m.Point] != 0 {
		return fmt.Errorf("%w: point already occupied", games.ErrInternalInvariant)
	}
	p.board[m.Point] = p.side

	opp := p.side.Other()
	m.captured = nil
	for _, n := range neighbors(m.Point) {
		// A neighbor already captured this turn (as part of an earlier
		// group sharing this liberty) now reads empty; skip it.
		if p.board[n] != opp {
			continue
		}
		stones, liberty := p.group(n)
		if liberty {
			continue
		}
		for _, s := range stones {
			p.board[s] = 0
			m.captured = append(m.captured, s)
		}
	}

	if _, liberty := p.group(m.Point); !liberty {
		return fmt.Errorf("%w: move suicides its own group", games.ErrInternalInvariant)
	}

	p.capturedBy[playerIndex(p.side)] += len(m.captured)
	p.consecutivePasses = 0
	p.side = p.side.Other()
	p.history = append(p.history, p.signature())
	return nil
}

// Undo reverses Apply(m) exactly.
func (p *Position) Undo(mv games.Move) error {
	m, ok := mv.(*Move)
	if !ok {
		return fmt.Errorf("%w: not a weiqi move", games.ErrInternalInvariant)
	}
	p.side = m.mover
	p.consecutivePasses = m.prevConsecutivePasses

	if m.Point < 0 {
		return nil
	}

	p.history = p.history[:len(p.history)-1]
	p.capturedBy[playerIndex(m.mover)] -= len(m.captured)
	opp := m.mover.Other()
	for _, s := range m.captured {
		p.board[s] = opp
	}
	p.board[m.Point] = 0
	return nil
}
