package shogi

import (
	"fmt"

	"github.com/yourusername/stratengine/pkg/games"
)

// Move is either a board move (From >= 0) or a drop from hand (From == -1,
// Drop set to the piece kind placed).
type Move struct {
	From, To int
	Drop     Kind
	Promote  bool

	// undo bookkeeping
	captured Cell
	mover    games.Player
}

func squareName(sq int) string {
	return fmt.Sprintf("%d%d", 9-file(sq), rank(sq)+1)
}

var kindLetter = map[Kind]string{
	Pawn: "P", Lance: "L", Knight: "N", Silver: "S", Gold: "G", Bishop: "B", Rook: "R", King: "K",
	PPawn: "+P", PLance: "+L", PKnight: "+N", PSilver: "+S", PBishop: "+B", PRook: "+R",
}

func (m *Move) String() string {
	if m.From < 0 {
		return fmt.Sprintf("%s*%s", kindLetter[m.Drop], squareName(m.To))
	}
	suffix := ""
	if m.Promote {
		suffix = "+"
	}
	return fmt.Sprintf("%s-%s%s", squareName(m.From), squareName(m.To), suffix)
}

func forwardSign(side games.Player) int {
	if side == games.PlayerOne {
		return -1
	}
	return 1
}

func promotionZone(side games.Player, r int) bool {
	if side == games.PlayerOne {
		return r <= 2
	}
	return r >= 6
}

var goldDirs = [][2]int{{-1, 1}, {0, 1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}}
var silverDirs = [][2]int{{-1, 1}, {0, 1}, {1, 1}, {-1, -1}, {1, -1}}
var kingDirs = [][2]int{{-1, 1}, {0, 1}, {1, 1}, {-1, 0}, {1, 0}, {-1, -1}, {0, -1}, {1, -1}}
var bishopDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var knightOffsets = [][2]int{{-1, 2}, {1, 2}}

func (p *Position) pseudoLegalMovesFor(side games.Player) []*Move {
	var out []*Move
	ward := forwardSign(side)
	for sq := 0; sq < 81; sq++ {
		c := p.board[sq]
		if c.Kind == NoKind || c.Owner != side {
			continue
		}
		out = append(out, p.movesFromSquare(sq, c, ward)...)
	}
	out = append(out, p.dropMoves(side, ward)...)
	return out
}

// LegalMoves is pseudo-legal move generation (no check filtering; see
// Winner's doc comment), but still honors shogi's drop restrictions.
func (p *Position) LegalMoves() []games.Move {
	pseudo := p.pseudoLegalMovesFor(p.side)
	out := make([]games.Move, 0, len(pseudo))
	for _, m := range pseudo {
		out = append(out, m)
	}
	return out
}

func (p *Position) movesFromSquare(sq int, c Cell, ward int) []*Move {
	f, r := file(sq), rank(sq)
	var out []*Move

	addStep := func(df, funit int) {
		nf, nr := f+df, r+funit*ward
		if !onBoard(nf, nr) {
			return
		}
		to := square(nf, nr)
		dst := p.board[to]
		if dst.Kind != NoKind && dst.Owner == c.Owner {
			return
		}
		out = append(out, p.candidateMoves(sq, to, c, nr)...)
	}

	addSlide := func(df, funit int) {
		nf, nr := f+df, r+funit*ward
		for onBoard(nf, nr) {
			to := square(nf, nr)
			dst := p.board[to]
			if dst.Kind != NoKind && dst.Owner == c.Owner {
				return
			}
			out = append(out, p.candidateMoves(sq, to, c, nr)...)
			if dst.Kind != NoKind {
				return
			}
			nf += df
			nr += funit * ward
		}
	}

	base := c.Kind
	if base.isPromoted() {
		base = demoted(base)
	}

	switch base {
	case Pawn:
		addStep(0, 1)
	case Lance:
		if c.Kind.isPromoted() {
			for _, d := range goldDirs {
				addStep(d[0], d[1])
			}
		} else {
			addSlide(0, 1)
		}
	case Knight:
		if c.Kind.isPromoted() {
			for _, d := range goldDirs {
				addStep(d[0], d[1])
			}
		} else {
			for _, d := range knightOffsets {
				addStep(d[0], d[1])
			}
		}
	case Silver:
		if c.Kind.isPromoted() {
			for _, d := range goldDirs {
				addStep(d[0], d[1])
			}
		} else {
			for _, d := range silverDirs {
				addStep(d[0], d[1])
			}
		}
	case Gold:
		for _, d := range goldDirs {
			addStep(d[0], d[1])
		}
	case Bishop:
		for _, d := range bishopDirs {
			addSlide(d[0], d[1])
		}
		if c.Kind.isPromoted() {
			for _, d := range rookDirs {
				addStep(d[0], d[1])
			}
		}
	case Rook:
		for _, d := range rookDirs {
			addSlide(d[0], d[1])
		}
		if c.Kind.isPromoted() {
			for _, d := range bishopDirs {
				addStep(d[0], d[1])
			}
		}
	case King:
		for _, d := range kingDirs {
			addStep(d[0], d[1])
		}
	}
	return out
}

// candidateMoves emits the non-promoting move, and (when in or entering the
// promotion zone) the promoting variant too, unless the piece cannot
// promote or is already promoted. The non-promoting move is left out when a
// pawn, lance or knight would have no further move from its destination.
func (p *Position) candidateMoves(from, to int, c Cell, destRank int) []*Move {
	var out []*Move
	_, canPromote := promotes[c.Kind]
	fromRank := rank(from)
	inZone := promotionZone(c.Owner, fromRank) || promotionZone(c.Owner, destRank)

	mustPromote := false
	if canPromote && promotionZone(c.Owner, destRank) {
		switch c.Kind {
		case Pawn, Lance:
			mustPromote = !hasFurtherMove(c.Owner, destRank, 1)
		case Knight:
			mustPromote = !hasFurtherMove(c.Owner, destRank, 2)
		}
	}

	if !mustPromote {
		out = append(out, &Move{From: from, To: to})
	}
	if canPromote && inZone {
		out = append(out, &Move{From: from, To: to, Promote: true})
	}
	return out
}

// hasFurtherMove reports whether a pawn/lance (minSteps=1) or knight
// (minSteps=2) landing on destRank would still have a legal forward move,
// i.e. is not stranded on the piece's far edge of the board.
func hasFurtherMove(side games.Player, destRank, minSteps int) bool {
	if side == games.PlayerOne {
		return destRank-minSteps >= 0
	}
	return destRank+minSteps <= 8
}

func (p *Position) dropMoves(side games.Player, ward int) []*Move {
	var out []*Move
	idx := playerIndex(side)
	for kind, count := range p.hand[idx] {
		if count <= 0 {
			continue
		}
		for sq := 0; sq < 81; sq++ {
			if p.board[sq].Kind != NoKind {
				continue
			}
			r := rank(sq)
			if (kind == Pawn || kind == Lance) && !hasFurtherMove(side, r, 1) {
				continue
			}
			if kind == Knight && !hasFurtherMove(side, r, 2) {
				continue
			}
			if kind == Pawn && p.pawnOnFile(side, file(sq)) {
				continue
			}
			out = append(out, &Move{From: -1, To: sq, Drop: kind})
		}
	}
	return out
}

func (p *Position) pawnOnFile(side games.Player, f int) bool {
	for r := 0; r < 9; r++ {
		c := p.board[square(f, r)]
		if c.Kind == Pawn && c.Owner == side {
			return true
		}
	}
	return false
}

// Apply mutates the position by playing m (spec §4.2).
func (p *Position) Apply(mv games.Move) error {
	m, ok := mv.(*Move)
	if !ok {
		return fmt.Errorf("%w: not a shogi move", games.ErrInternalInvariant)
	}
	m.mover = p.side
	idx := playerIndex(p.side)

	if m.From < 0 {
		if p.board[m.To].Kind != NoKind {
			return fmt.Errorf("%w: drop square occupied", games.ErrInternalInvariant)
		}
		if p.hand[idx][m.Drop] <= 0 {
			return fmt.Errorf("%w: no %v in hand", games.ErrInternalInvariant, m.Drop)
		}
		p.hand[idx][m.Drop]--
		p.board[m.To] = Cell{m.Drop, p.side}
		m.captured = empty
		p.side = p.side.Other()
		return nil
	}

	piece := p.board[m.From]
	if piece.Kind == NoKind {
		return fmt.Errorf("%w: no piece on %s", games.ErrInternalInvariant, squareName(m.From))
	}
	m.captured = p.board[m.To]
	if m.captured.Kind != NoKind {
		p.hand[idx][demoted(m.captured.Kind)]++
	}

	p.board[m.From] = empty
	finalKind := piece.Kind
	if m.Promote {
		finalKind = promotes[piece.Kind]
	}
	p.board[m.To] = Cell{finalKind, piece.Owner}

	p.side = p.side.Other()
	return nil
}

// Undo reverses Apply(m) exactly.
func (p *Position) Undo(mv games.Move) error {
	m, ok := mv.(*Move)
	if !ok {
		return fmt.Errorf("%w: not a shogi move", games.ErrInternalInvariant)
	}
	p.side = p.side.Other()
	idx := playerIndex(p.side)

	if m.From < 0 {
		p.board[m.To] = empty
		p.hand[idx][m.Drop]++
		return nil
	}

	moved := p.board[m.To]
	origKind := moved.Kind
	if m.Promote {
		origKind = demoted(origKind)
	}
	p.board[m.From] = Cell{origKind, moved.Owner}
	p.board[m.To] = m.captured
	if m.captured.Kind != NoKind {
		p.hand[idx][demoted(m.captured.Kind)]--
	}
	return nil
}
