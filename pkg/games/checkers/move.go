package checkers

import (
	"fmt"
	"strings"

	"github.com/yourusername/stratengine/pkg/games"
)

// Move is a discriminated checkers move: a simple step (len(To)==1, no
// captures) or a jump chain (Captured holds one entry per hop). Capture
// and promotion metadata let Undo reverse Apply exactly.
type Move struct {
	From     int
	To       []int
	Captured []int // squares whose piece was removed, one per hop; nil for a simple move

	// undo bookkeeping, filled in by Apply
	capturedPieces []Piece
	wasKing        bool
	promoted       bool
}

func (m *Move) String() string {
	sep := "-"
	if len(m.Captured) > 0 {
		sep = "x"
	}
	parts := make([]string, 0, len(m.To)+1)
	parts = append(parts, fmt.Sprintf("%d", m.From))
	for _, t := range m.To {
		parts = append(parts, fmt.Sprintf("%d", t))
	}
	return strings.Join(parts, sep)
}

// LegalMoves returns jumps if any exist (forced capture), else simple
// moves, in deterministic square-then-direction order (spec §4.1).
func (p *Position) LegalMoves() []games.Move {
	jumps := p.generateJumps()
	if len(jumps) > 0 {
		return jumps
	}
	return p.generateSimpleMoves()
}

func (p *Position) generateSimpleMoves() []games.Move {
	var out []games.Move
	for sq := 1; sq <= 32; sq++ {
		pc := p.at(sq)
		if pc == Empty || pc.owner() != p.side {
			continue
		}
		for _, d := range forwardDirs(pc) {
			to, ok := neighbor(sq, d)
			if !ok || p.at(to) != Empty {
				continue
			}
			out = append(out, &Move{From: sq, To: []int{to}})
		}
	}
	return out
}

// jumpChain is built up during the recursive search below.
type jumpChain struct {
	landings  []int
	captures  []int
	piece     Piece
	promoted  bool
	wasKing   bool
}

func (p *Position) generateJumps() []games.Move {
	var out []games.Move
	for sq := 1; sq <= 32; sq++ {
		pc := p.at(sq)
		if pc == Empty || pc.owner() != p.side {
			continue
		}
		var walk func(board *[33]Piece, from int, chain jumpChain)
		walk = func(board *[33]Piece, from int, chain jumpChain) {
			extended := false
			for _, d := range forwardDirs(chain.piece) {
				mid, ok := neighbor(from, d)
				if !ok || board[mid] == Empty || board[mid].owner() == p.side {
					continue
				}
				land, ok := neighbor(mid, d)
				if !ok || board[land] != Empty {
					continue
				}
				extended = true

				nb := *board
				nb[mid] = Empty
				piece := chain.piece
				promoted := chain.promoted
				if !piece.isKing() && lastRank(p.side, land) {
					piece = kingOf(p.side)
					promoted = true
				}
				nb[from] = Empty
				nb[land] = piece

				nextChain := jumpChain{
					landings: append(append([]int{}, chain.landings...), land),
					captures: append(append([]int{}, chain.captures...), mid),
					piece:    piece,
					promoted: promoted,
					wasKing:  chain.wasKing,
				}
				walk(&nb, land, nextChain)
			}
			if !extended && len(chain.landings) > 0 {
				out = append(out, &Move{
					From:     sq,
					To:       chain.landings,
					Captured: chain.captures,
					wasKing:  chain.wasKing,
					promoted: chain.promoted,
				})
			}
		}
		walk(&p.squares, sq, jumpChain{piece: pc, wasKing: pc.isKing()})
	}
	return out
}

func kingOf(side games.Player) Piece {
	if side == games.PlayerOne {
		return BlackKing
	}
	return WhiteKing
}

func manOf(side games.Player) Piece {
	if side == games.PlayerOne {
		return BlackMan
	}
	return WhiteMan
}

// Apply mutates the position by playing m (spec §4.2).
func (p *Position) Apply(mv games.Move) error {
	m, ok := mv.(*Move)
	if !ok {
		return fmt.Errorf("%w: not a checkers move", games.ErrInternalInvariant)
	}
	pc := p.at(m.From)
	if pc == Empty || pc.owner() != p.side {
		return fmt.Errorf("%w: no movable piece on %d", games.ErrInternalInvariant, m.From)
	}

	m.wasKing = pc.isKing()
	m.capturedPieces = m.capturedPieces[:0]

	p.squares[m.From] = Empty
	cur := pc
	for i, to := range m.To {
		if i < len(m.Captured) {
			capSq := m.Captured[i]
			m.capturedPieces = append(m.capturedPieces, p.squares[capSq])
			p.squares[capSq] = Empty
		}
		if !cur.isKing() && lastRank(p.side, to) {
			cur = kingOf(p.side)
		}
	}
	m.promoted = cur != pc && cur.isKing() && !pc.isKing()
	p.squares[m.To[len(m.To)-1]] = cur

	p.side = p.side.Other()
	return nil
}

// Undo reverses Apply(m) exactly (spec §4.2, testable property 2).
func (p *Position) Undo(mv games.Move) error {
	m, ok := mv.(*Move)
	if !ok {
		return fmt.Errorf("%w: not a checkers move", games.ErrInternalInvariant)
	}
	p.side = p.side.Other()

	last := m.To[len(m.To)-1]
	origPiece := manOf(p.side)
	if m.wasKing {
		origPiece = kingOf(p.side)
	}

	p.squares[last] = Empty
	for i, capSq := range m.Captured {
		_ = i
		p.squares[capSq] = m.capturedPieces[i]
	}
	p.squares[m.From] = origPiece
	return nil
}

// Winner reports the decided winner: the side to move with no legal moves
// loses.
func (p *Position) Winner() (games.Player, bool) {
	if len(p.LegalMoves()) == 0 {
		return p.side.Other(), true
	}
	return 0, false
}

// StaticEval implements spec §4.3's checkers evaluator.
func (p *Position) StaticEval() int32 {
	var pieces1, pieces2, kings1, kings2, center1, center2 int32
	for sq := 1; sq <= 32; sq++ {
		pc := p.at(sq)
		if pc == Empty {
			continue
		}
		if pc.owner() == games.PlayerOne {
			pieces1++
			if pc.isKing() {
				kings1++
			}
			if centerSquares[sq] {
				center1++
			}
		} else {
			pieces2++
			if pc.isKing() {
				kings2++
			}
			if centerSquares[sq] {
				center2++
			}
		}
	}

	var loseValue int32
	if len(p.LegalMoves()) == 0 {
		if p.side == games.PlayerOne {
			loseValue = -1
		} else {
			loseValue = 1
		}
	}

	return 2*(pieces1-pieces2) + 4*(kings1-kings2) + 1*(center1-center2) + 256*loseValue
}
