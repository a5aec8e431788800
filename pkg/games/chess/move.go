package chess

import (
	"fmt"

	"github.com/yourusername/stratengine/pkg/games"
)

// Move is a discriminated chess move (spec Design Notes): standard,
// castle, en-passant and promotion are all represented by one struct with
// tag fields, since Go lacks sum types; undo fields are filled by Apply.
type Move struct {
	From, To  int
	Promotion Piece // Empty unless this move promotes

	CastleKingside  bool
	CastleQueenside bool
	EnPassant       bool

	// undo bookkeeping
	captured     Piece
	prevEP       int
	prevCastle   [4]bool
	prevHalfmove int
	mover        games.Player
}

func (m *Move) String() string {
	return fmt.Sprintf("%s%s", squareName(m.From), squareName(m.To))
}

func squareName(sq int) string {
	return fmt.Sprintf("%c%d", 'a'+file(sq), rank(sq)+1)
}

// LegalMoves returns every pseudo-legal move that does not leave the
// mover's own king in check, in deterministic square-then-direction order.
func (p *Position) LegalMoves() []games.Move {
	pseudo := p.pseudoLegalMovesFor(p.side)
	out := make([]games.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if err := p.Apply(m); err != nil {
			continue
		}
		ok := !p.inCheck(m.mover)
		_ = p.Undo(m)
		if ok {
			out = append(out, m)
		}
	}
	return out
}

func (p *Position) pseudoLegalMovesFor(side games.Player) []*Move {
	var out []*Move
	for sq := 0; sq < 64; sq++ {
		pc := p.board[sq]
		if pc == Empty || pc.owner() != side {
			continue
		}
		switch pc.kind() {
		case WP:
			out = append(out, p.pawnMoves(sq, side)...)
		case WN:
			out = append(out, p.offsetMoves(sq, side, knightOffsets[:])...)
		case WB:
			out = append(out, p.slideMoves(sq, side, bishopDirs[:])...)
		case WR:
			out = append(out, p.slideMoves(sq, side, rookDirs[:])...)
		case WQ:
			out = append(out, p.slideMoves(sq, side, queenDirs)...)
		case WK:
			out = append(out, p.offsetMoves(sq, side, kingOffsets[:])...)
			out = append(out, p.castleMoves(side)...)
		}
	}
	return out
}

func (p *Position) canCaptureOrEmpty(sq int, side games.Player) bool {
	pc := p.board[sq]
	return pc == Empty || pc.owner() != side
}

func (p *Position) offsetMoves(sq int, side games.Player, offsets [][2]int) []*Move {
	var out []*Move
	f, r := file(sq), rank(sq)
	for _, d := range offsets {
		nf, nr := f+d[0], r+d[1]
		if !onBoard(nf, nr) {
			continue
		}
		to := square(nf, nr)
		if p.canCaptureOrEmpty(to, side) {
			out = append(out, &Move{From: sq, To: to})
		}
	}
	return out
}

func (p *Position) slideMoves(sq int, side games.Player, dirs [][2]int) []*Move {
	var out []*Move
	f, r := file(sq), rank(sq)
	for _, d := range dirs {
		nf, nr := f+d[0], r+d[1]
		for onBoard(nf, nr) {
			to := square(nf, nr)
			if p.board[to] == Empty {
				out = append(out, &Move{From: sq, To: to})
			} else {
				if p.board[to].owner() != side {
					out = append(out, &Move{From: sq, To: to})
				}
				break
			}
			nf += d[0]
			nr += d[1]
		}
	}
	return out
}

var queenDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}}

var promotionPieces = []Piece{WQ, WR, WB, WN}

func (p *Position) pawnMoves(sq int, side games.Player) []*Move {
	var out []*Move
	f, r := file(sq), rank(sq)
	dir, startRank, promoteRank := 1, 1, 7
	if side == games.PlayerTwo {
		dir, startRank, promoteRank = -1, 6, 0
	}

	addPawnMove := func(to int) {
		if rank(to) == promoteRank {
			for _, pp := range promotionPieces {
				out = append(out, &Move{From: sq, To: to, Promotion: colored(pp, side)})
			}
		} else {
			out = append(out, &Move{From: sq, To: to})
		}
	}

	// Single push.
	if onBoard(f, r+dir) {
		one := square(f, r+dir)
		if p.board[one] == Empty {
			addPawnMove(one)
			if r == startRank {
				two := square(f, r+2*dir)
				if p.board[two] == Empty {
					out = append(out, &Move{From: sq, To: two})
				}
			}
		}
	}

	// Captures, including en passant.
	for _, df := range []int{-1, 1} {
		nf, nr := f+df, r+dir
		if !onBoard(nf, nr) {
			continue
		}
		to := square(nf, nr)
		if p.board[to] != Empty && p.board[to].owner() != side {
			addPawnMove(to)
		} else if to == p.epSquare && p.board[to] == Empty {
			out = append(out, &Move{From: sq, To: to, EnPassant: true})
		}
	}
	return out
}

func colored(kind Piece, side games.Player) Piece {
	if side == games.PlayerTwo {
		return kind + (BP - WP)
	}
	return kind
}

func (p *Position) castleMoves(side games.Player) []*Move {
	var out []*Move
	other := side.Other()
	if side == games.PlayerOne {
		if p.castleWK && p.board[5] == Empty && p.board[6] == Empty &&
			!p.attacked(4, other) && !p.attacked(5, other) && !p.attacked(6, other) {
			out = append(out, &Move{From: 4, To: 6, CastleKingside: true})
		}
		if p.castleWQ && p.board[1] == Empty && p.board[2] == Empty && p.board[3] == Empty &&
			!p.attacked(4, other) && !p.attacked(3, other) && !p.attacked(2, other) {
			out = append(out, &Move{From: 4, To: 2, CastleQueenside: true})
		}
	} else {
		if p.castleBK && p.board[61] == Empty && p.board[62] == Empty &&
			!p.attacked(60, other) && !p.attacked(61, other) && !p.attacked(62, other) {
			out = append(out, &Move{From: 60, To: 62, CastleKingside: true})
		}
		if p.castleBQ && p.board[57] == Empty && p.board[58] == Empty && p.board[59] == Empty &&
			!p.attacked(60, other) && !p.attacked(59, other) && !p.attacked(58, other) {
			out = append(out, &Move{From: 60, To: 58, CastleQueenside: true})
		}
	}
	return out
}

// Apply mutates the position by playing m (spec §4.2).
func (p *Position) Apply(mv games.Move) error {
	m, ok := mv.(*Move)
	if !ok {
		return fmt.Errorf("%w: not a chess move", games.ErrInternalInvariant)
	}
	m.mover = p.side
	m.captured = p.board[m.To]
	m.prevEP = p.epSquare
	m.prevCastle = [4]bool{p.castleWK, p.castleWQ, p.castleBK, p.castleBQ}
	m.prevHalfmove = p.halfmoveClock

	piece := p.board[m.From]
	if piece == Empty {
		return fmt.Errorf("%w: no piece on %s", games.ErrInternalInvariant, squareName(m.From))
	}

	p.board[m.From] = Empty
	if m.EnPassant {
		capSq := m.To - 8
		if p.side == games.PlayerTwo {
			capSq = m.To + 8
		}
		m.captured = p.board[capSq]
		p.board[capSq] = Empty
	}
	if m.Promotion != Empty {
		p.board[m.To] = m.Promotion
	} else {
		p.board[m.To] = piece
	}

	if m.CastleKingside || m.CastleQueenside {
		rookFrom, rookTo := 0, 0
		switch {
		case m.CastleKingside && p.side == games.PlayerOne:
			rookFrom, rookTo = 7, 5
		case m.CastleQueenside && p.side == games.PlayerOne:
			rookFrom, rookTo = 0, 3
		case m.CastleKingside && p.side == games.PlayerTwo:
			rookFrom, rookTo = 63, 61
		default:
			rookFrom, rookTo = 56, 59
		}
		p.board[rookTo] = p.board[rookFrom]
		p.board[rookFrom] = Empty
	}

	// Update castling rights.
	if piece.kind() == WK {
		if p.side == games.PlayerOne {
			p.castleWK, p.castleWQ = false, false
		} else {
			p.castleBK, p.castleBQ = false, false
		}
	}
	clearRookRights := func(sq int) {
		switch sq {
		case 0:
			p.castleWQ = false
		case 7:
			p.castleWK = false
		case 56:
			p.castleBQ = false
		case 63:
			p.castleBK = false
		}
	}
	clearRookRights(m.From)
	clearRookRights(m.To)

	// En passant target for the next move.
	p.epSquare = noEnPassant
	if piece.kind() == WP && abs(m.To-m.From) == 16 {
		p.epSquare = (m.From + m.To) / 2
	}

	if piece.kind() == WP || m.captured != Empty {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if p.side == games.PlayerTwo {
		p.fullmoveNumber++
	}

	p.side = p.side.Other()
	return nil
}

// Undo reverses Apply(m) exactly.
func (p *Position) Undo(mv games.Move) error {
	m, ok := mv.(*Move)
	if !ok {
		return fmt.Errorf("%w: not a chess move", games.ErrInternalInvariant)
	}
	p.side = p.side.Other()
	p.epSquare = m.prevEP
	p.castleWK, p.castleWQ, p.castleBK, p.castleBQ = m.prevCastle[0], m.prevCastle[1], m.prevCastle[2], m.prevCastle[3]
	p.halfmoveClock = m.prevHalfmove
	if p.side == games.PlayerTwo {
		p.fullmoveNumber--
	}

	piece := p.board[m.To]
	if m.Promotion != Empty {
		piece = colored(WP, p.side)
	}
	p.board[m.From] = piece
	p.board[m.To] = Empty

	if m.EnPassant {
		capSq := m.To - 8
		if p.side == games.PlayerTwo {
			capSq = m.To + 8
		}
		p.board[capSq] = m.captured
	} else {
		p.board[m.To] = m.captured
	}

	if m.CastleKingside || m.CastleQueenside {
		rookFrom, rookTo := 0, 0
		switch {
		case m.CastleKingside && p.side == games.PlayerOne:
			rookFrom, rookTo = 7, 5
		case m.CastleQueenside && p.side == games.PlayerOne:
			rookFrom, rookTo = 0, 3
		case m.CastleKingside && p.side == games.PlayerTwo:
			rookFrom, rookTo = 63, 61
		default:
			rookFrom, rookTo = 56, 59
		}
		p.board[rookFrom] = p.board[rookTo]
		p.board[rookTo] = Empty
	}

	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
