// Package shogi implements a 9x9 shogi position: drops from hand, the
// promotion zone, drop restrictions (no two unpromoted pawns on a file, a
// dropped pawn/lance/knight must have a further legal move), and the
// material+mobility static evaluator of spec §4.3.
//
// Squares are indexed 0..80, rank-major: sq = rank*9 + file, file 0..8
// (9a..1a the first rank), rank 0..8. Player one (Black/Sente) starts on
// ranks 6-8 and advances toward rank 0; player two (White/Gote) starts on
// ranks 0-2 and advances toward rank 8.
package shogi

import "github.com/yourusername/stratengine/pkg/games"

// Kind identifies a piece type, independent of color or promotion.
type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King
	// Promoted variants. Gold and King never promote.
	PPawn
	PLance
	PKnight
	PSilver
	PBishop
	PRook
)

var promotes = map[Kind]Kind{
	Pawn: PPawn, Lance: PLance, Knight: PKnight, Silver: PSilver, Bishop: PBishop, Rook: PRook,
}

func (k Kind) isPromoted() bool {
	return k == PPawn || k == PLance || k == PKnight || k == PSilver || k == PBishop || k == PRook
}

// demoted returns the unpromoted kind a captured piece reverts to when it
// joins the capturer's hand.
func demoted(k Kind) Kind {
	switch k {
	case PPawn:
		return Pawn
	case PLance:
		return Lance
	case PKnight:
		return Knight
	case PSilver:
		return Silver
	case PBishop:
		return Bishop
	case PRook:
		return Rook
	default:
		return k
	}
}

// Cell is one board square: an empty cell has Kind == NoKind.
type Cell struct {
	Kind  Kind
	Owner games.Player
}

var empty = Cell{}

// Position is a full shogi board plus both players' hands.
type Position struct {
	board [81]Cell
	hand  [2]map[Kind]int // indexed by playerIndex(side)
	side  games.Player
}

func playerIndex(side games.Player) int {
	if side == games.PlayerOne {
		return 0
	}
	return 1
}

func file(sq int) int { return sq % 9 }
func rank(sq int) int { return sq / 9 }
func square(f, r int) int { return r*9 + f }
func onBoard(f, r int) bool { return f >= 0 && f < 9 && r >= 0 && r < 9 }

// New returns the standard starting position.
func New() *Position {
	p := &Position{side: games.PlayerOne}
	p.hand[0] = map[Kind]int{}
	p.hand[1] = map[Kind]int{}

	backRow := [9]Kind{Lance, Knight, Silver, Gold, King, Gold, Silver, Knight, Lance}
	for f := 0; f < 9; f++ {
		p.board[square(f, 0)] = Cell{backRow[f], games.PlayerTwo}
		p.board[square(f, 8)] = Cell{backRow[f], games.PlayerOne}
		p.board[square(f, 2)] = Cell{Pawn, games.PlayerTwo}
		p.board[square(f, 6)] = Cell{Pawn, games.PlayerOne}
	}
	p.board[square(1, 1)] = Cell{Rook, games.PlayerTwo}
	p.board[square(7, 1)] = Cell{Bishop, games.PlayerTwo}
	p.board[square(7, 7)] = Cell{Rook, games.PlayerOne}
	p.board[square(1, 7)] = Cell{Bishop, games.PlayerOne}
	return p
}

func (p *Position) SideToMove() games.Player { return p.side }

// Clone performs a deep copy, since hand maps are reference types.
func (p *Position) Clone() games.Position {
	cp := &Position{side: p.side, board: p.board}
	cp.hand[0] = make(map[Kind]int, len(p.hand[0]))
	cp.hand[1] = make(map[Kind]int, len(p.hand[1]))
	for k, v := range p.hand[0] {
		cp.hand[0][k] = v
	}
	for k, v := range p.hand[1] {
		cp.hand[1][k] = v
	}
	return cp
}

func (p *Position) kingSquare(side games.Player) int {
	for sq := 0; sq < 81; sq++ {
		if p.board[sq].Kind == King && p.board[sq].Owner == side {
			return sq
		}
	}
	return -1
}

// Winner reports a side as winner only once the opposing king has been
// captured; this package does not implement check/checkmate detection
// (an explicit scope simplification, see DESIGN.md), so a king left en
// prise is actually removed by a subsequent capturing move rather than
// the game ending one ply earlier by checkmate.
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
	King: 200, Rook: 9, Bishop: 8, Gold: 6, Silver: 5, Knight: 4, Lance: 3, Pawn: 1,
	PRook: 11, PBishop: 10, PSilver: 6, PKnight: 6, PLance: 6, PPawn: 7,
}

// StaticEval implements spec §4.3: 10*material + 1*mobility.
func (p *Position) StaticEval() int32 {
	var material int32
	for sq := 0; sq < 81; sq++ {
		c := p.board[sq]
		if c.Kind == NoKind {
			continue
		}
		v := materialValue[c.Kind]
		if c.Owner == games.PlayerOne {
			material += v
		} else {
			material -= v
		}
	}
	for k, n := range p.hand[0] {
		material += materialValue[k] * int32(n)
	}
	for k, n := range p.hand[1] {
		material -= materialValue[k] * int32(n)
	}

	mobilityOne := int32(len(p.pseudoLegalMovesFor(games.PlayerOne)))
	mobilityTwo := int32(len(p.pseudoLegalMovesFor(games.PlayerTwo)))

	return 10*material + (mobilityOne - mobilityTwo)
}
