// Package chess implements the chess position model: standard legal-move
// generation (castling, en passant, promotion), apply/undo, check/mate
// detection, and the material+mobility static evaluator of spec §4.3.
//
// Squares are indexed 0..63, a1=0, b1=1, ..., h1=7, a2=8, ..., h8=63.
// Player one is White (moves first); player two is Black.
package chess

import "github.com/yourusername/stratengine/pkg/games"

// Piece is a colored chess piece, or Empty.
type Piece uint8

const (
	Empty Piece = iota
	WP
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
)

func (p Piece) isWhite() bool { return p >= WP && p <= WK }
func (p Piece) isBlack() bool { return p >= BP && p <= BK }

func (p Piece) owner() games.Player {
	if p.isWhite() {
		return games.PlayerOne
	}
	return games.PlayerTwo
}

func (p Piece) kind() Piece {
	if p.isBlack() {
		return p - (BP - WP)
	}
	return p
}

const noEnPassant = -1

// Position is a full chess board and its auxiliaries (spec §3).
type Position struct {
	board          [64]Piece
	side           games.Player
	castleWK       bool
	castleWQ       bool
	castleBK       bool
	castleBQ       bool
	epSquare       int // destination square of a double pawn push, or noEnPassant
	halfmoveClock  int
	fullmoveNumber int
}

func file(sq int) int { return sq % 8 }
func rank(sq int) int { return sq / 8 }
func square(f, r int) int { return r*8 + f }
func onBoard(f, r int) bool { return f >= 0 && f < 8 && r >= 0 && r < 8 }

// New returns the standard starting position.
func New() *Position {
	p := &Position{side: games.PlayerOne, epSquare: noEnPassant, fullmoveNumber: 1}
	back := [8]Piece{WR, WN, WB, WQ, WK, WB, WN, WR}
	for f := 0; f < 8; f++ {
		p.board[square(f, 0)] = back[f]
		p.board[square(f, 1)] = WP
		p.board[square(f, 6)] = BP
		p.board[square(f, 7)] = back[f] + (BP - WP)
	}
	p.castleWK, p.castleWQ, p.castleBK, p.castleBQ = true, true, true, true
	return p
}

func (p *Position) SideToMove() games.Player { return p.side }

func (p *Position) Clone() games.Position {
	cp := *p
	return &cp
}

// kingSquare returns the square of side's king.
func (p *Position) kingSquare(side games.Player) int {
	king := Piece(WK)
	if side == games.PlayerTwo {
		king = BK
	}
	for sq := 0; sq < 64; sq++ {
		if p.board[sq] == king {
			return sq
		}
	}
	return -1
}

// attacked reports whether sq is attacked by any piece of attacker.
func (p *Position) attacked(sq int, attacker games.Player) bool {
	f, r := file(sq), rank(sq)

	// Pawns.
	dr := -1
	if attacker == games.PlayerOne {
		dr = 1 // white pawns attack upward, so check the square below sq
	}
	pawn := Piece(BP)
	if attacker == games.PlayerOne {
		pawn = WP
	}
	for _, df := range []int{-1, 1} {
		nf, nr := f+df, r+dr
		if onBoard(nf, nr) && p.board[square(nf, nr)] == pawn {
			return true
		}
	}

	knight := Piece(BN)
	if attacker == games.PlayerOne {
		knight = WN
	}
	for _, d := range knightOffsets {
		nf, nr := f+d[0], r+d[1]
		if onBoard(nf, nr) && p.board[square(nf, nr)] == knight {
			return true
		}
	}

	king := Piece(BK)
	if attacker == games.PlayerOne {
		king = WK
	}
	for _, d := range kingOffsets {
		nf, nr := f+d[0], r+d[1]
		if onBoard(nf, nr) && p.board[square(nf, nr)] == king {
			return true
		}
	}

	bishopLike := [2]Piece{BB, BQ}
	rookLike := [2]Piece{BR, BQ}
	if attacker == games.PlayerOne {
		bishopLike = [2]Piece{WB, WQ}
		rookLike = [2]Piece{WR, WQ}
	}
	for _, d := range bishopDirs {
		if p.rayHits(f, r, d, bishopLike) {
			return true
		}
	}
	for _, d := range rookDirs {
		if p.rayHits(f, r, d, rookLike) {
			return true
		}
	}
	return false
}

func (p *Position) rayHits(f, r int, d [2]int, targets [2]Piece) bool {
	nf, nr := f+d[0], r+d[1]
	for onBoard(nf, nr) {
		pc := p.board[square(nf, nr)]
		if pc != Empty {
			return pc == targets[0] || pc == targets[1]
		}
		nf += d[0]
		nr += d[1]
	}
	return false
}

func (p *Position) inCheck(side games.Player) bool {
	sq := p.kingSquare(side)
	if sq < 0 {
		return false
	}
	return p.attacked(sq, side.Other())
}

var (
	knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingOffsets   = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	bishopDirs    = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs      = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// Winner reports checkmate only; stalemate and draws report ok=false.
func (p *Position) Winner() (games.Player, bool) {
	if len(p.LegalMoves()) > 0 {
		return 0, false
	}
	if p.inCheck(p.side) {
		return p.side.Other(), true
	}
	return 0, false // stalemate
}

var pieceValue = map[Piece]int32{WP: 1, WN: 3, WB: 3, WR: 5, WQ: 9, WK: 200}

func materialValue(kind Piece) int32 { return pieceValue[kind] }

var centerSquares = map[int]bool{
	square(3, 3): true, square(4, 3): true, square(3, 4): true, square(4, 4): true,
}

// StaticEval implements spec §4.3: 2*material + 1*center + 4*mobility.
func (p *Position) StaticEval() int32 {
	var material, center int32
	for sq := 0; sq < 64; sq++ {
		pc := p.board[sq]
		if pc == Empty {
			continue
		}
		v := materialValue(pc.kind())
		if pc.owner() == games.PlayerOne {
			material += v
			if centerSquares[sq] {
				center++
			}
		} else {
			material -= v
			if centerSquares[sq] {
				center--
			}
		}
	}

	mobilityWhite := int32(len(p.pseudoLegalMovesFor(games.PlayerOne)))
	mobilityBlack := int32(len(p.pseudoLegalMovesFor(games.PlayerTwo)))

	return 2*material + center + 4*(mobilityWhite-mobilityBlack)
}
