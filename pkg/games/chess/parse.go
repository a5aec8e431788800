package chess

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/yourusername/stratengine/pkg/games"
)

type game struct{}

// Game is the chess games.Game implementation, registered under the name
// "chess".
var Game games.Game = game{}

func (game) Name() string { return "chess" }

var fenPieces = map[rune]Piece{
	'P': WP, 'N': WN, 'B': WB, 'R': WR, 'Q': WQ, 'K': WK,
	'p': BP, 'n': BN, 'b': BB, 'r': BR, 'q': BQ, 'k': BK,
}

var fenLetters = map[Piece]rune{
	WP: 'P', WN: 'N', WB: 'B', WR: 'R', WQ: 'Q', WK: 'K',
	BP: 'p', BN: 'n', BB: 'b', BR: 'r', BQ: 'q', BK: 'k',
}

// Parse decodes a Forsyth-Edwards (FEN) string into a Position.
func (game) Parse(encoded string) (games.Position, error) {
	fields := strings.Fields(encoded)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: expected 6 FEN fields, got %d", games.ErrParse, len(fields))
	}

	p := &Position{epSquare: noEnPassant}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", games.ErrParse, len(ranks))
	}
	for i, row := range ranks {
		r := 7 - i
		f := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				f += int(c - '0')
				continue
			}
			pc, ok := fenPieces[c]
			if !ok {
				return nil, fmt.Errorf("%w: bad piece letter %q", games.ErrParse, c)
			}
			if f >= 8 {
				return nil, fmt.Errorf("%w: rank %d overflows", games.ErrParse, i)
			}
			p.board[square(f, r)] = pc
			f++
		}
		if f != 8 {
			return nil, fmt.Errorf("%w: rank %d has %d files, want 8", games.ErrParse, i, f)
		}
	}

	switch fields[1] {
	case "w":
		p.side = games.PlayerOne
	case "b":
		p.side = games.PlayerTwo
	default:
		return nil, fmt.Errorf("%w: bad side-to-move %q", games.ErrParse, fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			switch c {
			case 'K':
				p.castleWK = true
			case 'Q':
				p.castleWQ = true
			case 'k':
				p.castleBK = true
			case 'q':
				p.castleBQ = true
			default:
				return nil, fmt.Errorf("%w: bad castling flag %q", games.ErrParse, c)
			}
		}
	}

	if fields[3] == "-" {
		p.epSquare = noEnPassant
	} else {
		sq, err := parseSquareName(fields[3])
		if err != nil {
			return nil, err
		}
		p.epSquare = sq
	}

	half, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("%w: bad halfmove clock: %v", games.ErrParse, err)
	}
	p.halfmoveClock = half

	full, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("%w: bad fullmove number: %v", games.ErrParse, err)
	}
	p.fullmoveNumber = full

	return p, nil
}

func parseSquareName(s string) (int, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: bad square %q", games.ErrParse, s)
	}
	f := int(s[0] - 'a')
	r := int(s[1] - '1')
	if !onBoard(f, r) {
		return 0, fmt.Errorf("%w: bad square %q", games.ErrParse, s)
	}
	return square(f, r), nil
}

// Encode renders p as a FEN string.
func Encode(p *Position) string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			pc := p.board[square(f, r)]
			if pc == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(fenLetters[pc])
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.side == games.PlayerOne {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	rights := ""
	if p.castleWK {
		rights += "K"
	}
	if p.castleWQ {
		rights += "Q"
	}
	if p.castleBK {
		rights += "k"
	}
	if p.castleBQ {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	sb.WriteByte(' ')
	if p.epSquare == noEnPassant {
		sb.WriteByte('-')
	} else {
		sb.WriteString(squareName(p.epSquare))
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))

	return sb.String()
}

// Opening looks up the book reply for the starting position only; chess's
// opening theory tree is otherwise out of scope (spec §4.5 Non-goals).
func (game) Opening(pos games.Position, rng *rand.Rand) (games.Move, bool) {
	p, ok := pos.(*Position)
	if !ok {
		return nil, false
	}
	if Encode(p) != Encode(New()) {
		return nil, false
	}
	entries := openingBook
	return entries[rng.Intn(len(entries))], true
}
