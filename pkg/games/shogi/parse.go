package shogi

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/yourusername/stratengine/pkg/games"
)

type game struct{}

// Game is the shogi games.Game implementation, registered as "shogi".
var Game games.Game = game{}

func (game) Name() string { return "shogi" }

var sfenLetters = map[byte]Kind{
	'p': Pawn, 'l': Lance, 'n': Knight, 's': Silver, 'g': Gold, 'b': Bishop, 'r': Rook, 'k': King,
}

var kindSFEN = map[Kind]byte{
	Pawn: 'p', Lance: 'l', Knight: 'n', Silver: 's', Gold: 'g', Bishop: 'b', Rook: 'r', King: 'k',
}

// Parse decodes a standard SFEN string (board, side, hand, move number).
func (game) Parse(encoded string) (games.Position, error) {
	fields := strings.Fields(encoded)
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: expected 4 SFEN fields, got %d", games.ErrParse, len(fields))
	}

	p := &Position{}
	p.hand[0] = map[Kind]int{}
	p.hand[1] = map[Kind]int{}

	rows := strings.Split(fields[0], "/")
	if len(rows) != 9 {
		return nil, fmt.Errorf("%w: expected 9 ranks, got %d", games.ErrParse, len(rows))
	}
	for r, row := range rows {
		f := 0
		promoted := false
		for i := 0; i < len(row); i++ {
			ch := row[i]
			switch {
			case ch == '+':
				promoted = true
			case ch >= '1' && ch <= '9':
				f += int(ch - '0')
			default:
				kind, ok := sfenLetters[lower(ch)]
				if !ok {
					return nil, fmt.Errorf("%w: bad piece letter %q", games.ErrParse, ch)
				}
				if promoted {
					pk, ok := promotes[kind]
					if !ok {
						return nil, fmt.Errorf("%w: %q cannot be promoted", games.ErrParse, ch)
					}
					kind = pk
					promoted = false
				}
				owner := games.PlayerTwo
				if isUpper(ch) {
					owner = games.PlayerOne
				}
				if f >= 9 {
					return nil, fmt.Errorf("%w: rank %d overflows", games.ErrParse, r)
				}
				p.board[square(f, r)] = Cell{kind, owner}
				f++
			}
		}
		if f != 9 {
			return nil, fmt.Errorf("%w: rank %d has %d files, want 9", games.ErrParse, r, f)
		}
	}

	switch fields[1] {
	case "b":
		p.side = games.PlayerOne
	case "w":
		p.side = games.PlayerTwo
	default:
		return nil, fmt.Errorf("%w: bad side-to-move %q", games.ErrParse, fields[1])
	}

	if fields[2] != "-" {
		count := 0
		for i := 0; i < len(fields[2]); i++ {
			ch := fields[2][i]
			if ch >= '0' && ch <= '9' {
				count = count*10 + int(ch-'0')
				continue
			}
			kind, ok := sfenLetters[lower(ch)]
			if !ok {
				return nil, fmt.Errorf("%w: bad hand piece %q", games.ErrParse, ch)
			}
			if count == 0 {
				count = 1
			}
			idx := 1
			if isUpper(ch) {
				idx = 0
			}
			p.hand[idx][kind] += count
			count = 0
		}
	}

	if _, err := strconv.Atoi(fields[3]); err != nil {
		return nil, fmt.Errorf("%w: bad move number: %v", games.ErrParse, err)
	}

	return p, nil
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// Encode renders p as an SFEN string.
func Encode(p *Position) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		empties := 0
		for f := 0; f < 9; f++ {
			c := p.board[square(f, r)]
			if c.Kind == NoKind {
				empties++
				continue
			}
			if empties > 0 {
				sb.WriteString(strconv.Itoa(empties))
				empties = 0
			}
			letter := kindSFEN[demoted(c.Kind)]
			if c.Kind.isPromoted() {
				sb.WriteByte('+')
			}
			if c.Owner == games.PlayerOne {
				sb.WriteByte(letter - ('a' - 'A'))
			} else {
				sb.WriteByte(letter)
			}
		}
		if empties > 0 {
			sb.WriteString(strconv.Itoa(empties))
		}
		if r < 8 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.side == games.PlayerOne {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}

	sb.WriteByte(' ')
	handStr := encodeHand(p)
	sb.WriteString(handStr)

	sb.WriteString(" 1")
	return sb.String()
}

func encodeHand(p *Position) string {
	var sb strings.Builder
	order := []Kind{Rook, Bishop, Gold, Silver, Knight, Lance, Pawn}
	for _, k := range order {
		if n := p.hand[0][k]; n > 0 {
			if n > 1 {
				sb.WriteString(strconv.Itoa(n))
			}
			sb.WriteByte(kindSFEN[k] - ('a' - 'A'))
		}
	}
	for _, k := range order {
		if n := p.hand[1][k]; n > 0 {
			if n > 1 {
				sb.WriteString(strconv.Itoa(n))
			}
			sb.WriteByte(kindSFEN[k])
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// Opening only recognizes the standard starting position (shogi's opening
// theory tree is out of scope, spec §4.5 Non-goals).
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
