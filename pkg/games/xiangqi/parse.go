package xiangqi

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/yourusername/stratengine/pkg/games"
)

type game struct{}

// Game is the xiangqi games.Game implementation, registered as "xiangqi".
var Game games.Game = game{}

func (game) Name() string { return "xiangqi" }

var fenLetters = map[byte]Kind{
	'k': King, 'a': Advisor, 'e': Elephant, 'h': Horse, 'r': Chariot, 'c': Cannon, 'p': Soldier,
}

var kindFEN = map[Kind]byte{
	King: 'k', Advisor: 'a', Elephant: 'e', Horse: 'h', Chariot: 'r', Cannon: 'c', Soldier: 'p',
}

// Parse decodes the FEN-like encoding of spec §6
// (`rheakaehr/…/RHEAKAEHR w - - 0 0`): 10 ranks, rank 9 (Black's back rank)
// listed first, rank 0 (Red's back rank) listed last.
func (game) Parse(encoded string) (games.Position, error) {
	fields := strings.Fields(encoded)
	if len(fields) != 5 {
		return nil, fmt.Errorf("%w: expected 5 fields, got %d", games.ErrParse, len(fields))
	}

	rows := strings.Split(fields[0], "/")
	if len(rows) != 10 {
		return nil, fmt.Errorf("%w: expected 10 ranks, got %d", games.ErrParse, len(rows))
	}

	p := &Position{}
	for i, row := range rows {
		r := 9 - i
		f := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '9' {
				f += int(ch - '0')
				continue
			}
			kind, ok := fenLetters[lower(ch)]
			if !ok {
				return nil, fmt.Errorf("%w: bad piece letter %q", games.ErrParse, ch)
			}
			if f >= 9 {
				return nil, fmt.Errorf("%w: rank %d overflows", games.ErrParse, r)
			}
			owner := games.PlayerTwo
			if isUpper(ch) {
				owner = games.PlayerOne
			}
			p.board[square(f, r)] = Cell{kind, owner}
			f++
		}
		if f != 9 {
			return nil, fmt.Errorf("%w: rank %d has %d files, want 9", games.ErrParse, r, f)
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

	if fields[2] != "-" || fields[3] != "-" {
		return nil, fmt.Errorf("%w: xiangqi has no castling/en-passant fields", games.ErrParse)
	}
	if _, err := strconv.Atoi(fields[4]); err != nil {
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

// Encode renders p in the FEN-like encoding of spec §6.
func Encode(p *Position) string {
	var sb strings.Builder
	for i := 0; i < 10; i++ {
		r := 9 - i
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
			letter := kindFEN[c.Kind]
			if c.Owner == games.PlayerOne {
				letter -= 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		if empties > 0 {
			sb.WriteString(strconv.Itoa(empties))
		}
		if i < 9 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.side == games.PlayerOne {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 0")
	return sb.String()
}

// Opening only recognizes the standard starting position (xiangqi's opening
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
