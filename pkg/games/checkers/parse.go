package checkers

import (
	"fmt"
	"math/rand"

	"github.com/yourusername/stratengine/pkg/games"
)

// game implements games.Game for checkers.
type game struct{}

// Game is the checkers games.Game implementation.
var Game games.Game = game{}

func (game) Name() string { return "checkers" }

// Parse decodes the 33-character encoding of spec §6: 32 square
// characters followed by a side-to-move character.
func (game) Parse(encoded string) (games.Position, error) {
	if len(encoded) != 33 {
		return nil, fmt.Errorf("%w: checkers position must be 33 characters, got %d", games.ErrParse, len(encoded))
	}
	p := &Position{}
	for i := 0; i < 32; i++ {
		switch encoded[i] {
		case '-':
			p.squares[i+1] = Empty
		case 'b':
			p.squares[i+1] = BlackMan
		case 'B':
			p.squares[i+1] = BlackKing
		case 'w':
			p.squares[i+1] = WhiteMan
		case 'W':
			p.squares[i+1] = WhiteKing
		default:
			return nil, fmt.Errorf("%w: invalid square character %q at position %d", games.ErrParse, encoded[i], i)
		}
	}
	switch encoded[32] {
	case 'b':
		p.side = games.PlayerOne
	case 'w':
		p.side = games.PlayerTwo
	default:
		return nil, fmt.Errorf("%w: invalid side-to-move character %q", games.ErrParse, encoded[32])
	}
	return p, nil
}

// Encode renders a Position back into the §6 wire format.
func Encode(p *Position) string {
	buf := make([]byte, 33)
	for i := 1; i <= 32; i++ {
		var c byte
		switch p.squares[i] {
		case Empty:
			c = '-'
		case BlackMan:
			c = 'b'
		case BlackKing:
			c = 'B'
		case WhiteMan:
			c = 'w'
		case WhiteKing:
			c = 'W'
		}
		buf[i-1] = c
	}
	if p.side == games.PlayerOne {
		buf[32] = 'b'
	} else {
		buf[32] = 'w'
	}
	return string(buf)
}

func (game) Opening(pos games.Position, rng *rand.Rand) (games.Move, bool) {
	p, ok := pos.(*Position)
	if !ok {
		return nil, false
	}
	entry, ok := openingBook[Encode(p)]
	if !ok || len(entry) == 0 {
		return nil, false
	}
	return entry[rng.Intn(len(entry))], true
}
