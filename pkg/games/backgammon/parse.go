package backgammon

import (
	"fmt"
	"math/rand"

	"github.com/yourusername/stratengine/pkg/games"
)

type game struct{}

// Game is the backgammon games.Game implementation.
var Game games.Game = game{}

func (game) Name() string { return "backgammon" }

func hexDigit(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return uint8(c - '0'), nil
	case c >= 'a' && c <= 'f':
		return uint8(c-'a') + 10, nil
	default:
		return 0, fmt.Errorf("%w: invalid hex digit %q", games.ErrParse, c)
	}
}

// Parse decodes the 55-character encoding of spec §6.
func (game) Parse(encoded string) (games.Position, error) {
	if len(encoded) != 55 {
		return nil, fmt.Errorf("%w: backgammon position must be 55 characters, got %d", games.ErrParse, len(encoded))
	}
	p := &Position{}
	for n := 1; n <= 24; n++ {
		off := (n - 1) * 2
		c1, err := hexDigit(encoded[off])
		if err != nil {
			return nil, err
		}
		c2, err := hexDigit(encoded[off+1])
		if err != nil {
			return nil, err
		}
		if c1 > 0 && c2 > 0 {
			return nil, fmt.Errorf("%w: point %d has both players present", games.ErrParse, n)
		}
		p.Points[idx(n)] = Point{P1: c1, P2: c2}
	}
	barOff := 48
	b1, err := hexDigit(encoded[barOff])
	if err != nil {
		return nil, err
	}
	b2, err := hexDigit(encoded[barOff+1])
	if err != nil {
		return nil, err
	}
	p.Bar = [2]uint8{b1, b2}

	offOff := 50
	o1, err := hexDigit(encoded[offOff])
	if err != nil {
		return nil, err
	}
	o2, err := hexDigit(encoded[offOff+1])
	if err != nil {
		return nil, err
	}
	p.Off = [2]uint8{o1, o2}

	diceOff := 52
	for i := 0; i < 2; i++ {
		c := encoded[diceOff+i]
		if c == '-' {
			p.Dice[i] = 0
			continue
		}
		if c < '1' || c > '6' {
			return nil, fmt.Errorf("%w: invalid die character %q", games.ErrParse, c)
		}
		p.Dice[i] = int(c - '0')
	}

	switch encoded[54] {
	case '1':
		p.side = games.PlayerOne
	case '2':
		p.side = games.PlayerTwo
	default:
		return nil, fmt.Errorf("%w: invalid side-to-move character %q", games.ErrParse, encoded[54])
	}

	var total [2]int
	for n := 1; n <= 24; n++ {
		pt := p.point(n)
		total[0] += int(pt.P1)
		total[1] += int(pt.P2)
	}
	total[0] += int(p.Bar[0]) + int(p.Off[0])
	total[1] += int(p.Bar[1]) + int(p.Off[1])
	if total[0] != 15 || total[1] != 15 {
		return nil, fmt.Errorf("%w: each player must have exactly 15 checkers, got %v", games.ErrParse, total)
	}

	return p, nil
}

// Encode renders a Position back into the §6 wire format.
func Encode(p *Position) string {
	hex := "0123456789abcdef"
	buf := make([]byte, 55)
	for n := 1; n <= 24; n++ {
		pt := p.point(n)
		off := (n - 1) * 2
		buf[off] = hex[pt.P1]
		buf[off+1] = hex[pt.P2]
	}
	buf[48] = hex[p.Bar[0]]
	buf[49] = hex[p.Bar[1]]
	buf[50] = hex[p.Off[0]]
	buf[51] = hex[p.Off[1]]
	for i := 0; i < 2; i++ {
		if p.Dice[i] == 0 {
			buf[52+i] = '-'
		} else {
			buf[52+i] = byte('0' + p.Dice[i])
		}
	}
	if p.side == games.PlayerOne {
		buf[54] = '1'
	} else {
		buf[54] = '2'
	}
	return string(buf)
}

func (game) Opening(pos games.Position, rng *rand.Rand) (games.Move, bool) {
	p, ok := pos.(*Position)
	if !ok || p.Dice[0] == 0 || p.Dice[0] == p.Dice[1] {
		return nil, false
	}
	if !isStartingPosition(p) {
		return nil, false
	}
	d1, d2 := p.Dice[0], p.Dice[1]
	if d2 > d1 {
		d1, d2 = d2, d1
	}
	entries, ok := openingBook[d1*10+d2]
	if !ok || len(entries) == 0 {
		return nil, false
	}
	chosen := entries[rng.Intn(len(entries))]
	chosen.Dice = p.Dice
	return &chosen, true
}

func isStartingPosition(p *Position) bool {
	start := New()
	for n := 1; n <= 24; n++ {
		if *p.point(n) != *start.point(n) {
			return false
		}
	}
	return p.Bar == start.Bar && p.Off == start.Off
}
