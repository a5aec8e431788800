package weiqi

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/yourusername/stratengine/pkg/games"
)

type game struct{}

// Game is the weiqi games.Game implementation, registered as "go".
var Game games.Game = game{}

func (game) Name() string { return "go" }

// Parse decodes the SGF-influenced encoding of spec §6:
//
//	PL[<side>]AB[<pt>]...AW[<pt>]...XB[<captures>]XW[<captures>]XS<history>
//
// side ∈ {B, W}; AB/AW list placed stones as bracketed two-letter points
// a..s; XB/XW carry each side's capture tally; XS is a comma-separated list
// of prior board snapshots used for positional superko.
func (game) Parse(encoded string) (games.Position, error) {
	rest := encoded

	rest, side, err := cutField(rest, "PL[", "]")
	if err != nil {
		return nil, err
	}
	p := &Position{}
	switch side {
	case "B":
		p.side = games.PlayerOne
	case "W":
		p.side = games.PlayerTwo
	default:
		return nil, fmt.Errorf("%w: bad side-to-move %q", games.ErrParse, side)
	}

	rest, blackPts, err := cutPoints(rest, "AB")
	if err != nil {
		return nil, err
	}
	for _, pt := range blackPts {
		sq, err := parsePoint(pt)
		if err != nil {
			return nil, err
		}
		p.board[sq] = games.PlayerOne
	}

	rest, whitePts, err := cutPoints(rest, "AW")
	if err != nil {
		return nil, err
	}
	for _, pt := range whitePts {
		sq, err := parsePoint(pt)
		if err != nil {
			return nil, err
		}
		if p.board[sq] != 0 {
			return nil, fmt.Errorf("%w: point %s occupied by both colors", games.ErrParse, pt)
		}
		p.board[sq] = games.PlayerTwo
	}

	rest, xb, err := cutField(rest, "XB[", "]")
	if err != nil {
		return nil, err
	}
	if p.capturedBy[0], err = strconv.Atoi(xb); err != nil {
		return nil, fmt.Errorf("%w: bad XB count: %v", games.ErrParse, err)
	}

	rest, xw, err := cutField(rest, "XW[", "]")
	if err != nil {
		return nil, err
	}
	if p.capturedBy[1], err = strconv.Atoi(xw); err != nil {
		return nil, fmt.Errorf("%w: bad XW count: %v", games.ErrParse, err)
	}

	if !strings.HasPrefix(rest, "XS") {
		return nil, fmt.Errorf("%w: missing XS history field", games.ErrParse)
	}
	hist := rest[len("XS"):]
	if hist != "" {
		for _, snap := range strings.Split(hist, ",") {
			if len(snap) != numPoints {
				return nil, fmt.Errorf("%w: history snapshot has length %d, want %d", games.ErrParse, len(snap), numPoints)
			}
			p.history = append(p.history, snap)
		}
	}
	p.history = append(p.history, p.signature())

	return p, nil
}

// cutField requires rest to start with prefix, and returns the remainder of
// rest after the closing suffix along with the text in between.
func cutField(rest, prefix, suffix string) (remainder, value string, err error) {
	if !strings.HasPrefix(rest, prefix) {
		return "", "", fmt.Errorf("%w: expected %q", games.ErrParse, prefix)
	}
	rest = rest[len(prefix):]
	idx := strings.Index(rest, suffix)
	if idx < 0 {
		return "", "", fmt.Errorf("%w: unterminated %q field", games.ErrParse, prefix)
	}
	return rest[idx+len(suffix):], rest[:idx], nil
}

// cutPoints requires rest to start with tag, then reads zero or more
// "[xx]" bracketed two-letter points until a non-bracket byte is reached.
func cutPoints(rest, tag string) (remainder string, points []string, err error) {
	if !strings.HasPrefix(rest, tag) {
		return "", nil, fmt.Errorf("%w: expected %q", games.ErrParse, tag)
	}
	rest = rest[len(tag):]
	for strings.HasPrefix(rest, "[") {
		idx := strings.Index(rest, "]")
		if idx < 0 {
			return "", nil, fmt.Errorf("%w: unterminated %q point", games.ErrParse, tag)
		}
		points = append(points, rest[1:idx])
		rest = rest[idx+1:]
	}
	return rest, points, nil
}

func parsePoint(pt string) (int, error) {
	if len(pt) != 2 {
		return 0, fmt.Errorf("%w: bad point %q", games.ErrParse, pt)
	}
	c, r := int(pt[0]-'a'), int(pt[1]-'a')
	if !onBoard(c, r) {
		return 0, fmt.Errorf("%w: point %q off the board", games.ErrParse, pt)
	}
	return point(c, r), nil
}

// Encode renders p in the SGF-influenced encoding of spec §6.
func Encode(p *Position) string {
	var sb strings.Builder
	if p.side == games.PlayerOne {
		sb.WriteString("PL[B]")
	} else {
		sb.WriteString("PL[W]")
	}

	sb.WriteString("AB")
	for sq, owner := range p.board {
		if owner == games.PlayerOne {
			sb.WriteString("[" + pointName(sq) + "]")
		}
	}
	sb.WriteString("AW")
	for sq, owner := range p.board {
		if owner == games.PlayerTwo {
			sb.WriteString("[" + pointName(sq) + "]")
		}
	}

	fmt.Fprintf(&sb, "XB[%d]XW[%d]XS", p.capturedBy[0], p.capturedBy[1])
	if len(p.history) > 1 {
		sb.WriteString(strings.Join(p.history[:len(p.history)-1], ","))
	}
	return sb.String()
}

// Opening only recognizes the empty starting position (a full joseki table
// is out of scope, spec §4.5 Non-goals).
func (game) Opening(pos games.Position, rng *rand.Rand) (games.Move, bool) {
	p, ok := pos.(*Position)
	if !ok {
		return nil, false
	}
	for _, owner := range p.board {
		if owner != 0 {
			return nil, false
		}
	}
	entries := openingBook
	return entries[rng.Intn(len(entries))], true
}
