package backgammon

import (
	"testing"

	"github.com/yourusername/stratengine/pkg/games"
)

func TestStartingPositionChecksumBalance(t *testing.T) {
	p := New()
	var total [2]int
	for n := 1; n <= 24; n++ {
		pt := p.point(n)
		total[0] += int(pt.P1)
		total[1] += int(pt.P2)
	}
	if total[0] != 15 || total[1] != 15 {
		t.Fatalf("expected 15 checkers per player, got %v", total)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	p := New()
	p.Dice = [2]int{3, 1}
	enc := Encode(p)
	if len(enc) != 55 {
		t.Fatalf("expected 55-character encoding, got %d", len(enc))
	}
	reparsed, err := Game.Parse(enc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if Encode(reparsed.(*Position)) != enc {
		t.Fatalf("round trip mismatch")
	}
}

func TestLegalMovesUseBothDice(t *testing.T) {
	p := New()
	p.Dice = [2]int{3, 1}
	moves := p.LegalMoves()
	if len(moves) == 0 {
		t.Fatalf("expected legal moves from the starting position with 3-1")
	}
	for _, mv := range moves {
		m := mv.(*Move)
		if len(m.Subs) != 2 {
			t.Errorf("expected both dice used, got %d submoves in %v", len(m.Subs), m)
		}
	}
}

func TestBarEntryIsForced(t *testing.T) {
	p := New()
	p.Bar[0] = 1
	p.setCount(games.PlayerOne, 24, p.count(games.PlayerOne, 24)-1)
	p.Dice = [2]int{3, 1}
	moves := p.LegalMoves()
	if len(moves) == 0 {
		t.Fatalf("expected at least one legal entry from the bar")
	}
	for _, mv := range moves {
		m := mv.(*Move)
		foundEntry := false
		for _, s := range m.Subs {
			if s.from == pointBar {
				foundEntry = true
			}
		}
		if !foundEntry {
			t.Errorf("move %v does not enter from the bar", m)
		}
	}
}

func TestApplyUndoIdentity(t *testing.T) {
	p := New()
	p.Dice = [2]int{6, 5}
	moves := p.LegalMoves()
	if len(moves) == 0 {
		t.Fatalf("expected legal moves for 6-5")
	}
	before := *p
	mv := moves[0]
	if err := p.Apply(mv); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if err := p.Undo(mv); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if *p != before {
		t.Fatalf("apply;undo did not restore the position")
	}
}

func TestMinimaxReturnsALegalMove(t *testing.T) {
	p := New()
	p.Dice = [2]int{3, 1}
	mv, err := MinimaxRecommend(p, 1)
	if err != nil {
		t.Fatalf("MinimaxRecommend: %v", err)
	}
	legal := p.LegalMoves()
	found := false
	for _, lm := range legal {
		if lm.(*Move).String() == mv.(*Move).String() {
			found = true
		}
	}
	if !found {
		t.Fatalf("recommended move %v is not among legal moves", mv)
	}
}

func TestOpeningBookCoversAllNonDoubleRolls(t *testing.T) {
	for d1 := 1; d1 <= 6; d1++ {
		for d2 := 1; d2 < d1; d2++ {
			key := d1*10 + d2
			if _, ok := openingBook[key]; !ok {
				t.Errorf("missing opening entry for roll %d-%d", d1, d2)
			}
		}
	}
}
