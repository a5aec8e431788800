package xiangqi

import (
	"math/rand"
	"testing"

	"github.com/yourusername/stratengine/pkg/search/mcts"
	"github.com/yourusername/stratengine/pkg/search/minimax"
)

func TestApplyUndoIdentity(t *testing.T) {
	p := New()
	for _, mv := range p.LegalMoves() {
		before := *p
		if err := p.Apply(mv); err != nil {
			t.Fatalf("Apply(%v): %v", mv, err)
		}
		if err := p.Undo(mv); err != nil {
			t.Fatalf("Undo(%v): %v", mv, err)
		}
		if p.board != before.board || p.side != before.side {
			t.Fatalf("apply;undo(%v) did not restore the position", mv)
		}
	}
}

func TestStartingPositionCannonCapturesOnlyByScreenJump(t *testing.T) {
	p := New()
	// At the start, each Red cannon's only capture is the Black horse at the
	// far end of its file, jumping the Black cannon as the screen.
	captures := 0
	for _, mv := range p.LegalMoves() {
		m := mv.(*Move)
		if p.board[m.From].Kind == Cannon && p.board[m.To].Kind != NoKind {
			captures++
			if p.board[m.To].Kind != Horse || file(m.To) != file(m.From) || rank(m.To) != 9 {
				t.Fatalf("unexpected cannon capture at start: %v", m)
			}
		}
	}
	if captures != 2 {
		t.Fatalf("expected 2 cannon captures at start, got %d", captures)
	}
}

func TestElephantCannotCrossRiver(t *testing.T) {
	p := New()
	for _, mv := range p.LegalMoves() {
		m := mv.(*Move)
		if p.board[m.From].Kind == Elephant && !ownSide(p.board[m.From].Owner, rank(m.To)) {
			t.Fatalf("elephant move %v crosses the river", m)
		}
	}
}

func TestSoldierCannotMoveSidewaysBeforeCrossing(t *testing.T) {
	p := New()
	for _, mv := range p.LegalMoves() {
		m := mv.(*Move)
		c := p.board[m.From]
		if c.Kind == Soldier && !crossedRiver(c.Owner, rank(m.From)) && file(m.From) != file(m.To) {
			t.Fatalf("uncrossed soldier %v should not move sideways", m)
		}
	}
}

func TestKingConfinedToPalace(t *testing.T) {
	p := New()
	for _, mv := range p.LegalMoves() {
		m := mv.(*Move)
		c := p.board[m.From]
		if c.Kind == King && p.board[m.To].Kind != King {
			if !inPalace(c.Owner, file(m.To), rank(m.To)) {
				t.Fatalf("king move %v leaves the palace", m)
			}
		}
	}
}

func TestFENRoundTrip(t *testing.T) {
	p := New()
	enc := Encode(p)
	reparsed, err := Game.Parse(enc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if Encode(reparsed.(*Position)) != enc {
		t.Fatalf("round trip mismatch: %q vs %q", enc, Encode(reparsed.(*Position)))
	}
}

func TestNotateCentralCannon(t *testing.T) {
	p := New()
	m := &Move{From: square(7, 2), To: square(4, 2)}
	got := p.Notate(m)
	if got != "C2=5" {
		t.Fatalf("Notate(central cannon) = %q, want C2=5", got)
	}
}

func TestMinimaxReturnsALegalMove(t *testing.T) {
	p := New()
	mv, _, err := minimax.Recommend(p, 1)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	found := false
	for _, lm := range p.LegalMoves() {
		if lm.(*Move).From == mv.(*Move).From && lm.(*Move).To == mv.(*Move).To {
			found = true
		}
	}
	if !found {
		t.Fatalf("recommended move %v is not among legal moves", mv)
	}
}

func TestMCTSReturnsALegalMove(t *testing.T) {
	p := New()
	rng := rand.New(rand.NewSource(7))
	mv, err := mcts.Recommend(p, 80, 10, rng, nil)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	found := false
	for _, lm := range p.LegalMoves() {
		if lm.(*Move).From == mv.(*Move).From && lm.(*Move).To == mv.(*Move).To {
			found = true
		}
	}
	if !found {
		t.Fatalf("recommended move %v is not among legal moves", mv)
	}
}
