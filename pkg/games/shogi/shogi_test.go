package shogi

import (
	"math/rand"
	"testing"

	"github.com/yourusername/stratengine/pkg/games"
	"github.com/yourusername/stratengine/pkg/search/mcts"
	"github.com/yourusername/stratengine/pkg/search/minimax"
)

func TestApplyUndoIdentity(t *testing.T) {
	p := New()
	for _, mv := range p.LegalMoves() {
		before := *p.Clone().(*Position)
		if err := p.Apply(mv); err != nil {
			t.Fatalf("Apply(%v): %v", mv, err)
		}
		if err := p.Undo(mv); err != nil {
			t.Fatalf("Undo(%v): %v", mv, err)
		}
		if p.board != before.board || p.side != before.side {
			t.Fatalf("apply;undo(%v) did not restore the board", mv)
		}
		for k := range before.hand[0] {
			if p.hand[0][k] != before.hand[0][k] {
				t.Fatalf("apply;undo(%v) did not restore hand[0]", mv)
			}
		}
	}
}

func TestPawnDropRejectsSecondPawnOnFile(t *testing.T) {
	p := New()
	p.hand[0][Pawn] = 1
	// Player one already has an unpromoted pawn on every file at rank 6.
	for _, mv := range p.LegalMoves() {
		m := mv.(*Move)
		if m.From == -1 && m.Drop == Pawn {
			t.Fatalf("expected no legal pawn drops with a pawn already on every file, got %v", m)
		}
	}
}

func TestPawnDropLegalOnClearedFile(t *testing.T) {
	p := New()
	p.board[square(0, 6)] = empty // remove Black's file-0 pawn
	p.hand[0][Pawn] = 1
	found := false
	for _, mv := range p.LegalMoves() {
		m := mv.(*Move)
		if m.From == -1 && m.Drop == Pawn && file(m.To) == 0 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a legal pawn drop on the cleared file")
	}
}

func TestCaptureAddsToHand(t *testing.T) {
	p := New()
	// Black pawn at (0,6) captures... simpler: directly stage a capture.
	p.board[square(0, 5)] = Cell{Pawn, games.PlayerTwo}
	mv := &Move{From: square(0, 6), To: square(0, 5)}
	if err := p.Apply(mv); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if p.hand[0][Pawn] != 1 {
		t.Fatalf("expected captured pawn added to hand, got %d", p.hand[0][Pawn])
	}
	if err := p.Undo(mv); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if p.hand[0][Pawn] != 0 {
		t.Fatalf("expected undo to remove the pawn from hand, got %d", p.hand[0][Pawn])
	}
	if p.board[square(0, 5)].Kind != Pawn || p.board[square(0, 5)].Owner != games.PlayerTwo {
		t.Fatalf("expected undo to restore the captured piece")
	}
}

func TestSFENRoundTrip(t *testing.T) {
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

func TestMinimaxReturnsALegalMove(t *testing.T) {
	p := New()
	mv, _, err := minimax.Recommend(p, 1)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
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

func TestMCTSReturnsALegalMove(t *testing.T) {
	p := New()
	rng := rand.New(rand.NewSource(3))
	mv, err := mcts.Recommend(p, 100, 10, rng, nil)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
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
