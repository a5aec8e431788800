package weiqi

import (
	"math/rand"
	"testing"

	"github.com/yourusername/stratengine/pkg/games"
	"github.com/yourusername/stratengine/pkg/search/mcts"
	"github.com/yourusername/stratengine/pkg/search/minimax"
)

func TestApplyUndoIdentityOnEmptyBoard(t *testing.T) {
	p := New()
	for _, mv := range p.LegalMoves() {
		before := *p
		if err := p.Apply(mv); err != nil {
			t.Fatalf("Apply(%v): %v", mv, err)
		}
		if err := p.Undo(mv); err != nil {
			t.Fatalf("Undo(%v): %v", mv, err)
		}
		if p.board != before.board || p.side != before.side || p.consecutivePasses != before.consecutivePasses {
			t.Fatalf("apply;undo(%v) did not restore the position", mv)
		}
	}
}

func TestCaptureRemovesSurroundedStone(t *testing.T) {
	p := New()
	// Surround a lone White stone at (1,1) with Black stones on all four
	// sides, then place the last liberty-removing Black stone.
	p.board[point(1, 1)] = games.PlayerTwo
	p.board[point(0, 1)] = games.PlayerOne
	p.board[point(2, 1)] = games.PlayerOne
	p.board[point(1, 0)] = games.PlayerOne
	p.side = games.PlayerOne
	mv := &Move{Point: point(1, 2)}
	if err := p.Apply(mv); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if p.board[point(1, 1)] != 0 {
		t.Fatalf("expected surrounded stone to be captured")
	}
	if p.capturedBy[0] != 1 {
		t.Fatalf("expected capturedBy[0] == 1, got %d", p.capturedBy[0])
	}
	if err := p.Undo(mv); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if p.board[point(1, 1)] != games.PlayerTwo {
		t.Fatalf("expected undo to restore the captured stone")
	}
}

func TestSuicideIsIllegal(t *testing.T) {
	p := New()
	// Black surrounds an empty point at (1,1); White may not play there.
	p.board[point(0, 1)] = games.PlayerOne
	p.board[point(2, 1)] = games.PlayerOne
	p.board[point(1, 0)] = games.PlayerOne
	p.board[point(1, 2)] = games.PlayerOne
	p.side = games.PlayerTwo
	for _, mv := range p.LegalMoves() {
		m := mv.(*Move)
		if m.Point == point(1, 1) {
			t.Fatalf("suicide move should not be legal")
		}
	}
}

func TestPassTwiceEndsGameAndScores(t *testing.T) {
	p := New()
	p.board[point(0, 0)] = games.PlayerOne
	if _, ok := p.Winner(); ok {
		t.Fatalf("game should not be over before two passes")
	}
	pass1 := &Move{Point: -1}
	pass2 := &Move{Point: -1}
	if err := p.Apply(pass1); err != nil {
		t.Fatalf("Apply pass1: %v", err)
	}
	if err := p.Apply(pass2); err != nil {
		t.Fatalf("Apply pass2: %v", err)
	}
	winner, ok := p.Winner()
	if !ok || winner != games.PlayerOne {
		t.Fatalf("expected player one to win after two passes, got %v, %v", winner, ok)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	p := New()
	mv := &Move{Point: point(3, 3)}
	if err := p.Apply(mv); err != nil {
		t.Fatalf("Apply: %v", err)
	}
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
	found := false
	for _, lm := range p.LegalMoves() {
		if lm.(*Move).Point == mv.(*Move).Point {
			found = true
		}
	}
	if !found {
		t.Fatalf("recommended move %v is not among legal moves", mv)
	}
}

func TestMCTSReturnsALegalMove(t *testing.T) {
	p := New()
	rng := rand.New(rand.NewSource(11))
	mv, err := mcts.Recommend(p, 40, 20, rng, nil)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	found := false
	for _, lm := range p.LegalMoves() {
		if lm.(*Move).Point == mv.(*Move).Point {
			found = true
		}
	}
	if !found {
		t.Fatalf("recommended move %v is not among legal moves", mv)
	}
}
