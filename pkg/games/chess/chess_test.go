package chess

import (
	"math/rand"
	"testing"

	"github.com/yourusername/stratengine/pkg/games"
	"github.com/yourusername/stratengine/pkg/search/mcts"
	"github.com/yourusername/stratengine/pkg/search/minimax"
)

func TestStartingPositionHas20LegalMoves(t *testing.T) {
	p := New()
	moves := p.LegalMoves()
	if len(moves) != 20 {
		t.Fatalf("expected 20 legal moves from the start, got %d", len(moves))
	}
}

func TestApplyUndoIdentity(t *testing.T) {
	p := New()
	before := *p
	for _, mv := range p.LegalMoves() {
		if err := p.Apply(mv); err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if err := p.Undo(mv); err != nil {
			t.Fatalf("Undo: %v", err)
		}
		if *p != before {
			t.Fatalf("apply;undo(%v) did not restore the position", mv)
		}
	}
}

func TestEnPassantCapture(t *testing.T) {
	p := New()
	// 1. e4 Nc6 2. e5 d5, white to capture e5xd6 en passant.
	play := func(from, to int) {
		var mv *Move
		for _, m := range p.LegalMoves() {
			cm := m.(*Move)
			if cm.From == from && cm.To == to {
				mv = cm
				break
			}
		}
		if mv == nil {
			t.Fatalf("no legal move %d->%d", from, to)
		}
		if err := p.Apply(mv); err != nil {
			t.Fatalf("Apply: %v", err)
		}
	}
	play(square(4, 1), square(4, 3))  // e2-e4
	play(square(1, 7), square(2, 5))  // Nb8-c6
	play(square(4, 3), square(4, 4))  // e4-e5
	play(square(3, 6), square(3, 4))  // d7-d5

	if p.epSquare != square(3, 5) {
		t.Fatalf("expected en passant target d6, got square %d", p.epSquare)
	}

	foundEP := false
	for _, mv := range p.LegalMoves() {
		cm := mv.(*Move)
		if cm.EnPassant {
			foundEP = true
			if err := p.Apply(cm); err != nil {
				t.Fatalf("Apply en passant: %v", err)
			}
			if p.board[square(3, 4)] != Empty {
				t.Fatalf("captured pawn still present after en passant")
			}
			if err := p.Undo(cm); err != nil {
				t.Fatalf("Undo en passant: %v", err)
			}
			if p.board[square(3, 4)] != BP {
				t.Fatalf("undo did not restore the captured pawn")
			}
		}
	}
	if !foundEP {
		t.Fatalf("expected an en passant capture to be legal")
	}
}

func TestCastlingKingsideRequiresEmptyAndSafeSquares(t *testing.T) {
	p := New()
	p.board[square(5, 0)] = Empty // f1
	p.board[square(6, 0)] = Empty // g1
	found := false
	for _, mv := range p.LegalMoves() {
		if mv.(*Move).CastleKingside {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected kingside castling to be legal with clear squares")
	}
}

func TestPromotionGeneratesAllFourPieces(t *testing.T) {
	p := &Position{epSquare: noEnPassant, side: games.PlayerOne, fullmoveNumber: 1}
	p.board[square(0, 6)] = WP
	p.board[square(0, 7)] = Empty
	count := 0
	for _, mv := range p.LegalMoves() {
		if mv.(*Move).Promotion != Empty {
			count++
		}
	}
	if count != 4 {
		t.Fatalf("expected 4 promotion moves, got %d", count)
	}
}

func TestCheckmateFoolsMate(t *testing.T) {
	p := New()
	play := func(from, to int) {
		var mv *Move
		for _, m := range p.LegalMoves() {
			cm := m.(*Move)
			if cm.From == from && cm.To == to {
				mv = cm
				break
			}
		}
		if mv == nil {
			t.Fatalf("no legal move %d->%d", from, to)
		}
		if err := p.Apply(mv); err != nil {
			t.Fatalf("Apply: %v", err)
		}
	}
	play(square(5, 1), square(5, 2))  // f2-f3
	play(square(4, 6), square(4, 4))  // e7-e5
	play(square(6, 1), square(6, 3))  // g2-g4
	play(square(3, 7), square(7, 3))  // Qd8-h4#

	winner, ok := p.Winner()
	if !ok || winner != games.PlayerTwo {
		t.Fatalf("expected black to have checkmated white, got winner=%v ok=%v", winner, ok)
	}
}

func TestStaticEvalSymmetricStart(t *testing.T) {
	p := New()
	if got := p.StaticEval(); got != 0 {
		t.Fatalf("expected 0 for symmetric starting position, got %d", got)
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
		t.Fatalf("round trip mismatch: %q", enc)
	}
}

func TestMinimaxReturnsALegalMove(t *testing.T) {
	p := New()
	mv, _, err := minimax.Recommend(p, 2)
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
	rng := rand.New(rand.NewSource(7))
	mv, err := mcts.Recommend(p, 200, 10, rng, nil)
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
