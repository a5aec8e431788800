package checkers

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/yourusername/stratengine/pkg/games"
	"github.com/yourusername/stratengine/pkg/search/mcts"
	"github.com/yourusername/stratengine/pkg/search/minimax"
)

// encodeRaw builds a 33-char position string with pieces placed at the
// given squares, mirroring the scenario in spec §8 ("Checkers MCTS"): a
// position with exactly one legal jump.
func encodeRaw(pieces map[int]byte, side byte) string {
	buf := make([]byte, 33)
	for i := range buf[:32] {
		buf[i] = '-'
	}
	for sq, c := range pieces {
		buf[sq-1] = c
	}
	buf[32] = side
	return string(buf)
}

func forcedJumpPosition(t *testing.T) *Position {
	t.Helper()
	enc := encodeRaw(map[int]byte{18: 'w', 14: 'b'}, 'w')
	pos, err := Game.Parse(enc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return pos.(*Position)
}

func TestForcedCapture(t *testing.T) {
	pos := forcedJumpPosition(t)
	moves := pos.LegalMoves()
	if len(moves) != 1 {
		t.Fatalf("expected exactly one forced jump, got %d: %v", len(moves), moves)
	}
	m := moves[0].(*Move)
	if m.From != 18 || len(m.To) != 1 || m.To[0] != 9 || len(m.Captured) != 1 || m.Captured[0] != 14 {
		t.Fatalf("unexpected jump: %+v", m)
	}
}

func TestApplyUndoIdentity(t *testing.T) {
	pos := New()
	for _, mv := range pos.LegalMoves() {
		before := pos.squares
		beforeSide := pos.side
		if err := pos.Apply(mv); err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if err := pos.Undo(mv); err != nil {
			t.Fatalf("Undo: %v", err)
		}
		if pos.squares != before || pos.side != beforeSide {
			t.Fatalf("apply;undo did not restore position for move %v", mv)
		}
	}
}

func TestForcedCaptureApplyUndo(t *testing.T) {
	pos := forcedJumpPosition(t)
	mv := pos.LegalMoves()[0]
	before := pos.squares
	if err := pos.Apply(mv); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if pos.at(14) != Empty {
		t.Fatalf("captured piece at 14 was not removed")
	}
	if pos.at(9) != WhiteMan {
		t.Fatalf("landing square 9 does not hold the jumping piece")
	}
	if err := pos.Undo(mv); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if pos.squares != before {
		t.Fatalf("undo did not restore board")
	}
}

func TestMinimaxPicksTheForcedJump(t *testing.T) {
	pos := forcedJumpPosition(t)
	mv, _, err := minimax.Recommend(pos, 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if mv.(*Move).From != 18 {
		t.Fatalf("expected the only legal jump, got %v", mv)
	}
}

func TestMCTSReturnsTheOnlyLegalMove(t *testing.T) {
	pos := forcedJumpPosition(t)
	rng := rand.New(rand.NewSource(42))
	mv, err := mcts.Recommend(pos, 10, 30, rng, nil)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if mv.(*Move).From != 18 || mv.(*Move).To[0] != 9 {
		t.Fatalf("expected the forced jump 18x14-9, got %v", mv)
	}
}

func TestPromotionOnLastRank(t *testing.T) {
	enc := encodeRaw(map[int]byte{27: 'b'}, 'b')
	pos, err := Game.Parse(enc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p := pos.(*Position)
	var target games.Move
	for _, mv := range p.LegalMoves() {
		m := mv.(*Move)
		if m.To[0] == 31 || m.To[0] == 32 {
			target = mv
			break
		}
	}
	if target == nil {
		t.Fatalf("expected a move onto the last rank")
	}
	if err := p.Apply(target); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	last := target.(*Move).To[0]
	if p.at(last) != BlackKing {
		t.Fatalf("expected promotion to BlackKing, got %v", p.at(last))
	}
}

func TestStaticEvalSymmetricStart(t *testing.T) {
	pos := New()
	if pos.StaticEval() != 0 {
		t.Fatalf("expected symmetric starting eval of 0, got %d", pos.StaticEval())
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	pos := New()
	enc := Encode(pos)
	if !strings.HasSuffix(enc, "b") {
		t.Fatalf("expected black to move at start, got suffix of %q", enc)
	}
	reparsed, err := Game.Parse(enc)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if Encode(reparsed.(*Position)) != enc {
		t.Fatalf("round trip mismatch")
	}
}

func TestParseRejectsBadLength(t *testing.T) {
	_, err := Game.Parse("short")
	if err == nil {
		t.Fatalf("expected ParseError for a short string")
	}
}
