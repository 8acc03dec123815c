package main

import (
	"math/rand"
	"testing"

	"github.com/Garsondee/Reversi-Board/internal/board"
)

func TestRepeatGaps_PerColor(t *testing.T) {
	ps := []board.Placement{
		{Color: board.White, Face: "w1"},
		{Color: board.Black, Face: "b1"},
		{Color: board.White, Face: "w2"},
		{Color: board.Black, Face: "b2"},
		{Color: board.White, Face: "w1"},
		{Color: board.Black, Face: "b1"},
	}
	gaps := repeatGaps(ps)
	if gaps[board.White] != 2 || gaps[board.Black] != 2 {
		t.Fatalf("expected gaps white=2 black=2, got %v", gaps)
	}
	if g := repeatGaps(ps[:2]); len(g) != 0 {
		t.Fatalf("expected no gaps without repeats, got %v", g)
	}
}

func TestTurnConsistent(t *testing.T) {
	if !turnConsistent(board.First, 0) || !turnConsistent(board.Second, 3) {
		t.Fatal("expected parity to match")
	}
	if turnConsistent(board.First, 1) {
		t.Fatal("expected odd moves with first to move to be inconsistent")
	}
}

func TestSpread(t *testing.T) {
	lo, hi := spread(map[board.FaceID]int{"a": 3, "b": 1, "c": 7})
	if lo != 1 || hi != 7 {
		t.Fatalf("expected 1..7, got %d..%d", lo, hi)
	}
	if lo, hi := spread(nil); lo != 0 || hi != 0 {
		t.Fatalf("expected zeros for empty use, got %d..%d", lo, hi)
	}
}

func TestScriptEvents_StartsWithResize(t *testing.T) {
	evs := scriptEvents(rand.New(rand.NewSource(1)), 50)
	if len(evs) != 50 {
		t.Fatalf("expected 50 events, got %d", len(evs))
	}
	if evs[0].Kind != board.EventResize {
		t.Fatalf("expected resize first, got %s", evs[0].Kind)
	}
}

func TestRunSession_HoldsInvariants(t *testing.T) {
	rs := runSession(1, 42, 3000, board.DefaultCells)
	if rs.accepted == 0 || rs.rejected == 0 {
		t.Fatalf("expected both accepted and rejected presses, got %d/%d", rs.accepted, rs.rejected)
	}
	if rs.maxHighlights > 1 {
		t.Fatalf("expected at most one highlighted cell, got %d", rs.maxHighlights)
	}
	if rs.pieceLeaks != 0 {
		t.Fatalf("expected no piece leaks, got %d", rs.pieceLeaks)
	}
	if !rs.turnOK {
		t.Fatal("expected turn to match move parity")
	}
	if gap, ok := rs.minRepeatGap[board.White]; ok && gap < 2 {
		t.Fatalf("white face repeated back to back (gap=%d)", gap)
	}
}
