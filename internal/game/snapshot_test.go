package game

import (
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewSnapshot()
	s.Set(0, Progress{Guesses: []string{"SEEMS", "MESSI"}, Solved: true})
	s.Set(7, Progress{Guesses: []string{"KANTE"}})

	raw, err := s.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(raw, `"states"`) || !strings.Contains(raw, `"isComplete"`) {
		t.Fatalf("unexpected layout: %s", raw)
	}

	back, err := DecodeSnapshot(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := back.Progress(0)
	if !p.Solved || len(p.Guesses) != 2 || p.Guesses[1] != "MESSI" {
		t.Fatalf("player 0 progress = %+v", p)
	}
	if got := back.Progress(7); got.Solved || len(got.Guesses) != 1 {
		t.Fatalf("player 7 progress = %+v", got)
	}
	if got := back.Progress(3); len(got.Guesses) != 0 {
		t.Fatalf("absent player must default to no attempts, got %+v", got)
	}
}

func TestSnapshotCorruptJSON(t *testing.T) {
	s, err := DecodeSnapshot("{not json")
	if err == nil {
		t.Fatal("expected decode error")
	}
	if s.States == nil || len(s.States) != 0 {
		t.Fatalf("corrupt snapshot must decode to empty, got %+v", s)
	}
}

func TestSnapshotAggregates(t *testing.T) {
	s := NewSnapshot()
	s.Set(0, Progress{Guesses: []string{"X"}, Solved: true})
	eight := []string{"A", "A", "A", "A", "A", "A", "A", "A"}
	s.Set(1, Progress{Guesses: eight})
	s.Set(2, Progress{Guesses: []string{"A", "B"}})

	if got := s.SolvedCount(); got != 1 {
		t.Fatalf("solved = %d", got)
	}
	if got := s.FailedCount(); got != 1 {
		t.Fatalf("failed = %d", got)
	}
	if got := s.GuessCount(); got != 11 {
		t.Fatalf("guesses = %d", got)
	}
	if s.Complete(11) {
		t.Fatal("lineup with an open puzzle must not be complete")
	}

	for i := 3; i < 11; i++ {
		s.Set(i, Progress{Guesses: []string{"X"}, Solved: true})
	}
	s.Set(2, Progress{Guesses: eight})
	if !s.Complete(11) {
		t.Fatal("all-terminal lineup must be complete")
	}
}
