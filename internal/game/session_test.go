package game

import (
	"errors"
	"testing"
)

func typeWord(t *testing.T, s *Session, word string) {
	t.Helper()
	for _, r := range word {
		s.Press(string(r))
	}
}

func TestSessionComposeAndSubmitWin(t *testing.T) {
	s := NewSession("MESSI")
	typeWord(t, s, "messi")
	if s.State() != StateReady {
		t.Fatalf("state = %v, want ready", s.State())
	}
	res, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.State != StateWon {
		t.Fatalf("state = %v, want won", res.State)
	}
	for i, m := range res.Marks {
		if m != MarkCorrect {
			t.Fatalf("mark %d = %v, want correct", i, m)
		}
	}
}

func TestSessionIgnoresInvalidInput(t *testing.T) {
	s := NewSession("KANTE")
	if s.Press("3") || s.Press("!") || s.Press("Enter") {
		t.Fatal("non-letter keys must be ignored")
	}
	typeWord(t, s, "kante")
	if s.Press("x") {
		t.Fatal("typing past target length must be a no-op")
	}
	if s.Partial() != "KANTE" {
		t.Fatalf("partial = %q", s.Partial())
	}
}

func TestSessionBackspace(t *testing.T) {
	s := NewSession("KANTE")
	typeWord(t, s, "ka")
	s.Backspace()
	if s.Partial() != "K" {
		t.Fatalf("partial = %q, want K", s.Partial())
	}
	s.Backspace()
	s.Backspace() // empty, no-op
	if s.Partial() != "" {
		t.Fatalf("partial = %q, want empty", s.Partial())
	}
}

func TestSessionSubmitIncomplete(t *testing.T) {
	s := NewSession("KANTE")
	typeWord(t, s, "kan")
	if _, err := s.Submit(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
	if len(s.Guesses) != 0 {
		t.Fatalf("incomplete submit must not record a guess")
	}
}

func TestSessionWinOnFifthRecordsNoSixth(t *testing.T) {
	s := NewSession("MESSI")
	for _, g := range []string{"SEEMS", "MOSSY", "MAINS", "MISTS"} {
		if res, err := s.SubmitGuess(g); err != nil || res.State != StateComposing {
			t.Fatalf("guess %q: state %v err %v", g, res.State, err)
		}
	}
	res, err := s.SubmitGuess("MESSI")
	if err != nil || res.State != StateWon {
		t.Fatalf("winning guess: state %v err %v", res.State, err)
	}
	if len(s.Guesses) != 5 {
		t.Fatalf("guess count = %d, want 5", len(s.Guesses))
	}
	// Terminal: further input silently ignored.
	if res, _ := s.SubmitGuess("SEEMS"); res.State != StateWon {
		t.Fatalf("post-win submit changed state to %v", res.State)
	}
	if s.Press("a") {
		t.Fatal("post-win press must be ignored")
	}
	if len(s.Guesses) != 5 {
		t.Fatalf("sixth guess recorded after win")
	}
}

func TestSessionEighthMissLoses(t *testing.T) {
	s := NewSession("MESSI")
	for i := 0; i < MaxGuesses-1; i++ {
		if res, _ := s.SubmitGuess("SEEMS"); res.State != StateComposing {
			t.Fatalf("guess %d: state %v", i+1, res.State)
		}
	}
	res, _ := s.SubmitGuess("SEEMS")
	if res.State != StateLost {
		t.Fatalf("eighth miss: state %v, want lost", res.State)
	}
	if res, _ := s.SubmitGuess("MESSI"); res.State != StateLost {
		t.Fatalf("post-loss submit changed state to %v", res.State)
	}
	if len(s.Guesses) != MaxGuesses {
		t.Fatalf("guess count = %d, want %d", len(s.Guesses), MaxGuesses)
	}
}

func TestSessionGuessWithSpace(t *testing.T) {
	s := NewSession("VAN DIJK")
	typeWord(t, s, "van dijk")
	res, err := s.Submit()
	if err != nil || res.State != StateWon {
		t.Fatalf("state %v err %v", res.State, err)
	}
}

func TestSessionAbandonKeepsHistory(t *testing.T) {
	s := NewSession("MESSI")
	s.SubmitGuess("SEEMS")
	typeWord(t, s, "mo") // mid-compose
	p := s.Progress()
	if len(p.Guesses) != 1 || p.Solved {
		t.Fatalf("progress = %+v", p)
	}

	resumed := Resume("MESSI", p)
	if resumed.State() != StateComposing || len(resumed.Guesses) != 1 {
		t.Fatalf("resume: state %v guesses %d", resumed.State(), len(resumed.Guesses))
	}
	if resumed.Partial() != "" {
		t.Fatal("partial guess must not survive an abandon")
	}
}

func TestResumeTerminalStates(t *testing.T) {
	won := Resume("MESSI", Progress{Guesses: []string{"SEEMS", "MESSI"}, Solved: true})
	if won.State() != StateWon {
		t.Fatalf("state %v, want won", won.State())
	}
	lost := Resume("MESSI", Progress{Guesses: []string{
		"SEEMS", "SEEMS", "SEEMS", "SEEMS", "SEEMS", "SEEMS", "SEEMS", "SEEMS",
	}})
	if lost.State() != StateLost {
		t.Fatalf("state %v, want lost", lost.State())
	}
}
