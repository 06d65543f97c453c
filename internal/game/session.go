// internal/game/session.go
//
// Per-player guess session state machine.
//
// States: composing (partial guess shorter than the target), ready (partial
// guess at full length), won, lost. Won and lost are terminal; all input is
// ignored there. Precondition, enforced by the caller and not by locking:
// exactly one session is mutated at a time (single active puzzle dialog).

package game

import "errors"

// State is the coarse session state.
type State string

const (
	StateComposing State = "composing"
	StateReady     State = "ready"
	StateWon       State = "won"
	StateLost      State = "lost"
)

// ErrNotReady is returned by Submit when the partial guess is incomplete.
var ErrNotReady = errors.New("guess incomplete")

// Session drives one player's puzzle: letter input, backspace, submit.
type Session struct {
	Target  string // canonical uppercase answer
	Guesses []string
	Solved  bool

	partial []byte
}

// NewSession starts a fresh session for a canonical target.
func NewSession(target string) *Session {
	return &Session{Target: target}
}

// Resume restores a session from persisted progress. Histories longer than
// the attempt budget are truncated defensively; a recorded solve wins even
// if the snapshot flag was lost.
func Resume(target string, p Progress) *Session {
	s := NewSession(target)
	for _, g := range p.Guesses {
		if len(s.Guesses) >= MaxGuesses {
			break
		}
		s.Guesses = append(s.Guesses, g)
		if g == target {
			s.Solved = true
			break
		}
	}
	s.Solved = s.Solved || p.Solved
	return s
}

// State reports the current state.
func (s *Session) State() State {
	if s.Solved {
		return StateWon
	}
	if len(s.Guesses) >= MaxGuesses {
		return StateLost
	}
	if len(s.partial) == len(s.Target) {
		return StateReady
	}
	return StateComposing
}

// Over reports whether the session is terminal.
func (s *Session) Over() bool {
	st := s.State()
	return st == StateWon || st == StateLost
}

// Partial returns the in-progress guess.
func (s *Session) Partial() string { return string(s.partial) }

// Press appends one keystroke to the partial guess. Keys that do not fold
// to A–Z or space are ignored, as is typing past the target length or after
// the session ended. Returns whether the key was consumed.
func (s *Session) Press(key string) bool {
	if s.Over() {
		return false
	}
	c, ok := NormalizeKey(key)
	if !ok || len(s.partial) >= len(s.Target) {
		return false
	}
	s.partial = append(s.partial, c)
	return true
}

// Backspace drops the last character of the partial guess, if any.
func (s *Session) Backspace() {
	if s.Over() || len(s.partial) == 0 {
		return
	}
	s.partial = s.partial[:len(s.partial)-1]
}

// SubmitResult carries the outcome of a submitted guess.
type SubmitResult struct {
	Marks []Mark
	State State
	Keys  map[string]KeyState
}

// Submit scores the partial guess against the target and appends it to the
// history. A matching guess wins; an eighth miss loses; otherwise the
// session returns to composing with the partial cleared.
func (s *Session) Submit() (SubmitResult, error) {
	if s.Over() {
		return SubmitResult{State: s.State()}, nil
	}
	if len(s.partial) != len(s.Target) {
		return SubmitResult{State: s.State()}, ErrNotReady
	}
	guess := string(s.partial)
	s.partial = s.partial[:0]
	return s.apply(guess)
}

// SubmitGuess submits an already-assembled canonical guess, bypassing the
// per-key composition path. Length mismatches are rejected with ErrNotReady.
func (s *Session) SubmitGuess(guess string) (SubmitResult, error) {
	if s.Over() {
		return SubmitResult{State: s.State()}, nil
	}
	if len(guess) != len(s.Target) {
		return SubmitResult{State: s.State()}, ErrNotReady
	}
	return s.apply(guess)
}

func (s *Session) apply(guess string) (SubmitResult, error) {
	marks := ScoreGuess(s.Target, guess)
	s.Guesses = append(s.Guesses, guess)
	if guess == s.Target {
		s.Solved = true
	}
	return SubmitResult{
		Marks: marks,
		State: s.State(),
		Keys:  KeyStatuses(s.Target, s.Guesses),
	}, nil
}

// Progress snapshots the persistable part of the session. The partial guess
// is transient and never persisted; closing the dialog mid-compose keeps
// the submitted history without forcing a loss.
func (s *Session) Progress() Progress {
	return Progress{Guesses: append([]string(nil), s.Guesses...), Solved: s.Solved}
}
