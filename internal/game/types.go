// internal/game/types.go
//
// Core type definitions for the lineup guessing engine.
// Defines:
//   - Mark: per-letter result of a scored guess (correct/present/absent).
//   - KeyState: best-known keyboard status of a letter across all guesses.
//   - Player: one of the eleven lineup slots of a daily match.
//   - Progress: the persisted guess history for one player.

package game

// MaxGuesses is the attempt budget for a single player puzzle.
const MaxGuesses = 8

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the answer at this exact position.
//   - "present": letter exists in the answer but in a different position.
//   - "absent":  letter does not exist in the (remaining) answer at all.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// KeyState is the aggregated status of one keyboard letter.
// Precedence when merging guesses: correct > present > absent > default.
type KeyState string

const (
	KeyDefault KeyState = "default"
	KeyAbsent  KeyState = "absent"
	KeyPresent KeyState = "present"
	KeyCorrect KeyState = "correct"
)

// upgrade merges a newly observed state into the current best, never
// downgrading (a later "present" must not overwrite an earlier "correct").
func (k KeyState) upgrade(next KeyState) KeyState {
	if rank(next) > rank(k) {
		return next
	}
	return k
}

func rank(k KeyState) int {
	switch k {
	case KeyCorrect:
		return 3
	case KeyPresent:
		return 2
	case KeyAbsent:
		return 1
	}
	return 0
}

// Player is one lineup slot of a resolved daily match.
// ID is the stable index 0..10 (0 = goalkeeper by convention).
// DisplayName keeps punctuation; CanonicalName is what is actually guessed.
type Player struct {
	ID            int    `json:"id"`
	DisplayName   string `json:"name"`
	CanonicalName string `json:"-"` // the answer; never serialized
	Position      string `json:"position"`
	ShirtNumber   *int   `json:"shirtNumber,omitempty"`
	Goals         int    `json:"goals,omitempty"`
	Assists       int    `json:"assists,omitempty"`
	Cards         int    `json:"cards,omitempty"`
	Substitutions int    `json:"substitutions,omitempty"`
}

// Progress is the durable guess history for one player puzzle.
// Guesses are canonical uppercase strings, each exactly as long as the
// player's canonical name. Solved is true iff some guess equals it.
type Progress struct {
	Guesses []string `json:"guesses"`
	Solved  bool     `json:"isComplete"`
}

// Failed reports whether this puzzle was lost: attempt budget exhausted
// without a solve.
func (p Progress) Failed() bool {
	return !p.Solved && len(p.Guesses) >= MaxGuesses
}

// Over reports whether the puzzle accepts no further guesses.
func (p Progress) Over() bool {
	return p.Solved || len(p.Guesses) >= MaxGuesses
}
