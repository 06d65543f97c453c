// internal/game/snapshot.go
//
// Durable snapshot of one day's eleven puzzles, shaped exactly as
//   { "states": { "<playerId>": { "guesses": [...], "isComplete": bool } } }
// and keyed externally by gameId. Missing player keys mean "no attempts".

package game

import "encoding/json"

// Snapshot holds the per-player progress of one daily lineup.
type Snapshot struct {
	States map[int]Progress `json:"states"`
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() Snapshot {
	return Snapshot{States: make(map[int]Progress)}
}

// DecodeSnapshot parses a persisted snapshot. Corrupt JSON yields an empty
// snapshot and the error; gameplay proceeds with in-memory state.
func DecodeSnapshot(raw string) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return NewSnapshot(), err
	}
	if s.States == nil {
		s.States = make(map[int]Progress)
	}
	return s, nil
}

// Encode serializes the snapshot for the durable store.
func (s Snapshot) Encode() (string, error) {
	b, err := json.Marshal(s)
	return string(b), err
}

// Progress returns the stored progress for a player, empty if absent.
func (s Snapshot) Progress(playerID int) Progress {
	return s.States[playerID]
}

// Set records a player's progress.
func (s Snapshot) Set(playerID int, p Progress) {
	s.States[playerID] = p
}

// SolvedCount counts players whose puzzle was won.
func (s Snapshot) SolvedCount() int {
	n := 0
	for _, p := range s.States {
		if p.Solved {
			n++
		}
	}
	return n
}

// FailedCount counts players whose attempt budget ran out without a solve.
func (s Snapshot) FailedCount() int {
	n := 0
	for _, p := range s.States {
		if p.Failed() {
			n++
		}
	}
	return n
}

// GuessCount totals submitted guesses across all players.
func (s Snapshot) GuessCount() int {
	n := 0
	for _, p := range s.States {
		n += len(p.Guesses)
	}
	return n
}

// Complete reports whether every one of the eleven puzzles is terminal.
// This is derived, never stored.
func (s Snapshot) Complete(lineupSize int) bool {
	return s.SolvedCount()+s.FailedCount() == lineupSize
}
