// internal/game/score.go
//
// Guess scoring and keyboard aggregation.
// Responsibilities:
//   - ScoreGuess: classic two-pass Wordle scoring of a whole guess.
//   - ScorePosition: per-position query with identical semantics, used when
//     a caller wants a single tile without materializing the full row.
//   - KeyStatuses/KeyStatus: best-known state of every letter across all
//     submitted guesses, monotone upgrade only.
//
// Targets and guesses are canonical strings (uppercase A–Z plus spaces for
// multi-word names) of equal length. Scoring is a pure function of
// (target, guess); it never depends on other guesses.

package game

// ScoreGuess scores guess against target and returns one Mark per position.
//
// Pass 1: mark exact matches as correct and count the remaining (non-hit)
// target letters. Pass 2: walking left to right, a non-hit tile is present
// while unconsumed count remains for its letter, absent otherwise. This
// yields the standard duplicate-letter behavior: no more presents for a
// letter than the target has unmatched copies of it.
func ScoreGuess(target, guess string) []Mark {
	n := len(target)
	marks := make([]Mark, n)
	if len(guess) != n {
		// Caller contract violation; score everything absent rather than panic.
		for i := range marks {
			marks[i] = MarkAbsent
		}
		return marks
	}

	counts := make(map[byte]int, n)
	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			marks[i] = MarkCorrect
		} else {
			counts[target[i]]++
		}
	}
	for i := 0; i < n; i++ {
		if marks[i] == MarkCorrect {
			continue
		}
		if counts[guess[i]] > 0 {
			marks[i] = MarkPresent
			counts[guess[i]]--
		} else {
			marks[i] = MarkAbsent
		}
	}
	return marks
}

// ScorePosition answers "what color is tile pos of this guess" without
// scoring the whole row. After the correctness pass, the tile is present iff
// the number of earlier non-correct occurrences of the same letter is still
// below the target's remaining count for it.
func ScorePosition(target, guess string, pos int) Mark {
	n := len(target)
	if len(guess) != n || pos < 0 || pos >= n {
		return MarkAbsent
	}

	correct := make([]bool, n)
	counts := make(map[byte]int, n)
	for _, c := range []byte(target) {
		counts[c]++
	}
	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			correct[i] = true
			counts[guess[i]]--
		}
	}
	if correct[pos] {
		return MarkCorrect
	}

	letter := guess[pos]
	remaining := counts[letter]
	if remaining <= 0 {
		return MarkAbsent
	}
	consumed := 0
	for i := 0; i < pos; i++ {
		if guess[i] == letter && !correct[i] {
			consumed++
		}
	}
	if consumed < remaining {
		return MarkPresent
	}
	return MarkAbsent
}

// KeyStatus reports the best state ever observed for letter across all
// submitted guesses. Later guesses can only upgrade a key, never downgrade.
func KeyStatus(target string, guesses []string, letter byte) KeyState {
	best := KeyDefault
	for _, guess := range guesses {
		if len(guess) != len(target) {
			continue
		}
		correct := make([]bool, len(guess))
		counts := make(map[byte]int, len(target))
		for _, c := range []byte(target) {
			counts[c]++
		}
		for i := 0; i < len(guess); i++ {
			if guess[i] == target[i] {
				correct[i] = true
				counts[guess[i]]--
			}
		}
		for i := 0; i < len(guess); i++ {
			if guess[i] != letter {
				continue
			}
			if correct[i] {
				best = best.upgrade(KeyCorrect)
				break
			}
			if counts[letter] > 0 {
				counts[letter]--
				best = best.upgrade(KeyPresent)
			} else {
				best = best.upgrade(KeyAbsent)
			}
		}
	}
	return best
}

// KeyStatuses computes the state of every key A–Z in one pass over the
// history. Used to color the on-screen keyboard after each guess.
func KeyStatuses(target string, guesses []string) map[string]KeyState {
	out := make(map[string]KeyState, 26)
	for c := byte('A'); c <= 'Z'; c++ {
		if st := KeyStatus(target, guesses, c); st != KeyDefault {
			out[string(c)] = st
		}
	}
	return out
}
