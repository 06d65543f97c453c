package game

import "testing"

func marksEqual(a, b []Mark) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestScoreGuessSeemsAgainstMessi(t *testing.T) {
	got := ScoreGuess("MESSI", "SEEMS")
	want := []Mark{MarkPresent, MarkCorrect, MarkAbsent, MarkPresent, MarkPresent}
	if !marksEqual(got, want) {
		t.Fatalf("ScoreGuess(MESSI, SEEMS) = %v, want %v", got, want)
	}
}

func TestScoreGuessDuplicateLetters(t *testing.T) {
	// Positions 0 and 3 are exact A matches; only one A remains for the
	// present pass, consumed nowhere, and only one N backs two guessed Ns.
	got := ScoreGuess("ALLAN", "ANNAL")
	want := []Mark{MarkCorrect, MarkPresent, MarkAbsent, MarkCorrect, MarkPresent}
	if !marksEqual(got, want) {
		t.Fatalf("ScoreGuess(ALLAN, ANNAL) = %v, want %v", got, want)
	}
}

func TestScoreGuessPresentCountExhaustion(t *testing.T) {
	// No exact matches anywhere; the third guessed A exceeds the target's
	// two and must come back absent.
	got := ScoreGuess("ARENA", "NAAAS")
	want := []Mark{MarkPresent, MarkPresent, MarkPresent, MarkAbsent, MarkAbsent}
	if !marksEqual(got, want) {
		t.Fatalf("ScoreGuess(ARENA, NAAAS) = %v, want %v", got, want)
	}
}

func TestScoreGuessAllCorrect(t *testing.T) {
	got := ScoreGuess("VAN DIJK", "VAN DIJK")
	for i, m := range got {
		if m != MarkCorrect {
			t.Fatalf("position %d = %v, want correct", i, m)
		}
	}
}

func TestScoreGuessCorrectCountMatchesExactMatches(t *testing.T) {
	target, guess := "KEROSENE", "NEWENESS"
	exact := 0
	for i := range target {
		if target[i] == guess[i] {
			exact++
		}
	}
	correct := 0
	for _, m := range ScoreGuess(target, guess) {
		if m == MarkCorrect {
			correct++
		}
	}
	if correct != exact {
		t.Fatalf("correct marks = %d, exact matches = %d", correct, exact)
	}
}

func TestScoreGuessNeverExceedsTargetMultiplicity(t *testing.T) {
	target, guess := "BANANA", "ANANAS"
	counts := make(map[byte]int)
	for i := 0; i < len(target); i++ {
		counts[target[i]]++
	}
	marked := make(map[byte]int)
	for i, m := range ScoreGuess(target, guess) {
		if m == MarkCorrect || m == MarkPresent {
			marked[guess[i]]++
		}
	}
	for c, n := range marked {
		if n > counts[c] {
			t.Fatalf("letter %q marked %d times, target has %d", c, n, counts[c])
		}
	}
}

func TestScorePositionAgreesWithScoreGuess(t *testing.T) {
	cases := [][2]string{
		{"MESSI", "SEEMS"},
		{"ALLAN", "ANNAL"},
		{"BANANA", "ANANAS"},
		{"VAN DER BERG", "DER VAN GREB"},
		{"ONEILLSMITH", "SMITHONEILL"},
	}
	for _, c := range cases {
		target, guess := c[0], c[1]
		row := ScoreGuess(target, guess)
		for pos := range row {
			if got := ScorePosition(target, guess, pos); got != row[pos] {
				t.Errorf("ScorePosition(%q, %q, %d) = %v, row says %v", target, guess, pos, got, row[pos])
			}
		}
	}
}

func TestScorePositionLengthMismatch(t *testing.T) {
	if got := ScorePosition("MESSI", "ME", 0); got != MarkAbsent {
		t.Fatalf("mismatched lengths should score absent, got %v", got)
	}
}

func TestKeyStatusUpgradesNeverDowngrade(t *testing.T) {
	target := "ABBA"
	// First guess sees A as present only; second lands it correct.
	guesses := []string{"BAAB"}
	if got := KeyStatus(target, guesses, 'A'); got != KeyPresent {
		t.Fatalf("after first guess A = %v, want present", got)
	}
	guesses = append(guesses, "ABBA")
	if got := KeyStatus(target, guesses, 'A'); got != KeyCorrect {
		t.Fatalf("after solve A = %v, want correct", got)
	}
	// Order reversed must give the same terminal state.
	if got := KeyStatus(target, []string{"ABBA", "BAAB"}, 'A'); got != KeyCorrect {
		t.Fatalf("correct was downgraded to %v", got)
	}
}

func TestKeyStatusAbsentAndDefault(t *testing.T) {
	target := "MESSI"
	guesses := []string{"TRAIN"}
	if got := KeyStatus(target, guesses, 'T'); got != KeyAbsent {
		t.Fatalf("T = %v, want absent", got)
	}
	if got := KeyStatus(target, guesses, 'I'); got != KeyPresent {
		t.Fatalf("I = %v, want present", got)
	}
	if got := KeyStatus(target, guesses, 'Q'); got != KeyDefault {
		t.Fatalf("unguessed Q = %v, want default", got)
	}
}

func TestKeyStatusDuplicateBeyondMultiplicity(t *testing.T) {
	// Target has one S; a guess with three S where one is correct must not
	// report the extras as present.
	target := "SALON"
	guesses := []string{"SOSSY"}
	if got := KeyStatus(target, guesses, 'S'); got != KeyCorrect {
		t.Fatalf("S = %v, want correct", got)
	}
	if got := KeyStatus(target, guesses, 'Y'); got != KeyAbsent {
		t.Fatalf("Y = %v, want absent", got)
	}
}

func TestKeyStatusesSkipsDefaults(t *testing.T) {
	m := KeyStatuses("MESSI", []string{"MOSSY"})
	if _, ok := m["Q"]; ok {
		t.Fatalf("default keys must be omitted, got %v", m)
	}
	if m["M"] != KeyCorrect || m["S"] != KeyCorrect {
		t.Fatalf("unexpected key map %v", m)
	}
	if m["Y"] != KeyAbsent || m["O"] != KeyAbsent {
		t.Fatalf("unexpected key map %v", m)
	}
}
