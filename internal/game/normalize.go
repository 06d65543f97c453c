// internal/game/normalize.go
//
// Player name canonicalization and keystroke folding.
//
// A displayed name may carry punctuation that is shown in the grid but never
// guessed: apostrophes, hyphens, periods, and backticks. Normalize strips
// exactly those four marks and nothing else. Spaces between name words are
// ordinary guessable characters and survive normalization.
//
// Keystrokes are folded to plain A–Z before the input gate: accented letters
// (Ç, Ğ, İ, Ö, Ş, Ü and friends) decompose to their base letter, everything
// that does not land on A–Z or space is ignored.

package game

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// separators are the four punctuation marks displayed but not guessed.
const separators = "'-.`"

// Normalize strips separator punctuation from a raw player name.
// It does not change case and does not touch spaces.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if IsSeparator(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Canonical returns the uppercase, accent-folded, separator-free form of a
// name. This is the exact string a player must assemble, one guess slot per
// character, spaces included.
func Canonical(raw string) string {
	return strings.ToUpper(foldASCII(Normalize(raw)))
}

// IsSeparator reports whether r is one of the four stripped marks.
func IsSeparator(r rune) bool {
	return strings.ContainsRune(separators, r)
}

// Cell is one grid slot of a displayed name. Separator cells render their
// character statically and occupy no guess slot.
type Cell struct {
	Char      string `json:"char"`
	Separator bool   `json:"separator"`
}

// DisplayCells splits a raw name into grid cells for rendering. The number
// of non-separator cells always equals the canonical name's length.
func DisplayCells(raw string) []Cell {
	cells := make([]Cell, 0, len(raw))
	for _, r := range raw {
		cells = append(cells, Cell{Char: string(r), Separator: IsSeparator(r)})
	}
	return cells
}

// NormalizeKey folds a single keystroke to an uppercase A–Z letter or a
// space. The second return is false for anything else (digits, punctuation,
// dead keys): such input is ignored by the session, not an error.
func NormalizeKey(key string) (byte, bool) {
	folded := strings.ToUpper(foldASCII(key))
	if len(folded) != 1 {
		return 0, false
	}
	c := folded[0]
	if (c >= 'A' && c <= 'Z') || c == ' ' {
		return c, true
	}
	return 0, false
}

// foldTransformer decomposes to NFD, drops combining marks, and recomposes.
// "Ş" → "S", "İ" → "I", "é" → "e".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// asciiFixups covers letters that do not decompose to a base form.
var asciiFixups = strings.NewReplacer(
	"ı", "i", "Ø", "O", "ø", "o", "Đ", "D", "đ", "d", "Ł", "L", "ł", "l",
)

func foldASCII(s string) string {
	out, _, err := transform.String(foldTransformer, asciiFixups.Replace(s))
	if err != nil {
		return s
	}
	return out
}
