// internal/formation/formation.go
//
// Static formation-code → position-label table for eleven-player lineups.
// The table is fixed data; it must stay stable so rendered diagrams and
// shared results agree between clients. Unknown codes fall back to generic
// P1..P11 labels rather than erroring.

package formation

import (
	"fmt"
	"strconv"
	"strings"
)

// LineupSize is the number of players in a full starting lineup.
const LineupSize = 11

// positionTable maps a formation code to its 11 ordered labels, goalkeeper
// first. Index order matches lineup order in the match data.
var positionTable = map[string][]string{
	"4-4-2":   {"GK", "LB", "CB", "CB", "RB", "LM", "CM", "CM", "RM", "ST", "ST"},
	"4-3-3":   {"GK", "LB", "CB", "CB", "RB", "CM", "CM", "CM", "LW", "ST", "RW"},
	"3-5-2":   {"GK", "CB", "CB", "CB", "LWB", "CM", "CM", "CM", "RWB", "ST", "ST"},
	"3-4-3":   {"GK", "CB", "CB", "CB", "LM", "CM", "CM", "RM", "LW", "ST", "RW"},
	"5-3-2":   {"GK", "LWB", "CB", "CB", "CB", "RWB", "CM", "CM", "CM", "ST", "ST"},
	"4-2-3-1": {"GK", "LB", "CB", "CB", "RB", "CDM", "CDM", "LM", "CAM", "RM", "ST"},
}

// Positions returns the 11 position labels for a formation code. Unknown
// codes yield P1..P11.
func Positions(code string) []string {
	if labels, ok := positionTable[code]; ok {
		out := make([]string, LineupSize)
		copy(out, labels)
		return out
	}
	out := make([]string, LineupSize)
	for i := range out {
		out[i] = fmt.Sprintf("P%d", i+1)
	}
	return out
}

// Known reports whether the code has a dedicated label set.
func Known(code string) bool {
	_, ok := positionTable[code]
	return ok
}

// Rows returns the player count of each pitch row, goalkeeper row first:
// "4-2-3-1" → [1 4 2 3 1]. Unparseable codes collapse to a single row of
// eleven so rendering still has somewhere to put everyone.
func Rows(code string) []int {
	parts := strings.Split(code, "-")
	rows := []int{1}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n <= 0 {
			return []int{LineupSize}
		}
		rows = append(rows, n)
		total += n
	}
	if total != LineupSize-1 {
		return []int{LineupSize}
	}
	return rows
}
