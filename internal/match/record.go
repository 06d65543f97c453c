// internal/match/record.go
//
// Match records: one row of the games data set, plus expansion of a row
// into the eleven Player entities of a resolved daily game.

package match

import (
	"github.com/firsteleven/go-server/internal/formation"
	"github.com/firsteleven/go-server/internal/game"
)

// Difficulty tiers recognized in the data set. Rows carrying anything else
// are silently excluded from the pools.
const (
	DifficultyEasy = "easy"
	DifficultyHard = "hard"
)

// Record is one immutable match row. Lineup always holds exactly eleven
// names; rows violating that are rejected at load time, never at use time.
type Record struct {
	ID            int      // pool-local index, stable for one loaded data set
	Label         string   // e.g. "Galatasaray 3-1 Fenerbahce (2023)"
	Team          string   // team whose lineup is guessed
	Difficulty    string   // "easy" | "hard"
	Formation     string   // e.g. "4-2-3-1"
	Lineup        []string // 11 player names, goalkeeper first
	Numbers       []*int   // shirt numbers, nil where unknown
	Goals         []int
	Assists       []int
	Cards         []int
	Substitutions []int
	SourceMatchID string
}

// Players expands the record into eleven Player entities with position
// labels derived from the formation table. Decorative stats are carried
// over where the row has them.
func (r Record) Players() []game.Player {
	positions := formation.Positions(r.Formation)
	players := make([]game.Player, 0, len(r.Lineup))
	for i, name := range r.Lineup {
		p := game.Player{
			ID:            i,
			DisplayName:   name,
			CanonicalName: game.Canonical(name),
			Position:      positions[i],
		}
		if i < len(r.Numbers) {
			p.ShirtNumber = r.Numbers[i]
		}
		if i < len(r.Goals) {
			p.Goals = r.Goals[i]
		}
		if i < len(r.Assists) {
			p.Assists = r.Assists[i]
		}
		if i < len(r.Cards) {
			p.Cards = r.Cards[i]
		}
		if i < len(r.Substitutions) {
			p.Substitutions = r.Substitutions[i]
		}
		players = append(players, p)
	}
	return players
}

// Pools holds the candidate rows per difficulty tier.
type Pools struct {
	Easy []Record
	Hard []Record
}

// ByDifficulty returns the pool for a tier, nil for unknown tiers.
func (p Pools) ByDifficulty(difficulty string) []Record {
	switch difficulty {
	case DifficultyEasy:
		return p.Easy
	case DifficultyHard:
		return p.Hard
	}
	return nil
}
