// internal/match/csv.go
//
// Loads the games data set from CSV.
//
// Recognized columns, matched by header name with fixed positional
// fallback when the header row is absent or unrecognized:
//   game(0), team(1), difficulty(2), formation(3), lineup(4),
//   and optionally lineup_numbers, lineup_goals, lineup_assists,
//   lineup_cards, lineup_substitutions, source_match_id.
//
// The lineup column is semicolon-separated and must resolve to exactly
// eleven names; rows failing that, or carrying an unknown difficulty, are
// dropped silently. Stat columns align positionally with the lineup;
// unparseable entries default to nil (numbers) or 0 (counts), never error.
// Only an empty resulting pool escalates to a load failure, reported by
// the caller.

package match

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/firsteleven/go-server/assets"
	"github.com/firsteleven/go-server/internal/formation"
)

// column indices used when no usable header row is present.
var defaultColumns = map[string]int{
	"game":       0,
	"team":       1,
	"difficulty": 2,
	"formation":  3,
	"lineup":     4,
}

// optional columns only ever matched by header name.
var optionalColumns = []string{
	"lineup_numbers", "lineup_goals", "lineup_assists",
	"lineup_cards", "lineup_substitutions", "source_match_id",
}

// Load reads the data set from path, or from the embedded default CSV when
// path is empty (mirrors the embedded-fallback behavior of the word lists
// this server grew out of).
func Load(path string) (Pools, error) {
	if path == "" {
		return Parse(strings.NewReader(assets.DefaultGamesCSV))
	}
	f, err := os.Open(path)
	if err != nil {
		return Pools{}, fmt.Errorf("open games csv: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads CSV rows into difficulty pools.
func Parse(r io.Reader) (Pools, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return Pools{}, fmt.Errorf("read games csv: %w", err)
	}
	if len(rows) == 0 {
		return Pools{}, fmt.Errorf("games csv is empty")
	}

	cols, hasHeader := resolveColumns(rows[0])
	data := rows
	if hasHeader {
		data = rows[1:]
	}

	var pools Pools
	dropped := 0
	for _, row := range data {
		rec, ok := parseRow(row, cols)
		if !ok {
			dropped++
			continue
		}
		switch rec.Difficulty {
		case DifficultyEasy:
			rec.ID = len(pools.Easy)
			pools.Easy = append(pools.Easy, rec)
		case DifficultyHard:
			rec.ID = len(pools.Hard)
			pools.Hard = append(pools.Hard, rec)
		default:
			dropped++
		}
	}
	if dropped > 0 {
		log.Debug().Int("rows", dropped).Msg("dropped invalid game rows")
	}
	return pools, nil
}

// resolveColumns maps column names to indices from the header row. When no
// required column name appears, the first row is data and the fixed
// positional layout applies.
func resolveColumns(header []string) (map[string]int, bool) {
	cols := make(map[string]int)
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		switch name {
		case "game", "team", "difficulty", "formation", "lineup":
			cols[name] = i
		default:
			for _, opt := range optionalColumns {
				if name == opt {
					cols[name] = i
				}
			}
		}
	}
	if len(cols) == 0 {
		return defaultColumns, false
	}
	// Fill gaps positionally so partially-labelled files still load.
	for name, idx := range defaultColumns {
		if _, ok := cols[name]; !ok {
			cols[name] = idx
		}
	}
	return cols, true
}

func field(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow converts one CSV row into a Record. Returns false for rows that
// do not survive the lineup-cardinality filter.
func parseRow(row []string, cols map[string]int) (Record, bool) {
	rec := Record{
		Label:         field(row, cols, "game"),
		Team:          field(row, cols, "team"),
		Difficulty:    strings.ToLower(field(row, cols, "difficulty")),
		Formation:     field(row, cols, "formation"),
		SourceMatchID: field(row, cols, "source_match_id"),
	}
	if rec.Label == "" && rec.Team == "" {
		return Record{}, false
	}

	for _, tok := range strings.Split(field(row, cols, "lineup"), ";") {
		if name := strings.TrimSpace(tok); name != "" {
			rec.Lineup = append(rec.Lineup, name)
		}
	}
	if len(rec.Lineup) != formation.LineupSize {
		return Record{}, false
	}

	rec.Numbers = parseOptionalInts(field(row, cols, "lineup_numbers"))
	rec.Goals = parseCounts(field(row, cols, "lineup_goals"))
	rec.Assists = parseCounts(field(row, cols, "lineup_assists"))
	rec.Cards = parseCounts(field(row, cols, "lineup_cards"))
	rec.Substitutions = parseCounts(field(row, cols, "lineup_substitutions"))
	return rec, true
}

// parseOptionalInts splits a semicolon list into nullable numbers.
func parseOptionalInts(s string) []*int {
	if s == "" {
		return nil
	}
	toks := strings.Split(s, ";")
	out := make([]*int, len(toks))
	for i, tok := range toks {
		if n, err := strconv.Atoi(strings.TrimSpace(tok)); err == nil {
			v := n
			out[i] = &v
		}
	}
	return out
}

// parseCounts splits a semicolon list into counts, 0 where unparseable.
func parseCounts(s string) []int {
	if s == "" {
		return nil
	}
	toks := strings.Split(s, ";")
	out := make([]int, len(toks))
	for i, tok := range toks {
		if n, err := strconv.Atoi(strings.TrimSpace(tok)); err == nil {
			out[i] = n
		}
	}
	return out
}
