// internal/daily/daily.go
//
// Deterministic daily match selection.
//
// Every client evaluating the same wall-clock date against the same pools
// must land on the same easy and hard match with no server round-trip, so
// shared results line up. The chain is fully pinned:
//
//   date key (fixed reference timezone)
//     → FNV-1a 32-bit seed over "firsteleven:<YYYY-MM-DD>:daily"
//       → mulberry32 stream, draw 1 = easy index, draw 2 = hard index
//
// The mix constants are load-bearing; do not substitute another PRNG
// family or reorder the two draws.

package daily

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/firsteleven/go-server/internal/match"
)

// DefaultTimezone anchors the game-day boundary. Puzzles roll over at
// midnight of this zone regardless of the player's own timezone.
const DefaultTimezone = "Europe/Istanbul"

const (
	seedNamespace = "firsteleven"
	seedPurpose   = "daily"
)

// DateLayout is the canonical date key format.
const DateLayout = "2006-01-02"

// Location resolves the reference timezone, falling back to a fixed +03:00
// zone when the tz database is unavailable (stripped containers).
func Location(tz string) *time.Location {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.FixedZone("TRT", 3*60*60)
	}
	return loc
}

// DateKey formats the game day (YYYY-MM-DD) for an instant, evaluated in
// the reference timezone.
func DateKey(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(DateLayout)
}

// DayIndex counts whole days from the Unix epoch to the game day. The
// date components are re-anchored in UTC so DST shifts in the reference
// zone can never produce an off-by-one.
func DayIndex(now time.Time, loc *time.Location) int {
	y, m, d := now.In(loc).Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// Seed hashes the namespace, date key, and purpose tag with 32-bit FNV-1a
// (offset basis 0x811c9dc5, prime 0x01000193, one byte at a time).
func Seed(dateKey string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seedNamespace + ":" + dateKey + ":" + seedPurpose))
	return h.Sum32()
}

// Rand is a mulberry32 generator: same seed, same infinite sequence,
// uniform in [0,1).
type Rand struct {
	state uint32
}

// NewRand seeds a generator.
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Next returns the next value in [0,1).
func (r *Rand) Next() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	t ^= t >> 14
	return float64(t) / (1 << 32)
}

// Intn returns a draw scaled to [0,n).
func (r *Rand) Intn(n int) int {
	return int(r.Next() * float64(n))
}

// GameID derives the stable persistence key for one difficulty's eleven
// puzzles on one day: dayIndex*2, plus one for hard.
func GameID(dayIndex int, difficulty string) int {
	id := dayIndex * 2
	if difficulty == match.DifficultyHard {
		id++
	}
	return id
}

// Selection is the resolved daily game for both difficulty tiers.
type Selection struct {
	DayIndex int
	DateKey  string
	Easy     match.Record
	Hard     match.Record
}

// Select picks today's easy and hard match. The two indices come from
// sequential draws of one generator, easy first; swapping the order would
// change every selection. Empty pools are a configuration error.
func Select(pools match.Pools, now time.Time, loc *time.Location) (Selection, error) {
	return SelectForDay(pools, DayIndex(now, loc))
}

// SelectForDay resolves the selection for an arbitrary day index, e.g. to
// rebuild a past day's game from its persistence key.
func SelectForDay(pools match.Pools, dayIndex int) (Selection, error) {
	if len(pools.Easy) == 0 {
		return Selection{}, fmt.Errorf("daily: easy pool is empty")
	}
	if len(pools.Hard) == 0 {
		return Selection{}, fmt.Errorf("daily: hard pool is empty")
	}
	key := time.Unix(int64(dayIndex)*86400, 0).UTC().Format(DateLayout)
	rng := NewRand(Seed(key))
	easy := pools.Easy[rng.Intn(len(pools.Easy))]
	hard := pools.Hard[rng.Intn(len(pools.Hard))]
	return Selection{
		DayIndex: dayIndex,
		DateKey:  key,
		Easy:     easy,
		Hard:     hard,
	}, nil
}

// ByDifficulty returns the selected record for a tier.
func (s Selection) ByDifficulty(difficulty string) (match.Record, bool) {
	switch difficulty {
	case match.DifficultyEasy:
		return s.Easy, true
	case match.DifficultyHard:
		return s.Hard, true
	}
	return match.Record{}, false
}
