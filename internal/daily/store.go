// internal/daily/store.go
//
// SQLite persistence for completed daily lineups: one row per owner, date,
// and difficulty, feeding the per-day leaderboard. Inserts are idempotent
// (UNIQUE constraint with INSERT OR IGNORE).

package daily

import (
	"context"
	"database/sql"
)

// Result is one finished (all-terminal) daily lineup for one player.
type Result struct {
	UserID     string `json:"userId"`
	Date       string `json:"date"`
	Difficulty string `json:"difficulty"`
	Solved     int    `json:"solved"`
	Failed     int    `json:"failed"`
	Guesses    int    `json:"guesses"`
}

// Store wraps lineup_results queries.
type Store struct{ db *sql.DB }

// NewStore constructs a Store over an open database handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyCompleted reports whether the owner has a result row for the
// given date and difficulty.
func (s *Store) AlreadyCompleted(ctx context.Context, userID, date, difficulty string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM lineup_results WHERE user_id=? AND date=? AND difficulty=?`,
		userID, date, difficulty,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records a finished lineup. Re-inserts are ignored.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO lineup_results(user_id, date, difficulty, solved, failed, guesses)
        VALUES (?,?,?,?,?,?)`,
		r.UserID, r.Date, r.Difficulty, r.Solved, r.Failed, r.Guesses,
	)
	return err
}

// LBRow is one leaderboard entry.
type LBRow struct {
	UserID  string `json:"userId"`
	Solved  int    `json:"solved"`
	Guesses int    `json:"guesses"`
}

// Leaderboard returns the top finished lineups for a date and difficulty,
// most solved first, fewest guesses breaking ties, then arrival order.
func (s *Store) Leaderboard(ctx context.Context, date, difficulty string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT user_id, solved, guesses
        FROM lineup_results
        WHERE date=? AND difficulty=?
        ORDER BY solved DESC, guesses ASC, created_at ASC
        LIMIT ?`, date, difficulty, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Solved, &r.Guesses); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
