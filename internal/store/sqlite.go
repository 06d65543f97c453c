// internal/store/sqlite.go
//
// SQLite-backed KV implementation over the progress table (see
// sql/0001_init.sql). Upserts on key so every snapshot write replaces the
// previous one.

package store

import (
	"context"
	"database/sql"
	"errors"
)

type sqliteKV struct {
	db *sql.DB
}

// NewSQLite constructs a KV store over an open database handle.
func NewSQLite(db *sql.DB) KV {
	return &sqliteKV{db: db}
}

func (s *sqliteKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM progress WHERE key=?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *sqliteKV) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO progress(key, value, updated_at)
        VALUES (?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=CURRENT_TIMESTAMP`,
		key, value,
	)
	return err
}
