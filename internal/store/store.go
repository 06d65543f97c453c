// internal/store/store.go
//
// Durable key-value store contract for progress snapshots. The game core
// never assumes a storage substrate; it only needs get/set of a string
// blob per key. Keys are scoped per owner and gameId by the caller, e.g.
// "progress:<ownerID>:<gameID>", so easy/hard and day-to-day sessions
// never collide.

package store

import (
	"context"
	"strconv"
)

// KV is the persistence interface for snapshot blobs.
// Implementations may be backed by memory (development/tests) or SQLite.
type KV interface {
	// Get retrieves the value for key. The second return is false when the
	// key has never been written.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes or replaces the value for key.
	Set(ctx context.Context, key string, value string) error
}

// ProgressKey builds the snapshot key for one owner's daily game.
func ProgressKey(ownerID string, gameID int) string {
	return "progress:" + ownerID + ":" + strconv.Itoa(gameID)
}
