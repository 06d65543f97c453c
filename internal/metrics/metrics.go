// internal/metrics/metrics.go
//
// Prometheus counters for the gameplay surface, registered on the default
// registry and served by promhttp on /metrics.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// DailyGamesServed counts /daily/game responses per difficulty.
	DailyGamesServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "firsteleven_daily_games_served_total",
		Help: "Daily game payloads served, by difficulty.",
	}, []string{"difficulty"})

	// GuessesScored counts scored guesses by outcome state.
	GuessesScored = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "firsteleven_guesses_scored_total",
		Help: "Submitted guesses, by resulting session state.",
	}, []string{"state"})

	// LineupsCompleted counts fully terminal eleven-puzzle sessions.
	LineupsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "firsteleven_lineups_completed_total",
		Help: "Daily lineups where all eleven puzzles finished.",
	})

	// SnapshotWriteFailures counts best-effort persistence failures.
	SnapshotWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "firsteleven_snapshot_write_failures_total",
		Help: "Progress snapshot writes that were logged and dropped.",
	})
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
