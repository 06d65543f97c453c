// internal/share/share.go
//
// Shareable result text. Two sessions with identical progress must render
// byte-identical output so players can paste and compare.
//
// Layout:
//   First Eleven #<gameId>
//   <match> • <team> • <formation>
//   Solved <s>/11 • <g> guesses • <f> failed
//   <one emoji row per formation row>
//
// Player slots render: unattempted ⬜, failed ❌, solved the guess count as
// a keycap digit. The goalkeeper row leads by default; RowOrder flips it
// for clients that draw the pitch the other way up.

package share

import (
	"fmt"
	"strings"

	"github.com/firsteleven/go-server/internal/formation"
	"github.com/firsteleven/go-server/internal/game"
	"github.com/firsteleven/go-server/internal/match"
)

const (
	glyphUnknown = "⬜"
	glyphFailed  = "❌"
)

// RowOrder controls whether the goalkeeper row renders first or last.
type RowOrder int

const (
	GoalkeeperFirst RowOrder = iota
	GoalkeeperLast
)

// Render produces the shareable summary for one difficulty's daily game.
func Render(rec match.Record, gameID int, snap game.Snapshot, order RowOrder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "First Eleven #%d\n", gameID)
	fmt.Fprintf(&b, "%s • %s • %s\n", rec.Label, rec.Team, rec.Formation)
	fmt.Fprintf(&b, "Solved %d/%d • %d guesses • %d failed\n",
		snap.SolvedCount(), formation.LineupSize, snap.GuessCount(), snap.FailedCount())

	rows := renderRows(rec.Formation, snap)
	if order == GoalkeeperLast {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
	b.WriteString(strings.Join(rows, "\n"))
	return b.String()
}

func renderRows(formationCode string, snap game.Snapshot) []string {
	counts := formation.Rows(formationCode)
	rows := make([]string, 0, len(counts))
	id := 0
	for _, n := range counts {
		var row strings.Builder
		for i := 0; i < n; i++ {
			row.WriteString(slotGlyph(snap.Progress(id)))
			id++
		}
		rows = append(rows, row.String())
	}
	return rows
}

// slotGlyph picks the glyph for one player slot.
func slotGlyph(p game.Progress) string {
	switch {
	case p.Solved:
		return keycap(len(p.Guesses))
	case p.Failed():
		return glyphFailed
	default:
		return glyphUnknown
	}
}

// keycap renders 1..8 as the digit keycap emoji.
func keycap(n int) string {
	return fmt.Sprintf("%d️⃣", n)
}
