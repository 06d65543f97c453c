// assets/embed.go
//
// Embedded default game data so the server runs with zero configuration.
// Production deployments point GAMES_CSV_FILE at a full data set; this
// small sample keeps development and tests self-contained.

package assets

import _ "embed"

//go:embed default_games.csv
var DefaultGamesCSV string
