package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/firsteleven/go-server/internal/daily"
	"github.com/firsteleven/go-server/internal/httpserver"
	"github.com/firsteleven/go-server/internal/match"
	"github.com/firsteleven/go-server/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	pools, err := match.Load(os.Getenv("GAMES_CSV_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load match data")
	}
	if len(pools.Easy) == 0 || len(pools.Hard) == 0 {
		log.Fatal().
			Int("easy", len(pools.Easy)).
			Int("hard", len(pools.Hard)).
			Msg("match data must fill both difficulty pools")
	}

	db, err := openDB(getEnv("DB_PATH", "./data/app.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	loc := daily.Location(os.Getenv("DAILY_TZ"))
	srv := httpserver.New(store.NewSQLite(db), db, pools, loc)

	port := getEnv("PORT", "5175")
	log.Info().
		Str("port", port).
		Int("easy_pool", len(pools.Easy)).
		Int("hard_pool", len(pools.Hard)).
		Msg("starting go-server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
