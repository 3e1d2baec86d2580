// cmd/seed runs the bootstrap once against DATABASE_URL and exits.
// Usage: go run ./cmd/seed [-reset]
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/config"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/infra"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/seed"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	reset := flag.Bool("reset", false, "vaciar los catálogos antes de poblar")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	// Invoking this command IS the opt-in; SEED_ENABLED only gates the
	// in-server run.
	seeder := seed.New(
		seed.Config{Enabled: true, Reset: *reset || cfg.SeedReset},
		seed.NewRepos(db),
		log.Logger,
	)
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}
