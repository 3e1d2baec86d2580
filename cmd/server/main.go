package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/config"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/infra"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/router"
	"github.com/eliastg28/inmobiliaria-backend-sub000/internal/seed"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger. dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	// One-shot bootstrap before the server starts taking traffic. A failed
	// run (missing parent, storage error) is fatal to the process: starting
	// with a half-populated store is worse than not starting.
	seeder := seed.New(
		seed.Config{Enabled: cfg.SeedEnabled, Reset: cfg.SeedReset},
		seed.NewRepos(db),
		log.Logger,
	)
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	r := router.New(cfg, db)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("inmobiliaria backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
