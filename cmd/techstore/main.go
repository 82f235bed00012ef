package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ahinestrog/techstore/internal/cart"
	"github.com/ahinestrog/techstore/internal/config"
	"github.com/ahinestrog/techstore/internal/store"
	"github.com/ahinestrog/techstore/internal/ui"
)

func main() {
	// Logger
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	log.Info().
		Str("app", cfg.AppName).
		Str("history", cfg.HistoryDSN).
		Msg("starting techstore console")

	repo, err := store.NewRepository(cfg.HistoryDSN)
	must(err)
	defer repo.Close()

	service, err := cart.NewService(repo)
	must(err)

	console := ui.NewConsoleUI(service, os.Stdin, os.Stdout)
	console.Run(context.Background())

	log.Info().Msg("bye")
}

func must(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}
