// Command lending serves the /api/books lending collection.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bookshelf/internal/app"
	"bookshelf/internal/config"
	"bookshelf/internal/docstore"
	"bookshelf/internal/lending"
	"bookshelf/internal/logger"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load(config.Defaults{Port: "3000", DataFile: "db.json", DocumentKey: "lending"})
	if err != nil {
		log.Fatal(err)
	}
	logg := logger.Get(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := docstore.Open(ctx, docstore.Options{
		Driver: cfg.StoreDriver,
		Path:   cfg.DataFile,
		DSN:    cfg.DatabaseDSN,
		Key:    cfg.DocumentKey,
	})
	if err != nil {
		logg.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("open document store failed")
	}
	defer closeStore()

	repo := lending.NewDocumentRepo(store)
	if err := repo.Init(ctx); err != nil {
		logg.Fatal().Err(err).Msg("initialize lending document failed")
	}

	handler := lending.NewHTTPHandler(lending.NewService(repo), logg)
	if err := app.Run(ctx, cfg, logg, lending.ErrorKey, handler); err != nil {
		logg.Error().Err(err).Msg("server stopped")
		return
	}
	logg.Info().Msg("server stopped")
}
