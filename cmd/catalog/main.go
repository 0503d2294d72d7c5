// Command catalog serves the /beoks book catalog.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bookshelf/internal/app"
	"bookshelf/internal/catalog"
	"bookshelf/internal/config"
	"bookshelf/internal/docstore"
	"bookshelf/internal/logger"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load(config.Defaults{Port: "3000", DataFile: "db.json", DocumentKey: "catalog"})
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

	repo, err := catalog.NewDocumentRepo(ctx, store)
	if err != nil {
		logg.Fatal().Err(err).Msg("load catalog failed")
	}
	books, _ := repo.List(ctx)
	logg.Info().Str("driver", cfg.StoreDriver).Int("books", len(books)).Msg("catalog loaded")

	handler := catalog.NewHTTPHandler(catalog.NewService(repo), logg)
	if err := app.Run(ctx, cfg, logg, catalog.ErrorKey, handler); err != nil {
		logg.Error().Err(err).Msg("server stopped")
		return
	}
	logg.Info().Msg("server stopped")
}
