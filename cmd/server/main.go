package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/flatfinder/rentals-backend-go/internal/api"
	"github.com/flatfinder/rentals-backend-go/internal/config"
	"github.com/flatfinder/rentals-backend-go/internal/dataset"
	"github.com/flatfinder/rentals-backend-go/internal/handler"
	"github.com/flatfinder/rentals-backend-go/internal/query"
)

func main() {
	cfg := config.Load()

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	var source dataset.RowSource
	switch cfg.DatasetDriver {
	case "sqlite":
		source = dataset.NewSQLiteSource(cfg.DatasetPath, cfg.DatasetTable)
	default:
		source = dataset.NewCSVSource(cfg.DatasetPath)
	}

	store, err := dataset.Load(source, logger)
	if err != nil {
		logger.Error("failed to load dataset", "path", cfg.DatasetPath, "err", err)
		os.Exit(1)
	}

	orch := query.NewOrchestrator(store, logger)
	h := handler.NewListingsHandler(orch, store)

	router := api.SetupRouter(cfg, h, logger)

	logger.Info("server starting", "port", cfg.Port, "listings", store.Len())
	if err := router.Run(cfg.Port); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
