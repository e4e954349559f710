package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/oyvindh/kortsync/app/cfg"
	"github.com/oyvindh/kortsync/app/cms"
	"github.com/oyvindh/kortsync/app/feed"
	"github.com/oyvindh/kortsync/app/mapping"
	"github.com/oyvindh/kortsync/app/reconcile"
)

func main() {
	// Credentials may live in a local .env file; a missing file is fine.
	_ = godotenv.Load()

	appConfig, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appConfig == nil {
		// Help was shown, exit gracefully
		return
	}

	setupLogger(appConfig.Debug)

	runID := uuid.NewString()[:8]
	slog.Info("Starting sync run",
		"run", runID,
		"version", appConfig.Version,
		"feed_url", appConfig.FeedURL)

	table, err := mapping.Load(appConfig.MappingFile)
	if err != nil {
		slog.Error("Failed to load field mapping", "error", err)
		os.Exit(1)
	}
	slog.Info("Field mapping loaded", "fields", len(table.Fields))

	ctx := context.Background()
	httpClient := &http.Client{Timeout: appConfig.Timeout}

	fetcher := feed.NewFetcher(httpClient, appConfig.FeedURL,
		appConfig.FeedUsername, appConfig.FeedPassword, appConfig.UserAgent)

	data, err := fetcher.Run(ctx)
	if err != nil {
		slog.Error("Failed to fetch feed", "error", err)
		os.Exit(1)
	}

	entries, err := feed.NewParser().Run(data)
	if err != nil {
		slog.Error("Failed to parse feed", "error", err)
		os.Exit(1)
	}
	slog.Info("Feed parsed", "entries", len(entries))

	client := cms.NewClient(httpClient, appConfig.CMSURL, appConfig.CMSToken, appConfig.UserAgent)

	directory := cms.NewDirectoryFetcher(client, appConfig.OffersCollectionID,
		appConfig.PageSize, appConfig.PageDelay).Run(ctx)

	banks := cms.NewBankResolver(client, appConfig.BanksCollectionID,
		appConfig.PageSize, appConfig.BankPages)

	reconciler := reconcile.NewReconciler(client, banks, table,
		appConfig.OffersCollectionID, appConfig.EntryDelay)

	report := reconciler.Run(ctx, entries, directory)

	slog.Info("Run finished",
		"run", runID,
		"total", report.Total,
		"updated", report.Updated,
		"created", report.Created,
		"failed", report.Failed)
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
