package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cricstats/livestats/internal/app"
	"github.com/cricstats/livestats/internal/config"
	"github.com/cricstats/livestats/internal/platform/logging"
	"github.com/cricstats/livestats/internal/usecase"
)

func main() {
	playersFlag := flag.String("players", "", "comma separated Cricbuzz player ids to ingest; empty uses trending players")
	matchesFlag := flag.Bool("matches", false, "ingest recent matches and their scorecards")
	limitFlag := flag.Int("limit", 0, "cap on items per ingestion run, 0 uses the configured default")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	services, err := app.BuildServices(ctx, cfg, logger)
	if err != nil {
		logger.Error("build services", "error", err)
		os.Exit(1)
	}
	defer services.Close()

	ingestPlayers := *playersFlag != "" || !*matchesFlag
	failed := false

	if ingestPlayers {
		limit := *limitFlag
		if limit == 0 {
			limit = cfg.IngestPlayerLimit
		}
		report, err := services.PlayerLoader.Load(ctx, splitIDs(*playersFlag), limit)
		if err != nil {
			logger.Error("player ingestion aborted", "error", err)
			failed = true
		} else {
			printReport("players", report)
		}
	}

	if *matchesFlag {
		limit := *limitFlag
		if limit == 0 {
			limit = cfg.IngestMatchLimit
		}
		report, err := services.MatchLoader.LoadRecent(ctx, limit)
		if err != nil {
			logger.Error("match ingestion aborted", "error", err)
			failed = true
		} else {
			printReport("matches", report)
		}
	}

	if failed {
		os.Exit(1)
	}
}

func splitIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		out = append(out, id)
	}
	return out
}

func printReport(kind string, report *usecase.Report) {
	fmt.Printf("%s: %d succeeded, %d skipped, %d failed\n",
		kind, report.Succeeded(), report.Skipped(), report.Failed())
	for _, item := range report.Items {
		if item.Reason == "" {
			fmt.Printf("  %-8s %s\n", item.Status, item.Key)
			continue
		}
		fmt.Printf("  %-8s %s (%s)\n", item.Status, item.Key, item.Reason)
	}
}
