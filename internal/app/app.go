package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/cricstats/livestats/external/cricbuzz"
	"github.com/cricstats/livestats/internal/config"
	"github.com/cricstats/livestats/internal/infrastructure/repository/sqlite"
	"github.com/cricstats/livestats/internal/interfaces/httpapi"
	"github.com/cricstats/livestats/internal/platform/logging"
	"github.com/cricstats/livestats/internal/usecase"
)

// Services bundles the wired use cases so both the HTTP server and the
// ingestion CLI can share one construction path.
type Services struct {
	DB           *sqlx.DB
	Stats        *usecase.StatsService
	PlayerLoader *usecase.PlayerLoader
	MatchLoader  *usecase.MatchLoader
	Live         *usecase.LiveService
	Queries      *usecase.QueryService
	Tables       *usecase.TableService
}

func (s *Services) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// BuildServices opens the store, migrates it, seeds demo data when configured
// and wires every use case on top.
func BuildServices(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	if err := sqlite.EnsureSchema(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	if cfg.SeedDemoData {
		if err := sqlite.BootstrapSeed(ctx, db, logger); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seed store: %w", err)
		}
	}

	api := cricbuzz.NewClient(cricbuzz.ClientConfig{
		Host:       cfg.CricbuzzAPIHost,
		APIKey:     cfg.CricbuzzAPIKey,
		Timeout:    cfg.CricbuzzTimeout,
		MaxRetries: cfg.CricbuzzMaxRetries,
		Backoff:    cfg.CricbuzzBackoff,
		CallDelay:  cfg.CricbuzzCallDelay,
		Logger:     logger,
	})

	playerRepo := sqlite.NewPlayerRepository(db)
	matchRepo := sqlite.NewMatchRepository(db)
	venueRepo := sqlite.NewVenueRepository(db)
	seriesRepo := sqlite.NewSeriesRepository(db)
	inningsRepo := sqlite.NewInningsRepository(db)

	return &Services{
		DB:           db,
		Stats:        usecase.NewStatsService(playerRepo, matchRepo),
		PlayerLoader: usecase.NewPlayerLoader(api, playerRepo, logger),
		MatchLoader:  usecase.NewMatchLoader(api, matchRepo, venueRepo, seriesRepo, inningsRepo, logger),
		Live:         usecase.NewLiveService(api),
		Queries:      usecase.NewQueryService(sqlite.NewQueryRunner(db)),
		Tables:       usecase.NewTableService(sqlite.NewTableAdmin(db)),
	}, nil
}

// NewHTTPServer wires the full service stack behind an http.Server.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, *Services, error) {
	services, err := BuildServices(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	handler := httpapi.NewHandler(
		services.Stats,
		services.PlayerLoader,
		services.MatchLoader,
		services.Live,
		services.Queries,
		services.Tables,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = services.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, services, nil
}
