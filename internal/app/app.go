package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/nrl-scraper/external/nrl"
	"github.com/riskibarqy/nrl-scraper/internal/config"
	"github.com/riskibarqy/nrl-scraper/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/nrl-scraper/internal/platform/logging"
	"github.com/riskibarqy/nrl-scraper/internal/usecase"
)

// ScrapeOptions selects the season slice the job walks.
type ScrapeOptions struct {
	Season        int
	CompetitionID int
}

// NewScrapeJob wires the database, repositories and the browser-backed
// fetcher into a ready ScrapeService. The returned cleanup releases the
// browser and the connection pool; callers must invoke it exactly once,
// on every exit path.
func NewScrapeJob(ctx context.Context, cfg config.Config, opts ScrapeOptions, logger *logging.Logger) (*usecase.ScrapeService, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := connectDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	fetcher, releaseBrowser, err := nrl.NewClient(ctx, nrl.ClientConfig{
		BaseURL:        cfg.BaseURL,
		CompetitionID:  opts.CompetitionID,
		Season:         opts.Season,
		Headless:       cfg.Headless,
		NavTimeout:     cfg.NavTimeout,
		MaxPoliteDelay: cfg.MaxPoliteDelay,
		Logger:         logger,
	})
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("allocate browser: %w", err)
	}

	cleanup := func() {
		releaseBrowser()
		if err := db.Close(); err != nil {
			logger.Warn("close db", "error", err)
		}
	}

	resolver := usecase.NewEntityResolver(
		postgres.NewTeamRepository(db),
		postgres.NewPlayerRepository(db),
		postgres.NewEventTypeRepository(db),
		postgres.NewEventRoleRepository(db),
		logger,
	)
	eventRepo := postgres.NewEventRepository(db)

	matchSvc := usecase.NewMatchService(resolver, postgres.NewMatchRepository(db), logger)
	eventSvc := usecase.NewEventService(resolver, eventRepo, logger)

	svc := usecase.NewScrapeService(
		fetcher,
		matchSvc,
		eventSvc,
		eventRepo,
		postgres.NewRawPayloadRepository(db),
		logger,
	)

	return svc, cleanup, nil
}
