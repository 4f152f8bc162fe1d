package usecase

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/nrl-scraper/internal/domain/event"
	"github.com/riskibarqy/nrl-scraper/internal/domain/rawdata"
	"github.com/riskibarqy/nrl-scraper/internal/platform/logging"
)

const payloadSource = "nrl.com"

// ScrapeService walks rounds forward from a starting round to the most
// recently completed one, reconciling byes, matches and timelines.
//
// Execution is strictly sequential: one page at a time, one record at a time,
// each record committed as its own unit of work. A failed record is logged
// and skipped; the run carries on. Only a failed round listing (or failing to
// determine the latest round) aborts the run.
type ScrapeService struct {
	fetcher   Fetcher
	matchSvc  *MatchService
	eventSvc  *EventService
	eventRepo event.Repository
	rawRepo   rawdata.Repository
	logger    *logging.Logger
}

func NewScrapeService(
	fetcher Fetcher,
	matchSvc *MatchService,
	eventSvc *EventService,
	eventRepo event.Repository,
	rawRepo rawdata.Repository,
	logger *logging.Logger,
) *ScrapeService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ScrapeService{
		fetcher:   fetcher,
		matchSvc:  matchSvc,
		eventSvc:  eventSvc,
		eventRepo: eventRepo,
		rawRepo:   rawRepo,
		logger:    logger,
	}
}

// Run scrapes rounds [startRound, latest). The latest round is the one the
// draw page currently redirects to; it may still be in progress, so it is
// excluded.
func (s *ScrapeService) Run(ctx context.Context, startRound int) error {
	if startRound <= 0 {
		return fmt.Errorf("%w: start round must be greater than zero", ErrInvalidInput)
	}

	latest, err := s.fetcher.LatestRound(ctx)
	if err != nil {
		return fmt.Errorf("determine latest round: %w", err)
	}
	s.logger.InfoContext(ctx, "latest round determined", "latest_round", latest)

	for round := startRound; round < latest; round++ {
		if err := s.ScrapeRound(ctx, round); err != nil {
			return err
		}
	}

	return nil
}

// ScrapeRound reconciles one round: byes first, then each match page.
func (s *ScrapeService) ScrapeRound(ctx context.Context, round int) error {
	page, err := s.fetcher.FetchRound(ctx, round)
	if err != nil {
		return fmt.Errorf("fetch round %d listing: %w", round, err)
	}
	s.logger.InfoContext(ctx, "scraping round",
		"round", round, "byes", len(page.ByeTeams), "matches", len(page.MatchPaths))

	for _, teamName := range page.ByeTeams {
		if _, err := s.matchSvc.UpsertBye(ctx, teamName, round); err != nil {
			s.logger.ErrorContext(ctx, "upsert bye failed", "team", teamName, "round", round, "error", err)
		}
	}

	for _, path := range page.MatchPaths {
		s.scrapeMatch(ctx, round, path)
	}

	return nil
}

func (s *ScrapeService) scrapeMatch(ctx context.Context, round int, path string) {
	scraped, err := s.fetcher.FetchMatch(ctx, path)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch match page failed", "path", path, "error", err)
		return
	}

	for _, sm := range scraped {
		m, created, err := s.matchSvc.UpsertMatch(ctx, sm)
		if err != nil {
			s.logger.ErrorContext(ctx, "upsert match failed",
				"home", sm.HomeName, "away", sm.AwayName, "error", err)
			continue
		}
		// Archive only on first sight; re-scrapes of a known fixture would
		// otherwise pile up duplicate payload rows.
		if created {
			s.archiveMatchPayload(ctx, round, path, sm)
		}

		count, err := s.eventRepo.CountByMatch(ctx, m.ID)
		if err != nil {
			s.logger.ErrorContext(ctx, "count match events failed", "match_id", m.ID, "error", err)
			continue
		}
		if count > 0 {
			s.logger.InfoContext(ctx, "match already has events, skipping timeline",
				"match_id", m.ID, "events", count)
			continue
		}

		events, err := s.fetcher.FetchMatchEvents(ctx)
		if err != nil {
			// Timeline failures never abort the round; the match stays
			// event-free and is retried next run.
			s.logger.ErrorContext(ctx, "fetch match timeline failed", "match_id", m.ID, "error", err)
			continue
		}
		for _, ev := range events {
			if _, err := s.eventSvc.UpsertEvent(ctx, m.ID, ev); err != nil {
				s.logger.ErrorContext(ctx, "upsert event failed",
					"match_id", m.ID, "title", ev.Title, "timestamp", ev.Timestamp, "error", err)
			}
		}
	}
}

func (s *ScrapeService) archiveMatchPayload(ctx context.Context, round int, path string, sm ScrapedMatch) {
	if s.rawRepo == nil {
		return
	}

	data, err := sonic.Marshal(sm)
	if err != nil {
		s.logger.WarnContext(ctx, "marshal raw match payload failed", "path", path, "error", err)
		return
	}
	if err := s.rawRepo.Insert(ctx, rawdata.Payload{
		Source:     payloadSource,
		EntityType: "match",
		EntityKey:  path,
		Round:      round,
		Data:       data,
	}); err != nil {
		s.logger.WarnContext(ctx, "archive raw match payload failed", "path", path, "error", err)
	}
}
