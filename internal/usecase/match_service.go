package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/nrl-scraper/internal/domain/match"
	"github.com/riskibarqy/nrl-scraper/internal/platform/logging"
)

// MatchService reconciles scraped match data against stored fixtures.
//
// A fixture is keyed by (date, home team, away team); a bye by (round, team).
// Match rows are never updated after creation: a re-scrape returning
// different scores or venue for the same key yields the originally stored
// row unchanged.
type MatchService struct {
	resolver  *EntityResolver
	matchRepo match.Repository
	logger    *logging.Logger
}

func NewMatchService(resolver *EntityResolver, matchRepo match.Repository, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		resolver:  resolver,
		matchRepo: matchRepo,
		logger:    logger,
	}
}

// UpsertMatch reconciles one scraped fixture. The bool reports whether a new
// row was created; re-scrapes of a known fixture return the stored row
// unchanged with false.
func (s *MatchService) UpsertMatch(ctx context.Context, in ScrapedMatch) (match.Match, bool, error) {
	home, err := s.resolver.ResolveTeam(ctx, in.HomeName)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("resolve home team: %w", err)
	}
	away, err := s.resolver.ResolveTeam(ctx, in.AwayName)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("resolve away team: %w", err)
	}

	existing, ok, err := s.matchRepo.FindByFixture(ctx, in.Date, home.ID, away.ID)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("find match %s vs %s: %w", in.HomeName, in.AwayName, err)
	}
	if ok {
		return existing, false, nil
	}

	attendance, err := normalizeAttendance(in.Attendance)
	if err != nil {
		s.logger.WarnContext(ctx, "unparsable attendance, defaulting to 0",
			"attendance", in.Attendance, "home", in.HomeName, "away", in.AwayName)
	}

	date := in.Date
	awayID := away.ID
	scoreHome := in.HomeScore
	scoreAway := in.AwayScore
	candidate := match.Match{
		Round:            in.Round,
		Date:             &date,
		Venue:            in.Venue,
		HomeTeamID:       home.ID,
		AwayTeamID:       &awayID,
		ScoreHome:        &scoreHome,
		ScoreAway:        &scoreAway,
		Attendance:       attendance,
		Weather:          in.Weather,
		GroundConditions: in.GroundConditions,
	}
	if err := candidate.Validate(); err != nil {
		return match.Match{}, false, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	created, err := s.matchRepo.Create(ctx, candidate)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("create match %s vs %s: %w", in.HomeName, in.AwayName, err)
	}
	s.logger.InfoContext(ctx, "created match",
		"match_id", created.ID, "round", in.Round, "home", in.HomeName, "away", in.AwayName)

	return created, true, nil
}

// UpsertBye records a team sitting out the round. Returns nil when the bye
// already exists.
func (s *MatchService) UpsertBye(ctx context.Context, teamName string, round int) (*match.Match, error) {
	t, err := s.resolver.ResolveTeam(ctx, teamName)
	if err != nil {
		return nil, fmt.Errorf("resolve bye team: %w", err)
	}

	_, ok, err := s.matchRepo.FindBye(ctx, round, t.ID)
	if err != nil {
		return nil, fmt.Errorf("find bye for %s round %d: %w", teamName, round, err)
	}
	if ok {
		s.logger.InfoContext(ctx, "bye already recorded", "team", teamName, "round", round)
		return nil, nil
	}

	candidate := match.Match{
		Round:      round,
		Venue:      match.ByeVenue,
		HomeTeamID: t.ID,
	}
	if err := candidate.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	created, err := s.matchRepo.Create(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("create bye for %s round %d: %w", teamName, round, err)
	}
	s.logger.InfoContext(ctx, "created bye", "match_id", created.ID, "team", teamName, "round", round)

	return &created, nil
}

// normalizeAttendance strips thousands separators from a scraped attendance
// figure. Absent or unparsable input normalizes to 0.
func normalizeAttendance(raw string) (int, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("attendance %q is not numeric: %w", raw, err)
	}

	return n, nil
}
