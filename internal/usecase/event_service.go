package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/nrl-scraper/internal/domain/event"
	"github.com/riskibarqy/nrl-scraper/internal/platform/logging"
)

// EventService reconciles play-by-play entries against stored events.
//
// The dedup key is (match, event type, game time in seconds, player), with
// nullable-aware player equality. The key is deliberately loose: two entries
// identical in all four fields collapse into one row, while an interchange
// pair at the same second survives as two rows because the players differ.
// Once an event exists for the key, no participant link is added on later
// passes either.
type EventService struct {
	resolver  *EntityResolver
	eventRepo event.Repository
	logger    *logging.Logger
}

func NewEventService(resolver *EntityResolver, eventRepo event.Repository, logger *logging.Logger) *EventService {
	if logger == nil {
		logger = logging.Default()
	}
	return &EventService{
		resolver:  resolver,
		eventRepo: eventRepo,
		logger:    logger,
	}
}

func (s *EventService) UpsertEvent(ctx context.Context, matchID int64, in ScrapedEvent) (event.Event, error) {
	if matchID <= 0 {
		return event.Event{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Title) == "" {
		return event.Event{}, fmt.Errorf("%w: event title is required", ErrInvalidInput)
	}

	eventType, err := s.resolver.ResolveEventType(ctx, in.Title)
	if err != nil {
		return event.Event{}, fmt.Errorf("resolve event type: %w", err)
	}

	var teamID *int64
	if strings.TrimSpace(in.TeamName) != "" {
		t, err := s.resolver.ResolveTeam(ctx, in.TeamName)
		if err != nil {
			return event.Event{}, fmt.Errorf("resolve event team: %w", err)
		}
		teamID = &t.ID
	}

	var playerID *int64
	if strings.TrimSpace(in.PlayerName) != "" {
		p, err := s.resolver.ResolvePlayer(ctx, in.PlayerName)
		if err != nil {
			return event.Event{}, fmt.Errorf("resolve event player: %w", err)
		}
		playerID = &p.ID
	}

	gameTime, err := event.ParseGameTime(in.Timestamp)
	if err != nil {
		s.logger.WarnContext(ctx, "malformed game time, defaulting to 0",
			"timestamp", in.Timestamp, "title", in.Title, "error", err)
	}

	existing, ok, err := s.eventRepo.FindByDedupKey(ctx, matchID, eventType.ID, gameTime, playerID)
	if err != nil {
		return event.Event{}, fmt.Errorf("find event by dedup key: %w", err)
	}
	if ok {
		return existing, nil
	}

	description := in.RoleName
	if description == "" && len(in.Players) > 0 {
		description = strings.Join(in.Players, ", ")
	}

	candidate := event.Event{
		MatchID:     matchID,
		TeamID:      teamID,
		EventTypeID: eventType.ID,
		PlayerID:    playerID,
		GameTimeSec: gameTime,
		Description: description,
	}
	if err := candidate.Validate(); err != nil {
		return event.Event{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	created, err := s.eventRepo.Create(ctx, candidate)
	if err != nil {
		return event.Event{}, fmt.Errorf("create event %q at %ds: %w", in.Title, gameTime, err)
	}

	if playerID != nil {
		role, err := s.resolver.ResolveEventRole(ctx, in.RoleName)
		if err != nil {
			return created, fmt.Errorf("resolve role for event %d: %w", created.ID, err)
		}
		roleID := role.ID
		if err := s.eventRepo.CreateParticipant(ctx, event.Participant{
			EventID:  created.ID,
			PlayerID: *playerID,
			RoleID:   &roleID,
		}); err != nil {
			return created, fmt.Errorf("link player %d to event %d: %w", *playerID, created.ID, err)
		}
	}

	return created, nil
}
