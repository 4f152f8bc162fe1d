package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/nrl-scraper/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/nrl-scraper/internal/platform/logging"
)

func newEventFixture() (*EventService, *memory.EventRepository, *memory.EventRoleRepository) {
	roles := memory.NewEventRoleRepository()
	resolver := NewEntityResolver(
		memory.NewTeamRepository(),
		memory.NewPlayerRepository(),
		memory.NewEventTypeRepository(),
		roles,
		logging.NewNop(),
	)
	events := memory.NewEventRepository()
	return NewEventService(resolver, events, logging.NewNop()), events, roles
}

func TestUpsertEventWithPlayerLinksParticipant(t *testing.T) {
	t.Parallel()

	svc, events, _ := newEventFixture()

	created, err := svc.UpsertEvent(context.Background(), 1, ScrapedEvent{
		Timestamp:  "52:54",
		Title:      "Try",
		TeamName:   "Storm",
		PlayerName: "Cameron Munster",
		RoleName:   "Try Scorer",
	})
	if err != nil {
		t.Fatalf("upsert event: %v", err)
	}

	if created.GameTimeSec != 3174 {
		t.Fatalf("expected game time 3174, got %d", created.GameTimeSec)
	}
	if created.PlayerID == nil {
		t.Fatal("expected a player id on the event")
	}
	if created.TeamID == nil {
		t.Fatal("expected a team id on the event")
	}
	if created.Description != "Try Scorer" {
		t.Fatalf("expected description from role, got %q", created.Description)
	}

	participants := events.Participants()
	if len(participants) != 1 {
		t.Fatalf("expected 1 participant, got %d", len(participants))
	}
	if participants[0].EventID != created.ID || participants[0].PlayerID != *created.PlayerID {
		t.Fatalf("participant does not reference event: %+v", participants[0])
	}
	if participants[0].RoleID == nil {
		t.Fatal("expected a role id on the participant")
	}
}

func TestUpsertEventWithoutPlayerSkipsParticipant(t *testing.T) {
	t.Parallel()

	svc, events, _ := newEventFixture()

	created, err := svc.UpsertEvent(context.Background(), 1, ScrapedEvent{
		Timestamp: "40:00",
		Title:     "Half Time",
	})
	if err != nil {
		t.Fatalf("upsert event: %v", err)
	}

	if created.PlayerID != nil {
		t.Fatalf("expected nil player id, got %v", created.PlayerID)
	}
	if len(events.Participants()) != 0 {
		t.Fatalf("expected no participants, got %d", len(events.Participants()))
	}
}

func TestUpsertEventDuplicateKeyCollapses(t *testing.T) {
	t.Parallel()

	svc, events, _ := newEventFixture()
	ctx := context.Background()

	in := ScrapedEvent{Timestamp: "12:05", Title: "Penalty", TeamName: "Eels", PlayerName: "Mitchell Moses", RoleName: "Conceded"}

	first, err := svc.UpsertEvent(ctx, 1, in)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := svc.UpsertEvent(ctx, 1, in)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected same event id, got %d and %d", first.ID, second.ID)
	}
	if len(events.All()) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events.All()))
	}
	if len(events.Participants()) != 1 {
		t.Fatalf("expected participant added once, got %d", len(events.Participants()))
	}
}

func TestUpsertEventInterchangePairSurvives(t *testing.T) {
	t.Parallel()

	svc, events, _ := newEventFixture()
	ctx := context.Background()

	// Same match, type and second; only the player differs.
	on, err := svc.UpsertEvent(ctx, 1, ScrapedEvent{
		Timestamp: "65:20", Title: "Interchange", TeamName: "Panthers",
		PlayerName: "Player On", RoleName: "On",
	})
	if err != nil {
		t.Fatalf("upsert on: %v", err)
	}
	off, err := svc.UpsertEvent(ctx, 1, ScrapedEvent{
		Timestamp: "65:20", Title: "Interchange", TeamName: "Panthers",
		PlayerName: "Player Off", RoleName: "Off",
	})
	if err != nil {
		t.Fatalf("upsert off: %v", err)
	}

	if on.ID == off.ID {
		t.Fatalf("expected two event rows, both are %d", on.ID)
	}
	if len(events.All()) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events.All()))
	}
	if len(events.Participants()) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(events.Participants()))
	}
}

func TestUpsertEventPlayerlessDuplicatesCollapse(t *testing.T) {
	t.Parallel()

	svc, events, _ := newEventFixture()
	ctx := context.Background()

	in := ScrapedEvent{Timestamp: "00:00", Title: "Kick Off"}
	if _, err := svc.UpsertEvent(ctx, 1, in); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if _, err := svc.UpsertEvent(ctx, 1, in); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if len(events.All()) != 1 {
		t.Fatalf("expected playerless duplicates to collapse, got %d events", len(events.All()))
	}
}

func TestUpsertEventMalformedTimestampDefaultsToZero(t *testing.T) {
	t.Parallel()

	svc, _, _ := newEventFixture()

	created, err := svc.UpsertEvent(context.Background(), 1, ScrapedEvent{
		Timestamp: "full time", Title: "Full Time",
	})
	if err != nil {
		t.Fatalf("upsert event: %v", err)
	}
	if created.GameTimeSec != 0 {
		t.Fatalf("expected game time 0, got %d", created.GameTimeSec)
	}
}

func TestUpsertEventDescriptionFallsBackToPlayers(t *testing.T) {
	t.Parallel()

	svc, _, _ := newEventFixture()

	created, err := svc.UpsertEvent(context.Background(), 1, ScrapedEvent{
		Timestamp: "65:20",
		Title:     "Interchange",
		TeamName:  "Panthers",
		Players:   []string{"Player On", "Player Off"},
	})
	if err != nil {
		t.Fatalf("upsert event: %v", err)
	}
	if created.Description != "Player On, Player Off" {
		t.Fatalf("expected joined players description, got %q", created.Description)
	}
}

func TestUpsertEventEmptyRoleStillLinksParticipant(t *testing.T) {
	t.Parallel()

	svc, events, roles := newEventFixture()

	_, err := svc.UpsertEvent(context.Background(), 1, ScrapedEvent{
		Timestamp:  "10:30",
		Title:      "Error",
		TeamName:   "Storm",
		PlayerName: "Cameron Munster",
	})
	if err != nil {
		t.Fatalf("upsert event: %v", err)
	}

	participants := events.Participants()
	if len(participants) != 1 {
		t.Fatalf("expected 1 participant, got %d", len(participants))
	}
	if participants[0].RoleID == nil {
		t.Fatal("expected empty role name to resolve to a role row")
	}
	if roles.Len() != 1 {
		t.Fatalf("expected 1 role, got %d", roles.Len())
	}
}

func TestUpsertEventRejectsNegativeGameTime(t *testing.T) {
	t.Parallel()

	svc, events, _ := newEventFixture()

	// "-1:30" parses cleanly to a negative second count; the model gate has
	// to catch it before anything is persisted.
	_, err := svc.UpsertEvent(context.Background(), 1, ScrapedEvent{
		Timestamp: "-1:30", Title: "Try", TeamName: "Storm", PlayerName: "Cameron Munster",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(events.All()) != 0 {
		t.Fatalf("expected no event persisted, got %d", len(events.All()))
	}
	if len(events.Participants()) != 0 {
		t.Fatalf("expected no participant persisted, got %d", len(events.Participants()))
	}
}

func TestUpsertEventValidation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newEventFixture()
	ctx := context.Background()

	if _, err := svc.UpsertEvent(ctx, 0, ScrapedEvent{Title: "Try"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing match id, got %v", err)
	}
	if _, err := svc.UpsertEvent(ctx, 1, ScrapedEvent{Timestamp: "10:00"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing title, got %v", err)
	}
}
