package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nrl-scraper/internal/domain/event"
	qb "github.com/riskibarqy/nrl-scraper/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

var eventSelectColumns = []string{
	"id",
	"match_id",
	"team_id",
	"event_type_id",
	"player_id",
	"game_time_sec",
	"description",
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) FindByDedupKey(ctx context.Context, matchID, eventTypeID int64, gameTimeSec int, playerID *int64) (event.Event, bool, error) {
	conditions := []qb.Condition{
		qb.Eq("match_id", matchID),
		qb.Eq("event_type_id", eventTypeID),
		qb.Eq("game_time_sec", gameTimeSec),
	}
	if playerID == nil {
		conditions = append(conditions, qb.IsNull("player_id"))
	} else {
		conditions = append(conditions, qb.Eq("player_id", *playerID))
	}

	query, args, err := qb.Select(eventSelectColumns...).From("events").
		Where(conditions...).
		Limit(1).
		ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build select event by dedup key query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("select event by dedup key: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *EventRepository) Create(ctx context.Context, e event.Event) (event.Event, error) {
	query, args, err := qb.InsertModel("events", eventToInsertModel(e), "RETURNING id")
	if err != nil {
		return event.Event{}, fmt.Errorf("build insert event query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return event.Event{}, fmt.Errorf("insert event: %w", err)
	}

	e.ID = id
	return e, nil
}

func (r *EventRepository) CreateParticipant(ctx context.Context, p event.Participant) error {
	model := eventParticipantInsertModel{
		EventID:  p.EventID,
		PlayerID: p.PlayerID,
		RoleID:   int64PtrToNull(p.RoleID),
	}

	query, args, err := qb.InsertModel("event_players", model, "")
	if err != nil {
		return fmt.Errorf("build insert event participant query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert event participant: %w", err)
	}

	return nil
}

func (r *EventRepository) CountByMatch(ctx context.Context, matchID int64) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("events").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count events by match query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count events by match: %w", err)
	}

	return count, nil
}
