package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nrl-scraper/internal/domain/event"
	qb "github.com/riskibarqy/nrl-scraper/internal/platform/querybuilder"
)

type EventTypeRepository struct {
	db *sqlx.DB
}

func NewEventTypeRepository(db *sqlx.DB) *EventTypeRepository {
	return &EventTypeRepository{db: db}
}

type eventTypeTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type eventTypeInsertModel struct {
	Name string `db:"name"`
}

func (r *EventTypeRepository) FindByName(ctx context.Context, name string) (event.Type, bool, error) {
	query, args, err := qb.Select("id", "name").From("event_types").
		Where(qb.Eq("name", name)).
		Limit(1).
		ToSQL()
	if err != nil {
		return event.Type{}, false, fmt.Errorf("build select event type by name query: %w", err)
	}

	var row eventTypeTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Type{}, false, nil
		}
		return event.Type{}, false, fmt.Errorf("select event type by name: %w", err)
	}

	return event.Type{ID: row.ID, Name: row.Name}, true, nil
}

func (r *EventTypeRepository) Create(ctx context.Context, name string) (event.Type, error) {
	query, args, err := qb.InsertModel("event_types", eventTypeInsertModel{Name: name}, "RETURNING id")
	if err != nil {
		return event.Type{}, fmt.Errorf("build insert event type query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return event.Type{}, fmt.Errorf("insert event type: %w", err)
	}

	return event.Type{ID: id, Name: name}, nil
}
