package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nrl-scraper/internal/domain/event"
	qb "github.com/riskibarqy/nrl-scraper/internal/platform/querybuilder"
)

type EventRoleRepository struct {
	db *sqlx.DB
}

func NewEventRoleRepository(db *sqlx.DB) *EventRoleRepository {
	return &EventRoleRepository{db: db}
}

type eventRoleTableModel struct {
	ID       int64  `db:"id"`
	RoleName string `db:"role_name"`
}

type eventRoleInsertModel struct {
	RoleName string `db:"role_name"`
}

func (r *EventRoleRepository) FindByName(ctx context.Context, roleName string) (event.Role, bool, error) {
	query, args, err := qb.Select("id", "role_name").From("event_roles").
		Where(qb.Eq("role_name", roleName)).
		Limit(1).
		ToSQL()
	if err != nil {
		return event.Role{}, false, fmt.Errorf("build select event role by name query: %w", err)
	}

	var row eventRoleTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Role{}, false, nil
		}
		return event.Role{}, false, fmt.Errorf("select event role by name: %w", err)
	}

	return event.Role{ID: row.ID, RoleName: row.RoleName}, true, nil
}

func (r *EventRoleRepository) Create(ctx context.Context, roleName string) (event.Role, error) {
	query, args, err := qb.InsertModel("event_roles", eventRoleInsertModel{RoleName: roleName}, "RETURNING id")
	if err != nil {
		return event.Role{}, fmt.Errorf("build insert event role query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return event.Role{}, fmt.Errorf("insert event role: %w", err)
	}

	return event.Role{ID: id, RoleName: roleName}, nil
}
