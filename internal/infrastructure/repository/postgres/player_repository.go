package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nrl-scraper/internal/domain/player"
	qb "github.com/riskibarqy/nrl-scraper/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

type playerTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type playerInsertModel struct {
	Name string `db:"name"`
}

// FindByName returns the lowest-id player carrying the name. The players
// table allows duplicate names, so ordering keeps the lookup deterministic.
func (r *PlayerRepository) FindByName(ctx context.Context, name string) (player.Player, bool, error) {
	query, args, err := qb.Select("id", "name").From("players").
		Where(qb.Eq("name", name)).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by name query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by name: %w", err)
	}

	return player.Player{ID: row.ID, Name: row.Name}, true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, name string) (player.Player, error) {
	query, args, err := qb.InsertModel("players", playerInsertModel{Name: name}, "RETURNING id")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	return player.Player{ID: id, Name: name}, nil
}
