package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nrl-scraper/internal/domain/team"
	qb "github.com/riskibarqy/nrl-scraper/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

type teamTableModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type teamInsertModel struct {
	Name string `db:"name"`
}

func (r *TeamRepository) FindByName(ctx context.Context, name string) (team.Team, bool, error) {
	query, args, err := qb.Select("id", "name").From("teams").
		Where(qb.Eq("name", name)).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build select team by name query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("select team by name: %w", err)
	}

	return team.Team{ID: row.ID, Name: row.Name}, true, nil
}

func (r *TeamRepository) Create(ctx context.Context, name string) (team.Team, error) {
	query, args, err := qb.InsertModel("teams", teamInsertModel{Name: name}, "RETURNING id")
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}

	return team.Team{ID: id, Name: name}, nil
}
