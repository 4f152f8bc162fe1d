package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/nrl-scraper/internal/domain/rawdata"
	qb "github.com/riskibarqy/nrl-scraper/internal/platform/querybuilder"
)

type RawPayloadRepository struct {
	db *sqlx.DB
}

func NewRawPayloadRepository(db *sqlx.DB) *RawPayloadRepository {
	return &RawPayloadRepository{db: db}
}

type rawPayloadInsertModel struct {
	Source     string `db:"source"`
	EntityType string `db:"entity_type"`
	EntityKey  string `db:"entity_key"`
	Round      int    `db:"round"`
	Data       []byte `db:"data"`
}

func (r *RawPayloadRepository) Insert(ctx context.Context, p rawdata.Payload) error {
	model := rawPayloadInsertModel{
		Source:     p.Source,
		EntityType: p.EntityType,
		EntityKey:  p.EntityKey,
		Round:      p.Round,
		Data:       p.Data,
	}

	query, args, err := qb.InsertModel("raw_payloads", model, "")
	if err != nil {
		return fmt.Errorf("build insert raw payload query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert raw payload: %w", err)
	}

	return nil
}
