package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/nrl-scraper/internal/domain/match"
)

type matchTableModel struct {
	ID               int64         `db:"id"`
	Round            int           `db:"round"`
	Date             *time.Time    `db:"date"`
	Venue            string        `db:"venue"`
	HomeTeamID       int64         `db:"home_team_id"`
	AwayTeamID       sql.NullInt64 `db:"away_team_id"`
	ScoreHome        sql.NullInt64 `db:"score_home"`
	ScoreAway        sql.NullInt64 `db:"score_away"`
	Attendance       int           `db:"attendance"`
	Weather          string        `db:"weather"`
	GroundConditions string        `db:"ground_conditions"`
}

type matchInsertModel struct {
	Round            int           `db:"round"`
	Date             *time.Time    `db:"date"`
	Venue            string        `db:"venue"`
	HomeTeamID       int64         `db:"home_team_id"`
	AwayTeamID       sql.NullInt64 `db:"away_team_id"`
	ScoreHome        sql.NullInt64 `db:"score_home"`
	ScoreAway        sql.NullInt64 `db:"score_away"`
	Attendance       int           `db:"attendance"`
	Weather          string        `db:"weather"`
	GroundConditions string        `db:"ground_conditions"`
}

func (row matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:               row.ID,
		Round:            row.Round,
		Date:             row.Date,
		Venue:            row.Venue,
		HomeTeamID:       row.HomeTeamID,
		AwayTeamID:       nullInt64ToPtr(row.AwayTeamID),
		ScoreHome:        nullInt64ToIntPtr(row.ScoreHome),
		ScoreAway:        nullInt64ToIntPtr(row.ScoreAway),
		Attendance:       row.Attendance,
		Weather:          row.Weather,
		GroundConditions: row.GroundConditions,
	}
}

func matchToInsertModel(m match.Match) matchInsertModel {
	return matchInsertModel{
		Round:            m.Round,
		Date:             m.Date,
		Venue:            m.Venue,
		HomeTeamID:       m.HomeTeamID,
		AwayTeamID:       int64PtrToNull(m.AwayTeamID),
		ScoreHome:        intPtrToNull(m.ScoreHome),
		ScoreAway:        intPtrToNull(m.ScoreAway),
		Attendance:       m.Attendance,
		Weather:          m.Weather,
		GroundConditions: m.GroundConditions,
	}
}
