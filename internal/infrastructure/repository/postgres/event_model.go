package postgres

import (
	"database/sql"

	"github.com/riskibarqy/nrl-scraper/internal/domain/event"
)

type eventTableModel struct {
	ID          int64         `db:"id"`
	MatchID     int64         `db:"match_id"`
	TeamID      sql.NullInt64 `db:"team_id"`
	EventTypeID int64         `db:"event_type_id"`
	PlayerID    sql.NullInt64 `db:"player_id"`
	GameTimeSec int           `db:"game_time_sec"`
	Description string        `db:"description"`
}

type eventInsertModel struct {
	MatchID     int64         `db:"match_id"`
	TeamID      sql.NullInt64 `db:"team_id"`
	EventTypeID int64         `db:"event_type_id"`
	PlayerID    sql.NullInt64 `db:"player_id"`
	GameTimeSec int           `db:"game_time_sec"`
	Description string        `db:"description"`
}

type eventParticipantInsertModel struct {
	EventID  int64         `db:"event_id"`
	PlayerID int64         `db:"player_id"`
	RoleID   sql.NullInt64 `db:"role_id"`
}

func (row eventTableModel) toDomain() event.Event {
	return event.Event{
		ID:          row.ID,
		MatchID:     row.MatchID,
		TeamID:      nullInt64ToPtr(row.TeamID),
		EventTypeID: row.EventTypeID,
		PlayerID:    nullInt64ToPtr(row.PlayerID),
		GameTimeSec: row.GameTimeSec,
		Description: row.Description,
	}
}

func eventToInsertModel(e event.Event) eventInsertModel {
	return eventInsertModel{
		MatchID:     e.MatchID,
		TeamID:      int64PtrToNull(e.TeamID),
		EventTypeID: e.EventTypeID,
		PlayerID:    int64PtrToNull(e.PlayerID),
		GameTimeSec: e.GameTimeSec,
		Description: e.Description,
	}
}
