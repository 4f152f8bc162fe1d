package match

import (
	"context"
	"time"
)

// Repository describes match persistence needs from use cases.
type Repository interface {
	// FindByFixture looks up a regular match by its dedup key
	// (date, home_team_id, away_team_id).
	FindByFixture(ctx context.Context, date time.Time, homeTeamID, awayTeamID int64) (Match, bool, error)
	// FindBye looks up a bye by (round, home_team_id) with away team absent.
	FindBye(ctx context.Context, round int, teamID int64) (Match, bool, error)
	Create(ctx context.Context, m Match) (Match, error)
}
