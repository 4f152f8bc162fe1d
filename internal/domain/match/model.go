package match

import (
	"fmt"
	"time"
)

// ByeVenue is the sentinel venue recorded for bye matches.
const ByeVenue = "Bye"

// Match is one fixture in a round. A regular fixture is identified by
// (date, home team, away team); a bye is identified by (round, home team)
// with no away team, no date and no scores.
//
// Rows are immutable after creation: a re-scrape of the same fixture returns
// the existing row, score or venue corrections are not supported.
type Match struct {
	ID               int64
	Round            int
	Date             *time.Time
	Venue            string
	HomeTeamID       int64
	AwayTeamID       *int64
	ScoreHome        *int
	ScoreAway        *int
	Attendance       int
	Weather          string
	GroundConditions string
}

// IsBye reports whether the match records a team sitting out the round.
func (m Match) IsBye() bool {
	return m.AwayTeamID == nil
}

func (m Match) Validate() error {
	if m.Round <= 0 {
		return fmt.Errorf("match round must be greater than zero")
	}
	if m.HomeTeamID <= 0 {
		return fmt.Errorf("match home team is required")
	}
	if !m.IsBye() && m.Date == nil {
		return fmt.Errorf("match date is required for non-bye matches")
	}

	return nil
}
