package usecase

import (
	"context"
	"time"
)

// ScrapedMatch is one match extracted from a rendered match page.
// Attendance stays a raw string ("15,234") until the match reconciler
// normalizes it.
type ScrapedMatch struct {
	Round            int
	Date             time.Time
	HomeName         string
	AwayName         string
	HomeScore        int
	AwayScore        int
	Venue            string
	GroundConditions string
	Weather          string
	Attendance       string
}

// ScrapedEvent is one play-by-play entry extracted from a match timeline.
// Multi-participant entries (interchange on/off pairs) arrive as separate
// ScrapedEvents sharing timestamp and title.
type ScrapedEvent struct {
	Timestamp  string
	Title      string
	TeamName   string
	PlayerName string
	RoleName   string
	Players    []string
}

// RoundPage is the draw listing for one round: teams sitting out plus the
// relative paths of the match detail pages.
type RoundPage struct {
	ByeTeams   []string
	MatchPaths []string
}

// Fetcher loads rendered pages from the draw site. Implementations hold the
// browser session; FetchMatchEvents operates on the match page most recently
// loaded by FetchMatch, mirroring how the timeline tab is reached by clicking
// through from the match view.
type Fetcher interface {
	// LatestRound reports the most recent round the site redirects to when
	// no round is requested, i.e. the round currently in progress.
	LatestRound(ctx context.Context) (int, error)
	FetchRound(ctx context.Context, round int) (RoundPage, error)
	FetchMatch(ctx context.Context, path string) ([]ScrapedMatch, error)
	FetchMatchEvents(ctx context.Context) ([]ScrapedEvent, error)
}
