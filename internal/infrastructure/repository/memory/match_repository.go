package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/nrl-scraper/internal/domain/match"
)

// MatchRepository is an in-memory match.Repository.
type MatchRepository struct {
	mu      sync.RWMutex
	nextID  int64
	matches []match.Match
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{}
}

func (r *MatchRepository) FindByFixture(_ context.Context, date time.Time, homeTeamID, awayTeamID int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.matches {
		if m.Date == nil || m.AwayTeamID == nil {
			continue
		}
		if m.Date.Equal(date) && m.HomeTeamID == homeTeamID && *m.AwayTeamID == awayTeamID {
			return m, true, nil
		}
	}

	return match.Match{}, false, nil
}

func (r *MatchRepository) FindBye(_ context.Context, round int, teamID int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.matches {
		if m.AwayTeamID == nil && m.Round == round && m.HomeTeamID == teamID {
			return m, true, nil
		}
	}

	return match.Match{}, false, nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	m.ID = r.nextID
	r.matches = append(r.matches, m)

	return m, nil
}

func (r *MatchRepository) All() []match.Match {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, len(r.matches))
	copy(out, r.matches)

	return out
}
