package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/nrl-scraper/internal/domain/team"
)

// TeamRepository is an in-memory team.Repository. Name uniqueness is enforced
// the way the teams table does with its unique constraint.
type TeamRepository struct {
	mu     sync.RWMutex
	nextID int64
	byName map[string]team.Team
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{byName: make(map[string]team.Team)}
}

func (r *TeamRepository) FindByName(_ context.Context, name string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byName[name]
	return t, ok, nil
}

func (r *TeamRepository) Create(_ context.Context, name string) (team.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return team.Team{}, fmt.Errorf("team %q already exists", name)
	}

	r.nextID++
	t := team.Team{ID: r.nextID, Name: name}
	r.byName[name] = t

	return t, nil
}

func (r *TeamRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byName)
}
