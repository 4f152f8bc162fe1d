package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/nrl-scraper/internal/domain/player"
)

// PlayerRepository is an in-memory player.Repository. Like the players table
// it carries no uniqueness constraint on name, so Create never rejects a
// duplicate.
type PlayerRepository struct {
	mu      sync.RWMutex
	nextID  int64
	players []player.Player
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{}
}

func (r *PlayerRepository) FindByName(_ context.Context, name string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.players {
		if p.Name == name {
			return p, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) Create(_ context.Context, name string) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p := player.Player{ID: r.nextID, Name: name}
	r.players = append(r.players, p)

	return p, nil
}

func (r *PlayerRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.players)
}
