package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/nrl-scraper/internal/domain/event"
)

// EventRepository is an in-memory event.Repository plus the type and role
// resolvers backing it.
type EventRepository struct {
	mu           sync.RWMutex
	nextID       int64
	events       []event.Event
	participants []event.Participant
}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) FindByDedupKey(_ context.Context, matchID, eventTypeID int64, gameTimeSec int, playerID *int64) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.events {
		if e.MatchID != matchID || e.EventTypeID != eventTypeID || e.GameTimeSec != gameTimeSec {
			continue
		}
		if !nullableInt64Equal(e.PlayerID, playerID) {
			continue
		}
		return e, true, nil
	}

	return event.Event{}, false, nil
}

func (r *EventRepository) Create(_ context.Context, e event.Event) (event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	e.ID = r.nextID
	r.events = append(r.events, e)

	return e, nil
}

func (r *EventRepository) CreateParticipant(_ context.Context, p event.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.participants {
		if existing.EventID == p.EventID && existing.PlayerID == p.PlayerID {
			return fmt.Errorf("participant (%d, %d) already exists", p.EventID, p.PlayerID)
		}
	}
	r.participants = append(r.participants, p)

	return nil
}

func (r *EventRepository) CountByMatch(_ context.Context, matchID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, e := range r.events {
		if e.MatchID == matchID {
			count++
		}
	}

	return count, nil
}

func (r *EventRepository) All() []event.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, len(r.events))
	copy(out, r.events)

	return out
}

func (r *EventRepository) Participants() []event.Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Participant, len(r.participants))
	copy(out, r.participants)

	return out
}

func nullableInt64Equal(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// EventTypeRepository is an in-memory event.TypeRepository with the same name
// uniqueness as the event_types table.
type EventTypeRepository struct {
	mu     sync.RWMutex
	nextID int64
	byName map[string]event.Type
}

func NewEventTypeRepository() *EventTypeRepository {
	return &EventTypeRepository{byName: make(map[string]event.Type)}
}

func (r *EventTypeRepository) FindByName(_ context.Context, name string) (event.Type, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byName[name]
	return t, ok, nil
}

func (r *EventTypeRepository) Create(_ context.Context, name string) (event.Type, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[name]; ok {
		return event.Type{}, fmt.Errorf("event type %q already exists", name)
	}

	r.nextID++
	t := event.Type{ID: r.nextID, Name: name}
	r.byName[name] = t

	return t, nil
}

func (r *EventTypeRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byName)
}

// EventRoleRepository is an in-memory event.RoleRepository. The empty role
// name is a valid key.
type EventRoleRepository struct {
	mu     sync.RWMutex
	nextID int64
	byName map[string]event.Role
}

func NewEventRoleRepository() *EventRoleRepository {
	return &EventRoleRepository{byName: make(map[string]event.Role)}
}

func (r *EventRoleRepository) FindByName(_ context.Context, roleName string) (event.Role, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	role, ok := r.byName[roleName]
	return role, ok, nil
}

func (r *EventRoleRepository) Create(_ context.Context, roleName string) (event.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[roleName]; ok {
		return event.Role{}, fmt.Errorf("event role %q already exists", roleName)
	}

	r.nextID++
	role := event.Role{ID: r.nextID, RoleName: roleName}
	r.byName[roleName] = role

	return role, nil
}

func (r *EventRoleRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byName)
}
