package event

import "context"

// Repository describes event persistence needs from use cases.
type Repository interface {
	// FindByDedupKey looks up an event by (match_id, event_type_id,
	// game_time_sec, player_id) with nullable-aware player equality.
	FindByDedupKey(ctx context.Context, matchID, eventTypeID int64, gameTimeSec int, playerID *int64) (Event, bool, error)
	Create(ctx context.Context, e Event) (Event, error)
	CreateParticipant(ctx context.Context, p Participant) error
	// CountByMatch reports how many events a match already has. A match with
	// at least one event is treated as fully scraped and is never revisited.
	CountByMatch(ctx context.Context, matchID int64) (int, error)
}

// TypeRepository resolves event types by name.
type TypeRepository interface {
	FindByName(ctx context.Context, name string) (Type, bool, error)
	Create(ctx context.Context, name string) (Type, error)
}

// RoleRepository resolves event roles by name.
type RoleRepository interface {
	FindByName(ctx context.Context, roleName string) (Role, bool, error)
	Create(ctx context.Context, roleName string) (Role, error)
}
