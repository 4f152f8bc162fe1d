package event

import "fmt"

// Type is a kind of timeline event, e.g. "Try" or "Interchange #8".
// Name is the natural key.
type Type struct {
	ID   int64
	Name string
}

// Role describes how a player participates in an event, e.g. "on", "off",
// "Try Scorer". RoleName is the natural key. The empty role name is a valid
// key: events scraped without a role resolve to an empty-named row.
type Role struct {
	ID       int64
	RoleName string
}

// Event is one entry in a match's play-by-play timeline.
//
// The dedup key is (match, event type, game time in seconds, player). The key
// is deliberately loose: two real-world events sharing type, second and player
// within one match collide and the second write is dropped.
type Event struct {
	ID          int64
	MatchID     int64
	TeamID      *int64
	EventTypeID int64
	PlayerID    *int64
	GameTimeSec int
	Description string
}

// Participant links an event to a player with a role. At most one role per
// (event, player) pair.
type Participant struct {
	EventID  int64
	PlayerID int64
	RoleID   *int64
}

func (e Event) Validate() error {
	if e.MatchID <= 0 {
		return fmt.Errorf("event match is required")
	}
	if e.EventTypeID <= 0 {
		return fmt.Errorf("event type is required")
	}
	if e.GameTimeSec < 0 {
		return fmt.Errorf("event game time cannot be negative")
	}

	return nil
}
