package team

import "fmt"

// Team is a club referenced by matches (home/away) and timeline events.
// Name is the natural key; resolution is by exact name match.
type Team struct {
	ID   int64
	Name string
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
