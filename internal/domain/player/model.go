package player

import "fmt"

// Player is an athlete referenced by timeline events. The scrape pass only
// ever supplies the name; biographical columns are populated elsewhere.
//
// Name carries no uniqueness constraint, so name variants (or the same name
// re-scraped) can produce duplicate rows. That gap is accepted and documented
// rather than papered over with guesswork disambiguation.
type Player struct {
	ID   int64
	Name string
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
