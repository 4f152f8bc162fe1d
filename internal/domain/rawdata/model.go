package rawdata

// Payload is an audit copy of one scraped record, kept so that a bad parse
// can be replayed without hitting the site again.
type Payload struct {
	Source     string
	EntityType string
	EntityKey  string
	Round      int
	Data       []byte
}
