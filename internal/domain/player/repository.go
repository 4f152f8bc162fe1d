package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	FindByName(ctx context.Context, name string) (Player, bool, error)
	Create(ctx context.Context, name string) (Player, error)
}
