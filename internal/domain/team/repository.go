package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	FindByName(ctx context.Context, name string) (Team, bool, error)
	Create(ctx context.Context, name string) (Team, error)
}
