package rawdata

import "context"

type Repository interface {
	Insert(ctx context.Context, p Payload) error
}
