package series

import "context"

type Repository interface {
	Upsert(ctx context.Context, s Series) error
}
