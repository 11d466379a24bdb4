package member

import (
	"context"
	"time"
)

// Store is the persistence surface the handlers and the renewal sweep
// depend on; *Repository is the mongo implementation.
type Store interface {
	Insert(ctx context.Context, m *Member) error
	FindByID(ctx context.Context, id string) (*Member, error)
	FindActive(ctx context.Context, now time.Time) ([]*Member, error)
	FindExpiringBetween(ctx context.Context, start, end time.Time) ([]*Member, error)
}
