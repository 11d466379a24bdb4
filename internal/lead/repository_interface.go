package lead

import "context"

// Store is the persistence surface the handler depends on;
// *Repository is the mongo implementation.
type Store interface {
	Insert(ctx context.Context, l *Lead) error
	FindNew(ctx context.Context) ([]*Lead, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
