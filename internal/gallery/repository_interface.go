package gallery

import "context"

// Store is the persistence surface the handler depends on;
// *Repository is the mongo implementation.
type Store interface {
	Insert(ctx context.Context, p *Photo) error
	FindRecent(ctx context.Context, limit int) ([]*Photo, error)
	FindByID(ctx context.Context, id string) (*Photo, error)
	Delete(ctx context.Context, id string) error
}
