package lending

import (
	"context"
)

// Repository defines the contract for lending storage.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id int) (Book, error)
	Create(ctx context.Context, in NewBook) (Book, error)
	Update(ctx context.Context, id int, u Update) (Book, error)
	Delete(ctx context.Context, id int) error
}
