// Package docstore persists a single JSON document per collection. Every
// write replaces the whole document.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotExist is returned by Load when nothing has been saved yet.
var ErrNotExist = errors.New("document does not exist")

// Store loads and saves one JSON document.
type Store interface {
	Load(ctx context.Context, v any) error
	Save(ctx context.Context, v any) error
}

// Options selects and configures a Store backend.
type Options struct {
	Driver  string // "file" or "postgres"
	Path    string
	DSN     string
	Key     string
	Timeout time.Duration
}

// Open builds the Store described by opts. The returned close function
// releases backend resources and is never nil.
func Open(ctx context.Context, opts Options) (Store, func(), error) {
	switch opts.Driver {
	case "", "file":
		return NewFileStore(opts.Path), func() {}, nil
	case "postgres":
		pool, err := Connect(ctx, opts.DSN)
		if err != nil {
			return nil, func() {}, err
		}
		if err := Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, func() {}, fmt.Errorf("migrate: %w", err)
		}
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		return NewPostgresStore(pool, opts.Key, timeout), pool.Close, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*PostgresStore)(nil)
)
