package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"bookshelf/internal/docstore"
)

// DocumentRepo keeps the catalog in memory and writes the whole list to the
// document store after every change. The document is a bare JSON array.
type DocumentRepo struct {
	store docstore.Store

	mu     sync.Mutex
	books  []Book
	nextID int
}

// NewDocumentRepo loads the current document. A missing document starts an
// empty catalog.
func NewDocumentRepo(ctx context.Context, store docstore.Store) (*DocumentRepo, error) {
	var books []Book
	if err := store.Load(ctx, &books); err != nil && !errors.Is(err, docstore.ErrNotExist) {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if books == nil {
		books = []Book{}
	}

	nextID := 1
	for _, b := range books {
		if b.ID >= nextID {
			nextID = b.ID + 1
		}
	}

	return &DocumentRepo{store: store, books: books, nextID: nextID}, nil
}

func (r *DocumentRepo) List(_ context.Context) ([]Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.books), nil
}

func (r *DocumentRepo) Get(_ context.Context, id int) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	return r.books[i], nil
}

// Create appends a book with the next free id. Ids are never handed out
// twice, even after the highest one is deleted.
func (r *DocumentRepo) Create(ctx context.Context, in NewBook) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book := Book{
		ID:          r.nextID,
		Title:       in.Title,
		Category:    in.Category,
		IsAvailable: in.IsAvailable,
		IsVerified:  in.IsVerified,
		ImageURL:    ImageURL,
	}

	next := append(slices.Clone(r.books), book)
	if err := r.store.Save(ctx, next); err != nil {
		return Book{}, fmt.Errorf("save catalog: %w", err)
	}

	r.books = next
	r.nextID++
	return book, nil
}

func (r *DocumentRepo) Delete(ctx context.Context, id int) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	removed := r.books[i]

	next := slices.Delete(slices.Clone(r.books), i, i+1)
	if err := r.store.Save(ctx, next); err != nil {
		return Book{}, fmt.Errorf("save catalog: %w", err)
	}

	r.books = next
	return removed, nil
}

func (r *DocumentRepo) indexOf(id int) int {
	return slices.IndexFunc(r.books, func(b Book) bool { return b.ID == id })
}
