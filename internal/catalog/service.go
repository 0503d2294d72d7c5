package catalog

import (
	"context"
	"fmt"
)

// Service provides catalog business logic.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every book in insertion order.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// Get returns the book with the given id.
func (s *Service) Get(ctx context.Context, id int) (Book, error) {
	return s.repo.Get(ctx, id)
}

// Create checks the category and stores a new book.
func (s *Service) Create(ctx context.Context, in NewBook) (Book, error) {
	if !in.Category.Valid() {
		return Book{}, fmt.Errorf("%w: %q is not one of %s", ErrInvalidCategory, in.Category, CategoryList())
	}
	return s.repo.Create(ctx, in)
}

// Delete removes the book with the given id and returns it.
func (s *Service) Delete(ctx context.Context, id int) (Book, error) {
	return s.repo.Delete(ctx, id)
}
