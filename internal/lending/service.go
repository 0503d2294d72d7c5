package lending

import (
	"context"
	"fmt"
	"strings"
)

// Service provides lending business logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (Book, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new book once title, author and category are all present.
func (s *Service) Create(ctx context.Context, in NewBook) (Book, error) {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Author == "" {
		missing = append(missing, "author")
	}
	if in.Category == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return Book{}, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return s.repo.Create(ctx, in)
}

// Update applies the fields present in u to the book with the given id.
func (s *Service) Update(ctx context.Context, id int, u Update) (Book, error) {
	return s.repo.Update(ctx, id, u)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
