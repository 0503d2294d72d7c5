package lending

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"bookshelf/internal/docstore"
)

// DocumentRepo reads the whole document on every call and writes it back
// after every change. The mutex covers each read-modify-write, so writers in
// this process never overwrite each other's changes.
type DocumentRepo struct {
	store docstore.Store
	mu    sync.Mutex
}

func NewDocumentRepo(store docstore.Store) *DocumentRepo {
	return &DocumentRepo{store: store}
}

// Init writes an empty document when none exists yet.
func (r *DocumentRepo) Init(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc Document
	err := r.store.Load(ctx, &doc)
	if err == nil {
		return nil
	}
	if !errors.Is(err, docstore.ErrNotExist) {
		return fmt.Errorf("load lending document: %w", err)
	}
	return r.save(ctx, Document{Books: []Book{}, NextID: 1})
}

func (r *DocumentRepo) List(ctx context.Context) ([]Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Books, nil
}

func (r *DocumentRepo) Get(ctx context.Context, id int) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return Book{}, err
	}
	i := indexOf(doc.Books, id)
	if i < 0 {
		return Book{}, ErrNotFound
	}
	return doc.Books[i], nil
}

func (r *DocumentRepo) Create(ctx context.Context, in NewBook) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return Book{}, err
	}

	book := Book{
		ID:           doc.NextID,
		Title:        in.Title,
		Author:       in.Author,
		Category:     in.Category,
		IsAvailable:  in.IsAvailable,
		IsVerified:   in.IsVerified,
		BorrowedDays: in.BorrowedDays,
		ImageURL:     ImageURL,
	}
	doc.Books = append(doc.Books, book)
	doc.NextID++

	if err := r.save(ctx, doc); err != nil {
		return Book{}, err
	}
	return book, nil
}

func (r *DocumentRepo) Update(ctx context.Context, id int, u Update) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return Book{}, err
	}
	i := indexOf(doc.Books, id)
	if i < 0 {
		return Book{}, ErrNotFound
	}

	doc.Books[i] = u.apply(doc.Books[i])
	if err := r.save(ctx, doc); err != nil {
		return Book{}, err
	}
	return doc.Books[i], nil
}

func (r *DocumentRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(doc.Books, id)
	if i < 0 {
		return ErrNotFound
	}

	doc.Books = slices.Delete(doc.Books, i, i+1)
	return r.save(ctx, doc)
}

// load reads the document and repairs the id counter for documents written
// without one.
func (r *DocumentRepo) load(ctx context.Context) (Document, error) {
	var doc Document
	if err := r.store.Load(ctx, &doc); err != nil && !errors.Is(err, docstore.ErrNotExist) {
		return Document{}, fmt.Errorf("load lending document: %w", err)
	}
	if doc.Books == nil {
		doc.Books = []Book{}
	}

	for _, b := range doc.Books {
		if b.ID >= doc.NextID {
			doc.NextID = b.ID + 1
		}
	}
	if doc.NextID < 1 {
		doc.NextID = 1
	}
	return doc, nil
}

func (r *DocumentRepo) save(ctx context.Context, doc Document) error {
	if err := r.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("save lending document: %w", err)
	}
	return nil
}

func indexOf(books []Book, id int) int {
	return slices.IndexFunc(books, func(b Book) bool { return b.ID == id })
}
