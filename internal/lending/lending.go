// Package lending serves the /api/books collection: books with an author and
// borrowing state. The backing document is re-read on every request, so
// edits made to it by other processes are picked up without a restart.
package lending

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ImageURL is attached to every book on creation and never changes.
const ImageURL = "https://marketplace.canva.com/EAFf0E5urqk/1/0/1003w/canva-blue-and-green-surreal-fiction-book-cover-53S3IzrNxvY.jpg"

var (
	// ErrNotFound is returned when no book has the requested id.
	ErrNotFound = errors.New("book not found")
	// ErrMissingFields is returned when title, author or category is empty.
	ErrMissingFields = errors.New("missing required fields")
)

// Book represents a lendable book.
type Book struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Category     string   `json:"category"`
	IsAvailable  bool     `json:"isAvailable"`
	IsVerified   *bool    `json:"isVerified"`
	BorrowedDays *float64 `json:"borrowedDays"`
	ImageURL     string   `json:"imageURL"`
}

// Document is the persisted shape: {"books": [...], "nextId": n}.
type Document struct {
	Books  []Book `json:"books"`
	NextID int    `json:"nextId,omitempty"`
}

// NewBook carries the caller-supplied fields of a book to create.
type NewBook struct {
	Title        string
	Author       string
	Category     string
	IsAvailable  bool
	IsVerified   *bool
	BorrowedDays *float64
}

// Update lists the fields a PATCH may change. Unset fields are left alone.
type Update struct {
	IsAvailable  Field[bool]
	IsVerified   Field[*bool]
	BorrowedDays Field[*float64]
}

// Field is a JSON value that remembers whether it was present in the input,
// so an explicit null can be told apart from an absent key.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns a set field holding v.
func Some[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	return json.Unmarshal(data, &f.Value)
}

// apply merges u into b. ImageURL is never touched.
func (u Update) apply(b Book) Book {
	if u.IsAvailable.Set {
		b.IsAvailable = u.IsAvailable.Value
	}
	if u.IsVerified.Set {
		b.IsVerified = u.IsVerified.Value
	}
	if u.BorrowedDays.Set {
		b.BorrowedDays = u.BorrowedDays.Value
	}
	return b
}
