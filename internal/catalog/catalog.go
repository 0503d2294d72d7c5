// Package catalog serves the /beoks collection: books tagged with one of a
// fixed set of categories, loaded once at startup and written back to the
// backing document after every change.
package catalog

import (
	"errors"
	"strings"
)

// ImageURL is attached to every book on creation.
const ImageURL = "https://m.media-amazon.com/images/I/71ZB1BPNS22._jpg"

var (
	// ErrNotFound is returned when no book has the requested id.
	ErrNotFound = errors.New("book not found")
	// ErrInvalidCategory is returned when a category is outside Categories.
	ErrInvalidCategory = errors.New("invalid category")
)

type Category string

const (
	Fiction   Category = "Fiction"
	Comedy    Category = "Comedy"
	Technical Category = "Technical"
)

// Categories lists the accepted categories in display order.
var Categories = []Category{Fiction, Comedy, Technical}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryList renders Categories for error messages.
func CategoryList() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// Book represents a catalog entry.
type Book struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	IsAvailable bool     `json:"isAvailable"`
	IsVerified  bool     `json:"isVerified"`
	ImageURL    string   `json:"imageUrl"`
}

// NewBook carries the caller-supplied fields of a book to create.
type NewBook struct {
	Title       string
	Category    Category
	IsAvailable bool
	IsVerified  bool
}
