package book

import "errors"

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book is the canonical representation shared by the local store and the
// catalog proxy. Local ids are decimal strings assigned at insertion time;
// catalog ids are Open Library work ids with the "/works/" prefix stripped.
// The two id spaces are never merged.
type Book struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Description   string `json:"description,omitempty"`
	PublishedYear int    `json:"published_year,omitempty"`
}

// Submission is the input payload for adding a local book. Validation tags are
// enforced at the HTTP boundary before the submission reaches the store.
type Submission struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	Description   string `json:"description"`
	PublishedYear int    `json:"published_year" validate:"required,published_year"`
}

// SearchQuery defines filters and pagination for a catalog search. Neither
// title nor author is required; page and page size are corrected to their
// defaults by the catalog service.
type SearchQuery struct {
	Title    string
	Author   string
	Page     int
	PageSize int
}
