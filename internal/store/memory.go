// Package store holds the process-resident list of user-submitted books.
package store

import (
	"encoding/json"
	"os"
	"strconv"
	"sync"

	"bookshelf/internal/book"
)

// Memory is the in-memory local store. Adds are mutually exclusive with each
// other and with the count read that assigns the next id; GetAll returns a
// point-in-time copy and does not block concurrent adds.
type Memory struct {
	mu    sync.Mutex
	books []book.Book
}

func NewMemory() *Memory {
	return &Memory{}
}

// LoadSnapshot reads a JSON array of books into the store. On any error the
// store is left empty and fully operable; the caller decides whether to log.
func (m *Memory) LoadSnapshot(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var books []book.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return err
	}

	m.mu.Lock()
	m.books = books
	m.mu.Unlock()
	return nil
}

// GetAll returns a copy of the current list.
func (m *Memory) GetAll() []book.Book {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// Add assigns the next sequential id, appends the submission as a book, and
// returns the full updated list. Ids are count+1 decimal strings; that is
// collision-free only because delete is unsupported.
func (m *Memory) Add(sub book.Submission) []book.Book {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.books = append(m.books, book.Book{
		ID:            strconv.Itoa(len(m.books) + 1),
		Title:         sub.Title,
		Author:        sub.Author,
		Description:   sub.Description,
		PublishedYear: sub.PublishedYear,
	})
	return m.snapshot()
}

// snapshot must be called with the lock held.
func (m *Memory) snapshot() []book.Book {
	out := make([]book.Book, len(m.books))
	copy(out, m.books)
	return out
}
