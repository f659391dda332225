package store

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"bookshelf/internal/book"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_AddAssignsSequentialIDs(t *testing.T) {
	m := NewMemory()

	first := m.Add(book.Submission{Title: "Dune", Author: "Frank Herbert", PublishedYear: 1965})
	require.Len(t, first, 1)
	assert.Equal(t, "1", first[0].ID)

	second := m.Add(book.Submission{Title: "Dune Messiah", Author: "Frank Herbert", PublishedYear: 1969})
	require.Len(t, second, 2)
	assert.Equal(t, "2", second[1].ID)

	all := m.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "Dune", all[0].Title)
	assert.Equal(t, 1969, all[1].PublishedYear)
}

func TestMemory_GetAllReturnsCopy(t *testing.T) {
	m := NewMemory()
	m.Add(book.Submission{Title: "Dune", Author: "Frank Herbert", PublishedYear: 1965})

	all := m.GetAll()
	all[0].Title = "mutated"

	assert.Equal(t, "Dune", m.GetAll()[0].Title)
}

func TestMemory_LoadSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	snapshot := `[
		{"id": "1", "title": "Dune", "author": "Frank Herbert", "published_year": 1965},
		{"id": "2", "title": "Hyperion", "author": "Dan Simmons", "published_year": 1989}
	]`
	require.NoError(t, os.WriteFile(path, []byte(snapshot), 0o644))

	m := NewMemory()
	require.NoError(t, m.LoadSnapshot(path))

	all := m.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "Hyperion", all[1].Title)

	// ids continue from the loaded count
	updated := m.Add(book.Submission{Title: "Endymion", Author: "Dan Simmons", PublishedYear: 1996})
	assert.Equal(t, "3", updated[2].ID)
}

func TestMemory_LoadSnapshotMissingFile(t *testing.T) {
	m := NewMemory()

	err := m.LoadSnapshot(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)

	// store stays empty and operable
	assert.Empty(t, m.GetAll())
	updated := m.Add(book.Submission{Title: "Dune", Author: "Frank Herbert", PublishedYear: 1965})
	assert.Equal(t, "1", updated[0].ID)
}

func TestMemory_LoadSnapshotMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not": "an array"`), 0o644))

	m := NewMemory()
	require.Error(t, m.LoadSnapshot(path))
	assert.Empty(t, m.GetAll())
}

func TestMemory_ConcurrentAdds(t *testing.T) {
	m := NewMemory()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			m.Add(book.Submission{Title: "Dune", Author: "Frank Herbert", PublishedYear: 1965})
		}()
	}
	wg.Wait()

	all := m.GetAll()
	require.Len(t, all, n)

	seen := make(map[string]bool, n)
	for _, b := range all {
		id, err := strconv.Atoi(b.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, id, 1)
		assert.LessOrEqual(t, id, n)
		assert.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true
	}
}
