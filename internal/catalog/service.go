// Package catalog proxies search and detail queries against the Open Library
// catalog: request construction, response normalization, short-TTL caching,
// and per-author resolution fan-out.
package catalog

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"bookshelf/internal/book"
	"bookshelf/internal/platform/openlibrary"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// Client is the slice of the Open Library client the service consumes.
type Client interface {
	Search(ctx context.Context, rawQuery string) (*openlibrary.SearchResponse, error)
	GetWork(ctx context.Context, id string) (*openlibrary.Work, error)
	GetAuthor(ctx context.Context, authorID string) (*openlibrary.Author, error)
}

// Cache is the read-through/write-through store shared by all lookups.
// Implementations expire entries on their own; Set is best-effort and must
// never affect response correctness.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

type Service struct {
	client Client
	cache  Cache
}

func NewService(client Client, cache Cache) *Service {
	return &Service{client: client, cache: cache}
}

// SearchBooks proxies a keyword search. Results, including empty ones, are
// cached under the full query string; a hit never touches the upstream.
// Upstream failures are terminal for the current call and propagate.
func (s *Service) SearchBooks(ctx context.Context, q book.SearchQuery) ([]book.Book, error) {
	rawQuery := searchQueryString(q)

	key := "search_" + rawQuery
	if cached, ok := s.cache.Get(key); ok {
		if books, ok := cached.([]book.Book); ok {
			return books, nil
		}
	}

	res, err := s.client.Search(ctx, rawQuery)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", rawQuery, err)
	}

	books := make([]book.Book, 0, len(res.Docs))
	for _, doc := range res.Docs {
		books = append(books, book.Book{
			ID:            strings.TrimPrefix(doc.Key, "/works/"),
			Title:         doc.Title,
			Author:        joinAuthorNames(doc.AuthorNames),
			Description:   descriptionText(doc.Description),
			PublishedYear: doc.FirstPublishYear,
		})
	}

	s.cache.Set(key, books)
	return books, nil
}

// GetBookByID returns a single catalog book, resolving its authors through
// the per-author sub-protocol. A missing or undecodable work maps to
// book.ErrNotFound; any other upstream failure propagates.
func (s *Service) GetBookByID(ctx context.Context, id string) (book.Book, error) {
	key := "works/" + id
	if cached, ok := s.cache.Get(key); ok {
		if b, ok := cached.(book.Book); ok {
			return b, nil
		}
	}

	work, err := s.client.GetWork(ctx, id)
	if err != nil {
		return book.Book{}, fmt.Errorf("get work %s: %w", id, err)
	}
	if work == nil {
		return book.Book{}, book.ErrNotFound
	}

	author := "Unknown"
	if ids := authorIDs(work.Authors); len(ids) > 0 {
		author = s.resolveAuthors(ctx, ids)
	}

	b := book.Book{
		ID:            id,
		Title:         work.Title,
		Author:        author,
		Description:   descriptionText(work.Description),
		PublishedYear: publishYear(work.FirstPublishDate),
	}

	s.cache.Set(key, b)
	return b, nil
}

// resolveAuthors looks up each author independently and sequentially. A
// failure for one author is logged and skipped so a single bad record cannot
// fail the whole detail response; this leniency is deliberate and contrasts
// with the strict top-level search/detail calls. Resolved names are cached
// individually.
func (s *Service) resolveAuthors(ctx context.Context, ids []string) string {
	var names []string
	for _, id := range ids {
		key := "authors/" + id
		if cached, ok := s.cache.Get(key); ok {
			if name, ok := cached.(string); ok {
				names = append(names, name)
				continue
			}
		}

		author, err := s.client.GetAuthor(ctx, id)
		if err != nil {
			log.Printf("catalog: resolve author %s: %v", id, err)
			continue
		}

		name := author.Name
		if name == "" {
			name = author.PersonalName
		}
		if name == "" {
			continue
		}

		s.cache.Set(key, name)
		names = append(names, name)
	}

	if len(names) == 0 {
		return "Unknown"
	}
	return strings.Join(names, ", ")
}

// searchQueryString builds the upstream query in fixed field order (title,
// author, page, limit) so the derived cache key is deterministic. Page values
// below 1 and page sizes below 10 reset to the defaults.
func searchQueryString(q book.SearchQuery) string {
	page := q.Page
	if page < defaultPage {
		page = defaultPage
	}
	limit := q.PageSize
	if limit < defaultPageSize {
		limit = defaultPageSize
	}

	var sb strings.Builder
	if q.Title != "" {
		sb.WriteString("title=")
		sb.WriteString(url.QueryEscape(q.Title))
		sb.WriteString("&")
	}
	if q.Author != "" {
		sb.WriteString("author=")
		sb.WriteString(url.QueryEscape(q.Author))
		sb.WriteString("&")
	}
	sb.WriteString("page=")
	sb.WriteString(strconv.Itoa(page))
	sb.WriteString("&limit=")
	sb.WriteString(strconv.Itoa(limit))
	return sb.String()
}
