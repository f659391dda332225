package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient(baseURL, userAgent string, rps int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent: userAgent,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		limiter:   rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// SearchResponse matches search.json
type SearchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []SearchDoc `json:"docs"`
}

type SearchDoc struct {
	Key              string          `json:"key"`
	Title            string          `json:"title"`
	AuthorNames      []string        `json:"author_name"`
	Description      json.RawMessage `json:"description"`
	FirstPublishYear int             `json:"first_publish_year"`
}

// Work matches works/{id}.json. Description can be a string or
// {type: ..., value: ...}.
type Work struct {
	Key              string          `json:"key"`
	Title            string          `json:"title"`
	Description      json.RawMessage `json:"description"`
	Authors          []WorkAuthor    `json:"authors"`
	FirstPublishDate string          `json:"first_publish_date"`
}

type WorkAuthor struct {
	Author struct {
		Key string `json:"key"`
	} `json:"author"`
}

// Author matches authors/{id}.json
type Author struct {
	Name         string `json:"name"`
	PersonalName string `json:"personal_name"`
}

// Search issues a keyword search. rawQuery is the pre-built query string
// (title=...&author=...&page=...&limit=...); the caller owns its construction
// because the same string doubles as the cache key.
func (c *Client) Search(ctx context.Context, rawQuery string) (*SearchResponse, error) {
	var res SearchResponse
	if err := c.get(ctx, c.baseURL+"/search.json?"+rawQuery, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetWork fetches a work document. A body that cannot be decoded as a work
// maps to (nil, nil); the caller treats that as not found.
func (c *Client) GetWork(ctx context.Context, id string) (*Work, error) {
	body, err := c.getBody(ctx, fmt.Sprintf("%s/works/%s.json", c.baseURL, id))
	if err != nil {
		return nil, err
	}

	var res Work
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, nil
	}
	return &res, nil
}

func (c *Client) GetAuthor(ctx context.Context, authorID string) (*Author, error) {
	// authorID is usually bare ("OL...A") but tolerate the "/authors/" form
	id := strings.TrimPrefix(authorID, "/authors/")

	var res Author
	if err := c.get(ctx, fmt.Sprintf("%s/authors/%s.json", c.baseURL, id), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	body, err := c.getBody(ctx, url)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, target)
}

func (c *Client) getBody(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
