package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bookshelf/internal/book"
	"bookshelf/internal/httpx"
)

// LocalStore is the process-resident list of submitted books.
type LocalStore interface {
	GetAll() []book.Book
	Add(sub book.Submission) []book.Book
}

// Catalog proxies search and detail queries against the upstream catalog.
type Catalog interface {
	SearchBooks(ctx context.Context, q book.SearchQuery) ([]book.Book, error)
	GetBookByID(ctx context.Context, id string) (book.Book, error)
}

type BookHandler struct {
	store   LocalStore
	catalog Catalog
	errs    httpx.ErrorWriter
}

func NewBookHandler(store LocalStore, catalog Catalog, errs httpx.ErrorWriter) *BookHandler {
	return &BookHandler{store: store, catalog: catalog, errs: errs}
}

// List handles GET /books
// @Summary List local books
// @Description Get all user-submitted books
// @Tags books
// @Produce json
// @Success 200 {array} book.Book
// @Router /books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.store.GetAll())
}

// Create handles POST /books
// @Summary Add a book
// @Description Submit a new book to the local list
// @Tags books
// @Accept json
// @Produce json
// @Param book body book.Submission true "Book submission"
// @Success 200 {array} book.Book
// @Failure 400 {object} httpx.ErrorBody
// @Router /books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var sub book.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request body", "")
		return
	}

	if errs := ValidateStruct(sub); len(errs) > 0 {
		messages := make([]string, len(errs))
		for i, e := range errs {
			messages[i] = e.Message
		}
		httpx.JSONError(w, http.StatusBadRequest, strings.Join(messages, "; "), "")
		return
	}

	httpx.JSON(w, http.StatusOK, h.store.Add(sub))
}

// Search handles GET /books/search
// @Summary Search the catalog
// @Description Search the upstream book catalog by title and/or author
// @Tags books
// @Produce json
// @Param title query string false "Title filter"
// @Param author query string false "Author filter"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Results per page" default(10)
// @Success 200 {array} book.Book
// @Failure 500 {object} httpx.ErrorBody
// @Router /books/search [get]
func (h *BookHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// invalid numbers degrade to 0 and are corrected by the catalog service
	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("pageSize"))

	books, err := h.catalog.SearchBooks(r.Context(), book.SearchQuery{
		Title:    query.Get("title"),
		Author:   query.Get("author"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.errs.Internal(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, books)
}

// GetByID handles GET /books/{id}
// @Summary Get a catalog book
// @Description Get a single book's details by its work id
// @Tags books
// @Produce json
// @Param id path string true "Work id"
// @Success 200 {object} book.Book
// @Failure 404 {object} httpx.ErrorBody
// @Failure 500 {object} httpx.ErrorBody
// @Router /books/{id} [get]
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, http.StatusNotFound, "book not found", "")
		return
	}

	b, err := h.catalog.GetBookByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "book not found", "")
			return
		}
		h.errs.Internal(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, b)
}
