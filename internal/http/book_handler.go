package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"booklibrary/internal/book"
	"booklibrary/internal/httpx"
	"booklibrary/internal/library"
)

const (
	filterRead   = "read"
	filterUnread = "unread"
)

type BookHandler struct {
	lib LibraryStore
}

func NewBookHandler(lib LibraryStore) *BookHandler {
	return &BookHandler{lib: lib}
}

type bookReq struct {
	Title  string `json:"title" validate:"notblank,max=300"`
	Author string `json:"author" validate:"max=300"`
	IsRead bool   `json:"is_read"`
	Rating *int   `json:"rating" validate:"omitempty,min=1,max=5"`
}

type ratingReq struct {
	Stars int `json:"stars" validate:"required,min=1,max=5"`
}

// @Summary List books
// @Description Search, filter and sort the collection
// @Tags books
// @Produce json
// @Param q query string false "Case-insensitive title or author search"
// @Param filter query string false "read or unread"
// @Param sort query string false "title, author or readStatus"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := query.Get("q")
	filter := strings.ToLower(query.Get("filter"))
	sortParam := query.Get("sort")

	if filter != "" && filter != filterRead && filter != filterUnread {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "filter must be read or unread", nil)
		return
	}

	var books []book.Book
	switch {
	case sortParam != "":
		criterion, err := library.ParseSortCriterion(sortParam)
		if err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "sort must be title, author or readStatus", nil)
			return
		}
		books = h.lib.SortedBy(criterion)
	case filter == filterRead:
		books = h.lib.ReadBooks()
	case filter == filterUnread:
		books = h.lib.UnreadBooks()
	default:
		books = h.lib.Matching(q)
	}

	books = slices.DeleteFunc(books, func(b book.Book) bool {
		if (filter == filterRead && !b.IsRead) || (filter == filterUnread && b.IsRead) {
			return true
		}
		return !b.Matches(q)
	})

	httpx.JSONSuccess(w, r, books, map[string]any{"total": len(books)})
}

// @Summary Get a book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} book.Book
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [get]
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, ok := h.lib.Get(r.PathValue("id"))
	if !ok {
		writeNotFound(w, r)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// @Summary Add a book
// @Description Appends a new book with a generated id
// @Tags books
// @Accept json
// @Produce json
// @Param book body bookReq true "Book"
// @Success 201 {object} book.Book
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBookReq(w, r)
	if !ok {
		return
	}

	opts := []book.Option{book.WithRead(req.IsRead)}
	if req.Rating != nil {
		opts = append(opts, book.WithStars(*req.Rating))
	}
	b, err := book.New(req.Title, req.Author, opts...)
	if err != nil {
		writeLibraryError(w, r, err)
		return
	}
	if err := h.lib.Add(b); err != nil {
		writeLibraryError(w, r, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, b)
}

// @Summary Replace a book
// @Description Replaces every field; omitted fields take their zero value
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param book body bookReq true "Book"
// @Success 200 {object} book.Book
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [put]
func (h *BookHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	req, ok := decodeBookReq(w, r)
	if !ok {
		return
	}

	replacement, err := book.New(req.Title, req.Author, book.WithID(id), book.WithRead(req.IsRead))
	if err == nil && req.Rating != nil {
		err = replacement.Rate(*req.Rating)
	}
	if err != nil {
		writeLibraryError(w, r, err)
		return
	}
	h.modify(w, r, func(b *book.Book) error {
		*b = replacement
		return nil
	})
}

// @Summary Mark a book as read
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} book.Book
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id}/read [post]
func (h *BookHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.modify(w, r, func(b *book.Book) error {
		b.MarkAsRead()
		return nil
	})
}

// @Summary Rate a book
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param rating body ratingReq true "Stars from 1 to 5"
// @Success 200 {object} book.Book
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id}/rating [put]
func (h *BookHandler) Rate(w http.ResponseWriter, r *http.Request) {
	var req ratingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}
	h.modify(w, r, func(b *book.Book) error {
		return b.Rate(req.Stars)
	})
}

// @Summary Clear a book's rating
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} book.Book
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id}/rating [delete]
func (h *BookHandler) ClearRating(w http.ResponseWriter, r *http.Request) {
	h.modify(w, r, func(b *book.Book) error {
		b.ClearRating()
		return nil
	})
}

// modify runs fn against the stored book as one atomic step and writes the
// result.
func (h *BookHandler) modify(w http.ResponseWriter, r *http.Request, fn func(*book.Book) error) {
	b, found, err := h.lib.Modify(r.PathValue("id"), fn)
	if !found {
		writeNotFound(w, r)
		return
	}
	if err != nil {
		writeLibraryError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// @Summary Delete a book
// @Description Deleting an unknown id succeeds
// @Tags books
// @Param id path string true "Book ID"
// @Success 204
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.lib.Remove(book.Book{ID: r.PathValue("id")})
	httpx.JSONSuccessNoContent(w)
}

// @Summary Delete the book at a position
// @Tags books
// @Produce json
// @Param index path int true "Zero-based position"
// @Success 200 {object} book.Book
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /positions/{index} [delete]
func (h *BookHandler) DeleteAt(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "index must be an integer", nil)
		return
	}
	removed, err := h.lib.RemoveAt(index)
	if err != nil {
		writeLibraryError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, removed, nil)
}

// @Summary Delete every book
// @Tags books
// @Success 204
// @Router /books [delete]
func (h *BookHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	h.lib.RemoveAll()
	httpx.JSONSuccessNoContent(w)
}

// @Summary Collection statistics
// @Tags stats
// @Produce json
// @Success 200 {object} library.Stats
// @Router /stats [get]
func (h *BookHandler) Stats(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, h.lib.Stats(), nil)
}

func writeNotFound(w http.ResponseWriter, r *http.Request) {
	httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
}

func decodeBookReq(w http.ResponseWriter, r *http.Request) (bookReq, bool) {
	var req bookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return req, false
	}
	if details := ValidateStruct(req); len(details) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return req, false
	}
	return req, true
}

func writeLibraryError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, library.ErrIndexOutOfRange):
		httpx.JSONError(w, r, http.StatusNotFound, "INDEX_OUT_OF_RANGE", err.Error(), nil)
	case errors.Is(err, library.ErrDuplicateID):
		httpx.JSONError(w, r, http.StatusConflict, "DUPLICATE_ID", err.Error(), nil)
	case errors.Is(err, book.ErrInvalidRating):
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), []httpx.ErrorDetail{
			{Field: "rating", Message: err.Error()},
		})
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
