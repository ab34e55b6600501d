package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"booklibrary/internal/book"
	"booklibrary/internal/library"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stars(n int) *int { return &n }

var (
	testRead   = book.Book{ID: "b1", Title: "1984", Author: "George Orwell", IsRead: true, Rating: stars(5)}
	testUnread = book.Book{ID: "b2", Title: "The Great Gatsby", Author: "F. Scott Fitzgerald"}
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodeBooks(t *testing.T, w *httptest.ResponseRecorder) []book.Book {
	t.Helper()
	var books []book.Book
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &books))
	return books
}

func TestBookHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLib := NewMockLibraryStore(ctrl)
	handler := NewBookHandler(mockLib)

	tests := []struct {
		name           string
		queryParams    string
		setupMock      func()
		expectedStatus int
		expectedIDs    []string
	}{
		{
			name:        "all books",
			queryParams: "",
			setupMock: func() {
				mockLib.EXPECT().Matching("").Return([]book.Book{testRead, testUnread})
			},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"b1", "b2"},
		},
		{
			name:        "search",
			queryParams: "?q=orwell",
			setupMock: func() {
				mockLib.EXPECT().Matching("orwell").Return([]book.Book{testRead})
			},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"b1"},
		},
		{
			name:        "read filter",
			queryParams: "?filter=read",
			setupMock: func() {
				mockLib.EXPECT().ReadBooks().Return([]book.Book{testRead})
			},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"b1"},
		},
		{
			name:        "unread filter with search",
			queryParams: "?filter=unread&q=orwell",
			setupMock: func() {
				mockLib.EXPECT().UnreadBooks().Return([]book.Book{testUnread})
			},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{},
		},
		{
			name:        "sorted and filtered",
			queryParams: "?sort=readStatus&filter=unread",
			setupMock: func() {
				mockLib.EXPECT().SortedBy(library.SortByReadStatus).Return([]book.Book{testRead, testUnread})
			},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"b2"},
		},
		{
			name:           "bad sort",
			queryParams:    "?sort=rating",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad filter",
			queryParams:    "?filter=maybe",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/books"+tt.queryParams, nil)

			handler.List(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedIDs != nil {
				ids := []string{}
				for _, b := range decodeBooks(t, w) {
					ids = append(ids, b.ID)
				}
				assert.Equal(t, tt.expectedIDs, ids)
			}
		})
	}
}

func TestBookHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLib := NewMockLibraryStore(ctrl)
	handler := NewBookHandler(mockLib)

	t.Run("found", func(t *testing.T) {
		mockLib.EXPECT().Get("b1").Return(testRead, true)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/b1", nil)
		r.SetPathValue("id", "b1")

		handler.Get(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockLib.EXPECT().Get("nope").Return(book.Book{}, false)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/nope", nil)
		r.SetPathValue("id", "nope")

		handler.Get(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", decode(t, w).Error.Code)
	})
}

func TestBookHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLib := NewMockLibraryStore(ctrl)
	handler := NewBookHandler(mockLib)

	t.Run("created with trimmed fields", func(t *testing.T) {
		var added book.Book
		mockLib.EXPECT().Add(gomock.Any()).DoAndReturn(func(b book.Book) error {
			added = b
			return nil
		})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books",
			strings.NewReader(`{"title":"  Dune ","author":"Frank Herbert ","is_read":true,"rating":4}`))

		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Dune", added.Title)
		assert.Equal(t, "Frank Herbert", added.Author)
		assert.True(t, added.IsRead)
		assert.Equal(t, 4, added.Stars())
		assert.NotEmpty(t, added.ID)
	})

	t.Run("validation", func(t *testing.T) {
		for _, body := range []string{
			`{"title":"   ","author":"x"}`,
			`{"title":"Dune","rating":9}`,
			`{"title":"Dune","rating":0}`,
		} {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(body))

			handler.Create(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code, body)
			assert.Equal(t, "VALIDATION_ERROR", decode(t, w).Error.Code, body)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{`))

		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate id", func(t *testing.T) {
		mockLib.EXPECT().Add(gomock.Any()).Return(fmt.Errorf("%w: x", library.ErrDuplicateID))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"title":"Dune"}`))

		handler.Create(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

// modifyStored makes a Modify expectation behave like the library would for
// a stored book.
func modifyStored(stored book.Book) func(string, func(*book.Book) error) (book.Book, bool, error) {
	return func(_ string, fn func(*book.Book) error) (book.Book, bool, error) {
		b := stored.Clone()
		if err := fn(&b); err != nil {
			return book.Book{}, true, err
		}
		return b, true, nil
	}
}

func decodeBook(t *testing.T, w *httptest.ResponseRecorder) book.Book {
	t.Helper()
	var b book.Book
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &b))
	return b
}

func TestBookHandler_Replace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLib := NewMockLibraryStore(ctrl)
	handler := NewBookHandler(mockLib)

	t.Run("replaces all fields", func(t *testing.T) {
		mockLib.EXPECT().Modify("b1", gomock.Any()).DoAndReturn(modifyStored(testRead))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/books/b1",
			strings.NewReader(`{"title":"Animal Farm","author":"George Orwell"}`))
		r.SetPathValue("id", "b1")

		handler.Replace(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, book.Book{ID: "b1", Title: "Animal Farm", Author: "George Orwell"}, decodeBook(t, w))
	})

	t.Run("unknown id", func(t *testing.T) {
		mockLib.EXPECT().Modify("nope", gomock.Any()).Return(book.Book{}, false, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/books/nope", strings.NewReader(`{"title":"x"}`))
		r.SetPathValue("id", "nope")

		handler.Replace(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBookHandler_RatingAndRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLib := NewMockLibraryStore(ctrl)
	handler := NewBookHandler(mockLib)

	t.Run("mark read", func(t *testing.T) {
		mockLib.EXPECT().Modify("b2", gomock.Any()).DoAndReturn(modifyStored(testUnread))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books/b2/read", nil)
		r.SetPathValue("id", "b2")

		handler.MarkRead(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decodeBook(t, w).IsRead)
	})

	t.Run("mark read on a deleted book", func(t *testing.T) {
		mockLib.EXPECT().Modify("gone", gomock.Any()).Return(book.Book{}, false, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books/gone/read", nil)
		r.SetPathValue("id", "gone")

		handler.MarkRead(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rate", func(t *testing.T) {
		mockLib.EXPECT().Modify("b2", gomock.Any()).DoAndReturn(modifyStored(testUnread))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/books/b2/rating", strings.NewReader(`{"stars":3}`))
		r.SetPathValue("id", "b2")

		handler.Rate(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 3, decodeBook(t, w).Stars())
	})

	t.Run("rate out of range", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/books/b2/rating", strings.NewReader(`{"stars":6}`))
		r.SetPathValue("id", "b2")

		handler.Rate(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decode(t, w)
		require.Len(t, env.Error.Details, 1)
		assert.Equal(t, "stars", env.Error.Details[0].Field)
	})

	t.Run("clear rating", func(t *testing.T) {
		mockLib.EXPECT().Modify("b1", gomock.Any()).DoAndReturn(modifyStored(testRead))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/books/b1/rating", nil)
		r.SetPathValue("id", "b1")

		handler.ClearRating(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, decodeBook(t, w).HasRating())
	})
}

func TestBookHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLib := NewMockLibraryStore(ctrl)
	handler := NewBookHandler(mockLib)

	t.Run("by id", func(t *testing.T) {
		mockLib.EXPECT().Remove(book.Book{ID: "b1"})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/books/b1", nil)
		r.SetPathValue("id", "b1")

		handler.Delete(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("at index", func(t *testing.T) {
		mockLib.EXPECT().RemoveAt(0).Return(testRead, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/positions/0", nil)
		r.SetPathValue("index", "0")

		handler.DeleteAt(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("index out of range", func(t *testing.T) {
		mockLib.EXPECT().RemoveAt(7).Return(book.Book{}, fmt.Errorf("%w: 7", library.ErrIndexOutOfRange))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/positions/7", nil)
		r.SetPathValue("index", "7")

		handler.DeleteAt(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "INDEX_OUT_OF_RANGE", decode(t, w).Error.Code)
	})

	t.Run("non-numeric index", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/positions/first", nil)
		r.SetPathValue("index", "first")

		handler.DeleteAt(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("all", func(t *testing.T) {
		mockLib.EXPECT().RemoveAll()

		w := httptest.NewRecorder()
		handler.DeleteAll(w, httptest.NewRequest(http.MethodDelete, "/books", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestBookHandler_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLib := NewMockLibraryStore(ctrl)
	handler := NewBookHandler(mockLib)

	mockLib.EXPECT().Stats().Return(library.Stats{Count: 4, ReadCount: 1, UnreadCount: 3, ReadingProgress: 0.25})

	w := httptest.NewRecorder()
	handler.Stats(w, httptest.NewRequest(http.MethodGet, "/stats", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var stats library.Stats
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &stats))
	assert.Equal(t, 0.25, stats.ReadingProgress)
}
