package http

import (
	"booklibrary/internal/book"
	"booklibrary/internal/library"
)

//go:generate mockgen -source=ports.go -destination=mock_library_store_test.go -package=http

// LibraryStore is the collection surface the handlers drive.
type LibraryStore interface {
	Add(b book.Book) error
	RemoveAt(i int) (book.Book, error)
	Remove(b book.Book)
	RemoveAll()
	Modify(id string, fn func(*book.Book) error) (book.Book, bool, error)
	Get(id string) (book.Book, bool)
	Matching(query string) []book.Book
	ReadBooks() []book.Book
	UnreadBooks() []book.Book
	SortedBy(c library.SortCriterion) []book.Book
	Stats() library.Stats
}
