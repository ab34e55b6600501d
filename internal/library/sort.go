package library

import (
	"fmt"
	"slices"
	"strings"

	"booklibrary/internal/book"
)

// SortCriterion selects the ordering of a derived sequence.
type SortCriterion string

const (
	SortByTitle      SortCriterion = "title"
	SortByAuthor     SortCriterion = "author"
	SortByReadStatus SortCriterion = "readStatus"
)

// ParseSortCriterion accepts the criterion names case-insensitively.
func ParseSortCriterion(s string) (SortCriterion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title":
		return SortByTitle, nil
	case "author":
		return SortByAuthor, nil
	case "readstatus", "read_status", "status":
		return SortByReadStatus, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSort, s)
	}
}

// sortBooks orders books in place. The sort is stable, so equal keys keep
// their insertion order.
func sortBooks(books []book.Book, c SortCriterion) {
	switch c {
	case SortByTitle:
		slices.SortStableFunc(books, func(a, b book.Book) int {
			return strings.Compare(a.Title, b.Title)
		})
	case SortByAuthor:
		slices.SortStableFunc(books, func(a, b book.Book) int {
			return strings.Compare(a.Author, b.Author)
		})
	case SortByReadStatus:
		slices.SortStableFunc(books, func(a, b book.Book) int {
			switch {
			case a.IsRead && !b.IsRead:
				return -1
			case !a.IsRead && b.IsRead:
				return 1
			default:
				return 0
			}
		})
	}
}
