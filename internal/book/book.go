package book

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// ErrInvalidRating is returned when a rating falls outside MinRating..MaxRating.
var ErrInvalidRating = errors.New("rating out of range")

// Book represents a single record in the collection.
type Book struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	IsRead bool   `json:"is_read"`
	Rating *int   `json:"rating,omitempty"`
}

// Option customizes a Book built by New.
type Option func(*Book) error

// WithID keeps an existing identifier instead of generating one.
func WithID(id string) Option {
	return func(b *Book) error {
		if id != "" {
			b.ID = id
		}
		return nil
	}
}

// WithRead sets the initial reading status.
func WithRead(read bool) Option {
	return func(b *Book) error {
		b.IsRead = read
		return nil
	}
}

// WithStars sets the initial rating.
func WithStars(stars int) Option {
	return func(b *Book) error {
		return b.Rate(stars)
	}
}

// New creates a book with a fresh identifier. Title and author are trimmed.
func New(title, author string, opts ...Option) (Book, error) {
	b := Book{
		ID:     uuid.New().String(),
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
	}
	for _, opt := range opts {
		if err := opt(&b); err != nil {
			return Book{}, err
		}
	}
	return b, nil
}

// ValidateRating reports whether stars is an allowed rating.
func ValidateRating(stars int) error {
	if stars < MinRating || stars > MaxRating {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidRating, stars, MinRating, MaxRating)
	}
	return nil
}

// MarkingAsRead returns a copy of b marked as read.
func (b Book) MarkingAsRead() Book {
	b.IsRead = true
	return b
}

// WithRating returns a copy of b with the given rating. b is not modified.
func (b Book) WithRating(stars int) (Book, error) {
	if err := b.Rate(stars); err != nil {
		return Book{}, err
	}
	return b, nil
}

// MarkAsRead marks b as read.
func (b *Book) MarkAsRead() {
	b.IsRead = true
}

// Rate sets the rating. An invalid value leaves b unchanged.
func (b *Book) Rate(stars int) error {
	if err := ValidateRating(stars); err != nil {
		return err
	}
	// fresh pointer: copies of b must not observe the change
	b.Rating = &stars
	return nil
}

// ClearRating removes the rating.
func (b *Book) ClearRating() {
	b.Rating = nil
}

// HasRating reports whether b has been rated.
func (b Book) HasRating() bool {
	return b.Rating != nil
}

// Stars returns the rating, or 0 when unrated.
func (b Book) Stars() int {
	if b.Rating == nil {
		return 0
	}
	return *b.Rating
}

// Matches reports whether query is a case-insensitive substring of the title
// or the author. An empty query matches every book.
func (b Book) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q)
}

// Equal reports whether all fields of b and other are equal.
func (b Book) Equal(other Book) bool {
	return b.ID == other.ID &&
		b.Title == other.Title &&
		b.Author == other.Author &&
		b.IsRead == other.IsRead &&
		b.HasRating() == other.HasRating() &&
		b.Stars() == other.Stars()
}

// Clone returns a copy of b that shares no memory with it.
func (b Book) Clone() Book {
	if b.Rating != nil {
		stars := *b.Rating
		b.Rating = &stars
	}
	return b
}
