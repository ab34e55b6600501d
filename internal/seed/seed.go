// Package seed builds the initial book list from a YAML document.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"booklibrary/internal/book"

	"gopkg.in/yaml.v3"
)

var ErrEmptyTitle = errors.New("title is required")

// File is the on-disk seed document.
//
//	books:
//	  - title: 1984
//	    author: George Orwell
//	    read: true
//	    rating: 5
type File struct {
	Books []Entry `yaml:"books"`
}

// Entry describes one seeded book. ID is optional; a fresh one is generated
// when empty.
type Entry struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Read   bool   `yaml:"read"`
	Rating *int   `yaml:"rating"`
}

// Book converts the entry, trimming text fields and validating the rating.
func (e Entry) Book() (book.Book, error) {
	if strings.TrimSpace(e.Title) == "" {
		return book.Book{}, ErrEmptyTitle
	}
	opts := []book.Option{book.WithID(strings.TrimSpace(e.ID)), book.WithRead(e.Read)}
	if e.Rating != nil {
		opts = append(opts, book.WithStars(*e.Rating))
	}
	return book.New(e.Title, e.Author, opts...)
}

// Decode reads a seed document from r.
func Decode(r io.Reader) ([]book.Book, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	books := make([]book.Book, 0, len(f.Books))
	for i, e := range f.Books {
		b, err := e.Book()
		if err != nil {
			return nil, fmt.Errorf("seed entry %d: %w", i, err)
		}
		books = append(books, b)
	}
	return books, nil
}

// LoadFile reads a seed document from path.
func LoadFile(path string) ([]book.Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
