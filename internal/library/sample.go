package library

import "booklibrary/internal/book"

type sampleBook struct {
	title, author string
	read          bool
	stars         int
}

var sampleBooks = []sampleBook{
	{"1984", "George Orwell", true, 5},
	{"To Kill a Mockingbird", "Harper Lee", true, 5},
	{"The Great Gatsby", "F. Scott Fitzgerald", false, 0},
	{"Pride and Prejudice", "Jane Austen", true, 4},
	{"The Catcher in the Rye", "J.D. Salinger", false, 0},
}

// SampleBooks returns the fixed demo collection with freshly generated ids.
func SampleBooks() []book.Book {
	books := make([]book.Book, 0, len(sampleBooks))
	for _, s := range sampleBooks {
		opts := []book.Option{book.WithRead(s.read)}
		if s.stars > 0 {
			opts = append(opts, book.WithStars(s.stars))
		}
		b, err := book.New(s.title, s.author, opts...)
		if err != nil {
			panic(err)
		}
		books = append(books, b)
	}
	return books
}

// Sample returns a library seeded with SampleBooks.
func Sample() *Library {
	l := &Library{}
	l.books = SampleBooks()
	return l
}
