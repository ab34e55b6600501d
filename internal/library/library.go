// Package library holds the in-memory book collection. The Library is the
// single source of truth; every query hands back a fresh slice.
package library

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"booklibrary/internal/book"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrDuplicateID     = errors.New("duplicate book id")
	ErrInvalidSort     = errors.New("invalid sort criterion")
)

// Library is an ordered collection of books with unique ids.
// It is safe for concurrent use.
type Library struct {
	mu    sync.RWMutex
	books []book.Book

	obsMu     sync.Mutex
	observers map[int]func()
	nextObs   int
}

// New creates a library holding the given books in order.
func New(books ...book.Book) (*Library, error) {
	l := &Library{}
	if err := l.AddAll(books); err != nil {
		return nil, err
	}
	return l, nil
}

// Subscribe registers fn to be called after every mutation that changed the
// collection. Observers run synchronously on the mutating goroutine, after the
// collection lock is released, so they may query the library. The returned
// function removes the observer.
func (l *Library) Subscribe(fn func()) (unsubscribe func()) {
	l.obsMu.Lock()
	defer l.obsMu.Unlock()
	if l.observers == nil {
		l.observers = make(map[int]func())
	}
	id := l.nextObs
	l.nextObs++
	l.observers[id] = fn
	return func() {
		l.obsMu.Lock()
		defer l.obsMu.Unlock()
		delete(l.observers, id)
	}
}

func (l *Library) notify() {
	l.obsMu.Lock()
	fns := make([]func(), 0, len(l.observers))
	for _, fn := range l.observers {
		fns = append(fns, fn)
	}
	l.obsMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (l *Library) indexOf(id string) int {
	for i := range l.books {
		if l.books[i].ID == id {
			return i
		}
	}
	return -1
}

// Add appends b to the end of the collection.
func (l *Library) Add(b book.Book) error {
	return l.AddAll([]book.Book{b})
}

// AddAll appends books in order. Either all are added or none are.
func (l *Library) AddAll(books []book.Book) error {
	if len(books) == 0 {
		return nil
	}

	l.mu.Lock()
	seen := make(map[string]struct{}, len(books))
	for _, b := range books {
		if _, dup := seen[b.ID]; dup || l.indexOf(b.ID) >= 0 {
			l.mu.Unlock()
			return fmt.Errorf("%w: %s", ErrDuplicateID, b.ID)
		}
		seen[b.ID] = struct{}{}
	}
	for _, b := range books {
		l.books = append(l.books, b.Clone())
	}
	l.mu.Unlock()

	l.notify()
	return nil
}

// RemoveAt removes and returns the book at index i.
func (l *Library) RemoveAt(i int) (book.Book, error) {
	l.mu.Lock()
	if i < 0 || i >= len(l.books) {
		n := len(l.books)
		l.mu.Unlock()
		return book.Book{}, fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, i, n)
	}
	removed := l.books[i]
	l.books = slices.Delete(l.books, i, i+1)
	l.mu.Unlock()

	l.notify()
	return removed, nil
}

// Remove deletes every entry sharing b's id. Absent ids are ignored.
func (l *Library) Remove(b book.Book) {
	l.mu.Lock()
	kept := l.books[:0]
	for _, existing := range l.books {
		if existing.ID != b.ID {
			kept = append(kept, existing)
		}
	}
	changed := len(kept) != len(l.books)
	clear(l.books[len(kept):])
	l.books = kept
	l.mu.Unlock()

	if changed {
		l.notify()
	}
}

// RemoveAll empties the collection.
func (l *Library) RemoveAll() {
	l.mu.Lock()
	changed := len(l.books) > 0
	l.books = nil
	l.mu.Unlock()

	if changed {
		l.notify()
	}
}

// Update replaces the stored book that has b's id with b. Absent ids are ignored.
func (l *Library) Update(b book.Book) {
	l.mu.Lock()
	i := l.indexOf(b.ID)
	if i < 0 {
		l.mu.Unlock()
		return
	}
	l.books[i] = b.Clone()
	l.mu.Unlock()

	l.notify()
}

// Modify applies fn to a copy of the book with the given id and stores the
// result, all under the write lock, so concurrent modifications of one book
// never overwrite each other. ok is false when the id is absent. When fn
// returns an error nothing is stored. fn must not call back into l.
func (l *Library) Modify(id string, fn func(*book.Book) error) (b book.Book, ok bool, err error) {
	l.mu.Lock()
	i := l.indexOf(id)
	if i < 0 {
		l.mu.Unlock()
		return book.Book{}, false, nil
	}
	edited := l.books[i].Clone()
	if err = fn(&edited); err != nil {
		l.mu.Unlock()
		return book.Book{}, true, err
	}
	edited.ID = id
	l.books[i] = edited
	b = edited.Clone()
	l.mu.Unlock()

	l.notify()
	return b, true, nil
}

// Get returns the book with the given id.
func (l *Library) Get(id string) (book.Book, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i := l.indexOf(id); i >= 0 {
		return l.books[i].Clone(), true
	}
	return book.Book{}, false
}

// Books returns the whole collection in insertion order.
func (l *Library) Books() []book.Book {
	return l.filter(nil)
}

// Matching returns the books whose title or author contains query,
// ignoring case. An empty query returns every book.
func (l *Library) Matching(query string) []book.Book {
	if query == "" {
		return l.filter(nil)
	}
	return l.filter(func(b book.Book) bool { return b.Matches(query) })
}

// ReadBooks returns the books marked as read.
func (l *Library) ReadBooks() []book.Book {
	return l.filter(func(b book.Book) bool { return b.IsRead })
}

// UnreadBooks returns the books not yet read.
func (l *Library) UnreadBooks() []book.Book {
	return l.filter(func(b book.Book) bool { return !b.IsRead })
}

// SortedBy returns the collection ordered by c. Stored order is unaffected.
func (l *Library) SortedBy(c SortCriterion) []book.Book {
	books := l.filter(nil)
	sortBooks(books, c)
	return books
}

func (l *Library) filter(keep func(book.Book) bool) []book.Book {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]book.Book, 0, len(l.books))
	for _, b := range l.books {
		if keep == nil || keep(b) {
			out = append(out, b.Clone())
		}
	}
	return out
}

func (l *Library) IsEmpty() bool {
	return l.Count() == 0
}

func (l *Library) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.books)
}

func (l *Library) ReadCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.readCountLocked()
}

func (l *Library) readCountLocked() int {
	n := 0
	for _, b := range l.books {
		if b.IsRead {
			n++
		}
	}
	return n
}

// ReadingProgress is the fraction of books read, in [0, 1]. It is 0 for an
// empty library.
func (l *Library) ReadingProgress() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.books) == 0 {
		return 0
	}
	return float64(l.readCountLocked()) / float64(len(l.books))
}

// Stats is a consistent snapshot of the collection statistics.
type Stats struct {
	Count           int     `json:"count"`
	ReadCount       int     `json:"read_count"`
	UnreadCount     int     `json:"unread_count"`
	ReadingProgress float64 `json:"reading_progress"`
	IsEmpty         bool    `json:"is_empty"`
}

// Stats computes all statistics under a single read lock.
func (l *Library) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := Stats{Count: len(l.books), ReadCount: l.readCountLocked()}
	s.UnreadCount = s.Count - s.ReadCount
	s.IsEmpty = s.Count == 0
	if s.Count > 0 {
		s.ReadingProgress = float64(s.ReadCount) / float64(s.Count)
	}
	return s
}
