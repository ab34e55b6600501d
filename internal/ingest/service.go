package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"booklibrary/internal/book"
	"booklibrary/internal/platform/openlibrary"

	"github.com/rs/zerolog/log"
)

type Config struct {
	// BooksMax is the collection size the import tops up to.
	BooksMax int
	Subjects []string
}

type OpenLibraryClient interface {
	SearchBooks(ctx context.Context, subject string, limit int) (*openlibrary.SearchResponse, error)
}

// Collection is the part of the library the importer writes to.
type Collection interface {
	Books() []book.Book
	AddAll(books []book.Book) error
}

type Service struct {
	olClient OpenLibraryClient
	lib      Collection
	cfg      Config
}

func NewService(olClient OpenLibraryClient, lib Collection, cfg Config) *Service {
	return &Service{
		olClient: olClient,
		lib:      lib,
		cfg:      cfg,
	}
}

// Run adds books found under the configured subjects until the collection
// holds BooksMax entries. Books already present (same title and author,
// ignoring case) are skipped. The collection is re-read before every search
// and again just before each batch is added, so books added concurrently
// through other paths count towards BooksMax. The top-up is best-effort: a
// book added between that last re-read and the batch can still overshoot
// BooksMax by at most the batch size.
func (s *Service) Run(ctx context.Context) (run *Run, err error) {
	run = &Run{
		Status:         StatusRunning,
		ConfigBooksMax: s.cfg.BooksMax,
		ConfigSubjects: strings.Join(s.cfg.Subjects, ","),
		StartedAt:      time.Now(),
	}

	defer func() {
		now := time.Now()
		run.FinishedAt = &now
		if err != nil && run.Error == "" {
			run.Error = err.Error()
		}
		if run.Error != "" {
			run.Status = StatusFailed
		} else {
			run.Status = StatusCompleted
		}
		log.Info().
			Str("status", run.Status).
			Int("fetched", run.BooksFetched).
			Int("added", run.BooksAdded).
			Int("skipped", run.BooksSkipped).
			Dur("took", now.Sub(run.StartedAt)).
			Msg("open library import finished")
	}()

	seen, room := s.snapshot()
	if room <= 0 {
		log.Debug().Int("books_max", s.cfg.BooksMax).Msg("import target already met, skipping")
		return run, nil
	}

	for i, subject := range s.cfg.Subjects {
		if i > 0 {
			seen, room = s.snapshot()
		}
		if room <= 0 {
			break
		}

		searchLimit := 100
		if room < 50 {
			searchLimit = room * 2
		}

		res, err := s.olClient.SearchBooks(ctx, subject, searchLimit)
		if err != nil {
			run.Error = fmt.Sprintf("search failed for %s: %v", subject, err)
			return run, err
		}
		run.BooksFetched += len(res.Docs)

		var candidates []book.Book
		for _, doc := range res.Docs {
			title := strings.TrimSpace(doc.Title)
			author := strings.Join(doc.AuthorNames, ", ")
			key := dedupKey(title, author)
			if title == "" || seen[key] {
				run.BooksSkipped++
				continue
			}
			seen[key] = true

			b, err := book.New(title, author)
			if err != nil {
				run.BooksSkipped++
				continue
			}
			candidates = append(candidates, b)
		}

		// the search ran without the library lock; pick up concurrent adds
		seen, room = s.snapshot()
		var batch []book.Book
		for _, b := range candidates {
			if len(batch) >= room {
				break
			}
			key := dedupKey(b.Title, b.Author)
			if seen[key] {
				run.BooksSkipped++
				continue
			}
			seen[key] = true
			batch = append(batch, b)
		}

		if err := s.lib.AddAll(batch); err != nil {
			run.Error = fmt.Sprintf("add books for %s: %v", subject, err)
			return run, err
		}
		run.BooksAdded += len(batch)
	}

	return run, nil
}

// snapshot returns the dedup keys of the stored books and how many more
// books fit under BooksMax.
func (s *Service) snapshot() (map[string]bool, int) {
	existing := s.lib.Books()
	seen := make(map[string]bool, len(existing))
	for _, b := range existing {
		seen[dedupKey(b.Title, b.Author)] = true
	}
	return seen, s.cfg.BooksMax - len(existing)
}

func dedupKey(title, author string) string {
	return strings.ToLower(strings.TrimSpace(title)) + "\x00" + strings.ToLower(strings.TrimSpace(author))
}
