package seed

import (
	"context"
	"fmt"

	"booklibrary/internal/book"
	"booklibrary/internal/ingest"
	"booklibrary/internal/library"

	"github.com/rs/zerolog/log"
)

// Options selects the sources used to populate a fresh library.
type Options struct {
	Sample bool
	File   string
}

// Importer tops the library up from a remote catalogue.
type Importer interface {
	Run(ctx context.Context) (*ingest.Run, error)
}

// Build returns a library holding the sample books (when enabled) followed
// by the books of the seed file (when set). Ids must be unique across both.
func Build(opts Options) (*library.Library, error) {
	var books []book.Book
	if opts.Sample {
		books = append(books, library.SampleBooks()...)
	}
	if opts.File != "" {
		fromFile, err := LoadFile(opts.File)
		if err != nil {
			return nil, err
		}
		books = append(books, fromFile...)
	}

	lib, err := library.New(books...)
	if err != nil {
		return nil, fmt.Errorf("seed library: %w", err)
	}
	log.Info().Int("books", lib.Count()).Bool("sample", opts.Sample).Str("file", opts.File).Msg("library seeded")
	return lib, nil
}

// Import runs imp and logs failures. A failed import never blocks start-up.
func Import(ctx context.Context, imp Importer) {
	if imp == nil {
		return
	}
	if _, err := imp.Run(ctx); err != nil {
		log.Warn().Err(err).Msg("open library import failed, continuing with seeded books")
	}
}
