package ingest

import (
	"time"
)

const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// Run summarizes one import pass.
type Run struct {
	StartedAt      time.Time
	FinishedAt     *time.Time
	Status         string
	ConfigBooksMax int
	ConfigSubjects string
	BooksFetched   int
	BooksAdded     int
	BooksSkipped   int
	Error          string
}
