// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/storefinder/internal/core/record"
)

// RecordSource defines the secondary port for fetching the raw record set.
// Implementations return *record.LoadError on failure.
type RecordSource interface {
	// Fetch returns all records in source order.
	Fetch(ctx context.Context) ([]record.Record, error)

	// Describe returns a human-readable source location for logs and errors.
	Describe() string
}

// RecordRepository defines the secondary port for the local record cache.
type RecordRepository interface {
	// ReplaceAll atomically replaces the cached records and records an
	// import entry for source.
	ReplaceAll(ctx context.Context, records []record.Record, source string) error

	// List returns cached records in import order.
	List(ctx context.Context) ([]record.Record, error)

	// Count returns the number of cached records.
	Count(ctx context.Context) (int, error)

	// LastImport returns the most recent import entry, nil if none.
	LastImport(ctx context.Context) (*ImportRecord, error)
}

// ImportRecord represents one cache import as stored in persistence.
type ImportRecord struct {
	ID          int64
	Source      string
	RecordCount int
	ImportedAt  string
}
