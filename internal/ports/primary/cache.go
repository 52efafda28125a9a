package primary

import "context"

// CacheService defines the primary port for the local record cache.
type CacheService interface {
	// Import fetches records from source and stores them in the cache,
	// replacing previous contents.
	Import(ctx context.Context, source string) (*ImportResult, error)

	// Status reports what the cache holds.
	Status(ctx context.Context) (*CacheStatus, error)
}

// ImportResult contains the result of an import.
type ImportResult struct {
	Source string
	Count  int
}

// CacheStatus describes the cache contents.
type CacheStatus struct {
	RecordCount int
	LastSource  string // empty when nothing was ever imported
	ImportedAt  string
	Cities      int
}
