package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/example/storefinder/internal/core/geo"
	"github.com/example/storefinder/internal/core/record"
	"github.com/example/storefinder/internal/ports/primary"
	"github.com/example/storefinder/internal/ports/secondary"
)

// CacheServiceImpl implements the CacheService interface.
type CacheServiceImpl struct {
	repo     secondary.RecordRepository
	resolver secondary.SourceResolver
	order    geo.CityOrder
	logger   *slog.Logger
}

// NewCacheService creates a new CacheService with injected dependencies.
func NewCacheService(repo secondary.RecordRepository, resolver secondary.SourceResolver, order geo.CityOrder, logger *slog.Logger) *CacheServiceImpl {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CacheServiceImpl{
		repo:     repo,
		resolver: resolver,
		order:    order,
		logger:   logger,
	}
}

// Import fetches records from source and replaces the cache contents.
// A failed fetch leaves the cache untouched.
func (s *CacheServiceImpl) Import(ctx context.Context, source string) (*primary.ImportResult, error) {
	src, err := s.resolver.Resolve(source)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve source: %w", err)
	}

	fetched, err := src.Fetch(ctx)
	if err != nil {
		return nil, record.AsLoadError(err, src.Describe())
	}

	records := record.NormalizeAll(fetched)
	if err := s.repo.ReplaceAll(ctx, records, src.Describe()); err != nil {
		return nil, fmt.Errorf("failed to store records: %w", err)
	}

	s.logger.InfoContext(ctx, "store data imported",
		"source", src.Describe(),
		"count", len(records),
	)

	return &primary.ImportResult{
		Source: src.Describe(),
		Count:  len(records),
	}, nil
}

// Status reports what the cache holds.
func (s *CacheServiceImpl) Status(ctx context.Context) (*primary.CacheStatus, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached records: %w", err)
	}

	last, err := s.repo.LastImport(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get last import: %w", err)
	}

	status := &primary.CacheStatus{
		RecordCount: len(records),
		Cities:      len(geo.CityOptions(records, s.order)),
	}
	if last != nil {
		status.LastSource = last.Source
		status.ImportedAt = last.ImportedAt
	}
	return status, nil
}

// Ensure CacheServiceImpl implements the interface.
var _ primary.CacheService = (*CacheServiceImpl)(nil)
