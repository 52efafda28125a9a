package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/example/storefinder/internal/core/geo"
	"github.com/example/storefinder/internal/core/record"
	"github.com/example/storefinder/internal/core/selection"
	"github.com/example/storefinder/internal/ports/primary"
	"github.com/example/storefinder/internal/ports/secondary"
)

// DirectoryServiceImpl implements the DirectoryService interface.
type DirectoryServiceImpl struct {
	store   *RecordStore
	source  secondary.RecordSource
	order   geo.CityOrder
	coll    geo.Collation
	logger  *slog.Logger
	metrics secondary.DirectoryMetrics
}

// NewDirectoryService creates a new DirectoryService with injected dependencies.
// The record set starts empty until Load is called.
func NewDirectoryService(
	source secondary.RecordSource,
	order geo.CityOrder,
	coll geo.Collation,
	logger *slog.Logger,
	metrics secondary.DirectoryMetrics,
) *DirectoryServiceImpl {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &DirectoryServiceImpl{
		store:   NewRecordStore(),
		source:  source,
		order:   order,
		coll:    coll,
		logger:  logger,
		metrics: metrics,
	}
}

// Load fetches records from the source and replaces the record set.
func (s *DirectoryServiceImpl) Load(ctx context.Context) (*primary.LoadResult, error) {
	start := time.Now()
	records, loadErr := s.store.Load(ctx, s.source)
	elapsed := time.Since(start)

	if loadErr != nil {
		s.metrics.ObserveLoad(secondary.LoadOutcomeFailure, 0, elapsed)
		s.logger.ErrorContext(ctx, "store data load failed",
			"source", s.source.Describe(),
			"kind", loadErr.Kind,
			"error", loadErr.Err,
		)
		return nil, loadErr
	}

	s.metrics.ObserveLoad(secondary.LoadOutcomeSuccess, len(records), elapsed)
	s.logger.InfoContext(ctx, "store data loaded",
		"source", s.source.Describe(),
		"count", len(records),
		"duration_ms", elapsed.Milliseconds(),
	)

	return &primary.LoadResult{
		Source:   s.source.Describe(),
		Count:    len(records),
		Duration: elapsed,
	}, nil
}

// Records returns the current record set in load order.
func (s *DirectoryServiceImpl) Records(ctx context.Context) []record.Record {
	return s.store.Records()
}

// CityOptions returns the selectable cities in display order.
func (s *DirectoryServiceImpl) CityOptions(ctx context.Context) []string {
	return geo.CityOptions(s.store.view(), s.order)
}

// DistrictOptions returns the selectable districts of city.
func (s *DirectoryServiceImpl) DistrictOptions(ctx context.Context, city string) []string {
	return geo.DistrictOptions(s.store.view(), city, s.coll)
}

// Query runs SetQuery, SetCity and SetDistrict on a fresh session.
func (s *DirectoryServiceImpl) Query(ctx context.Context, req primary.QueryRequest) *primary.Snapshot {
	return s.newController(nil).DispatchAll(ctx,
		selection.Event{Kind: selection.EventSetQuery, Value: req.Query},
		selection.Event{Kind: selection.EventSetCity, Value: req.City},
		selection.Event{Kind: selection.EventSetDistrict, Value: req.District},
	)
}

// NewSession starts a selection session in the initial state.
func (s *DirectoryServiceImpl) NewSession(ctx context.Context, observer primary.SnapshotObserver) primary.SelectionSession {
	return s.newController(observer)
}

// LastLoadError returns the error of the most recent load.
func (s *DirectoryServiceImpl) LastLoadError() *record.LoadError {
	return s.store.LastError()
}

// Controller starts a session and returns the concrete controller, for hosts
// that dispatch parsed selection events.
func (s *DirectoryServiceImpl) Controller(observer primary.SnapshotObserver) *SelectionController {
	return s.newController(observer)
}

// newController tags the session's log lines with a fresh session id.
func (s *DirectoryServiceImpl) newController(observer primary.SnapshotObserver) *SelectionController {
	logger := s.logger.With("session_id", uuid.NewString())
	return NewSelectionController(s.store, s.order, s.coll, observer, logger, s.metrics)
}

// Ensure DirectoryServiceImpl implements the interface.
var _ primary.DirectoryService = (*DirectoryServiceImpl)(nil)
