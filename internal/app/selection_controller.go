package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/example/storefinder/internal/core/filter"
	"github.com/example/storefinder/internal/core/geo"
	"github.com/example/storefinder/internal/core/selection"
	"github.com/example/storefinder/internal/ports/primary"
	"github.com/example/storefinder/internal/ports/secondary"
)

// SelectionController implements the SelectionSession interface.
// One controller serves one session; transitions must not be interleaved.
type SelectionController struct {
	store    *RecordStore
	order    geo.CityOrder
	coll     geo.Collation
	observer primary.SnapshotObserver
	logger   *slog.Logger
	metrics  secondary.DirectoryMetrics

	state filter.State
}

// NewSelectionController creates a controller in the initial state over store.
// observer may be nil.
func NewSelectionController(
	store *RecordStore,
	order geo.CityOrder,
	coll geo.Collation,
	observer primary.SnapshotObserver,
	logger *slog.Logger,
	metrics secondary.DirectoryMetrics,
) *SelectionController {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &SelectionController{
		store:    store,
		order:    order,
		coll:     coll,
		observer: observer,
		logger:   logger,
		metrics:  metrics,
		state:    selection.InitialState(),
	}
}

// SetQuery replaces the text query and re-filters.
func (c *SelectionController) SetQuery(ctx context.Context, query string) *primary.Snapshot {
	return c.apply(ctx, selection.ApplySetQuery(c.state, query))
}

// SetCity replaces the city, forces the district back to empty and re-filters.
func (c *SelectionController) SetCity(ctx context.Context, city string) *primary.Snapshot {
	return c.apply(ctx, selection.ApplySetCity(c.state, city))
}

// SetDistrict replaces the district and re-filters. A district outside the
// current options is applied anyway and matches nothing.
func (c *SelectionController) SetDistrict(ctx context.Context, district string) *primary.Snapshot {
	return c.apply(ctx, c.transition(ctx, selection.Event{Kind: selection.EventSetDistrict, Value: district}))
}

// Reset returns to the initial state.
func (c *SelectionController) Reset(ctx context.Context) *primary.Snapshot {
	return c.apply(ctx, selection.ApplyReset())
}

// Dispatch applies a parsed input event.
func (c *SelectionController) Dispatch(ctx context.Context, e selection.Event) *primary.Snapshot {
	return c.apply(ctx, c.transition(ctx, e))
}

// DispatchAll applies events in order and takes a single snapshot of the
// final state. Intermediate states are never rendered.
func (c *SelectionController) DispatchAll(ctx context.Context, events ...selection.Event) *primary.Snapshot {
	result := selection.TransitionResult{NewState: c.state}
	for _, e := range events {
		result = c.transition(ctx, e)
		c.state = result.NewState
	}
	return c.apply(ctx, result)
}

// transition computes the result of e from the current state without
// touching it. Districts are checked against the options of the current city.
func (c *SelectionController) transition(ctx context.Context, e selection.Event) selection.TransitionResult {
	if e.Kind == selection.EventSetDistrict {
		guard := selection.CanSetDistrict(selection.DistrictContext{
			City:     c.state.City,
			District: e.Value,
			Options:  geo.DistrictOptions(c.store.view(), c.state.City, c.coll),
		})
		if !guard.Allowed {
			c.logger.DebugContext(ctx, "district outside current options",
				"city", c.state.City,
				"district", e.Value,
				"reason", guard.Reason,
			)
		}
	}
	return selection.Apply(c.state, e)
}

// State returns the current filter state.
func (c *SelectionController) State() filter.State {
	return c.state
}

// Snapshot recomputes options and matches for the current state.
func (c *SelectionController) Snapshot(ctx context.Context) *primary.Snapshot {
	start := time.Now()
	current := c.store.current()
	records := current.records

	districts := geo.DistrictOptions(records, c.state.City, c.coll)
	snap := &primary.Snapshot{
		State:                   c.state,
		Matches:                 filter.Apply(records, c.state),
		CityOptions:             geo.CityOptions(records, c.order),
		DistrictOptions:         districts,
		CitySelected:            c.state.City != "",
		DistrictSelectorVisible: len(districts) > 0,
		TotalRecords:            len(records),
		LoadError:               current.err,
	}

	c.metrics.ObserveFilter(len(snap.Matches), time.Since(start))
	return snap
}

func (c *SelectionController) apply(ctx context.Context, result selection.TransitionResult) *primary.Snapshot {
	c.state = result.NewState
	snap := c.Snapshot(ctx)

	if c.observer != nil {
		if err := c.observer.Render(ctx, snap); err != nil {
			c.logger.WarnContext(ctx, "snapshot render failed", "error", err)
		}
	}
	return snap
}

// Ensure SelectionController implements the interface.
var _ primary.SelectionSession = (*SelectionController)(nil)
