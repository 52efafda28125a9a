// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the outside world drives the application.
package primary

import (
	"context"
	"time"

	"github.com/example/storefinder/internal/core/filter"
	"github.com/example/storefinder/internal/core/record"
)

// DirectoryService defines the primary port for the store directory.
// It owns the loaded record set and hands out filter sessions over it.
type DirectoryService interface {
	// Load fetches records from the configured source and replaces the
	// record set. On failure the record set becomes empty and the returned
	// error is a *record.LoadError.
	Load(ctx context.Context) (*LoadResult, error)

	// Records returns the current record set in load order.
	Records(ctx context.Context) []record.Record

	// CityOptions returns the selectable cities in display order.
	CityOptions(ctx context.Context) []string

	// DistrictOptions returns the selectable districts of city.
	// Nil when city is empty; empty when city has no district data.
	DistrictOptions(ctx context.Context, city string) []string

	// Query runs a one-shot session: SetQuery, SetCity, SetDistrict in that
	// order on a fresh session, returning the final snapshot.
	Query(ctx context.Context, req QueryRequest) *Snapshot

	// NewSession starts a selection session in the initial state.
	// The observer (may be nil) receives a snapshot after every transition.
	NewSession(ctx context.Context, observer SnapshotObserver) SelectionSession

	// LastLoadError returns the error of the most recent load, nil after a
	// successful load or before any load.
	LastLoadError() *record.LoadError
}

// SelectionSession is the cascading-filter state machine of one user.
// Transitions must be dispatched one at a time.
type SelectionSession interface {
	// SetQuery replaces the text query and re-filters.
	SetQuery(ctx context.Context, query string) *Snapshot

	// SetCity replaces the city, clears the district, recomputes district
	// options and re-filters.
	SetCity(ctx context.Context, city string) *Snapshot

	// SetDistrict replaces the district and re-filters.
	SetDistrict(ctx context.Context, district string) *Snapshot

	// Reset returns to the initial state.
	Reset(ctx context.Context) *Snapshot

	// State returns the current filter state.
	State() filter.State

	// Snapshot recomputes the view for the current state without a transition.
	Snapshot(ctx context.Context) *Snapshot
}

// SnapshotObserver receives the view after each session transition.
// Hosts (terminal, HTTP) implement it to render.
type SnapshotObserver interface {
	Render(ctx context.Context, snap *Snapshot) error
}

// Snapshot is everything a host needs to render the directory.
type Snapshot struct {
	State           filter.State
	Matches         []record.Record
	CityOptions     []string
	DistrictOptions []string
	// CitySelected distinguishes "no city selected" from "selected city
	// has no districts"; both have no district options.
	CitySelected bool
	// DistrictSelectorVisible is false when the district selector should
	// be hidden.
	DistrictSelectorVisible bool
	TotalRecords            int
	LoadError               *record.LoadError
}

// QueryRequest contains the inputs of a one-shot query.
type QueryRequest struct {
	Query    string
	City     string
	District string
}

// LoadResult contains the outcome of a successful load.
type LoadResult struct {
	Source   string
	Count    int
	Duration time.Duration
}

// Display strings shared by every host.
const (
	AllCitiesLabel     = "所有縣市"
	AllDistrictsLabel  = "所有區域"
	NoMatchesMessage   = "沒有符合條件的門市。"
	LoadFailureMessage = "載入門市資料失敗，請檢查外部網址或檔案格式。"
)
