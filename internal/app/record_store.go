package app

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/example/storefinder/internal/core/record"
	"github.com/example/storefinder/internal/ports/secondary"
)

// RecordStore holds the loaded record set.
// Readers never block and see either the previous or the new set in full,
// always paired with the error of the load that produced it.
// Loads are serialized; the last load to finish wins.
type RecordStore struct {
	loadMu sync.Mutex
	state  atomic.Pointer[storeState]
}

// storeState is published as a unit; it is never modified after Store.
type storeState struct {
	records []record.Record
	err     *record.LoadError
}

// NewRecordStore creates an empty RecordStore.
func NewRecordStore() *RecordStore {
	s := &RecordStore{}
	s.state.Store(&storeState{records: []record.Record{}})
	return s
}

// Load fetches from source and replaces the held records. On failure the
// store is reset to empty and the failure is returned as a LoadError.
func (s *RecordStore) Load(ctx context.Context, source secondary.RecordSource) ([]record.Record, *record.LoadError) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	fetched, err := source.Fetch(ctx)
	if err != nil {
		le := record.AsLoadError(err, source.Describe())
		s.state.Store(&storeState{records: []record.Record{}, err: le})
		return nil, le
	}

	normalized := record.NormalizeAll(fetched)
	s.Replace(normalized)
	return normalized, nil
}

// Replace swaps in records wholesale and clears any load error. A nil slice
// empties the store. The store takes ownership of records; callers must not
// modify it afterwards.
func (s *RecordStore) Replace(records []record.Record) {
	if records == nil {
		records = []record.Record{}
	}
	s.state.Store(&storeState{records: records})
}

// Records returns a copy of the held records in load order.
func (s *RecordStore) Records() []record.Record {
	return slices.Clone(s.view())
}

// LastError returns the failure of the most recent load, if it failed.
func (s *RecordStore) LastError() *record.LoadError {
	return s.current().err
}

// current returns the published records and error together.
func (s *RecordStore) current() *storeState {
	return s.state.Load()
}

// view returns the held slice without copying; it must not be modified.
func (s *RecordStore) view() []record.Record {
	return s.current().records
}
