package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/example/storefinder/internal/core/record"
)

// flakySource fails on every other fetch.
type flakySource struct {
	mu    sync.Mutex
	calls int
}

func (f *flakySource) Fetch(ctx context.Context) ([]record.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls%2 == 0 {
		return nil, errors.New("connection reset")
	}
	return []record.Record{storeA, storeB, storeC}, nil
}

func (f *flakySource) Describe() string {
	return "flaky"
}

func TestRecordStore_LoadPublishesRecordsAndErrorTogether(t *testing.T) {
	store := NewRecordStore()
	ctx := context.Background()
	source := &flakySource{}

	if _, err := store.Load(ctx, source); err != nil {
		t.Fatalf("first load failed: %v", err)
	}
	if st := store.current(); len(st.records) != 3 || st.err != nil {
		t.Fatalf("after success: %d records, err %v", len(st.records), st.err)
	}

	if _, err := store.Load(ctx, source); err == nil {
		t.Fatal("expected second load to fail")
	}
	if st := store.current(); len(st.records) != 0 || st.err == nil {
		t.Fatalf("after failure: %d records, err %v", len(st.records), st.err)
	}

	store.Replace([]record.Record{storeA})
	if st := store.current(); len(st.records) != 1 || st.err != nil {
		t.Fatalf("after replace: %d records, err %v", len(st.records), st.err)
	}
}

func TestRecordStore_ReadersNeverSeeMixedState(t *testing.T) {
	store := NewRecordStore()
	source := &flakySource{}
	ctx := context.Background()

	var wg sync.WaitGroup
	done := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(done)
		for i := 0; i < 200; i++ {
			store.Load(ctx, source)
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				st := store.current()
				if st.err != nil && len(st.records) != 0 {
					t.Errorf("error published with %d records", len(st.records))
					return
				}
				if st.err == nil && len(st.records) != 0 && len(st.records) != 3 {
					t.Errorf("partial record set: %d records", len(st.records))
					return
				}
			}
		}()
	}

	wg.Wait()
}
