package sqlite_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/example/storefinder/internal/adapters/sqlite"
	"github.com/example/storefinder/internal/core/record"
)

func scenarioRecords() []record.Record {
	return []record.Record{
		{Name: "A", Address: "X路1號", Tel: "0223", City: "台北市", District: "大安區"},
		{Name: "B", Address: "Y路2號", Tel: "0456", City: "台北市", District: "信義區"},
		{Name: "C", Address: "Z路3號", Tel: "0789", City: "高雄市", District: ""},
	}
}

func TestRecordRepository_ReplaceAllAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRecordRepository(db)
	ctx := context.Background()

	if err := repo.ReplaceAll(ctx, scenarioRecords(), "stores.json"); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if !reflect.DeepEqual(got, scenarioRecords()) {
		t.Errorf("List() = %+v, want %+v", got, scenarioRecords())
	}
}

func TestRecordRepository_ReplaceAllReplacesWholesale(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRecordRepository(db)
	ctx := context.Background()

	seedStore(t, db, 0, "old-1", "台中市", "")
	seedStore(t, db, 1, "old-2", "台中市", "")

	replacement := []record.Record{{Name: "new", City: "嘉義市"}}
	if err := repo.ReplaceAll(ctx, replacement, "https://example.test/stores.json"); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "new" {
		t.Errorf("expected only the replacement record, got %+v", got)
	}
}

func TestRecordRepository_ListPreservesOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRecordRepository(db)

	seedStore(t, db, 2, "third", "", "")
	seedStore(t, db, 0, "first", "", "")
	seedStore(t, db, 1, "second", "", "")

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	names := []string{got[0].Name, got[1].Name, got[2].Name}
	if !reflect.DeepEqual(names, []string{"first", "second", "third"}) {
		t.Errorf("List() order = %v", names)
	}
}

func TestRecordRepository_EmptyCache(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRecordRepository(db)
	ctx := context.Background()

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}

	last, err := repo.LastImport(ctx)
	if err != nil {
		t.Fatalf("LastImport failed: %v", err)
	}
	if last != nil {
		t.Errorf("expected no import, got %+v", last)
	}
}

func TestRecordRepository_CountAndLastImport(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRecordRepository(db)
	ctx := context.Background()

	if err := repo.ReplaceAll(ctx, scenarioRecords(), "first.json"); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}
	if err := repo.ReplaceAll(ctx, scenarioRecords()[:1], "second.json"); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Count() = %d, want 1", count)
	}

	last, err := repo.LastImport(ctx)
	if err != nil {
		t.Fatalf("LastImport failed: %v", err)
	}
	if last.Source != "second.json" || last.RecordCount != 1 {
		t.Errorf("LastImport() = %+v", last)
	}
	if last.ImportedAt == "" {
		t.Error("expected ImportedAt to be set")
	}
}

func TestCacheSource_Fetch(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewRecordRepository(db)
	source := sqlite.NewCacheSource(repo)
	ctx := context.Background()

	if err := repo.ReplaceAll(ctx, scenarioRecords(), "stores.json"); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	got, err := source.Fetch(ctx)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 records, got %d", len(got))
	}

	db.Close()
	_, err = source.Fetch(ctx)
	var le *record.LoadError
	if !errors.As(err, &le) || le.Kind != record.LoadErrorIO {
		t.Errorf("expected io LoadError after close, got %v", err)
	}
}
