// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/storefinder/internal/core/record"
	"github.com/example/storefinder/internal/ports/secondary"
)

// RecordRepository implements secondary.RecordRepository with SQLite.
type RecordRepository struct {
	db *sql.DB
}

// NewRecordRepository creates a new SQLite record repository.
func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// ReplaceAll replaces every cached record in one transaction and records
// the import. Readers see either the old or the new set.
func (r *RecordRepository) ReplaceAll(ctx context.Context, records []record.Record, source string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM stores"); err != nil {
		return fmt.Errorf("failed to clear stores: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO stores (position, name, address, tel, city, district) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.ExecContext(ctx, i, rec.Name, rec.Address, rec.Tel, rec.City, rec.District); err != nil {
			return fmt.Errorf("failed to insert store %d: %w", i, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO imports (source, record_count) VALUES (?, ?)",
		source, len(records),
	); err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// List retrieves all cached records in import order.
func (r *RecordRepository) List(ctx context.Context) ([]record.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT name, address, tel, city, district FROM stores ORDER BY position ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	records := []record.Record{}
	for rows.Next() {
		var rec record.Record
		if err := rows.Scan(&rec.Name, &rec.Address, &rec.Tel, &rec.City, &rec.District); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	return records, nil
}

// Count returns the number of cached records.
func (r *RecordRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM stores").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count stores: %w", err)
	}
	return count, nil
}

// LastImport returns the most recent import entry (nil if none).
func (r *RecordRepository) LastImport(ctx context.Context) (*secondary.ImportRecord, error) {
	var importedAt time.Time
	rec := &secondary.ImportRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, source, record_count, imported_at FROM imports ORDER BY id DESC LIMIT 1",
	).Scan(&rec.ID, &rec.Source, &rec.RecordCount, &importedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last import: %w", err)
	}

	rec.ImportedAt = importedAt.Format(time.RFC3339)
	return rec, nil
}

// Ensure RecordRepository implements the interface.
var _ secondary.RecordRepository = (*RecordRepository)(nil)

// CacheSource exposes the record cache as a RecordSource.
type CacheSource struct {
	repo *RecordRepository
}

// NewCacheSource creates a RecordSource reading from repo.
func NewCacheSource(repo *RecordRepository) *CacheSource {
	return &CacheSource{repo: repo}
}

// Fetch returns the cached records. Query failures are io LoadErrors.
func (s *CacheSource) Fetch(ctx context.Context) ([]record.Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, record.NewLoadError(record.LoadErrorIO, s.Describe(), err)
	}
	return records, nil
}

// Describe returns the cache source name.
func (s *CacheSource) Describe() string {
	return "sqlite:"
}

// Ensure CacheSource implements the interface.
var _ secondary.RecordSource = (*CacheSource)(nil)
