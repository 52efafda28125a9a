package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/storefinder/internal/ports/primary"
)

// CacheAdapter translates CLI cache operations to CacheService calls.
type CacheAdapter struct {
	service primary.CacheService
	out     io.Writer
}

// NewCacheAdapter creates a new CacheAdapter with the given service.
func NewCacheAdapter(service primary.CacheService, out io.Writer) *CacheAdapter {
	return &CacheAdapter{
		service: service,
		out:     out,
	}
}

// Import copies records from source into the local cache.
func (a *CacheAdapter) Import(ctx context.Context, source string) (*primary.ImportResult, error) {
	result, err := a.service.Import(ctx, source)
	if err != nil {
		fmt.Fprintln(a.out, color.New(color.FgRed).Sprint(primary.LoadFailureMessage))
		return nil, fmt.Errorf("failed to import records: %w", err)
	}

	fmt.Fprintf(a.out, "%s Imported %d stores from %s\n",
		color.New(color.FgGreen).Sprint("✓"), result.Count, result.Source)
	return result, nil
}

// Status displays what the local cache holds.
func (a *CacheAdapter) Status(ctx context.Context) (*primary.CacheStatus, error) {
	status, err := a.service.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache status: %w", err)
	}

	if status.LastSource == "" {
		fmt.Fprintln(a.out, "Cache is empty.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Import stores first:")
		fmt.Fprintln(a.out, "  storefinder import --source https://example.com/stores.json")
		return status, nil
	}

	fmt.Fprintf(a.out, "Stores:   %d\n", status.RecordCount)
	fmt.Fprintf(a.out, "Cities:   %d\n", status.Cities)
	fmt.Fprintf(a.out, "Source:   %s\n", status.LastSource)
	fmt.Fprintf(a.out, "Imported: %s\n", status.ImportedAt)
	return status, nil
}
