package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/storefinder/internal/ports/primary"
)

// DirectoryAdapter renders the store directory to a terminal.
// It also serves as the SnapshotObserver of interactive sessions.
type DirectoryAdapter struct {
	service primary.DirectoryService
	out     io.Writer
}

// Ensure DirectoryAdapter implements the interface
var _ primary.SnapshotObserver = (*DirectoryAdapter)(nil)

// NewDirectoryAdapter creates a new DirectoryAdapter with the given service.
func NewDirectoryAdapter(service primary.DirectoryService, out io.Writer) *DirectoryAdapter {
	return &DirectoryAdapter{
		service: service,
		out:     out,
	}
}

// List runs a one-shot query and renders the result.
func (a *DirectoryAdapter) List(ctx context.Context, req primary.QueryRequest) *primary.Snapshot {
	snap := a.service.Query(ctx, req)
	a.renderLoadError(snap)
	a.renderTable(snap)
	return snap
}

// Cities prints the city selector options, one per line.
func (a *DirectoryAdapter) Cities(ctx context.Context) []string {
	cities := a.service.CityOptions(ctx)
	a.renderLoadError(&primary.Snapshot{LoadError: a.service.LastLoadError()})
	fmt.Fprintln(a.out, primary.AllCitiesLabel)
	for _, city := range cities {
		fmt.Fprintln(a.out, city)
	}
	return cities
}

// Districts prints the district selector options of city.
func (a *DirectoryAdapter) Districts(ctx context.Context, city string) []string {
	districts := a.service.DistrictOptions(ctx, city)
	if len(districts) == 0 {
		fmt.Fprintln(a.out, "(no districts)")
		return districts
	}
	fmt.Fprintln(a.out, primary.AllDistrictsLabel)
	for _, district := range districts {
		fmt.Fprintln(a.out, district)
	}
	return districts
}

// Render draws the full directory view for snap.
func (a *DirectoryAdapter) Render(ctx context.Context, snap *primary.Snapshot) error {
	if snap == nil {
		return nil
	}

	a.renderLoadError(snap)

	fmt.Fprintf(a.out, "縣市: %s\n", selector(primary.AllCitiesLabel, snap.CityOptions, snap.State.City))
	if snap.DistrictSelectorVisible {
		fmt.Fprintf(a.out, "區域: %s\n", selector(primary.AllDistrictsLabel, snap.DistrictOptions, snap.State.District))
	}
	if snap.State.Query != "" {
		fmt.Fprintf(a.out, "查詢: %q\n", snap.State.Query)
	}
	fmt.Fprintln(a.out)

	a.renderTable(snap)
	return nil
}

func (a *DirectoryAdapter) renderLoadError(snap *primary.Snapshot) {
	if snap.LoadError == nil {
		return
	}
	fmt.Fprintln(a.out, color.New(color.FgRed).Sprint(primary.LoadFailureMessage))
}

func (a *DirectoryAdapter) renderTable(snap *primary.Snapshot) {
	if len(snap.Matches) == 0 {
		fmt.Fprintln(a.out, primary.NoMatchesMessage)
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "名稱\t地址\t電話")
	fmt.Fprintln(w, "----\t----\t----")

	for _, r := range snap.Matches {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Name, r.Address, r.Tel)
	}

	w.Flush()
	fmt.Fprintf(a.out, "\n%d / %d\n", len(snap.Matches), snap.TotalRecords)
}

// selector renders options on one line with the current choice marked.
// An empty current marks the leading "all" option.
func selector(allLabel string, options []string, current string) string {
	items := make([]string, 0, len(options)+1)
	items = append(items, mark(allLabel, current == ""))
	for _, opt := range options {
		items = append(items, mark(opt, opt == current))
	}
	return strings.Join(items, " | ")
}

func mark(s string, selected bool) string {
	if !selected {
		return s
	}
	return color.New(color.FgCyan, color.Bold).Sprint("[" + s + "]")
}
