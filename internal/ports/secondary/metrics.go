package secondary

import "time"

// Load outcomes reported to DirectoryMetrics.
const (
	LoadOutcomeSuccess = "success"
	LoadOutcomeFailure = "failure"
)

// DirectoryMetrics defines the secondary port for operational metrics.
type DirectoryMetrics interface {
	// ObserveLoad records one record-set load.
	ObserveLoad(outcome string, records int, d time.Duration)

	// ObserveFilter records one filter evaluation.
	ObserveFilter(matches int, d time.Duration)
}

// SourceResolver maps a source location (URL, file path, "sqlite:") to a
// RecordSource.
type SourceResolver interface {
	Resolve(location string) (RecordSource, error)
}
