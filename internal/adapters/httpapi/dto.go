package httpapi

import (
	"github.com/example/storefinder/internal/core/record"
	"github.com/example/storefinder/internal/ports/primary"
)

// SnapshotResponse is the JSON form of a directory snapshot.
// Slices are never null on the wire.
type SnapshotResponse struct {
	Query            string             `json:"query"`
	City             string             `json:"city"`
	District         string             `json:"district"`
	Stores           []record.Record    `json:"stores"`
	Total            int                `json:"total"`
	Cities           []string           `json:"cities"`
	Districts        []string           `json:"districts"`
	CitySelected     bool               `json:"city_selected"`
	DistrictsVisible bool               `json:"districts_visible"`
	Message          string             `json:"message,omitempty"`
	LoadError        *LoadErrorResponse `json:"load_error,omitempty"`
}

// LoadErrorResponse describes a failed load.
type LoadErrorResponse struct {
	Kind       string `json:"kind"`
	Source     string `json:"source"`
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message"`
	Detail     string `json:"detail"`
}

// CitiesResponse lists the city selector options.
type CitiesResponse struct {
	AllLabel string   `json:"all_label"`
	Cities   []string `json:"cities"`
}

// DistrictsResponse lists the district selector options of one city.
type DistrictsResponse struct {
	City      string   `json:"city"`
	AllLabel  string   `json:"all_label"`
	Districts []string `json:"districts"`
	Visible   bool     `json:"visible"`
}

// ReloadResponse reports a successful reload.
type ReloadResponse struct {
	Source     string `json:"source"`
	Count      int    `json:"count"`
	DurationMS int64  `json:"duration_ms"`
}

// FromSnapshot converts a snapshot to its response form.
func FromSnapshot(snap *primary.Snapshot) SnapshotResponse {
	resp := SnapshotResponse{
		Query:            snap.State.Query,
		City:             snap.State.City,
		District:         snap.State.District,
		Stores:           nonNil(snap.Matches),
		Total:            snap.TotalRecords,
		Cities:           nonNil(snap.CityOptions),
		Districts:        nonNil(snap.DistrictOptions),
		CitySelected:     snap.CitySelected,
		DistrictsVisible: snap.DistrictSelectorVisible,
		LoadError:        FromLoadError(snap.LoadError),
	}
	if len(snap.Matches) == 0 {
		resp.Message = primary.NoMatchesMessage
	}
	return resp
}

// FromLoadError converts a load error; nil stays nil.
func FromLoadError(err *record.LoadError) *LoadErrorResponse {
	if err == nil {
		return nil
	}
	return &LoadErrorResponse{
		Kind:       string(err.Kind),
		Source:     err.Source,
		StatusCode: err.StatusCode,
		Message:    primary.LoadFailureMessage,
		Detail:     err.Error(),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
