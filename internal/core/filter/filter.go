// Package filter contains the store directory match predicate.
// This is part of the Functional Core - no I/O, only pure functions.
package filter

import (
	"strings"

	"github.com/example/storefinder/internal/core/record"
)

// State is the user-selected query/city/district triple.
// District is meaningful only while City is non-empty; the selection
// transitions keep it that way.
type State struct {
	Query    string `json:"query"`
	City     string `json:"city"`
	District string `json:"district"`
}

// IsEmpty reports whether no filter is active.
func (s State) IsEmpty() bool {
	return s.Query == "" && s.City == "" && s.District == ""
}

// Matches reports whether r satisfies every active part of s.
// Text match is a lowercase-folded substring test over name, address and
// tel; city and district are exact, case-sensitive comparisons.
func Matches(r record.Record, s State) bool {
	return matches(r, s, strings.ToLower(s.Query))
}

// Apply returns the records that match s in their original order.
// The result is never nil; no match yields an empty slice.
func Apply(records []record.Record, s State) []record.Record {
	query := strings.ToLower(s.Query)

	out := make([]record.Record, 0, len(records))
	for _, r := range records {
		if matches(r, s, query) {
			out = append(out, r)
		}
	}
	return out
}

// matches is Matches with the query already lowercased.
func matches(r record.Record, s State, query string) bool {
	return matchText(r, query) &&
		(s.City == "" || r.City == s.City) &&
		(s.District == "" || r.District == s.District)
}

// matchText expects query already lowercased.
func matchText(r record.Record, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), query) ||
		strings.Contains(strings.ToLower(r.Address), query) ||
		strings.Contains(strings.ToLower(r.Tel), query)
}
