// Package selection contains the cascading-filter state machine rules.
// This is part of the Functional Core - no I/O, only pure functions.
package selection

import "github.com/example/storefinder/internal/core/filter"

// EventKind names a user input event.
type EventKind string

const (
	EventSetQuery    EventKind = "set_query"
	EventSetCity     EventKind = "set_city"
	EventSetDistrict EventKind = "set_district"
	EventReset       EventKind = "reset"
)

// Event is one user input: which selector changed and its new value.
type Event struct {
	Kind  EventKind
	Value string
}

// TransitionResult captures the new state and which derived values the
// caller must recompute.
type TransitionResult struct {
	NewState filter.State
	// CityChanged is set when district options must be recomputed.
	CityChanged bool
}

// InitialState returns the state every session starts in: no filters.
func InitialState() filter.State {
	return filter.State{}
}

// ApplySetQuery replaces the text query.
func ApplySetQuery(s filter.State, query string) TransitionResult {
	s.Query = query
	return TransitionResult{NewState: s}
}

// ApplySetCity replaces the city and always clears the district, including
// when city is unchanged or empty.
func ApplySetCity(s filter.State, city string) TransitionResult {
	s.City = city
	s.District = ""
	return TransitionResult{NewState: s, CityChanged: true}
}

// ApplySetDistrict replaces the district. Membership in the current options
// is checked separately by CanSetDistrict; an out-of-range value is still
// applied and simply matches nothing.
func ApplySetDistrict(s filter.State, district string) TransitionResult {
	s.District = district
	return TransitionResult{NewState: s}
}

// ApplyReset returns to the initial state.
func ApplyReset() TransitionResult {
	return TransitionResult{NewState: InitialState(), CityChanged: true}
}

// Apply dispatches e to the matching transition.
// Unknown event kinds leave the state unchanged.
func Apply(s filter.State, e Event) TransitionResult {
	switch e.Kind {
	case EventSetQuery:
		return ApplySetQuery(s, e.Value)
	case EventSetCity:
		return ApplySetCity(s, e.Value)
	case EventSetDistrict:
		return ApplySetDistrict(s, e.Value)
	case EventReset:
		return ApplyReset()
	default:
		return TransitionResult{NewState: s}
	}
}
