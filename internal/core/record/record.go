// Package record defines the store directory entry shared by every layer.
// This is part of the Functional Core - no I/O, only values and pure functions.
package record

import "strings"

// Record is one store's directory entry.
// Records are immutable once loaded; callers copy rather than mutate.
type Record struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Tel      string `json:"tel"`
	City     string `json:"city"`
	District string `json:"district"`
}

// HasCity reports whether the record is classified under a city.
func (r Record) HasCity() bool {
	return r.City != ""
}

// HasDistrict reports whether the record is classified under a district.
func (r Record) HasDistrict() bool {
	return r.District != ""
}

// Normalize returns a copy of r with surrounding whitespace removed from the
// geographic fields. A city or district made only of whitespace becomes
// unclassified. Display fields are left exactly as supplied.
func Normalize(r Record) Record {
	r.City = strings.TrimSpace(r.City)
	r.District = strings.TrimSpace(r.District)
	return r
}

// NormalizeAll applies Normalize to every record, preserving order.
// The input slice is not modified.
func NormalizeAll(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = Normalize(r)
	}
	return out
}
