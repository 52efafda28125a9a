package geo

import (
	"sort"

	"github.com/example/storefinder/internal/core/record"
)

// CityOptions returns the distinct non-empty cities in records ordered by
// their rank in order. Cities unknown to the table sort after every known
// city and keep their first-appearance order among themselves.
//
// The result is never nil; an empty store yields an empty slice.
func CityOptions(records []record.Record, order CityOrder) []string {
	seen := make(map[string]struct{})
	cities := make([]string, 0)
	for _, r := range records {
		if !r.HasCity() {
			continue
		}
		if _, ok := seen[r.City]; ok {
			continue
		}
		seen[r.City] = struct{}{}
		cities = append(cities, r.City)
	}

	sort.SliceStable(cities, func(i, j int) bool {
		return order.Rank(cities[i]) < order.Rank(cities[j])
	})
	return cities
}

// DistrictOptions returns the distinct non-empty districts of records whose
// city equals city, ordered by coll.
//
// An empty city returns nil: no city is selected. A selected city without
// district data returns an empty, non-nil slice, which tells the caller to
// hide the district selector.
func DistrictOptions(records []record.Record, city string, coll Collation) []string {
	if city == "" {
		return nil
	}

	seen := make(map[string]struct{})
	districts := make([]string, 0)
	for _, r := range records {
		if r.City != city || !r.HasDistrict() {
			continue
		}
		if _, ok := seen[r.District]; ok {
			continue
		}
		seen[r.District] = struct{}{}
		districts = append(districts, r.District)
	}

	coll.Sort(districts)
	return districts
}
