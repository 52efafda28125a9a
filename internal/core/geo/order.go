// Package geo derives the selectable geographic options (cities, districts)
// from a record sequence.
// This is part of the Functional Core - no I/O, only pure functions.
package geo

import "sync"

// taiwanCities is the display precedence of the Taiwan store
// directory: north to south, then the east coast, outlying islands last.
var taiwanCities = []string{
	"基隆市", "台北市", "新北市", "桃園市", "新竹市", "新竹縣", "苗栗縣",
	"台中市", "彰化縣", "南投縣", "雲林縣", "嘉義市", "嘉義縣", "台南市",
	"高雄市", "屏東縣", "宜蘭縣", "花蓮縣", "金門縣",
}

// CityOrder is a fixed ordered table of known city names.
// The zero value is an empty table, under which every city is unknown.
type CityOrder struct {
	names []string
	rank  map[string]int
}

// NewCityOrder builds a CityOrder from names in display order.
// Empty names are skipped; a repeated name keeps its first position.
func NewCityOrder(names []string) CityOrder {
	o := CityOrder{
		names: make([]string, 0, len(names)),
		rank:  make(map[string]int, len(names)),
	}
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, seen := o.rank[name]; seen {
			continue
		}
		o.rank[name] = len(o.names)
		o.names = append(o.names, name)
	}
	return o
}

// DefaultCityOrder returns the built-in Taiwan city table.
// Computed once; the returned value must be treated as read-only.
var DefaultCityOrder = sync.OnceValue(func() CityOrder {
	return NewCityOrder(taiwanCities)
})

// Rank returns the sort key of city: its index in the table, or Len() for
// a city the table does not know.
func (o CityOrder) Rank(city string) int {
	if idx, ok := o.rank[city]; ok {
		return idx
	}
	return len(o.names)
}

// Known reports whether city appears in the table.
func (o CityOrder) Known(city string) bool {
	_, ok := o.rank[city]
	return ok
}

// Len returns the number of cities in the table.
func (o CityOrder) Len() int {
	return len(o.names)
}

// Names returns a copy of the table in display order.
func (o CityOrder) Names() []string {
	out := make([]string, len(o.names))
	copy(out, o.names)
	return out
}
