package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/example/storefinder/internal/core/geo"
)

// cityOrderFile is the YAML layout of a custom city table:
//
//	cities:
//	  - Paris
//	  - Lyon
type cityOrderFile struct {
	Cities []string `yaml:"cities"`
}

// ParseCityOrder decodes a YAML city table.
func ParseCityOrder(data []byte) (geo.CityOrder, error) {
	var f cityOrderFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return geo.CityOrder{}, fmt.Errorf("failed to parse city order: %w", err)
	}
	if len(f.Cities) == 0 {
		return geo.CityOrder{}, fmt.Errorf("city order has no cities")
	}
	return geo.NewCityOrder(f.Cities), nil
}

// LoadCityOrder returns the city table at path, or the built-in table when
// path is empty.
func LoadCityOrder(path string) (geo.CityOrder, error) {
	if path == "" {
		return geo.DefaultCityOrder(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return geo.CityOrder{}, fmt.Errorf("failed to read city order: %w", err)
	}
	return ParseCityOrder(data)
}
