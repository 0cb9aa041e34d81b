package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultConfigYAML string

// loadDefaultConfig loads the embedded default configuration.
//
// If the embedded YAML cannot be decoded, the hard-coded fallback is returned
// so callers always receive a usable Config.
//
// Returns:
//   - *Config: the default configuration
func loadDefaultConfig() *Config {
	var cfg Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err == nil {
		return &cfg
	}
	return fallbackConfig()
}

// fallbackConfig mirrors default.yml.
func fallbackConfig() *Config {
	return &Config{
		Selectors: Selectors{
			Card:       "restaurant-card",
			List:       "restaurant-list",
			Name:       "restaurant-name",
			Address:    "address",
			Cuisine:    "cuisine-badge",
			Badge:      "feature-badge",
			Wheelchair: "wheelchair",
			Search:     "restaurantSearch",
			Sort:       "sortBy",
			Count:      "resultsCount",
		},
		Groups: Groups{
			Price:    GroupCfg{Name: "price", Kind: KindNumeric},
			Features: GroupCfg{Name: "features", Kind: KindText},
			Senior:   GroupCfg{Name: "senior", Kind: KindText},
		},
		DebounceMS:        300,
		DefaultSort:       "rating",
		MalformedFeatures: MalformedEmpty,
	}
}

// Default returns a fresh copy of the built-in configuration.
func Default() *Config {
	return loadDefaultConfig()
}

// GetDefaultConfig returns the embedded default configuration YAML.
//
// Returns:
//   - string: the default configuration as YAML
func GetDefaultConfig() string {
	return defaultConfigYAML
}
