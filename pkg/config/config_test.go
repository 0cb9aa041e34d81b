package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig tests LoadConfig lookup order.
//
// It verifies:
//   - Built-in defaults load when no config exists
//   - A local .qcfilter.yml is picked up and layered over defaults
//   - An explicit path wins and missing files error
func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := LoadConfig("", dir)
		require.NoError(t, err)
		assert.Equal(t, dir, cfg.WorkingDir)
		assert.Equal(t, "restaurant-card", cfg.Selectors.Card)
		assert.Equal(t, KindNumeric, cfg.Groups.Price.Kind)
		assert.Equal(t, 300*time.Millisecond, cfg.DebounceWait())
		assert.Equal(t, "rating", cfg.DefaultSort)
		assert.Equal(t, MalformedEmpty, cfg.MalformedFeatures)
	})

	t.Run("local config overlays defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := "debounce_ms: 50\nselectors:\n  card: listing\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, LocalConfigName), []byte(content), 0644))

		cfg, err := LoadConfig("", dir)
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.DebounceMS)
		assert.Equal(t, "listing", cfg.Selectors.Card)
		assert.Equal(t, "restaurant-list", cfg.Selectors.List)
	})

	t.Run("explicit path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "custom.yml")
		require.NoError(t, os.WriteFile(path, []byte("malformed_features: error\n"), 0644))

		cfg, err := LoadConfig(path, dir)
		require.NoError(t, err)
		assert.Equal(t, MalformedError, cfg.MalformedFeatures)
	})

	t.Run("missing explicit path", func(t *testing.T) {
		cfg, err := LoadConfig("/nonexistent/qcfilter.yml", t.TempDir())
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, LocalConfigName), []byte("debounce_ms: -1\n"), 0644))
		_, err := LoadConfig("", dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "debounce_ms")
	})

	t.Run("broken yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, LocalConfigName), []byte("groups: ["), 0644))
		_, err := LoadConfig("", dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid YAML")
	})

	t.Run("oversized file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "big.yml")
		big := "# " + strings.Repeat("x", int(DefaultMaxConfigFileSize)) + "\n"
		require.NoError(t, os.WriteFile(path, []byte(big), 0644))
		_, err := LoadConfig(path, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too large")
	})
}

// TestDefaultConfigFallback tests that a broken embedded default still yields a config.
func TestDefaultConfigFallback(t *testing.T) {
	original := defaultConfigYAML
	defaultConfigYAML = "selectors: ["
	defer func() { defaultConfigYAML = original }()

	cfg := loadDefaultConfig()
	assert.Equal(t, fallbackConfig(), cfg)
	assert.False(t, cfg.Validate().HasErrors())
}

// TestValidate tests validation of group kinds, names and policies.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"unknown kind", func(c *Config) { c.Groups.Price.Kind = "float" }, "groups.price.kind"},
		{"empty group name", func(c *Config) { c.Groups.Senior.Name = "" }, "groups.senior.name"},
		{"duplicate group name", func(c *Config) { c.Groups.Senior.Name = "features" }, "already used by groups.features"},
		{"unknown policy", func(c *Config) { c.MalformedFeatures = "ignore" }, "malformed_features"},
		{"empty card selector", func(c *Config) { c.Selectors.Card = "" }, "selectors.card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			result := cfg.Validate()
			if tt.wantErr == "" {
				assert.False(t, result.HasErrors(), result.ErrorMessages())
				return
			}
			require.True(t, result.HasErrors())
			assert.Contains(t, result.ErrorMessages(), tt.wantErr)
		})
	}

	t.Run("unknown default sort is a warning", func(t *testing.T) {
		cfg := Default()
		cfg.DefaultSort = "name"
		result := cfg.Validate()
		assert.False(t, result.HasErrors())
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "name")
	})
}

// TestValidateConfigFile tests strict decoding of raw YAML.
func TestValidateConfigFile(t *testing.T) {
	assert.False(t, ValidateConfigFile([]byte("")).HasErrors())
	assert.False(t, ValidateConfigFile([]byte(GetDefaultConfig())).HasErrors())

	result := ValidateConfigFile([]byte("selectors:\n  cards: x\n"))
	require.True(t, result.HasErrors())
	assert.Contains(t, result.ErrorMessages(), "cards")
}

// TestGroupByName tests lookup of a checkbox group by input name.
func TestGroupByName(t *testing.T) {
	cfg := Default()
	g, ok := cfg.GroupByName("price")
	require.True(t, ok)
	assert.Equal(t, KindNumeric, g.Kind)

	_, ok = cfg.GroupByName("cuisine")
	assert.False(t, ok)
}
