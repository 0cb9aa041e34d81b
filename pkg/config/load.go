// Package config handles configuration loading and validation for qcfilter.
// Configuration is YAML; any field omitted from a config file keeps the value
// from the embedded default.yml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ajxudir/qcfilter/pkg/verbose"
	"gopkg.in/yaml.v3"
)

// LocalConfigName is the config file looked up next to the page being filtered.
const LocalConfigName = ".qcfilter.yml"

// DefaultMaxConfigFileSize bounds config reads (1MB).
const DefaultMaxConfigFileSize int64 = 1 << 20

// LoadConfig resolves, loads and validates the configuration for a page.
//
// Lookup order: configPath when set, then .qcfilter.yml in workDir, then the
// built-in defaults. Fields a file omits keep their default values.
//
// Parameters:
//   - configPath: Explicit config file, or "" to search workDir
//   - workDir: Directory of the page being filtered
//
// Returns:
//   - *Config: The configuration, with WorkingDir set
//   - error: When the file cannot be read, is not valid YAML, or fails validation
func LoadConfig(configPath, workDir string) (*Config, error) {
	path := resolveConfigPath(configPath, workDir)

	cfg := loadDefaultConfig()
	if path == "" {
		verbose.Info("Using built-in default configuration")
	} else {
		loaded, err := loadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		cfg = loaded
		verbose.ConfigLoaded(path)
	}

	cfg.WorkingDir = workDir
	if cfg.WorkingDir == "" {
		cfg.WorkingDir = "."
	}

	if result := cfg.Validate(); result.HasErrors() {
		return nil, fmt.Errorf("invalid configuration: %s", result.ErrorMessages())
	}
	return cfg, nil
}

// resolveConfigPath returns the file LoadConfig should read, or "" for the
// defaults. An explicit path is returned even if it does not exist so the
// read error reaches the user.
func resolveConfigPath(configPath, workDir string) string {
	if configPath != "" {
		return configPath
	}
	local := filepath.Join(workDir, LocalConfigName)
	if info, err := os.Stat(local); err == nil && !info.IsDir() {
		verbose.Infof("Found local config: %s", local)
		return local
	}
	return ""
}

// loadConfigFile reads a config file, enforcing DefaultMaxConfigFileSize.
//
// Parameters:
//   - path: path to the config file
//
// Returns:
//   - *Config: the loaded configuration layered over the defaults
//   - error: error if file is too large, not found, or has invalid YAML
func loadConfigFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > DefaultMaxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)", info.Size(), DefaultMaxConfigFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return loadConfigData(data)
}

// loadConfigData decodes YAML on top of the default configuration.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *Config: the parsed configuration
//   - error: error if YAML is invalid or malformed
func loadConfigData(data []byte) (*Config, error) {
	cfg := loadDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return cfg, nil
}
