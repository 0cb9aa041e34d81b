package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/qcfilter/pkg/verbose"
	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field    string
	Message  string
	Expected string // Expected values, if the field is an enum
}

// Error returns the error message string.
func (e ValidationError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	if e.Expected != "" {
		msg += fmt.Sprintf(" (expected %s)", e.Expected)
	}
	return msg
}

// ValidationResult holds the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// ErrorMessages joins all errors into a single "; " separated string.
func (r *ValidationResult) ErrorMessages() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// ValidateConfigFile validates raw YAML, rejecting unknown fields.
//
// Parameters:
//   - data: YAML configuration data
//
// Returns:
//   - *ValidationResult: validation result with any errors and warnings found
func ValidateConfigFile(data []byte) *ValidationResult {
	result := &ValidationResult{}

	verbose.Printf("Config validation: starting YAML parsing with strict field checking")

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	cfg := loadDefaultConfig()
	// An empty document decodes to io.EOF and leaves the defaults in place.
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		verbose.Printf("Config validation FAILED: YAML decode error: %v", err)
		result.Errors = append(result.Errors, ValidationError{Message: err.Error()})
		return result
	}

	validateConfigStruct(cfg, result)
	return result
}

// Validate validates a loaded Config struct.
//
// Returns:
//   - *ValidationResult: validation result with any errors and warnings found
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}
	validateConfigStruct(c, result)
	return result
}

func validateConfigStruct(cfg *Config, result *ValidationResult) {
	if cfg.Selectors.Card == "" {
		result.Errors = append(result.Errors, ValidationError{Field: "selectors.card", Message: "must not be empty"})
	}

	seen := map[string]string{}
	groups := []struct {
		field string
		g     GroupCfg
	}{
		{"groups.price", cfg.Groups.Price},
		{"groups.features", cfg.Groups.Features},
		{"groups.senior", cfg.Groups.Senior},
	}
	for _, entry := range groups {
		field, g := entry.field, entry.g
		if g.Name == "" {
			result.Errors = append(result.Errors, ValidationError{Field: field + ".name", Message: "must not be empty"})
		} else if other, dup := seen[g.Name]; dup {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field + ".name",
				Message: fmt.Sprintf("%q is already used by %s", g.Name, other),
			})
		} else {
			seen[g.Name] = field
		}
		if g.Kind != KindNumeric && g.Kind != KindText {
			result.Errors = append(result.Errors, ValidationError{
				Field:    field + ".kind",
				Message:  fmt.Sprintf("unknown kind %q", g.Kind),
				Expected: KindNumeric + " or " + KindText,
			})
		}
	}

	if cfg.DebounceMS < 0 {
		result.Errors = append(result.Errors, ValidationError{Field: "debounce_ms", Message: "must not be negative"})
	}

	if cfg.MalformedFeatures != MalformedEmpty && cfg.MalformedFeatures != MalformedError {
		result.Errors = append(result.Errors, ValidationError{
			Field:    "malformed_features",
			Message:  fmt.Sprintf("unknown policy %q", cfg.MalformedFeatures),
			Expected: MalformedEmpty + " or " + MalformedError,
		})
	}

	switch cfg.DefaultSort {
	case "rating", "reviews", "price-low", "price-high":
	default:
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("default_sort %q is not a known sort key; cards will keep their order", cfg.DefaultSort))
	}
}
