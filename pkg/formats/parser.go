package formats

import (
	"fmt"
	"path/filepath"
	"strings"
)

// GetRecordParser returns the appropriate parser for a given record format.
//
// It performs the following operations:
//   - Trims whitespace from the format string
//   - Validates that the format is not empty
//   - Returns the corresponding parser implementation
//
// Parameters:
//   - format: The format name ("json", "yaml", "csv" or "xlsx")
//
// Returns:
//   - RecordParser: The parser implementation for the specified format
//   - error: Returns an error if format is empty or unsupported; returns nil on success
func GetRecordParser(format string) (RecordParser, error) {
	format = strings.TrimSpace(format)
	if format == "" {
		return nil, fmt.Errorf("format cannot be empty")
	}

	switch format {
	case FormatJSON:
		return &JSONParser{}, nil
	case FormatYAML:
		return &YAMLParser{}, nil
	case FormatCSV:
		return &CSVParser{}, nil
	case FormatXLSX:
		return &XLSXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// FormatForPath maps a file extension to a source format.
//
// Parameters:
//   - path: The listing file path
//
// Returns:
//   - string: One of the Format constants
//   - error: When the extension is not recognized
func FormatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported listing file %q: expected .html, .json, .yaml, .csv or .xlsx", filepath.Base(path))
	}
}
