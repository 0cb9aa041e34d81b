// Package formats loads restaurant listings into documents the filter
// controller can drive. HTML pages are parsed as-is; record files (JSON, YAML,
// CSV and XLSX exports) are converted into the standard listing markup.
package formats

import "github.com/ajxudir/qcfilter/pkg/cards"

// Supported source formats.
const (
	FormatHTML = "html"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// RecordParser defines the interface for parsing listing records.
//
// Implementations parse the raw file content according to their format and
// return the restaurants in file order.
type RecordParser interface {
	// Parse parses raw file content into restaurant records.
	//
	// Parameters:
	//   - content: The raw bytes of the listing file
	//
	// Returns:
	//   - []cards.Restaurant: The parsed records in file order
	//   - error: Returns an error if the content is invalid; returns nil on success
	Parse(content []byte) ([]cards.Restaurant, error)
}

// LoadOptions adjusts how record files become documents.
//
// Fields:
//   - Category: Keep only records in this category (case-insensitive, dashes read as spaces)
//   - KeepOrder: Keep file order instead of publishing order (rating times reviews, descending)
type LoadOptions struct {
	Category  string
	KeepOrder bool
}
