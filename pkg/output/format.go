// Package output renders filter results as a terminal table or as CSV, JSON
// or XML for other tools.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default terminal table output.
	FormatTable Format = "table"
	// FormatCSV outputs one row per card.
	FormatCSV Format = "csv"
	// FormatJSON outputs the full result as JSON.
	FormatJSON Format = "json"
	// FormatXML outputs the full result as XML.
	FormatXML Format = "xml"
)

// ParseFormat parses a format flag value, case-insensitively.
//
// Parameters:
//   - s: Format string such as "json" or "TABLE"; "" selects the table
//
// Returns:
//   - Format: The parsed format
//   - error: When s names no known format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected table, json, csv or xml)", s)
	}
}

// IsStructuredFormat returns true for the machine-readable formats.
func IsStructuredFormat(f Format) bool {
	return f == FormatCSV || f == FormatJSON || f == FormatXML
}

// Formatter handles writing data in a specific format.
//
// Fields:
//   - format: The output format
//   - writer: Destination for formatted output
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new formatter for the given format and writer.
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// Format returns the current format.
func (f *Formatter) Format() Format {
	return f.format
}

// WriteCSV writes a header row followed by the data rows.
//
// csv.Writer buffers writes and only reports errors after Flush.
//
// Parameters:
//   - headers: Column headers
//   - rows: Data rows, each with one value per header
//
// Returns:
//   - error: When writing or flushing fails
func (f *Formatter) WriteCSV(headers []string, rows [][]string) error {
	w := csv.NewWriter(f.writer)

	_ = w.Write(headers)
	for _, row := range rows {
		_ = w.Write(row)
	}

	w.Flush()
	return w.Error()
}

// WriteJSON writes data as indented JSON without HTML escaping, so names
// like "Fish & Chips" stay readable.
//
// Parameters:
//   - data: Value to encode; ordered maps keep their key order
//
// Returns:
//   - error: When encoding fails
func (f *Formatter) WriteJSON(data interface{}) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	_, err := f.writer.Write(buf.Bytes())
	return err
}

// WriteXML writes the XML header and data with 2-space indentation.
//
// Parameters:
//   - data: Value to encode; must carry xml tags
//
// Returns:
//   - error: When encoding fails
func (f *Formatter) WriteXML(data interface{}) error {
	_, _ = fmt.Fprint(f.writer, xml.Header)
	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(f.writer)
	return nil
}
