package formats

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/ajxudir/qcfilter/pkg/cards"
)

// CSVParser parses CSV exports of a listing spreadsheet. Columns are the same
// as XLSXParser's.
type CSVParser struct{}

// Parse parses CSV content into restaurant records.
//
// Parameters:
//   - content: The raw bytes of the CSV file
//
// Returns:
//   - []cards.Restaurant: One record per named row
//   - error: Returns an error if the CSV is malformed or has no name column
func (p *CSVParser) Parse(content []byte) ([]cards.Restaurant, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	return recordsFromTable(rows)
}
