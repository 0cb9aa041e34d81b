package formats

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ajxudir/qcfilter/pkg/cards"
)

// XLSXParser parses listing spreadsheets exported by place scrapers.
//
// Only the first sheet is read. Its first non-empty row is the header; the
// columns used are name, full_address (or address), subtypes, rating, reviews,
// range, about and category.
type XLSXParser struct{}

// Parse parses workbook content into restaurant records.
//
// Parameters:
//   - content: The raw bytes of the .xlsx file
//
// Returns:
//   - []cards.Restaurant: One record per named row
//   - error: When the workbook cannot be opened, has no sheets or no name column
func (p *XLSXParser) Parse(content []byte) ([]cards.Restaurant, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from xlsx: %w", err)
	}
	return recordsFromTable(rows)
}
