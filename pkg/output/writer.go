package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ajxudir/qcfilter/pkg/constants"
	"github.com/ajxudir/qcfilter/pkg/utils"
)

// maxNameWidth caps the NAME column of the table in terminal cells.
const maxNameWidth = 40

// WriteFilterResult writes filter results in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format; FormatTable renders the terminal table
//   - result: Filter result data to write
//
// Returns:
//   - error: When format is unsupported or the write fails
func WriteFilterResult(w io.Writer, format Format, result *FilterResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		return writeFilterCSV(formatter, result)
	case FormatTable:
		return writeFilterTable(w, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeFilterCSV writes one row per listed card.
func writeFilterCSV(f *Formatter, result *FilterResult) error {
	headers := []string{"POSITION", "NAME", "CUISINE", "PRICE", "RATING", "REVIEWS", "FEATURES", "WHEELCHAIR", "VISIBLE", "ADDRESS"}
	rows := make([][]string, 0, len(result.Restaurants))
	for _, r := range result.Restaurants {
		rows = append(rows, []string{
			strconv.Itoa(r.Position),
			r.Name,
			r.Cuisine,
			strconv.Itoa(r.Price),
			formatRating(r.Rating),
			strconv.Itoa(r.Reviews),
			strings.Join(r.Features, ";"),
			strconv.FormatBool(r.Wheelchair),
			strconv.FormatBool(r.Visible),
			r.Address,
		})
	}
	return f.WriteCSV(headers, rows)
}

// writeFilterTable prints the listed cards as a table followed by the count
// line. The STATUS column only appears when hidden cards are listed.
func writeFilterTable(w io.Writer, result *FilterResult) error {
	showStatus := false
	for _, r := range result.Restaurants {
		if !r.Visible {
			showStatus = true
			break
		}
	}

	table := NewTable().
		AddNumericColumn("#").
		AddColumn("NAME").
		AddColumn("CUISINE").
		AddColumn("PRICE").
		AddNumericColumn("RATING").
		AddNumericColumn("REVIEWS").
		AddColumn("FEATURES").
		AddConditionalColumn("STATUS", showStatus)

	for _, r := range result.Restaurants {
		features := strings.Join(r.Features, ", ")
		if r.Wheelchair {
			features = strings.TrimPrefix(features+", wheelchair", ", ")
		}
		status := constants.StatusShown
		if !r.Visible {
			status = constants.StatusHidden
		}
		table.AddRow(
			strconv.Itoa(r.Position),
			utils.Truncate(r.Name, maxNameWidth),
			r.Cuisine,
			formatPrice(r.Price),
			formatRating(r.Rating),
			strconv.Itoa(r.Reviews),
			features,
			status,
		)
	}

	if table.Len() > 0 {
		if err := table.Render(w); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(w)
	}

	line := result.Summary.Count
	if result.Summary.Filters != "" {
		line += " (" + result.Summary.Filters + ")"
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

// formatPrice renders a tier as peso signs, "-" when unknown.
func formatPrice(tier int) string {
	if tier <= 0 {
		return constants.PlaceholderNone
	}
	return strings.Repeat("₱", tier)
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
