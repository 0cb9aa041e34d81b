package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/qcfilter/pkg/utils"
)

type column struct {
	header string
	width  int
	hidden bool
	right  bool
}

// Table buffers rows and renders them in aligned columns. Widths are
// measured in terminal cells, so peso signs and CJK names line up.
//
// Every row supplies one value per column, hidden columns included, so
// callers can build rows without checking which columns are shown.
type Table struct {
	columns   []column
	rows      [][]string
	separator string
}

// NewTable creates an empty table with a two-space separator.
func NewTable() *Table {
	return &Table{separator: "  "}
}

// WithSeparator sets a custom column separator and returns the table.
func (t *Table) WithSeparator(sep string) *Table {
	t.separator = sep
	return t
}

// AddColumn adds a left-aligned column.
func (t *Table) AddColumn(header string) *Table {
	return t.add(column{header: header})
}

// AddNumericColumn adds a right-aligned column.
func (t *Table) AddNumericColumn(header string) *Table {
	return t.add(column{header: header, right: true})
}

// AddConditionalColumn adds a left-aligned column that is only rendered
// when visible is true.
func (t *Table) AddConditionalColumn(header string, visible bool) *Table {
	return t.add(column{header: header, hidden: !visible})
}

func (t *Table) add(c column) *Table {
	c.width = utils.DisplayWidth(c.header)
	t.columns = append(t.columns, c)
	return t
}

// AddRow buffers a row and widens columns to fit it. Extra values are
// dropped; missing trailing values render empty.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	for i, val := range row {
		if w := utils.DisplayWidth(val); w > t.columns[i].width {
			t.columns[i].width = w
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of buffered rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the header, a dashed rule and every buffered row to w.
// Trailing padding is trimmed from each line.
func (t *Table) Render(w io.Writer) error {
	headers := make([]string, len(t.columns))
	rule := make([]string, len(t.columns))
	for i, c := range t.columns {
		headers[i] = c.header
		rule[i] = strings.Repeat("-", c.width)
	}

	lines := append([][]string{headers, rule}, t.rows...)
	for _, values := range lines {
		if _, err := fmt.Fprintln(w, t.line(values)); err != nil {
			return err
		}
	}
	return nil
}

func (t *Table) line(values []string) string {
	parts := make([]string, 0, len(t.columns))
	for i, c := range t.columns {
		if c.hidden {
			continue
		}
		if c.right {
			parts = append(parts, utils.AlignRight(values[i], c.width))
		} else {
			parts = append(parts, utils.ToWidth(values[i], c.width))
		}
	}
	return strings.TrimRight(strings.Join(parts, t.separator), " ")
}
