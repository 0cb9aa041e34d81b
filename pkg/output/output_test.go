package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/qcfilter/pkg/config"
	"github.com/ajxudir/qcfilter/pkg/dom"
	"github.com/ajxudir/qcfilter/pkg/filtering"
	"github.com/ajxudir/qcfilter/pkg/testutil"
)

// filtered loads the fixture listing, checks price 1 and 3, and collects the result.
func filtered(t *testing.T, includeHidden bool) *FilterResult {
	t.Helper()
	doc, err := dom.ParseString(testutil.ListingPage)
	require.NoError(t, err)
	ctrl, err := filtering.NewController(doc, config.Default())
	require.NoError(t, err)
	defer ctrl.Close()

	_, err = ctrl.SetChecked("price", "1", true)
	require.NoError(t, err)
	res, err := ctrl.SetChecked("price", "3", true)
	require.NoError(t, err)
	return NewFilterResult("listing.html", res, ctrl.OrderedCards(), includeHidden, nil)
}

// TestParseFormat tests the behavior of ParseFormat.
//
// It verifies:
//   - Parses valid format strings case-insensitively
//   - Empty input selects the table
//   - Unknown formats are rejected
func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"csv", FormatCSV},
		{"CSV", FormatCSV},
		{"json", FormatJSON},
		{"Xml", FormatXML},
		{"table", FormatTable},
		{"", FormatTable},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseFormat("yaml")
	assert.ErrorContains(t, err, `unknown output format "yaml"`)

	assert.True(t, IsStructuredFormat(FormatJSON))
	assert.False(t, IsStructuredFormat(FormatTable))
}

// TestNewFilterResult tests building the output model.
//
// It verifies:
//   - Summary mirrors the pass result
//   - Only visible cards are listed unless hidden ones are requested
//   - Cuisine facets count visible cards in document order
func TestNewFilterResult(t *testing.T) {
	res := filtered(t, false)
	assert.Equal(t, FilterSummary{
		Source:  "listing.html",
		Total:   3,
		Visible: 2,
		Count:   "2 restaurants",
		Sort:    "rating",
		Filters: "price: 1,3",
	}, res.Summary)

	require.Len(t, res.Restaurants, 2)
	assert.Equal(t, "Pasta Roma", res.Restaurants[0].Name)
	assert.Equal(t, 2, res.Restaurants[0].Position, "hidden Sushi Ko stays first")
	assert.Equal(t, []string{"Dine-in", "Takeout", "Delivery"}, res.Restaurants[0].Features)
	assert.Equal(t, []string{"Italian", "Filipino"}, res.Cuisines.Keys())
	assert.Equal(t, []CuisineCount{{"Italian", 1}, {"Filipino", 1}}, res.CuisineList)

	all := filtered(t, true)
	require.Len(t, all.Restaurants, 3)
	assert.False(t, all.Restaurants[0].Visible)
	assert.True(t, all.Restaurants[0].Wheelchair)
	assert.Equal(t, []string{"Italian", "Filipino"}, all.Cuisines.Keys(), "facets ignore hidden cards")
}

// TestWriteFilterResultJSON tests JSON output.
//
// It verifies:
//   - The document is valid JSON with summary, facets and restaurants
//   - Facet keys keep document order
func TestWriteFilterResultJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFilterResult(&buf, FormatJSON, filtered(t, false)))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	summary := decoded["summary"].(map[string]interface{})
	assert.Equal(t, "2 restaurants", summary["count"])
	assert.Len(t, decoded["restaurants"], 2)

	italian := strings.Index(buf.String(), `"Italian"`)
	filipino := strings.Index(buf.String(), `"Filipino"`)
	assert.True(t, italian >= 0 && italian < filipino)
	assert.NotContains(t, buf.String(), "warnings")
}

// TestWriteFilterResultXML tests XML output.
//
// It verifies:
//   - The XML header is written
//   - Facets are rendered as cuisine elements
//   - The document round-trips through encoding/xml
func TestWriteFilterResultXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFilterResult(&buf, FormatXML, filtered(t, false)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, xml.Header))
	assert.Contains(t, out, `<cuisine name="Italian">1</cuisine>`)
	assert.Contains(t, out, `<restaurant position="2" visible="true">`)

	var decoded FilterResult
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.Summary.Visible)
	assert.Len(t, decoded.Restaurants, 2)
}

// TestWriteFilterResultCSV tests CSV output.
//
// It verifies:
//   - A header row and one row per listed card are written
//   - Features are joined with semicolons
func TestWriteFilterResultCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFilterResult(&buf, FormatCSV, filtered(t, false)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "POSITION,NAME,CUISINE,PRICE,RATING,REVIEWS,FEATURES,WHEELCHAIR,VISIBLE,ADDRESS", lines[0])
	assert.Equal(t, "2,Pasta Roma,Italian,3,4.5,300,Dine-in;Takeout;Delivery,false,true,Katipunan", lines[1])
}

// TestWriteFilterResultTable tests the terminal table.
//
// It verifies:
//   - Columns are aligned and prices render as peso signs
//   - The STATUS column appears only when hidden cards are listed
//   - The count line names the active filters
//   - An empty result prints only the count line
func TestWriteFilterResultTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFilterResult(&buf, FormatTable, filtered(t, false)))
	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "₱₱₱")
	assert.NotContains(t, out, "STATUS")
	assert.True(t, strings.HasSuffix(out, "2 restaurants (price: 1,3)\n"))

	buf.Reset()
	require.NoError(t, WriteFilterResult(&buf, FormatTable, filtered(t, true)))
	assert.Contains(t, buf.String(), "STATUS")
	assert.Contains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "Delivery, wheelchair")

	buf.Reset()
	empty := &FilterResult{Summary: FilterSummary{Count: "0 restaurants"}}
	require.NoError(t, WriteFilterResult(&buf, FormatTable, empty))
	assert.Equal(t, "0 restaurants\n", buf.String())

	assert.Error(t, WriteFilterResult(&buf, Format("yaml"), empty))
}

// TestTable tests column sizing and rendering.
//
// It verifies:
//   - Widths grow to the widest value measured in terminal cells
//   - Numeric columns are right-aligned
//   - Hidden columns are skipped and trailing padding is trimmed
func TestTable(t *testing.T) {
	table := NewTable().
		AddColumn("NAME").
		AddConditionalColumn("SECRET", false).
		AddNumericColumn("REVIEWS").
		AddColumn("PRICE")
	table.AddRow("Sushi Ko", "x", "10", "₱₱₱₱₱₱")
	table.AddRow("Lomi", "hidden", "300")
	assert.Equal(t, 2, table.Len())

	var buf bytes.Buffer
	require.NoError(t, table.Render(&buf))
	assert.Equal(t, strings.Join([]string{
		"NAME      REVIEWS  PRICE",
		"--------  -------  ------",
		"Sushi Ko       10  ₱₱₱₱₱₱",
		"Lomi          300",
		"",
	}, "\n"), buf.String())

	buf.Reset()
	narrow := NewTable().WithSeparator(" | ").AddColumn("A").AddColumn("B")
	narrow.AddRow("1", "2", "dropped")
	require.NoError(t, narrow.Render(&buf))
	assert.Equal(t, "A | B\n- | -\n1 | 2\n", buf.String())
}
