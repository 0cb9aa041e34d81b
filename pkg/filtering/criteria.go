package filtering

import "strings"

// SortKey is the value of the sort select.
type SortKey string

const (
	// SortRating orders by rating, highest first.
	SortRating SortKey = "rating"
	// SortReviews orders by review count, highest first.
	SortReviews SortKey = "reviews"
	// SortPriceLow orders by price tier, cheapest first.
	SortPriceLow SortKey = "price-low"
	// SortPriceHigh orders by price tier, most expensive first.
	SortPriceHigh SortKey = "price-high"
)

// Known reports whether k selects a comparator. Unknown keys leave order unchanged.
func (k SortKey) Known() bool {
	switch k {
	case SortRating, SortReviews, SortPriceLow, SortPriceHigh:
		return true
	}
	return false
}

// Senior-friendliness tags.
const (
	SeniorWheelchair = "wheelchair"
	SeniorParking    = "parking"
	SeniorQuiet      = "quiet"
	SeniorSeating    = "seating"
)

// SeniorTags is the fixed senior-friendliness vocabulary.
var SeniorTags = []string{SeniorWheelchair, SeniorParking, SeniorQuiet, SeniorSeating}

// Criteria is a snapshot of the filter controls.
//
// Fields:
//   - Prices: Checked price options
//   - Features: Checked feature options
//   - Senior: Checked senior-friendliness options
//   - Search: Lower-cased search text, "" when the input is absent or empty
//   - Sort: Selected sort key
type Criteria struct {
	Prices   []Option
	Features []Option
	Senior   []Option
	Search   string
	Sort     SortKey
}

// IsEmpty reports whether no filter is active. The sort key does not count.
func (c Criteria) IsEmpty() bool {
	return len(c.Prices) == 0 && len(c.Features) == 0 && len(c.Senior) == 0 && c.Search == ""
}

// Describe renders the active filters for display, e.g. "price: 1,2; search: sushi".
func (c Criteria) Describe() string {
	var parts []string
	if len(c.Prices) > 0 {
		parts = append(parts, "price: "+strings.Join(optionStrings(c.Prices), ","))
	}
	if len(c.Features) > 0 {
		parts = append(parts, "features: "+strings.Join(optionStrings(c.Features), ","))
	}
	if len(c.Senior) > 0 {
		parts = append(parts, "senior: "+strings.Join(optionStrings(c.Senior), ","))
	}
	if c.Search != "" {
		parts = append(parts, "search: "+c.Search)
	}
	return strings.Join(parts, "; ")
}
