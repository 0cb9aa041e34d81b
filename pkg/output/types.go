package output

import (
	"encoding/xml"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/ajxudir/qcfilter/pkg/cards"
	"github.com/ajxudir/qcfilter/pkg/filtering"
)

// FilterResult represents the output data for the filter command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Counts and the criteria the pass ran with
//   - Cuisines: Visible cards per cuisine in first-seen order (JSON)
//   - CuisineList: The same facets as a list (XML)
//   - Restaurants: Cards in document order
//   - Warnings: Warnings raised while filtering (omitted if empty)
type FilterResult struct {
	XMLName     xml.Name               `json:"-" xml:"filterResult"`
	Summary     FilterSummary          `json:"summary" xml:"summary"`
	Cuisines    *orderedmap.OrderedMap `json:"cuisines" xml:"-"`
	CuisineList []CuisineCount         `json:"-" xml:"cuisines>cuisine"`
	Restaurants []RestaurantEntry      `json:"restaurants" xml:"restaurants>restaurant"`
	Warnings    []string               `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// FilterSummary holds summary statistics for a filter pass.
//
// Fields:
//   - Source: The listing file
//   - Total: Number of cards on the page
//   - Visible: Number of cards left visible
//   - Count: The text written to the count element
//   - Sort: The sort key in effect
//   - Filters: Active filters, e.g. "price: 1,2; search: sushi" (omitted if none)
type FilterSummary struct {
	Source  string `json:"source" xml:"source"`
	Total   int    `json:"total" xml:"total"`
	Visible int    `json:"visible" xml:"visible"`
	Count   string `json:"count" xml:"count"`
	Sort    string `json:"sort" xml:"sort"`
	Filters string `json:"filters,omitempty" xml:"filters,omitempty"`
}

// CuisineCount is one cuisine facet.
type CuisineCount struct {
	Name  string `json:"name" xml:"name,attr"`
	Count int    `json:"count" xml:",chardata"`
}

// RestaurantEntry represents one card in the output.
//
// Fields:
//   - Position: 1-based position in document order
//   - Name, Address, Cuisine: Card text
//   - Price, Rating, Reviews: Card data attributes
//   - Features: Decoded feature list; empty when it cannot be read
//   - Wheelchair: Whether the card shows the wheelchair badge
//   - Visible: Whether the card passed the filters
type RestaurantEntry struct {
	Position   int      `json:"position" xml:"position,attr"`
	Name       string   `json:"name" xml:"name"`
	Address    string   `json:"address" xml:"address"`
	Cuisine    string   `json:"cuisine" xml:"cuisine"`
	Price      int      `json:"price" xml:"price"`
	Rating     float64  `json:"rating" xml:"rating"`
	Reviews    int      `json:"reviews" xml:"reviews"`
	Features   []string `json:"features" xml:"features>feature"`
	Wheelchair bool     `json:"wheelchair" xml:"wheelchair"`
	Visible    bool     `json:"visible" xml:"visible,attr"`
}

// NewFilterResult collects a pass result and the cards in document order.
//
// Parameters:
//   - source: The listing file name
//   - res: The controller's pass result
//   - ordered: Cards in current document order
//   - includeHidden: Whether hidden cards are listed too
//   - warnings: Collected warning messages
//
// Returns:
//   - *FilterResult: The output model; facets count visible cards only
func NewFilterResult(source string, res filtering.Result, ordered []*cards.Card, includeHidden bool, warnings []string) *FilterResult {
	out := &FilterResult{
		Summary: FilterSummary{
			Source:  source,
			Total:   res.Total,
			Visible: res.Visible,
			Count:   res.CountText,
			Sort:    string(res.Criteria.Sort),
			Filters: res.Criteria.Describe(),
		},
		Cuisines:    orderedmap.New(),
		Restaurants: []RestaurantEntry{},
		Warnings:    warnings,
	}
	out.Cuisines.SetEscapeHTML(false)

	counts := map[string]int{}
	var order []string
	for i, c := range ordered {
		visible := c.Visible()
		if visible {
			cuisine := strings.TrimSpace(c.Cuisine())
			if cuisine == "" {
				cuisine = "Other"
			}
			if _, seen := counts[cuisine]; !seen {
				order = append(order, cuisine)
			}
			counts[cuisine]++
		}
		if !visible && !includeHidden {
			continue
		}
		features, err := c.Features()
		if err != nil {
			features = []string{}
		}
		out.Restaurants = append(out.Restaurants, RestaurantEntry{
			Position:   i + 1,
			Name:       c.Name(),
			Address:    c.Address(),
			Cuisine:    c.Cuisine(),
			Price:      c.Price(),
			Rating:     c.Rating(),
			Reviews:    c.Reviews(),
			Features:   features,
			Wheelchair: c.Wheelchair(),
			Visible:    visible,
		})
	}

	for _, name := range order {
		out.Cuisines.Set(name, counts[name])
		out.CuisineList = append(out.CuisineList, CuisineCount{Name: name, Count: counts[name]})
	}
	return out
}
