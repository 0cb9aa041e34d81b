package formats

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/ajxudir/qcfilter/pkg/cards"
	"github.com/ajxudir/qcfilter/pkg/verbose"
)

// Spreadsheet columns read from listing exports.
const (
	colName        = "name"
	colFullAddress = "full_address"
	colAddress     = "address"
	colSubtypes    = "subtypes"
	colRating      = "rating"
	colReviews     = "reviews"
	colRange       = "range"
	colAbout       = "about"
	colCategory    = "category"
)

// Feature tags read from the "Service options" section of the about column.
var serviceOptions = []string{"Delivery", "Takeout", "Dine-in"}

// recordsFromTable maps spreadsheet rows to restaurants.
//
// The first non-empty row is the header; column names are matched
// case-insensitively. Rows without a name are skipped.
//
// Parameters:
//   - rows: All rows of the sheet, header included
//
// Returns:
//   - []cards.Restaurant: One record per named row
//   - error: When there is no header or no name column
func recordsFromTable(rows [][]string) ([]cards.Restaurant, error) {
	headerIdx := -1
	for i, row := range rows {
		if !isBlankRow(row) {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, errors.New("no rows found in file")
	}

	columns := make(map[string]int)
	for i, h := range rows[headerIdx] {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, seen := columns[key]; !seen && key != "" {
			columns[key] = i
		}
	}
	if _, ok := columns[colName]; !ok {
		return nil, errors.New("missing required column \"name\"")
	}

	cell := func(row []string, col string) string {
		i, ok := columns[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []cards.Restaurant
	for _, row := range rows[headerIdx+1:] {
		name := cell(row, colName)
		if name == "" {
			continue
		}
		address := cell(row, colFullAddress)
		if address == "" {
			address = cell(row, colAddress)
		}
		features, wheelchair := parseAbout(cell(row, colAbout))
		out = append(out, cards.Restaurant{
			Name:       name,
			Address:    address,
			Cuisine:    cuisineFromSubtypes(cell(row, colSubtypes)),
			Category:   cell(row, colCategory),
			Price:      priceFromRange(cell(row, colRange)),
			Rating:     cards.ParseFloat(cell(row, colRating)),
			Reviews:    cards.ParseInt(cell(row, colReviews)),
			Features:   features,
			Wheelchair: wheelchair,
		})
	}
	return out, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// priceFromRange counts the peso signs in a range such as "₱₱" or "₱100–200".
func priceFromRange(s string) int {
	return strings.Count(s, "₱")
}

// parseSubtypes reads a JSON list or comma-separated subtypes, dropping the
// generic "restaurant" entry.
func parseSubtypes(s string) []string {
	if s == "" {
		return nil
	}
	var raw []string
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		raw = strings.Split(s, ",")
	}
	var out []string
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" || strings.EqualFold(v, "restaurant") {
			continue
		}
		out = append(out, v)
	}
	return out
}

// cuisineFromSubtypes returns the first specific subtype with any trailing
// " Restaurant" removed, e.g. "Japanese Restaurant" becomes "Japanese".
func cuisineFromSubtypes(s string) string {
	subtypes := parseSubtypes(s)
	if len(subtypes) == 0 {
		return ""
	}
	cuisine := strings.TrimSpace(strings.ReplaceAll(subtypes[0], " Restaurant", ""))
	if strings.EqualFold(cuisine, "restaurant") {
		return ""
	}
	return cuisine
}

// parseAbout extracts service features and wheelchair accessibility from the
// about column.
//
// The column is normally a JSON object of sections ("Service options",
// "Accessibility") mapping attribute names to booleans. When it is not JSON,
// service features are guessed from keywords and accessibility is unknown.
//
// Parameters:
//   - about: The raw about cell
//
// Returns:
//   - []string: Features in Delivery, Takeout, Dine-in order
//   - bool: Whether both the entrance and the seating are wheelchair accessible
func parseAbout(about string) ([]string, bool) {
	if about == "" {
		return []string{}, false
	}

	var sections map[string]map[string]any
	if err := json.Unmarshal([]byte(about), &sections); err != nil {
		verbose.Printf("About column is not JSON, matching keywords: %v", err)
		return featuresFromKeywords(about), false
	}

	features := []string{}
	service := sections["Service options"]
	for _, opt := range serviceOptions {
		if truthy(service[opt]) {
			features = append(features, opt)
		}
	}

	access := sections["Accessibility"]
	wheelchair := truthy(access["Wheelchair accessible entrance"]) &&
		truthy(access["Wheelchair accessible seating"])

	return features, wheelchair
}

func featuresFromKeywords(about string) []string {
	lower := strings.ToLower(about)
	features := []string{}
	if strings.Contains(lower, "delivery") {
		features = append(features, "Delivery")
	}
	if strings.Contains(lower, "takeout") || strings.Contains(lower, "take out") || strings.Contains(lower, "take-out") {
		features = append(features, "Takeout")
	}
	if strings.Contains(lower, "dine in") || strings.Contains(lower, "dine-in") || strings.Contains(lower, "dining") {
		features = append(features, "Dine-in")
	}
	return features
}

func truthy(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
