package filtering

import (
	"strings"

	"github.com/ajxudir/qcfilter/pkg/cards"
	"github.com/ajxudir/qcfilter/pkg/verbose"
)

// Filter names reported when a card is rejected.
const (
	FilterPrice    = "price"
	FilterFeatures = "features"
	FilterSenior   = "senior"
	FilterSearch   = "search"
)

// FeatureDecoder returns a card's feature list. The controller's decoder
// applies the malformed-features policy.
type FeatureDecoder func(*cards.Card) ([]string, error)

// MatchesPrice reports whether the card's price tier is among the selected
// options. An empty selection matches every card.
func MatchesPrice(card *cards.Card, prices []Option) bool {
	if len(prices) == 0 {
		return true
	}
	price := card.Price()
	for _, o := range prices {
		if o.MatchesInt(price) {
			return true
		}
	}
	return false
}

// MatchesFeatures reports whether features contains every selected tag.
// An empty selection matches every card.
func MatchesFeatures(features []string, selected []Option) bool {
	for _, o := range selected {
		found := false
		for _, f := range features {
			if o.MatchesText(f) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// MatchesSenior applies the senior-friendliness selection.
//
// Only wheelchair rejects cards. The parking check decodes the features and
// computes whether any of them mentions parking, but the result is never used
// to hide the card. Quiet and seating have no backing data and always pass.
//
// Parameters:
//   - card: The card to test
//   - selected: Checked senior options
//   - decode: Feature decoder used by the parking check
//
// Returns:
//   - bool: false when the card must be hidden
//   - error: A decode error surfaced by the parking check
func MatchesSenior(card *cards.Card, selected []Option, decode FeatureDecoder) (bool, error) {
	if len(selected) == 0 {
		return true, nil
	}

	if containsText(selected, SeniorWheelchair) && !card.Wheelchair() {
		return false, nil
	}

	if containsText(selected, SeniorParking) {
		features, err := decode(card)
		if err != nil {
			return false, err
		}
		hasParking := false
		for _, f := range features {
			lower := strings.ToLower(f)
			if strings.Contains(lower, "parking") || strings.Contains(lower, "park") {
				hasParking = true
				break
			}
		}
		if !hasParking && !strings.Contains(card.RawFeatures(), "Parking") {
			// TODO: reject here once listings carry parking data.
			verbose.Printf("Card %q has no parking feature; kept visible", card.Label())
		}
	}

	return true, nil
}

// MatchesSearch reports whether term is a substring of the card's name,
// address or cuisine, ignoring case. An empty term matches every card.
func MatchesSearch(card *cards.Card, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(card.Name()), term) ||
		strings.Contains(strings.ToLower(card.Address()), term) ||
		strings.Contains(strings.ToLower(card.Cuisine()), term)
}

// Evaluate decides whether a card passes the criteria.
//
// Filters run in the order price, features, senior, search and stop at the
// first rejection, so later checks (and their decode errors) are skipped for
// cards that are already hidden.
//
// Parameters:
//   - card: The card to test
//   - crit: The current criteria
//   - decode: Feature decoder applying the malformed-features policy
//
// Returns:
//   - bool: Whether the card should be shown
//   - string: The filter that rejected it, "" when shown
//   - error: A decode error; the card's visibility must be left untouched
func Evaluate(card *cards.Card, crit Criteria, decode FeatureDecoder) (bool, string, error) {
	if !MatchesPrice(card, crit.Prices) {
		return false, FilterPrice, nil
	}

	if len(crit.Features) > 0 {
		features, err := decode(card)
		if err != nil {
			return false, "", err
		}
		if !MatchesFeatures(features, crit.Features) {
			return false, FilterFeatures, nil
		}
	}

	ok, err := MatchesSenior(card, crit.Senior, decode)
	if err != nil {
		return false, "", err
	}
	if !ok {
		return false, FilterSenior, nil
	}

	if !MatchesSearch(card, crit.Search) {
		return false, FilterSearch, nil
	}

	return true, "", nil
}
