package filtering

import (
	"sort"

	"github.com/ajxudir/qcfilter/pkg/cards"
)

// Compare orders two cards for a sort key. It returns a negative number when a
// sorts before b, positive when after and 0 when equal. Unknown keys return 0
// for every pair.
func Compare(key SortKey, a, b *cards.Card) float64 {
	switch key {
	case SortRating:
		return b.Rating() - a.Rating()
	case SortReviews:
		return float64(b.Reviews()) - float64(a.Reviews())
	case SortPriceLow:
		return float64(a.Price()) - float64(b.Price())
	case SortPriceHigh:
		return float64(b.Price()) - float64(a.Price())
	default:
		return 0
	}
}

// SortCards stable-sorts cards in place by key.
func SortCards(list []*cards.Card, key SortKey) {
	if !key.Known() {
		return
	}
	sort.SliceStable(list, func(i, j int) bool {
		return Compare(key, list[i], list[j]) < 0
	})
}
