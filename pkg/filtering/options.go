package filtering

import (
	"math"
	"strconv"
	"strings"

	"github.com/ajxudir/qcfilter/pkg/cards"
	"github.com/ajxudir/qcfilter/pkg/config"
	"github.com/ajxudir/qcfilter/pkg/dom"
)

// OptionKind tags the value held by an Option.
type OptionKind int

const (
	// TextOption holds a string tag.
	TextOption OptionKind = iota
	// NumericOption holds an integer such as a price tier.
	NumericOption
)

// Option is the value of a checked checkbox, decided at parse time from the
// group's declared kind.
//
// Fields:
//   - Kind: Which of Num or Text is meaningful
//   - Num: The integer value of a NumericOption
//   - Text: The raw string value of a TextOption
type Option struct {
	Kind OptionKind
	Num  int
	Text string
}

// Numeric returns a NumericOption.
func Numeric(n int) Option {
	return Option{Kind: NumericOption, Num: n}
}

// Text returns a TextOption.
func Text(s string) Option {
	return Option{Kind: TextOption, Text: s}
}

// ParseOption converts a raw checkbox value for a group of the given kind.
//
// For numeric groups a finite decimal value becomes a NumericOption holding its
// leading integer ("2" and "2.5" are both 2); anything else, including "",
// stays a TextOption, which never equals a card's price. Text groups always
// produce a TextOption.
//
// Parameters:
//   - kind: config.KindNumeric or config.KindText
//   - raw: The checkbox value attribute
//
// Returns:
//   - Option: The tagged value
func ParseOption(kind, raw string) Option {
	if kind == config.KindNumeric {
		trimmed := strings.TrimSpace(raw)
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return Numeric(cards.ParseInt(trimmed))
		}
	}
	return Text(raw)
}

// String renders the option value.
func (o Option) String() string {
	if o.Kind == NumericOption {
		return strconv.Itoa(o.Num)
	}
	return o.Text
}

// MatchesInt reports whether o is a NumericOption equal to n.
func (o Option) MatchesInt(n int) bool {
	return o.Kind == NumericOption && o.Num == n
}

// MatchesText reports whether o is a TextOption equal to s.
func (o Option) MatchesText(s string) bool {
	return o.Kind == TextOption && o.Text == s
}

// GetCheckedValues returns the values of the checked boxes in a group, in
// document order.
//
// Parameters:
//   - boxes: The checkbox elements of one group
//   - kind: The group's declared kind
//
// Returns:
//   - []Option: One option per checked box
func GetCheckedValues(boxes []*dom.Element, kind string) []Option {
	out := make([]Option, 0, len(boxes))
	for _, box := range boxes {
		if !box.Checked() {
			continue
		}
		out = append(out, ParseOption(kind, box.Value()))
	}
	return out
}

func containsText(opts []Option, s string) bool {
	for _, o := range opts {
		if o.MatchesText(s) {
			return true
		}
	}
	return false
}

func optionStrings(opts []Option) []string {
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.String())
	}
	return out
}
