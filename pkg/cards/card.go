// Package cards provides a typed view of restaurant card elements.
//
// A Card reads its data-* attributes and descendant text on demand, so the
// values always reflect the current document. Numeric attributes are parsed
// permissively: the longest numeric prefix is used and anything unparsable is 0.
package cards

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ajxudir/qcfilter/pkg/config"
	"github.com/ajxudir/qcfilter/pkg/dom"
)

// Card is a restaurant card element in a listing document.
type Card struct {
	el  *dom.Element
	sel config.Selectors
}

// New wraps a card element using the given selectors for its descendants.
func New(el *dom.Element, sel config.Selectors) *Card {
	return &Card{el: el, sel: sel}
}

// FromDocument returns every card in document order.
//
// Parameters:
//   - doc: The listing document
//   - sel: Selectors naming the card class and its descendants
//
// Returns:
//   - []*Card: All elements carrying the card class
func FromDocument(doc *dom.Document, sel config.Selectors) []*Card {
	els := doc.ByClass(sel.Card)
	out := make([]*Card, 0, len(els))
	for _, el := range els {
		out = append(out, New(el, sel))
	}
	return out
}

// Element returns the underlying element.
func (c *Card) Element() *dom.Element {
	return c.el
}

// Price returns the price tier from data-price, 0 when missing or malformed.
func (c *Card) Price() int {
	v, _ := c.el.Dataset("price")
	return ParseInt(v)
}

// Rating returns data-rating, 0 when missing or malformed.
func (c *Card) Rating() float64 {
	v, _ := c.el.Dataset("rating")
	return ParseFloat(v)
}

// Reviews returns data-reviews, 0 when missing or malformed.
func (c *Card) Reviews() int {
	v, _ := c.el.Dataset("reviews")
	return ParseInt(v)
}

// RawFeatures returns the undecoded data-features attribute.
func (c *Card) RawFeatures() string {
	v, _ := c.el.Dataset("features")
	return v
}

// Features decodes the JSON list in data-features. A missing or empty
// attribute is an empty list; anything else that is not a JSON string array
// is returned as an error.
func (c *Card) Features() ([]string, error) {
	raw := strings.TrimSpace(c.RawFeatures())
	if raw == "" {
		return []string{}, nil
	}
	var features []string
	if err := json.Unmarshal([]byte(raw), &features); err != nil {
		return nil, fmt.Errorf("invalid data-features %q: %w", raw, err)
	}
	if features == nil {
		features = []string{}
	}
	return features, nil
}

// Name returns the text of the name descendant, "" when absent.
func (c *Card) Name() string {
	return c.descendantText(c.sel.Name)
}

// Address returns the text of the address descendant, "" when absent.
func (c *Card) Address() string {
	return c.descendantText(c.sel.Address)
}

// Cuisine returns the text of the cuisine descendant, "" when absent.
func (c *Card) Cuisine() string {
	return c.descendantText(c.sel.Cuisine)
}

// Wheelchair reports whether the card contains the wheelchair badge.
func (c *Card) Wheelchair() bool {
	classes := []string{c.sel.Badge, c.sel.Wheelchair}
	if c.sel.Badge == "" {
		classes = classes[1:]
	}
	for _, el := range c.el.ByClass(classes...) {
		if el != c.el {
			return true
		}
	}
	return false
}

// Visible reports whether the card is not hidden by an inline display: none.
func (c *Card) Visible() bool {
	return !c.el.Hidden()
}

// SetVisible shows or hides the card.
func (c *Card) SetVisible(visible bool) {
	c.el.SetHidden(!visible)
}

// Label returns a name for messages, falling back to the element id.
func (c *Card) Label() string {
	if name := strings.TrimSpace(c.Name()); name != "" {
		return name
	}
	if id, ok := c.el.LookupAttr("id"); ok {
		return "#" + id
	}
	return "(unnamed card)"
}

func (c *Card) descendantText(class string) string {
	if class == "" {
		return ""
	}
	for _, el := range c.el.ByClass(class) {
		if el != c.el {
			return el.Text()
		}
	}
	return ""
}
