package formats

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ajxudir/qcfilter/pkg/cards"
	"github.com/ajxudir/qcfilter/pkg/config"
	"github.com/ajxudir/qcfilter/pkg/dom"
)

// Labels for the generated controls.
var (
	priceLabels  = []string{"₱", "₱₱", "₱₱₱", "₱₱₱₱"}
	seniorLabels = map[string]string{
		"wheelchair": "Wheelchair accessible",
		"parking":    "Parking available",
		"quiet":      "Quiet atmosphere",
		"seating":    "Comfortable seating",
	}
	seniorOrder = []string{"wheelchair", "parking", "quiet", "seating"}
	sortOptions = [][2]string{
		{"rating", "Highest rated"},
		{"reviews", "Most reviewed"},
		{"price-low", "Price: low to high"},
		{"price-high", "Price: high to low"},
	}
)

// BuildDocument renders restaurant records as a listing page.
//
// The page has a filter form with the price (1-4), features (every feature in
// the data, sorted) and senior checkbox groups, the search input, the sort
// select, the count element and the list container holding one card per
// record. Class names, ids and group names come from cfg so the controller
// finds everything it looks for.
//
// Parameters:
//   - records: The restaurants in the order their cards should appear
//   - cfg: Selector and group configuration
//
// Returns:
//   - *dom.Document: The generated page
func BuildDocument(records []cards.Restaurant, cfg *config.Config) *dom.Document {
	sel := cfg.Selectors

	doc := &html.Node{Type: html.DocumentNode}
	root := elem(atom.Html, "lang", "en")
	head := elem(atom.Head)
	head.AppendChild(elem(atom.Meta, "charset", "utf-8"))
	head.AppendChild(withText(elem(atom.Title), "Restaurants"))
	body := elem(atom.Body)
	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)

	form := elem(atom.Form, "id", "filters", "class", "filters")
	body.AppendChild(form)

	prices := make([][2]string, 0, len(priceLabels))
	for i, label := range priceLabels {
		prices = append(prices, [2]string{strconv.Itoa(i + 1), label})
	}
	form.AppendChild(checkboxGroup("Price", cfg.Groups.Price.Name, prices))

	var features [][2]string
	for _, f := range collectFeatures(records) {
		features = append(features, [2]string{f, f})
	}
	form.AppendChild(checkboxGroup("Features", cfg.Groups.Features.Name, features))

	senior := make([][2]string, 0, len(seniorOrder))
	for _, tag := range seniorOrder {
		senior = append(senior, [2]string{tag, seniorLabels[tag]})
	}
	form.AppendChild(checkboxGroup("Senior friendly", cfg.Groups.Senior.Name, senior))

	if sel.Search != "" {
		form.AppendChild(elem(atom.Input, "type", "search", "id", sel.Search, "placeholder", "Search restaurants"))
	}
	if sel.Sort != "" {
		sortSel := elem(atom.Select, "id", sel.Sort)
		for _, opt := range sortOptions {
			sortSel.AppendChild(withText(elem(atom.Option, "value", opt[0]), opt[1]))
		}
		form.AppendChild(sortSel)
	}

	if sel.Count != "" {
		body.AppendChild(withText(elem(atom.P, "id", sel.Count), strconv.Itoa(len(records))+" restaurants"))
	}

	list := elem(atom.Div, "class", sel.List)
	body.AppendChild(list)
	for _, r := range records {
		list.AppendChild(cardNode(r, sel))
	}

	return dom.NewDocument(doc)
}

func cardNode(r cards.Restaurant, sel config.Selectors) *html.Node {
	features := r.Features
	if features == nil {
		features = []string{}
	}
	encoded, _ := json.Marshal(features)

	attrs := []string{"class", sel.Card}
	if r.Price > 0 {
		attrs = append(attrs, "data-price", strconv.Itoa(r.Price))
	}
	attrs = append(attrs,
		"data-rating", strconv.FormatFloat(r.Rating, 'f', -1, 64),
		"data-reviews", strconv.Itoa(r.Reviews),
		"data-features", string(encoded),
	)
	if r.Category != "" {
		attrs = append(attrs, "data-category", r.Category)
	}
	card := elem(atom.Div, attrs...)

	card.AppendChild(withText(elem(atom.H3, "class", sel.Name), r.Name))
	card.AppendChild(withText(elem(atom.P, "class", sel.Address), r.Address))
	if r.Cuisine != "" {
		card.AppendChild(withText(elem(atom.Span, "class", sel.Cuisine), r.Cuisine))
	}
	for _, f := range features {
		card.AppendChild(withText(elem(atom.Span, "class", sel.Badge), f))
	}
	if r.Wheelchair {
		card.AppendChild(withText(elem(atom.Span, "class", sel.Badge+" "+sel.Wheelchair), "Wheelchair accessible"))
	}
	return card
}

func checkboxGroup(legend, name string, options [][2]string) *html.Node {
	fs := elem(atom.Fieldset, "class", "filter-group")
	fs.AppendChild(withText(elem(atom.Legend), legend))
	for _, opt := range options {
		label := elem(atom.Label)
		label.AppendChild(elem(atom.Input, "type", "checkbox", "name", name, "value", opt[0]))
		label.AppendChild(&html.Node{Type: html.TextNode, Data: " " + opt[1]})
		fs.AppendChild(label)
	}
	return fs
}

// collectFeatures returns the distinct features across records, sorted.
func collectFeatures(records []cards.Restaurant) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		for _, f := range r.Features {
			f = strings.TrimSpace(f)
			if f == "" || seen[f] {
				continue
			}
			seen[f] = true
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

// elem creates an element; attrs are key, value pairs.
func elem(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
