package filtering

import (
	stderrors "errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ajxudir/qcfilter/pkg/cards"
	"github.com/ajxudir/qcfilter/pkg/config"
	"github.com/ajxudir/qcfilter/pkg/debounce"
	"github.com/ajxudir/qcfilter/pkg/dom"
	"github.com/ajxudir/qcfilter/pkg/verbose"
	"github.com/ajxudir/qcfilter/pkg/warnings"
)

var (
	// ErrNoSuchOption is returned when no checkbox in a group has the requested value.
	ErrNoSuchOption = stderrors.New("no such option")
	// ErrMissingControl is returned when an event targets a control the page does not have.
	ErrMissingControl = stderrors.New("control not present")
)

// Result summarizes one recomputation pass.
//
// Fields:
//   - Criteria: The control state the pass ran with
//   - Total: Number of cards evaluated
//   - Visible: Number of cards left visible
//   - CountText: Text written to the count element
//   - Malformed: Labels of cards whose feature list could not be decoded
type Result struct {
	Criteria  Criteria
	Total     int
	Visible   int
	CountText string
	Malformed []string
}

// PassListener is notified after every recomputation, including debounced
// ones. err is non-nil when the pass was aborted. The listener runs while the
// controller is locked and must not call back into it.
type PassListener func(Result, error)

// ControllerOption customizes a Controller.
type ControllerOption func(*Controller)

// WithPassListener registers a listener for completed passes.
func WithPassListener(fn PassListener) ControllerOption {
	return func(c *Controller) {
		c.listener = fn
	}
}

// Controller owns the filter controls and cards of one document.
//
// All passes and control mutations run under mu; the debounced search pass
// fires on a timer goroutine and takes the same lock.
type Controller struct {
	mu  sync.Mutex
	doc *dom.Document
	cfg *config.Config

	priceBoxes   []*dom.Element
	featureBoxes []*dom.Element
	seniorBoxes  []*dom.Element
	search       *dom.Element
	sort         *dom.Element
	count        *dom.Element
	list         *dom.Element
	cards        []*cards.Card

	searchDebounce *debounce.Debouncer
	listener       PassListener
	last           Result
}

// NewController collects the controls and cards of doc and runs the initial pass.
//
// Parameters:
//   - doc: The listing document; the controller mutates it in place
//   - cfg: Selectors, group kinds, debounce window and policies
//   - opts: Optional listeners
//
// Returns:
//   - *Controller: The controller; call Close when done
//   - error: When the initial pass is aborted by a malformed feature list
//     under the "error" policy. The controller is still returned.
func NewController(doc *dom.Document, cfg *config.Config, opts ...ControllerOption) (*Controller, error) {
	sel := cfg.Selectors
	c := &Controller{
		doc:          doc,
		cfg:          cfg,
		priceBoxes:   doc.InputsByName(cfg.Groups.Price.Name),
		featureBoxes: doc.InputsByName(cfg.Groups.Features.Name),
		seniorBoxes:  doc.InputsByName(cfg.Groups.Senior.Name),
		search:       byID(doc, sel.Search),
		sort:         byID(doc, sel.Sort),
		count:        byID(doc, sel.Count),
		list:         byClass(doc, sel.List),
		cards:        cards.FromDocument(doc, sel),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.searchDebounce = debounce.New(cfg.DebounceWait(), c.debouncedPass)

	verbose.Infof("Controller ready: %d cards, %d/%d/%d checkboxes, search=%t sort=%t list=%t count=%t",
		len(c.cards), len(c.priceBoxes), len(c.featureBoxes), len(c.seniorBoxes),
		c.search != nil, c.sort != nil, c.list != nil, c.count != nil)

	_, err := c.ApplyFilters()
	return c, err
}

// Close cancels a pending debounced search pass.
func (c *Controller) Close() {
	c.searchDebounce.Stop()
}

// Document returns the controlled document.
func (c *Controller) Document() *dom.Document {
	return c.doc
}

// Cards returns the cards in the order they were collected at startup.
func (c *Controller) Cards() []*cards.Card {
	out := make([]*cards.Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// OrderedCards returns the cards in current document order.
func (c *Controller) OrderedCards() []*cards.Card {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cards.FromDocument(c.doc, c.cfg.Selectors)
}

// LastResult returns the result of the most recent completed pass.
func (c *Controller) LastResult() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// HasSearch reports whether the page has a search input.
func (c *Controller) HasSearch() bool {
	return c.search != nil
}

// HasSort reports whether the page has a sort select.
func (c *Controller) HasSort() bool {
	return c.sort != nil
}

// Options returns the values offered by a checkbox group, in document order.
func (c *Controller) Options(group string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	boxes, _ := c.boxes(group)
	out := make([]string, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, b.Value())
	}
	return out
}

// SetChecked checks or unchecks the box with the given value and, like a
// change event, recomputes immediately.
//
// Parameters:
//   - group: Input name of the group (price, features or senior by default)
//   - value: The checkbox value attribute
//   - checked: New checked state
//
// Returns:
//   - Result: The pass result
//   - error: ErrMissingControl or ErrNoSuchOption when the box does not exist;
//     otherwise any pass error
func (c *Controller) SetChecked(group, value string, checked bool) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	boxes, ok := c.boxes(group)
	if !ok {
		return c.last, fmt.Errorf("%w: checkbox group %q", ErrMissingControl, group)
	}
	var target *dom.Element
	for _, b := range boxes {
		if b.Value() == value {
			target = b
			break
		}
	}
	if target == nil {
		return c.last, fmt.Errorf("%w: %s=%q", ErrNoSuchOption, group, value)
	}
	target.SetChecked(checked)
	return c.pass()
}

// Input sets the search text, like typing into the search box, and schedules
// a debounced recomputation. Only the last input within the debounce window
// triggers a pass, and that pass reads the search value current at fire time.
//
// Returns:
//   - error: ErrMissingControl when the page has no search input
func (c *Controller) Input(text string) error {
	c.mu.Lock()
	if c.search == nil {
		c.mu.Unlock()
		return fmt.Errorf("%w: search input %q", ErrMissingControl, c.cfg.Selectors.Search)
	}
	c.search.SetValue(text)
	c.mu.Unlock()

	verbose.SearchScheduled(text, c.cfg.DebounceWait())

	c.searchDebounce.Trigger()
	return nil
}

// FlushSearch runs a pending debounced search pass now. It reports whether
// one was pending.
func (c *Controller) FlushSearch() bool {
	return c.searchDebounce.Flush()
}

// SearchPending reports whether a debounced search pass is scheduled.
func (c *Controller) SearchPending() bool {
	return c.searchDebounce.Pending()
}

// SelectSort changes the sort select and recomputes immediately.
//
// Returns:
//   - Result: The pass result
//   - error: ErrMissingControl without a sort select, ErrNoSuchOption for a
//     value the select does not offer; otherwise any pass error
func (c *Controller) SelectSort(value string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sort == nil {
		return c.last, fmt.Errorf("%w: sort select %q", ErrMissingControl, c.cfg.Selectors.Sort)
	}
	if !c.sort.SetValue(value) {
		return c.last, fmt.Errorf("%w: sort=%q", ErrNoSuchOption, value)
	}
	return c.pass()
}

// ApplyFilters recomputes visibility of every card, then sorts and counts.
//
// Returns:
//   - Result: The pass result
//   - error: When a feature list cannot be decoded under the "error" policy.
//     Cards evaluated before the failing one keep their new visibility;
//     sorting and counting are skipped.
func (c *Controller) ApplyFilters() (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pass()
}

// ApplySorting reorders the visible cards inside the list container.
func (c *Controller) ApplySorting(key SortKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applySorting(key)
}

// UpdateResultsCount recounts visible cards and writes the count element.
func (c *Controller) UpdateResultsCount() (int, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updateResultsCount()
}

// CurrentCriteria reads the controls without running a pass.
func (c *Controller) CurrentCriteria() Criteria {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.criteria()
}

func (c *Controller) debouncedPass() {
	c.mu.Lock()
	defer c.mu.Unlock()
	verbose.Infof("Debounced search pass for %q", c.criteria().Search)
	// Errors reach the listener; there is no caller to return them to.
	_, _ = c.pass()
}

// pass runs one recomputation. c.mu must be held.
func (c *Controller) pass() (Result, error) {
	crit := c.criteria()
	res := Result{Criteria: crit, Total: len(c.cards)}
	malformed := map[*cards.Card]bool{}

	decode := func(card *cards.Card) ([]string, error) {
		features, err := card.Features()
		if err == nil {
			return features, nil
		}
		if c.cfg.MalformedFeatures == config.MalformedError {
			return nil, fmt.Errorf("card %s: %w", card.Label(), err)
		}
		if !malformed[card] {
			malformed[card] = true
			res.Malformed = append(res.Malformed, card.Label())
			warnings.Warnf("Card %s has an unreadable feature list; treating it as no features\n", card.Label())
		}
		return []string{}, nil
	}

	for _, card := range c.cards {
		show, rejectedBy, err := Evaluate(card, crit, decode)
		if err != nil {
			c.notify(res, err)
			return res, err
		}
		if !show {
			verbose.CardRejected(card.Label(), rejectedBy)
		}
		card.SetVisible(show)
	}

	c.applySorting(crit.Sort)
	res.Visible, res.CountText = c.updateResultsCount()

	verbose.PassCompleted(res.Visible, res.Total, string(crit.Sort))
	c.last = res
	c.notify(res, nil)
	return res, nil
}

func (c *Controller) notify(res Result, err error) {
	if c.listener != nil {
		c.listener(res, err)
	}
}

func (c *Controller) criteria() Criteria {
	crit := Criteria{
		Prices:   GetCheckedValues(c.priceBoxes, c.cfg.Groups.Price.Kind),
		Features: GetCheckedValues(c.featureBoxes, c.cfg.Groups.Features.Kind),
		Senior:   GetCheckedValues(c.seniorBoxes, c.cfg.Groups.Senior.Kind),
		Sort:     SortKey(c.cfg.DefaultSort),
	}
	if c.search != nil {
		crit.Search = strings.ToLower(c.search.Value())
	}
	if c.sort != nil {
		crit.Sort = SortKey(c.sort.Value())
	}
	return crit
}

func (c *Controller) applySorting(key SortKey) {
	if c.list == nil {
		return
	}
	var visible []*cards.Card
	for _, el := range c.list.ByClass(c.cfg.Selectors.Card) {
		if el == c.list {
			continue
		}
		card := cards.New(el, c.cfg.Selectors)
		if card.Visible() {
			visible = append(visible, card)
		}
	}
	SortCards(visible, key)
	for _, card := range visible {
		c.list.AppendChild(card.Element())
	}
}

func (c *Controller) updateResultsCount() (int, string) {
	n := 0
	for _, card := range c.cards {
		if card.Visible() {
			n++
		}
	}
	text := fmt.Sprintf("%d restaurants", n)
	if c.count != nil {
		c.count.SetText(text)
	}
	return n, text
}

func (c *Controller) boxes(group string) ([]*dom.Element, bool) {
	switch group {
	case c.cfg.Groups.Price.Name:
		return c.priceBoxes, true
	case c.cfg.Groups.Features.Name:
		return c.featureBoxes, true
	case c.cfg.Groups.Senior.Name:
		return c.seniorBoxes, true
	}
	return nil, false
}

func byID(doc *dom.Document, id string) *dom.Element {
	if id == "" {
		return nil
	}
	return doc.ByID(id)
}

func byClass(doc *dom.Document, class string) *dom.Element {
	if class == "" {
		return nil
	}
	return doc.FirstByClass(class)
}
