// Package dom provides a small mutable document model over golang.org/x/net/html.
//
// It covers the subset of DOM behavior the filter controller relies on: lookup by
// id, class and input name, text content, attributes, form control state, inline
// display toggling and moving elements between parents.
package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML page.
//
// Fields:
//   - root: The document node returned by html.Parse
type Document struct {
	root *html.Node
}

// Parse reads an HTML page into a Document.
//
// Parameters:
//   - r: Reader positioned at the start of the HTML content
//
// Returns:
//   - *Document: The parsed document
//   - error: When the content cannot be tokenized, returns the parser error
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString is a convenience wrapper around Parse for in-memory markup.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// NewDocument wraps an existing node tree.
func NewDocument(root *html.Node) *Document {
	return &Document{root: root}
}

// Root returns the underlying document node.
func (d *Document) Root() *Element {
	return wrap(d.root)
}

// Render writes the document back out as HTML.
//
// Parameters:
//   - w: Destination writer
//
// Returns:
//   - error: When rendering fails, returns the underlying error
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document to a string, returning "" on failure.
func (d *Document) String() string {
	var sb strings.Builder
	if err := d.Render(&sb); err != nil {
		return ""
	}
	return sb.String()
}

// ByID returns the first element with the given id, or nil.
func (d *Document) ByID(id string) *Element {
	return d.Root().ByID(id)
}

// ByClass returns all elements carrying every given class, in document order.
func (d *Document) ByClass(classes ...string) []*Element {
	return d.Root().ByClass(classes...)
}

// FirstByClass returns the first element carrying every given class, or nil.
func (d *Document) FirstByClass(classes ...string) *Element {
	return d.Root().FirstByClass(classes...)
}

// InputsByName returns all <input> elements whose name attribute equals name.
func (d *Document) InputsByName(name string) []*Element {
	var out []*Element
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Input && getAttr(n, "name") == name {
			out = append(out, wrap(n))
		}
		return true
	})
	return out
}

// walk visits n and its descendants depth-first in document order.
// Returning false from fn stops the walk.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
