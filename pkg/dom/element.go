package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is an element node of a Document.
//
// Element is a named view of html.Node, so two lookups of the same node
// yield pointers that compare equal.
type Element html.Node

func wrap(n *html.Node) *Element {
	return (*Element)(n)
}

// Node returns the underlying html.Node.
func (e *Element) Node() *html.Node {
	return (*html.Node)(e)
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string {
	return e.Data
}

// LookupAttr returns the value of an attribute and whether it is present.
func (e *Element) LookupAttr(key string) (string, bool) {
	for _, a := range e.Node().Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// AttrOr returns the attribute value or def when the attribute is absent.
func (e *Element) AttrOr(key, def string) string {
	if v, ok := e.LookupAttr(key); ok {
		return v
	}
	return def
}

// SetAttr sets an attribute, replacing an existing value.
func (e *Element) SetAttr(key, val string) {
	n := e.Node()
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes an attribute if present.
func (e *Element) RemoveAttr(key string) {
	n := e.Node()
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != key {
			kept = append(kept, a)
		}
	}
	n.Attr = kept
}

// Dataset returns a data-* attribute, mirroring element.dataset[name].
func (e *Element) Dataset(name string) (string, bool) {
	return e.LookupAttr("data-" + name)
}

// Classes returns the whitespace separated entries of the class attribute.
func (e *Element) Classes() []string {
	v, _ := e.LookupAttr("class")
	return strings.Fields(v)
}

// HasClass reports whether the class attribute contains every given class.
func (e *Element) HasClass(classes ...string) bool {
	have := e.Classes()
	for _, want := range classes {
		found := false
		for _, c := range have {
			if c == want {
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

// ByID returns the first descendant (or e itself) with the given id, or nil.
func (e *Element) ByID(id string) *Element {
	var found *Element
	walk(e.Node(), func(n *html.Node) bool {
		if n.Type == html.ElementNode && getAttr(n, "id") == id {
			found = wrap(n)
			return false
		}
		return true
	})
	return found
}

// ByClass returns e and its descendants carrying every given class, in document order.
func (e *Element) ByClass(classes ...string) []*Element {
	var out []*Element
	walk(e.Node(), func(n *html.Node) bool {
		if n.Type == html.ElementNode && wrap(n).HasClass(classes...) {
			out = append(out, wrap(n))
		}
		return true
	})
	return out
}

// FirstByClass returns the first match of ByClass, or nil.
func (e *Element) FirstByClass(classes ...string) *Element {
	var found *Element
	walk(e.Node(), func(n *html.Node) bool {
		if n.Type == html.ElementNode && wrap(n).HasClass(classes...) {
			found = wrap(n)
			return false
		}
		return true
	})
	return found
}

// Children returns the element children of e.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, wrap(c))
		}
	}
	return out
}

// ParentElement returns the parent element, or nil for the root.
func (e *Element) ParentElement() *Element {
	if e.Node().Parent == nil {
		return nil
	}
	return wrap(e.Node().Parent)
}

// Text returns the concatenated text content of e and its descendants.
func (e *Element) Text() string {
	var sb strings.Builder
	walk(e.Node(), func(n *html.Node) bool {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		return true
	})
	return sb.String()
}

// SetText replaces all children of e with a single text node.
func (e *Element) SetText(text string) {
	n := e.Node()
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// AppendChild moves child to the end of e's children. A child that already
// has a parent is detached first, so no copy is made.
func (e *Element) AppendChild(child *Element) {
	cn := child.Node()
	if cn.Parent != nil {
		cn.Parent.RemoveChild(cn)
	}
	e.Node().AppendChild(cn)
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other.Node(); n != nil; n = n.Parent {
		if n == e.Node() {
			return true
		}
	}
	return false
}

// Hidden reports whether the inline style sets display to none.
func (e *Element) Hidden() bool {
	style, _ := e.LookupAttr("style")
	for _, decl := range splitStyle(style) {
		if decl.prop == "display" {
			return strings.EqualFold(strings.TrimSpace(decl.val), "none")
		}
	}
	return false
}

// SetHidden writes display: none into the inline style, or removes the display
// declaration when hidden is false. Other declarations are preserved.
func (e *Element) SetHidden(hidden bool) {
	style, _ := e.LookupAttr("style")
	decls := splitStyle(style)
	kept := make([]string, 0, len(decls)+1)
	for _, d := range decls {
		if d.prop == "display" {
			continue
		}
		kept = append(kept, d.prop+": "+strings.TrimSpace(d.val))
	}
	if hidden {
		kept = append(kept, "display: none")
	}
	if len(kept) == 0 {
		e.RemoveAttr("style")
		return
	}
	e.SetAttr("style", strings.Join(kept, "; "))
}

// Checked reports whether a checkbox carries the checked attribute.
func (e *Element) Checked() bool {
	_, ok := e.LookupAttr("checked")
	return ok
}

// SetChecked toggles the checked attribute.
func (e *Element) SetChecked(checked bool) {
	if checked {
		e.SetAttr("checked", "")
		return
	}
	e.RemoveAttr("checked")
}

// Value returns the current value of a form control. For <select> it is the
// value of the first selected option, else the first option.
func (e *Element) Value() string {
	if e.DataAtom != atom.Select {
		v, _ := e.LookupAttr("value")
		return v
	}
	opts := e.options()
	if len(opts) == 0 {
		return ""
	}
	for _, o := range opts {
		if _, ok := o.LookupAttr("selected"); ok {
			return optionValue(o)
		}
	}
	return optionValue(opts[0])
}

// SetValue sets the value of an input, or selects the matching option of a
// <select>. It returns false when a select has no option with that value.
func (e *Element) SetValue(v string) bool {
	if e.DataAtom != atom.Select {
		e.SetAttr("value", v)
		return true
	}
	var match *Element
	for _, o := range e.options() {
		if match == nil && optionValue(o) == v {
			match = o
		}
	}
	if match == nil {
		return false
	}
	for _, o := range e.options() {
		o.RemoveAttr("selected")
	}
	match.SetAttr("selected", "")
	return true
}

func (e *Element) options() []*Element {
	var out []*Element
	walk(e.Node(), func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Option {
			out = append(out, wrap(n))
		}
		return true
	})
	return out
}

func optionValue(o *Element) string {
	if v, ok := o.LookupAttr("value"); ok {
		return v
	}
	return strings.TrimSpace(o.Text())
}

type styleDecl struct {
	prop string
	val  string
}

func splitStyle(style string) []styleDecl {
	var out []styleDecl
	for _, part := range strings.Split(style, ";") {
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		if prop == "" {
			continue
		}
		out = append(out, styleDecl{prop: prop, val: val})
	}
	return out
}
