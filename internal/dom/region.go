package dom

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Region is a handle on one id'd element. All mutating calls mark the region
// dirty; on a missing element they do nothing.
type Region struct {
	doc *Document
	id  string
	sel *goquery.Selection
}

func (r Region) ID() string {
	return r.id
}

func (r Region) Exists() bool {
	return r.sel.Length() > 0
}

// Selection exposes the underlying goquery selection for reads.
func (r Region) Selection() *goquery.Selection {
	return r.sel
}

func (r Region) touch() bool {
	if !r.Exists() {
		return false
	}
	r.doc.Touch(r.id)
	return true
}

// Clear removes every child node.
func (r Region) Clear() Region {
	if r.touch() {
		r.sel.Empty()
	}
	return r
}

// Append adds nodes as the last children, in order.
func (r Region) Append(nodes ...*html.Node) Region {
	if r.touch() {
		r.sel.AppendNodes(nodes...)
	}
	return r
}

// SetText replaces the children with one literal text node.
func (r Region) SetText(text string) Region {
	if r.touch() {
		r.sel.SetText(text)
	}
	return r
}

func (r Region) SetAttr(key, val string) Region {
	if r.touch() {
		r.sel.SetAttr(key, val)
	}
	return r
}

func (r Region) RemoveAttr(key string) Region {
	if r.touch() {
		r.sel.RemoveAttr(key)
	}
	return r
}

func (r Region) AddClass(class ...string) Region {
	if r.touch() {
		r.sel.AddClass(class...)
	}
	return r
}

func (r Region) RemoveClass(class ...string) Region {
	if r.touch() {
		r.sel.RemoveClass(class...)
	}
	return r
}

func (r Region) ToggleClass(class string) Region {
	if r.touch() {
		r.sel.ToggleClass(class)
	}
	return r
}

func (r Region) HasClass(class string) bool {
	return r.sel.HasClass(class)
}

func (r Region) Attr(key string) (string, bool) {
	return r.sel.Attr(key)
}

func (r Region) Text() string {
	return r.sel.Text()
}

// Show clears the hidden attribute.
func (r Region) Show() Region {
	return r.RemoveAttr("hidden")
}

// Hide sets the hidden attribute.
func (r Region) Hide() Region {
	return r.SetAttr("hidden", "hidden")
}

// Hidden reports whether the region carries the hidden attribute.
func (r Region) Hidden() bool {
	_, ok := r.sel.Attr("hidden")
	return ok
}
