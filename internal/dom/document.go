// Package dom is the in-memory page the renderers write into. It wraps a
// goquery document and tracks which id'd regions were touched so a live
// page can send back only what changed.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const oobAttr = "hx-swap-oob"

// Document is a parsed page plus its dirty-region log.
type Document struct {
	doc   *goquery.Document
	dirty []string
	seen  map[string]struct{}
}

// Parse reads a full HTML page.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return &Document{doc: doc, seen: map[string]struct{}{}}, nil
}

// ParseString is Parse for an in-memory page.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Region returns the element with the given id. The region is inert when no
// such element exists.
func (d *Document) Region(id string) Region {
	return Region{doc: d, id: id, sel: d.doc.Find("#" + id)}
}

// Find runs a CSS selector against the whole page.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Touch records id as changed.
func (d *Document) Touch(id string) {
	if id == "" {
		return
	}
	if _, ok := d.seen[id]; ok {
		return
	}
	d.seen[id] = struct{}{}
	d.dirty = append(d.dirty, id)
}

// TakeDirty returns the ids touched since the last call, in first-touch
// order, and clears the log.
func (d *Document) TakeDirty() []string {
	out := d.dirty
	d.dirty = nil
	d.seen = map[string]struct{}{}
	return out
}

// HTML renders the whole page.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	for _, n := range d.doc.Nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("render page: %w", err)
		}
	}
	return buf.String(), nil
}

// Fragment renders the element with the given id. With oob set the element
// carries hx-swap-oob="true" in the output only; the page itself is not
// changed.
func (d *Document) Fragment(id string, oob bool) (string, error) {
	sel := d.doc.Find("#" + id)
	if sel.Length() == 0 {
		return "", nil
	}
	n := sel.Get(0)
	if oob {
		n.Attr = append(n.Attr, html.Attribute{Key: oobAttr, Val: "true"})
		defer func() { n.Attr = n.Attr[:len(n.Attr)-1] }()
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", fmt.Errorf("render %s: %w", id, err)
	}
	return buf.String(), nil
}

// Fragments renders the given regions as out-of-band fragments in order.
// A region nested inside another listed region is left out since its
// ancestor already carries it.
func (d *Document) Fragments(ids []string) (string, error) {
	listed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		listed[id] = struct{}{}
	}

	var buf strings.Builder
	for _, id := range ids {
		sel := d.doc.Find("#" + id)
		if sel.Length() == 0 || nestedIn(sel.Get(0), listed) {
			continue
		}
		frag, err := d.Fragment(id, true)
		if err != nil {
			return "", err
		}
		buf.WriteString(frag)
	}
	return buf.String(), nil
}

func nestedIn(n *html.Node, ids map[string]struct{}) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		for _, a := range p.Attr {
			if a.Key == "id" {
				if _, ok := ids[a.Val]; ok {
					return true
				}
			}
		}
	}
	return false
}
