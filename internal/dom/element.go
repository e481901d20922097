package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Option configures an element built by El.
type Option func(*html.Node)

// El builds a detached element node.
func El(tag string, opts ...Option) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func Attr(key, val string) Option {
	return func(n *html.Node) {
		setAttr(n, key, val)
	}
}

func ID(id string) Option {
	return Attr("id", id)
}

// Class sets the class attribute from the non-empty names given.
func Class(names ...string) Option {
	return func(n *html.Node) {
		var kept []string
		for _, c := range names {
			if c = strings.TrimSpace(c); c != "" {
				kept = append(kept, c)
			}
		}
		if len(kept) > 0 {
			setAttr(n, "class", strings.Join(kept, " "))
		}
	}
}

// Text appends a literal text node; markup in s is not interpreted.
func Text(s string) Option {
	return func(n *html.Node) {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	}
}

// Children appends the given nodes; nil entries are skipped.
func Children(children ...*html.Node) Option {
	return func(n *html.Node) {
		for _, c := range children {
			if c != nil {
				n.AppendChild(c)
			}
		}
	}
}

// Trusted parses an already-sanitized inline fragment and appends it. Only
// feed it output from markup.Inline.
func Trusted(fragment string) Option {
	return func(n *html.Node) {
		ctx := &html.Node{Type: html.ElementNode, Data: n.Data, DataAtom: n.DataAtom}
		nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
		if err != nil {
			n.AppendChild(&html.Node{Type: html.TextNode, Data: fragment})
			return
		}
		for _, c := range nodes {
			n.AppendChild(c)
		}
	}
}

// Attrs applies extra attributes in key order of the slice.
func Attrs(attrs []html.Attribute) Option {
	return func(n *html.Node) {
		for _, a := range attrs {
			setAttr(n, a.Key, a.Val)
		}
	}
}

// SetAttr sets an attribute on a detached node.
func SetAttr(n *html.Node, key, val string) {
	setAttr(n, key, val)
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
