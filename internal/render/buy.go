package render

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/Geet-manik/LearnTreeEdu/internal/dom"
	"github.com/Geet-manik/LearnTreeEdu/internal/model"
)

const (
	messagingBase  = "https://wa.me/"
	titlePlacehold = "{title}"
	isolationRel   = "noopener noreferrer"
)

// DefaultMessage is sent through a messaging link when the option has no
// message of its own.
func DefaultMessage(title string) string {
	return `Hi! I'm interested in the book "` + title + `". Could you share the details?`
}

// MessagingURL builds a wa.me deep link. The message may reference the work
// with {title}; an empty message falls back to DefaultMessage.
func MessagingURL(number, message, title string) string {
	number = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	message = strings.TrimSpace(message)
	if message == "" {
		message = DefaultMessage(title)
	} else {
		message = strings.ReplaceAll(message, titlePlacehold, title)
	}
	return messagingBase + number + "?text=" + encodeComponent(message)
}

// encodeComponent percent-encodes s the way a browser encodes a URI
// component: spaces become %20, not +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// BuyControl renders one purchase action. Unknown kinds render an inert,
// label-only control.
func BuyControl(opt model.BuyOption, title string) *html.Node {
	class := dom.Class("btn", "btn-"+opt.StyleOrDefault(), "btn-sm")
	switch opt.Kind() {
	case model.BuyExternal:
		return dom.El("a", class,
			dom.Attr("href", opt.URL),
			dom.Attr("target", "_blank"),
			dom.Attr("rel", isolationRel),
			dom.Text(opt.Label),
		)
	case model.BuyMessaging:
		return dom.El("a", class,
			dom.Attr("href", MessagingURL(opt.Number, opt.Message, title)),
			dom.Attr("target", "_blank"),
			dom.Attr("rel", isolationRel),
			dom.Text(opt.Label),
		)
	default:
		return dom.El("span",
			dom.Class("btn", "btn-"+opt.StyleOrDefault(), "btn-sm", "is-inert"),
			dom.Attr("aria-disabled", "true"),
			dom.Text(opt.Label),
		)
	}
}

// BuyControls renders every option in order.
func BuyControls(opts []model.BuyOption, title string) []*html.Node {
	nodes := make([]*html.Node, 0, len(opts))
	for _, opt := range opts {
		nodes = append(nodes, BuyControl(opt, title))
	}
	return nodes
}
