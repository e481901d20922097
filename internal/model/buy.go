package model

import "strings"

// BuyKind is the closed set of purchase actions a BuyOption can describe.
type BuyKind int

const (
	BuyUnknown BuyKind = iota
	BuyExternal
	BuyMessaging
)

func (k BuyKind) String() string {
	switch k {
	case BuyExternal:
		return "external-link"
	case BuyMessaging:
		return "messaging-link"
	default:
		return "unknown"
	}
}

// ParseBuyKind maps the raw "type" field onto a BuyKind. Unrecognized values
// map to BuyUnknown.
func ParseBuyKind(raw string) BuyKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "external-link", "external", "link", "url":
		return BuyExternal
	case "messaging-link", "messaging", "whatsapp":
		return BuyMessaging
	default:
		return BuyUnknown
	}
}

const DefaultBuyStyle = "outline"

// BuyOption describes one purchase control attached to a book or flipbook.
type BuyOption struct {
	Type    string `json:"type" yaml:"type"`
	Style   string `json:"style,omitempty" yaml:"style,omitempty"`
	Label   string `json:"label" yaml:"label"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	Number  string `json:"number,omitempty" yaml:"number,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func (o BuyOption) Kind() BuyKind {
	return ParseBuyKind(o.Type)
}

func (o BuyOption) StyleOrDefault() string {
	if s := strings.TrimSpace(o.Style); s != "" {
		return s
	}
	return DefaultBuyStyle
}

// Flipbooks is the preview section: each item can be paged through up to its
// preview limit before a purchase prompt is shown.
type Flipbooks struct {
	Title    string     `json:"title,omitempty" yaml:"title,omitempty"`
	Subtitle string     `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Items    []Flipbook `json:"items,omitempty" yaml:"items,omitempty"`
}

type Flipbook struct {
	ID              string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title           string   `json:"title" yaml:"title"`
	Cover           string   `json:"cover,omitempty" yaml:"cover,omitempty"`
	Pages           []string `json:"pages,omitempty" yaml:"pages,omitempty"`
	PreviewLimit    int      `json:"previewLimit,omitempty" yaml:"previewLimit,omitempty"`
	BuyURL          string   `json:"buyUrl,omitempty" yaml:"buyUrl,omitempty"`
	BuyLabel        string   `json:"buyLabel,omitempty" yaml:"buyLabel,omitempty"`
	WhatsAppNumber  string   `json:"whatsappNumber,omitempty" yaml:"whatsappNumber,omitempty"`
	WhatsAppMessage string   `json:"whatsappMessage,omitempty" yaml:"whatsappMessage,omitempty"`
	WhatsAppLabel   string   `json:"whatsappLabel,omitempty" yaml:"whatsappLabel,omitempty"`
	PDFURL          string   `json:"pdfUrl,omitempty" yaml:"pdfUrl,omitempty"`
	PDFLabel        string   `json:"pdfLabel,omitempty" yaml:"pdfLabel,omitempty"`
}

// BuyOptions returns the purchase controls for the flipbook: the direct buy
// link first, then the messaging link. Either is omitted when unconfigured.
func (f Flipbook) BuyOptions() []BuyOption {
	var opts []BuyOption
	if f.BuyURL != "" {
		label := f.BuyLabel
		if label == "" {
			label = "Buy now"
		}
		opts = append(opts, BuyOption{Type: "external-link", Style: "primary", Label: label, URL: f.BuyURL})
	}
	if f.WhatsAppNumber != "" {
		label := f.WhatsAppLabel
		if label == "" {
			label = "Order on WhatsApp"
		}
		opts = append(opts, BuyOption{Type: "messaging-link", Label: label, Number: f.WhatsAppNumber, Message: f.WhatsAppMessage})
	}
	return opts
}
