package render

import (
	"golang.org/x/net/html"

	"github.com/Geet-manik/LearnTreeEdu/internal/dom"
	"github.com/Geet-manik/LearnTreeEdu/internal/markup"
	"github.com/Geet-manik/LearnTreeEdu/internal/model"
)

const (
	defaultDescriptionHeading  = "About this book"
	defaultFeaturesHeading     = "Features based on"
	defaultBulletsHeading      = "Why this book works"
	defaultContributorsHeading = "Contributors"
)

// OpenBook fills the detail modal with book and opens it.
func (p *Page) OpenBook(book model.Book) {
	content := p.Region("book-modal-content").Clear()
	for _, n := range BookDetail(book) {
		content.Append(n)
	}
	p.modals.Open(BookModal)
}

// BookDetail assembles the detail modal body: title, subtitle, images,
// description, features, bullets, contributors, purchase row. Optional blocks
// with nothing in them are left out.
func BookDetail(book model.Book) []*html.Node {
	images := dom.El("div", dom.Class("book-modal-images"), dom.Children(
		dom.El("img", dom.Attr("src", book.CoverImage), dom.Attr("alt", book.Title+" cover")),
	))
	if book.BackImage != "" {
		images.AppendChild(dom.El("img",
			dom.Class("book-modal-back"),
			dom.Attr("src", book.BackImage),
			dom.Attr("alt", book.Title+" back cover"),
		))
	}

	details := dom.El("div", dom.Class("book-modal-details"))
	if len(book.Description) > 0 {
		details.AppendChild(sectionTitle(orDefault(book.DescriptionHeading, defaultDescriptionHeading)))
		for _, para := range book.Description {
			details.AppendChild(dom.El("p", dom.Text(para)))
		}
	}

	if len(book.Features) > 0 {
		details.AppendChild(sectionTitle(orDefault(book.FeaturesHeading, defaultFeaturesHeading)))
		ul := dom.El("ul")
		for _, f := range book.Features {
			ul.AppendChild(featureItem(f))
		}
		details.AppendChild(ul)
	}

	if len(book.Bullets) > 0 {
		details.AppendChild(sectionTitle(orDefault(book.BulletsHeading, defaultBulletsHeading)))
		ul := dom.El("ul")
		for _, b := range book.Bullets {
			ul.AppendChild(dom.El("li", dom.Text(b)))
		}
		details.AppendChild(ul)
	}

	if len(book.Contributors) > 0 {
		details.AppendChild(sectionTitle(orDefault(book.ContributorsHeading, defaultContributorsHeading)))
		ul := dom.El("ul", dom.Class("book-contributors"))
		for _, c := range book.Contributors {
			ul.AppendChild(dom.El("li", dom.Trusted(markup.Inline(c))))
		}
		details.AppendChild(ul)
	}

	if len(book.BuyOptions) > 0 {
		details.AppendChild(dom.El("div", dom.Class("book-modal-actions"), dom.Children(BuyControls(book.BuyOptions, book.Title)...)))
	}

	return []*html.Node{
		dom.El("h2", dom.ID("book-modal-title"), dom.Text(book.Title)),
		dom.El("p", dom.Class("section-subtitle"), dom.Text(book.Meta())),
		dom.El("div", dom.Class("book-modal-layout"), dom.Children(images, details)),
	}
}

func featureItem(f model.Feature) *html.Node {
	if !f.Labelled() {
		return dom.El("li", dom.Text(f.Text))
	}
	return dom.El("li",
		dom.Children(dom.El("strong", dom.Text(f.Title+":"))),
		dom.Text(" "+f.Text),
	)
}

func sectionTitle(text string) *html.Node {
	return dom.El("h3", dom.Class("book-modal-section-title"), dom.Text(text))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
