package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/Geet-manik/LearnTreeEdu/internal/dom"
	"github.com/Geet-manik/LearnTreeEdu/internal/model"
)

const maxSuitableChips = 3

// RenderBooks emits one card per book with its detail trigger and purchase
// controls, and fills the hero summary from the featured book.
func RenderBooks(p *Page, books *model.Books) {
	if books == nil {
		return
	}
	p.Region("books-subtitle").SetText(books.Subtitle)

	list := p.Region("books-list").Clear()
	for i, book := range books.Items {
		list.Append(p.bookCard(i, book))
	}

	if hero := books.Find(p.heroBookID); hero != nil {
		p.renderHeroBook(*hero)
	}
}

func (p *Page) bookCard(i int, book model.Book) *html.Node {
	cover := dom.El("div", dom.Class("book-cover-wrap"), dom.Children(
		dom.El("img", dom.Class("book-cover"), dom.Attr("src", book.CoverImage), dom.Attr("alt", book.Title)),
	))
	if book.QuestionCount > 0 {
		cover.AppendChild(dom.El("span", dom.Class("badge"), dom.Text(strconv.Itoa(book.QuestionCount)+" Questions")))
	}

	meta := dom.El("div", dom.Class("book-meta-row"))
	if book.Price != "" {
		meta.AppendChild(dom.El("span", dom.Class("book-meta-item"), dom.Text(priceLabel(book))))
	}
	for j, item := range book.SuitableFor {
		if j == maxSuitableChips {
			break
		}
		meta.AppendChild(dom.El("span", dom.Class("book-meta-item"), dom.Text(item)))
	}

	details := dom.El("button",
		dom.Class("btn", "btn-outline", "btn-sm"),
		dom.Attr("type", "button"),
		dom.Text("View details"),
		p.Trigger("books."+strconv.Itoa(i)+".details", func() { p.OpenBook(book) }),
	)
	actions := dom.El("div", dom.Class("book-actions"), dom.Children(details))
	for _, n := range BuyControls(book.BuyOptions, book.Title) {
		actions.AppendChild(n)
	}

	return dom.El("article", dom.Class("card", "book-card", "reveal"), dom.Children(
		cover,
		dom.El("div", dom.Class("book-info"), dom.Children(
			dom.El("h3", dom.Text(book.Title)),
			dom.El("p", dom.Text(book.Meta())),
			meta,
		)),
		actions,
	))
}

func priceLabel(book model.Book) string {
	return strings.TrimSpace(book.Currency + " ₹" + string(book.Price))
}

func (p *Page) renderHeroBook(book model.Book) {
	p.Region("hero-book-cover").SetAttr("src", book.CoverImage).SetAttr("alt", book.Title)
	p.Region("hero-book-title").SetText(book.Title)
	p.Region("hero-book-meta").SetText(book.Meta())
	p.BindRegion(p.Region("hero-book-cta"), "hero.book", func() { p.OpenBook(book) })
}
