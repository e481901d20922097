package render

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/Geet-manik/LearnTreeEdu/internal/dom"
	"github.com/Geet-manik/LearnTreeEdu/internal/model"
)

func RenderGallery(p *Page, gallery *model.Gallery) {
	if gallery == nil {
		return
	}
	p.Region("gallery-subtitle").SetText(gallery.Subtitle)

	grid := p.Region("gallery-grid").Clear()
	for i, item := range gallery.Items {
		src, caption := item.Image, item.Caption
		grid.Append(dom.El("article",
			dom.Class("gallery-item", "reveal"),
			p.Trigger("gallery."+strconv.Itoa(i), func() { p.OpenLightbox(src, caption) }),
			dom.Children(
				dom.El("img", dom.Attr("src", item.Image), dom.Attr("alt", item.Title)),
				dom.El("div", dom.Class("gallery-item-overlay"), dom.Children(
					dom.El("div", dom.Class("gallery-item-title"), dom.Text(item.Title)),
					dom.El("div", dom.Class("gallery-item-caption"), dom.Text(item.Caption)),
				)),
			),
		))
	}
}

func RenderLinks(p *Page, links *model.Links) {
	if links == nil {
		return
	}
	p.Region("links-subtitle").SetText(links.Subtitle)

	grid := p.Region("links-grid").Clear()
	for _, link := range links.Items {
		target := "_self"
		if isExternal(link.URL) {
			target = "_blank"
		}
		grid.Append(dom.El("article", dom.Class("link-card", "reveal"), dom.Children(
			dom.El("div", dom.Class("link-card-type"), dom.Text(link.Type)),
			dom.El("a",
				dom.Attr("href", link.URL),
				dom.Attr("target", target),
				dom.Attr("rel", isolationRel),
				dom.Text(link.Label),
			),
		)))
	}
}

func isExternal(u string) bool {
	return strings.HasPrefix(u, "http")
}

// RenderFooter needs the site section for the brand name; either section
// may be missing.
func RenderFooter(p *Page, site *model.Site, footer *model.Footer) {
	if site != nil {
		p.Region("footer-name").SetText(site.Name)
		p.Region("footer-name-inline").SetText(site.Name)
	}
	if footer != nil {
		p.Region("footer-address").SetText(footer.Address)
		p.Region("footer-contact").SetText("Phone: " + footer.Phone)
		p.Region("footer-email").SetText("Email: " + footer.Email)
	}
	if site != nil || footer != nil {
		p.Region("year").SetText(strconv.Itoa(p.now().Year()))
	}
}

const defaultPaperLabel = "Download"

func RenderPapers(p *Page, papers *model.Papers) {
	if papers == nil {
		return
	}
	p.Region("papers-subtitle").SetText(papers.Subtitle)

	list := p.Region("papers-list").Clear()
	for _, paper := range papers.Items {
		list.Append(paperCard(paper))
	}
}

func paperCard(paper model.Paper) *html.Node {
	var meta []string
	for _, s := range []string{paper.Subject, paper.Year} {
		if s != "" {
			meta = append(meta, s)
		}
	}

	card := dom.El("article", dom.Class("card", "paper-card", "reveal"), dom.Children(
		dom.El("h3", dom.Text(paper.Title)),
	))
	if len(meta) > 0 {
		card.AppendChild(dom.El("p", dom.Class("paper-meta"), dom.Text(strings.Join(meta, " • "))))
	}
	if paper.Description != "" {
		card.AppendChild(dom.El("p", dom.Text(paper.Description)))
	}
	if paper.URL != "" {
		card.AppendChild(dom.El("a",
			dom.Class("btn", "btn-outline", "btn-sm"),
			dom.Attr("href", paper.URL),
			dom.Attr("target", "_blank"),
			dom.Attr("rel", isolationRel),
			dom.Attr("download", ""),
			dom.Text(orDefault(paper.Label, defaultPaperLabel)),
		))
	}
	return card
}
