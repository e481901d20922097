package render

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/Geet-manik/LearnTreeEdu/internal/dom"
	"github.com/Geet-manik/LearnTreeEdu/internal/model"
)

// RenderWorkshops emits one card per workshop. A workshop image opens the
// lightbox.
func RenderWorkshops(p *Page, workshops *model.Workshops) {
	if workshops == nil {
		return
	}
	p.Region("workshops-subtitle").SetText(workshops.Subtitle)

	list := p.Region("workshops-list").Clear()
	for i, ws := range workshops.Items {
		list.Append(p.workshopCard(i, ws))
	}
}

func (p *Page) workshopCard(i int, ws model.Workshop) *html.Node {
	var image *html.Node
	if ws.Image != "" {
		src, caption := ws.Image, ws.Caption
		image = dom.El("img",
			dom.Class("workshop-image"),
			dom.Attr("src", ws.Image),
			dom.Attr("alt", ws.Title),
			p.Trigger("workshops."+strconv.Itoa(i)+".image", func() { p.OpenLightbox(src, caption) }),
		)
	}

	tags := dom.El("div", dom.Class("workshop-tags"))
	for _, tag := range ws.Tags {
		tags.AppendChild(dom.El("span", dom.Class("chip"), dom.Text(tag)))
	}

	return dom.El("article", dom.Class("card", "workshop-card", "reveal"), dom.Children(
		image,
		dom.El("h3", dom.Text(ws.Title)),
		dom.El("p", dom.Text(ws.Description)),
		dom.El("div", dom.Class("workshop-meta"), dom.Children(
			dom.El("span", dom.Text(ws.DateLabel)),
			dom.El("span", dom.Text(ws.Location)),
		)),
		tags,
	))
}

// OpenLightbox shows src in the shared lightbox with an optional caption.
func (p *Page) OpenLightbox(src, caption string) {
	p.Region("lightbox-image").SetAttr("src", src)
	p.Region("lightbox-caption").SetText(caption)
	p.modals.Open(LightboxModal)
}
