package render

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"

	"github.com/Geet-manik/LearnTreeEdu/internal/dom"
	"github.com/Geet-manik/LearnTreeEdu/internal/model"
	"github.com/Geet-manik/LearnTreeEdu/internal/ui"
)

const defaultPDFLabel = "Download sample (PDF)"

// RenderFlipbooks lists the previewable books and binds the viewer's page
// controls.
func RenderFlipbooks(p *Page, fbs *model.Flipbooks) {
	if fbs == nil {
		return
	}
	if fbs.Title != "" {
		p.Region("flipbooks-title").SetText(fbs.Title)
	}
	p.Region("flipbooks-subtitle").SetText(fbs.Subtitle)

	list := p.Region("flipbooks-list").Clear()
	for i, fb := range fbs.Items {
		list.Append(p.flipbookCard(i, fb))
	}

	p.BindRegion(p.Region("flipbook-prev"), "flipbook.prev", func() {
		p.applyFlipbook(ui.FlipbookEvent{Kind: ui.FlipbookPrev})
	})
	p.BindRegion(p.Region("flipbook-next"), "flipbook.next", func() {
		p.applyFlipbook(ui.FlipbookEvent{Kind: ui.FlipbookNext})
	})
}

func (p *Page) flipbookCard(i int, fb model.Flipbook) *html.Node {
	var cover *html.Node
	if src := fb.Cover; src != "" || len(fb.Pages) > 0 {
		if src == "" {
			src = fb.Pages[0]
		}
		cover = dom.El("img", dom.Class("flipbook-cover"), dom.Attr("src", src), dom.Attr("alt", fb.Title))
	}
	return dom.El("article", dom.Class("card", "flipbook-card", "reveal"), dom.Children(
		cover,
		dom.El("h3", dom.Text(fb.Title)),
		dom.El("button",
			dom.Class("btn", "btn-primary", "btn-sm"),
			dom.Attr("type", "button"),
			dom.Text("Preview"),
			p.Trigger("flipbooks."+strconv.Itoa(i)+".preview", func() { p.OpenFlipbook(fb) }),
		),
	))
}

// OpenFlipbook starts a fresh viewer on the first page of fb and opens the
// flipbook modal.
func (p *Page) OpenFlipbook(fb model.Flipbook) {
	p.flipbook = NewFlipbookViewer(p.doc, fb)
	p.flipbook.Render()
	p.modals.Open(FlipbookModal)
}

func (p *Page) applyFlipbook(ev ui.FlipbookEvent) {
	if p.flipbook == nil {
		return
	}
	p.flipbook.Apply(ev)
}

// FlipbookViewer shows one page of a flipbook at a time and covers the
// preview with a purchase prompt once the reader reaches the preview limit.
type FlipbookViewer struct {
	doc   *dom.Document
	book  model.Flipbook
	state *ui.Flipbook
}

func NewFlipbookViewer(doc *dom.Document, fb model.Flipbook) *FlipbookViewer {
	return &FlipbookViewer{
		doc:   doc,
		book:  fb,
		state: ui.NewFlipbook(len(fb.Pages), fb.PreviewLimit),
	}
}

func (v *FlipbookViewer) State() *ui.Flipbook { return v.state }

// Apply feeds an event to the cursor and re-renders when it moved.
func (v *FlipbookViewer) Apply(ev ui.FlipbookEvent) {
	if v.state.Apply(ev) {
		v.Render()
	}
}

// Render writes the current page, counter, overlay and purchase controls.
func (v *FlipbookViewer) Render() {
	idx, total := v.state.Index(), v.state.Pages()
	v.doc.Region("flipbook-title").SetText(v.book.Title)

	page := v.doc.Region("flipbook-page")
	if total == 0 {
		page.RemoveAttr("src").Hide()
		v.doc.Region("flipbook-counter").SetText("0 / 0")
	} else {
		page.SetAttr("src", v.book.Pages[idx]).
			SetAttr("alt", fmt.Sprintf("%s page %d", v.book.Title, idx+1)).
			Show()
		v.doc.Region("flipbook-counter").SetText(fmt.Sprintf("%d / %d", idx+1, total))
	}

	overlay := v.doc.Region("flipbook-overlay")
	if v.state.Gated() {
		overlay.Show()
	} else {
		overlay.Hide()
	}

	actions := v.doc.Region("flipbook-actions").Clear()
	for _, n := range BuyControls(v.book.BuyOptions(), v.book.Title) {
		actions.Append(n)
	}

	pdf := v.doc.Region("flipbook-pdf")
	if v.book.PDFURL == "" {
		pdf.RemoveAttr("href").Hide()
		return
	}
	pdf.SetAttr("href", v.book.PDFURL).
		SetAttr("target", "_blank").
		SetAttr("rel", isolationRel).
		SetText(orDefault(v.book.PDFLabel, defaultPDFLabel)).
		Show()
}
