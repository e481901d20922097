package render

import (
	"golang.org/x/net/html"

	"github.com/Geet-manik/LearnTreeEdu/internal/dom"
	"github.com/Geet-manik/LearnTreeEdu/internal/model"
	"github.com/Geet-manik/LearnTreeEdu/internal/ui"
)

// Testimonial collections shown on the page.
const (
	BooksCarousel = "books"
	OTQCarousel   = "otq"
)

// RenderTestimonials fills both testimonial groups and sets up one carousel
// per group.
func RenderTestimonials(p *Page, t *model.Testimonials) {
	if t == nil {
		return
	}
	p.Region("testimonials-books-title").SetText(t.BooksTitle)
	p.Region("testimonials-books-subtitle").SetText(t.BooksSubtitle)
	p.NewTestimonialCarousel(BooksCarousel, t.BooksItems)

	p.Region("testimonials-otq-title").SetText(t.OTQTitle)
	p.Region("testimonials-otq-subtitle").SetText(t.OTQSubtitle)
	p.NewTestimonialCarousel(OTQCarousel, t.OTQItems)
}

// TestimonialCarousel renders one page of a testimonial collection into its
// track and owns the prev/next controls next to it.
type TestimonialCarousel struct {
	name  string
	items []model.Testimonial
	state *ui.Carousel
	track dom.Region
	prev  dom.Region
	next  dom.Region
}

// NewTestimonialCarousel builds the carousel for name, binds its controls,
// registers it for resize events and renders the first page. The page must
// have a testimonial-track-<name> element; without it nothing is set up.
func (p *Page) NewTestimonialCarousel(name string, items []model.Testimonial) *TestimonialCarousel {
	track := p.Region("testimonial-track-" + name)
	if !track.Exists() {
		return nil
	}
	c := &TestimonialCarousel{
		name:  name,
		items: items,
		state: ui.NewCarousel(len(items), p.viewport),
		track: track,
		prev:  p.Region("slider-" + name + "-prev"),
		next:  p.Region("slider-" + name + "-next"),
	}
	p.BindRegion(c.prev, "carousel."+name+".prev", func() {
		c.Apply(ui.CarouselEvent{Kind: ui.CarouselPrev})
	})
	p.BindRegion(c.next, "carousel."+name+".next", func() {
		c.Apply(ui.CarouselEvent{Kind: ui.CarouselNext})
	})
	p.addCarousel(c)
	c.Render()
	return c
}

func (c *TestimonialCarousel) State() *ui.Carousel { return c.state }

// Apply feeds an event to the carousel state and re-renders when the
// visible page changed.
func (c *TestimonialCarousel) Apply(ev ui.CarouselEvent) {
	if c.state.Apply(ev) {
		c.Render()
	}
}

// Render replaces the track with the current page of cards. The arrows are
// hidden while everything fits on one page.
func (c *TestimonialCarousel) Render() {
	c.track.Clear()
	start, end := c.state.Window()
	for _, t := range c.items[start:end] {
		c.track.Append(testimonialCard(t))
	}

	if c.state.PageCount() <= 1 {
		c.prev.Hide()
		c.next.Hide()
		return
	}
	c.prev.Show()
	c.next.Show()
}

func testimonialCard(t model.Testimonial) *html.Node {
	return dom.El("article", dom.Class("testimonial-card"), dom.Children(
		dom.El("p", dom.Class("testimonial-message"), dom.Text("“"+t.Message+"”")),
		dom.El("div", dom.Class("testimonial-author"), dom.Children(
			dom.El("strong", dom.Text(t.Name)),
			dom.El("span", dom.Text(t.Role)),
		)),
	))
}
