package render

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Geet-manik/LearnTreeEdu/internal/model"
)

func TestPipelineSectionOrder(t *testing.T) {
	got := NewPipeline(nil).Sections()
	want := []string{"site", "about", "workshops", "books", "testimonials", "flipbooks", "gallery", "links", "footer", "papers"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("section order mismatch (-want +got):\n%s", diff)
	}
}

func TestPipelineRendersDocument(t *testing.T) {
	p := renderFixture(t, fixtureDocument())
	doc := p.Document()

	assert.Equal(t, "LearnTree", doc.Find("#brand-name").Text())
	assert.Equal(t, 2, doc.Find("#hero-highlights li").Length())

	nav := doc.Find("#nav-links a")
	require.Equal(t, 2, nav.Length())
	href, _ := nav.Eq(0).Attr("href")
	assert.Equal(t, "#about", href)
	assert.Equal(t, "Question Papers", nav.Eq(1).Text())

	about := doc.Find("#about-text p")
	require.Equal(t, 2, about.Length())
	assert.Equal(t, "Second <b>paragraph</b>.", about.Eq(1).Text(), "about text is literal")
	assert.Equal(t, 0, doc.Find("#about-text b").Length())
	assert.Equal(t, "Phone: +91 91100 00000", doc.Find("#contact-list li").Text())

	assert.Equal(t, 2, doc.Find("#workshops-list .workshop-card").Length())
	assert.Equal(t, 1, doc.Find("#workshops-list img.workshop-image").Length())
	assert.Equal(t, 2, doc.Find("#workshops-list .chip").Length())

	assert.Equal(t, 2, doc.Find("#books-list .book-card").Length())
	assert.Equal(t, "1200 Questions", doc.Find("#books-list .badge").Text())
	assert.Equal(t, 4, doc.Find("#books-list .book-card").Eq(0).Find(".book-meta-item").Length(), "price plus three chips")

	assert.Equal(t, "Business Studies OTQ", doc.Find("#hero-book-title").Text())
	assert.Equal(t, "2026 Edition • Class XII", doc.Find("#hero-book-meta").Text())
	assert.True(t, p.HasTrigger("hero.book"))

	assert.Equal(t, 6, doc.Find("#testimonial-track-books .testimonial-card").Length())
	assert.Equal(t, 2, doc.Find("#testimonial-track-otq .testimonial-card").Length())
	assert.Equal(t, 1, doc.Find("#flipbooks-list .flipbook-card").Length())
	assert.Equal(t, 1, doc.Find("#gallery-grid .gallery-item").Length())

	links := doc.Find("#links-grid a")
	require.Equal(t, 2, links.Length())
	target, _ := links.Eq(0).Attr("target")
	assert.Equal(t, "_blank", target)
	target, _ = links.Eq(1).Attr("target")
	assert.Equal(t, "_self", target)

	assert.Equal(t, "Phone: +91 91100 00000", doc.Find("#footer-contact").Text())
	assert.Equal(t, "2026", doc.Find("#year").Text())

	papers := doc.Find("#papers-list .paper-card")
	require.Equal(t, 2, papers.Length())
	assert.Equal(t, 1, papers.Eq(0).Find("a[download]").Length())
	assert.Equal(t, 0, papers.Eq(1).Find("a").Length())

	assert.Equal(t, doc.Find(".reveal").Length(), doc.Find(".reveal.is-visible").Length())
}

func TestPipelineIsIdempotent(t *testing.T) {
	p := newTestPage(t)
	pl := NewPipeline(nil)
	doc := fixtureDocument()

	require.NoError(t, pl.Run(context.Background(), p, doc))
	first, err := p.Document().HTML()
	require.NoError(t, err)

	require.NoError(t, pl.Run(context.Background(), p, doc))
	second, err := p.Document().HTML()
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second run changed the page (-first +second):\n%s", diff)
	}
}

func TestPipelineMissingLinksSection(t *testing.T) {
	doc := fixtureDocument()
	doc.Links = nil
	p := renderFixture(t, doc)

	assert.Equal(t, 0, p.Document().Find("#links-grid .link-card").Length())
	assert.Equal(t, 2, p.Document().Find("#books-list .book-card").Length())
	assert.Equal(t, "12 MG Road, Pune", p.Document().Find("#footer-address").Text())
}

func TestPipelineEmptyDocument(t *testing.T) {
	p := renderFixture(t, &model.ContentDocument{})
	assert.Equal(t, "", p.Document().Find("#brand-name").Text())
	assert.Nil(t, p.Carousel(BooksCarousel))
}

func TestPipelineIsolatesFailingSection(t *testing.T) {
	boom := NewSection("boom", func(*Page, *model.ContentDocument) {
		var b *model.Books
		_ = b.Items[0]
	})
	failing := failingSection{err: errors.New("bad data")}
	pl := NewPipeline(nil,
		boom,
		failing,
		NewSection("footer", func(p *Page, d *model.ContentDocument) { RenderFooter(p, d.Site, d.Footer) }),
	)

	p := newTestPage(t)
	err := pl.Run(context.Background(), p, fixtureDocument())
	require.Error(t, err)

	var se *SectionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "boom", se.Section)
	assert.ErrorContains(t, err, "section failing: bad data")
	assert.Equal(t, "12 MG Road, Pune", p.Document().Find("#footer-address").Text())
}

type failingSection struct{ err error }

func (failingSection) Name() string { return "failing" }

func (f failingSection) Render(context.Context, *Page, *model.ContentDocument) error {
	return f.err
}

func TestPipelineNilDocument(t *testing.T) {
	err := NewPipeline(nil).Run(context.Background(), newTestPage(t), nil)
	assert.Error(t, err)
}
