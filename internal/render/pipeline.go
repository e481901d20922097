package render

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/Geet-manik/LearnTreeEdu/internal/model"
)

var tracer = otel.Tracer("github.com/Geet-manik/LearnTreeEdu/internal/render")

// Section renders one named slice of the content document into the page.
type Section interface {
	Name() string
	Render(ctx context.Context, p *Page, doc *model.ContentDocument) error
}

type sectionFunc struct {
	name string
	fn   func(p *Page, doc *model.ContentDocument)
}

func (s sectionFunc) Name() string { return s.name }

func (s sectionFunc) Render(_ context.Context, p *Page, doc *model.ContentDocument) error {
	s.fn(p, doc)
	return nil
}

// NewSection adapts a plain render function into a Section.
func NewSection(name string, fn func(p *Page, doc *model.ContentDocument)) Section {
	return sectionFunc{name: name, fn: fn}
}

// DefaultSections lists the page sections in render order.
func DefaultSections() []Section {
	return []Section{
		NewSection("site", func(p *Page, d *model.ContentDocument) { RenderSiteMeta(p, d.Site) }),
		NewSection("about", func(p *Page, d *model.ContentDocument) { RenderAbout(p, d.About) }),
		NewSection("workshops", func(p *Page, d *model.ContentDocument) { RenderWorkshops(p, d.Workshops) }),
		NewSection("books", func(p *Page, d *model.ContentDocument) { RenderBooks(p, d.Books) }),
		NewSection("testimonials", func(p *Page, d *model.ContentDocument) { RenderTestimonials(p, d.Testimonials) }),
		NewSection("flipbooks", func(p *Page, d *model.ContentDocument) { RenderFlipbooks(p, d.Flipbooks) }),
		NewSection("gallery", func(p *Page, d *model.ContentDocument) { RenderGallery(p, d.Gallery) }),
		NewSection("links", func(p *Page, d *model.ContentDocument) { RenderLinks(p, d.Links) }),
		NewSection("footer", func(p *Page, d *model.ContentDocument) { RenderFooter(p, d.Site, d.Footer) }),
		NewSection("papers", func(p *Page, d *model.ContentDocument) { RenderPapers(p, d.Papers) }),
	}
}

// SectionError is a failure local to one section.
type SectionError struct {
	Section string
	Err     error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %s: %v", e.Section, e.Err)
}

func (e *SectionError) Unwrap() error { return e.Err }

// Pipeline renders every section of a document into a page, in order.
type Pipeline struct {
	sections []Section
	log      *zap.Logger
}

// NewPipeline returns a pipeline over sections, or DefaultSections when none
// are given.
func NewPipeline(log *zap.Logger, sections ...Section) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	if len(sections) == 0 {
		sections = DefaultSections()
	}
	return &Pipeline{sections: sections, log: log}
}

func (pl *Pipeline) Sections() []string {
	names := make([]string, 0, len(pl.sections))
	for _, s := range pl.sections {
		names = append(names, s.Name())
	}
	return names
}

// Run renders each section once and then wires the page-wide behaviours. A
// failing section never stops the others; failures come back joined as
// *SectionError values.
func (pl *Pipeline) Run(ctx context.Context, p *Page, doc *model.ContentDocument) error {
	if doc == nil {
		return errors.New("render: nil content document")
	}
	ctx, span := tracer.Start(ctx, "render.Pipeline.Run")
	defer span.End()

	var errs []error
	for _, s := range pl.sections {
		if err := pl.runSection(ctx, s, p, doc); err != nil {
			pl.log.Error("section failed", zap.String("section", s.Name()), zap.Error(err))
			errs = append(errs, err)
		}
	}
	p.WireGlobal()
	p.doc.TakeDirty()

	err := errors.Join(errs...)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	pl.log.Debug("page rendered", zap.Int("sections", len(pl.sections)), zap.Int("failed", len(errs)))
	return err
}

func (pl *Pipeline) runSection(ctx context.Context, s Section, p *Page, doc *model.ContentDocument) (err error) {
	ctx, span := tracer.Start(ctx, "render.section."+s.Name())
	span.SetAttributes(attribute.String("section", s.Name()))
	defer func() {
		if r := recover(); r != nil {
			pl.log.Debug("section panic", zap.String("section", s.Name()), zap.ByteString("stack", debug.Stack()))
			err = &SectionError{Section: s.Name(), Err: fmt.Errorf("panic: %v", r)}
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if rerr := s.Render(ctx, p, doc); rerr != nil {
		return &SectionError{Section: s.Name(), Err: rerr}
	}
	return nil
}

// WireGlobal binds the page-wide controls that live in the skeleton: the
// mobile nav toggle and every modal close trigger. Elements waiting for a
// scroll reveal are shown straight away since nothing observes scrolling.
func (p *Page) WireGlobal() {
	p.doc.Find(".nav-toggle").Each(func(i int, sel *goquery.Selection) {
		p.bindSelection(sel, "nav.toggle."+strconv.Itoa(i), p.ToggleMobileNav)
	})

	p.doc.Find(".modal").Each(func(_ int, modal *goquery.Selection) {
		id, ok := modal.Attr("id")
		if !ok || id == "" {
			return
		}
		modal.Find("[data-modal-close]").Each(func(i int, sel *goquery.Selection) {
			p.bindSelection(sel, "modal."+id+".close."+strconv.Itoa(i), func() { p.modals.Close(id) })
		})
	})

	p.doc.Find(".reveal").AddClass("is-visible")
}
