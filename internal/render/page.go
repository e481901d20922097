package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/Geet-manik/LearnTreeEdu/internal/dom"
	"github.com/Geet-manik/LearnTreeEdu/internal/ui"
)

// ErrUnknownTrigger is returned by Dispatch for an activation no element was
// bound to.
var ErrUnknownTrigger = errors.New("unknown trigger")

// Modal surfaces present in the page skeleton.
const (
	BookModal     = "book-modal"
	LightboxModal = "lightbox-modal"
	FlipbookModal = "flipbook-modal"
)

// DefaultHeroBookID selects the book featured in the hero.
const DefaultHeroBookID = "bst12-otq"

const triggerAttr = "data-trigger"

type EventKind int

const (
	EventActivate EventKind = iota
	EventKeyDown
	EventResize
)

func (k EventKind) String() string {
	switch k {
	case EventActivate:
		return "activate"
	case EventKeyDown:
		return "keydown"
	case EventResize:
		return "resize"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one user input delivered to a live page. Target is the trigger id
// for activations and the modal id for key presses.
type Event struct {
	Kind   EventKind
	Target string
	Key    string
	Width  int
}

// Page is one rendered page together with the interactive state wired into
// it. A Page is not safe for concurrent use; callers serialize events.
type Page struct {
	doc          *dom.Document
	log          *zap.Logger
	now          func() time.Time
	heroBookID   string
	viewport     int
	triggerAttrs func(id string) []html.Attribute

	triggers  map[string]func()
	modals    *ModalController
	carousels map[string]*TestimonialCarousel
	order     []string
	flipbook  *FlipbookViewer
}

type Option func(*Page)

func WithLogger(log *zap.Logger) Option {
	return func(p *Page) {
		if log != nil {
			p.log = log
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Page) {
		if now != nil {
			p.now = now
		}
	}
}

func WithHeroBook(id string) Option {
	return func(p *Page) {
		if id != "" {
			p.heroBookID = id
		}
	}
}

// WithViewport sets the width used until the first resize event.
func WithViewport(width int) Option {
	return func(p *Page) {
		if width > 0 {
			p.viewport = width
		}
	}
}

// WithTriggerAttrs adds transport attributes (for example hx-post) to every
// bound trigger element.
func WithTriggerAttrs(fn func(id string) []html.Attribute) Option {
	return func(p *Page) {
		p.triggerAttrs = fn
	}
}

func NewPage(doc *dom.Document, opts ...Option) *Page {
	p := &Page{
		doc:        doc,
		log:        zap.NewNop(),
		now:        time.Now,
		heroBookID: DefaultHeroBookID,
		viewport:   ui.DesktopWidth,
		triggers:   map[string]func(){},
		carousels:  map[string]*TestimonialCarousel{},
	}
	for _, opt := range opts {
		opt(p)
	}
	p.modals = NewModalController(doc, BookModal, LightboxModal, FlipbookModal)
	return p
}

func (p *Page) Document() *dom.Document { return p.doc }
func (p *Page) Modals() *ModalController { return p.modals }
func (p *Page) Viewport() int { return p.viewport }
func (p *Page) Flipbook() *FlipbookViewer { return p.flipbook }
func (p *Page) Region(id string) dom.Region { return p.doc.Region(id) }
func (p *Page) Logger() *zap.Logger { return p.log }

// Carousel returns the testimonial carousel registered under name, or nil.
func (p *Page) Carousel(name string) *TestimonialCarousel {
	return p.carousels[name]
}

// Trigger registers action under id and returns the element option that
// marks a new element as its trigger. Registering an id again replaces the
// previous action.
func (p *Page) Trigger(id string, action func()) dom.Option {
	p.triggers[id] = action
	return dom.Attrs(p.triggerAttributes(id))
}

// BindRegion marks an existing skeleton element as the trigger for action.
func (p *Page) BindRegion(r dom.Region, id string, action func()) {
	if !r.Exists() {
		return
	}
	p.triggers[id] = action
	for _, a := range p.triggerAttributes(id) {
		r.SetAttr(a.Key, a.Val)
	}
}

func (p *Page) bindSelection(sel *goquery.Selection, id string, action func()) {
	p.triggers[id] = action
	for _, a := range p.triggerAttributes(id) {
		sel.SetAttr(a.Key, a.Val)
	}
}

func (p *Page) triggerAttributes(id string) []html.Attribute {
	attrs := []html.Attribute{{Key: triggerAttr, Val: id}}
	if p.triggerAttrs != nil {
		attrs = append(attrs, p.triggerAttrs(id)...)
	}
	return attrs
}

// HasTrigger reports whether id is bound.
func (p *Page) HasTrigger(id string) bool {
	_, ok := p.triggers[id]
	return ok
}

func (p *Page) addCarousel(c *TestimonialCarousel) {
	if _, ok := p.carousels[c.name]; !ok {
		p.order = append(p.order, c.name)
	}
	p.carousels[c.name] = c
}

// Dispatch applies one event and returns the ids of the regions it changed.
//
//	activate(trigger) -> run the bound action
//	keydown(modal)    -> modal key handling (Escape closes)
//	resize(width)     -> every carousel re-evaluates its page size
func (p *Page) Dispatch(ev Event) ([]string, error) {
	switch ev.Kind {
	case EventActivate:
		action, ok := p.triggers[ev.Target]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTrigger, ev.Target)
		}
		action()
	case EventKeyDown:
		p.modals.KeyDown(ev.Target, ev.Key)
	case EventResize:
		p.Resize(ev.Width)
	default:
		return nil, fmt.Errorf("unsupported event %s", ev.Kind)
	}
	return p.doc.TakeDirty(), nil
}

// Resize records the viewport width and lets each carousel react.
func (p *Page) Resize(width int) {
	p.viewport = width
	for _, name := range p.order {
		p.carousels[name].Apply(ui.CarouselEvent{Kind: ui.CarouselResize, Width: width})
	}
}
