// Package ui holds the state machines behind the interactive parts of the
// page. Nothing here touches the DOM; the render package drives these and
// projects their state.
package ui

// Breakpoints for the testimonial carousel.
const (
	DesktopWidth = 1024
	TabletWidth  = 768
)

// PerPage returns how many testimonial cards fit the viewport width.
func PerPage(width int) int {
	switch {
	case width >= DesktopWidth:
		return 6
	case width >= TabletWidth:
		return 4
	default:
		return 1
	}
}

// CarouselEventKind enumerates the inputs a Carousel reacts to.
type CarouselEventKind int

const (
	CarouselNext CarouselEventKind = iota
	CarouselPrev
	CarouselResize
)

type CarouselEvent struct {
	Kind  CarouselEventKind
	Width int // CarouselResize only
}

// Carousel paginates a fixed number of items. The zero value is not usable;
// construct with NewCarousel.
type Carousel struct {
	total   int
	perPage int
	page    int
}

func NewCarousel(total, width int) *Carousel {
	if total < 0 {
		total = 0
	}
	return &Carousel{total: total, perPage: PerPage(width)}
}

func (c *Carousel) Total() int { return c.total }
func (c *Carousel) Page() int { return c.page }
func (c *Carousel) PerPage() int { return c.perPage }

// PageCount is ceil(total/perPage), and at least 1.
func (c *Carousel) PageCount() int {
	n := (c.total + c.perPage - 1) / c.perPage
	if n < 1 {
		return 1
	}
	return n
}

// Window returns the [start, end) item range of the current page.
func (c *Carousel) Window() (int, int) {
	start := c.page * c.perPage
	if start > c.total {
		start = c.total
	}
	end := start + c.perPage
	if end > c.total {
		end = c.total
	}
	return start, end
}

func (c *Carousel) Next() {
	c.page = (c.page + 1) % c.PageCount()
}

func (c *Carousel) Prev() {
	n := c.PageCount()
	c.page = (c.page - 1 + n) % n
}

// Resize recomputes perPage for width. It reports whether perPage changed,
// in which case the carousel is back on the first page.
func (c *Carousel) Resize(width int) bool {
	per := PerPage(width)
	if per == c.perPage {
		return false
	}
	c.perPage = per
	c.page = 0
	return true
}

// Apply runs one event through the transition table and reports whether the
// visible page must be rendered again.
//
//	next   -> page+1 mod pages, render
//	prev   -> page-1 mod pages, render
//	resize -> perPage changed ? page=0, render : nothing
func (c *Carousel) Apply(ev CarouselEvent) bool {
	switch ev.Kind {
	case CarouselNext:
		c.Next()
		return true
	case CarouselPrev:
		c.Prev()
		return true
	case CarouselResize:
		return c.Resize(ev.Width)
	default:
		return false
	}
}
