package ui

type FlipbookEventKind int

const (
	FlipbookNext FlipbookEventKind = iota
	FlipbookPrev
	FlipbookReset
)

type FlipbookEvent struct {
	Kind FlipbookEventKind
}

// Flipbook is a cursor over an ordered list of pages that stops at both ends.
type Flipbook struct {
	pages        int
	index        int
	previewLimit int
}

func NewFlipbook(pages, previewLimit int) *Flipbook {
	if pages < 0 {
		pages = 0
	}
	return &Flipbook{pages: pages, previewLimit: previewLimit}
}

func (f *Flipbook) Index() int { return f.index }
func (f *Flipbook) Pages() int { return f.pages }
func (f *Flipbook) PreviewLimit() int { return f.previewLimit }

// Next moves forward unless already on the last page.
func (f *Flipbook) Next() bool {
	if f.index >= f.pages-1 {
		return false
	}
	f.index++
	return true
}

// Prev moves back unless already on the first page.
func (f *Flipbook) Prev() bool {
	if f.index <= 0 {
		return false
	}
	f.index--
	return true
}

func (f *Flipbook) Reset() {
	f.index = 0
}

// Gated reports whether the purchase prompt covers the current page: from the
// last free page of the preview onwards.
func (f *Flipbook) Gated() bool {
	return f.index >= f.previewLimit-1
}

// Apply runs one event through the transition table and reports whether the
// viewer must be rendered again.
//
//	next  -> index+1 unless last, render when moved
//	prev  -> index-1 unless first, render when moved
//	reset -> index=0, render
func (f *Flipbook) Apply(ev FlipbookEvent) bool {
	switch ev.Kind {
	case FlipbookNext:
		return f.Next()
	case FlipbookPrev:
		return f.Prev()
	case FlipbookReset:
		f.Reset()
		return true
	default:
		return false
	}
}
