package ui

import "sort"

// EscapeKey is the key name that dismisses an open modal.
const EscapeKey = "Escape"

type ModalEventKind int

const (
	ModalOpen ModalEventKind = iota
	ModalClose
	ModalCloseTrigger
	ModalKeyDown
)

type ModalEvent struct {
	Kind ModalEventKind
	Key  string // ModalKeyDown only
}

// Modal is the open/closed state of one overlay surface. The zero value is a
// closed modal.
type Modal struct {
	open bool
}

func (m *Modal) IsOpen() bool { return m.open }

func (m *Modal) Open()  { m.open = true }
func (m *Modal) Close() { m.open = false }

// Apply runs one event through the transition table and reports whether the
// modal's visibility must be written out.
//
//	open          -> open, write
//	close         -> closed, write
//	close-trigger -> closed, write
//	keydown Esc   -> closed, write (only while open)
//	keydown other -> nothing
//
// Explicit open and close calls always report true so the page mirrors the
// state even when it did not change.
func (m *Modal) Apply(ev ModalEvent) bool {
	switch ev.Kind {
	case ModalOpen:
		m.Open()
		return true
	case ModalClose, ModalCloseTrigger:
		m.Close()
		return true
	case ModalKeyDown:
		if ev.Key != EscapeKey || !m.open {
			return false
		}
		m.Close()
		return true
	default:
		return false
	}
}

// ModalSet owns a group of named modals that never show at the same time:
// opening one closes every other open modal in the set.
type ModalSet struct {
	modals map[string]*Modal
}

func NewModalSet(names ...string) *ModalSet {
	s := &ModalSet{modals: make(map[string]*Modal, len(names))}
	for _, n := range names {
		s.modals[n] = &Modal{}
	}
	return s
}

// Get returns the named modal, adding it closed when unknown.
func (s *ModalSet) Get(name string) *Modal {
	m, ok := s.modals[name]
	if !ok {
		m = &Modal{}
		s.modals[name] = m
	}
	return m
}

// Open opens name and closes the others. It returns every modal whose state
// must be written out: the ones it closed, then name itself.
func (s *ModalSet) Open(name string) []string {
	var changed []string
	for _, other := range s.Names() {
		if other == name {
			continue
		}
		if m := s.modals[other]; m.IsOpen() {
			m.Close()
			changed = append(changed, other)
		}
	}
	s.Get(name).Apply(ModalEvent{Kind: ModalOpen})
	return append(changed, name)
}

// Apply forwards a non-open event to the named modal.
func (s *ModalSet) Apply(name string, ev ModalEvent) bool {
	if ev.Kind == ModalOpen {
		s.Open(name)
		return true
	}
	return s.Get(name).Apply(ev)
}

// OpenNames lists the open modals in name order.
func (s *ModalSet) OpenNames() []string {
	var out []string
	for _, n := range s.Names() {
		if s.modals[n].IsOpen() {
			out = append(out, n)
		}
	}
	return out
}

func (s *ModalSet) Names() []string {
	out := make([]string, 0, len(s.modals))
	for n := range s.modals {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
