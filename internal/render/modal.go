package render

import (
	"github.com/Geet-manik/LearnTreeEdu/internal/dom"
	"github.com/Geet-manik/LearnTreeEdu/internal/ui"
)

const openClass = "is-open"

// ModalController projects a ui.ModalSet onto the modal elements of the
// page: an open modal carries the is-open class and aria-hidden="false".
type ModalController struct {
	doc *dom.Document
	set *ui.ModalSet
}

func NewModalController(doc *dom.Document, names ...string) *ModalController {
	return &ModalController{doc: doc, set: ui.NewModalSet(names...)}
}

// Open shows the modal with the given element id and hides any other open
// modal.
func (m *ModalController) Open(id string) {
	for _, changed := range m.set.Open(id) {
		m.write(changed)
	}
}

func (m *ModalController) Close(id string) {
	if m.set.Apply(id, ui.ModalEvent{Kind: ui.ModalClose}) {
		m.write(id)
	}
}

// KeyDown handles a key pressed while focus is inside the modal.
func (m *ModalController) KeyDown(id, key string) {
	if m.set.Apply(id, ui.ModalEvent{Kind: ui.ModalKeyDown, Key: key}) {
		m.write(id)
	}
}

func (m *ModalController) IsOpen(id string) bool {
	return m.set.Get(id).IsOpen()
}

func (m *ModalController) write(id string) {
	r := m.doc.Region(id)
	if m.set.Get(id).IsOpen() {
		r.AddClass(openClass).SetAttr("aria-hidden", "false")
		return
	}
	r.RemoveClass(openClass).SetAttr("aria-hidden", "true")
}
