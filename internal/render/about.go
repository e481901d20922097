package render

import (
	"github.com/Geet-manik/LearnTreeEdu/internal/dom"
	"github.com/Geet-manik/LearnTreeEdu/internal/model"
)

func RenderAbout(p *Page, about *model.About) {
	if about == nil {
		return
	}
	p.Region("about-subtitle").SetText(about.Subtitle)

	text := p.Region("about-text").Clear()
	for _, para := range about.Paragraphs {
		text.Append(dom.El("p", dom.Text(para)))
	}

	contacts := p.Region("contact-list").Clear()
	author := about.Author
	if author == nil {
		return
	}
	p.Region("author-name").SetText(author.Name)
	p.Region("author-role").SetText(author.Role)
	p.Region("author-note").SetText(author.Note)
	for _, c := range author.Contacts {
		contacts.Append(dom.El("li", dom.Text(c.Type+": "+c.Value)))
	}
}
