package render

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Geet-manik/LearnTreeEdu/internal/dom"
	"github.com/Geet-manik/LearnTreeEdu/internal/model"
)

const mainNav = "main-nav"

// RenderSiteMeta fills the brand, hero copy and navigation menu.
func RenderSiteMeta(p *Page, site *model.Site) {
	if site == nil {
		return
	}
	p.Region("brand-name").SetText(site.Name)
	p.Region("brand-tagline").SetText(site.Tagline)
	p.Region("hero-title").SetText(site.HeroTitle)
	p.Region("hero-subtitle").SetText(site.HeroSubtitle)

	highlights := p.Region("hero-highlights").Clear()
	for _, item := range site.HeroHighlights {
		highlights.Append(dom.El("li", dom.Text(item)))
	}

	nav := p.Region("nav-links").Clear()
	for i, item := range site.NavItems {
		anchor := dom.El("a",
			dom.Attr("href", "#"+item.Target),
			dom.Text(navLabel(item)),
			p.Trigger("nav."+strconv.Itoa(i), p.CloseMobileNav),
		)
		nav.Append(dom.El("li", dom.Children(anchor)))
	}
}

func navLabel(item model.NavItem) string {
	if item.Label != "" {
		return item.Label
	}
	words := strings.NewReplacer("-", " ", "_", " ").Replace(item.Target)
	return cases.Title(language.English).String(words)
}

// ToggleMobileNav opens or closes the collapsed navigation menu.
func (p *Page) ToggleMobileNav() {
	p.Region(mainNav).ToggleClass(openClass)
}

func (p *Page) CloseMobileNav() {
	p.Region(mainNav).RemoveClass(openClass)
}
