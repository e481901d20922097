package render

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Geet-manik/LearnTreeEdu/internal/layout"
	"github.com/Geet-manik/LearnTreeEdu/internal/model"
)

var fixedNow = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }

func newTestPage(t *testing.T, opts ...Option) *Page {
	t.Helper()
	sk, err := layout.Default()
	require.NoError(t, err)
	doc, err := sk.Page(layout.PageData{SiteTitle: "LearnTree"})
	require.NoError(t, err)
	return NewPage(doc, append([]Option{WithClock(fixedNow)}, opts...)...)
}

func renderFixture(t *testing.T, doc *model.ContentDocument, opts ...Option) *Page {
	t.Helper()
	p := newTestPage(t, opts...)
	require.NoError(t, NewPipeline(nil).Run(context.Background(), p, doc))
	return p
}

func testimonials(n int) []model.Testimonial {
	out := make([]model.Testimonial, n)
	for i := range out {
		out[i] = model.Testimonial{
			Message: "Great book " + string(rune('A'+i)),
			Name:    "Student " + string(rune('A'+i)),
			Role:    "Class XII",
		}
	}
	return out
}

func fixtureDocument() *model.ContentDocument {
	return &model.ContentDocument{
		Site: &model.Site{
			Name:           "LearnTree",
			Tagline:        "Commerce made simple",
			HeroTitle:      "Crack your boards",
			HeroSubtitle:   "Books and workshops for Class XI and XII",
			HeroHighlights: []string{"Chapter-wise OTQs", "Case studies"},
			NavItems: []model.NavItem{
				{Label: "About", Target: "about"},
				{Target: "question-papers"},
			},
		},
		About: &model.About{
			Subtitle:   "Teaching since 2009",
			Paragraphs: []string{"First paragraph.", "Second <b>paragraph</b>."},
			Author: &model.Author{
				Name: "R. Mehta",
				Role: "Author",
				Note: "Visiting faculty",
				Contacts: []model.Contact{
					{Type: "Phone", Value: "+91 91100 00000"},
				},
			},
		},
		Workshops: &model.Workshops{
			Subtitle: "Hands-on sessions",
			Items: []model.Workshop{
				{Title: "Case Study Lab", Description: "Solve real cases", DateLabel: "May 2026", Location: "Pune", Image: "assets/img/lab.jpg", Tags: []string{"BST", "XII"}},
				{Title: "Revision Sprint", Description: "Two-day revision", DateLabel: "Jan 2026", Location: "Online"},
			},
		},
		Books: &model.Books{
			Subtitle: "Our titles",
			Items: []model.Book{
				{
					ID:            "bst12-otq",
					Title:         "Business Studies OTQ",
					Edition:       "2026 Edition",
					Class:         "Class XII",
					CoverImage:    "assets/img/bst-front.jpg",
					BackImage:     "assets/img/bst-back.jpg",
					QuestionCount: 1200,
					Price:         "499",
					Currency:      "INR",
					SuitableFor:   []string{"CBSE", "ISC", "State boards", "Olympiads"},
					Description:   []string{"Objective questions for every chapter."},
					Features: []model.Feature{
						{Text: "Latest syllabus"},
						{Title: "Case studies", Text: "with solutions"},
					},
					Bullets:      []string{"Short, focused practice"},
					Contributors: []string{"**Dr. A. Rao**, reviewer"},
					BuyOptions: []model.BuyOption{
						{Type: "external-link", URL: "https://x", Label: "Buy"},
						{Type: "messaging-link", Number: "9110000000", Label: "WhatsApp"},
					},
				},
				{
					ID:         "acc11",
					Title:      "Accountancy XI",
					Edition:    "2025 Edition",
					Class:      "Class XI",
					CoverImage: "assets/img/acc.jpg",
					BuyOptions: []model.BuyOption{
						{Type: "carrier-pigeon", Label: "Coming soon"},
					},
				},
			},
		},
		Testimonials: &model.Testimonials{
			BooksTitle:    "Readers say",
			BooksSubtitle: "From students",
			BooksItems:    testimonials(13),
			OTQTitle:      "OTQ results",
			OTQSubtitle:   "From teachers",
			OTQItems:      testimonials(2),
		},
		Flipbooks: &model.Flipbooks{
			Subtitle: "Flip through a chapter",
			Items: []model.Flipbook{
				{
					ID:             "bst-sample",
					Title:          "Business Studies OTQ",
					Pages:          []string{"p1.jpg", "p2.jpg", "p3.jpg", "p4.jpg", "p5.jpg"},
					PreviewLimit:   3,
					BuyURL:         "https://shop.example/bst",
					WhatsAppNumber: "9110000000",
				},
			},
		},
		Gallery: &model.Gallery{
			Subtitle: "Moments",
			Items:    []model.GalleryItem{{Title: "Launch", Caption: "Book launch 2025", Image: "assets/img/launch.jpg"}},
		},
		Links: &model.Links{
			Subtitle: "Find us",
			Items: []model.Link{
				{Type: "YouTube", Label: "Channel", URL: "https://youtube.example/learntree"},
				{Type: "Notes", Label: "Notes", URL: "#papers"},
			},
		},
		Footer: &model.Footer{Address: "12 MG Road, Pune", Phone: "+91 91100 00000", Email: "hello@learntree.example"},
		Papers: &model.Papers{
			Subtitle: "Past papers",
			Items: []model.Paper{
				{Title: "BST 2025", Subject: "Business Studies", Year: "2025", URL: "assets/papers/bst-2025.pdf"},
				{Title: "Accounts 2024 (coming soon)"},
			},
		},
	}
}
