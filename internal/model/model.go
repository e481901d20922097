package model

// ContentDocument is the parsed content source for the whole page. Every
// section is optional; a nil section renders nothing.
type ContentDocument struct {
	Site         *Site         `json:"site,omitempty" yaml:"site,omitempty"`
	About        *About        `json:"about,omitempty" yaml:"about,omitempty"`
	Workshops    *Workshops    `json:"workshops,omitempty" yaml:"workshops,omitempty"`
	Books        *Books        `json:"books,omitempty" yaml:"books,omitempty"`
	Testimonials *Testimonials `json:"testimonials,omitempty" yaml:"testimonials,omitempty"`
	Gallery      *Gallery      `json:"gallery,omitempty" yaml:"gallery,omitempty"`
	Links        *Links        `json:"links,omitempty" yaml:"links,omitempty"`
	Papers       *Papers       `json:"papers,omitempty" yaml:"papers,omitempty"`
	Footer       *Footer       `json:"footer,omitempty" yaml:"footer,omitempty"`
	Flipbooks    *Flipbooks    `json:"flipbooks,omitempty" yaml:"flipbooks,omitempty"`
}

// Site holds brand and hero copy plus the navigation menu.
type Site struct {
	Name           string    `json:"name" yaml:"name"`
	Tagline        string    `json:"tagline" yaml:"tagline"`
	HeroTitle      string    `json:"heroTitle" yaml:"heroTitle"`
	HeroSubtitle   string    `json:"heroSubtitle" yaml:"heroSubtitle"`
	HeroHighlights []string  `json:"heroHighlights,omitempty" yaml:"heroHighlights,omitempty"`
	NavItems       []NavItem `json:"navItems,omitempty" yaml:"navItems,omitempty"`
}

type NavItem struct {
	Label  string `json:"label" yaml:"label"`
	Target string `json:"target" yaml:"target"`
}

type About struct {
	Subtitle   string   `json:"subtitle" yaml:"subtitle"`
	Paragraphs []string `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	Author     *Author  `json:"author,omitempty" yaml:"author,omitempty"`
}

type Author struct {
	Name     string    `json:"name" yaml:"name"`
	Role     string    `json:"role" yaml:"role"`
	Note     string    `json:"note" yaml:"note"`
	Contacts []Contact `json:"contacts,omitempty" yaml:"contacts,omitempty"`
}

type Contact struct {
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

type Workshops struct {
	Subtitle string     `json:"subtitle" yaml:"subtitle"`
	Items    []Workshop `json:"items,omitempty" yaml:"items,omitempty"`
}

type Workshop struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	DateLabel   string   `json:"dateLabel" yaml:"dateLabel"`
	Location    string   `json:"location" yaml:"location"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
	Caption     string   `json:"caption,omitempty" yaml:"caption,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

type Testimonials struct {
	BooksTitle    string        `json:"booksTitle" yaml:"booksTitle"`
	BooksSubtitle string        `json:"booksSubtitle" yaml:"booksSubtitle"`
	BooksItems    []Testimonial `json:"booksItems,omitempty" yaml:"booksItems,omitempty"`
	OTQTitle      string        `json:"otqTitle" yaml:"otqTitle"`
	OTQSubtitle   string        `json:"otqSubtitle" yaml:"otqSubtitle"`
	OTQItems      []Testimonial `json:"otqItems,omitempty" yaml:"otqItems,omitempty"`
}

type Testimonial struct {
	Message string `json:"message" yaml:"message"`
	Name    string `json:"name" yaml:"name"`
	Role    string `json:"role" yaml:"role"`
}

type Gallery struct {
	Subtitle string        `json:"subtitle" yaml:"subtitle"`
	Items    []GalleryItem `json:"items,omitempty" yaml:"items,omitempty"`
}

type GalleryItem struct {
	Title   string `json:"title" yaml:"title"`
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Image   string `json:"image" yaml:"image"`
}

type Links struct {
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Items    []Link `json:"items,omitempty" yaml:"items,omitempty"`
}

type Link struct {
	Type  string `json:"type" yaml:"type"`
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Papers lists downloadable question papers.
type Papers struct {
	Subtitle string  `json:"subtitle" yaml:"subtitle"`
	Items    []Paper `json:"items,omitempty" yaml:"items,omitempty"`
}

type Paper struct {
	Title       string `json:"title" yaml:"title"`
	Subject     string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Year        string `json:"year,omitempty" yaml:"year,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
}

type Footer struct {
	Address string `json:"address" yaml:"address"`
	Phone   string `json:"phone" yaml:"phone"`
	Email   string `json:"email" yaml:"email"`
}
