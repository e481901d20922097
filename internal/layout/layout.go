// Package layout produces the page skeleton the renderers write into: the
// fixed markup with every mount point, modal container and control.
package layout

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/Geet-manik/LearnTreeEdu/internal/dom"
)

// BaseLayout is the template executed to produce a page.
const BaseLayout = "base.html"

//go:embed templates/*.html
var embedded embed.FS

// PageData is what the skeleton template sees.
type PageData struct {
	SiteTitle  string
	BaseURL    string
	Lang       string
	Live       bool   // include the event wiring used by serve
	EventsPath string // prefix of the event endpoints when Live
}

// Skeleton is a parsed layout ready to stamp out fresh pages.
type Skeleton struct {
	tmpl   *template.Template
	source string
}

// Load parses <layoutsDir>/base.html plus any partials under
// <layoutsDir>/partials. Without a base.html on disk the embedded default
// layout is used.
func Load(layoutsDir string) (*Skeleton, error) {
	if layoutsDir == "" {
		return Default()
	}
	base := filepath.Join(layoutsDir, BaseLayout)
	if _, err := os.Stat(base); os.IsNotExist(err) {
		return Default()
	}

	files := []string{base}
	partials, err := filepath.Glob(filepath.Join(layoutsDir, "partials", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("find partials in '%s': %w", layoutsDir, err)
	}
	files = append(files, partials...)

	tmpl, err := template.ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("parse layout files: %w", err)
	}
	return &Skeleton{tmpl: tmpl, source: base}, nil
}

// Default returns the layout compiled into the binary.
func Default() (*Skeleton, error) {
	tmpl, err := template.ParseFS(embedded, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse embedded layout: %w", err)
	}
	return &Skeleton{tmpl: tmpl, source: "embedded"}, nil
}

// Source names where the layout came from, for logs.
func (s *Skeleton) Source() string {
	return s.source
}

// Page executes the skeleton and parses the result into a fresh document.
func (s *Skeleton) Page(data PageData) (*dom.Document, error) {
	if strings.TrimSpace(data.Lang) == "" {
		data.Lang = "en"
	}
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, BaseLayout, data); err != nil {
		return nil, fmt.Errorf("execute layout '%s': %w", BaseLayout, err)
	}
	return dom.Parse(&buf)
}
