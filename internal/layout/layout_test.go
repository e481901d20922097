package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPageHasMountPoints(t *testing.T) {
	sk, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "embedded", sk.Source())

	doc, err := sk.Page(PageData{SiteTitle: "LearnTree"})
	require.NoError(t, err)

	for _, id := range []string{"nav-links", "books-list", "testimonial-track-books", "book-modal", "lightbox-modal", "flipbook-modal", "year"} {
		assert.Equal(t, 1, doc.Find("#"+id).Length(), id)
	}
	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "en", lang)
	assert.Equal(t, 0, doc.Find("script").Length(), "static pages carry no script")
	_, live := doc.Find("body").Attr("hx-post")
	assert.False(t, live)
}

func TestLivePageWiresEvents(t *testing.T) {
	sk, err := Default()
	require.NoError(t, err)

	doc, err := sk.Page(PageData{SiteTitle: "LearnTree", Live: true, EventsPath: "/events"})
	require.NoError(t, err)

	post, _ := doc.Find("body").Attr("hx-post")
	assert.Equal(t, "/events/resize", post)
	post, _ = doc.Find("#book-modal").Attr("hx-post")
	assert.Equal(t, "/events/keydown/book-modal", post)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	sk, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "embedded", sk.Source())
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "partials"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "partials", "brand.html"),
		[]byte(`{{ define "brand" }}<span id="brand-name"></span>{{ end }}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, BaseLayout),
		[]byte(`<html lang="{{ .Lang }}"><body>{{ template "brand" . }}<h1>{{ .SiteTitle }}</h1></body></html>`), 0o644))

	sk, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, BaseLayout), sk.Source())

	doc, err := sk.Page(PageData{SiteTitle: "Custom", Lang: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Custom", doc.Find("h1").Text())
	assert.Equal(t, 1, doc.Find("#brand-name").Length())
	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "hi", lang)
}

func TestLoadRejectsBrokenTemplate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, BaseLayout), []byte(`{{ .SiteTitle `), 0o644))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "parse layout files")
}
