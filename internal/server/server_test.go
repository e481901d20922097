package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Geet-manik/LearnTreeEdu/internal/content"
	"github.com/Geet-manik/LearnTreeEdu/internal/layout"
	"github.com/Geet-manik/LearnTreeEdu/internal/model"
)

type staticSource struct {
	doc *model.ContentDocument
	err error
}

func (s staticSource) Document() (*model.ContentDocument, error) { return s.doc, s.err }

func testDocument() *model.ContentDocument {
	items := make([]model.Testimonial, 8)
	for i := range items {
		items[i] = model.Testimonial{Message: fmt.Sprintf("Review %d", i+1), Name: fmt.Sprintf("Student %d", i+1)}
	}
	return &model.ContentDocument{
		Site: &model.Site{Name: "LearnTree"},
		Books: &model.Books{Items: []model.Book{{
			ID:         "bst12-otq",
			Title:      "Business Studies OTQ",
			Edition:    "2026 Edition",
			Class:      "Class XII",
			BuyOptions: []model.BuyOption{{Type: "messaging-link", Label: "WhatsApp", Number: "9110000000"}},
		}}},
		Testimonials: &model.Testimonials{BooksItems: items},
	}
}

func newTestServer(t *testing.T, src DocumentSource) (*Server, http.Handler) {
	t.Helper()
	sk, err := layout.Default()
	require.NoError(t, err)
	s := New(Options{SiteTitle: "LearnTree", ViewportWidth: 1280}, src, sk, nil)
	return s, s.Handler()
}

func get(t *testing.T, h http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func post(h http.Handler, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	t.Fatalf("no %s cookie set", SessionCookie)
	return nil
}

func TestHealthz(t *testing.T) {
	_, h := newTestServer(t, staticSource{doc: testDocument()})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestIndexRendersLivePage(t *testing.T) {
	s, h := newTestServer(t, staticSource{doc: testDocument()})
	rec := get(t, h)
	require.Equal(t, http.StatusOK, rec.Code)
	sessionCookie(t, rec)
	assert.Equal(t, 1, s.Sessions().Len())

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "Business Studies OTQ", doc.Find("#hero-book-title").Text())

	details := doc.Find(`[data-trigger="books.0.details"]`)
	require.Equal(t, 1, details.Length())
	action, _ := details.Attr("hx-post")
	assert.Equal(t, "/events/activate/books.0.details", action)

	resize, _ := doc.Find("body").Attr("hx-post")
	assert.Equal(t, "/events/resize", resize)
	assert.Equal(t, 6, doc.Find("#testimonial-track-books .testimonial-card").Length())
}

func TestIndexLoadFailure(t *testing.T) {
	s, h := newTestServer(t, staticSource{err: errors.New("boom")})
	rec := get(t, h)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, LoadFailureNotice, doc.Find("body").Text())
	assert.Equal(t, 0, doc.Find("#books-list").Length())
	assert.Equal(t, 0, s.Sessions().Len())
}

func TestIndexFromStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	store := content.NewStore(path, nil)
	_, h := newTestServer(t, store)

	assert.Equal(t, http.StatusServiceUnavailable, get(t, h).Code)

	require.NoError(t, os.WriteFile(path, []byte(`{"site": {"name": "LearnTree"}}`), 0o644))
	require.NoError(t, store.Reload(context.Background()))
	assert.Equal(t, http.StatusOK, get(t, h).Code)
}

func TestActivateReturnsFragments(t *testing.T) {
	_, h := newTestServer(t, staticSource{doc: testDocument()})
	cookie := sessionCookie(t, get(t, h))

	rec := post(h, "/events/activate/books.0.details", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	modal := doc.Find("#book-modal")
	require.Equal(t, 1, modal.Length())
	oob, _ := modal.Attr("hx-swap-oob")
	assert.Equal(t, "true", oob)
	assert.True(t, modal.HasClass("is-open"))

	assert.Equal(t, 1, doc.Find("[hx-swap-oob]").Length(), "content is sent inside the modal")
	href, _ := doc.Find("#book-modal-content .book-modal-actions a").Attr("href")
	assert.Contains(t, href, "wa.me/9110000000")
}

func TestKeyDown(t *testing.T) {
	_, h := newTestServer(t, staticSource{doc: testDocument()})
	cookie := sessionCookie(t, get(t, h))

	rec := post(h, "/events/keydown/book-modal", url.Values{"key": {"Escape"}}, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code, "escape on a closed modal changes nothing")

	post(h, "/events/activate/hero.book", nil, cookie)
	rec = post(h, "/events/keydown/book-modal", url.Values{"key": {"Escape"}}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	hidden, _ := doc.Find("#book-modal").Attr("aria-hidden")
	assert.Equal(t, "true", hidden)
}

func TestResize(t *testing.T) {
	_, h := newTestServer(t, staticSource{doc: testDocument()})
	cookie := sessionCookie(t, get(t, h))

	assert.Equal(t, http.StatusBadRequest, post(h, "/events/resize", url.Values{"width": {"wide"}}, cookie).Code)

	rec := post(h, "/events/resize", url.Values{"width": {"900"}}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 4, doc.Find("#testimonial-track-books .testimonial-card").Length())

	rec = post(h, "/events/resize", url.Values{"width": {"800"}}, cookie)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestEventErrors(t *testing.T) {
	_, h := newTestServer(t, staticSource{doc: testDocument()})
	cookie := sessionCookie(t, get(t, h))

	rec := post(h, "/events/activate/books.9.details", nil, cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = post(h, "/events/activate/books.0.details", nil, nil)
	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))

	rec = post(h, "/events/activate/books.0.details", nil, &http.Cookie{Name: SessionCookie, Value: "stale"})
	assert.Equal(t, http.StatusGone, rec.Code)
}

func TestSessionsAreIsolated(t *testing.T) {
	_, h := newTestServer(t, staticSource{doc: testDocument()})
	first := sessionCookie(t, get(t, h))
	second := sessionCookie(t, get(t, h))
	require.NotEqual(t, first.Value, second.Value)

	post(h, "/events/activate/hero.book", nil, first)
	rec := post(h, "/events/keydown/book-modal", url.Values{"key": {"Escape"}}, second)
	assert.Equal(t, http.StatusNoContent, rec.Code, "second page never opened the modal")
}
