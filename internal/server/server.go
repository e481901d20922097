// Package server serves live pages: each visitor gets a rendered page whose
// triggers post events back, and every response carries the regions the
// event changed as out-of-band fragments.
package server

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/Geet-manik/LearnTreeEdu/internal/layout"
	"github.com/Geet-manik/LearnTreeEdu/internal/model"
	"github.com/Geet-manik/LearnTreeEdu/internal/render"
)

const (
	SessionCookie = "learntree_session"
	EventsPath    = "/events"

	// LoadFailureNotice replaces the page when the content document cannot
	// be loaded.
	LoadFailureNotice = "There was a problem loading the website content. Please try again."
)

var tracer = otel.Tracer("github.com/Geet-manik/LearnTreeEdu/internal/server")

// DocumentSource supplies the current content document.
type DocumentSource interface {
	Document() (*model.ContentDocument, error)
}

// Options are the page settings applied to every new session.
type Options struct {
	SiteTitle     string
	BaseURL       string
	Lang          string
	HeroBookID    string
	ViewportWidth int
	StaticDir     string
	SessionTTL    time.Duration
}

type Server struct {
	opts     Options
	docs     DocumentSource
	skeleton atomic.Pointer[layout.Skeleton]
	pipeline *render.Pipeline
	sessions *Sessions
	log      *zap.Logger
}

func New(opts Options, docs DocumentSource, skeleton *layout.Skeleton, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		opts:     opts,
		docs:     docs,
		pipeline: render.NewPipeline(log),
		sessions: NewSessions(opts.SessionTTL, nil),
		log:      log,
	}
	s.skeleton.Store(skeleton)
	return s
}

// SetSkeleton swaps the layout used for pages created from now on.
func (s *Server) SetSkeleton(sk *layout.Skeleton) {
	s.skeleton.Store(sk)
}

func (s *Server) Sessions() *Sessions { return s.sessions }

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(HTMX)
	r.Use(RequestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if s.opts.StaticDir != "" {
		assets := http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(s.opts.StaticDir, "assets"))))
		r.Handle("/assets/*", assets)
	}

	r.Get("/", s.handleIndex)
	r.Route(EventsPath, func(r chi.Router) {
		r.Post("/activate/{trigger}", s.handleActivate)
		r.Post("/keydown/{modal}", s.handleKeyDown)
		r.Post("/resize", s.handleResize)
	})
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.Document()
	if err != nil {
		s.log.Error("content unavailable", zap.Error(err))
		s.writeNotice(w)
		return
	}

	page, err := s.newPage(r.Context(), doc)
	if err != nil {
		s.log.Error("page build failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	out, err := page.Document().HTML()
	if err != nil {
		s.log.Error("page write failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id := s.sessions.Add(page)
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(out))
}

func (s *Server) newPage(ctx context.Context, doc *model.ContentDocument) (*render.Page, error) {
	pageDoc, err := s.skeleton.Load().Page(layout.PageData{
		SiteTitle:  s.opts.SiteTitle,
		BaseURL:    s.opts.BaseURL,
		Lang:       s.opts.Lang,
		Live:       true,
		EventsPath: EventsPath,
	})
	if err != nil {
		return nil, err
	}
	page := render.NewPage(pageDoc,
		render.WithLogger(s.log),
		render.WithHeroBook(s.opts.HeroBookID),
		render.WithViewport(s.opts.ViewportWidth),
		render.WithTriggerAttrs(triggerAttrs),
	)
	if err := s.pipeline.Run(ctx, page, doc); err != nil {
		// section failures leave the rest of the page usable
		s.log.Warn("page rendered with errors", zap.Error(err))
	}
	return page, nil
}

// triggerAttrs makes a bound element post its activation back to the page.
func triggerAttrs(id string) []html.Attribute {
	return []html.Attribute{
		{Key: "hx-post", Val: EventsPath + "/activate/" + id},
		{Key: "hx-swap", Val: "none"},
	}
}

func (s *Server) handleActivate(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, render.Event{Kind: render.EventActivate, Target: chi.URLParam(r, "trigger")})
}

func (s *Server) handleKeyDown(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, render.Event{
		Kind:   render.EventKeyDown,
		Target: chi.URLParam(r, "modal"),
		Key:    r.FormValue("key"),
	})
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	width, err := strconv.Atoi(strings.TrimSpace(r.FormValue("width")))
	if err != nil || width <= 0 {
		http.Error(w, "invalid width", http.StatusBadRequest)
		return
	}
	s.dispatch(w, r, render.Event{Kind: render.EventResize, Width: width})
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, ev render.Event) {
	_, span := tracer.Start(r.Context(), "server.dispatch")
	defer span.End()
	span.SetAttributes(
		attribute.String("event.kind", ev.Kind.String()),
		attribute.String("event.target", ev.Target),
	)

	var body string
	err := s.sessions.Do(sessionID(r), func(p *render.Page) error {
		dirty, err := p.Dispatch(ev)
		if err != nil {
			return err
		}
		body, err = p.Document().Fragments(dirty)
		return err
	})

	switch {
	case errors.Is(err, ErrNoSession):
		// the page is gone; have htmx load a fresh one
		w.Header().Set("HX-Refresh", "true")
		http.Error(w, err.Error(), http.StatusGone)
		return
	case errors.Is(err, render.ErrUnknownTrigger):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.Error("event failed", zap.String("kind", ev.Kind.String()), zap.String("target", ev.Target), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if body == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(body))
}

func sessionID(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

var noticePage = template.Must(template.New("notice").Parse(`<!DOCTYPE html>
<html lang="{{ .Lang }}">
<head><meta charset="utf-8"><title>{{ .Title }}</title></head>
<body><p class="load-error">{{ .Notice }}</p></body>
</html>
`))

func (s *Server) writeNotice(w http.ResponseWriter) {
	lang := s.opts.Lang
	if lang == "" {
		lang = "en"
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusServiceUnavailable)
	_ = noticePage.Execute(w, struct{ Lang, Title, Notice string }{lang, s.opts.SiteTitle, LoadFailureNotice})
}
