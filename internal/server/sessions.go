package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Geet-manik/LearnTreeEdu/internal/render"
)

// ErrNoSession is returned for an event whose session has no live page,
// either because it never existed or because it expired.
var ErrNoSession = errors.New("no live page for session")

const DefaultSessionTTL = 30 * time.Minute

type session struct {
	mu   sync.Mutex
	page *render.Page
	seen time.Time
}

// Sessions holds one live page per browser session. Events for a session are
// applied one at a time.
type Sessions struct {
	ttl time.Duration
	now func() time.Time

	mu   sync.Mutex
	byID map[string]*session
}

func NewSessions(ttl time.Duration, now func() time.Time) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Sessions{ttl: ttl, now: now, byID: map[string]*session{}}
}

// Add stores page under a new session id.
func (s *Sessions) Add(page *render.Page) string {
	id := ulid.Make().String()
	s.mu.Lock()
	s.byID[id] = &session{page: page, seen: s.now()}
	s.mu.Unlock()
	return id
}

// Do runs fn against the session's page while holding that page's lock.
func (s *Sessions) Do(id string, fn func(p *render.Page) error) error {
	s.mu.Lock()
	sess, ok := s.byID[id]
	if ok && s.expired(sess) {
		delete(s.byID, id)
		ok = false
	}
	if ok {
		sess.seen = s.now()
	}
	s.mu.Unlock()
	if !ok {
		return ErrNoSession
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess.page)
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// Sweep drops expired sessions and reports how many went.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.byID {
		if s.expired(sess) {
			delete(s.byID, id)
			n++
		}
	}
	return n
}

func (s *Sessions) expired(sess *session) bool {
	return s.now().Sub(sess.seen) > s.ttl
}

// Run sweeps every interval until ctx is done.
func (s *Sessions) Run(ctx context.Context, interval time.Duration, onSweep func(n int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
