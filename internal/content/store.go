package content

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Geet-manik/LearnTreeEdu/internal/model"
)

// Store keeps the most recently loaded document for a source. A failed
// reload keeps serving the previous document and remembers the error.
//
// It can safely be used by multiple goroutines.
type Store struct {
	source string
	log    *zap.Logger

	mu      sync.RWMutex
	doc     *model.ContentDocument
	lastErr error
}

func NewStore(source string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{source: source, log: log}
}

func (s *Store) Source() string {
	return s.source
}

// Reload loads the source again and swaps it in on success.
func (s *Store) Reload(ctx context.Context) error {
	doc, err := Load(ctx, s.source)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = err
	if err != nil {
		s.log.Error("content reload failed", zap.String("source", s.source), zap.Error(err))
		return err
	}
	s.doc = doc
	s.log.Info("content loaded", zap.String("source", s.source))
	return nil
}

// Document returns the current document. It returns the last load error when
// no document has ever been loaded.
func (s *Store) Document() (*model.ContentDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		if s.lastErr != nil {
			return nil, s.lastErr
		}
		return nil, ErrLoad
	}
	return s.doc, nil
}

// Err returns the error from the latest load attempt, if any.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
