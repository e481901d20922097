// Package watch reports debounced file changes under a set of roots,
// filtered by doublestar patterns.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const DefaultDebounce = 500 * time.Millisecond

// Watcher watches directory trees and calls back with the changed paths once
// changes settle.
type Watcher struct {
	roots    []string
	patterns []string
	debounce time.Duration
	log      *zap.Logger
}

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(w *Watcher) {
		if log != nil {
			w.log = log
		}
	}
}

// New returns a watcher over roots. A root may be a file, in which case its
// directory is watched. With no patterns every path matches.
func New(roots, patterns []string, opts ...Option) *Watcher {
	w := &Watcher{
		roots:    roots,
		patterns: patterns,
		debounce: DefaultDebounce,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Match reports whether path passes the pattern filter.
func (w *Watcher) Match(path string) bool {
	if len(w.patterns) == 0 {
		return true
	}
	p := filepath.ToSlash(filepath.Clean(path))
	for _, pattern := range w.patterns {
		if ok, err := doublestar.Match(pattern, p); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, strings.TrimPrefix(p, "/")); err == nil && ok {
			return true
		}
	}
	return false
}

// Run blocks until ctx is done, calling onChange with the sorted set of
// paths that changed during each quiet period.
func (w *Watcher) Run(ctx context.Context, onChange func(paths []string)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fw.Close()

	for _, root := range w.roots {
		w.addTree(fw, root)
	}

	deb := newDebouncer(w.debounce, onChange)
	defer deb.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				w.addTree(fw, event.Name)
				continue
			}
			if !w.Match(event.Name) {
				continue
			}
			w.log.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			deb.add(event.Name)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) addTree(fw *fsnotify.Watcher, root string) {
	info, err := os.Stat(root)
	if err != nil {
		w.log.Info("not watching missing path", zap.String("path", root))
		return
	}
	if !info.IsDir() {
		root = filepath.Dir(root)
	}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.log.Warn("walk failed", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := fw.Add(path); err != nil {
			w.log.Warn("watch failed", zap.String("path", path), zap.Error(err))
		}
		return nil
	})
	if err != nil {
		w.log.Warn("walk failed", zap.String("path", root), zap.Error(err))
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// debouncer collects paths and flushes them once no new path arrived for d.
type debouncer struct {
	d    time.Duration
	fire func([]string)

	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
}

func newDebouncer(d time.Duration, fire func([]string)) *debouncer {
	return &debouncer{d: d, fire: fire, pending: map[string]struct{}{}}
}

func (b *debouncer) add(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending[path] = struct{}{}
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.d, b.flush)
}

func (b *debouncer) flush() {
	b.mu.Lock()
	paths := make([]string, 0, len(b.pending))
	for p := range b.pending {
		paths = append(paths, p)
	}
	b.pending = map[string]struct{}{}
	b.mu.Unlock()

	if len(paths) == 0 {
		return
	}
	sort.Strings(paths)
	b.fire(paths)
}

func (b *debouncer) stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
}
