package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	w := New(nil, []string{"**/*.json", "layouts/**/*.html"})

	assert.True(t, w.Match("content/content.json"))
	assert.True(t, w.Match("./content.json"))
	assert.True(t, w.Match("/srv/site/content/content.json"))
	assert.True(t, w.Match("layouts/partials/nav.html"))
	assert.False(t, w.Match("static/index.html"))
	assert.False(t, w.Match("content/.content.json.swp"))

	assert.True(t, New(nil, nil).Match("anything/at/all"))
}

func TestDebouncerCoalesces(t *testing.T) {
	var (
		mu    sync.Mutex
		calls [][]string
	)
	done := make(chan struct{})
	deb := newDebouncer(20*time.Millisecond, func(paths []string) {
		mu.Lock()
		calls = append(calls, paths)
		mu.Unlock()
		close(done)
	})

	deb.add("b.json")
	deb.add("a.json")
	deb.add("b.json")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debouncer never fired")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, [][]string{{"a.json", "b.json"}}, calls)
}

func TestRunReportsChanges(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "content.json")
	require.NoError(t, os.WriteFile(target, []byte(`{}`), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan []string, 4)
	w := New([]string{target}, []string{"**/*.json"}, WithDebounce(20*time.Millisecond))
	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx, func(paths []string) { changed <- paths }) }()

	// give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte(`{"site": {}}`), 0o644))

	select {
	case paths := <-changed:
		assert.Equal(t, []string{target}, paths)
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	assert.NoError(t, <-errc)
}
