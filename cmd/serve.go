package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Geet-manik/LearnTreeEdu/internal/config"
	"github.com/Geet-manik/LearnTreeEdu/internal/content"
	"github.com/Geet-manik/LearnTreeEdu/internal/layout"
	"github.com/Geet-manik/LearnTreeEdu/internal/server"
	"github.com/Geet-manik/LearnTreeEdu/internal/watch"
)

var serverPort int

const sweepInterval = time.Minute

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves live pages locally and reloads content on change",
	Long: `The serve command loads the content document and serves one live page
per visitor: carousels, modals and the flipbook post their events back
and receive the changed regions. It watches the content file, layouts
and static directories and reloads on change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context(), appConfig, serverPort, logger)
	},
}

func runServer(ctx context.Context, cfg config.Config, port int, log *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := content.NewStore(cfg.Content, log)
	if err := store.Reload(ctx); err != nil {
		log.Warn("initial content load failed; serving the load notice until it is fixed", zap.Error(err))
	}

	skeleton, err := layout.Load(cfg.LayoutsDir)
	if err != nil {
		return fmt.Errorf("failed to load layout: %w", err)
	}

	srv := server.New(server.Options{
		SiteTitle:     cfg.SiteTitle,
		BaseURL:       cfg.BaseURL,
		Lang:          cfg.Lang,
		HeroBookID:    cfg.HeroBookID,
		ViewportWidth: cfg.ViewportWidth,
		StaticDir:     cfg.StaticDir,
		SessionTTL:    cfg.SessionTTL,
	}, store, skeleton, log)

	go srv.Sessions().Run(ctx, sweepInterval, func(n int) {
		log.Debug("expired sessions dropped", zap.Int("count", n))
	})

	roots := []string{cfg.LayoutsDir, cfg.StaticDir}
	if !strings.HasPrefix(cfg.Content, "http://") && !strings.HasPrefix(cfg.Content, "https://") {
		roots = append(roots, cfg.Content)
	}
	watcher := watch.New(roots, cfg.Watch, watch.WithDebounce(watch.DefaultDebounce), watch.WithLogger(log))
	go func() {
		err := watcher.Run(ctx, func(paths []string) {
			log.Info("reloading after changes", zap.Strings("paths", paths))
			if err := store.Reload(ctx); err != nil {
				log.Error("reload failed", zap.Error(err))
			}
			if touches(paths, cfg.LayoutsDir) {
				sk, err := layout.Load(cfg.LayoutsDir)
				if err != nil {
					log.Error("layout reload failed", zap.Error(err))
					return
				}
				srv.SetSkeleton(sk)
			}
		})
		if err != nil {
			log.Error("watcher stopped", zap.Error(err))
		}
	}()

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("serving", zap.String("url", fmt.Sprintf("http://localhost:%d", port)))
		errc <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start HTTP server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	log.Info("shutting down")
	return httpSrv.Shutdown(shutdownCtx)
}

// touches reports whether any path lies under dir.
func touches(paths []string, dir string) bool {
	if dir == "" {
		return false
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		if rel, err := filepath.Rel(root, abs); err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
