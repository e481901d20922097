package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Geet-manik/LearnTreeEdu/internal/config"
	"github.com/Geet-manik/LearnTreeEdu/internal/content"
	"github.com/Geet-manik/LearnTreeEdu/internal/layout"
	"github.com/Geet-manik/LearnTreeEdu/internal/render"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Renders the content document into a static index.html",
	Long: `The build command loads the content document, renders every section
into the page layout (./layouts/base.html, or the built-in one), copies
static assets from './static/', and writes the result to the configured
output directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildProcess(cmd.Context(), appConfig, logger)
	},
}

func runBuildProcess(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log.Info("starting build",
		zap.String("content", cfg.Content),
		zap.String("outputDir", cfg.OutputDir),
		zap.String("baseURL", cfg.BaseURL),
	)

	doc, err := content.Load(ctx, cfg.Content)
	if err != nil {
		return err
	}

	skeleton, err := layout.Load(cfg.LayoutsDir)
	if err != nil {
		return fmt.Errorf("failed to load layout: %w", err)
	}
	log.Info("layout loaded", zap.String("source", skeleton.Source()))

	outputDir := cfg.OutputDir
	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", outputDir, err)
	}

	if _, err := os.Stat(cfg.StaticDir); err == nil {
		if err := copyDirContents(cfg.StaticDir, outputDir, log); err != nil {
			return fmt.Errorf("failed to copy static assets: %w", err)
		}
		log.Info("static assets copied", zap.String("from", cfg.StaticDir))
	} else {
		log.Info("static assets directory not found, skipping copy", zap.String("dir", cfg.StaticDir))
	}

	pageDoc, err := skeleton.Page(layout.PageData{
		SiteTitle: cfg.SiteTitle,
		BaseURL:   cfg.BaseURL,
		Lang:      cfg.Lang,
	})
	if err != nil {
		return err
	}
	page := render.NewPage(pageDoc,
		render.WithLogger(log),
		render.WithHeroBook(cfg.HeroBookID),
		render.WithViewport(cfg.ViewportWidth),
	)
	if err := render.NewPipeline(log).Run(ctx, page, doc); err != nil {
		log.Warn("page rendered with section errors", zap.Error(err))
	}

	out, err := pageDoc.HTML()
	if err != nil {
		return err
	}
	indexPath := filepath.Join(outputDir, "index.html")
	if err := os.WriteFile(indexPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write '%s': %w", indexPath, err)
	}

	log.Info("build completed", zap.String("output", indexPath))
	return nil
}

// copyDirContents recursively copies contents from src to dst.
func copyDirContents(src, dst string, log *zap.Logger) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			// os.ModePerm is narrowed by the umask
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		if err := copyFile(path, dstPath, log); err != nil {
			return fmt.Errorf("failed to copy file from %s to %s: %w", path, dstPath, err)
		}
		return nil
	})
}

// copyFile copies a single file from srcFile to dstFile, keeping its mode.
func copyFile(srcFile, dstFile string, log *zap.Logger) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	dstDir := filepath.Dir(dstFile)
	if err := os.MkdirAll(dstDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create destination directory %s: %w", dstDir, err)
	}

	dstF, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer dstF.Close()

	if _, err := io.Copy(dstF, srcF); err != nil {
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}

	srcInfo, err := os.Stat(srcFile)
	if err != nil {
		log.Warn("could not stat source file to preserve permissions", zap.String("file", srcFile), zap.Error(err))
		return nil
	}
	if err := os.Chmod(dstFile, srcInfo.Mode()); err != nil {
		log.Warn("could not set permissions", zap.String("file", dstFile), zap.Error(err))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
