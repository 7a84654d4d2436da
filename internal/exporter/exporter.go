package exporter

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ndelacroix/folio/internal/index"
	"github.com/ndelacroix/folio/internal/logger"
	"github.com/ndelacroix/folio/internal/render"
	"github.com/ndelacroix/folio/internal/utils"
)

// Exporter writes the fully rendered site to an output directory. It walks
// the same index and renderer as the HTTP handlers, so the exported pages
// are byte-identical to what the server serves on a cache miss.
type Exporter struct {
	index      *index.MemoryIndex
	renderer   *render.Renderer
	staticDir  string
	outDir     string
	homeRecent int
	logger     logger.Logger
}

// New creates an exporter over already-loaded content.
func New(idx *index.MemoryIndex, r *render.Renderer, staticDir, outDir string, homeRecent int, log logger.Logger) *Exporter {
	return &Exporter{
		index:      idx,
		renderer:   r,
		staticDir:  staticDir,
		outDir:     outDir,
		homeRecent: homeRecent,
		logger:     log,
	}
}

// Export cleans the output directory and writes every page plus the static
// assets. Draft articles are skipped.
func (e *Exporter) Export() error {
	if err := os.RemoveAll(e.outDir); err != nil {
		return fmt.Errorf("failed to clean output directory %s: %w", e.outDir, err)
	}
	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", e.outDir, err)
	}

	if _, err := os.Stat(e.staticDir); err == nil {
		if err := copyDirContents(e.staticDir, filepath.Join(e.outDir, "static")); err != nil {
			return fmt.Errorf("failed to copy static assets: %w", err)
		}
	} else {
		e.logger.Warn("static directory not found, skipping asset copy",
			logger.String("dir", e.staticDir))
	}

	articles := e.index.GetArticles()

	recent := articles
	if e.homeRecent > 0 && len(recent) > e.homeRecent {
		recent = recent[:e.homeRecent]
	}

	pages := 0

	home, err := e.renderer.Home(recent)
	if err != nil {
		return fmt.Errorf("failed to render home: %w", err)
	}
	if err := e.writePage("/", home); err != nil {
		return err
	}
	pages++

	if about := e.index.GetAbout(); about != nil {
		html, err := e.renderer.About(about)
		if err != nil {
			return fmt.Errorf("failed to render about: %w", err)
		}
		if err := e.writePage("/about", html); err != nil {
			return err
		}
		pages++
	}

	usesHTML, err := e.renderer.Uses(e.index.GetGroups())
	if err != nil {
		return fmt.Errorf("failed to render uses: %w", err)
	}
	if err := e.writePage("/uses", usesHTML); err != nil {
		return err
	}
	pages++

	listHTML, err := e.renderer.Articles(articles)
	if err != nil {
		return fmt.Errorf("failed to render article index: %w", err)
	}
	if err := e.writePage("/articles", listHTML); err != nil {
		return err
	}
	pages++

	for _, a := range articles {
		html, err := e.renderer.Article(a)
		if err != nil {
			return fmt.Errorf("failed to render article %s: %w", a.Slug, err)
		}
		if err := e.writePage("/articles/"+a.Slug, html); err != nil {
			return err
		}
		pages++
	}

	e.logger.Info("site exported",
		logger.String("dir", e.outDir),
		logger.Int("pages", pages))
	return nil
}

// writePage stores a rendered page under <out>/<path>/index.html so every
// page is served with a clean directory-style URL.
func (e *Exporter) writePage(urlPath string, html []byte) error {
	dir := filepath.Join(e.outDir, filepath.FromSlash(urlPath))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	out := filepath.Join(dir, "index.html")
	if err := os.WriteFile(out, html, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	return nil
}

// copyDirContents recursively copies contents from src to dst.
func copyDirContents(src, dst string) error {
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
			return os.MkdirAll(dstPath, 0o755)
		}
		return copyFile(path, dstPath)
	})
}

// copyFile copies a single file from srcFile to dstFile.
func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer utils.Close(srcF)

	if err := os.MkdirAll(filepath.Dir(dstFile), 0o755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	dstF, err := os.Create(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer utils.Close(dstF)

	if _, err := io.Copy(dstF, srcF); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", srcFile, dstFile, err)
	}
	return nil
}
