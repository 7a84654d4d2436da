package handlers

import (
	"net/http"

	"github.com/ndelacroix/folio/internal/httpserver/deps"
	"github.com/ndelacroix/folio/internal/logger"
)

// servePage writes a rendered page, going through the Redis page cache when
// one is configured. Cache failures degrade to a fresh render, never an
// error: the renderer is pure, so a re-render is always correct.
func servePage(w http.ResponseWriter, r *http.Request, d deps.Deps, renderPage func() ([]byte, error)) {
	ctx := r.Context()
	path := r.URL.Path

	if d.PageStore != nil {
		cached, err := d.PageStore.GetCachedPage(ctx, path)
		if err != nil {
			d.Logger.Warn("page cache read failed",
				logger.String("path", path), logger.Error(err))
		} else if cached != nil {
			writeHTML(w, cached, "HIT")
			return
		}
	}

	html, err := renderPage()
	if err != nil {
		d.Logger.Error("failed to render page",
			logger.String("path", path), logger.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if d.PageStore != nil {
		if err := d.PageStore.CachePage(ctx, path, html); err != nil {
			d.Logger.Warn("page cache write failed",
				logger.String("path", path), logger.Error(err))
		}
	}

	writeHTML(w, html, "MISS")
}

func writeHTML(w http.ResponseWriter, html []byte, cacheState string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Cache", cacheState)
	_, _ = w.Write(html)
}

// Home serves the landing page with the most recent articles.
func Home(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// chi treats "/" as a catch-all within its route tree
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		servePage(w, r, d, func() ([]byte, error) {
			recent := d.MemoryIndex.GetArticles()
			if d.HomeRecent > 0 && len(recent) > d.HomeRecent {
				recent = recent[:d.HomeRecent]
			}
			return d.Renderer.Home(recent)
		})
	}
}

// About serves the standalone about page, 404 when none is loaded.
func About(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := d.MemoryIndex.GetAbout()
		if page == nil {
			http.NotFound(w, r)
			return
		}
		servePage(w, r, d, func() ([]byte, error) {
			return d.Renderer.About(page)
		})
	}
}

// Uses serves the grouped tool cards page.
func Uses(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		servePage(w, r, d, func() ([]byte, error) {
			return d.Renderer.Uses(d.MemoryIndex.GetGroups())
		})
	}
}
