package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndelacroix/folio/internal/httpserver/deps"
)

// Articles serves the article index, newest first.
func Articles(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		servePage(w, r, d, func() ([]byte, error) {
			return d.Renderer.Articles(d.MemoryIndex.GetArticles())
		})
	}
}

// Article serves a single article by slug, 404 for unknown slugs.
func Article(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		article, ok := d.MemoryIndex.GetArticle(slug)
		if !ok {
			http.NotFound(w, r)
			return
		}
		servePage(w, r, d, func() ([]byte, error) {
			return d.Renderer.Article(article)
		})
	}
}
