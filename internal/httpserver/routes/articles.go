package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ndelacroix/folio/internal/httpserver/deps"
	"github.com/ndelacroix/folio/internal/httpserver/handlers"
)

func init() { Register(registerArticles) }

func registerArticles(r chi.Router, d deps.Deps) {
	r.Get("/articles", handlers.Articles(d))
	r.Get("/articles/{slug}", handlers.Article(d))
}
