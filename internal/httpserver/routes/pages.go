package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/ndelacroix/folio/internal/httpserver/deps"
	"github.com/ndelacroix/folio/internal/httpserver/handlers"
)

func init() { Register(registerPages) }

func registerPages(r chi.Router, d deps.Deps) {
	r.Get("/", handlers.Home(d))
	r.Get("/about", handlers.About(d))
	r.Get("/uses", handlers.Uses(d))
}
