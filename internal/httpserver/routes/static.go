package routes

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/ndelacroix/folio/internal/httpserver/deps"
	"github.com/ndelacroix/folio/internal/logger"
)

func init() { Register(registerStatic) }

func registerStatic(r chi.Router, d deps.Deps) {
	if _, err := os.Stat(d.StaticDir); err != nil {
		d.Logger.Warn("static directory not found, /static/ disabled",
			logger.String("dir", d.StaticDir))
		return
	}

	fs := http.StripPrefix("/static/", http.FileServer(http.Dir(d.StaticDir)))
	r.Get("/static/*", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fs.ServeHTTP(w, req)
	})
}
