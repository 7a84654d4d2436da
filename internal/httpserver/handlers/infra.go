package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ndelacroix/folio/internal/httpserver/deps"
)

type componentStatus struct {
	OK             bool   `json:"ok"`
	ArticlesLoaded *int   `json:"articles_loaded,omitempty"`
	GroupsLoaded   *int   `json:"groups_loaded,omitempty"`
	LastReload     string `json:"last_reload,omitempty"`
	Mode           string `json:"mode,omitempty"`
	Error          string `json:"error,omitempty"`
}

type infraResponse struct {
	Components map[string]componentStatus `json:"components"`
}

// Infra reports per-component status: loaded content and the page cache.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		articles := d.MemoryIndex.ArticleCount()
		groups := d.MemoryIndex.GroupCount()
		lastReload := d.MemoryIndex.GetLastReload()
		lastReloadStr := "never"
		if !lastReload.IsZero() {
			lastReloadStr = lastReload.Format("2006-01-02 15:04:05")
		}

		components := map[string]componentStatus{
			"content": {
				OK:             articles > 0 || groups > 0,
				ArticlesLoaded: &articles,
				GroupsLoaded:   &groups,
				LastReload:     lastReloadStr,
			},
			"cache": checkCache(r.Context(), d),
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(infraResponse{Components: components})
	}
}

func checkCache(ctx context.Context, d deps.Deps) componentStatus {
	if d.PageStore == nil {
		return componentStatus{OK: true, Mode: "disabled"}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.PageStore.Ping(pingCtx); err != nil {
		return componentStatus{OK: false, Mode: "redis", Error: err.Error()}
	}
	return componentStatus{OK: true, Mode: "redis"}
}
