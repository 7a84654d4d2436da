package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ndelacroix/folio/internal/index"
	"github.com/ndelacroix/folio/internal/logger"
	"github.com/ndelacroix/folio/internal/render"
	redisstore "github.com/ndelacroix/folio/internal/store/redis"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	MemoryIndex *index.MemoryIndex // loaded site content
	Renderer    *render.Renderer   // pure page renderer
	PageStore   *redisstore.Store  // rendered-page cache (nil = cache disabled)
	RedisClient *redis.Client

	StaticDir  string // static assets served under /static/
	HomeRecent int    // recent articles shown on the home page

	AllowedHosts  []string      // Host headers allowed on the ops endpoints
	AllowedCIDRS  []string      // IPs allowed on the ops endpoints
	TrustProxy    bool          // true if behind a trusted reverse proxy
	ReloadTrigger chan struct{} // channel to trigger a manual content reload
}
