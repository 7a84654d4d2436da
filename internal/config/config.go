package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Site identity
	SiteName    string // displayed in the nav and home hero
	SiteTagline string // optional one-liner on the home page
	SiteAuthor  string // default article author
	SiteBaseURL string // canonical base URL (ex: https://example.dev)

	// Content sources (authored files, loaded at startup and on reload)
	ContentDir  string // root of authored content (default: "content")
	UsesFile    string // uses.yaml path (default: <content>/uses.yaml)
	ArticlesDir string // articles directory (default: <content>/articles)
	AboutFile   string // about page path (default: <content>/about.md)
	StaticDir   string // static assets served under /static/ (default: "static")

	// Reload behavior
	ReloadInterval time.Duration // periodic content reload (default: 24h)
	WatchContent   bool          // rebuild on filesystem events (default: true)
	WatchDebounce  time.Duration // settle time after an fs event (default: 500ms)

	// Home page
	HomeRecent int // number of recent articles on the home page (default: 5)

	// Static export
	ExportDir string // output directory for `folio build` (default: "public")

	// Redis page cache
	RedisAddr             string
	RedisUser             string
	RedisPassword         string
	RedisPasswordRequired bool
	RedisDB               int
	RedisDT               time.Duration // dial timeout
	RedisRT               time.Duration // read timeout
	RedisWT               time.Duration // write timeout
	RedisMaxWait          time.Duration // max wait between retries
	RedisPingTimeout      time.Duration
	RedisPoolSize         int
	RedisConnectTimeout   time.Duration
	RedisRetryInterval    time.Duration
	PageCacheTTL          time.Duration // TTL for cached rendered pages

	// Access restrictions for the ops endpoints (/-/reload, /-/infra)
	AllowedHosts []string // optional, restrict Host headers (empty = allow all)
	AllowedCIDRS []string // optional, restrict ops endpoints to these IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

func Load() *Config {
	contentDir := getenv("FOLIO_CONTENT_DIR", "content")

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("FOLIO_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("FOLIO_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("FOLIO_LOG_LEVEL", "info"),
		PrettyLog: mustBool("FOLIO_PRETTY_LOG", true),

		// Site identity
		SiteName:    requireEnv("FOLIO_SITE_NAME"),
		SiteTagline: getenv("FOLIO_SITE_TAGLINE", ""),
		SiteAuthor:  getenv("FOLIO_SITE_AUTHOR", ""),
		SiteBaseURL: requireEnv("FOLIO_SITE_BASE_URL"),

		// Content sources
		ContentDir:  contentDir,
		UsesFile:    getenv("FOLIO_USES_FILE", filepath.Join(contentDir, "uses.yaml")),
		ArticlesDir: getenv("FOLIO_ARTICLES_DIR", filepath.Join(contentDir, "articles")),
		AboutFile:   getenv("FOLIO_ABOUT_FILE", filepath.Join(contentDir, "about.md")),
		StaticDir:   getenv("FOLIO_STATIC_DIR", "static"),

		// Reload behavior
		ReloadInterval: mustDuration("FOLIO_RELOAD_INTERVAL", 24*time.Hour),
		WatchContent:   mustBool("FOLIO_WATCH_CONTENT", true),
		WatchDebounce:  mustDuration("FOLIO_WATCH_DEBOUNCE", 500*time.Millisecond),

		// Home page
		HomeRecent: getenvInt("FOLIO_HOME_RECENT", 5),

		// Static export
		ExportDir: getenv("FOLIO_EXPORT_DIR", "public"),

		// Redis settings
		RedisAddr:             getenv("FOLIO_REDIS_ADDR", "localhost:6379"),
		RedisUser:             getenv("FOLIO_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("FOLIO_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("FOLIO_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("FOLIO_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		PageCacheTTL:          mustDuration("FOLIO_PAGE_CACHE_TTL", 24*time.Hour),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("FOLIO_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("FOLIO_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("FOLIO_TRUST_PROXY", true),
	}

	if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic("FATAL: FOLIO_REDIS_PASSWORD is required when FOLIO_REDIS_PASSWORD_REQUIRED=true")
	}
	if cfg.HomeRecent < 0 {
		cfg.HomeRecent = 0
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
