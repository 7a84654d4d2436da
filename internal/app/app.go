package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ndelacroix/folio/internal/config"
	"github.com/ndelacroix/folio/internal/exporter"
	"github.com/ndelacroix/folio/internal/httpserver"
	"github.com/ndelacroix/folio/internal/httpserver/deps"
	"github.com/ndelacroix/folio/internal/index"
	"github.com/ndelacroix/folio/internal/logger"
	"github.com/ndelacroix/folio/internal/redis"
	"github.com/ndelacroix/folio/internal/render"
	"github.com/ndelacroix/folio/internal/scheduler"
	redisstore "github.com/ndelacroix/folio/internal/store/redis"
	"github.com/ndelacroix/folio/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	memIndex    *index.MemoryIndex
	reloader    *scheduler.ContentReloader
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	// Initialize memory index
	memIndex := index.NewMemoryIndex()

	// Initialize the rendered-page cache
	store := redisstore.NewStore(redisClient, cfg.PageCacheTTL)

	// Initialize the page renderer
	renderer, err := render.New(render.Site{
		Name:    cfg.SiteName,
		Tagline: cfg.SiteTagline,
		Author:  cfg.SiteAuthor,
		BaseURL: cfg.SiteBaseURL,
	})
	if err != nil {
		loggerClient.Errorf("Failed to parse templates: %v", err)
		os.Exit(1)
	}

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	// Initialize content reloader
	watchDir := ""
	if cfg.WatchContent {
		watchDir = cfg.ContentDir
	}
	reloader := scheduler.NewContentReloader(
		scheduler.Options{
			UsesFile:      cfg.UsesFile,
			ArticlesDir:   cfg.ArticlesDir,
			AboutFile:     cfg.AboutFile,
			DefaultAuthor: cfg.SiteAuthor,
			Interval:      cfg.ReloadInterval,
			WatchDir:      watchDir,
			WatchDebounce: cfg.WatchDebounce,
		},
		store,
		memIndex,
		loggerClient,
		reloadTrigger,
	)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		MemoryIndex:   memIndex,
		Renderer:      renderer,
		PageStore:     store,
		RedisClient:   redisClient,
		StaticDir:     cfg.StaticDir,
		HomeRecent:    cfg.HomeRecent,
		AllowedHosts:  cfg.AllowedHosts,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		ReloadTrigger: reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		memIndex:    memIndex,
		reloader:    reloader,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Folio v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Folio %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start content reloader (initial load + periodic refresh + fs watcher)
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start content reloader: %w", err)
	}
	a.logger.Info("content reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	// Stop reloader
	a.reloader.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Folio stopped cleanly")
	return nil
}

// Export renders the whole site to cfg.ExportDir without starting the HTTP
// server or touching Redis. Used by the `build` command.
func Export() error {
	cfg := config.Load()
	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	memIndex := index.NewMemoryIndex()

	renderer, err := render.New(render.Site{
		Name:    cfg.SiteName,
		Tagline: cfg.SiteTagline,
		Author:  cfg.SiteAuthor,
		BaseURL: cfg.SiteBaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	reloader := scheduler.NewContentReloader(
		scheduler.Options{
			UsesFile:      cfg.UsesFile,
			ArticlesDir:   cfg.ArticlesDir,
			AboutFile:     cfg.AboutFile,
			DefaultAuthor: cfg.SiteAuthor,
		},
		nil, // no page cache for a one-shot export
		memIndex,
		loggerClient,
		nil,
	)
	if err := reloader.Reload(context.Background()); err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	exp := exporter.New(memIndex, renderer, cfg.StaticDir, cfg.ExportDir,
		cfg.HomeRecent, loggerClient)
	return exp.Export()
}
