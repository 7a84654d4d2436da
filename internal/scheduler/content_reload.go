package scheduler

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ndelacroix/folio/internal/domain"
	"github.com/ndelacroix/folio/internal/index"
	"github.com/ndelacroix/folio/internal/logger"
	"github.com/ndelacroix/folio/internal/sources/articles"
	"github.com/ndelacroix/folio/internal/sources/uses"
	redisstore "github.com/ndelacroix/folio/internal/store/redis"
	"github.com/ndelacroix/folio/internal/utils"
)

// Options configures a ContentReloader.
type Options struct {
	UsesFile      string
	ArticlesDir   string
	AboutFile     string
	DefaultAuthor string

	Interval      time.Duration // periodic reload interval
	WatchDir      string        // directory watched for fs events, "" disables watching
	WatchDebounce time.Duration // settle time after an fs event
}

// ContentReloader keeps the memory index in sync with the authored content
// files. It reloads on an interval, on a manual trigger and (optionally) on
// filesystem events, and invalidates the rendered-page cache after each
// successful reload.
type ContentReloader struct {
	opts          Options
	usesLoader    *uses.Loader
	usesMapper    *uses.Mapper
	articleLoader *articles.Loader
	store         *redisstore.Store // nil disables cache invalidation
	index         *index.MemoryIndex
	logger        logger.Logger
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewContentReloader creates a new content reloader.
func NewContentReloader(
	opts Options,
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
	manualTrigger chan struct{},
) *ContentReloader {
	return &ContentReloader{
		opts:          opts,
		usesLoader:    uses.NewLoader(opts.UsesFile),
		usesMapper:    uses.NewMapper(),
		articleLoader: articles.NewLoader(opts.ArticlesDir, opts.DefaultAuthor),
		store:         store,
		index:         idx,
		logger:        log,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start performs the initial load, then begins the periodic reload loop and
// the optional filesystem watcher. The initial load failing is fatal: a site
// with defective content must refuse to start, not degrade at render time.
func (cr *ContentReloader) Start(ctx context.Context) error {
	if err := cr.Reload(ctx); err != nil {
		return fmt.Errorf("initial content load failed: %w", err)
	}

	ticker := time.NewTicker(cr.opts.Interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload content", logger.Error(err))
				}
			case <-cr.manualTrigger:
				cr.logger.Info("manual reload triggered")
				if err := cr.Reload(ctx); err != nil {
					cr.logger.Error("failed to reload content", logger.Error(err))
				}
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	if cr.opts.WatchDir != "" {
		if err := cr.watch(ctx); err != nil {
			cr.logger.Warn("content watcher unavailable, relying on interval reloads",
				logger.Error(err))
		}
	}

	return nil
}

// Stop stops the reloader.
func (cr *ContentReloader) Stop() {
	close(cr.stopCh)
}

// Reload loads every content source and replaces the index snapshots.
// A defective source leaves the previous snapshot untouched.
func (cr *ContentReloader) Reload(ctx context.Context) error {
	cr.logger.Info("reloading content")

	usesFile, err := cr.usesLoader.Load()
	if err != nil {
		return fmt.Errorf("failed to load uses: %w", err)
	}
	items, err := cr.usesMapper.MapItems(usesFile)
	if err != nil {
		return fmt.Errorf("failed to map uses entries: %w", err)
	}
	groups := domain.GroupByCategory(items)

	loadedArticles, err := cr.articleLoader.Load()
	if err != nil {
		return fmt.Errorf("failed to load articles: %w", err)
	}

	var about *domain.Page
	if _, statErr := os.Stat(cr.opts.AboutFile); statErr == nil {
		about, err = cr.articleLoader.LoadPage(cr.opts.AboutFile)
		if err != nil {
			return fmt.Errorf("failed to load about page: %w", err)
		}
	} else {
		cr.logger.Warn("about file not found, about page disabled",
			logger.String("file", cr.opts.AboutFile))
	}

	cr.index.UpdateGroups(groups)
	cr.index.UpdateArticles(loadedArticles)
	cr.index.UpdateAbout(about)

	cr.logger.Info("content loaded",
		logger.Int("articles", len(loadedArticles)),
		logger.Int("groups", len(groups)),
		logger.Int("items", len(items)))

	// Invalidate the page cache (best effort)
	if cr.store != nil {
		removed, err := cr.store.InvalidateAll(ctx)
		if err != nil {
			cr.logger.Warn("failed to invalidate page cache", logger.Error(err))
			// Don't fail - cached pages expire by TTL anyway
		} else if removed > 0 {
			cr.logger.Info("page cache invalidated", logger.Int("pages", removed))
		}
	}

	return nil
}

// watch rebuilds the index after filesystem changes under WatchDir,
// debounced so editor save bursts trigger a single reload.
func (cr *ContentReloader) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	addRecursive := func(root string) {
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if d.IsDir() {
				if addErr := watcher.Add(path); addErr != nil {
					cr.logger.Warn("failed to watch directory",
						logger.String("dir", path), logger.Error(addErr))
				}
			}
			return nil
		})
		if walkErr != nil {
			cr.logger.Warn("failed to walk watch root",
				logger.String("dir", root), logger.Error(walkErr))
		}
	}
	addRecursive(cr.opts.WatchDir)

	go func() {
		defer utils.Close(watcher)

		var debounce *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				cr.logger.Debug("content change detected",
					logger.String("file", event.Name),
					logger.String("op", event.Op.String()))

				// New subdirectories are not watched automatically
				if event.Has(fsnotify.Create) {
					if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
						addRecursive(event.Name)
					}
				}

				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(cr.opts.WatchDebounce, func() {
					select {
					case cr.manualTrigger <- struct{}{}:
					default:
						// A reload is already queued
					}
				})
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				cr.logger.Warn("watcher error", logger.Error(watchErr))
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	cr.logger.Info("watching content for changes",
		logger.String("dir", cr.opts.WatchDir),
		logger.Duration("debounce", cr.opts.WatchDebounce))
	return nil
}
