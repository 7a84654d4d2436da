package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ndelacroix/folio/internal/index"
	"github.com/ndelacroix/folio/internal/logger"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func testContentTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "uses.yaml"), `items:
  - title: Neovim
    category: Development tools
    href: https://neovim.io/
    description: Editor
`)
	writeFile(t, filepath.Join(dir, "articles", "hello.md"), `---
title: Hello
date: 2024-04-01
---
First post.
`)
	writeFile(t, filepath.Join(dir, "about.md"), `---
title: About
---
Hi.
`)
	return dir
}

func newTestReloader(dir string, idx *index.MemoryIndex) *ContentReloader {
	return NewContentReloader(
		Options{
			UsesFile:      filepath.Join(dir, "uses.yaml"),
			ArticlesDir:   filepath.Join(dir, "articles"),
			AboutFile:     filepath.Join(dir, "about.md"),
			DefaultAuthor: "Tester",
			Interval:      time.Hour,
		},
		nil, // no cache in tests
		idx,
		logger.New("error", false),
		make(chan struct{}, 1),
	)
}

func TestContentReloaderReload(t *testing.T) {
	dir := testContentTree(t)
	idx := index.NewMemoryIndex()
	cr := newTestReloader(dir, idx)

	if err := cr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if idx.ArticleCount() != 1 {
		t.Errorf("ArticleCount() = %v, want 1", idx.ArticleCount())
	}
	if idx.GroupCount() != 1 {
		t.Errorf("GroupCount() = %v, want 1", idx.GroupCount())
	}
	if about := idx.GetAbout(); about == nil || about.Title != "About" {
		t.Errorf("GetAbout() = %v, want About page", about)
	}
	a, ok := idx.GetArticle("hello")
	if !ok {
		t.Fatal("GetArticle(hello) not found")
	}
	if a.Author != "Tester" {
		t.Errorf("article Author = %v, want default author", a.Author)
	}
}

func TestContentReloaderDefectiveSourceKeepsSnapshot(t *testing.T) {
	dir := testContentTree(t)
	idx := index.NewMemoryIndex()
	cr := newTestReloader(dir, idx)

	if err := cr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	// Break the uses file: missing title is an authoring defect
	writeFile(t, filepath.Join(dir, "uses.yaml"), `items:
  - category: Development tools
`)

	if err := cr.Reload(context.Background()); err == nil {
		t.Fatal("Reload() with defective uses file should return error")
	}

	// Previous snapshot survives the failed reload
	if idx.GroupCount() != 1 {
		t.Errorf("GroupCount() after failed reload = %v, want previous snapshot kept", idx.GroupCount())
	}
	if idx.ArticleCount() != 1 {
		t.Errorf("ArticleCount() after failed reload = %v, want previous snapshot kept", idx.ArticleCount())
	}
}

func TestContentReloaderMissingAboutIsNotFatal(t *testing.T) {
	dir := testContentTree(t)
	if err := os.Remove(filepath.Join(dir, "about.md")); err != nil {
		t.Fatalf("failed to remove about.md: %v", err)
	}

	idx := index.NewMemoryIndex()
	cr := newTestReloader(dir, idx)

	if err := cr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() without about.md error = %v", err)
	}
	if idx.GetAbout() != nil {
		t.Error("GetAbout() should be nil when about.md is absent")
	}
}

func TestContentReloaderStartAndManualTrigger(t *testing.T) {
	dir := testContentTree(t)
	idx := index.NewMemoryIndex()

	trigger := make(chan struct{}, 1)
	cr := NewContentReloader(
		Options{
			UsesFile:    filepath.Join(dir, "uses.yaml"),
			ArticlesDir: filepath.Join(dir, "articles"),
			AboutFile:   filepath.Join(dir, "about.md"),
			Interval:    time.Hour,
		},
		nil,
		idx,
		logger.New("error", false),
		trigger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := cr.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer cr.Stop()

	firstReload := idx.GetLastReload()
	if firstReload.IsZero() {
		t.Fatal("Start() should perform an initial load")
	}

	// Add an article and trigger a manual reload
	writeFile(t, filepath.Join(dir, "articles", "second.md"), `---
title: Second
date: 2024-05-01
---
`)
	trigger <- struct{}{}

	deadline := time.After(2 * time.Second)
	for idx.ArticleCount() != 2 {
		select {
		case <-deadline:
			t.Fatalf("manual trigger did not reload content, ArticleCount() = %v", idx.ArticleCount())
		case <-time.After(10 * time.Millisecond):
		}
	}
}
