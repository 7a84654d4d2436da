package articles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeArticle(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "older-post.md", `---
title: Older Post
author: Nadia
date: 2024-03-01
description: The first one
---
Some **bold** text.
`)
	writeArticle(t, dir, "newer-post.md", `---
title: Newer Post
date: 2024-06-15
---
Body here.
`)

	loader := NewLoader(dir, "Site Author")
	articles, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("Load() returned %d articles, want 2", len(articles))
	}

	// Sorted newest first
	if articles[0].Slug != "newer-post" || articles[1].Slug != "older-post" {
		t.Errorf("articles not sorted date-descending: [%s, %s]", articles[0].Slug, articles[1].Slug)
	}

	older := articles[1]
	if older.Title != "Older Post" {
		t.Errorf("Title = %v, want Older Post", older.Title)
	}
	if older.Author != "Nadia" {
		t.Errorf("Author = %v, want frontmatter author", older.Author)
	}
	if !strings.Contains(string(older.Body), "<strong>bold</strong>") {
		t.Errorf("Body = %v, want converted markdown", older.Body)
	}

	// Default author fills the gap
	if articles[0].Author != "Site Author" {
		t.Errorf("Author = %v, want default author", articles[0].Author)
	}
}

func TestLoaderLoadTitleFallback(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "ml-pipeline-notes.md", `---
date: 2024-01-10
---
content
`)

	articles, err := NewLoader(dir, "").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if articles[0].Title != "Ml Pipeline Notes" {
		t.Errorf("Title = %v, want title-cased filename fallback", articles[0].Title)
	}
	if articles[0].Slug != "ml-pipeline-notes" {
		t.Errorf("Slug = %v, want filename-derived slug", articles[0].Slug)
	}
}

func TestLoaderLoadMissingDate(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "undated.md", `---
title: Undated
---
content
`)

	if _, err := NewLoader(dir, "").Load(); err == nil {
		t.Error("Load() with missing date should return error")
	}
}

func TestLoaderLoadDuplicateSlug(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "a.md", `---
title: A
date: 2024-01-01
slug: same
---
`)
	writeArticle(t, dir, "b.md", `---
title: B
date: 2024-01-02
slug: same
---
`)

	if _, err := NewLoader(dir, "").Load(); err == nil {
		t.Error("Load() with duplicate slugs should return error")
	}
}

func TestLoaderLoadMissingDir(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "nope"), "").Load(); err == nil {
		t.Error("Load() with missing directory should return error")
	}
}

func TestLoaderLoadDraftFlag(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "wip.md", `---
title: WIP
date: 2024-05-05
draft: true
---
`)

	articles, err := NewLoader(dir, "").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !articles[0].Draft {
		t.Error("Draft = false, want true")
	}
}

func TestLoadPage(t *testing.T) {
	dir := t.TempDir()
	writeArticle(t, dir, "about.md", `---
title: About me
---
I build things.
`)

	page, err := NewLoader(dir, "").LoadPage(filepath.Join(dir, "about.md"))
	if err != nil {
		t.Fatalf("LoadPage() error = %v", err)
	}
	if page.Title != "About me" {
		t.Errorf("Title = %v, want About me", page.Title)
	}
	if !strings.Contains(string(page.Body), "I build things.") {
		t.Errorf("Body = %v, want markdown body", page.Body)
	}
}

func TestParseDateFormats(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "date only", input: "2024-01-02"},
		{name: "rfc3339", input: "2024-01-02T15:04:05Z"},
		{name: "datetime no zone", input: "2024-01-02T15:04:05"},
		{name: "space separated", input: "2024-01-02 15:04:05"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "last tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
