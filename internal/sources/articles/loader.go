package articles

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ndelacroix/folio/internal/domain"
)

// Loader walks a directory of markdown article files and converts each
// one into a domain.Article.
type Loader struct {
	dir           string
	defaultAuthor string
	md            goldmark.Markdown
	titleCaser    cases.Caser
}

// NewLoader creates an article loader for the given directory.
// defaultAuthor fills in articles whose frontmatter omits an author.
func NewLoader(dir, defaultAuthor string) *Loader {
	return &Loader{
		dir:           dir,
		defaultAuthor: defaultAuthor,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithHardWraps(),
			),
		),
		titleCaser: cases.Title(language.English),
	}
}

// Load parses every .md file under the directory and returns the articles
// sorted by date, newest first. Any malformed file fails the whole load.
func (l *Loader) Load() ([]*domain.Article, error) {
	if _, err := os.Stat(l.dir); err != nil {
		return nil, fmt.Errorf("articles directory %s: %w", l.dir, err)
	}

	var out []*domain.Article
	seen := make(map[string]string) // slug -> source path

	walkErr := filepath.WalkDir(l.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		article, err := l.loadFile(path)
		if err != nil {
			return fmt.Errorf("article %s: %w", path, err)
		}

		if prev, dup := seen[article.Slug]; dup {
			return fmt.Errorf("article %s: slug %q already used by %s", path, article.Slug, prev)
		}
		seen[article.Slug] = path

		out = append(out, article)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	return out, nil
}

func (l *Loader) loadFile(path string) (*domain.Article, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var fm Frontmatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	var htmlBuf bytes.Buffer
	if err := l.md.Convert(body, &htmlBuf); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	title := fm.Title
	if title == "" {
		// Filename fallback: "crafting-a-dockerfile" -> "Crafting A Dockerfile"
		title = l.titleCaser.String(strings.ReplaceAll(strings.ReplaceAll(stem, "-", " "), "_", " "))
	}

	date, err := parseDate(fm.Date)
	if err != nil {
		return nil, err
	}

	slug := fm.Slug
	if slug == "" {
		slug = domain.Slugify(stem)
	}
	if slug == "" {
		return nil, fmt.Errorf("cannot derive a slug from %q", stem)
	}

	author := fm.Author
	if author == "" {
		author = l.defaultAuthor
	}

	return &domain.Article{
		Slug:        slug,
		Title:       title,
		Author:      author,
		Date:        date,
		Description: fm.Description,
		Body:        template.HTML(htmlBuf.String()),
		Draft:       fm.Draft,
	}, nil
}

// parseDate tries the accepted layouts in order. A missing or unparseable
// date is an authoring defect: articles are dated content, so the load fails.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing required field: date")
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (use YYYY-MM-DD or RFC3339)", s)
}
