package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/ndelacroix/folio/internal/domain"
)

//go:embed templates
var templatesFS embed.FS

// Site carries the site-wide settings every template receives.
type Site struct {
	Name    string // ex: "Nadia Delacroix"
	Tagline string // one-liner under the name on the home page
	Author  string // default article author
	BaseURL string // ex: "https://example.dev"
}

// Data is the single context struct passed to page templates. Only the
// fields relevant to a given page are populated.
type Data struct {
	Site     Site
	Title    string // page title for the <title> tag
	Articles []*domain.Article
	Groups   []domain.ContentGroup
	Page     *domain.Page
	Article  *domain.Article
}

// Renderer turns domain records into full HTML pages. It holds only parsed
// templates and site settings, so rendering is a pure function of its
// input: the same record always produces byte-identical output.
type Renderer struct {
	site  Site
	pages map[string]*template.Template
}

// pageFiles maps each page template onto the base layout.
var pageFiles = []string{"home", "about", "uses", "articles", "article"}

var funcMap = template.FuncMap{
	"humandate": func(d time.Time) string { return d.Format("January 2, 2006") },
	"isodate":   func(d time.Time) string { return d.Format("2006-01-02") },
}

// New parses the embedded layout, partials and page templates.
func New(site Site) (*Renderer, error) {
	base, err := template.New("base.html").Funcs(funcMap).ParseFS(templatesFS,
		"templates/base.html",
		"templates/partials/*.html",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, name := range pageFiles {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone base template: %w", err)
		}
		t, err = t.ParseFS(templatesFS, "templates/pages/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse page template %s: %w", name, err)
		}
		pages[name] = t
	}

	return &Renderer{site: site, pages: pages}, nil
}

func (r *Renderer) execute(page string, data Data) ([]byte, error) {
	t, ok := r.pages[page]
	if !ok {
		return nil, fmt.Errorf("unknown page template %q", page)
	}
	data.Site = r.site

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", page, err)
	}
	return buf.Bytes(), nil
}

// Home renders the landing page with the most recent articles.
func (r *Renderer) Home(recent []*domain.Article) ([]byte, error) {
	return r.execute("home", Data{
		Title:    r.site.Name,
		Articles: recent,
	})
}

// About renders a standalone long-form page.
func (r *Renderer) About(page *domain.Page) ([]byte, error) {
	if page == nil {
		return nil, fmt.Errorf("no about page loaded")
	}
	return r.execute("about", Data{
		Title: page.Title,
		Page:  page,
	})
}

// Uses renders the grouped tool cards: one titled section per group, one
// card per item, in declaration order.
func (r *Renderer) Uses(groups []domain.ContentGroup) ([]byte, error) {
	return r.execute("uses", Data{
		Title:  "Uses",
		Groups: groups,
	})
}

// Articles renders the article index, newest first.
func (r *Renderer) Articles(articles []*domain.Article) ([]byte, error) {
	return r.execute("articles", Data{
		Title:    "Articles",
		Articles: articles,
	})
}

// Article renders a single article: metadata header plus the body verbatim.
func (r *Renderer) Article(a *domain.Article) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("nil article")
	}
	return r.execute("article", Data{
		Title:   r.site.Name,
		Article: a,
	})
}
