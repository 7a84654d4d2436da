package articles

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/ndelacroix/folio/internal/domain"
)

// LoadPage converts a single standalone markdown file (e.g. about.md)
// into a domain.Page through the same markdown pipeline as articles.
// Only the title frontmatter field is honored; it falls back to the
// title-cased filename stem.
func (l *Loader) LoadPage(path string) (*domain.Page, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page %s: %w", path, err)
	}

	var fm Frontmatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return nil, fmt.Errorf("page %s: failed to parse frontmatter: %w", path, err)
	}

	var htmlBuf bytes.Buffer
	if err := l.md.Convert(body, &htmlBuf); err != nil {
		return nil, fmt.Errorf("page %s: failed to convert markdown: %w", path, err)
	}

	title := fm.Title
	if title == "" {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		title = l.titleCaser.String(strings.ReplaceAll(strings.ReplaceAll(stem, "-", " "), "_", " "))
	}

	return &domain.Page{
		Title: title,
		Body:  template.HTML(htmlBuf.String()),
	}, nil
}
