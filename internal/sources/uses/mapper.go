package uses

import (
	"fmt"
	"net/url"

	"github.com/ndelacroix/folio/internal/domain"
)

// Mapper converts authored uses entries to domain.ContentItem values.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapItems converts a parsed uses file to []domain.ContentItem, preserving
// declaration order. A missing title or category, or a malformed href, is a
// content-authoring defect and fails the whole load: the defect surfaces to
// the author instead of degrading at render time.
func (m *Mapper) MapItems(file *File) ([]domain.ContentItem, error) {
	if file == nil || len(file.Items) == 0 {
		return nil, fmt.Errorf("no entries found in uses file")
	}

	items := make([]domain.ContentItem, 0, len(file.Items))
	for i, props := range file.Items {
		if props.Title == "" {
			return nil, fmt.Errorf("uses entry %d: missing required field: title", i)
		}
		if props.Category == "" {
			return nil, fmt.Errorf("uses entry %d (%s): missing required field: category", i, props.Title)
		}
		if props.Href != "" {
			if err := validateHref(props.Href); err != nil {
				return nil, fmt.Errorf("uses entry %d (%s): %w", i, props.Title, err)
			}
		}

		items = append(items, domain.ContentItem{
			Title:       props.Title,
			Category:    props.Category,
			Href:        props.Href,
			Description: props.Description,
		})
	}

	return items, nil
}

// validateHref ensures an authored link is an absolute http(s) URL.
func validateHref(href string) error {
	u, err := url.Parse(href)
	if err != nil {
		return fmt.Errorf("malformed href %q: %w", href, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("href %q must be an absolute http(s) URL", href)
	}
	if u.Host == "" {
		return fmt.Errorf("href %q has no host", href)
	}
	return nil
}
