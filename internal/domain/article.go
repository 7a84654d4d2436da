package domain

import (
	"html/template"
	"strings"
	"time"
	"unicode"
)

// Article represents a long-form entry: authorship metadata plus a body
// already converted to HTML. Articles are built once at load time and
// never mutated afterwards.
type Article struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// Slug is the canonical URL fragment, derived from the source
	// filename unless overridden in frontmatter.
	// Example: "crafting-a-dockerfile"
	Slug string

	// Title is the display title. Always non-empty.
	Title string

	// ─────────────────────────────
	// Authorship
	// ─────────────────────────────

	Author string
	Date   time.Time

	// ─────────────────────────────
	// Content
	// ─────────────────────────────

	// Description is the one-line summary shown on listing pages.
	Description string

	// Body is the rendered HTML body. May be empty; an article with an
	// empty body still renders its metadata header.
	Body template.HTML

	// Draft articles are loaded but excluded from listings and export.
	Draft bool
}

// Page is a standalone long-form page such as About: a title and a
// rendered HTML body, no authorship metadata.
type Page struct {
	Title string
	Body  template.HTML
}

// Slugify derives a URL slug from a title or filename stem.
// Letters and digits are lowercased, every other run of characters
// collapses to a single hyphen.
// Example: "Crafting a Dockerfile!" -> "crafting-a-dockerfile"
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		pendingSep = true
	}
	return b.String()
}
