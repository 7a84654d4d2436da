package domain

// ContentItem represents a single displayable entry on the site,
// typically a tool or resource on the uses page.
type ContentItem struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// Title is the display name of the entry. Always non-empty:
	// items without a title are rejected at load time.
	Title string

	// Href is an optional external link for the entry.
	// Example: https://neovim.io/
	// Rendered links always open in an isolated browsing context.
	Href string

	// Category is the group this entry belongs to.
	// Example: "Workstation", "Development tools"
	Category string

	// ─────────────────────────────
	// Presentation
	// ─────────────────────────────

	// Description is the card body shown under the title.
	Description string
}

// ContentGroup is a named bucket of items sharing a category.
// Groups and their items keep source declaration order.
type ContentGroup struct {
	Name  string
	Items []ContentItem
}

// GroupByCategory partitions items into one group per distinct category.
// Categories appear in first-seen order and items keep their declaration
// order within each group. The partition is lossless: concatenating the
// groups in order yields the input sequence. Empty input yields nil.
func GroupByCategory(items []ContentItem) []ContentGroup {
	if len(items) == 0 {
		return nil
	}

	byName := make(map[string]int, len(items))
	groups := make([]ContentGroup, 0, 4)

	for _, item := range items {
		idx, ok := byName[item.Category]
		if !ok {
			idx = len(groups)
			byName[item.Category] = idx
			groups = append(groups, ContentGroup{Name: item.Category})
		}
		groups[idx].Items = append(groups[idx].Items, item)
	}

	return groups
}
