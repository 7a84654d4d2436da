package index

import (
	"sync"
	"time"

	"github.com/ndelacroix/folio/internal/domain"
)

// MemoryIndex holds the loaded site content: articles, uses groups and the
// about page. Every reload replaces a snapshot wholesale, so readers never
// observe a half-loaded site.
type MemoryIndex struct {
	mu         sync.RWMutex
	articles   []*domain.Article          // date-descending, as loaded
	bySlug     map[string]*domain.Article // slug -> article
	groups     []domain.ContentGroup      // first-seen category order
	about      *domain.Page
	lastReload time.Time
}

// NewMemoryIndex creates an empty memory index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		bySlug: make(map[string]*domain.Article),
	}
}

// UpdateArticles replaces all articles in the index.
func (idx *MemoryIndex) UpdateArticles(articles []*domain.Article) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.articles = articles
	idx.bySlug = make(map[string]*domain.Article, len(articles))
	for _, a := range articles {
		idx.bySlug[a.Slug] = a
	}
	idx.lastReload = time.Now()
}

// UpdateGroups replaces the uses content groups.
func (idx *MemoryIndex) UpdateGroups(groups []domain.ContentGroup) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.groups = groups
	idx.lastReload = time.Now()
}

// UpdateAbout replaces the about page.
func (idx *MemoryIndex) UpdateAbout(page *domain.Page) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.about = page
	idx.lastReload = time.Now()
}

// GetArticle retrieves an article by slug, drafts included.
func (idx *MemoryIndex) GetArticle(slug string) (*domain.Article, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	a, ok := idx.bySlug[slug]
	return a, ok
}

// GetArticles returns the published articles in load order (newest first).
// Drafts are excluded; they stay reachable by slug.
func (idx *MemoryIndex) GetArticles() []*domain.Article {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]*domain.Article, 0, len(idx.articles))
	for _, a := range idx.articles {
		if a.Draft {
			continue
		}
		out = append(out, a)
	}
	return out
}

// GetGroups returns the uses content groups in first-seen order.
func (idx *MemoryIndex) GetGroups() []domain.ContentGroup {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.groups
}

// GetAbout returns the about page, or nil if none is loaded.
func (idx *MemoryIndex) GetAbout() *domain.Page {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.about
}

// ArticleCount returns the number of loaded articles, drafts included.
func (idx *MemoryIndex) ArticleCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.articles)
}

// GroupCount returns the number of uses groups.
func (idx *MemoryIndex) GroupCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.groups)
}

// GetLastReload returns the timestamp of the last content update.
func (idx *MemoryIndex) GetLastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}
