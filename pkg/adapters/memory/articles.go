package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/ports"
)

// Articles implements ports.ArticleStore in memory. It backs the dev server
// and tests; production talks to the remote API adapter instead.
type Articles struct {
	mu   sync.RWMutex
	data map[string]ports.Article
	seq  int
}

// NewArticles creates an empty in-memory article store.
func NewArticles() *Articles {
	return &Articles{data: make(map[string]ports.Article)}
}

// Create assigns an id and stores the article.
func (a *Articles) Create(ctx context.Context, article ports.Article) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.seq++
	article.ID = fmt.Sprintf("article-%d", a.seq)
	a.data[article.ID] = article
	return article.ID, nil
}

// Update replaces an existing article.
func (a *Articles) Update(ctx context.Context, article ports.Article) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.data[article.ID]; !ok {
		return flow.ErrArticleNotFound
	}
	a.data[article.ID] = article
	return nil
}

// Get retrieves an article by id.
func (a *Articles) Get(ctx context.Context, id string) (ports.Article, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	article, ok := a.data[id]
	if !ok {
		return ports.Article{}, flow.ErrArticleNotFound
	}
	return article, nil
}

// List returns all articles sorted by id for deterministic output.
func (a *Articles) List(ctx context.Context) ([]ports.Article, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]ports.Article, 0, len(a.data))
	for _, article := range a.data {
		out = append(out, article)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
