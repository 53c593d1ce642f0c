package ports

import (
	"context"
	"encoding/json"
)

// DraftStore is durable key-value storage scoped to the authoring device:
// the in-progress draft and the operator's admin credential live here. Writes
// are expected to be debounced by the caller (see internal/draft); the store
// itself is a plain get/set/delete surface.
type DraftStore interface {
	// Get retrieves the value for a key.
	// Returns flow.ErrDraftNotFound if the key has no value.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under a key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Article is one troubleshooting content article as the remote store sees
// it. DecisionTree holds the encoded flow graph (pkg/wire format) and may be
// empty for articles without a branching flow.
type Article struct {
	ID           string          `json:"id" mapstructure:"id"`
	Title        string          `json:"title" mapstructure:"title"`
	Summary      string          `json:"summary" mapstructure:"summary"`
	DecisionTree json.RawMessage `json:"decision_tree,omitempty" mapstructure:"-"`
}

// ArticleStore is the remote content-article collaborator. Persistence and
// cross-device sync belong to it, not to this core.
type ArticleStore interface {
	// Create stores a new article and returns its assigned id.
	Create(ctx context.Context, a Article) (string, error)

	// Update replaces an existing article's content.
	// Returns flow.ErrArticleNotFound for unknown ids.
	Update(ctx context.Context, a Article) error

	// Get retrieves an article by id.
	// Returns flow.ErrArticleNotFound for unknown ids.
	Get(ctx context.Context, id string) (Article, error)

	// List returns all articles.
	List(ctx context.Context) ([]Article, error)
}
