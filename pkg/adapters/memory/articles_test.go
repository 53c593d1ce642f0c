package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/adapters/memory"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/ports"
)

func TestArticles_CRUD(t *testing.T) {
	store := memory.NewArticles()
	ctx := context.Background()

	id, err := store.Create(ctx, ports.Article{Title: "Router won't boot"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Router won't boot", got.Title)

	got.Summary = "Updated"
	require.NoError(t, store.Update(ctx, got))
	got, err = store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.Summary)
}

func TestArticles_NotFound(t *testing.T) {
	store := memory.NewArticles()
	ctx := context.Background()

	_, err := store.Get(ctx, "ghost")
	assert.ErrorIs(t, err, flow.ErrArticleNotFound)

	err = store.Update(ctx, ports.Article{ID: "ghost"})
	assert.ErrorIs(t, err, flow.ErrArticleNotFound)
}

func TestArticles_ListIsSorted(t *testing.T) {
	store := memory.NewArticles()
	ctx := context.Background()

	for _, title := range []string{"third", "first", "second"} {
		_, err := store.Create(ctx, ports.Article{Title: title})
		require.NoError(t, err)
	}

	articles, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 3)
	for i := 1; i < len(articles); i++ {
		assert.Less(t, articles[i-1].ID, articles[i].ID)
	}
}
