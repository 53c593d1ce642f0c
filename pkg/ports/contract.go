package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
)

// RunDraftStoreContract runs a suite of tests to verify that a DraftStore
// implementation adheres to the interface contract.
func RunDraftStoreContract(t *testing.T, store DraftStore) {
	ctx := context.Background()
	key := "contract-test-draft-" + time.Now().Format("20060102150405")

	t.Run("Set and Get", func(t *testing.T) {
		err := store.Set(ctx, key, []byte(`{"draft":true}`))
		require.NoError(t, err, "Set should not return error")

		value, err := store.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, []byte(`{"draft":true}`), value)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, []byte("v1")))
		require.NoError(t, store.Set(ctx, key, []byte("v2")))

		value, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), value)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, flow.ErrDraftNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, key, []byte("gone soon")))
		require.NoError(t, store.Delete(ctx, key))

		_, err := store.Get(ctx, key)
		assert.ErrorIs(t, err, flow.ErrDraftNotFound, "Get after Delete should return ErrDraftNotFound")
	})

	t.Run("Delete Non-Existent", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, "non-existent-"+key))
	})
}
