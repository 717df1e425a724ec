package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leavn/application/ports"
)

func openTestStore(t *testing.T) *KeyValueStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "settings:user-1", []byte(`{"theme":"dark"}`)))

	value, err := store.Get(ctx, "settings:user-1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"theme":"dark"}`), value)

	_, err = store.Get(ctx, "settings:user-2")
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)
}

func TestSQLiteUpsert(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", []byte("first")))
	require.NoError(t, store.Set(ctx, "key", []byte("second")))

	value, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), value)
}

func TestSQLiteDelete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "key", []byte("value")))
	require.NoError(t, store.Delete(ctx, "key"))

	_, err := store.Get(ctx, "key")
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)

	assert.NoError(t, store.Delete(ctx, "key"))
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "favorites:user-1", []byte(`["grief-and-loss"]`)))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, "favorites:user-1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`["grief-and-loss"]`), value)
}
