package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreCreatesDataDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStoreReadMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	value, err := store.Read(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestFileStoreWriteReadRemove(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Write(ctx, "drinks-manager-sales", []byte(`[{"id":"1"}]`)))

	value, err := store.Read(ctx, "drinks-manager-sales")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), value)

	require.NoError(t, store.Remove(ctx, "drinks-manager-sales"))

	value, err = store.Read(ctx, "drinks-manager-sales")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestFileStoreRemoveMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove(context.Background(), "nope"))
}

func TestFileStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Write(ctx, "k", []byte("one")))
	require.NoError(t, store.Write(ctx, "k", []byte("two")))

	value, err := store.Read(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), value)

	// No temp files left behind after the rename
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "k.json", entries[0].Name())
}
