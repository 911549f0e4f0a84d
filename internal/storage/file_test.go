package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = fs.Load(ctx, KeyUsers)
	assert.ErrorIs(t, err, ErrNotFound)

	payload := []byte(`[{"id":"u1"}]`)
	require.NoError(t, fs.Save(ctx, KeyUsers, payload))

	got, err := fs.Load(ctx, KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// Overwrites replace, not append.
	require.NoError(t, fs.Save(ctx, KeyUsers, []byte(`[]`)))
	got, err = fs.Load(ctx, KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, fs.Save(context.Background(), KeyData, []byte(`{}`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "data.json", entries[0].Name())
	assert.Equal(t, ".json", filepath.Ext(entries[0].Name()))
}

func TestNewFileStoreRequiresDir(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}
