package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewLocal(dir)
	require.NoError(t, err)

	path, err := store.Put(ctx, "1714560000000_report.pdf", strings.NewReader("%PDF content"), 12)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, "1714560000000_report.pdf", filepath.Base(path))

	rc, err := store.Open(ctx, path)
	require.NoError(t, err)
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, "%PDF content", string(b))

	require.NoError(t, store.Delete(ctx, path))

	_, err = store.Open(ctx, path)
	assert.ErrorIs(t, err, ErrObjectNotFound)

	assert.ErrorIs(t, store.Delete(ctx, path), ErrObjectNotFound)
}

func TestLocalStore_CollisionIsRejected(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	path, err := store.Put(ctx, "1714560000000_same.txt", strings.NewReader("first"), 5)
	require.NoError(t, err)

	// Same millisecond, same sanitized name: the second writer must fail
	// instead of overwriting.
	_, err = store.Put(ctx, "1714560000000_same.txt", strings.NewReader("second"), 6)
	assert.ErrorIs(t, err, ErrObjectExists)

	rc, err := store.Open(ctx, path)
	require.NoError(t, err)
	b, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "first", string(b))
}

func TestNewLocal_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocal(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewLocal_EmptyDir(t *testing.T) {
	_, err := NewLocal("")
	assert.Error(t, err)
}
