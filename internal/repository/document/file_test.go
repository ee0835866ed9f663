package document

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBlob_ReadMissing(t *testing.T) {
	b := NewFileBlob(filepath.Join(t.TempDir(), "nope.json"))
	_, err := b.Read(context.Background())
	assert.True(t, errors.Is(err, ErrBlobNotFound))
}

func TestFileBlob_WriteCreatesDirAndReplaces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "data", "seminars.json")
	b := NewFileBlob(path)
	ctx := context.Background()

	require.NoError(t, b.Write(ctx, []byte("first")))
	require.NoError(t, b.Write(ctx, []byte("second")))

	got, err := b.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
	assert.Equal(t, "seminars.json", entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestFileBlob_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := NewFileBlob(filepath.Join(t.TempDir(), "s.json"))
	assert.ErrorIs(t, b.Write(ctx, []byte("x")), context.Canceled)
	_, err := b.Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
