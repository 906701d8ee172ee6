package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/mdtodo/internal/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates new file with default mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "TODO.md")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("hello")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(got))

		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fsutil.DefaultFileMode, fi.Mode().Perm())
	})

	t.Run("overwrites and keeps mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "TODO.md")
		require.NoError(t, os.WriteFile(path, []byte("original"), 0o600))
		require.NoError(t, os.Chmod(path, 0o600))

		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("new")))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))

		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "TODO.md")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("x")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "TODO.md", entries[0].Name())
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "TODO.md")
		err := fsutil.WriteAtomic(ctx, path, []byte("x"))
		require.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, path)
	})

	t.Run("target is a directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		err := fsutil.WriteAtomic(context.Background(), dir, []byte("x"))
		require.Error(t, err)
	})

	t.Run("missing parent directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nope", "TODO.md")
		err := fsutil.WriteAtomic(context.Background(), path, []byte("x"))
		require.Error(t, err)
	})
}
