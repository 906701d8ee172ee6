package mdstore_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/mdtodo/internal/model"
	"github.com/idilsaglam/mdtodo/internal/store/mdstore"
)

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	items, err := mdstore.Load(context.Background(), filepath.Join(t.TempDir(), "TODO.md"))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLoadExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "TODO.md")
	require.NoError(t, os.WriteFile(path, []byte("# TODO\n\n- [ ] Buy milk\n- [X] Pay bills\n"), 0o644))

	items, err := mdstore.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []model.Item{
		{Text: "Buy milk"},
		{Text: "Pay bills", Done: true},
	}, items)
}

func TestLoadUnreadable(t *testing.T) {
	t.Parallel()

	// A directory cannot be read as a file.
	_, err := mdstore.Load(context.Background(), t.TempDir())
	require.Error(t, err)
}

func TestLoadPermissionDenied(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits not enforced")
	}

	path := filepath.Join(t.TempDir(), "TODO.md")
	require.NoError(t, os.WriteFile(path, []byte("# TODO\n\n"), 0o000))

	_, err := mdstore.Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read file")
}

func TestSaveThenLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "TODO.md")
	items := []model.Item{{Text: "a"}, {Text: "b", Done: true}}

	require.NoError(t, mdstore.Save(context.Background(), path, items))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# TODO\n\n- [ ] a\n- [X] b\n", string(raw))

	got, err := mdstore.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestSaveEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "TODO.md")
	require.NoError(t, mdstore.Save(context.Background(), path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# TODO\n\n", string(raw))
}

func TestSaveUnwritable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing-dir", "TODO.md")
	err := mdstore.Save(context.Background(), path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write file")
}
