package output

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic(t *testing.T) {
	t.Run("creates new file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "site.min.css")

		require.NoError(t, WriteAtomic(context.Background(), path, []byte("a{b:c}"), 0))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "a{b:c}", string(got))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultFileMode, info.Mode().Perm())
	})

	t.Run("keeps existing mode", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "site.css")
		require.NoError(t, os.WriteFile(path, []byte("a { b: c }"), 0o600))

		require.NoError(t, WriteAtomic(context.Background(), path, []byte("a{b:c}"), 0))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "site.css")

		require.NoError(t, WriteAtomic(context.Background(), path, []byte("x"), 0o644))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "site.css")
		err := WriteAtomic(ctx, path, []byte("x"), 0)

		require.ErrorIs(t, err, context.Canceled)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "site.css")

		assert.Error(t, WriteAtomic(context.Background(), path, []byte("x"), 0))
	})
}
