package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFS(t *testing.T) {
	fsys := NewOS()
	require.NotNil(t, fsys)

	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target.txt")
	require.NoError(t, os.WriteFile(target, []byte("hello"), 0644))

	link := filepath.Join(tmpDir, "link")
	require.NoError(t, os.Symlink("target.txt", link))

	dangling := filepath.Join(tmpDir, "dangling")
	require.NoError(t, os.Symlink("missing.txt", dangling))

	t.Run("lstat sees the link", func(t *testing.T) {
		info, err := fsys.Lstat(link)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&fs.ModeSymlink)
	})

	t.Run("stat follows the link", func(t *testing.T) {
		info, err := fsys.Stat(link)
		require.NoError(t, err)
		assert.Zero(t, info.Mode()&fs.ModeSymlink)
		assert.Equal(t, int64(5), info.Size())
	})

	t.Run("readlink returns raw target", func(t *testing.T) {
		dest, err := fsys.Readlink(link)
		require.NoError(t, err)
		assert.Equal(t, "target.txt", dest)
	})

	t.Run("stat of dangling link is not-exist", func(t *testing.T) {
		_, err := fsys.Stat(dangling)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("readdir lists entries", func(t *testing.T) {
		entries, err := fsys.ReadDir(tmpDir)
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})
}
