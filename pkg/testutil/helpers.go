package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateFileT creates a file in fs with the given content
func CreateFileT(t *testing.T, fs *MemoryFS, path, content string) {
	t.Helper()
	require.NoError(t, fs.WriteFile(path, []byte(content), 0644), "failed to create file %s", path)
}

// CreateDirT creates a directory tree in fs
func CreateDirT(t *testing.T, fs *MemoryFS, path string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(path, 0755), "failed to create directory %s", path)
}

// CreateSymlinkT creates link pointing at target in fs
func CreateSymlinkT(t *testing.T, fs *MemoryFS, target, link string) {
	t.Helper()
	require.NoError(t, fs.Symlink(target, link), "failed to create symlink %s -> %s", link, target)
}

// WriteOSFileT creates a file on disk, creating parent directories
func WriteOSFileT(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "failed to create file %s", path)
}

// MkdirOST creates a directory tree on disk
func MkdirOST(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0755), "failed to create directory %s", path)
}

// SymlinkOST creates link pointing at target on disk, creating link's parent
func SymlinkOST(t *testing.T, target, link string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0755))
	require.NoError(t, os.Symlink(target, link), "failed to create symlink %s -> %s", link, target)
}
