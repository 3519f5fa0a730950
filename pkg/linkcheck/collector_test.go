package linkcheck

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/arthur-debert/bitdoctor/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_AllTargetsExist(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	testutil.CreateDirT(t, mfs, "/env/pkgA/node_modules/.store/foo")
	testutil.CreateSymlinkT(t, mfs, "../.store/foo", "/env/pkgA/node_modules/@bit/foo")

	got := NewCollector(NewResolver(mfs)).Collect([]string{"/env/pkgA/node_modules/@bit/foo"})

	assert.Equal(t, 1, got.Checked)
	assert.Empty(t, got.Broken)
	assert.Empty(t, got.Unresolved)
}

func TestCollector_BrokenLink(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	testutil.CreateSymlinkT(t, mfs, "/nonexistent/x", "/env/pkgA/node_modules/@bit/foo")

	got := NewCollector(NewResolver(mfs)).Collect([]string{"/env/pkgA/node_modules/@bit/foo"})

	require.Len(t, got.Broken, 1)
	assert.Equal(t, BrokenSymlink{
		SymlinkPath:  "/env/pkgA/node_modules/@bit/foo",
		BrokenPath:   "/nonexistent/x",
		PathToDelete: "/env/pkgA",
	}, got.Broken[0])
	assert.Empty(t, got.Unresolved)
}

func TestCollector_SharedEnvironment(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	testutil.CreateSymlinkT(t, mfs, "/gone/a", "/env/pkgA/node_modules/@bit/a")
	testutil.CreateSymlinkT(t, mfs, "/gone/b", "/env/pkgA/node_modules/@bit/b")

	got := NewCollector(NewResolver(mfs)).Collect([]string{
		"/env/pkgA/node_modules/@bit/a",
		"/env/pkgA/node_modules/@bit/b",
	})

	require.Len(t, got.Broken, 2)
	assert.Equal(t, []string{"/env/pkgA"}, UniquePathsToDelete(got.Broken))
}

func TestCollector_UnresolvedKeptApart(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	testutil.CreateDirT(t, mfs, "/env/pkgA/node_modules/.store/foo")
	testutil.CreateSymlinkT(t, mfs, "../.store/foo", "/env/pkgA/node_modules/@bit/foo")
	testutil.CreateSymlinkT(t, mfs, "/gone", "/env/pkgA/node_modules/@bit/bar")
	mfs.WithError("/env/pkgA/node_modules/.store/foo", fs.ErrPermission)

	got := NewCollector(NewResolver(mfs)).Collect([]string{
		"/env/pkgA/node_modules/@bit/foo",
		"/env/pkgA/node_modules/@bit/bar",
	})

	require.Len(t, got.Broken, 1)
	assert.Equal(t, "/env/pkgA/node_modules/@bit/bar", got.Broken[0].SymlinkPath)

	require.Len(t, got.Unresolved, 1)
	assert.Equal(t, "/env/pkgA/node_modules/@bit/foo", got.Unresolved[0].Path)
	assert.Equal(t, "../.store/foo", got.Unresolved[0].Target)
	assert.Equal(t, "permission denied", got.Unresolved[0].Reason)
	assert.ErrorIs(t, got.Unresolved[0].Err, fs.ErrPermission)
}

func TestCollector_OrderFollowsInput(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	var paths []string
	for i := 0; i < 50; i++ {
		p := fmt.Sprintf("/env/pkg%02d/node_modules/@bit/comp", i)
		testutil.CreateSymlinkT(t, mfs, "/gone", p)
		paths = append(paths, p)
	}

	for _, limit := range []int{0, 1, 4} {
		t.Run(fmt.Sprintf("limit=%d", limit), func(t *testing.T) {
			got := NewCollector(NewResolver(mfs), WithLimit(limit)).Collect(paths)
			require.Len(t, got.Broken, len(paths))
			for i, b := range got.Broken {
				assert.Equal(t, paths[i], b.SymlinkPath)
			}
		})
	}
}

func TestCollector_Idempotent(t *testing.T) {
	mfs := testutil.NewMemoryFS()
	testutil.CreateSymlinkT(t, mfs, "/gone", "/env/pkgA/node_modules/@bit/a")
	testutil.CreateFileT(t, mfs, "/env/pkgA/node_modules/@bit/b.js", "")
	paths := []string{"/env/pkgA/node_modules/@bit/a", "/env/pkgA/node_modules/@bit/b.js"}

	collector := NewCollector(NewResolver(mfs))
	assert.Equal(t, collector.Collect(paths), collector.Collect(paths))
}

func TestCollector_NoCandidates(t *testing.T) {
	got := NewCollector(NewResolver(testutil.NewMemoryFS())).Collect(nil)
	assert.Equal(t, 0, got.Checked)
	assert.Empty(t, got.Broken)
	assert.Empty(t, got.Unresolved)
}
