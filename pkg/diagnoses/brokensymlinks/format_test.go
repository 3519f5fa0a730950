package brokensymlinks

import (
	"testing"

	"github.com/arthur-debert/bitdoctor/pkg/linkcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSymptoms(t *testing.T) {
	data := &Data{BrokenSymlinks: []linkcheck.BrokenSymlink{
		{SymlinkPath: "/e/a/node_modules/@bit/x", BrokenPath: "../.store/x", PathToDelete: "/e/a"},
		{SymlinkPath: "/e/b/node_modules/@bit/y", BrokenPath: "/gone/y", PathToDelete: "/e/b"},
	}}

	got, err := FormatSymptoms(data)
	require.NoError(t, err)
	assert.Equal(t, "the following symlink files point to non-existent paths\n"+
		`symlink path: "/e/a/node_modules/@bit/x", broken link: "../.store/x"`+"\n"+
		`symlink path: "/e/b/node_modules/@bit/y", broken link: "/gone/y"`, got)
}

func TestFormatManualRemedy(t *testing.T) {
	data := &Data{BrokenSymlinks: []linkcheck.BrokenSymlink{
		{SymlinkPath: "/e/b/node_modules/@bit/x", PathToDelete: "/e/b"},
		{SymlinkPath: "/e/a/node_modules/@bit/x", PathToDelete: "/e/a"},
		{SymlinkPath: "/e/b/node_modules/@bit/y", PathToDelete: "/e/b"},
	}}

	got, err := FormatManualRemedy(data)
	require.NoError(t, err)
	assert.Equal(t, "please delete the following paths:\n/e/b\n/e/a", got)
}

func TestFormat_EmptyData(t *testing.T) {
	got, err := FormatSymptoms(&Data{})
	require.NoError(t, err)
	assert.Equal(t, "the following symlink files point to non-existent paths\n", got)

	got, err = FormatManualRemedy(&Data{})
	require.NoError(t, err)
	assert.Equal(t, "please delete the following paths:\n", got)
}
