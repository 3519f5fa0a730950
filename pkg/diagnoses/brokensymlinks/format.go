package brokensymlinks

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/bitdoctor/pkg/errors"
	"github.com/arthur-debert/bitdoctor/pkg/linkcheck"
)

const (
	symptomsHeader = "the following symlink files point to non-existent paths\n"
	remedyHeader   = "please delete the following paths:\n"
)

// FormatSymptoms lists every broken link with its raw target
func FormatSymptoms(data *Data) (string, error) {
	if data == nil {
		return "", errors.New(errors.ErrInternal, "no diagnosis data to format")
	}

	lines := make([]string, 0, len(data.BrokenSymlinks))
	for _, b := range data.BrokenSymlinks {
		lines = append(lines, fmt.Sprintf(`symlink path: "%s", broken link: "%s"`, b.SymlinkPath, b.BrokenPath))
	}
	return symptomsHeader + strings.Join(lines, "\n"), nil
}

// FormatManualRemedy lists each directory to delete once
func FormatManualRemedy(data *Data) (string, error) {
	if data == nil {
		return "", errors.New(errors.ErrInternal, "no diagnosis data to format")
	}

	return remedyHeader + strings.Join(linkcheck.UniquePathsToDelete(data.BrokenSymlinks), "\n"), nil
}
