package linkcheck

import (
	"path/filepath"
	"strings"
)

// PathToDelete returns the environment directory that holds symlinkPath: the
// part of the path before the first node_modules/@bit marker, without the
// separator that precedes the marker. The marker counts when it is followed
// by a separator or ends the path. Deleting it makes the package manager
// reinstall the environment.
//
// The result is always a strict ancestor of symlinkPath. A path without the
// marker maps to its parent directory.
func PathToDelete(symlinkPath string) string {
	sep := string(filepath.Separator)
	marker := sep + MarkerSubpath()

	for from := 0; ; {
		idx := strings.Index(symlinkPath[from:], marker)
		if idx < 0 {
			break
		}
		idx += from
		end := idx + len(marker)
		if end == len(symlinkPath) || symlinkPath[end] == filepath.Separator {
			if idx == 0 {
				return sep
			}
			return symlinkPath[:idx]
		}
		from = idx + 1
	}
	// Relative path starting with the marker
	if symlinkPath == MarkerSubpath() || strings.HasPrefix(symlinkPath, MarkerSubpath()+sep) {
		return "."
	}
	return filepath.Dir(symlinkPath)
}

// UniquePathsToDelete returns the distinct PathToDelete values of broken in
// first-seen order
func UniquePathsToDelete(broken []BrokenSymlink) []string {
	seen := make(map[string]struct{}, len(broken))
	unique := make([]string, 0, len(broken))
	for _, b := range broken {
		if _, ok := seen[b.PathToDelete]; ok {
			continue
		}
		seen[b.PathToDelete] = struct{}{}
		unique = append(unique, b.PathToDelete)
	}
	return unique
}
