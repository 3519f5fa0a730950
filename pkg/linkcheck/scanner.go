package linkcheck

import (
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/arthur-debert/bitdoctor/pkg/errors"
	"github.com/arthur-debert/bitdoctor/pkg/logging"
	"github.com/arthur-debert/bitdoctor/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
)

const (
	// NodeModulesDir and ScopeDir form the marker subpath of installed
	// component links
	NodeModulesDir = "node_modules"
	ScopeDir       = "@bit"

	// CandidatePattern selects everything below any nested marker subpath,
	// the marker directory included
	CandidatePattern = "**/" + NodeModulesDir + "/" + ScopeDir + "/**"
)

// MarkerSubpath returns the marker subpath using the OS separator
func MarkerSubpath() string {
	return filepath.Join(NodeModulesDir, ScopeDir)
}

// Scanner lists candidate link paths under a root directory
type Scanner struct {
	fs types.FS
}

// NewScanner creates a Scanner reading directories through fsys
func NewScanner(fsys types.FS) *Scanner {
	return &Scanner{fs: fsys}
}

// Scan returns the absolute paths under root matching CandidatePattern,
// sorted and each listed once. Entries whose name starts with a dot are
// neither listed nor descended into, and linked directories are listed but
// not followed. A root that does not exist yields no candidates and no error.
func (s *Scanner) Scan(root string) ([]string, error) {
	logger := logging.GetLogger("linkcheck.scanner")

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", root)
	}

	if _, err := s.fs.Stat(absRoot); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("root", absRoot).Msg("components directory does not exist, nothing to scan")
			return []string{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read components directory %s", absRoot).
			WithDetail("root", absRoot)
	}

	candidates := []string{}
	var walk func(dir, rel string)
	walk = func(dir, rel string) {
		entries, err := s.fs.ReadDir(dir)
		if err != nil {
			logger.Debug().Err(err).Str("dir", dir).Msg("skipping unreadable directory")
			return
		}
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}
			childRel := path.Join(rel, name)
			childPath := filepath.Join(dir, name)
			if doublestar.MatchUnvalidated(CandidatePattern, childRel) {
				candidates = append(candidates, childPath)
			}
			if entry.IsDir() {
				walk(childPath, childRel)
			}
		}
	}
	walk(absRoot, "")

	slices.Sort(candidates)

	logger.Debug().
		Str("root", absRoot).
		Int("candidates", len(candidates)).
		Msg("scan complete")

	return candidates, nil
}
