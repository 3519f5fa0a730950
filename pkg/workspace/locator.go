package workspace

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/bitdoctor/pkg/errors"
	"github.com/arthur-debert/bitdoctor/pkg/logging"
	"github.com/arthur-debert/bitdoctor/pkg/types"
)

var (
	// DefaultMarkers are the files that identify a workspace root
	DefaultMarkers = []string{".bitmap", "workspace.jsonc", "bit.json"}
	// DefaultScopeDirs are the scope locations tried in order, relative to the root
	DefaultScopeDirs = []string{".bit", filepath.Join(".git", "bit")}
)

// DefaultComponentsDir is the components directory name inside the scope
const DefaultComponentsDir = "components"

// Options tunes how a Locator searches. Empty fields take the defaults.
type Options struct {
	Markers       []string
	ScopeDirs     []string
	ComponentsDir string
}

// Locator finds the workspace containing a start directory
type Locator struct {
	fs    types.FS
	start string
	opts  Options
}

// NewLocator creates a Locator that searches upwards from start
func NewLocator(fsys types.FS, start string, opts Options) *Locator {
	if len(opts.Markers) == 0 {
		opts.Markers = DefaultMarkers
	}
	if len(opts.ScopeDirs) == 0 {
		opts.ScopeDirs = DefaultScopeDirs
	}
	if opts.ComponentsDir == "" {
		opts.ComponentsDir = DefaultComponentsDir
	}
	return &Locator{fs: fsys, start: start, opts: opts}
}

// Root returns the workspace root directory
func (l *Locator) Root() (string, error) {
	logger := logging.GetLogger("workspace")

	dir, err := filepath.Abs(l.start)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", l.start)
	}

	for {
		for _, marker := range l.opts.Markers {
			if _, err := l.fs.Lstat(filepath.Join(dir, marker)); err == nil {
				logger.Debug().Str("root", dir).Str("marker", marker).Msg("workspace found")
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.Newf(errors.ErrWorkspaceNotFound, "no workspace found at or above %s", l.start).
		WithDetail("markers", l.opts.Markers)
}

// ScopePath returns the scope directory of the workspace
func (l *Locator) ScopePath() (string, error) {
	root, err := l.Root()
	if err != nil {
		return "", err
	}

	for _, scopeDir := range l.opts.ScopeDirs {
		candidate := filepath.Join(root, scopeDir)
		info, err := l.fs.Stat(candidate)
		if err == nil && info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Newf(errors.ErrWorkspaceNotFound, "workspace %s has no scope directory", root).
		WithDetail("root", root).
		WithDetail("scopeDirs", l.opts.ScopeDirs)
}

// ComponentsDir returns the directory holding installed component
// environments. The directory itself may not exist yet.
func (l *Locator) ComponentsDir(ctx context.Context) (string, error) {
	scope, err := l.ScopePath()
	if err != nil {
		return "", err
	}
	return filepath.Join(scope, l.opts.ComponentsDir), nil
}
