package linkcheck

import (
	"io/fs"
	"syscall"

	"github.com/arthur-debert/bitdoctor/pkg/errors"
	"github.com/arthur-debert/bitdoctor/pkg/types"
)

// Resolver classifies candidate paths
type Resolver struct {
	fs types.FS
}

// NewResolver creates a Resolver reading through fsys
func NewResolver(fsys types.FS) *Resolver {
	return &Resolver{fs: fsys}
}

// Resolve reads path as a symbolic link and checks whether its target exists.
// Each filesystem call is made at most once.
func (r *Resolver) Resolve(path string) Resolution {
	info, err := r.fs.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Resolution{Path: path, Status: NotALink}
		}
		return failed(path, "", errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", path))
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return Resolution{Path: path, Status: NotALink}
	}

	target, err := r.fs.Readlink(path)
	if err != nil {
		// Replaced or removed since Lstat
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.EINVAL) {
			return Resolution{Path: path, Status: NotALink}
		}
		return failed(path, "", errors.Wrapf(err, errors.ErrFileAccess, "cannot read link %s", path))
	}

	// Stat through the link so relative targets resolve against the link's
	// own directory, exactly as the kernel does.
	if _, err := r.fs.Stat(path); err != nil {
		if isMissing(err) {
			return Resolution{Path: path, Status: TargetMissing, Target: target}
		}
		return failed(path, target, errors.Wrapf(err, errors.ErrFileAccess, "cannot check target of %s", path).
			WithDetail("target", target))
	}

	return Resolution{Path: path, Status: TargetExists, Target: target}
}

func failed(path, target string, err error) Resolution {
	return Resolution{Path: path, Status: ResolutionError, Target: target, Err: err}
}

// isMissing reports whether a Stat error means the target is not there.
// ENOTDIR (a path component is a file) and ELOOP (link cycle) both leave the
// link pointing at nothing.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, syscall.ELOOP)
}
