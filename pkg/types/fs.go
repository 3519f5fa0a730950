package types

import (
	"io/fs"
)

// FS is the read-only filesystem view used by diagnoses.
// Diagnoses never modify the tree they examine, so no write operations
// are part of this interface.
type FS interface {
	// Stat follows symbolic links
	Stat(name string) (fs.FileInfo, error)

	// Lstat does not follow symbolic links
	Lstat(name string) (fs.FileInfo, error)

	// Readlink returns the raw destination of a symbolic link
	Readlink(name string) (string, error)

	ReadDir(name string) ([]fs.DirEntry, error)
}
