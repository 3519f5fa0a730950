package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/bitdoctor/pkg/types"
)

// Op names a types.FS operation for fault injection
type Op string

const (
	OpStat     Op = "stat"
	OpLstat    Op = "lstat"
	OpReadlink Op = "readlink"
	OpReadDir  Op = "readdir"
)

type fault struct {
	op   Op
	path string
}

// FaultFS wraps a types.FS and fails selected operations on selected paths.
// Every call is counted so tests can assert how often a path was touched.
type FaultFS struct {
	base types.FS

	mu     sync.Mutex
	faults map[fault]error
	calls  map[fault]int
}

// NewFaultFS wraps base
func NewFaultFS(base types.FS) *FaultFS {
	return &FaultFS{
		base:   base,
		faults: make(map[fault]error),
		calls:  make(map[fault]int),
	}
}

// Fail makes op on path return err wrapped in an *fs.PathError
func (f *FaultFS) Fail(op Op, path string, err error) *FaultFS {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.faults[fault{op: op, path: filepath.Clean(path)}] = err
	return f
}

// Calls returns how many times op was invoked on path
func (f *FaultFS) Calls(op Op, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[fault{op: op, path: filepath.Clean(path)}]
}

func (f *FaultFS) check(op Op, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := fault{op: op, path: filepath.Clean(path)}
	f.calls[key]++
	if err, ok := f.faults[key]; ok {
		return &fs.PathError{Op: string(op), Path: path, Err: err}
	}
	return nil
}

func (f *FaultFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.check(OpStat, name); err != nil {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *FaultFS) Lstat(name string) (fs.FileInfo, error) {
	if err := f.check(OpLstat, name); err != nil {
		return nil, err
	}
	return f.base.Lstat(name)
}

func (f *FaultFS) Readlink(name string) (string, error) {
	if err := f.check(OpReadlink, name); err != nil {
		return "", err
	}
	return f.base.Readlink(name)
}

func (f *FaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.check(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.base.ReadDir(name)
}

var _ types.FS = (*FaultFS)(nil)
