package brokensymlinks

import (
	"context"

	"github.com/arthur-debert/bitdoctor/pkg/doctor"
	"github.com/arthur-debert/bitdoctor/pkg/errors"
	"github.com/arthur-debert/bitdoctor/pkg/filesystem"
	"github.com/arthur-debert/bitdoctor/pkg/linkcheck"
	"github.com/arthur-debert/bitdoctor/pkg/logging"
	"github.com/arthur-debert/bitdoctor/pkg/types"
)

const (
	ID          = "broken-symlinks"
	Name        = "Check invalid link files"
	Description = "Validate Bit generated symlink files within environment directory"
	Category    = "bit-core-files"
)

// RootProvider supplies the components directory to examine
type RootProvider interface {
	ComponentsDir(ctx context.Context) (string, error)
}

// StaticRoot is a RootProvider for a known directory
type StaticRoot string

// ComponentsDir returns the directory itself
func (s StaticRoot) ComponentsDir(context.Context) (string, error) {
	return string(s), nil
}

// Data is the diagnosis specific part of a doctor.Result
type Data struct {
	BrokenSymlinks []linkcheck.BrokenSymlink  `json:"brokenSymlinks" yaml:"brokenSymlinks"`
	Unresolved     []linkcheck.UnresolvedLink `json:"unresolved,omitempty" yaml:"unresolved,omitempty"`
}

// Options configures a Diagnosis
type Options struct {
	// FS is used to scan and resolve links. Defaults to the OS filesystem.
	FS types.FS
	// Scanner lists candidates. Defaults to a scanner over FS.
	Scanner *linkcheck.Scanner
	// MaxWorkers caps concurrent resolutions; 0 means no cap.
	MaxWorkers int
}

// Diagnosis checks the components directory for dangling links
type Diagnosis struct {
	root    RootProvider
	fs      types.FS
	scanner *linkcheck.Scanner
	workers int
}

var _ doctor.Diagnosis = (*Diagnosis)(nil)

// New creates the diagnosis for the directory supplied by root
func New(root RootProvider, opts Options) *Diagnosis {
	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Scanner == nil {
		opts.Scanner = linkcheck.NewScanner(opts.FS)
	}
	return &Diagnosis{
		root:    root,
		fs:      opts.FS,
		scanner: opts.Scanner,
		workers: opts.MaxWorkers,
	}
}

// Info implements doctor.Diagnosis
func (d *Diagnosis) Info() doctor.Info {
	return doctor.Info{
		ID:          ID,
		Name:        Name,
		Description: Description,
		Category:    Category,
	}
}

// Examine implements doctor.Diagnosis
func (d *Diagnosis) Examine(ctx context.Context) (*doctor.Result, error) {
	dir, err := d.root.ComponentsDir(ctx)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrWorkspaceNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, errors.ErrWorkspaceNotFound, "cannot locate components directory")
	}
	return d.check(dir)
}

// Check examines root directly, without a RootProvider
func Check(root string) (*doctor.Result, error) {
	return New(StaticRoot(root), Options{}).check(root)
}

func (d *Diagnosis) check(root string) (*doctor.Result, error) {
	logger := logging.GetLogger("diagnoses.brokensymlinks")

	candidates, err := d.scanner.Scan(root)
	if err != nil {
		return nil, err
	}

	collection := linkcheck.NewCollector(linkcheck.NewResolver(d.fs), linkcheck.WithLimit(d.workers)).
		Collect(candidates)

	data := &Data{
		BrokenSymlinks: collection.Broken,
		Unresolved:     collection.Unresolved,
	}
	if data.BrokenSymlinks == nil {
		data.BrokenSymlinks = []linkcheck.BrokenSymlink{}
	}

	result := &doctor.Result{
		Valid: len(data.BrokenSymlinks) == 0,
		Data:  data,
	}
	for _, u := range data.Unresolved {
		result.Errors = append(result.Errors, u.Err)
	}

	logger.Info().
		Str("root", root).
		Int("candidates", collection.Checked).
		Int("broken", len(data.BrokenSymlinks)).
		Int("unresolved", len(data.Unresolved)).
		Msg("examined components directory")

	return result, nil
}

// FormatSymptoms implements doctor.Diagnosis
func (d *Diagnosis) FormatSymptoms(result *doctor.Result) (string, error) {
	data, err := dataOf(result)
	if err != nil {
		return "", err
	}
	return FormatSymptoms(data)
}

// FormatManualRemedy implements doctor.Diagnosis
func (d *Diagnosis) FormatManualRemedy(result *doctor.Result) (string, error) {
	data, err := dataOf(result)
	if err != nil {
		return "", err
	}
	return FormatManualRemedy(data)
}

func dataOf(result *doctor.Result) (*Data, error) {
	if result == nil {
		return nil, errors.New(errors.ErrInternal, "diagnosis result is missing, examine must run first")
	}
	if result.Data == nil {
		return nil, errors.New(errors.ErrInternal, "diagnosis data is missing, examine must run first")
	}
	data, ok := result.Data.(*Data)
	if !ok {
		return nil, errors.Newf(errors.ErrInternal, "unexpected diagnosis data of type %T", result.Data)
	}
	return data, nil
}
