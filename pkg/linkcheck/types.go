package linkcheck

// LinkStatus is the outcome of resolving one candidate path
type LinkStatus int

const (
	// NotALink means the path is not a symbolic link, or no longer exists
	NotALink LinkStatus = iota
	// TargetExists means the path is a link and its target exists
	TargetExists
	// TargetMissing means the path is a link and its target does not exist
	TargetMissing
	// ResolutionError means the filesystem refused to answer
	ResolutionError
)

func (s LinkStatus) String() string {
	switch s {
	case NotALink:
		return "not-a-link"
	case TargetExists:
		return "target-exists"
	case TargetMissing:
		return "target-missing"
	case ResolutionError:
		return "resolution-error"
	default:
		return "unknown"
	}
}

// Resolution is the tagged result of resolving one candidate.
// Target is set whenever the link could be read; Err only for ResolutionError.
type Resolution struct {
	Path   string
	Status LinkStatus
	Target string
	Err    error
}

// BrokenSymlink is a symbolic link whose target does not exist
type BrokenSymlink struct {
	// SymlinkPath is the absolute path of the link
	SymlinkPath string `json:"symlinkPath" yaml:"symlinkPath"`
	// BrokenPath is the link's raw, unresolved target
	BrokenPath string `json:"brokenPath" yaml:"brokenPath"`
	// PathToDelete is the environment directory to remove
	PathToDelete string `json:"pathToDelete" yaml:"pathToDelete"`
}

// UnresolvedLink is a candidate that could not be classified
type UnresolvedLink struct {
	Path   string `json:"path" yaml:"path"`
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
	Reason string `json:"reason" yaml:"reason"`
	Err    error  `json:"-" yaml:"-"`
}

// Collection is everything the collector found in one pass
type Collection struct {
	Checked    int
	Broken     []BrokenSymlink
	Unresolved []UnresolvedLink
}
