package doctor

import "context"

// Info describes a diagnosis
type Info struct {
	// ID is the stable, command-line friendly identifier
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
}

// Result is the outcome of one examination.
// Data is diagnosis specific; Errors holds problems that did not prevent the
// examination from completing.
type Result struct {
	Valid  bool
	Data   any
	Errors []error
}

// Diagnosis is a single health check
type Diagnosis interface {
	Info() Info
	// Examine inspects the workspace. An error means no result could be
	// produced at all.
	Examine(ctx context.Context) (*Result, error)
	// FormatSymptoms describes what is wrong in result
	FormatSymptoms(result *Result) (string, error)
	// FormatManualRemedy describes what the user should do about result
	FormatManualRemedy(result *Result) (string, error)
}
