package doctor

import "time"

// Entry is the rendered outcome of one diagnosis
type Entry struct {
	Info  `yaml:",inline"`
	State State `json:"state" yaml:"state"`
	// Symptoms and ManualRemedy are only filled for invalid results
	Symptoms     string `json:"symptoms,omitempty" yaml:"symptoms,omitempty"`
	ManualRemedy string `json:"manualRemedy,omitempty" yaml:"manualRemedy,omitempty"`
	// Errors lists problems met while examining
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
	// Error is set when the examination could not complete
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
	Data     any           `json:"data,omitempty" yaml:"data,omitempty"`
	Duration time.Duration `json:"-" yaml:"-"`
}

// Problem reports whether the entry needs attention
func (e Entry) Problem() bool {
	return e.State != Valid || len(e.Errors) > 0
}

// Report collects the entries of a doctor run in examination order
type Report struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Count returns the number of entries in state s
func (r *Report) Count(s State) int {
	n := 0
	for _, e := range r.Entries {
		if e.State == s {
			n++
		}
	}
	return n
}

// ErrorCount returns the number of non fatal errors across all entries
func (r *Report) ErrorCount() int {
	n := 0
	for _, e := range r.Entries {
		n += len(e.Errors)
	}
	return n
}

// HasProblems reports whether any diagnosis is invalid, errored, or reported
// errors
func (r *Report) HasProblems() bool {
	for _, e := range r.Entries {
		if e.Problem() {
			return true
		}
	}
	return false
}

// Duration is the total examination time
func (r *Report) Duration() time.Duration {
	var d time.Duration
	for _, e := range r.Entries {
		d += e.Duration
	}
	return d
}

// Summary condenses a report into counts
type Summary struct {
	Total   int  `json:"total" yaml:"total"`
	Valid   int  `json:"valid" yaml:"valid"`
	Invalid int  `json:"invalid" yaml:"invalid"`
	Errored int  `json:"errored" yaml:"errored"`
	Errors  int  `json:"errors" yaml:"errors"`
	Healthy bool `json:"healthy" yaml:"healthy"`
}

// Summary returns the counts of r
func (r *Report) Summary() Summary {
	return Summary{
		Total:   len(r.Entries),
		Valid:   r.Count(Valid),
		Invalid: r.Count(Invalid),
		Errored: r.Count(Errored),
		Errors:  r.ErrorCount(),
		Healthy: !r.HasProblems(),
	}
}
