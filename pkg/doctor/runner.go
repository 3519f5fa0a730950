package doctor

import (
	"context"

	"github.com/arthur-debert/bitdoctor/pkg/logging"
)

// Runner examines diagnoses one after the other
type Runner struct {
	diagnoses []Diagnosis
}

// NewRunner creates a Runner for diagnoses, examined in the given order
func NewRunner(diagnoses ...Diagnosis) *Runner {
	return &Runner{diagnoses: diagnoses}
}

// Run examines every diagnosis and never stops early. Symptoms and remedies
// are only formatted for invalid results.
func (r *Runner) Run(ctx context.Context) *Report {
	logger := logging.GetLogger("doctor.runner")
	logger.Debug().Int("diagnoses", len(r.diagnoses)).Msg("running diagnoses")

	report := &Report{Entries: make([]Entry, 0, len(r.diagnoses))}
	for _, d := range r.diagnoses {
		report.Entries = append(report.Entries, examine(ctx, d))
	}

	logger.Debug().
		Int("valid", report.Count(Valid)).
		Int("invalid", report.Count(Invalid)).
		Int("errored", report.Count(Errored)).
		Msg("run complete")
	return report
}

func examine(ctx context.Context, d Diagnosis) Entry {
	exam := NewExamination(d)
	entry := Entry{Info: d.Info()}

	if err := exam.Run(ctx); err != nil {
		entry.State = exam.State()
		entry.Error = err.Error()
		entry.Duration = exam.Duration()
		return entry
	}

	result := exam.Result()
	entry.State = exam.State()
	entry.Duration = exam.Duration()
	entry.Data = result.Data
	for _, err := range result.Errors {
		entry.Errors = append(entry.Errors, err.Error())
	}

	if entry.State == Invalid {
		var err error
		if entry.Symptoms, err = exam.Symptoms(); err != nil {
			entry.Errors = append(entry.Errors, err.Error())
		}
		if entry.ManualRemedy, err = exam.ManualRemedy(); err != nil {
			entry.Errors = append(entry.Errors, err.Error())
		}
	}
	return entry
}
