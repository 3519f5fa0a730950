// Package diagnoses wires the built-in diagnoses into a registry.
package diagnoses

import (
	"strings"

	"github.com/arthur-debert/bitdoctor/pkg/diagnoses/brokensymlinks"
	"github.com/arthur-debert/bitdoctor/pkg/doctor"
	"github.com/arthur-debert/bitdoctor/pkg/errors"
	"github.com/arthur-debert/bitdoctor/pkg/registry"
	"github.com/arthur-debert/bitdoctor/pkg/types"
)

// Deps are the collaborators shared by the built-in diagnoses
type Deps struct {
	Root       brokensymlinks.RootProvider
	FS         types.FS
	MaxWorkers int
}

// NewRegistry registers every built-in diagnosis, keyed by ID
func NewRegistry(deps Deps) registry.Registry[doctor.Diagnosis] {
	reg := registry.New[doctor.Diagnosis]()

	all := []doctor.Diagnosis{
		brokensymlinks.New(deps.Root, brokensymlinks.Options{
			FS:         deps.FS,
			MaxWorkers: deps.MaxWorkers,
		}),
	}
	for _, d := range all {
		registry.MustRegister(reg, d.Info().ID, d)
	}
	return reg
}

// Select returns the diagnoses named by ids in the given order, or all of
// them when ids is empty
func Select(reg registry.Registry[doctor.Diagnosis], ids []string) ([]doctor.Diagnosis, error) {
	if len(ids) == 0 {
		return reg.Items(), nil
	}

	selected := make([]doctor.Diagnosis, 0, len(ids))
	for _, id := range ids {
		d, err := reg.Get(id)
		if err != nil {
			msg := "unknown diagnosis '" + id + "'"
			suggestions := reg.Suggest(id)
			if len(suggestions) > 0 {
				msg += ", did you mean " + strings.Join(suggestions, " or ") + "?"
			}
			return nil, errors.Wrap(err, errors.ErrDiagnosisNotFound, msg).
				WithDetail("available", reg.List())
		}
		selected = append(selected, d)
	}
	return selected, nil
}
