package testutil

import (
	"time"

	"github.com/arthur-debert/bitdoctor/pkg/doctor"
)

// SampleReport returns a report with one valid, one invalid and one errored
// entry, used by renderer tests
func SampleReport() *doctor.Report {
	return &doctor.Report{Entries: []doctor.Entry{
		{
			Info: doctor.Info{
				ID:          "workspace-config",
				Name:        "Check workspace config",
				Description: "Validate workspace configuration",
				Category:    "workspace",
			},
			State:    doctor.Valid,
			Duration: 2 * time.Millisecond,
		},
		{
			Info: doctor.Info{
				ID:          "broken-symlinks",
				Name:        "Check invalid link files",
				Description: "Validate Bit generated symlink files within environment directory",
				Category:    "bit-core-files",
			},
			State: doctor.Invalid,
			Symptoms: "the following symlink files point to non-existent paths\n" +
				`symlink path: "/ws/.bit/components/envA/node_modules/@bit/foo", broken link: "../.store/foo"`,
			ManualRemedy: "please delete the following paths:\n/ws/.bit/components/envA",
			Errors:       []string{"[FILE_ACCESS] cannot check target of /ws/x: permission denied"},
			Duration:     5 * time.Millisecond,
		},
		{
			Info: doctor.Info{
				ID:          "scope-index",
				Name:        "Check scope index",
				Description: "Validate the scope index",
				Category:    "bit-core-files",
			},
			State: doctor.Errored,
			Error: "[DIAGNOSIS_FAILED] diagnosis failed: no workspace",
		},
	}}
}
