package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/bitdoctor/pkg/config"
	"github.com/arthur-debert/bitdoctor/pkg/diagnoses"
	"github.com/arthur-debert/bitdoctor/pkg/diagnoses/brokensymlinks"
	"github.com/arthur-debert/bitdoctor/pkg/doctor"
	"github.com/arthur-debert/bitdoctor/pkg/errors"
	"github.com/arthur-debert/bitdoctor/pkg/filesystem"
	"github.com/arthur-debert/bitdoctor/pkg/logging"
	"github.com/arthur-debert/bitdoctor/pkg/registry"
	"github.com/arthur-debert/bitdoctor/pkg/ui"
	"github.com/arthur-debert/bitdoctor/pkg/workspace"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run [diagnosis...]",
		Short: "Run diagnoses against the workspace",
		Long: `Run examines the workspace with the named diagnoses, or with every
diagnosis when none is named (see doctor.diagnoses in the configuration).

The exit status is 0 when every diagnosis is valid and 1 otherwise.`,
		Example: `  bitdoctor run
  bitdoctor run broken-symlinks --format json
  bitdoctor run --components-dir ~/.bit/components`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return diagnoses.NewRegistry(diagnoses.Deps{}).List(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnoses(cmd, opts, args)
		},
	}
}

// session is everything a command needs after flags and config are resolved
type session struct {
	cfg      *config.Config
	renderer ui.Renderer
	registry registry.Registry[doctor.Diagnosis]
}

func newSession(cmd *cobra.Command, opts *options) (*session, error) {
	start := opts.workspace
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot determine current directory")
		}
		start = wd
	}
	start, err := filepath.Abs(start)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid workspace path %q", opts.workspace)
	}

	cfg, err := config.Load(config.LoadOptions{
		UserConfigPath: opts.configPath,
		StartDir:       start,
		Overrides:      overrides(cmd, opts),
	})
	if err != nil {
		return nil, err
	}

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout(), ui.Options{Width: cfg.Output.Width})
	if err != nil {
		return nil, err
	}

	fsys := filesystem.NewOS()
	var root brokensymlinks.RootProvider
	if opts.componentsDir != "" {
		dir, err := filepath.Abs(opts.componentsDir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid components path %q", opts.componentsDir)
		}
		root = brokensymlinks.StaticRoot(dir)
	} else {
		root = workspace.NewLocator(fsys, start, workspace.Options{
			Markers:       cfg.Workspace.Markers,
			ScopeDirs:     cfg.Workspace.ScopeDirs,
			ComponentsDir: cfg.Workspace.ComponentsDir,
		})
	}

	return &session{
		cfg:      cfg,
		renderer: renderer,
		registry: diagnoses.NewRegistry(diagnoses.Deps{
			Root:       root,
			FS:         fsys,
			MaxWorkers: cfg.Doctor.MaxWorkers,
		}),
	}, nil
}

// overrides maps the flags the user actually set onto config keys
func overrides(cmd *cobra.Command, opts *options) map[string]interface{} {
	flags := cmd.Flags()
	values := map[string]interface{}{}
	if flags.Changed("workers") {
		values["doctor.max_workers"] = opts.workers
	}
	if flags.Changed("format") {
		values["output.format"] = opts.format
	}
	return values
}

func runDiagnoses(cmd *cobra.Command, opts *options, ids []string) error {
	logger := logging.GetLogger("cli.run")

	s, err := newSession(cmd, opts)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		ids = s.cfg.Doctor.Diagnoses
	}
	selected, err := diagnoses.Select(s.registry, ids)
	if err != nil {
		return err
	}

	logger.Info().Int("diagnoses", len(selected)).Msg("Running diagnoses")
	report := doctor.NewRunner(selected...).Run(cmd.Context())

	if err := s.renderer.RenderReport(report); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to render report")
	}
	if report.HasProblems() {
		return errUnhealthy
	}
	return nil
}
