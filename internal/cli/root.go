// Package cli builds the bitdoctor command line.
package cli

import (
	"context"
	"embed"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/bitdoctor/internal/version"
	"github.com/arthur-debert/bitdoctor/pkg/cobrax/topics"
	"github.com/arthur-debert/bitdoctor/pkg/errors"
	"github.com/arthur-debert/bitdoctor/pkg/logging"
	"github.com/arthur-debert/bitdoctor/pkg/ui"
	"github.com/arthur-debert/bitdoctor/pkg/ui/markdown"
)

//go:embed help
var helpFS embed.FS

// errUnhealthy is returned after a report with problems has been rendered
var errUnhealthy = errors.New(errors.ErrDiagnosisFailed, "workspace is not healthy")

// options holds the global flags
type options struct {
	verbosity     int
	format        string
	workspace     string
	componentsDir string
	workers       int
	configPath    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "bitdoctor",
		Short: "Diagnose a component workspace",
		Long: `bitdoctor examines a component workspace for known problems, such as
environment links left dangling by interrupted installs, and tells you how
to fix them. It never modifies the workspace.

Without a subcommand it runs every diagnosis, like "bitdoctor run".`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnoses(cmd, opts, nil)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: auto, term, text, json, yaml, junit, markdown")
	flags.StringVarP(&opts.workspace, "workspace", "w", "", "Directory to start the workspace search from (default: current directory)")
	flags.StringVar(&opts.componentsDir, "components-dir", "", "Examine this components directory and skip workspace discovery")
	flags.IntVar(&opts.workers, "workers", 0, "Maximum concurrent link resolutions (0: unbounded)")
	flags.StringVar(&opts.configPath, "config", "", "User config file (default: $XDG_CONFIG_HOME/bitdoctor/config.toml)")

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	helpTopics, err := fs.Sub(helpFS, "help")
	if err == nil {
		_ = topics.InitializeWithOptions(rootCmd, helpTopics, topics.Options{
			Renderer: topicRenderer{},
		})
	}

	return rootCmd
}

// topicRenderer styles markdown topics when writing to a terminal
type topicRenderer struct{}

func (topicRenderer) Render(content, format string) string {
	if format != ".md" || ui.DetectFormat(os.Stdout) != ui.FormatTerminal {
		return content
	}
	return markdown.Style(content, "auto", 0)
}

// Execute runs the command line and returns the process exit status
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if err == errUnhealthy {
		return 1
	}

	renderer, rerr := ui.NewRenderer(ui.FormatAuto, stderr, ui.Options{})
	if rerr == nil {
		_ = renderer.RenderError(err)
	}
	return 1
}
