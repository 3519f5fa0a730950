package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/bitdoctor/internal/version"
	"github.com/arthur-debert/bitdoctor/pkg/config"
	"github.com/arthur-debert/bitdoctor/pkg/errors"
)

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: "Print the default configuration",
		Long: `Print the default configuration as commented TOML. Save it as
$XDG_CONFIG_HOME/bitdoctor/config.toml or as .bitdoctor.toml in a workspace
and uncomment the values to change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.Generate(config.Defaults())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), content)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bitdoctor version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions:

Bash:
  $ source <(bitdoctor completion bash)

Zsh:
  $ bitdoctor completion zsh > "${fpath[1]}/_bitdoctor"

Fish:
  $ bitdoctor completion fish > ~/.config/fish/completions/bitdoctor.fish

PowerShell:
  PS> bitdoctor completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			var err error
			switch args[0] {
			case "bash":
				err = root.GenBashCompletionV2(out, true)
			case "zsh":
				err = root.GenZshCompletion(out)
			case "fish":
				err = root.GenFishCompletion(out, true)
			case "powershell":
				err = root.GenPowerShellCompletionWithDesc(out)
			}
			if err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to generate %s completion", args[0])
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "man DIR",
		Short: "Generate man pages into DIR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "BITDOCTOR",
				Section: "1",
				Source:  "bitdoctor " + version.Version,
				Manual:  "bitdoctor manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, args[0]); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "failed to write man pages to %s", args[0])
			}
			return nil
		},
	}
}
