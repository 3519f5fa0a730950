package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/bitdoctor/pkg/doctor"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the available diagnoses",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			items := s.registry.Items()
			infos := make([]doctor.Info, 0, len(items))
			for _, d := range items {
				infos = append(infos, d.Info())
			}
			return s.renderer.RenderDiagnoses(infos)
		},
	}
}
