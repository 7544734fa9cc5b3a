package cli

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/infraguide/internal/content"
	"github.com/3-lines-studio/infraguide/internal/tfvars"
)

func newTFVarsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tfvars",
		Short: "Print the sample terraform.tfvars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := tfvars.Render(content.SampleVars)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(body)
			return err
		},
	}
}
